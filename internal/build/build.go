// Package build holds information stamped into the binary by the linker.
package build

// Version is the crate release, "dev" unless set with
// -ldflags "-X go.trai.ch/crate/internal/build.Version=v1.2.3".
var Version = "dev"

// Commit is the source revision of the binary, empty unless stamped.
var Commit = ""

// Describe returns Version followed by the short commit when one is stamped.
func Describe() string {
	if Commit == "" {
		return Version
	}
	short := Commit
	if len(short) > 12 {
		short = short[:12]
	}
	return Version + " (" + short + ")"
}
