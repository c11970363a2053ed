package packing

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
)

const internalFilePrefix = "CAB-"

// HashedIdentifiers names files "CAB-" followed by 32 hex characters
// derived from the input name.
type HashedIdentifiers struct{}

// GenerateInternalFileName implements ports.Identifiers.
func (HashedIdentifiers) GenerateInternalFileName(name string) string {
	lo := xxhash.Sum64String(name)

	d := xxhash.NewWithSeed(lo)
	_, _ = d.WriteString(name)
	hi := d.Sum64()

	var buf [16]byte
	binary.BigEndian.PutUint64(buf[:8], lo)
	binary.BigEndian.PutUint64(buf[8:], hi)
	return internalFilePrefix + hex.EncodeToString(buf[:])
}
