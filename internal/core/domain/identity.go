package domain

import (
	"bytes"
	"encoding/hex"

	"go.trai.ch/zerr"
)

// GUID is the persistent identity of an asset or scene.
type GUID [16]byte

// ParseGUID parses a 32 character hexadecimal identity.
func ParseGUID(s string) (GUID, error) {
	var g GUID
	if len(s) != 2*len(g) {
		return g, zerr.With(ErrInvalidGUID, "guid", s)
	}
	if _, err := hex.Decode(g[:], []byte(s)); err != nil {
		return g, zerr.With(zerr.Wrap(err, ErrInvalidGUID.Error()), "guid", s)
	}
	return g, nil
}

// MustParseGUID is like ParseGUID but panics on malformed input.
// It is intended for tests and constants.
func MustParseGUID(s string) GUID {
	g, err := ParseGUID(s)
	if err != nil {
		panic(err)
	}
	return g
}

// String returns the lowercase hexadecimal form.
func (g GUID) String() string {
	return hex.EncodeToString(g[:])
}

// IsEmpty reports whether g is the zero identity.
func (g GUID) IsEmpty() bool {
	return g == GUID{}
}

// Compare orders identities bytewise. It returns -1, 0 or +1.
func (g GUID) Compare(other GUID) int {
	return bytes.Compare(g[:], other[:])
}

// MarshalText implements encoding.TextMarshaler.
func (g GUID) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (g *GUID) UnmarshalText(text []byte) error {
	parsed, err := ParseGUID(string(text))
	if err != nil {
		return err
	}
	*g = parsed
	return nil
}

// Hash128 is a 128-bit content digest.
type Hash128 [16]byte

// IsValid reports whether the digest has been computed.
func (h Hash128) IsValid() bool {
	return h != Hash128{}
}

// String returns the lowercase hexadecimal form.
func (h Hash128) String() string {
	return hex.EncodeToString(h[:])
}
