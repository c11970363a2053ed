package domain

import "unique"

// InternedString wraps a unique.Handle[string].
// Object file paths and stage names repeat across thousands of records, so
// they are interned once and compared by handle.
type InternedString struct {
	h unique.Handle[string]
}

// NewInternedString interns s.
func NewInternedString(s string) InternedString {
	return InternedString{
		h: unique.Make(s),
	}
}

// String returns the underlying string value.
func (is InternedString) String() string {
	var zero unique.Handle[string]
	if is.h == zero {
		return ""
	}
	return is.h.Value()
}

// IsEmpty reports whether the value is the zero value or the empty string.
func (is InternedString) IsEmpty() bool {
	return is.String() == ""
}

// MarshalText implements encoding.TextMarshaler.
func (is InternedString) MarshalText() ([]byte, error) {
	return []byte(is.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (is *InternedString) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*is = InternedString{}
		return nil
	}
	is.h = unique.Make(string(text))
	return nil
}
