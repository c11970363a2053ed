package domain

import (
	"fmt"
	"strings"
)

// FileType describes where the engine reads an object from.
type FileType uint8

const (
	// FileTypeMeta is an object stored in the asset's own serialized data.
	FileTypeMeta FileType = iota
	// FileTypeSerialized is an object stored in a loose serialized file.
	FileTypeSerialized
	// FileTypeBuiltin is an object shipped with the engine's built-in resources.
	FileTypeBuiltin
)

const (
	// DefaultResourcesPath is the built-in resource file that never lands in a bundle.
	DefaultResourcesPath = "library/unity default resources"

	// TypeSprite is the type name of an image region object.
	TypeSprite = "Sprite"
)

// ObjectID identifies a sub-object within an asset or a loose file.
type ObjectID struct {
	GUID     GUID           `cbor:"1,keyasint"`
	LocalID  int64          `cbor:"2,keyasint"`
	FilePath InternedString `cbor:"3,keyasint"`
	FileType FileType       `cbor:"4,keyasint,omitempty"`
}

// String returns "<guid>:<localID>", or "<path>:<localID>" for GUID-less objects.
func (o ObjectID) String() string {
	if o.GUID.IsEmpty() {
		return fmt.Sprintf("%s:%d", o.FilePath, o.LocalID)
	}
	return fmt.Sprintf("%s:%d", o.GUID, o.LocalID)
}

// IsDefaultResource reports whether the object lives in the built-in default resources.
func (o ObjectID) IsDefaultResource() bool {
	return strings.EqualFold(o.FilePath.String(), DefaultResourcesPath)
}

// ObjectTypes records the sorted type names observed for an object.
type ObjectTypes struct {
	Object ObjectID `cbor:"1,keyasint"`
	Types  []string `cbor:"2,keyasint"`
}

// IsSprite reports whether the object's primary type is an image region.
func (o ObjectTypes) IsSprite() bool {
	return len(o.Types) > 0 && o.Types[0] == TypeSprite
}

// ObjectSet is an insertion ordered set of object identifiers.
type ObjectSet struct {
	order []ObjectID
	index map[ObjectID]int
}

// NewObjectSet creates a set holding objs in order, skipping duplicates.
func NewObjectSet(objs ...ObjectID) *ObjectSet {
	s := &ObjectSet{index: make(map[ObjectID]int, len(objs))}
	s.Add(objs...)
	return s
}

// Add appends objects not yet present.
func (s *ObjectSet) Add(objs ...ObjectID) {
	for _, o := range objs {
		if _, ok := s.index[o]; ok {
			continue
		}
		s.index[o] = len(s.order)
		s.order = append(s.order, o)
	}
}

// Contains reports whether o is in the set.
func (s *ObjectSet) Contains(o ObjectID) bool {
	_, ok := s.index[o]
	return ok
}

// Len returns the number of objects.
func (s *ObjectSet) Len() int {
	return len(s.order)
}

// Slice returns the objects in insertion order. The result is a copy.
func (s *ObjectSet) Slice() []ObjectID {
	out := make([]ObjectID, len(s.order))
	copy(out, s.order)
	return out
}
