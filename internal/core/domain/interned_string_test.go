package domain_test

import (
	"encoding/json"
	"testing"

	"go.trai.ch/crate/internal/core/domain"
)

func TestInternedString(t *testing.T) {
	is1 := domain.NewInternedString("Assets/a.png")
	is2 := domain.NewInternedString("Assets/a.png")

	if is1 != is2 {
		t.Errorf("expected interned values to be equal")
	}
	if is1.String() != "Assets/a.png" {
		t.Errorf("expected String() to return %q, got %q", "Assets/a.png", is1.String())
	}
}

func TestInternedString_Zero(t *testing.T) {
	var zero domain.InternedString

	if !zero.IsEmpty() {
		t.Error("expected zero value to be empty")
	}

	data, err := zero.MarshalText()
	if err != nil {
		t.Fatalf("MarshalText failed: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("expected empty text, got %q", data)
	}

	var back domain.InternedString
	if err := back.UnmarshalText(data); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if back != zero {
		t.Error("expected empty text to decode to the zero value")
	}
}

func TestInternedStringJSON(t *testing.T) {
	type record struct {
		Path domain.InternedString `json:"path"`
	}

	data, err := json.Marshal(record{Path: domain.NewInternedString("library/unity default resources")})
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}
	if string(data) != `{"path":"library/unity default resources"}` {
		t.Errorf("unexpected JSON %s", data)
	}

	var got record
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if got.Path.String() != "library/unity default resources" {
		t.Errorf("expected path to survive a round trip, got %q", got.Path)
	}
}
