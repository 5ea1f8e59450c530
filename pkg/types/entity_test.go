package types

import (
	"errors"
	"testing"
)

func TestEntityType_Valid(t *testing.T) {
	for _, et := range EntityTypes {
		if !et.Valid() {
			t.Errorf("%s should be valid", et)
		}
	}
	for _, bad := range []EntityType{"", "RESTAURANT", "location", "PHOTO "} {
		if bad.Valid() {
			t.Errorf("%q should be invalid", bad)
		}
	}
}

func TestParseEntityType(t *testing.T) {
	tests := []struct {
		in      string
		want    EntityType
		wantErr bool
	}{
		{"LOCATION", EntityTypeLocation, false},
		{"location", EntityTypeLocation, false},
		{" photo_album ", EntityTypePhotoAlbum, false},
		{"JOURNAL_ENTRY", EntityTypeJournalEntry, false},
		{"RESTAURANT", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		got, err := ParseEntityType(tt.in)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidEntityType) {
				t.Errorf("ParseEntityType(%q): expected ErrInvalidEntityType, got %v", tt.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseEntityType(%q) failed: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseEntityType(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestEntityRef_Validate(t *testing.T) {
	if err := (EntityRef{Type: EntityTypePhoto, ID: 1}).Validate(); err != nil {
		t.Errorf("valid ref rejected: %v", err)
	}
	if err := (EntityRef{Type: "RESTAURANT", ID: 1}).Validate(); !errors.Is(err, ErrInvalidEntityType) {
		t.Errorf("expected ErrInvalidEntityType, got %v", err)
	}
	if err := (EntityRef{Type: EntityTypePhoto, ID: 0}).Validate(); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
	if err := (EntityRef{Type: EntityTypePhoto, ID: -3}).Validate(); !errors.Is(err, ErrInvalidID) {
		t.Errorf("expected ErrInvalidID, got %v", err)
	}
}

func TestParseEntityRef(t *testing.T) {
	ref, err := ParseEntityRef("PHOTO:42")
	if err != nil {
		t.Fatalf("ParseEntityRef failed: %v", err)
	}
	if ref.Type != EntityTypePhoto || ref.ID != 42 {
		t.Errorf("got %+v", ref)
	}
	if ref.String() != "PHOTO:42" {
		t.Errorf("String() = %q", ref.String())
	}

	for _, bad := range []string{"PHOTO", "PHOTO:", "PHOTO:zero", "PHOTO:0", "PHOTO:-1", "RESTAURANT:1", ""} {
		if _, err := ParseEntityRef(bad); err == nil {
			t.Errorf("ParseEntityRef(%q) should fail", bad)
		}
	}
}

func TestEntityLink_Other(t *testing.T) {
	link := &EntityLink{
		SourceType: EntityTypePhoto, SourceID: 2,
		TargetType: EntityTypeLocation, TargetID: 1,
	}
	if got := link.Other(link.Source()); got != link.Target() {
		t.Errorf("Other(source) = %v, want target", got)
	}
	if got := link.Other(link.Target()); got != link.Source() {
		t.Errorf("Other(target) = %v, want source", got)
	}
}

func TestSummaryKey(t *testing.T) {
	if got := SummaryKey(EntityTypeLocation, 7); got != "LOCATION:7" {
		t.Errorf("SummaryKey = %q", got)
	}
}
