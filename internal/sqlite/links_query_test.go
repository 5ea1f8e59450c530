// Tests for directional link queries.
package sqlite

import (
	"errors"
	"testing"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

// seedGraph builds a small fixture graph in trip 10:
//
//	PHOTO:2    -> LOCATION:1
//	PHOTO:4    -> LOCATION:1
//	LOCATION:1 -> ACTIVITY:3
//	LOCATION:1 -> LODGING:6
//
// plus one unrelated link in trip 11.
func seedGraph(t *testing.T, links types.LinkStore) {
	t.Helper()
	photo4 := types.EntityRef{Type: types.EntityTypePhoto, ID: 4}
	lodging6 := types.EntityRef{Type: types.EntityTypeLodging, ID: 6}

	mustCreate(t, links, 10, photo2, location1)
	mustCreate(t, links, 10, photo4, location1)
	mustCreate(t, links, 10, location1, activity3)
	mustCreate(t, links, 10, location1, lodging6)
	mustCreate(t, links, 11, photo2, location1)
}

func TestLinksQuery_LinksFrom(t *testing.T) {
	links := testLinks(t)
	seedGraph(t, links)

	out, err := links.LinksFrom(10, location1, "")
	if err != nil {
		t.Fatalf("LinksFrom failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 outbound links, got %d", len(out))
	}
	// Insertion order.
	if out[0].TargetType != types.EntityTypeActivity || out[1].TargetType != types.EntityTypeLodging {
		t.Errorf("unexpected order: %s then %s", out[0].TargetType, out[1].TargetType)
	}

	// Narrowed to a target type.
	out, err = links.LinksFrom(10, location1, types.EntityTypeLodging)
	if err != nil {
		t.Fatalf("LinksFrom filtered failed: %v", err)
	}
	if len(out) != 1 || out[0].TargetID != 6 {
		t.Errorf("expected only the LODGING:6 link, got %+v", out)
	}

	// Invalid filter type.
	if _, err := links.LinksFrom(10, location1, "RESTAURANT"); !errors.Is(err, types.ErrInvalidEntityType) {
		t.Errorf("expected ErrInvalidEntityType, got %v", err)
	}

	// Entity with no outbound links.
	out, err = links.LinksFrom(10, photo2, types.EntityTypeActivity)
	if err != nil {
		t.Fatalf("LinksFrom failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d", len(out))
	}
}

func TestLinksQuery_LinksTo(t *testing.T) {
	links := testLinks(t)
	seedGraph(t, links)

	out, err := links.LinksTo(10, location1, "")
	if err != nil {
		t.Fatalf("LinksTo failed: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 inbound links, got %d", len(out))
	}
	for _, l := range out {
		if l.SourceType != types.EntityTypePhoto {
			t.Errorf("unexpected inbound source type %s", l.SourceType)
		}
		if l.TripID != 10 {
			t.Errorf("link from trip %d leaked into trip 10 query", l.TripID)
		}
	}

	// Narrowed to a source type with no matches.
	out, err = links.LinksTo(10, location1, types.EntityTypeJournalEntry)
	if err != nil {
		t.Fatalf("LinksTo filtered failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty result, got %d", len(out))
	}
}

func TestLinksQuery_LinksByTargetType(t *testing.T) {
	links := testLinks(t)
	seedGraph(t, links)

	out, err := links.LinksByTargetType(10, types.EntityTypeLocation)
	if err != nil {
		t.Fatalf("LinksByTargetType failed: %v", err)
	}
	if len(out) != 2 {
		t.Errorf("expected 2 links targeting LOCATION, got %d", len(out))
	}

	out, err = links.LinksByTargetType(10, types.EntityTypeTransportation)
	if err != nil {
		t.Fatalf("LinksByTargetType failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected 0 links targeting TRANSPORTATION, got %d", len(out))
	}

	if _, err := links.LinksByTargetType(10, "MUSEUM"); !errors.Is(err, types.ErrInvalidEntityType) {
		t.Errorf("expected ErrInvalidEntityType, got %v", err)
	}
}

func TestLinksQuery_LinksForTrip(t *testing.T) {
	links := testLinks(t)
	seedGraph(t, links)

	out, err := links.LinksForTrip(10)
	if err != nil {
		t.Fatalf("LinksForTrip failed: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("expected 4 links in trip 10, got %d", len(out))
	}
	// Ordered by id.
	for i := 1; i < len(out); i++ {
		if out[i].ID <= out[i-1].ID {
			t.Errorf("links out of order: %d after %d", out[i].ID, out[i-1].ID)
		}
	}

	out, err = links.LinksForTrip(42)
	if err != nil {
		t.Fatalf("LinksForTrip failed: %v", err)
	}
	if len(out) != 0 {
		t.Errorf("expected empty trip, got %d links", len(out))
	}
}

func TestLinksQuery_GetLink_NotFound(t *testing.T) {
	links := testLinks(t)

	if _, err := links.GetLink(10, 123); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
