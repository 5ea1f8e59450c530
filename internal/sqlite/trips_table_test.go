// Tests for the trip store, including cascade delete.
package sqlite

import (
	"errors"
	"testing"

	"github.com/atlasfolio/tripgraph/pkg/types"
)

func TestTripsTable_AddGetList(t *testing.T) {
	b := testBackend(t)
	trips, err := b.Trips()
	if err != nil {
		t.Fatalf("Trips failed: %v", err)
	}

	trip, err := trips.AddTrip(&types.Trip{
		Name:      "Pacific Coast",
		StartDate: "2026-08-01",
		EndDate:   "2026-08-14",
	})
	if err != nil {
		t.Fatalf("AddTrip failed: %v", err)
	}
	if trip.ID <= 0 {
		t.Errorf("expected assigned id, got %d", trip.ID)
	}

	got, err := trips.GetTrip(trip.ID)
	if err != nil {
		t.Fatalf("GetTrip failed: %v", err)
	}
	if got.Name != "Pacific Coast" || got.StartDate != "2026-08-01" {
		t.Errorf("got %+v", got)
	}

	if _, err := trips.AddTrip(&types.Trip{}); !errors.Is(err, types.ErrInvalidData) {
		t.Errorf("expected ErrInvalidData for unnamed trip, got %v", err)
	}

	list, err := trips.ListTrips()
	if err != nil {
		t.Fatalf("ListTrips failed: %v", err)
	}
	if len(list) != 1 {
		t.Errorf("expected 1 trip, got %d", len(list))
	}
}

func TestTripsTable_DeleteTrip_Cascades(t *testing.T) {
	b := testBackend(t)
	trips, _ := b.Trips()
	photos, _ := b.Photos()
	links, _ := b.Links()

	trip, err := trips.AddTrip(&types.Trip{Name: "Doomed"})
	if err != nil {
		t.Fatalf("AddTrip failed: %v", err)
	}
	keep, err := trips.AddTrip(&types.Trip{Name: "Kept"})
	if err != nil {
		t.Fatalf("AddTrip failed: %v", err)
	}

	p := mustAddPhoto(t, photos, trip.ID, "doomed.jpg")
	mustAddPhoto(t, photos, keep.ID, "kept.jpg")
	mustCreate(t, links, trip.ID, photo2, location1)
	mustCreate(t, links, keep.ID, photo2, location1)

	if err := trips.DeleteTrip(trip.ID); err != nil {
		t.Fatalf("DeleteTrip failed: %v", err)
	}

	if _, err := trips.GetTrip(trip.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected trip gone, got %v", err)
	}
	if _, err := photos.GetPhoto(trip.ID, p.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected photo gone, got %v", err)
	}
	all, err := links.LinksForTrip(trip.ID)
	if err != nil {
		t.Fatalf("LinksForTrip failed: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("expected 0 links after cascade, got %d", len(all))
	}

	// The other trip is untouched.
	if _, err := trips.GetTrip(keep.ID); err != nil {
		t.Errorf("kept trip missing: %v", err)
	}
	kept, err := links.LinksForTrip(keep.ID)
	if err != nil {
		t.Fatalf("LinksForTrip failed: %v", err)
	}
	if len(kept) != 1 {
		t.Errorf("expected kept trip to retain its link, got %d", len(kept))
	}

	if err := trips.DeleteTrip(trip.ID); !errors.Is(err, types.ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}
}
