// Tests for photo resolution, including degradation when the photo store
// misbehaves.
package linkgraph

import (
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/atlasfolio/tripgraph/internal/sqlite"
	"github.com/atlasfolio/tripgraph/pkg/types"
)

// failingPhotoStore simulates a photo backend that is down.
type failingPhotoStore struct{}

func (failingPhotoStore) AddPhoto(*types.Photo) (*types.Photo, error) {
	return nil, errors.New("photo store unavailable")
}

func (failingPhotoStore) GetPhoto(int64, int64) (*types.Photo, error) {
	return nil, errors.New("photo store unavailable")
}

func (failingPhotoStore) GetPhotosByIDs(int64, []int64) ([]*types.Photo, error) {
	return nil, errors.New("photo store unavailable")
}

func (failingPhotoStore) ListPhotos(int64) ([]*types.Photo, error) {
	return nil, errors.New("photo store unavailable")
}

func (failingPhotoStore) DeletePhoto(int64, int64) error {
	return errors.New("photo store unavailable")
}

func testBackendStore(t *testing.T) (types.LinkStore, types.PhotoStore) {
	t.Helper()
	b := sqlite.NewBackend(zerolog.Nop())
	config := types.Config{
		Backend: types.BackendSQLite,
		DataDir: t.TempDir(),
	}
	if err := b.Attach(config); err != nil {
		t.Fatalf("Attach failed: %v", err)
	}
	t.Cleanup(func() { b.Detach() })

	links, err := b.Links()
	if err != nil {
		t.Fatalf("Links failed: %v", err)
	}
	photos, err := b.Photos()
	if err != nil {
		t.Fatalf("Photos failed: %v", err)
	}
	return links, photos
}

func TestGetPhotosForEntity(t *testing.T) {
	links, photos := testBackendStore(t)
	svc := NewService(links, photos, zerolog.Nop())

	p1, err := photos.AddPhoto(&types.Photo{TripID: 10, FileName: "a.jpg"})
	if err != nil {
		t.Fatalf("AddPhoto failed: %v", err)
	}
	p2, err := photos.AddPhoto(&types.Photo{TripID: 10, FileName: "b.jpg"})
	if err != nil {
		t.Fatalf("AddPhoto failed: %v", err)
	}

	// One photo linked outbound, one inbound, plus a non-photo link that
	// must not leak into the result.
	ref1 := types.EntityRef{Type: types.EntityTypePhoto, ID: p1.ID}
	ref2 := types.EntityRef{Type: types.EntityTypePhoto, ID: p2.ID}
	if _, err := svc.CreateLink(10, ref1, location1, types.RelationshipTakenAt, ""); err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if _, err := svc.CreateLink(10, location1, ref2, "", ""); err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}
	if _, err := svc.CreateLink(10, location1, activity3, "", ""); err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	got, err := svc.GetPhotosForEntity(10, location1)
	if err != nil {
		t.Fatalf("GetPhotosForEntity failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 photos, got %d", len(got))
	}
}

func TestGetPhotosForEntity_DanglingLink(t *testing.T) {
	links, photos := testBackendStore(t)
	svc := NewService(links, photos, zerolog.Nop())

	// A link to a photo id with no photo record. The link survives; the
	// missing photo is simply omitted.
	ghost := types.EntityRef{Type: types.EntityTypePhoto, ID: 999}
	if _, err := svc.CreateLink(10, ghost, location1, types.RelationshipTakenAt, ""); err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	got, err := svc.GetPhotosForEntity(10, location1)
	if err != nil {
		t.Fatalf("GetPhotosForEntity failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected 0 photos, got %d", len(got))
	}
}

func TestGetPhotosForEntity_ResolverFailure(t *testing.T) {
	links, _ := testBackendStore(t)
	svc := NewService(links, failingPhotoStore{}, zerolog.Nop())

	if _, err := svc.CreateLink(10, photo2, location1, types.RelationshipTakenAt, ""); err != nil {
		t.Fatalf("CreateLink failed: %v", err)
	}

	// Resolution failure degrades to an empty list, never an error.
	got, err := svc.GetPhotosForEntity(10, location1)
	if err != nil {
		t.Fatalf("GetPhotosForEntity should not fail, got %v", err)
	}
	if got == nil {
		t.Fatal("expected non-nil slice")
	}
	if len(got) != 0 {
		t.Errorf("expected empty list, got %d", len(got))
	}
}

func TestGetPhotosForEntity_NoPhotoLinks(t *testing.T) {
	links, photos := testBackendStore(t)
	svc := NewService(links, photos, zerolog.Nop())

	got, err := svc.GetPhotosForEntity(10, location1)
	if err != nil {
		t.Fatalf("GetPhotosForEntity failed: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", got)
	}
}
