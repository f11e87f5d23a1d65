package poster

import (
	"errors"
	"testing"
	"time"

	"github.com/spf13/afero"

	"jobboard/internal/docstore"
)

func newTestRepository(t *testing.T) *Repository {
	t.Helper()
	return NewRepository(docstore.New(afero.NewMemMapFs(), "data"))
}

func strptr(s string) *string { return &s }

func TestCreateAssignsIdentityAndTimestamp(t *testing.T) {
	repo := newTestRepository(t)

	before := time.Now().UTC().Truncate(time.Second)
	created, err := repo.Create(Fields{Title: "Driver", Description: "Company driver", Phone: "012345678"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.ID == 0 {
		t.Fatal("expected a non-zero id")
	}
	if created.Title != "Driver" || created.Description != "Company driver" || created.Phone != "012345678" {
		t.Fatalf("provided fields not preserved: %+v", created)
	}
	createdAt, err := time.Parse(time.RFC3339, created.CreatedAt)
	if err != nil {
		t.Fatalf("createdAt not RFC3339: %v", err)
	}
	if createdAt.Before(before) {
		t.Fatalf("createdAt %v older than call time %v", createdAt, before)
	}
}

func TestCreateBumpsCollidingIDs(t *testing.T) {
	repo := newTestRepository(t)
	fixed := time.UnixMilli(1700000000000)
	repo.now = func() time.Time { return fixed }

	first, err := repo.Create(Fields{Title: "A", Description: "a"})
	if err != nil {
		t.Fatalf("create first: %v", err)
	}
	second, err := repo.Create(Fields{Title: "B", Description: "b"})
	if err != nil {
		t.Fatalf("create second: %v", err)
	}

	if first.ID == second.ID {
		t.Fatalf("ids collided: %d", first.ID)
	}
	if second.ID != first.ID+1 {
		t.Fatalf("expected bumped id %d, got %d", first.ID+1, second.ID)
	}
}

func TestListPreservesCreationOrder(t *testing.T) {
	repo := newTestRepository(t)

	titles := []string{"Driver", "Cook", "Guard"}
	ids := make([]int64, 0, len(titles))
	for _, title := range titles {
		p, err := repo.Create(Fields{Title: title, Description: "d"})
		if err != nil {
			t.Fatalf("create %q: %v", title, err)
		}
		ids = append(ids, p.ID)
	}

	posters, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posters) != len(titles) {
		t.Fatalf("expected %d posters, got %d", len(titles), len(posters))
	}
	for i, p := range posters {
		if p.Title != titles[i] || p.ID != ids[i] {
			t.Fatalf("position %d: got id=%d title=%q, want id=%d title=%q", i, p.ID, p.Title, ids[i], titles[i])
		}
	}
}

func TestUpdateEmptyPatchIsNoOp(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(Fields{Title: "Driver", Description: "Company driver", Telegram: "@hr"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(created.ID, Patch{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated != created {
		t.Fatalf("empty patch changed the record:\n got %+v\nwant %+v", updated, created)
	}
}

func TestUpdateChangesOnlyProvidedFields(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(Fields{Title: "Driver", Description: "Company driver", Email: "hr@example.com"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := repo.Update(created.ID, Patch{Title: strptr("Senior Driver")})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Title != "Senior Driver" {
		t.Fatalf("title not updated: %+v", updated)
	}
	if updated.Description != created.Description || updated.Email != created.Email {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.ID != created.ID || updated.CreatedAt != created.CreatedAt {
		t.Fatalf("identity fields mutated: %+v", updated)
	}
}

func TestUpdateUnknownID(t *testing.T) {
	repo := newTestRepository(t)

	_, err := repo.Update(42, Patch{Title: strptr("x")})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo := newTestRepository(t)

	created, err := repo.Create(Fields{Title: "Driver", Description: "d"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.Delete(created.ID); err != nil {
		t.Fatalf("second delete: %v", err)
	}

	posters, err := repo.List()
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(posters) != 0 {
		t.Fatalf("expected empty list, got %+v", posters)
	}
}
