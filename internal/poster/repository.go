package poster

import (
	"errors"
	"sync"
	"time"
)

// ErrNotFound indicates no poster has the requested id.
var ErrNotFound = errors.New("poster not found")

const docName = "data.json"

// Store is the persistence port for whole JSON documents.
type Store interface {
	Load(name string, out any) error
	Save(name string, v any) error
	Ensure(name string, def any) error
}

type document struct {
	Posters []Poster `json:"posters"`
}

// Repository provides CRUD over the poster collection. A single mutex spans
// each read-modify-write cycle so concurrent in-process mutations cannot lose
// updates; cross-process writers still race last-writer-wins.
type Repository struct {
	store Store
	mu    sync.Mutex
	now   func() time.Time
}

// NewRepository returns a Repository over the given document store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store, now: time.Now}
}

func (r *Repository) load() (document, error) {
	if err := r.store.Ensure(docName, document{Posters: []Poster{}}); err != nil {
		return document{}, err
	}
	var doc document
	if err := r.store.Load(docName, &doc); err != nil {
		return document{}, err
	}
	return doc, nil
}

// List returns all posters in insertion order.
func (r *Repository) List() ([]Poster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return nil, err
	}
	if doc.Posters == nil {
		doc.Posters = []Poster{}
	}
	return doc.Posters, nil
}

// Create assigns a millisecond-derived id and a creation timestamp, appends
// the record and persists the collection. Ids that collide with an existing
// record are bumped until free.
func (r *Repository) Create(fields Fields) (Poster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return Poster{}, err
	}

	now := r.now().UTC()
	id := now.UnixMilli()
	for idTaken(doc.Posters, id) {
		id++
	}

	p := fields.record()
	p.ID = id
	p.CreatedAt = now.Format(time.RFC3339)

	doc.Posters = append(doc.Posters, p)
	if err := r.store.Save(docName, doc); err != nil {
		return Poster{}, err
	}
	return p, nil
}

// Update merges the patch over the poster with the given id and persists.
func (r *Repository) Update(id int64, patch Patch) (Poster, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return Poster{}, err
	}

	for i := range doc.Posters {
		if doc.Posters[i].ID != id {
			continue
		}
		patch.Apply(&doc.Posters[i])
		if err := r.store.Save(docName, doc); err != nil {
			return Poster{}, err
		}
		return doc.Posters[i], nil
	}
	return Poster{}, ErrNotFound
}

// Delete removes the poster with the given id if present. Deleting an absent
// id is not an error.
func (r *Repository) Delete(id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load()
	if err != nil {
		return err
	}

	kept := make([]Poster, 0, len(doc.Posters))
	for _, p := range doc.Posters {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	doc.Posters = kept
	return r.store.Save(docName, doc)
}

func idTaken(posters []Poster, id int64) bool {
	for _, p := range posters {
		if p.ID == id {
			return true
		}
	}
	return false
}
