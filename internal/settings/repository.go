package settings

import "sync"

const docName = "settings.json"

// Store is the persistence port for whole JSON documents.
type Store interface {
	Load(name string, out any) error
	Save(name string, v any) error
	Ensure(name string, def any) error
}

// Repository provides get/replace over the settings document. Replace is a
// wholesale overwrite, never a merge.
type Repository struct {
	store Store
	mu    sync.Mutex
}

// NewRepository returns a Repository over the given document store.
func NewRepository(store Store) *Repository {
	return &Repository{store: store}
}

// Get returns the current settings, or the defaults if never written.
func (r *Repository) Get() (Settings, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Ensure(docName, Defaults()); err != nil {
		return Settings{}, err
	}
	var s Settings
	if err := r.store.Load(docName, &s); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Replace overwrites the entire settings document.
func (r *Repository) Replace(s Settings) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.store.Save(docName, s)
}
