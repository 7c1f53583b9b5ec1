package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"

	"mergington-server/models"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadySignedUp  = errors.New("student is already signed up")
	ErrNotSignedUp      = errors.New("student is not signed up")
)

// ActivityRepositoryInterface lets controllers run against a mock in tests.
type ActivityRepositoryInterface interface {
	All() models.Catalog
	Signup(name, email string) error
	Unregister(name, email string) error
}

// ActivityRepository owns the in-memory catalog and its backing JSON file.
// The catalog is loaded once at construction and rewritten in full after
// every successful mutation. A single mutex guards reads, mutation and
// persistence, so interleaved signups cannot lose updates.
type ActivityRepository struct {
	path    string
	mu      sync.Mutex
	catalog models.Catalog
}

// NewActivityRepository loads the catalog from path. A missing file yields
// an empty catalog; malformed JSON is returned as an error.
func NewActivityRepository(path string) (*ActivityRepository, error) {
	repo := &ActivityRepository{path: path, catalog: models.Catalog{}}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return repo, nil
		}
		return nil, fmt.Errorf("failed to read activities file %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &repo.catalog); err != nil {
		return nil, fmt.Errorf("failed to parse activities file %s: %w", path, err)
	}
	return repo, nil
}

// All returns a snapshot of the catalog. The snapshot shares activity
// records with the repository; callers only read them.
func (r *ActivityRepository) All() models.Catalog {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot := make(models.Catalog, len(r.catalog))
	for name, activity := range r.catalog {
		snapshot[name] = activity
	}
	return snapshot
}

// Signup adds email to the named activity and persists the catalog.
func (r *ActivityRepository) Signup(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog[name]
	if !ok {
		return ErrActivityNotFound
	}
	if activity.HasParticipant(email) {
		return ErrAlreadySignedUp
	}
	activity.AddParticipant(email)
	return r.persistLocked()
}

// Unregister removes email from the named activity and persists the catalog.
func (r *ActivityRepository) Unregister(name, email string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	activity, ok := r.catalog[name]
	if !ok {
		return ErrActivityNotFound
	}
	if !activity.HasParticipant(email) {
		return ErrNotSignedUp
	}
	activity.RemoveParticipant(email)
	return r.persistLocked()
}

// persistLocked rewrites the catalog file in full, pretty-printed, via a
// temp file and rename so a crash mid-write cannot corrupt it. Caller must
// hold r.mu.
func (r *ActivityRepository) persistLocked() error {
	data, err := json.MarshalIndent(r.catalog, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal activities: %w", err)
	}

	tmp := r.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write activities file: %w", err)
	}
	if err := os.Rename(tmp, r.path); err != nil {
		return fmt.Errorf("failed to replace activities file: %w", err)
	}
	return nil
}
