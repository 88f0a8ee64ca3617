// Package store owns the canonical post collection for the session and
// orchestrates dispatch: reduce, swap the collection, mirror to storage.
package store

import (
	"log"
	"sync"

	"local.dev/communityfeed-backend/internal/feed"
	"local.dev/communityfeed-backend/internal/models"
	"local.dev/communityfeed-backend/internal/seed"
	"local.dev/communityfeed-backend/internal/storage"
)

type Store struct {
	mu      sync.RWMutex
	posts   []models.Post
	adapter *storage.Adapter
}

func New(adapter *storage.Adapter) *Store {
	return &Store{adapter: adapter}
}

// Initialize loads the prior snapshot if one is readable, otherwise
// falls back to the seed set and writes it through. Never fails: a
// corrupt snapshot just means starting from seed again.
func (s *Store) Initialize() {
	posts, ok := s.adapter.Load()
	if !ok {
		posts = seed.Posts()
		log.Printf("store: no usable snapshot, seeding %d posts", len(posts))
		s.adapter.Save(posts)
	}
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

// GetAll returns a copy of the collection in canonical order.
func (s *Store) GetAll() []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]models.Post(nil), s.posts...)
}

// Replace swaps the whole collection. Reducers return new collections;
// targeted mutation never happens here.
func (s *Store) Replace(posts []models.Post) {
	s.mu.Lock()
	s.posts = posts
	s.mu.Unlock()
}

// Dispatch applies one action, swaps the collection and mirrors it to
// storage. changed is false when the action referenced a missing post
// (the collection is untouched); err is set only for invalid input.
func (s *Store) Dispatch(a feed.Action) (changed bool, err error) {
	s.mu.Lock()
	next, changed, err := feed.Apply(s.posts, a)
	if err != nil || !changed {
		s.mu.Unlock()
		return changed, err
	}
	s.posts = next
	s.mu.Unlock()

	s.adapter.Save(next)
	return true, nil
}

// ByID returns the current state of one post.
func (s *Store) ByID(id string) (models.Post, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.posts {
		if p.ID == id {
			return p, true
		}
	}
	return models.Post{}, false
}

// Visible runs the filter/sort projection over the current collection.
func (s *Store) Visible(q feed.Query) []models.Post {
	s.mu.RLock()
	posts := s.posts
	s.mu.RUnlock()
	return feed.Visible(posts, q)
}
