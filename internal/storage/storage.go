// Package storage is the persistence adapter for the feed: one versioned
// JSON snapshot of the whole post collection under a fixed key, mirrored
// after every mutation and read back at startup. Storage trouble never
// reaches the caller; the in-memory collection stays authoritative.
package storage

import (
	"encoding/json"
	"fmt"
	"log"

	"local.dev/communityfeed-backend/internal/models"
)

// SchemaVersion tags the snapshot payload so later field additions can be
// migrated instead of silently misread. A mismatch reads as absent.
const SchemaVersion = 1

// SnapshotKey is the fixed namespaced key the post collection lives under.
const SnapshotKey = "communityfeed.posts"

type envelope struct {
	SchemaVersion int           `json:"schemaVersion"`
	Posts         []models.Post `json:"posts"`
}

// Backend stores one opaque payload per key. Implementations: file, sqlite.
type Backend interface {
	Read(key string) ([]byte, error)
	Write(key string, payload []byte) error
}

type Adapter struct {
	backend Backend
}

func NewAdapter(b Backend) *Adapter { return &Adapter{backend: b} }

// Save mirrors the full collection. Failures are logged and swallowed:
// a full or broken storage layer must never block the session.
func (a *Adapter) Save(posts []models.Post) {
	b, err := json.MarshalIndent(envelope{SchemaVersion: SchemaVersion, Posts: posts}, "", "  ")
	if err != nil {
		log.Printf("storage: marshal snapshot: %v", err)
		return
	}
	if err := a.backend.Write(SnapshotKey, b); err != nil {
		log.Printf("storage: save snapshot: %v", err)
	}
}

// Load reads the snapshot back. ok is false when the key is missing, the
// payload is malformed, the schema version does not match, or the
// snapshot holds no posts; callers fall back to the seed set.
func (a *Adapter) Load() ([]models.Post, bool) {
	b, err := a.backend.Read(SnapshotKey)
	if err != nil {
		return nil, false
	}
	var env envelope
	if err := json.Unmarshal(b, &env); err != nil {
		log.Printf("storage: snapshot unreadable, using seed: %v", err)
		return nil, false
	}
	if env.SchemaVersion != SchemaVersion || len(env.Posts) == 0 {
		return nil, false
	}
	return env.Posts, true
}

func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
