package store

import (
	"reflect"
	"testing"

	"local.dev/communityfeed-backend/internal/feed"
	"local.dev/communityfeed-backend/internal/models"
	"local.dev/communityfeed-backend/internal/seed"
	"local.dev/communityfeed-backend/internal/storage"
)

func newTestStore(t *testing.T) (*Store, *storage.Adapter) {
	t.Helper()
	adapter := storage.NewAdapter(storage.NewFileBackend(t.TempDir()))
	s := New(adapter)
	s.Initialize()
	return s, adapter
}

func TestInitializeSeedsWhenEmpty(t *testing.T) {
	s, adapter := newTestStore(t)

	if !reflect.DeepEqual(s.GetAll(), seed.Posts()) {
		t.Fatal("fresh store should hold the seed set")
	}
	// Seeding writes through so a restart finds a snapshot.
	if _, ok := adapter.Load(); !ok {
		t.Fatal("seed set was not persisted")
	}
}

func TestDispatchWritesThrough(t *testing.T) {
	s, adapter := newTestStore(t)
	id := s.GetAll()[0].ID
	before, _ := s.ByID(id)

	changed, err := s.Dispatch(feed.Like{PostID: id})
	if err != nil || !changed {
		t.Fatalf("dispatch: changed=%v err=%v", changed, err)
	}
	after, _ := s.ByID(id)
	if after.Likes != before.Likes+1 || !after.UserLiked {
		t.Fatalf("like not applied: likes=%d userLiked=%v", after.Likes, after.UserLiked)
	}

	// Simulate a restart on the same storage.
	restarted := New(adapter)
	restarted.Initialize()
	reloaded, ok := restarted.ByID(id)
	if !ok {
		t.Fatal("post missing after restart")
	}
	if reloaded.Likes != after.Likes || !reloaded.UserLiked {
		t.Fatal("mutation did not survive the restart")
	}
}

func TestDispatchMissingIDLeavesStateAlone(t *testing.T) {
	s, _ := newTestStore(t)
	before := s.GetAll()

	changed, err := s.Dispatch(feed.Bookmark{PostID: "does-not-exist"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if changed {
		t.Fatal("missing id reported a change")
	}
	if !reflect.DeepEqual(s.GetAll(), before) {
		t.Fatal("collection changed")
	}
}

func TestDispatchInvalidInput(t *testing.T) {
	s, _ := newTestStore(t)
	id := s.GetAll()[0].ID
	before := s.GetAll()

	if _, err := s.Dispatch(feed.React{PostID: id, Kind: "confetti"}); err == nil {
		t.Fatal("expected error for unknown reaction kind")
	}
	if _, err := s.Dispatch(feed.AddComment{PostID: id, Text: "  "}); err == nil {
		t.Fatal("expected error for blank comment")
	}
	if !reflect.DeepEqual(s.GetAll(), before) {
		t.Fatal("invalid input changed state")
	}
}

func TestVisibleReflectsMutations(t *testing.T) {
	s, _ := newTestStore(t)
	q := feed.Query{Category: models.CategoryAll, Sort: models.SortByLikes}

	first := s.Visible(q)
	top := first[0]

	if _, err := s.Dispatch(feed.Like{PostID: top.ID}); err != nil {
		t.Fatal(err)
	}
	second := s.Visible(q)
	if second[0].ID != top.ID || second[0].Likes != top.Likes+1 {
		t.Fatal("projection served stale results after a mutation")
	}
}

func TestReplaceSwapsWholeCollection(t *testing.T) {
	s, _ := newTestStore(t)
	s.Replace([]models.Post{{ID: "only", Content: "x", Reactions: models.NewReactions()}})
	all := s.GetAll()
	if len(all) != 1 || all[0].ID != "only" {
		t.Fatalf("replace failed: %+v", all)
	}
}

func TestInitializeFallsBackOnCorruptSnapshot(t *testing.T) {
	// A backend that always hands back garbage.
	adapter := storage.NewAdapter(corruptBackend{})
	s := New(adapter)
	s.Initialize()
	if !reflect.DeepEqual(s.GetAll(), seed.Posts()) {
		t.Fatal("corrupt snapshot should fall back to seed")
	}
}

type corruptBackend struct{}

func (corruptBackend) Read(string) ([]byte, error) {
	return []byte(`{"schemaVersion":1,"posts`), nil
}

func (corruptBackend) Write(string, []byte) error { return nil }
