package feed

import (
	"reflect"
	"testing"

	"local.dev/communityfeed-backend/internal/models"
)

func twoPosts() []models.Post {
	return []models.Post{
		{
			ID:        "p1",
			Author:    "Amara",
			Content:   "first",
			Date:      "2026-08-01T00:00:00Z",
			Category:  models.CategoryImpact,
			Likes:     10,
			Reactions: models.NewReactions(),
			Comments:  []models.Comment{},
		},
		{
			ID:        "p2",
			Author:    "Grace",
			Content:   "second",
			Date:      "2026-08-02T00:00:00Z",
			Category:  models.CategoryNews,
			Likes:     3,
			Reactions: models.NewReactions(),
			Comments:  []models.Comment{},
		},
	}
}

func TestToggleLike(t *testing.T) {
	posts := twoPosts()

	out, changed := ToggleLike(posts, "p1")
	if !changed {
		t.Fatal("expected change")
	}
	if out[0].Likes != 11 || !out[0].UserLiked {
		t.Fatalf("after first toggle: likes=%d userLiked=%v", out[0].Likes, out[0].UserLiked)
	}

	out, changed = ToggleLike(out, "p1")
	if !changed {
		t.Fatal("expected change")
	}
	if out[0].Likes != 10 || out[0].UserLiked {
		t.Fatalf("after second toggle: likes=%d userLiked=%v", out[0].Likes, out[0].UserLiked)
	}

	// The input collection must not have been mutated along the way.
	if posts[0].Likes != 10 || posts[0].UserLiked {
		t.Fatalf("input mutated: likes=%d userLiked=%v", posts[0].Likes, posts[0].UserLiked)
	}
}

func TestLikesNeverNegative(t *testing.T) {
	posts := twoPosts()
	// A stale snapshot could carry userLiked=true with a zero counter.
	posts[0].Likes = 0
	posts[0].UserLiked = true

	out, _ := ToggleLike(posts, "p1")
	if out[0].Likes != 0 {
		t.Fatalf("likes went negative: %d", out[0].Likes)
	}
	if out[0].UserLiked {
		t.Fatal("userLiked should have flipped off")
	}
}

func TestToggleReaction(t *testing.T) {
	posts := twoPosts()

	out, changed, err := ToggleReaction(posts, "p1", models.ReactLove)
	if err != nil || !changed {
		t.Fatalf("unexpected: changed=%v err=%v", changed, err)
	}
	for _, rx := range out[0].Reactions {
		switch rx.Kind {
		case models.ReactLove:
			if rx.Count != 1 || !rx.UserReacted {
				t.Fatalf("love: count=%d userReacted=%v", rx.Count, rx.UserReacted)
			}
		default:
			// Reacting with love must not touch any other kind.
			if rx.Count != 0 || rx.UserReacted {
				t.Fatalf("%s changed: count=%d userReacted=%v", rx.Kind, rx.Count, rx.UserReacted)
			}
		}
	}

	out, _, err = ToggleReaction(out, "p1", models.ReactLove)
	if err != nil {
		t.Fatal(err)
	}
	for _, rx := range out[0].Reactions {
		if rx.Count != 0 || rx.UserReacted {
			t.Fatalf("%s not restored: count=%d userReacted=%v", rx.Kind, rx.Count, rx.UserReacted)
		}
	}
}

func TestToggleReactionUnknownKind(t *testing.T) {
	posts := twoPosts()
	out, changed, err := ToggleReaction(posts, "p1", models.ReactionKind("wow"))
	if err != ErrUnknownReaction {
		t.Fatalf("expected ErrUnknownReaction, got %v", err)
	}
	if changed {
		t.Fatal("invalid kind must not change state")
	}
	if !reflect.DeepEqual(out, posts) {
		t.Fatal("collection changed on invalid input")
	}
}

func TestMissingIDIsNoOp(t *testing.T) {
	posts := twoPosts()
	before := append([]models.Post(nil), posts...)

	actions := []Action{
		Like{PostID: "nope"},
		React{PostID: "nope", Kind: models.ReactSad},
		Bookmark{PostID: "nope"},
		ToggleComments{PostID: "nope"},
		AddComment{PostID: "nope", Text: "hello"},
	}
	for _, a := range actions {
		out, changed, err := Apply(posts, a)
		if err != nil {
			t.Fatalf("%T: unexpected error %v", a, err)
		}
		if changed {
			t.Fatalf("%T: reported change for missing id", a)
		}
		if !reflect.DeepEqual(out, before) {
			t.Fatalf("%T: collection changed for missing id", a)
		}
	}
}

func TestAppendCommentOrder(t *testing.T) {
	posts := twoPosts()
	var err error
	var changed bool
	for _, text := range []string{"A", "B", "C"} {
		posts, changed, err = AppendComment(posts, "p1", text)
		if err != nil || !changed {
			t.Fatalf("append %q: changed=%v err=%v", text, changed, err)
		}
	}
	got := posts[0].Comments
	if len(got) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(got))
	}
	for i, want := range []string{"A", "B", "C"} {
		if got[i].Content != want {
			t.Fatalf("comment %d = %q, want %q", i, got[i].Content, want)
		}
		if got[i].Author != LocalAuthor {
			t.Fatalf("comment %d author = %q", i, got[i].Author)
		}
		if got[i].ID == "" || got[i].Likes != 0 || len(got[i].Replies) != 0 {
			t.Fatalf("comment %d malformed: %+v", i, got[i])
		}
	}
	if got[0].ID == got[1].ID || got[1].ID == got[2].ID {
		t.Fatal("comment ids are not unique")
	}
}

func TestAppendCommentRejectsBlank(t *testing.T) {
	posts := twoPosts()
	for _, text := range []string{"", "   ", "\n\t "} {
		out, changed, err := AppendComment(posts, "p1", text)
		if err != ErrEmptyComment {
			t.Fatalf("text %q: expected ErrEmptyComment, got %v", text, err)
		}
		if changed || len(out[0].Comments) != 0 {
			t.Fatalf("text %q: blank comment appended", text)
		}
	}
}

func TestToggleBookmarkAndComments(t *testing.T) {
	posts := twoPosts()

	out, changed := ToggleBookmark(posts, "p2")
	if !changed || !out[1].Bookmarked {
		t.Fatalf("bookmark: changed=%v bookmarked=%v", changed, out[1].Bookmarked)
	}
	if out[1].Likes != 3 {
		t.Fatal("bookmark must not touch likes")
	}

	out, changed = ToggleVisibleComments(out, "p2")
	if !changed || !out[1].ShowComments {
		t.Fatalf("toggle comments: changed=%v showComments=%v", changed, out[1].ShowComments)
	}
}
