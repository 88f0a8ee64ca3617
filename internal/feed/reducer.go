// Package feed holds the pure engagement transforms and the derived
// feed projection. Nothing here touches storage or does I/O; callers
// feed a post collection in and get a new one back.
package feed

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"local.dev/communityfeed-backend/internal/models"
)

// LocalAuthor is the author recorded on comments added from this browser
// session. There is no user identity in this design.
const LocalAuthor = "You"

var (
	ErrUnknownReaction = errors.New("unknown reaction kind")
	ErrEmptyComment    = errors.New("comment text is empty")
)

// Action is a user intent against the feed. Exactly one of the concrete
// types below; Apply switches over them exhaustively.
type Action interface{ isAction() }

type Like struct{ PostID string }

type React struct {
	PostID string
	Kind   models.ReactionKind
}

type Bookmark struct{ PostID string }

type ToggleComments struct{ PostID string }

type AddComment struct {
	PostID string
	Text   string
}

func (Like) isAction()           {}
func (React) isAction()          {}
func (Bookmark) isAction()       {}
func (ToggleComments) isAction() {}
func (AddComment) isAction()     {}

// Apply runs one action against the collection and returns the next
// collection. changed is false when the action referenced a missing post;
// the input is returned untouched in that case. err is set only for
// invalid input (unknown reaction kind, blank comment), never for a
// missing id.
func Apply(posts []models.Post, a Action) (out []models.Post, changed bool, err error) {
	switch act := a.(type) {
	case Like:
		out, changed = ToggleLike(posts, act.PostID)
		return out, changed, nil
	case React:
		return ToggleReaction(posts, act.PostID, act.Kind)
	case Bookmark:
		out, changed = ToggleBookmark(posts, act.PostID)
		return out, changed, nil
	case ToggleComments:
		out, changed = ToggleVisibleComments(posts, act.PostID)
		return out, changed, nil
	case AddComment:
		return AppendComment(posts, act.PostID, act.Text)
	default:
		return posts, false, nil
	}
}

func nowISO() string { return time.Now().UTC().Format(time.RFC3339) }

func indexByID(posts []models.Post, id string) int {
	for i, p := range posts {
		if p.ID == id {
			return i
		}
	}
	return -1
}

// replaceAt copies the slice and swaps in the updated post, so callers
// holding the old collection never observe the change.
func replaceAt(posts []models.Post, i int, p models.Post) []models.Post {
	out := make([]models.Post, len(posts))
	copy(out, posts)
	out[i] = p
	return out
}

// ToggleLike flips userLiked and moves likes by exactly one. likes never
// drops below zero even if a stale snapshot disagrees with the flag.
func ToggleLike(posts []models.Post, postID string) ([]models.Post, bool) {
	i := indexByID(posts, postID)
	if i < 0 {
		return posts, false
	}
	p := posts[i]
	if p.UserLiked {
		p.UserLiked = false
		if p.Likes > 0 {
			p.Likes--
		}
	} else {
		p.UserLiked = true
		p.Likes++
	}
	return replaceAt(posts, i, p), true
}

// ToggleReaction flips one reaction kind on a post. Kinds count
// independently; toggling love never touches like.
func ToggleReaction(posts []models.Post, postID string, kind models.ReactionKind) ([]models.Post, bool, error) {
	if !models.ValidReactionKind(kind) {
		return posts, false, ErrUnknownReaction
	}
	i := indexByID(posts, postID)
	if i < 0 {
		return posts, false, nil
	}
	p := posts[i]
	reactions := make([]models.Reaction, len(p.Reactions))
	copy(reactions, p.Reactions)
	for j := range reactions {
		if reactions[j].Kind != kind {
			continue
		}
		if reactions[j].UserReacted {
			reactions[j].UserReacted = false
			if reactions[j].Count > 0 {
				reactions[j].Count--
			}
		} else {
			reactions[j].UserReacted = true
			reactions[j].Count++
		}
	}
	p.Reactions = reactions
	return replaceAt(posts, i, p), true, nil
}

// ToggleBookmark flips the local bookmark flag. No counter.
func ToggleBookmark(posts []models.Post, postID string) ([]models.Post, bool) {
	i := indexByID(posts, postID)
	if i < 0 {
		return posts, false
	}
	p := posts[i]
	p.Bookmarked = !p.Bookmarked
	return replaceAt(posts, i, p), true
}

// ToggleVisibleComments flips the showComments display flag.
func ToggleVisibleComments(posts []models.Post, postID string) ([]models.Post, bool) {
	i := indexByID(posts, postID)
	if i < 0 {
		return posts, false
	}
	p := posts[i]
	p.ShowComments = !p.ShowComments
	return replaceAt(posts, i, p), true
}

// AppendComment adds a new comment in last position. Blank or
// whitespace-only text is rejected before any state is touched. New
// comments never carry replies; nesting exists only in seed data.
func AppendComment(posts []models.Post, postID, text string) ([]models.Post, bool, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return posts, false, ErrEmptyComment
	}
	i := indexByID(posts, postID)
	if i < 0 {
		return posts, false, nil
	}
	p := posts[i]
	comments := make([]models.Comment, len(p.Comments), len(p.Comments)+1)
	copy(comments, p.Comments)
	comments = append(comments, models.Comment{
		ID:      "c_" + uuid.NewString(),
		Author:  LocalAuthor,
		Content: trimmed,
		Date:    nowISO(),
	})
	p.Comments = comments
	return replaceAt(posts, i, p), true, nil
}
