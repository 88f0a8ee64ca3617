package models

// Category is the fixed set of content categories a post can belong to.
type Category string

const (
	CategoryImpact      Category = "impact"
	CategoryScholarship Category = "scholarship"
	CategoryHealthcare  Category = "healthcare"
	CategoryEmpowerment Category = "empowerment"
	CategoryNews        Category = "news"
	CategoryStory       Category = "story"
	CategoryUrgent      Category = "urgent"
)

// CategoryAll is a filter value only, never stored on a post.
const CategoryAll Category = "all"

func ValidCategory(c Category) bool {
	switch c {
	case CategoryImpact, CategoryScholarship, CategoryHealthcare,
		CategoryEmpowerment, CategoryNews, CategoryStory, CategoryUrgent:
		return true
	}
	return false
}

// ReactionKind is the fixed set of reactions; each kind counts independently.
type ReactionKind string

const (
	ReactLike  ReactionKind = "like"
	ReactLove  ReactionKind = "love"
	ReactLaugh ReactionKind = "laugh"
	ReactSad   ReactionKind = "sad"
	ReactAngry ReactionKind = "angry"
)

// ReactionKinds in display order. Seed data and NewReactions keep this order.
var ReactionKinds = []ReactionKind{ReactLike, ReactLove, ReactLaugh, ReactSad, ReactAngry}

func ValidReactionKind(k ReactionKind) bool {
	for _, rk := range ReactionKinds {
		if rk == k {
			return true
		}
	}
	return false
}

type Reaction struct {
	Kind        ReactionKind `json:"kind"`
	Count       int          `json:"count"`
	UserReacted bool         `json:"userReacted"`
}

// NewReactions returns a zeroed reaction set in display order.
func NewReactions() []Reaction {
	out := make([]Reaction, 0, len(ReactionKinds))
	for _, k := range ReactionKinds {
		out = append(out, Reaction{Kind: k})
	}
	return out
}

type Comment struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Role      string    `json:"role,omitempty"`
	Content   string    `json:"content"`
	Date      string    `json:"date"` // ISO 8601
	AvatarRef string    `json:"avatarRef,omitempty"`
	Likes     int       `json:"likes"`
	Replies   []Comment `json:"replies,omitempty"` // one level deep, seed only
}

// CTA is an optional call-to-action attached to a post.
type CTA struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

type Post struct {
	ID         string     `json:"id"`
	Author     string     `json:"author"`
	Role       string     `json:"role,omitempty"`
	AvatarRef  string     `json:"avatarRef,omitempty"`
	Date       string     `json:"date"` // ISO 8601
	Location   string     `json:"location,omitempty"`
	Content    string     `json:"content"`
	MediaRef   string     `json:"mediaRef,omitempty"`
	Category   Category   `json:"category"`
	Tags       []string   `json:"tags"`
	IsPinned   bool       `json:"isPinned"`
	Likes      int        `json:"likes"`
	UserLiked  bool       `json:"userLiked"`
	Bookmarked bool       `json:"bookmarked"`
	Views      int        `json:"views"`
	Shares     int        `json:"shares"`
	Reactions  []Reaction `json:"reactions"`
	Comments   []Comment  `json:"comments"`
	// ShowComments is display state; it rides along with the post for
	// simplicity, matching the source behavior.
	ShowComments bool `json:"showComments"`
	// Engagement is a precomputed 0-100 score used only for sorting/labels.
	Engagement int  `json:"engagement"`
	CTA        *CTA `json:"cta,omitempty"`
}

// SortKey selects the ordering of the feed projection.
type SortKey string

const (
	SortByDate       SortKey = "date"
	SortByEngagement SortKey = "engagement"
	SortByLikes      SortKey = "likes"
)

func ValidSortKey(k SortKey) bool {
	switch k {
	case SortByDate, SortByEngagement, SortByLikes:
		return true
	}
	return false
}
