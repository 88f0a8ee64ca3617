package feed

import (
	"sort"
	"strings"

	"local.dev/communityfeed-backend/internal/models"
)

// Query selects and orders the visible slice of the feed. Zero values
// mean "all" / no search / newest first.
type Query struct {
	Category models.Category
	Search   string
	Sort     models.SortKey
}

// Visible is a pure projection: filter by category, then by
// case-insensitive substring over content, tags and author, then a
// stable sort by the chosen key. Ties keep seed order so repeated
// refilters never jitter. The input collection is not modified.
func Visible(posts []models.Post, q Query) []models.Post {
	out := make([]models.Post, 0, len(posts))
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	for _, p := range posts {
		if q.Category != "" && q.Category != models.CategoryAll && p.Category != q.Category {
			continue
		}
		if needle != "" && !matches(p, needle) {
			continue
		}
		out = append(out, p)
	}

	key := q.Sort
	if key == "" {
		key = models.SortByDate
	}
	switch key {
	case models.SortByEngagement:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Engagement > out[j].Engagement })
	case models.SortByLikes:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Likes > out[j].Likes })
	default:
		// ISO 8601 dates compare correctly as strings.
		sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	}
	return out
}

func matches(p models.Post, needle string) bool {
	if strings.Contains(strings.ToLower(p.Content), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Author), needle) {
		return true
	}
	for _, t := range p.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
