package httpx

import (
	"encoding/json"
	"net/http"
	"strings"

	"local.dev/communityfeed-backend/internal/feed"
	"local.dev/communityfeed-backend/internal/models"
)

// HandleFeed serves GET /feed?category=&search=&sort= — the filter/sort
// projection of the post collection.
func HandleFeed(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		q := r.URL.Query()

		category := models.Category(strings.ToLower(strings.TrimSpace(q.Get("category"))))
		if category != "" && category != models.CategoryAll && !models.ValidCategory(category) {
			writeError(w, http.StatusBadRequest, "unknown category")
			return
		}
		sortKey := models.SortKey(strings.ToLower(strings.TrimSpace(q.Get("sort"))))
		if sortKey != "" && !models.ValidSortKey(sortKey) {
			writeError(w, http.StatusBadRequest, "unknown sort key")
			return
		}

		posts := app.Store.Visible(feed.Query{
			Category: category,
			Search:   q.Get("search"),
			Sort:     sortKey,
		})
		writeJSON(w, http.StatusOK, posts)
	}
}

// HandleFeedDetail routes /feed/{id} and the engagement subresources:
// /feed/{id}/like, /react, /bookmark, /toggle-comments, /comments.
func HandleFeedDetail(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		path := strings.TrimPrefix(r.URL.Path, "/feed/")
		if path == "" {
			http.NotFound(w, r)
			return
		}
		parts := strings.Split(path, "/")
		id := parts[0]

		// GET /feed/{id}
		if len(parts) == 1 {
			if r.Method != http.MethodGet {
				writeError(w, http.StatusMethodNotAllowed, "method not allowed")
				return
			}
			p, ok := app.Store.ByID(id)
			if !ok {
				writeError(w, http.StatusNotFound, "post not found")
				return
			}
			writeJSON(w, http.StatusOK, p)
			return
		}

		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}

		var action feed.Action
		switch parts[1] {
		case "like":
			action = feed.Like{PostID: id}
		case "bookmark":
			action = feed.Bookmark{PostID: id}
		case "toggle-comments":
			action = feed.ToggleComments{PostID: id}
		case "react":
			var req struct {
				Kind models.ReactionKind `json:"kind"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
			action = feed.React{PostID: id, Kind: req.Kind}
		case "comments":
			var req struct {
				Text string `json:"text"`
			}
			if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
			action = feed.AddComment{PostID: id, Text: req.Text}
		default:
			http.NotFound(w, r)
			return
		}

		changed, err := app.Store.Dispatch(action)
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if !changed {
			// The library treats a missing id as a silent no-op; at the
			// HTTP boundary it surfaces as not-found.
			writeError(w, http.StatusNotFound, "post not found")
			return
		}
		p, _ := app.Store.ByID(id)
		writeJSON(w, http.StatusOK, p)
	}
}
