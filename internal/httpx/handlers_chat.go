package httpx

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"local.dev/communityfeed-backend/internal/chat"
)

// HandleChat serves POST /chat — the canned responder behind the site's
// chat widget. The widget's typing delay is purely client-side.
func HandleChat(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var req struct {
			Message string `json:"message"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid json")
			return
		}
		msg := strings.TrimSpace(req.Message)
		if msg == "" {
			writeError(w, http.StatusBadRequest, "message is required")
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{
			"reply":     chat.Reply(msg),
			"repliedAt": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
