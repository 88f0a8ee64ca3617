package httpx

import (
	"encoding/json"
	"errors"
	"net/http"

	"local.dev/communityfeed-backend/internal/donation"
)

// HandleDonations serves POST /donations (record an intent) and
// GET /donations (the recorded log). No payment processing happens;
// intents are only logged locally.
func HandleDonations(app *AppCtx) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			writeJSON(w, http.StatusOK, app.Donations.All())

		case http.MethodPost:
			var in donation.Intent
			if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
				writeError(w, http.StatusBadRequest, "invalid json")
				return
			}
			recorded, err := app.Donations.Record(in)
			if err != nil {
				if errors.Is(err, donation.ErrBadAmount) ||
					errors.Is(err, donation.ErrBadFrequency) ||
					errors.Is(err, donation.ErrBadDesignation) ||
					errors.Is(err, donation.ErrBadEmail) {
					writeError(w, http.StatusBadRequest, err.Error())
					return
				}
				writeError(w, http.StatusInternalServerError, "could not record donation")
				return
			}
			writeJSON(w, http.StatusCreated, recorded)

		default:
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		}
	}
}
