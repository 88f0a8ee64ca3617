// Package donation records donation form submissions. There is no
// payment gateway; intents are validated and appended to a local log,
// mirroring the simulated checkout on the site.
package donation

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

type Frequency string

const (
	Once    Frequency = "once"
	Monthly Frequency = "monthly"
)

// Designations a donor can direct their gift to. Empty means the
// general fund.
var Designations = []string{"education", "healthcare", "water", "empowerment", "flood-relief"}

type Intent struct {
	ID          string    `json:"id"`
	Amount      float64   `json:"amount"`
	Currency    string    `json:"currency"`
	Frequency   Frequency `json:"frequency"`
	Designation string    `json:"designation,omitempty"`
	DonorName   string    `json:"donorName,omitempty"`
	DonorEmail  string    `json:"donorEmail"`
	CreatedAt   string    `json:"createdAt"`
}

var (
	ErrBadAmount      = errors.New("amount must be greater than zero")
	ErrBadFrequency   = errors.New("frequency must be once or monthly")
	ErrBadDesignation = errors.New("unknown designation")
	ErrBadEmail       = errors.New("donor email looks invalid")
)

// Validate checks a submitted intent before it is recorded.
func Validate(in Intent) error {
	if in.Amount <= 0 {
		return ErrBadAmount
	}
	if in.Frequency != Once && in.Frequency != Monthly {
		return ErrBadFrequency
	}
	if d := strings.TrimSpace(in.Designation); d != "" {
		found := false
		for _, v := range Designations {
			if v == d {
				found = true
				break
			}
		}
		if !found {
			return ErrBadDesignation
		}
	}
	email := strings.TrimSpace(in.DonorEmail)
	if email == "" || !strings.Contains(email, "@") || strings.Contains(email, " ") {
		return ErrBadEmail
	}
	return nil
}

// Log is an append-only JSON file of recorded intents.
type Log struct {
	mu   sync.Mutex
	path string
}

func NewLog(path string) *Log { return &Log{path: path} }

// Record validates, stamps and appends one intent, returning the stored
// record.
func (l *Log) Record(in Intent) (Intent, error) {
	if err := Validate(in); err != nil {
		return Intent{}, err
	}
	in.ID = "don_" + uuid.NewString()
	if in.Currency == "" {
		in.Currency = "USD"
	}
	in.Designation = strings.TrimSpace(in.Designation)
	in.DonorEmail = strings.TrimSpace(strings.ToLower(in.DonorEmail))
	in.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	l.mu.Lock()
	defer l.mu.Unlock()
	var all []Intent
	if b, err := os.ReadFile(l.path); err == nil {
		// Unreadable history is dropped rather than blocking new intents.
		_ = json.Unmarshal(b, &all)
	}
	all = append(all, in)
	b, err := json.MarshalIndent(all, "", "  ")
	if err != nil {
		return Intent{}, err
	}
	_ = os.MkdirAll(filepath.Dir(l.path), 0o755)
	if err := os.WriteFile(l.path, b, 0o644); err != nil {
		return Intent{}, err
	}
	return in, nil
}

// All returns the recorded intents, oldest first.
func (l *Log) All() []Intent {
	l.mu.Lock()
	defer l.mu.Unlock()
	var all []Intent
	if b, err := os.ReadFile(l.path); err == nil {
		_ = json.Unmarshal(b, &all)
	}
	return all
}
