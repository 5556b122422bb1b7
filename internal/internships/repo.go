package internships

import (
	"context"
	"errors"
	"fmt"

	"firebase.google.com/go/v4/db"
)

var ErrNotFound = errors.New("internship not found")

const catalogPath = "internships"

// Internship is one catalog entry. Entries live in the Realtime Database
// under push-generated keys.
type Internship struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Company     string   `json:"company"`
	Skills      []string `json:"skills,omitempty"`
	Location    string   `json:"location"`
	Sector      string   `json:"sector,omitempty"`
	Duration    string   `json:"duration,omitempty"`
	Stipend     string   `json:"stipend,omitempty"`
	Description string   `json:"description,omitempty"`
}

// Repo reads and writes the internship catalog in the Realtime Database.
type Repo struct {
	db *db.Client
}

// NewRepo creates a new catalog repository. client may be nil when no
// database URL is configured; every call then fails cleanly.
func NewRepo(client *db.Client) *Repo {
	return &Repo{db: client}
}

// Add pushes a new catalog entry and returns the generated key.
func (r *Repo) Add(ctx context.Context, in Internship) (string, error) {
	if r.db == nil {
		return "", fmt.Errorf("realtime database not configured")
	}
	in.ID = ""
	ref, err := r.db.NewRef(catalogPath).Push(ctx, in)
	if err != nil {
		return "", fmt.Errorf("push internship: %w", err)
	}
	return ref.Key, nil
}

// Get fetches one catalog entry by key.
func (r *Repo) Get(ctx context.Context, id string) (*Internship, error) {
	if r.db == nil {
		return nil, fmt.Errorf("realtime database not configured")
	}
	var in Internship
	if err := r.db.NewRef(catalogPath+"/"+id).Get(ctx, &in); err != nil {
		return nil, fmt.Errorf("get internship %s: %w", id, err)
	}
	// RTDB returns a zero value, not an error, for a missing key.
	if in.Title == "" && in.Company == "" {
		return nil, ErrNotFound
	}
	in.ID = id
	return &in, nil
}

// List returns the whole catalog.
func (r *Repo) List(ctx context.Context) ([]Internship, error) {
	if r.db == nil {
		return nil, fmt.Errorf("realtime database not configured")
	}
	var raw map[string]Internship
	if err := r.db.NewRef(catalogPath).Get(ctx, &raw); err != nil {
		return nil, fmt.Errorf("list internships: %w", err)
	}

	out := make([]Internship, 0, len(raw))
	for id, in := range raw {
		in.ID = id
		out = append(out, in)
	}
	return out, nil
}
