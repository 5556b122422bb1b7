package users

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

var (
	ErrNotFound   = errors.New("user not found")
	ErrEmailTaken = errors.New("email already registered")
)

// User is a registered account. PasswordHash never leaves the server.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	PhotoURL     string    `json:"photo,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Repo provides persistence operations for users.
type Repo struct {
	db *sql.DB
}

// NewRepo creates a new user repository.
func NewRepo(db *sql.DB) *Repo {
	return &Repo{db: db}
}

// Create inserts a new user. A duplicate email is ErrEmailTaken.
func (r *Repo) Create(ctx context.Context, name, email, passwordHash, photoURL string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email required")
	}

	u := &User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		PhotoURL:     photoURL,
	}

	const q = `
INSERT INTO users (id, name, email, password_hash, photo_url)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
RETURNING created_at, updated_at;
`
	err := r.db.QueryRowContext(ctx, q, u.ID, u.Name, u.Email, u.PasswordHash, u.PhotoURL).
		Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, ErrEmailTaken
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return u, nil
}

// GetByEmail looks a user up by email.
func (r *Repo) GetByEmail(ctx context.Context, email string) (*User, error) {
	const q = `
SELECT id, name, email, password_hash, COALESCE(photo_url, ''), created_at, updated_at
FROM users
WHERE email = $1;
`
	var u User
	err := r.db.QueryRowContext(ctx, q, email).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get user by email: %w", err)
	}
	return &u, nil
}

// Upsert creates the user on first federated sign-in and refreshes the
// profile fields on later ones. The password hash is kept if already set.
func (r *Repo) Upsert(ctx context.Context, name, email, passwordHash, photoURL string) (*User, error) {
	if email == "" {
		return nil, fmt.Errorf("email required")
	}

	const q = `
INSERT INTO users (id, name, email, password_hash, photo_url)
VALUES ($1, $2, $3, $4, NULLIF($5, ''))
ON CONFLICT (email) DO UPDATE
SET
  name = COALESCE(NULLIF(EXCLUDED.name, ''), users.name),
  photo_url = COALESCE(EXCLUDED.photo_url, users.photo_url),
  updated_at = NOW()
RETURNING id, name, email, password_hash, COALESCE(photo_url, ''), created_at, updated_at;
`
	var u User
	err := r.db.QueryRowContext(ctx, q, uuid.New().String(), name, email, passwordHash, photoURL).
		Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.PhotoURL, &u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("upsert user: %w", err)
	}
	return &u, nil
}
