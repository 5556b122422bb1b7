package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	fbauth "firebase.google.com/go/v4/auth"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/InternFinder-SIH/internfinder-backend/internal/auth"
	"github.com/InternFinder-SIH/internfinder-backend/internal/users"
)

var (
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidIDToken     = errors.New("invalid google token")
	ErrNoEmail            = errors.New("account has no email address")
)

// AuthService implements registration and login. Passwords are bcrypt-hashed
// and never stored in the clear; successful logins get an HS256 session token.
type AuthService struct {
	repo       *users.Repo
	firebase   *fbauth.Client
	secret     []byte
	tokenTTL   time.Duration
	bcryptCost int
}

// New creates a new AuthService. firebase may be nil, in which case Google
// sign-in is unavailable.
func New(repo *users.Repo, firebase *fbauth.Client, secret []byte, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if bcryptCost == 0 {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		repo:       repo,
		firebase:   firebase,
		secret:     secret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates a new account with a hashed password.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*users.User, error) {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil, ErrUserExists
	} else if !errors.Is(err, users.ErrNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	u, err := s.repo.Create(ctx, name, email, string(hash), "")
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			return nil, ErrUserExists
		}
		return nil, err
	}
	return u, nil
}

// Login checks the password and issues a session token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*users.User, string, error) {
	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(u.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, token, nil
}

// GoogleLogin verifies a Firebase ID token, upserts the account and issues a
// session token. First-time federated users get a random unusable password.
func (s *AuthService) GoogleLogin(ctx context.Context, idToken string) (*users.User, string, error) {
	if s.firebase == nil {
		return nil, "", fmt.Errorf("google sign-in is not configured")
	}

	decoded, err := s.firebase.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, "", ErrInvalidIDToken
	}

	email, _ := decoded.Claims["email"].(string)
	if email == "" {
		return nil, "", ErrNoEmail
	}
	name, _ := decoded.Claims["name"].(string)
	if name == "" {
		name = "Google User"
	}
	picture, _ := decoded.Claims["picture"].(string)

	// Federated accounts never log in with this; it only satisfies the
	// not-null column for users that skip password registration.
	hash, err := bcrypt.GenerateFromPassword([]byte(uuid.New().String()), s.bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash placeholder password: %w", err)
	}

	u, err := s.repo.Upsert(ctx, name, email, string(hash), picture)
	if err != nil {
		return nil, "", err
	}

	token, err := auth.GenerateToken(u.ID, s.secret, s.tokenTTL)
	if err != nil {
		return nil, "", fmt.Errorf("sign token: %w", err)
	}
	return u, token, nil
}
