package service

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/InternFinder-SIH/internfinder-backend/internal/auth"
	"github.com/InternFinder-SIH/internfinder-backend/internal/users"
)

func newTestService(t *testing.T) (*AuthService, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := New(users.NewRepo(db), nil, []byte("test-secret"), time.Hour, bcrypt.MinCost)
	return svc, mock
}

func userRows(hash string) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "photo_url", "created_at", "updated_at"}).
		AddRow("user-1", "Asha", "asha@example.com", hash, "", now, now)
}

func TestRegister(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "photo_url", "created_at", "updated_at"}))
	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	u, err := svc.Register(context.Background(), "Asha", "asha@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "asha@example.com", u.Email)
	assert.NotEqual(t, "hunter22", u.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("hunter22")))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterExistingEmail(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(userRows("some-hash"))

	_, err := svc.Register(context.Background(), "Asha", "asha@example.com", "hunter22")
	assert.ErrorIs(t, err, ErrUserExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLogin(t *testing.T) {
	svc, mock := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(userRows(string(hash)))

	u, token, err := svc.Login(context.Background(), "asha@example.com", "hunter22")
	require.NoError(t, err)

	assert.Equal(t, "user-1", u.ID)
	uid, err := auth.UserIDFromToken(token, []byte("test-secret"))
	require.NoError(t, err)
	assert.Equal(t, "user-1", uid)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginWrongPassword(t *testing.T) {
	svc, mock := newTestService(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(userRows(string(hash)))

	_, _, err = svc.Login(context.Background(), "asha@example.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLoginUnknownUser(t *testing.T) {
	svc, mock := newTestService(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("nobody@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "photo_url", "created_at", "updated_at"}))

	_, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22")
	assert.ErrorIs(t, err, users.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGoogleLoginUnconfigured(t *testing.T) {
	svc, _ := newTestService(t)

	_, _, err := svc.GoogleLogin(context.Background(), "some-id-token")
	assert.Error(t, err)
}
