package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/InternFinder-SIH/internfinder-backend/internal/auth/service"
	"github.com/InternFinder-SIH/internfinder-backend/internal/users"
)

func authRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	svc := service.New(users.NewRepo(db), nil, []byte("test-secret"), time.Hour, bcrypt.MinCost)

	gin.SetMode(gin.TestMode)
	r := gin.New()
	New(svc).Register(r.Group("/api/auth"))
	return r, mock
}

func emptyUserRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "email", "password_hash", "photo_url", "created_at", "updated_at"})
}

func TestRegisterEndpoint(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(emptyUserRows())
	now := time.Now()
	mock.ExpectQuery("INSERT INTO users").
		WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

	body := `{"name":"Asha","email":"asha@example.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "User registered successfully.")
	assert.NotContains(t, w.Body.String(), "password_hash")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRegisterEndpointExistingUser(t *testing.T) {
	r, mock := authRouter(t)

	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(emptyUserRows().AddRow("user-1", "Asha", "asha@example.com", "hash", "", now, now))

	body := `{"name":"Asha","email":"asha@example.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "User already exists.")
}

func TestRegisterEndpointMissingFields(t *testing.T) {
	r, _ := authRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register", strings.NewReader(`{"name":"Asha"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLoginEndpoint(t *testing.T) {
	r, mock := authRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(emptyUserRows().AddRow("user-1", "Asha", "asha@example.com", string(hash), "", now, now))

	body := `{"email":"asha@example.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Login successful.")
	assert.Contains(t, w.Body.String(), `"token"`)
}

func TestLoginEndpointWrongPassword(t *testing.T) {
	r, mock := authRouter(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("hunter22"), bcrypt.MinCost)
	require.NoError(t, err)
	now := time.Now()
	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("asha@example.com").
		WillReturnRows(emptyUserRows().AddRow("user-1", "Asha", "asha@example.com", string(hash), "", now, now))

	body := `{"email":"asha@example.com","password":"wrong"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid credentials.")
}

func TestLoginEndpointUnknownUser(t *testing.T) {
	r, mock := authRouter(t)

	mock.ExpectQuery("SELECT id, name, email, password_hash").
		WithArgs("nobody@example.com").
		WillReturnRows(emptyUserRows())

	body := `{"email":"nobody@example.com","password":"hunter22"}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found.")
}

func TestLogoutEndpoint(t *testing.T) {
	r, _ := authRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/logout", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logout successful.")
}
