package internships

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gin-gonic/gin"
)

func catalogRouter(repo *Repo, cache *Cache) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	Register(r.Group("/api/internships"), repo, cache)
	return r
}

func TestAddRequiresTitleAndCompany(t *testing.T) {
	r := catalogRouter(NewRepo(nil), NewCache(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/internships", strings.NewReader(`{"title":"Backend Intern"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Title and company are required.")
}

func TestGetServedFromSnapshot(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	cache := NewCache(client)
	require.NoError(t, cache.Snapshot(context.Background(), []Internship{
		{ID: "intern-1", Title: "Backend Intern", Company: "Acme"},
	}))

	// Repo has no backing database; a hit proves the snapshot answered.
	r := catalogRouter(NewRepo(nil), cache)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/internships/intern-1", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Backend Intern")
}

func TestRepoWithoutDatabaseFailsCleanly(t *testing.T) {
	repo := NewRepo(nil)

	_, err := repo.List(context.Background())
	assert.Error(t, err)

	_, err = repo.Get(context.Background(), "intern-1")
	assert.Error(t, err)

	_, err = repo.Add(context.Background(), Internship{Title: "x", Company: "y"})
	assert.Error(t, err)
}
