package internships

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for the internship catalog.
type Handler struct {
	repo  *Repo
	cache *Cache
}

// Register registers the catalog routes.
func Register(rg *gin.RouterGroup, repo *Repo, cache *Cache) {
	h := &Handler{repo: repo, cache: cache}

	rg.POST("", h.add)
	rg.GET("", h.list)
	rg.GET("/:id", h.get)
}

func (h *Handler) add(c *gin.Context) {
	var in Internship
	if err := c.ShouldBindJSON(&in); err != nil || strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Company) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Title and company are required."})
		return
	}

	id, err := h.repo.Add(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	in.ID = id
	c.JSON(http.StatusCreated, gin.H{"internship": in, "message": "Internship added successfully."})
}

func (h *Handler) get(c *gin.Context) {
	id := c.Param("id")

	// Snapshot first; the catalog changes rarely.
	if cached, err := h.cache.Get(c.Request.Context(), id); err == nil && cached != nil {
		c.JSON(http.StatusOK, cached)
		return
	}

	in, err := h.repo.Get(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": "Internship not found."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, in)
}

func (h *Handler) list(c *gin.Context) {
	items, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}
