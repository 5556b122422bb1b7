package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InternFinder-SIH/internfinder-backend/internal/applications/domain"
	"github.com/InternFinder-SIH/internfinder-backend/internal/applications/service"
	"github.com/InternFinder-SIH/internfinder-backend/internal/auth"
)

const (
	msgIDsRequired   = "User ID and Internship ID are required."
	msgUserMismatch  = "You can only access your own applications."
	msgInvalidStatus = "Invalid application status."
	msgSavedNotFound = "Saved internship not found."
)

// Handler handles HTTP requests for application records.
type Handler struct {
	svc *service.ApplicationService
}

// Apply handles POST /applications/apply.
func (h *Handler) Apply(c *gin.Context) {
	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgIDsRequired})
		return
	}
	if req.UserID == "" || req.InternshipID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgIDsRequired})
		return
	}
	if !h.ownedBy(c, req.UserID) {
		return
	}

	rec, err := h.svc.Apply(c.Request.Context(), service.ApplyInput{
		UserID:       req.UserID,
		InternshipID: req.InternshipID,
		Title:        req.Title,
		Company:      req.Company,
		Location:     req.Location,
		Stipend:      req.Stipend,
		Status:       domain.Status(req.Status),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, applyResponse{
		ApplicationRecord: *rec,
		Message:           "Application submitted successfully!",
	})
}

// Unsave handles POST /applications/unsave.
func (h *Handler) Unsave(c *gin.Context) {
	var req unsaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgIDsRequired})
		return
	}
	if req.UserID == "" || req.InternshipID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": msgIDsRequired})
		return
	}
	if !h.ownedBy(c, req.UserID) {
		return
	}

	if err := h.svc.Unsave(c.Request.Context(), req.UserID, req.InternshipID); err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Internship unsaved successfully."})
}

// ListByUser handles GET /applications/:userId.
func (h *Handler) ListByUser(c *gin.Context) {
	userID := c.Param("userId")
	if !h.ownedBy(c, userID) {
		return
	}

	records, err := h.svc.ListByUser(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, records)
}

// Stats handles GET /applications/stats/:userId.
func (h *Handler) Stats(c *gin.Context) {
	userID := c.Param("userId")
	if !h.ownedBy(c, userID) {
		return
	}

	stats, err := h.svc.Stats(c.Request.Context(), userID)
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// ownedBy rejects requests where the userId in the payload does not match the
// authenticated user. When no user is attached (dev bypass), the client value
// is trusted as-is.
func (h *Handler) ownedBy(c *gin.Context, userID string) bool {
	uid := auth.UserID(c)
	if uid != "" && uid != userID {
		c.JSON(http.StatusForbidden, gin.H{"message": msgUserMismatch})
		return false
	}
	return true
}

func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrMissingIDs):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgIDsRequired})
	case errors.Is(err, domain.ErrInvalidStatus):
		c.JSON(http.StatusBadRequest, gin.H{"message": msgInvalidStatus})
	case errors.Is(err, domain.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": msgSavedNotFound})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
	}
}
