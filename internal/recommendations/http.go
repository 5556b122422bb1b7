package recommendations

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InternFinder-SIH/internfinder-backend/internal/ml"
)

type recommendRequest struct {
	Skills         []string `json:"skills"`
	Sectors        []string `json:"sectors"`
	InternshipType string   `json:"internshipType"`
}

// Handler handles recommendation requests.
type Handler struct {
	svc *Service
}

// Register registers the recommendation routes.
func Register(rg *gin.RouterGroup, svc *Service) {
	h := &Handler{svc: svc}
	rg.POST("", h.recommend)
}

func (h *Handler) recommend(c *gin.Context) {
	var req recommendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request body."})
		return
	}
	if len(req.Skills) == 0 && len(req.Sectors) == 0 && req.InternshipType == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Please select at least one skill, sector, or internship type."})
		return
	}

	results, err := h.svc.Recommend(c.Request.Context(), ml.ProfileRequest{
		Skills:         req.Skills,
		Sectors:        req.Sectors,
		InternshipType: req.InternshipType,
	})
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to fetch internships from the backend."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"recommendations": results})
}
