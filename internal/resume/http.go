package resume

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/InternFinder-SIH/internfinder-backend/internal/auth"
)

// Handler handles resume storage and parsing requests.
type Handler struct {
	svc *Service
}

// Register registers the resume routes.
func Register(rg *gin.RouterGroup, svc *Service) {
	h := &Handler{svc: svc}

	rg.POST("/upload-url", h.uploadURL)
	rg.GET("/download-url", h.downloadURL)
	rg.POST("/parse", h.parse)
}

func (h *Handler) uploadURL(c *gin.Context) {
	uid := auth.UserID(c)
	if uid == "" {
		uid = "anonymous"
	}

	url, key, err := h.svc.UploadURL(c.Request.Context(), uid)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url, "key": key})
}

func (h *Handler) downloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Key is required."})
		return
	}

	url, err := h.svc.DownloadURL(c.Request.Context(), key)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}

func (h *Handler) parse(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Resume file is required."})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": err.Error()})
		return
	}
	defer file.Close()

	content, err := h.svc.Parse(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"message": "Failed to parse resume."})
		return
	}

	c.JSON(http.StatusOK, content)
}
