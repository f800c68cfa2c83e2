package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/models"
	"github.com/barberflow/api/internal/storage"
)

type GalleryHandler struct {
	db       *gorm.DB
	uploader *storage.Uploader // nil when no bucket is configured
}

func NewGalleryHandler(db *gorm.DB, uploader *storage.Uploader) *GalleryHandler {
	return &GalleryHandler{
		db:       db,
		uploader: uploader,
	}
}

// --------- Requests ---------

type AddGalleryURLRequest struct {
	URL string `json:"url" binding:"required,url"`
}

// --------- Handlers ---------

func (h *GalleryHandler) List(c *gin.Context) {
	var images []models.GalleryImage
	if err := h.db.
		Order("position ASC, id ASC").
		Find(&images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_gallery"})
		return
	}

	c.JSON(http.StatusOK, images)
}

// Add accepts either a multipart file (converted to webp and pushed to
// S3) or a plain JSON body carrying an external URL.
func (h *GalleryHandler) Add(c *gin.Context) {
	var url string

	if file, err := c.FormFile("image"); err == nil {
		if h.uploader == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "uploads_not_configured"})
			return
		}

		f, err := file.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_image"})
			return
		}
		defer f.Close()

		url, err = h.uploader.UploadImage(c.Request.Context(), f)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_upload_image"})
			return
		}
	} else {
		var req AddGalleryURLRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_request",
				"details": err.Error(),
			})
			return
		}
		url = req.URL
	}

	var position int64
	h.db.Model(&models.GalleryImage{}).Count(&position)

	image := models.GalleryImage{
		URL:      url,
		Position: int(position),
	}

	if err := h.db.Create(&image).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_add_image"})
		return
	}

	c.JSON(http.StatusCreated, image)
}

func (h *GalleryHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.Delete(&models.GalleryImage{}, "id = ?", id)
	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_image"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "image_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}
