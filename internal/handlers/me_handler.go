package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/middleware"
	"github.com/barberflow/api/internal/models"
)

type MeHandler struct {
	db *gorm.DB
}

func NewMeHandler(db *gorm.DB) *MeHandler {
	return &MeHandler{db: db}
}

func (h *MeHandler) GetMe(c *gin.Context) {
	userIDVal, exists := c.Get(middleware.ContextUserID)
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user_not_in_context"})
		return
	}

	userID, ok := userIDVal.(uint)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_user_id_type"})
		return
	}

	var user models.User
	if err := h.db.First(&user, userID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "user_not_found"})
		return
	}

	resp := gin.H{
		"id":     user.ID,
		"name":   user.Name,
		"email":  user.Email,
		"phone":  user.Phone,
		"role":   user.Role,
		"avatar": user.Avatar,
	}

	if user.Role == models.RoleBarber {
		var offDays []string
		h.db.Model(&models.BarberOffDay{}).
			Where("barber_id = ?", user.ID).
			Order("date ASC").
			Pluck("date", &offDays)

		resp["specialties"] = user.Specialties
		resp["rating"] = user.Rating
		resp["earnings"] = user.Earnings
		resp["off_days"] = offDays
	}

	c.JSON(http.StatusOK, resp)
}
