package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/barberflow/api/internal/httpresp"
	"github.com/barberflow/api/internal/middleware"
	"github.com/barberflow/api/internal/models"
	ucBooking "github.com/barberflow/api/internal/usecase/booking"
	"github.com/barberflow/api/internal/validators"
)

type BarberHandler struct {
	db           *gorm.DB
	toggleDayOff *ucBooking.ToggleDayOff
}

func NewBarberHandler(db *gorm.DB, toggleDayOff *ucBooking.ToggleDayOff) *BarberHandler {
	return &BarberHandler{
		db:           db,
		toggleDayOff: toggleDayOff,
	}
}

// --------- Requests ---------

type CreateBarberRequest struct {
	Name        string `json:"name" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone"`
	Avatar      string `json:"avatar"`
	Specialties string `json:"specialties"`
}

type ToggleDayOffRequest struct {
	Date string `json:"date" binding:"required"`
}

// --------- Handlers ---------

func (h *BarberHandler) List(c *gin.Context) {
	var barbers []models.User
	if err := h.db.
		Where("role = ?", models.RoleBarber).
		Order("id ASC").
		Find(&barbers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_barbers"})
		return
	}

	// attach each barber's off-day set so clients can grey out dates
	type barberWithOffDays struct {
		models.User
		OffDays []string `json:"off_days"`
	}

	out := make([]barberWithOffDays, 0, len(barbers))
	for _, b := range barbers {
		var offDays []string
		h.db.Model(&models.BarberOffDay{}).
			Where("barber_id = ?", b.ID).
			Order("date ASC").
			Pluck("date", &offDays)

		out = append(out, barberWithOffDays{User: b, OffDays: offDays})
	}

	httpresp.List(c, out)
}

func (h *BarberHandler) Create(c *gin.Context) {
	var req CreateBarberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_email_domain"})
		return
	}

	if req.Phone != "" && !validators.IsPhoneValid(req.Phone) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_phone"})
		return
	}

	barber := models.User{
		Name:        req.Name,
		Email:       email,
		Phone:       req.Phone,
		Avatar:      req.Avatar,
		Role:        models.RoleBarber,
		Specialties: strings.ToLower(req.Specialties),
		Rating:      5.0,
		Earnings:    0,
	}

	if err := h.db.Create(&barber).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_create_barber"})
		return
	}

	c.JSON(http.StatusCreated, barber)
}

func (h *BarberHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	res := h.db.
		Where("id = ? AND role = ?", id, models.RoleBarber).
		Delete(&models.User{})

	if res.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_delete_barber"})
		return
	}
	if res.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "barber_not_found"})
		return
	}

	c.Status(http.StatusNoContent)
}

// ToggleDayOff flips the calling barber's availability for one date.
func (h *BarberHandler) ToggleDayOff(c *gin.Context) {
	barberID := c.MustGet(middleware.ContextUserID).(uint)

	var req ToggleDayOffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	offDays, dayOff, err := h.toggleDayOff.Execute(c.Request.Context(), barberID, req.Date)
	if err != nil {
		writeBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":     req.Date,
		"day_off":  dayOff,
		"off_days": offDays,
	})
}
