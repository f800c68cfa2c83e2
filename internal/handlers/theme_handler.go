package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/api/internal/cache"
	"github.com/barberflow/api/internal/middleware"
)

type ThemeHandler struct {
	themes *cache.ThemeStore
}

func NewThemeHandler(themes *cache.ThemeStore) *ThemeHandler {
	return &ThemeHandler{themes: themes}
}

type SetThemeRequest struct {
	Theme string `json:"theme" binding:"required,oneof=light dark"`
}

func (h *ThemeHandler) Get(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	theme, err := h.themes.Get(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": theme})
}

func (h *ThemeHandler) Set(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	var req SetThemeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	if err := h.themes.Set(c.Request.Context(), userID, req.Theme); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_set_theme"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"theme": req.Theme})
}
