package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/barberflow/api/internal/httpresp"
	"github.com/barberflow/api/internal/middleware"
	"github.com/barberflow/api/internal/notify"
)

type NotificationHandler struct {
	store *notify.Store
}

func NewNotificationHandler(store *notify.Store) *NotificationHandler {
	return &NotificationHandler{store: store}
}

func (h *NotificationHandler) List(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	notes, err := h.store.ListForUser(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_list_notifications"})
		return
	}

	httpresp.List(c, notes)
}

// MarkAllRead only touches the caller's notifications.
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	userID := c.MustGet(middleware.ContextUserID).(uint)

	if err := h.store.MarkAllRead(userID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_mark_read"})
		return
	}

	c.Status(http.StatusNoContent)
}
