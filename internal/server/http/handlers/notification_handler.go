package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/GuiiMoreira/jobah-api/internal/server/http/dto"
)

// NotificationHandler serves the caller's inbox.
type NotificationHandler struct {
	facade NotificationFacade
}

func NewNotificationHandler(facade NotificationFacade) *NotificationHandler {
	return &NotificationHandler{facade: facade}
}

// List handles GET /api/notifications.
func (h *NotificationHandler) List(c *gin.Context) {
	notifications, err := h.facade.Notifications(c.Request.Context(), CurrentUserID(c))
	if err != nil {
		writeError(c, err)
		return
	}

	resp := make([]dto.NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		resp = append(resp, toNotificationResponse(n))
	}
	c.JSON(http.StatusOK, resp)
}

// MarkRead handles POST /api/notifications/read.
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	if err := h.facade.MarkNotificationsRead(c.Request.Context(), CurrentUserID(c)); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Delete handles DELETE /api/notifications/:id.
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.facade.DeleteNotification(c.Request.Context(), CurrentUserID(c), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
