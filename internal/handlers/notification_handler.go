package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
	"github.com/farellandr/eventportal/internal/models"
)

type NotificationResponse struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	Type      string `json:"type"`
	IsRead    bool   `json:"isRead"`
	EventID   *int64 `json:"eventId,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func toNotificationResponse(n models.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		IsRead:    n.IsRead,
		EventID:   n.EventID,
		CreatedAt: n.CreatedAt.Format("2006-01-02T15:04:05"),
	}
}

func ListNotifications(c *gin.Context) {
	db := middleware.GetDB(c)
	sess := middleware.GetSession(c)

	var notifications []models.Notification
	if err := db.Where("user_id = ?", sess.UserID).Order("created_at DESC, id DESC").Find(&notifications).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving notifications.")
		return
	}

	response := make([]NotificationResponse, 0, len(notifications))
	for _, n := range notifications {
		response = append(response, toNotificationResponse(n))
	}

	c.JSON(http.StatusOK, gin.H{
		"notifications": response,
	})
}

func UnreadCount(c *gin.Context) {
	db := middleware.GetDB(c)
	sess := middleware.GetSession(c)

	var count int64
	if err := db.Model(&models.Notification{}).Where("user_id = ? AND is_read = ?", sess.UserID, false).Count(&count).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error counting notifications.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"count": count,
	})
}

func MarkNotificationRead(c *gin.Context) {
	notificationID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid notification ID.")
		return
	}

	db := middleware.GetDB(c)
	sess := middleware.GetSession(c)

	var notification models.Notification
	if err := db.First(&notification, notificationID).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Notification not found.")
		return
	}

	if !sess.Owns(int64(notification.UserID)) {
		helpers.RespondWithError(c, http.StatusForbidden, "You don't have permission to update this notification.")
		return
	}

	if err := db.Model(&notification).Update("is_read", true).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update notification.")
		return
	}
	notification.IsRead = true

	c.JSON(http.StatusOK, gin.H{
		"message":      "Notification marked as read.",
		"notification": toNotificationResponse(notification),
	})
}
