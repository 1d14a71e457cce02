package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
	"github.com/farellandr/eventportal/internal/models"
)

var filterParams = []string{"keyword", "category", "location"}

func ListEvents(c *gin.Context) {
	svc, ok := browseService(c)
	if !ok {
		return
	}

	query := browse.BrowseQuery{
		Criteria: catalog.Criteria{
			Keyword:  c.Query("keyword"),
			Category: c.Query("category"),
			Location: c.Query("location"),
		},
		Explicit: helpers.HasAnyQuery(c, filterParams...),
		Page:     helpers.QueryInt(c, "page", 1),
	}

	c.JSON(http.StatusOK, svc.Browse(c.Request.Context(), middleware.GetSession(c), query))
}

func GetEvent(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	detail, err := svc.EventDetail(c.Request.Context(), middleware.GetSession(c), eventID)
	if err != nil {
		respondWithServiceError(c, err, "Error retrieving event.")
		return
	}

	c.JSON(http.StatusOK, detail)
}

func ListCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": catalog.Categories(),
	})
}

// bindEventInput reads an event from a JSON body or a multipart form. A
// multipart "image" file is uploaded and its URL becomes the event media; the
// returned path lets the caller remove it when the backend call fails.
func bindEventInput(c *gin.Context) (models.EventInput, string, error) {
	var in models.EventInput

	if !strings.HasPrefix(c.ContentType(), "multipart/") {
		if err := c.ShouldBindJSON(&in); err != nil {
			return in, "", err
		}
		if in.Date.IsZero() {
			return in, "", errors.New("date is required")
		}
		if in.Price.IsNegative() {
			return in, "", errors.New("price must not be negative")
		}
		return in, "", nil
	}

	in.Title = c.PostForm("title")
	in.Description = c.PostForm("description")
	in.Location = c.PostForm("location")
	in.Category = c.PostForm("category")
	in.Status = c.PostForm("status")

	date, err := models.ParseTimestamp(c.PostForm("date"))
	if err != nil {
		return in, "", errors.New("invalid date format")
	}
	in.Date = date

	if in.MaxParticipants, err = strconv.Atoi(c.PostForm("maxParticipants")); err != nil {
		return in, "", errors.New("invalid maxParticipants")
	}

	if raw := strings.TrimSpace(c.PostForm("price")); raw != "" {
		if in.Price, err = decimal.NewFromString(raw); err != nil || in.Price.IsNegative() {
			return in, "", errors.New("invalid price")
		}
	}

	if err := binding.Validator.ValidateStruct(&in); err != nil {
		return in, "", err
	}

	imageFile, err := c.FormFile("image")
	if err != nil {
		return in, "", nil
	}
	settings := middleware.GetSettings(c)
	imagePath, imageURL, err := helpers.UploadFile(c, imageFile, "event_images", helpers.ImageUploadConfig(settings.UploadDir))
	if err != nil {
		return in, "", err
	}
	in.MediaURLs = []string{imageURL}
	return in, imagePath, nil
}

func discardUpload(c *gin.Context, path string) {
	if path == "" {
		return
	}
	if err := helpers.DeleteFile(path); err != nil {
		middleware.GetLogger(c).Warn("failed to delete uploaded image", zap.String("path", path), zap.Error(err))
	}
}

func CreateEvent(c *gin.Context) {
	in, imagePath, err := bindEventInput(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		discardUpload(c, imagePath)
		return
	}

	event, err := svc.CreateEvent(c.Request.Context(), middleware.GetSession(c), in)
	if err != nil {
		discardUpload(c, imagePath)
		respondWithServiceError(c, err, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "Event created successfully.",
		"event_id": event.ID,
		"event":    event,
	})
}

func UpdateEvent(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	in, imagePath, err := bindEventInput(c)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		discardUpload(c, imagePath)
		return
	}

	event, err := svc.UpdateEvent(c.Request.Context(), middleware.GetSession(c), eventID, in)
	if err != nil {
		discardUpload(c, imagePath)
		respondWithServiceError(c, err, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event updated successfully.",
		"event":   event,
	})
}

func DeleteEvent(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	if err := svc.DeleteEvent(c.Request.Context(), middleware.GetSession(c), eventID); err != nil {
		respondWithServiceError(c, err, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Event deleted successfully.",
	})
}

type StatusChangeRequest struct {
	Status string `json:"status" binding:"required"`
}

func ChangeEventStatus(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	var req StatusChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	event, err := svc.ChangeEventStatus(c.Request.Context(), middleware.GetSession(c), eventID, req.Status)
	if err != nil {
		respondWithServiceError(c, err, "Failed to change event status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Event status updated successfully.",
		"event":      event,
		"statusInfo": catalog.StatusInfo(event.Status),
	})
}
