package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"
	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
	"github.com/farellandr/eventportal/internal/models"
)

var errPassUnconfirmed = errors.New("registration not confirmed")

// checkPassable allows passes for confirmed registrations only.
func checkPassable(status string) error {
	if !strings.EqualFold(strings.TrimSpace(status), models.RegistrationConfirmed) {
		return errPassUnconfirmed
	}
	return nil
}

// registrationNotice returns the notification type, title and message for a
// new registration in the given status.
func registrationNotice(status, eventTitle string) (string, string, string) {
	switch strings.ToUpper(status) {
	case models.RegistrationPending:
		return models.NotificationUpdate, "Inscription en attente",
			fmt.Sprintf("Votre inscription à l'événement \"%s\" est en attente de confirmation.", eventTitle)
	case models.RegistrationWaitingList:
		return models.NotificationUpdate, "Inscription en liste d'attente",
			fmt.Sprintf("Vous êtes sur la liste d'attente de l'événement \"%s\".", eventTitle)
	}
	return models.NotificationConfirmation, "Confirmation d'inscription",
		fmt.Sprintf("Votre inscription à l'événement \"%s\" a été confirmée.", eventTitle)
}

// notify stores a notification for the session user. Failures are logged and
// never fail the request.
func notify(c *gin.Context, userID int64, kind, title, message string, eventID int64) {
	db := middleware.GetDB(c)
	if db == nil {
		return
	}

	notification := models.Notification{
		UserID:  uint(userID),
		Title:   title,
		Message: message,
		Type:    kind,
		EventID: &eventID,
	}
	if err := db.Create(&notification).Error; err != nil {
		middleware.GetLogger(c).Warn("failed to store notification",
			zap.Int64("user_id", userID),
			zap.String("type", kind),
			zap.Error(err),
		)
	}
}

func RegisterForEvent(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	var req models.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}
	if !req.AcceptTerms {
		helpers.RespondWithError(c, http.StatusBadRequest, "You must accept the terms to register.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	sess := middleware.GetSession(c)
	reg, event, err := svc.Register(c.Request.Context(), sess, eventID, req)
	if err != nil {
		respondWithServiceError(c, err, "Failed to register for event.")
		return
	}

	kind, title, message := registrationNotice(reg.Status, event.Title)
	notify(c, sess.UserID, kind, title, message, event.ID)

	c.JSON(http.StatusCreated, gin.H{
		"message":      "Registration successful.",
		"registration": browse.RegistrationRow{Registration: *reg, StatusInfo: catalog.RegistrationStatusInfo(reg.Status)},
	})
}

func CancelRegistration(c *gin.Context) {
	registrationID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid registration ID.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	sess := middleware.GetSession(c)
	reg, err := svc.Cancel(c.Request.Context(), sess, registrationID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to cancel registration.")
		return
	}

	title := reg.EventTitle
	if title == "" {
		title = fmt.Sprintf("#%d", reg.EventID)
	}
	notify(c, sess.UserID, models.NotificationCancellation,
		"Annulation d'inscription",
		fmt.Sprintf("Votre inscription à l'événement \"%s\" a été annulée.", title),
		reg.EventID,
	)

	c.JSON(http.StatusOK, gin.H{
		"message":      "Registration cancelled successfully.",
		"registration": browse.RegistrationRow{Registration: *reg, StatusInfo: catalog.RegistrationStatusInfo(reg.Status)},
	})
}

func MyRegistrations(c *gin.Context) {
	svc, ok := browseService(c)
	if !ok {
		return
	}

	status := strings.ToUpper(strings.TrimSpace(c.Query("status")))
	if status != "" && status != "ALL" && !catalog.IsRegistrationStatus(status) {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid registration status.")
		return
	}

	c.JSON(http.StatusOK, svc.MyRegistrations(c.Request.Context(), middleware.GetSession(c), status))
}

// RegistrationPass renders the signed pass of a registration as a QR code PNG.
func RegistrationPass(c *gin.Context) {
	registrationID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid registration ID.")
		return
	}

	signer := middleware.GetPassSigner(c)
	if signer == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Pass generation not configured.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	sess := middleware.GetSession(c)
	reg, err := svc.UserRegistration(c.Request.Context(), sess, registrationID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve registration.")
		return
	}
	if err := checkPassable(reg.Status); err != nil {
		helpers.RespondWithError(c, http.StatusConflict, "Only confirmed registrations have a pass.")
		return
	}

	code := signer.Sign(helpers.PassClaims{
		RegistrationID: reg.ID,
		EventID:        reg.EventID,
		UserID:         sess.UserID,
	})

	png, err := qrcode.Encode(code, qrcode.Medium, 256)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate QR code.")
		return
	}

	c.Header("X-Pass-Code", code)
	c.Data(http.StatusOK, "image/png", png)
}
