package handlers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/farellandr/eventportal/internal/browse"
	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
)

func manageQuery(c *gin.Context) (browse.ManageQuery, bool) {
	query := browse.ManageQuery{
		Criteria: catalog.Criteria{
			Keyword:  c.Query("search"),
			Category: c.Query("category"),
			Status:   c.Query("status"),
		},
		Page: helpers.QueryInt(c, "page", 1),
	}

	if raw := c.Query("sort"); raw != "" {
		key, ok := catalog.ParseSortKey(raw)
		if !ok {
			helpers.RespondWithError(c, http.StatusBadRequest, "Invalid sort. Use date, title, participants or revenue.")
			return query, false
		}
		query.Sort = key
	}
	return query, true
}

func ManageEvents(c *gin.Context) {
	query, ok := manageQuery(c)
	if !ok {
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, svc.Manage(c.Request.Context(), middleware.GetSession(c), query))
}

func sendCSV(c *gin.Context, filename string, buf *bytes.Buffer) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
}

func ExportEvents(c *gin.Context) {
	query, ok := manageQuery(c)
	if !ok {
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	events, err := svc.ExportEvents(c.Request.Context(), middleware.GetSession(c), query)
	if err != nil {
		respondWithServiceError(c, err, "Failed to export events.")
		return
	}

	var buf bytes.Buffer
	if err := catalog.WriteEventsCSV(&buf, events, svc.Now()); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to export events.")
		return
	}
	sendCSV(c, "events.csv", &buf)
}

func OrganizerStats(c *gin.Context) {
	svc, ok := browseService(c)
	if !ok {
		return
	}

	stats, err := svc.Stats(c.Request.Context(), middleware.GetSession(c))
	if err != nil {
		respondWithServiceError(c, err, "Failed to compute statistics.")
		return
	}

	c.JSON(http.StatusOK, stats)
}

func EventRegistrations(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	result, err := svc.EventRegistrations(c.Request.Context(), middleware.GetSession(c), eventID, c.Query("status"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to retrieve registrations.")
		return
	}

	c.JSON(http.StatusOK, result)
}

func ExportEventRegistrations(c *gin.Context) {
	eventID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	event, regs, err := svc.ExportRegistrations(c.Request.Context(), middleware.GetSession(c), eventID, c.Query("status"))
	if err != nil {
		respondWithServiceError(c, err, "Failed to export registrations.")
		return
	}

	var buf bytes.Buffer
	if err := catalog.WriteRegistrationsCSV(&buf, regs); err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to export registrations.")
		return
	}
	sendCSV(c, fmt.Sprintf("event-%d-registrations.csv", event.ID), &buf)
}

type RegistrationStatusRequest struct {
	EventID int64  `json:"eventId" binding:"required,min=1"`
	Status  string `json:"status" binding:"required"`
}

func UpdateRegistrationStatus(c *gin.Context) {
	registrationID, err := helpers.ParseID(c, "id")
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid registration ID.")
		return
	}

	var req RegistrationStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	reg, err := svc.UpdateRegistrationStatus(c.Request.Context(), middleware.GetSession(c), req.EventID, registrationID, req.Status)
	if err != nil {
		respondWithServiceError(c, err, "Failed to update registration status.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":      "Registration status updated successfully.",
		"registration": browse.RegistrationRow{Registration: *reg, StatusInfo: catalog.RegistrationStatusInfo(reg.Status)},
	})
}

type VerifyPassRequest struct {
	Code string `json:"code" binding:"required"`
}

// VerifyPass checks a scanned registration pass against the organizer's
// event and reports whether the holder may enter.
func VerifyPass(c *gin.Context) {
	var req VerifyPassRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	signer := middleware.GetPassSigner(c)
	if signer == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Pass verification not configured.")
		return
	}

	claims, err := signer.Verify(req.Code)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid pass.")
		return
	}

	svc, ok := browseService(c)
	if !ok {
		return
	}

	reg, err := svc.EventRegistration(c.Request.Context(), middleware.GetSession(c), claims.EventID, claims.RegistrationID)
	if err != nil {
		respondWithServiceError(c, err, "Failed to verify pass.")
		return
	}
	if reg.UserID != claims.UserID {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid pass.")
		return
	}

	status := catalog.RegistrationStatusInfo(reg.Status)
	valid := checkPassable(reg.Status) == nil
	middleware.GetLogger(c).Info("pass verified",
		zap.Int64("registration_id", reg.ID),
		zap.Int64("event_id", reg.EventID),
		zap.Bool("valid", valid),
	)

	c.JSON(http.StatusOK, gin.H{
		"valid":        valid,
		"registration": browse.RegistrationRow{Registration: *reg, StatusInfo: status},
	})
}
