package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventportal/internal/catalog"
	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
)

func GetSavedFilters(c *gin.Context) {
	svc, ok := browseService(c)
	if !ok {
		return
	}

	store := svc.Filters()
	if !store.Enabled() {
		c.JSON(http.StatusOK, gin.H{
			"filters":       catalog.Criteria{},
			"active_count":  0,
			"saved":         false,
			"store_enabled": false,
		})
		return
	}

	criteria, found, err := store.Load(c.Request.Context(), middleware.GetSession(c).UserID)
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadGateway, "Error loading saved filters.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"filters":       criteria,
		"active_count":  criteria.ActiveCount(),
		"saved":         found,
		"store_enabled": true,
	})
}

func ClearSavedFilters(c *gin.Context) {
	svc, ok := browseService(c)
	if !ok {
		return
	}

	if store := svc.Filters(); store.Enabled() {
		if err := store.Clear(c.Request.Context(), middleware.GetSession(c).UserID); err != nil {
			helpers.RespondWithError(c, http.StatusBadGateway, "Error clearing saved filters.")
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Saved filters cleared.",
	})
}
