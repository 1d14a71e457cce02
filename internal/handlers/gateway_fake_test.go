package handlers

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"github.com/farellandr/eventportal/internal/models"
)

// fakeGateway serves the backend REST API from memory.
type fakeGateway struct {
	mu sync.Mutex

	events        []models.Event
	registrations []models.Registration
	inputs        []models.EventInput
	failCreate    bool
	nextID        int64
	// registerStatus is the status new registrations get. Empty means CONFIRMED.
	registerStatus string
}

func newFakeGateway(events []models.Event, regs []models.Registration) *fakeGateway {
	return &fakeGateway{events: events, registrations: regs, nextID: 500}
}

func pathID(c *gin.Context, name string) int64 {
	id, _ := strconv.ParseInt(c.Param(name), 10, 64)
	return id
}

func (g *fakeGateway) findEvent(id int64) int {
	for i, e := range g.events {
		if e.ID == id {
			return i
		}
	}
	return -1
}

func (g *fakeGateway) handler() http.Handler {
	r := gin.New()

	r.GET("/api/events", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		c.JSON(http.StatusOK, g.events)
	})

	r.GET("/api/events/:id", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if i := g.findEvent(pathID(c, "id")); i >= 0 {
			c.JSON(http.StatusOK, g.events[i])
			return
		}
		c.Status(http.StatusNotFound)
	})

	r.GET("/api/events/organizer/:organizerId", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		owner := pathID(c, "organizerId")
		out := []models.Event{}
		for _, e := range g.events {
			if e.OrganizerID == owner {
				out = append(out, e)
			}
		}
		c.JSON(http.StatusOK, out)
	})

	r.POST("/api/events", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		if g.failCreate {
			c.Status(http.StatusInternalServerError)
			return
		}
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		g.inputs = append(g.inputs, in)
		g.nextID++
		e := models.Event{
			ID:              g.nextID,
			Title:           in.Title,
			Description:     in.Description,
			Date:            in.Date,
			Location:        in.Location,
			Category:        in.Category,
			MediaURLs:       in.MediaURLs,
			MaxParticipants: in.MaxParticipants,
			Price:           in.Price,
			OrganizerID:     in.OrganizerID,
			Status:          in.Status,
			IsActive:        in.IsActive,
		}
		g.events = append(g.events, e)
		c.JSON(http.StatusCreated, e)
	})

	r.PUT("/api/events/:id", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		var in models.EventInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		g.inputs = append(g.inputs, in)
		i := g.findEvent(pathID(c, "id"))
		if i < 0 {
			c.Status(http.StatusNotFound)
			return
		}
		e := &g.events[i]
		e.Title = in.Title
		e.Location = in.Location
		e.Category = in.Category
		e.Status = in.Status
		e.IsActive = in.IsActive
		c.JSON(http.StatusOK, e)
	})

	r.DELETE("/api/events/:id", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		i := g.findEvent(pathID(c, "id"))
		if i < 0 {
			c.Status(http.StatusNotFound)
			return
		}
		g.events = append(g.events[:i], g.events[i+1:]...)
		c.Status(http.StatusNoContent)
	})

	listRegistrations := func(match func(models.Registration) bool) gin.HandlerFunc {
		return func(c *gin.Context) {
			g.mu.Lock()
			defer g.mu.Unlock()
			out := []models.Registration{}
			for _, r := range g.registrations {
				if match(r) {
					out = append(out, r)
				}
			}
			c.JSON(http.StatusOK, out)
		}
	}

	r.GET("/api/registrations/user/:userId", func(c *gin.Context) {
		user := pathID(c, "userId")
		listRegistrations(func(r models.Registration) bool { return r.UserID == user })(c)
	})

	r.GET("/api/registrations/event/:eventId", func(c *gin.Context) {
		event := pathID(c, "eventId")
		listRegistrations(func(r models.Registration) bool { return r.EventID == event })(c)
	})

	r.POST("/api/registrations/events/:eventId", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		var req models.RegistrationRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		g.nextID++
		reg := models.Registration{
			ID:               g.nextID,
			EventID:          pathID(c, "eventId"),
			UserID:           req.UserID,
			ParticipantName:  req.ParticipantName,
			ParticipantEmail: req.ParticipantEmail,
			Status:           models.RegistrationConfirmed,
		}
		if g.registerStatus != "" {
			reg.Status = g.registerStatus
		}
		g.registrations = append(g.registrations, reg)
		c.JSON(http.StatusCreated, reg)
	})

	r.DELETE("/api/registrations/:id", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		id := pathID(c, "id")
		for i := range g.registrations {
			if g.registrations[i].ID == id {
				g.registrations[i].Status = models.RegistrationCancelled
				c.Status(http.StatusNoContent)
				return
			}
		}
		c.Status(http.StatusNotFound)
	})

	r.PUT("/api/registrations/:id/status", func(c *gin.Context) {
		g.mu.Lock()
		defer g.mu.Unlock()
		var body struct {
			Status string `json:"status"`
		}
		if err := c.ShouldBindJSON(&body); err != nil {
			c.Status(http.StatusBadRequest)
			return
		}
		id := pathID(c, "id")
		for i := range g.registrations {
			if g.registrations[i].ID == id {
				g.registrations[i].Status = body.Status
				c.JSON(http.StatusOK, g.registrations[i])
				return
			}
		}
		c.Status(http.StatusNotFound)
	})

	return r
}
