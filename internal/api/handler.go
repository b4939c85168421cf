package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/access"
	"github.com/rmaia/go-wildfire-monitor/internal/alert"
	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/catalog"
	"github.com/rmaia/go-wildfire-monitor/internal/incident"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
	"github.com/rmaia/go-wildfire-monitor/internal/repository"
	"github.com/rmaia/go-wildfire-monitor/internal/responder"
)

// executorHeader names the user on whose behalf a privileged mutation runs.
const executorHeader = "X-Executor-ID"

type Handler struct {
	accessEngine   *access.Engine
	incidentEngine *incident.Engine
	alertEngine    *alert.Engine
	responders     *responder.Service
	catalog        *catalog.Service
	users          repository.UserRepository
}

func NewHandler(
	accessEngine *access.Engine,
	incidentEngine *incident.Engine,
	alertEngine *alert.Engine,
	responders *responder.Service,
	catalogSvc *catalog.Service,
	users repository.UserRepository,
) *Handler {
	return &Handler{
		accessEngine:   accessEngine,
		incidentEngine: incidentEngine,
		alertEngine:    alertEngine,
		responders:     responders,
		catalog:        catalogSvc,
		users:          users,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/health", h.health)

	v1 := r.Group("/v1")

	users := v1.Group("/users")
	users.POST("", h.createUser)
	users.GET("", h.listUsers)
	users.GET("/:id", h.getUser)
	users.PUT("/:id", h.updateUser)
	users.DELETE("/:id", h.deleteUser)
	users.POST("/:id/link-officer", h.linkOfficer)
	users.POST("/:id/link-firefighter", h.linkFirefighter)

	incidents := v1.Group("/incidents")
	incidents.POST("", h.createIncident)
	incidents.GET("", h.listIncidents)
	incidents.GET("/:id", h.getIncident)
	incidents.PUT("/:id", h.updateIncident)
	incidents.DELETE("/:id", h.deleteIncident)
	incidents.GET("/origin/:origin", h.incidentsByOrigin)
	incidents.GET("/priority/:priority", h.incidentsByPriority)
	incidents.GET("/search", h.incidentsByDescription)
	incidents.GET("/region/:regionId", h.incidentsByRegion)

	alerts := v1.Group("/alerts")
	alerts.POST("", h.createAlert)
	alerts.GET("", h.listAlerts)
	alerts.GET("/:id", h.getAlert)
	alerts.PUT("/:id", h.updateAlert)
	alerts.DELETE("/:id", h.deleteAlert)
	alerts.GET("/environment/:envId", h.alertsByEnvironment)

	firefighters := v1.Group("/firefighters")
	firefighters.POST("", h.createFirefighter)
	firefighters.GET("", h.listFirefighters)
	firefighters.GET("/:id", h.getFirefighter)
	firefighters.PUT("/:id", h.updateFirefighter)
	firefighters.DELETE("/:id", h.deleteFirefighter)
	firefighters.GET("/shift/:shift", h.firefightersByShift)
	firefighters.GET("/search", h.firefightersByName)

	officers := v1.Group("/officers")
	officers.POST("", h.createOfficer)
	officers.GET("", h.listOfficers)
	officers.GET("/:id", h.getOfficer)
	officers.PUT("/:id", h.updateOfficer)
	officers.DELETE("/:id", h.deleteOfficer)
	officers.GET("/badge/:badge", h.officerByBadge)
	officers.GET("/search", h.officersByName)

	environments := v1.Group("/environments")
	environments.POST("", h.createEnvironment)
	environments.GET("", h.listEnvironments)
	environments.GET("/:id", h.getEnvironment)
	environments.PUT("/:id", h.updateEnvironment)
	environments.DELETE("/:id", h.deleteEnvironment)

	regions := v1.Group("/regions")
	regions.POST("", h.createRegion)
	regions.GET("", h.listRegions)
	regions.GET("/:id", h.getRegion)
	regions.PUT("/:id", h.updateRegion)
	regions.DELETE("/:id", h.deleteRegion)
	regions.GET("/search", h.regionsByName)

	routes := v1.Group("/routes")
	routes.POST("", h.createRoute)
	routes.GET("", h.listRoutes)
	routes.GET("/:id", h.getRoute)
	routes.PUT("/:id", h.updateRoute)
	routes.DELETE("/:id", h.deleteRoute)
}

func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// executor resolves the acting user from the request header. A missing
// header yields a nil executor, which the access engine rejects.
func (h *Handler) executor(c *gin.Context) (*models.User, error) {
	id := c.GetHeader(executorHeader)
	if id == "" {
		return nil, nil
	}
	return h.users.UserByID(c.Request.Context(), id)
}

// respondError maps an error kind to its transport status.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch apperr.KindOf(err) {
	case apperr.KindNotFound:
		status = http.StatusNotFound
	case apperr.KindInvalidArgument:
		status = http.StatusBadRequest
	case apperr.KindConflict:
		status = http.StatusConflict
	case apperr.KindForbidden:
		status = http.StatusForbidden
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
