package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/apperr"
	"github.com/rmaia/go-wildfire-monitor/internal/incident"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

type incidentRequest struct {
	Origin      string    `json:"origin" binding:"required"`
	Description string    `json:"description" binding:"required"`
	RegionID    string    `json:"regionId" binding:"required"`
	Timestamp   time.Time `json:"timestamp" binding:"required"`
	Priority    string    `json:"priority" binding:"required"`
}

func (r incidentRequest) draft() incident.Draft {
	return incident.Draft{
		Origin:      models.Origin(r.Origin),
		Description: r.Description,
		RegionID:    r.RegionID,
		Timestamp:   r.Timestamp,
		Priority:    models.Priority(r.Priority),
	}
}

func (h *Handler) createIncident(c *gin.Context) {
	var req incidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inc, err := h.incidentEngine.Create(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, inc)
}

func (h *Handler) listIncidents(c *gin.Context) {
	incidents, err := h.incidentEngine.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) getIncident(c *gin.Context) {
	inc, err := h.incidentEngine.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inc)
}

func (h *Handler) updateIncident(c *gin.Context) {
	var req incidentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	inc, err := h.incidentEngine.Update(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, inc)
}

func (h *Handler) deleteIncident(c *gin.Context) {
	if err := h.incidentEngine.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) incidentsByOrigin(c *gin.Context) {
	origin, ok := models.ParseOrigin(c.Param("origin"))
	if !ok {
		respondError(c, apperr.Newf(apperr.KindInvalidArgument, "invalid origin: %s", c.Param("origin")))
		return
	}
	incidents, err := h.incidentEngine.ByOrigin(c.Request.Context(), origin)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) incidentsByPriority(c *gin.Context) {
	priority, ok := models.ParsePriority(c.Param("priority"))
	if !ok {
		respondError(c, apperr.Newf(apperr.KindInvalidArgument, "invalid priority: %s", c.Param("priority")))
		return
	}
	incidents, err := h.incidentEngine.ByPriority(c.Request.Context(), priority)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) incidentsByDescription(c *gin.Context) {
	fragment := c.Query("q")
	if fragment == "" {
		respondError(c, apperr.InvalidArgument("query parameter q is required"))
		return
	}
	incidents, err := h.incidentEngine.ByDescription(c.Request.Context(), fragment)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}

func (h *Handler) incidentsByRegion(c *gin.Context) {
	incidents, err := h.incidentEngine.ByRegion(c.Request.Context(), c.Param("regionId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, incidents)
}
