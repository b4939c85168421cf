package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/alert"
	"github.com/rmaia/go-wildfire-monitor/internal/models"
)

type alertRequest struct {
	Timestamp      time.Time `json:"timestamp" binding:"required"`
	RiskLevel      string    `json:"riskLevel" binding:"required"`
	Confirmed      bool      `json:"confirmed"`
	EnvironmentID  string    `json:"environmentId" binding:"required"`
	AssignedUserID *string   `json:"assignedUserId"`
}

func (r alertRequest) draft() alert.Draft {
	return alert.Draft{
		Timestamp:      r.Timestamp,
		RiskLevel:      models.RiskLevel(r.RiskLevel),
		Confirmed:      r.Confirmed,
		EnvironmentID:  r.EnvironmentID,
		AssignedUserID: r.AssignedUserID,
	}
}

func (h *Handler) createAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.alertEngine.Create(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, a)
}

func (h *Handler) listAlerts(c *gin.Context) {
	alerts, err := h.alertEngine.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}

func (h *Handler) getAlert(c *gin.Context) {
	a, err := h.alertEngine.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) updateAlert(c *gin.Context) {
	var req alertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	a, err := h.alertEngine.Update(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, a)
}

func (h *Handler) deleteAlert(c *gin.Context) {
	if err := h.alertEngine.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) alertsByEnvironment(c *gin.Context) {
	alerts, err := h.alertEngine.ByEnvironment(c.Request.Context(), c.Param("envId"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, alerts)
}
