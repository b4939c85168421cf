package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/responder"
)

type firefighterRequest struct {
	UserID *string `json:"userId"`
	Name   string  `json:"name" binding:"required"`
	Shift  string  `json:"shift" binding:"required"`
	Phone  string  `json:"phone"`
}

func (r firefighterRequest) draft() responder.FirefighterDraft {
	return responder.FirefighterDraft{
		UserID: r.UserID,
		Name:   r.Name,
		Shift:  r.Shift,
		Phone:  r.Phone,
	}
}

func (h *Handler) createFirefighter(c *gin.Context) {
	var req firefighterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := h.responders.CreateFirefighter(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

func (h *Handler) listFirefighters(c *gin.Context) {
	firefighters, err := h.responders.ListFirefighters(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, firefighters)
}

func (h *Handler) getFirefighter(c *gin.Context) {
	f, err := h.responders.GetFirefighter(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) updateFirefighter(c *gin.Context) {
	var req firefighterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := h.responders.UpdateFirefighter(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

func (h *Handler) deleteFirefighter(c *gin.Context) {
	if err := h.responders.DeleteFirefighter(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) firefightersByShift(c *gin.Context) {
	firefighters, err := h.responders.FirefightersByShift(c.Request.Context(), c.Param("shift"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, firefighters)
}

func (h *Handler) firefightersByName(c *gin.Context) {
	firefighters, err := h.responders.FirefightersByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, firefighters)
}

type officerRequest struct {
	UserID      *string `json:"userId"`
	Name        string  `json:"name" binding:"required"`
	BadgeNumber string  `json:"badgeNumber" binding:"required"`
	Phone       string  `json:"phone"`
}

func (r officerRequest) draft() responder.OfficerDraft {
	return responder.OfficerDraft{
		UserID:      r.UserID,
		Name:        r.Name,
		BadgeNumber: r.BadgeNumber,
		Phone:       r.Phone,
	}
}

func (h *Handler) createOfficer(c *gin.Context) {
	var req officerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.responders.CreateOfficer(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *Handler) listOfficers(c *gin.Context) {
	officers, err := h.responders.ListOfficers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, officers)
}

func (h *Handler) getOfficer(c *gin.Context) {
	o, err := h.responders.GetOfficer(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) updateOfficer(c *gin.Context) {
	var req officerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.responders.UpdateOfficer(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) deleteOfficer(c *gin.Context) {
	if err := h.responders.DeleteOfficer(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) officerByBadge(c *gin.Context) {
	o, err := h.responders.OfficerByBadge(c.Request.Context(), c.Param("badge"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *Handler) officersByName(c *gin.Context) {
	officers, err := h.responders.OfficersByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, officers)
}
