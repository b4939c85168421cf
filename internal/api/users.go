package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/access"
)

type userRequest struct {
	Name   string `json:"name" binding:"required"`
	Email  string `json:"email" binding:"required,email"`
	Secret string `json:"secret"`
	Role   string `json:"role" binding:"required"`
}

func (r userRequest) draft() access.UserDraft {
	return access.UserDraft{
		Name:   r.Name,
		Email:  r.Email,
		Secret: r.Secret,
		Role:   r.Role,
	}
}

func (h *Handler) createUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	executor, err := h.executor(c)
	if err != nil {
		respondError(c, err)
		return
	}
	u, err := h.accessEngine.CreateUser(c.Request.Context(), executor, req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, u)
}

func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.accessEngine.ListUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, users)
}

func (h *Handler) getUser(c *gin.Context) {
	u, err := h.accessEngine.GetUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) updateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	executor, err := h.executor(c)
	if err != nil {
		respondError(c, err)
		return
	}
	u, err := h.accessEngine.UpdateUser(c.Request.Context(), executor, c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, u)
}

func (h *Handler) deleteUser(c *gin.Context) {
	executor, err := h.executor(c)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.accessEngine.DeleteUser(c.Request.Context(), executor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type linkOfficerRequest struct {
	Name        string `json:"name" binding:"required"`
	BadgeNumber string `json:"badgeNumber" binding:"required"`
	Phone       string `json:"phone"`
}

func (h *Handler) linkOfficer(c *gin.Context) {
	var req linkOfficerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	o, err := h.accessEngine.LinkAsOfficer(c.Request.Context(), c.Param("id"), access.OfficerDraft{
		Name:        req.Name,
		BadgeNumber: req.BadgeNumber,
		Phone:       req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

type linkFirefighterRequest struct {
	Name  string `json:"name" binding:"required"`
	Shift string `json:"shift" binding:"required"`
	Phone string `json:"phone"`
}

func (h *Handler) linkFirefighter(c *gin.Context) {
	var req linkFirefighterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	f, err := h.accessEngine.LinkAsFirefighter(c.Request.Context(), c.Param("id"), access.FirefighterDraft{
		Name:  req.Name,
		Shift: req.Shift,
		Phone: req.Phone,
	})
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}
