package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rmaia/go-wildfire-monitor/internal/catalog"
)

type environmentRequest struct {
	Climate     string  `json:"climate" binding:"required"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Location    string  `json:"location" binding:"required"`
}

func (r environmentRequest) draft() catalog.EnvironmentDraft {
	return catalog.EnvironmentDraft{
		Climate:     r.Climate,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		Location:    r.Location,
	}
}

func (h *Handler) createEnvironment(c *gin.Context) {
	var req environmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	env, err := h.catalog.CreateEnvironment(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, env)
}

func (h *Handler) listEnvironments(c *gin.Context) {
	environments, err := h.catalog.ListEnvironments(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, environments)
}

func (h *Handler) getEnvironment(c *gin.Context) {
	env, err := h.catalog.GetEnvironment(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) updateEnvironment(c *gin.Context) {
	var req environmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	env, err := h.catalog.UpdateEnvironment(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, env)
}

func (h *Handler) deleteEnvironment(c *gin.Context) {
	if err := h.catalog.DeleteEnvironment(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type regionRequest struct {
	Name         string  `json:"name" binding:"required"`
	Bounds       string  `json:"bounds"`
	Vegetation   string  `json:"vegetation" binding:"required"`
	DrynessIndex float64 `json:"drynessIndex"`
}

func (r regionRequest) draft() catalog.RegionDraft {
	return catalog.RegionDraft{
		Name:         r.Name,
		Bounds:       r.Bounds,
		Vegetation:   r.Vegetation,
		DrynessIndex: r.DrynessIndex,
	}
}

func (h *Handler) createRegion(c *gin.Context) {
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	region, err := h.catalog.CreateRegion(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, region)
}

func (h *Handler) listRegions(c *gin.Context) {
	regions, err := h.catalog.ListRegions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

func (h *Handler) getRegion(c *gin.Context) {
	region, err := h.catalog.GetRegion(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *Handler) updateRegion(c *gin.Context) {
	var req regionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	region, err := h.catalog.UpdateRegion(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, region)
}

func (h *Handler) deleteRegion(c *gin.Context) {
	if err := h.catalog.DeleteRegion(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) regionsByName(c *gin.Context) {
	regions, err := h.catalog.RegionsByName(c.Request.Context(), c.Query("q"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, regions)
}

type routeRequest struct {
	Origin        string  `json:"origin" binding:"required"`
	Destination   string  `json:"destination" binding:"required"`
	EstimatedTime float64 `json:"estimatedTime"`
	Distance      float64 `json:"distance"`
	Alternatives  string  `json:"alternatives"`
}

func (r routeRequest) draft() catalog.RouteDraft {
	return catalog.RouteDraft{
		Origin:        r.Origin,
		Destination:   r.Destination,
		EstimatedTime: r.EstimatedTime,
		Distance:      r.Distance,
		Alternatives:  r.Alternatives,
	}
}

func (h *Handler) createRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route, err := h.catalog.CreateRoute(c.Request.Context(), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, route)
}

func (h *Handler) listRoutes(c *gin.Context) {
	routes, err := h.catalog.ListRoutes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, routes)
}

func (h *Handler) getRoute(c *gin.Context) {
	route, err := h.catalog.GetRoute(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) updateRoute(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route, err := h.catalog.UpdateRoute(c.Request.Context(), c.Param("id"), req.draft())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

func (h *Handler) deleteRoute(c *gin.Context) {
	if err := h.catalog.DeleteRoute(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
