package handlers

import (
	"net/http"
	"strconv"

	venueRepo "weddify/database/repository/venue"
	"weddify/models"
	"weddify/services/venue"

	"github.com/gin-gonic/gin"
)

// VenueHandler exposes venue catalogue endpoints.
type VenueHandler struct {
	VenueService venue.VenueService
}

func NewVenueHandler(svc venue.VenueService) *VenueHandler {
	return &VenueHandler{VenueService: svc}
}

// CreateVenueHandler handles POST /vendors/me/venues.
func (h *VenueHandler) CreateVenueHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var v models.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.VenueService.CreateVenue(idStr, v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetVenueHandler handles GET /venues/id/:id.
func (h *VenueHandler) GetVenueHandler(c *gin.Context) {
	v, err := h.VenueService.GetVenueByID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, v)
}

// SearchVenuesHandler handles GET /venues/search.
func (h *VenueHandler) SearchVenuesHandler(c *gin.Context) {
	minCapacity, _ := strconv.Atoi(c.Query("minCapacity"))
	maxPrice, _ := strconv.ParseInt(c.Query("maxPrice"), 10, 64)
	limit, _ := strconv.ParseInt(c.Query("limit"), 10, 64)

	criteria := venueRepo.VenueSearchCriteria{
		City:        c.Query("city"),
		MinCapacity: minCapacity,
		MaxPrice:    maxPrice,
		Limit:       limit,
	}
	venues, err := h.VenueService.SearchVenues(criteria)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}

// UpdateVenueHandler handles PUT /vendors/me/venues/:id.
func (h *VenueHandler) UpdateVenueHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var v models.Venue
	if err := c.ShouldBindJSON(&v); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	v.ID = c.Param("id")

	updated, err := h.VenueService.UpdateVenue(idStr, v)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteVenueHandler handles DELETE /vendors/me/venues/:id.
func (h *VenueHandler) DeleteVenueHandler(c *gin.Context) {
	idStr, ok := callerID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}
	if err := h.VenueService.DeleteVenue(idStr, c.Param("id")); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Venue deleted"})
}

// ListVendorVenuesHandler handles GET /vendors/:id/venues.
func (h *VenueHandler) ListVendorVenuesHandler(c *gin.Context) {
	venues, err := h.VenueService.ListVendorVenues(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"venues": venues})
}
