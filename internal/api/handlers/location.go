package handlers

import (
	"net/http"
	"strconv"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// LocationHandler handles HTTP requests for location operations
type LocationHandler struct {
	locationService service.LocationServiceInterface
}

// NewLocationHandler creates a new location handler
func NewLocationHandler(locationService service.LocationServiceInterface) *LocationHandler {
	return &LocationHandler{
		locationService: locationService,
	}
}

// CreateLocation handles POST /locations
// @Summary Create a new location
// @Description Register a head office or branch location
// @Tags locations
// @Accept json
// @Produce json
// @Param location body service.CreateLocationRequest true "Location data"
// @Success 201 {object} service.LocationResponse "Successfully created location"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Location name already in use"
// @Security BearerAuth
// @Router /locations [post]
func (h *LocationHandler) CreateLocation(c *gin.Context) {
	var req service.CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, location)
}

// GetLocation handles GET /locations/:id
// @Summary Get location by ID
// @Tags locations
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 200 {object} service.LocationResponse "Successfully retrieved location"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Security BearerAuth
// @Router /locations/{id} [get]
func (h *LocationHandler) GetLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	location, err := h.locationService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// GetAllLocations handles GET /locations
// @Summary List locations
// @Description Get locations ordered by province then city, paginated
// @Tags locations
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.LocationListResponse "Successfully retrieved locations"
// @Security BearerAuth
// @Router /locations [get]
func (h *LocationHandler) GetAllLocations(c *gin.Context) {
	page, pageSize := paginationParams(c)

	locations, err := h.locationService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// UpdateLocation handles PUT /locations/:id
// @Summary Update a location
// @Tags locations
// @Accept json
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Param location body service.UpdateLocationRequest true "Fields to update"
// @Success 200 {object} service.LocationResponse "Successfully updated location"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 409 {object} ErrorResponse "Location name already in use"
// @Security BearerAuth
// @Router /locations/{id} [put]
func (h *LocationHandler) UpdateLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	location, err := h.locationService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, location)
}

// DeleteLocation handles DELETE /locations/:id
// @Summary Delete a location
// @Description Delete a location; members, family members and teams block the delete
// @Tags locations
// @Produce json
// @Param id path string true "Location ID (UUID)"
// @Success 204 "Successfully deleted location"
// @Failure 400 {object} ErrorResponse "Invalid location ID"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 409 {object} ErrorResponse "Dependent records block the delete"
// @Security BearerAuth
// @Router /locations/{id} [delete]
func (h *LocationHandler) DeleteLocation(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.locationService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// paginationParams reads the shared page/page_size query parameters
func paginationParams(c *gin.Context) (page, pageSize int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}
	pageSize, err = strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil || pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}
	return page, pageSize
}
