package handlers

import (
	"net/http"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// HobbyHandler handles HTTP requests for the hobby catalog
type HobbyHandler struct {
	hobbyService service.HobbyServiceInterface
}

// NewHobbyHandler creates a new hobby handler
func NewHobbyHandler(hobbyService service.HobbyServiceInterface) *HobbyHandler {
	return &HobbyHandler{
		hobbyService: hobbyService,
	}
}

// CreateHobby handles POST /hobbies
// @Summary Add a hobby to the catalog
// @Tags hobbies
// @Accept json
// @Produce json
// @Param hobby body service.CreateHobbyRequest true "Hobby data"
// @Success 201 {object} service.HobbyResponse "Successfully created hobby"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Hobby name already in use"
// @Security BearerAuth
// @Router /hobbies [post]
func (h *HobbyHandler) CreateHobby(c *gin.Context) {
	var req service.CreateHobbyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	hobby, err := h.hobbyService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, hobby)
}

// GetAllHobbies handles GET /hobbies
// @Summary List the hobby catalog alphabetically
// @Tags hobbies
// @Produce json
// @Success 200 {array} service.HobbyResponse "Successfully retrieved hobbies"
// @Security BearerAuth
// @Router /hobbies [get]
func (h *HobbyHandler) GetAllHobbies(c *gin.Context) {
	hobbies, err := h.hobbyService.GetAll()
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hobbies)
}

// DeleteHobby handles DELETE /hobbies/:id
// @Summary Delete a hobby and its member links
// @Tags hobbies
// @Produce json
// @Param id path string true "Hobby ID (UUID)"
// @Success 204 "Successfully deleted hobby"
// @Failure 404 {object} ErrorResponse "Hobby not found"
// @Security BearerAuth
// @Router /hobbies/{id} [delete]
func (h *HobbyHandler) DeleteHobby(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.hobbyService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
