package handlers

import (
	"net/http"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// PersonnelHandler handles HTTP requests for personnel operations
type PersonnelHandler struct {
	personnelService service.PersonnelServiceInterface
}

// NewPersonnelHandler creates a new personnel handler
func NewPersonnelHandler(personnelService service.PersonnelServiceInterface) *PersonnelHandler {
	return &PersonnelHandler{
		personnelService: personnelService,
	}
}

// CreatePersonnel handles POST /personnel
// @Summary Register a personnel record
// @Tags personnel
// @Accept json
// @Produce json
// @Param personnel body service.CreatePersonnelRequest true "Personnel data"
// @Success 201 {object} service.PersonnelResponse "Successfully created personnel"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /personnel [post]
func (h *PersonnelHandler) CreatePersonnel(c *gin.Context) {
	var req service.CreatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	personnel, err := h.personnelService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, personnel)
}

// GetPersonnel handles GET /personnel/:id
// @Summary Get personnel by ID with role history
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID (UUID)"
// @Success 200 {object} service.PersonnelResponse "Successfully retrieved personnel"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Security BearerAuth
// @Router /personnel/{id} [get]
func (h *PersonnelHandler) GetPersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	personnel, err := h.personnelService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personnel)
}

// GetAllPersonnel handles GET /personnel
// @Summary List personnel
// @Tags personnel
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.PersonnelListResponse "Successfully retrieved personnel"
// @Security BearerAuth
// @Router /personnel [get]
func (h *PersonnelHandler) GetAllPersonnel(c *gin.Context) {
	page, pageSize := paginationParams(c)

	personnel, err := h.personnelService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personnel)
}

// UpdatePersonnel handles PUT /personnel/:id
// @Summary Update a personnel record
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Personnel ID (UUID)"
// @Param personnel body service.UpdatePersonnelRequest true "Fields to update"
// @Success 200 {object} service.PersonnelResponse "Successfully updated personnel"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /personnel/{id} [put]
func (h *PersonnelHandler) UpdatePersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePersonnelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	personnel, err := h.personnelService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, personnel)
}

// DeletePersonnel handles DELETE /personnel/:id
// @Summary Delete a personnel record
// @Description Delete a personnel record; head-coach references block the delete
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID (UUID)"
// @Success 204 "Successfully deleted personnel"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Failure 409 {object} ErrorResponse "Coached teams block the delete"
// @Security BearerAuth
// @Router /personnel/{id} [delete]
func (h *PersonnelHandler) DeletePersonnel(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.personnelService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateAssignment handles POST /personnel/:id/assignments
// @Summary Add a role assignment to a personnel's history
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Personnel ID (UUID)"
// @Param assignment body service.CreateAssignmentRequest true "Assignment data"
// @Success 201 {object} service.AssignmentResponse "Successfully created assignment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Personnel or location not found"
// @Security BearerAuth
// @Router /personnel/{id}/assignments [post]
func (h *PersonnelHandler) CreateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.personnelService.CreateAssignment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetAssignments handles GET /personnel/:id/assignments
// @Summary Get a personnel's role history
// @Tags personnel
// @Produce json
// @Param id path string true "Personnel ID (UUID)"
// @Success 200 {array} service.AssignmentResponse "Role history, newest first"
// @Failure 404 {object} ErrorResponse "Personnel not found"
// @Security BearerAuth
// @Router /personnel/{id}/assignments [get]
func (h *PersonnelHandler) GetAssignments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.personnelService.GetAssignments(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// UpdateAssignment handles PUT /personnel-assignments/:id
// @Summary Update a role assignment
// @Tags personnel
// @Accept json
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Param assignment body service.UpdateAssignmentRequest true "Fields to update"
// @Success 200 {object} service.AssignmentResponse "Successfully updated assignment"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /personnel-assignments/{id} [put]
func (h *PersonnelHandler) UpdateAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.personnelService.UpdateAssignment(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeleteAssignment handles DELETE /personnel-assignments/:id
// @Summary Delete a role assignment
// @Tags personnel
// @Produce json
// @Param id path string true "Assignment ID (UUID)"
// @Success 204 "Successfully deleted assignment"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /personnel-assignments/{id} [delete]
func (h *PersonnelHandler) DeleteAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.personnelService.DeleteAssignment(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
