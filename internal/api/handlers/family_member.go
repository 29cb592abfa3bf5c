package handlers

import (
	"net/http"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// FamilyMemberHandler handles HTTP requests for family member operations
type FamilyMemberHandler struct {
	familyMemberService service.FamilyMemberServiceInterface
}

// NewFamilyMemberHandler creates a new family member handler
func NewFamilyMemberHandler(familyMemberService service.FamilyMemberServiceInterface) *FamilyMemberHandler {
	return &FamilyMemberHandler{
		familyMemberService: familyMemberService,
	}
}

// CreateFamilyMember handles POST /family-members
// @Summary Register a family member
// @Tags family-members
// @Accept json
// @Produce json
// @Param familyMember body service.CreateFamilyMemberRequest true "Family member data"
// @Success 201 {object} service.FamilyMemberResponse "Successfully created family member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /family-members [post]
func (h *FamilyMemberHandler) CreateFamilyMember(c *gin.Context) {
	var req service.CreateFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	familyMember, err := h.familyMemberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, familyMember)
}

// GetFamilyMember handles GET /family-members/:id
// @Summary Get family member by ID with contacts and wards
// @Tags family-members
// @Produce json
// @Param id path string true "Family member ID (UUID)"
// @Success 200 {object} service.FamilyMemberResponse "Successfully retrieved family member"
// @Failure 404 {object} ErrorResponse "Family member not found"
// @Security BearerAuth
// @Router /family-members/{id} [get]
func (h *FamilyMemberHandler) GetFamilyMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	familyMember, err := h.familyMemberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, familyMember)
}

// GetAllFamilyMembers handles GET /family-members
// @Summary List family members
// @Tags family-members
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.FamilyMemberListResponse "Successfully retrieved family members"
// @Security BearerAuth
// @Router /family-members [get]
func (h *FamilyMemberHandler) GetAllFamilyMembers(c *gin.Context) {
	page, pageSize := paginationParams(c)

	familyMembers, err := h.familyMemberService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, familyMembers)
}

// UpdateFamilyMember handles PUT /family-members/:id
// @Summary Update a family member
// @Tags family-members
// @Accept json
// @Produce json
// @Param id path string true "Family member ID (UUID)"
// @Param familyMember body service.UpdateFamilyMemberRequest true "Fields to update"
// @Success 200 {object} service.FamilyMemberResponse "Successfully updated family member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Family member not found"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /family-members/{id} [put]
func (h *FamilyMemberHandler) UpdateFamilyMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateFamilyMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	familyMember, err := h.familyMemberService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, familyMember)
}

// DeleteFamilyMember handles DELETE /family-members/:id
// @Summary Delete a family member
// @Tags family-members
// @Produce json
// @Param id path string true "Family member ID (UUID)"
// @Success 204 "Successfully deleted family member"
// @Failure 404 {object} ErrorResponse "Family member not found"
// @Security BearerAuth
// @Router /family-members/{id} [delete]
func (h *FamilyMemberHandler) DeleteFamilyMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.familyMemberService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateSecondaryContact handles POST /family-members/:id/secondary-contacts
// @Summary Add a secondary contact for one of the guardian's minors
// @Tags family-members
// @Accept json
// @Produce json
// @Param id path string true "Primary family member ID (UUID)"
// @Param contact body service.CreateSecondaryContactRequest true "Secondary contact data"
// @Success 201 {object} service.SecondaryContactResponse "Successfully created secondary contact"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Family member or club member not found"
// @Security BearerAuth
// @Router /family-members/{id}/secondary-contacts [post]
func (h *FamilyMemberHandler) CreateSecondaryContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateSecondaryContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.familyMemberService.CreateSecondaryContact(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contact)
}

// UpdateSecondaryContact handles PUT /secondary-contacts/:id
// @Summary Update a secondary contact
// @Tags family-members
// @Accept json
// @Produce json
// @Param id path string true "Secondary contact ID (UUID)"
// @Param contact body service.UpdateSecondaryContactRequest true "Fields to update"
// @Success 200 {object} service.SecondaryContactResponse "Successfully updated secondary contact"
// @Failure 404 {object} ErrorResponse "Secondary contact not found"
// @Security BearerAuth
// @Router /secondary-contacts/{id} [put]
func (h *FamilyMemberHandler) UpdateSecondaryContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSecondaryContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	contact, err := h.familyMemberService.UpdateSecondaryContact(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, contact)
}

// DeleteSecondaryContact handles DELETE /secondary-contacts/:id
// @Summary Delete a secondary contact
// @Tags family-members
// @Produce json
// @Param id path string true "Secondary contact ID (UUID)"
// @Success 204 "Successfully deleted secondary contact"
// @Failure 404 {object} ErrorResponse "Secondary contact not found"
// @Security BearerAuth
// @Router /secondary-contacts/{id} [delete]
func (h *FamilyMemberHandler) DeleteSecondaryContact(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.familyMemberService.DeleteSecondaryContact(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateRelationship handles POST /family-members/:id/relationships
// @Summary Link a guardian to a minor club member
// @Tags family-members
// @Accept json
// @Produce json
// @Param id path string true "Guardian family member ID (UUID)"
// @Param relationship body service.CreateRelationshipRequest true "Relationship data"
// @Success 201 {object} service.RelationshipResponse "Successfully created relationship"
// @Failure 400 {object} ErrorResponse "Club member is not a minor"
// @Failure 404 {object} ErrorResponse "Family member or club member not found"
// @Failure 409 {object} ErrorResponse "Relationship already exists"
// @Security BearerAuth
// @Router /family-members/{id}/relationships [post]
func (h *FamilyMemberHandler) CreateRelationship(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateRelationshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	relationship, err := h.familyMemberService.CreateRelationship(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, relationship)
}

// DeleteRelationship handles DELETE /relationships/:id
// @Summary Remove a guardian-minor link
// @Tags family-members
// @Produce json
// @Param id path string true "Relationship ID (UUID)"
// @Success 204 "Successfully deleted relationship"
// @Failure 404 {object} ErrorResponse "Relationship not found"
// @Security BearerAuth
// @Router /relationships/{id} [delete]
func (h *FamilyMemberHandler) DeleteRelationship(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.familyMemberService.DeleteRelationship(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
