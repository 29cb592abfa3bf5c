package handlers

import (
	"net/http"
	"strconv"
	"time"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClubMemberHandler handles HTTP requests for club member operations,
// including their payments and hobby links
type ClubMemberHandler struct {
	clubMemberService service.ClubMemberServiceInterface
	paymentService    service.PaymentServiceInterface
	hobbyService      service.HobbyServiceInterface
}

// NewClubMemberHandler creates a new club member handler
func NewClubMemberHandler(
	clubMemberService service.ClubMemberServiceInterface,
	paymentService service.PaymentServiceInterface,
	hobbyService service.HobbyServiceInterface,
) *ClubMemberHandler {
	return &ClubMemberHandler{
		clubMemberService: clubMemberService,
		paymentService:    paymentService,
		hobbyService:      hobbyService,
	}
}

// CreateClubMember handles POST /club-members
// @Summary Register a club member
// @Description Register a club member; applicants under the minimum join age are rejected
// @Tags club-members
// @Accept json
// @Produce json
// @Param member body service.CreateClubMemberRequest true "Club member data"
// @Success 201 {object} service.ClubMemberResponse "Successfully created club member"
// @Failure 400 {object} ErrorResponse "Invalid request or applicant too young"
// @Failure 404 {object} ErrorResponse "Location not found"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /club-members [post]
func (h *ClubMemberHandler) CreateClubMember(c *gin.Context) {
	var req service.CreateClubMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.clubMemberService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetClubMember handles GET /club-members/:id
// @Summary Get club member by ID with payments, hobbies and guardians
// @Tags club-members
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Success 200 {object} service.ClubMemberResponse "Successfully retrieved club member"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id} [get]
func (h *ClubMemberHandler) GetClubMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	member, err := h.clubMemberService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetClubMemberByNumber handles GET /club-members/by-number/:number
// @Summary Get club member by membership number
// @Tags club-members
// @Produce json
// @Param number path int true "Membership number"
// @Success 200 {object} service.ClubMemberResponse "Successfully retrieved club member"
// @Failure 400 {object} ErrorResponse "Invalid membership number"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/by-number/{number} [get]
func (h *ClubMemberHandler) GetClubMemberByNumber(c *gin.Context) {
	number, err := strconv.ParseInt(c.Param("number"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid membership number"})
		return
	}

	member, err := h.clubMemberService.GetByMembershipNumber(number)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// GetAllClubMembers handles GET /club-members
// @Summary List club members ordered by membership number
// @Tags club-members
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ClubMemberListResponse "Successfully retrieved club members"
// @Security BearerAuth
// @Router /club-members [get]
func (h *ClubMemberHandler) GetAllClubMembers(c *gin.Context) {
	page, pageSize := paginationParams(c)

	members, err := h.clubMemberService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateClubMember handles PUT /club-members/:id
// @Summary Update a club member
// @Description Update a club member; membership number and minor classification never change
// @Tags club-members
// @Accept json
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param member body service.UpdateClubMemberRequest true "Fields to update"
// @Success 200 {object} service.ClubMemberResponse "Successfully updated club member"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Failure 409 {object} ErrorResponse "Identity fields already in use"
// @Security BearerAuth
// @Router /club-members/{id} [put]
func (h *ClubMemberHandler) UpdateClubMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateClubMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.clubMemberService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// StatusRequest toggles a club member's active flag
type StatusRequest struct {
	Active *bool `json:"active" binding:"required"`
}

// SetClubMemberStatus handles PATCH /club-members/:id/status
// @Summary Activate or deactivate a club member
// @Tags club-members
// @Accept json
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param status body StatusRequest true "Desired active state"
// @Success 200 {object} service.ClubMemberResponse "Successfully updated status"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/status [patch]
func (h *ClubMemberHandler) SetClubMemberStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.clubMemberService.SetActiveStatus(id, *req.Active)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteClubMember handles DELETE /club-members/:id
// @Summary Delete a club member and all dependent records
// @Tags club-members
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Success 204 "Successfully deleted club member"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id} [delete]
func (h *ClubMemberHandler) DeleteClubMember(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.clubMemberService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePayment handles POST /club-members/:id/payments
// @Summary Record a payment for a club member
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param payment body service.CreatePaymentRequest true "Payment data"
// @Success 201 {object} service.PaymentResponse "Successfully recorded payment"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/payments [post]
func (h *ClubMemberHandler) CreatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.Create(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, payment)
}

// GetPayments handles GET /club-members/:id/payments
// @Summary List a club member's payments, newest first
// @Tags payments
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Success 200 {array} service.PaymentResponse "Successfully retrieved payments"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/payments [get]
func (h *ClubMemberHandler) GetPayments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	payments, err := h.paymentService.GetByMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payments)
}

// GetPaymentSummary handles GET /club-members/:id/payments/summary
// @Summary Get a member's fee, total paid, balance and donation for a year
// @Tags payments
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param year query int false "Membership year, defaults to the current year"
// @Success 200 {object} service.PaymentSummaryResponse "Successfully retrieved summary"
// @Failure 400 {object} ErrorResponse "Invalid year"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/payments/summary [get]
func (h *ClubMemberHandler) GetPaymentSummary(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	year := time.Now().Year()
	if yearStr := c.Query("year"); yearStr != "" {
		parsed, err := strconv.Atoi(yearStr)
		if err != nil || parsed < 1900 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid year"})
			return
		}
		year = parsed
	}

	summary, err := h.paymentService.GetSummary(id, year)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, summary)
}

// UpdatePayment handles PUT /payments/:id
// @Summary Update a payment record
// @Tags payments
// @Accept json
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Param payment body service.UpdatePaymentRequest true "Fields to update"
// @Success 200 {object} service.PaymentResponse "Successfully updated payment"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [put]
func (h *ClubMemberHandler) UpdatePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	payment, err := h.paymentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, payment)
}

// DeletePayment handles DELETE /payments/:id
// @Summary Delete a payment record
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID (UUID)"
// @Success 204 "Successfully deleted payment"
// @Failure 404 {object} ErrorResponse "Payment not found"
// @Security BearerAuth
// @Router /payments/{id} [delete]
func (h *ClubMemberHandler) DeletePayment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.paymentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetMemberHobbies handles GET /club-members/:id/hobbies
// @Summary List a club member's hobbies
// @Tags hobbies
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Success 200 {array} service.HobbyResponse "Successfully retrieved hobbies"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/hobbies [get]
func (h *ClubMemberHandler) GetMemberHobbies(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	hobbies, err := h.hobbyService.GetMemberHobbies(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, hobbies)
}

// AttachHobby handles PUT /club-members/:id/hobbies/:hobbyId
// @Summary Attach a hobby to a club member
// @Tags hobbies
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param hobbyId path string true "Hobby ID (UUID)"
// @Success 204 "Successfully attached hobby"
// @Failure 404 {object} ErrorResponse "Club member or hobby not found"
// @Failure 409 {object} ErrorResponse "Hobby already attached"
// @Security BearerAuth
// @Router /club-members/{id}/hobbies/{hobbyId} [put]
func (h *ClubMemberHandler) AttachHobby(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hobbyID, ok := parseIDParam(c, "hobbyId")
	if !ok {
		return
	}

	if err := h.hobbyService.Attach(id, hobbyID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DetachHobby handles DELETE /club-members/:id/hobbies/:hobbyId
// @Summary Detach a hobby from a club member
// @Tags hobbies
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Param hobbyId path string true "Hobby ID (UUID)"
// @Success 204 "Successfully detached hobby"
// @Failure 404 {object} ErrorResponse "Link not found"
// @Security BearerAuth
// @Router /club-members/{id}/hobbies/{hobbyId} [delete]
func (h *ClubMemberHandler) DetachHobby(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}
	hobbyID, ok := parseIDParam(c, "hobbyId")
	if !ok {
		return
	}

	if err := h.hobbyService.Detach(id, hobbyID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
