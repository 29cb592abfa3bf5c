package handlers

import (
	"net/http"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// EmailLogHandler handles HTTP requests for the outbound email archive
type EmailLogHandler struct {
	emailLogService service.EmailLogServiceInterface
}

// NewEmailLogHandler creates a new email log handler
func NewEmailLogHandler(emailLogService service.EmailLogServiceInterface) *EmailLogHandler {
	return &EmailLogHandler{
		emailLogService: emailLogService,
	}
}

// CreateEmailLog handles POST /email-logs
// @Summary Archive an outbound email
// @Tags email-logs
// @Accept json
// @Produce json
// @Param emailLog body service.CreateEmailLogRequest true "Email log data"
// @Success 201 {object} service.EmailLogResponse "Successfully archived email"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Sender location not found"
// @Security BearerAuth
// @Router /email-logs [post]
func (h *EmailLogHandler) CreateEmailLog(c *gin.Context) {
	var req service.CreateEmailLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	emailLog, err := h.emailLogService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, emailLog)
}

// GetEmailLog handles GET /email-logs/:id
// @Summary Get an archived email by ID
// @Tags email-logs
// @Produce json
// @Param id path string true "Email log ID (UUID)"
// @Success 200 {object} service.EmailLogResponse "Successfully retrieved email"
// @Failure 404 {object} ErrorResponse "Email log not found"
// @Security BearerAuth
// @Router /email-logs/{id} [get]
func (h *EmailLogHandler) GetEmailLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	emailLog, err := h.emailLogService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, emailLog)
}

// GetAllEmailLogs handles GET /email-logs
// @Summary List archived emails, newest first
// @Tags email-logs
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.EmailLogListResponse "Successfully retrieved emails"
// @Security BearerAuth
// @Router /email-logs [get]
func (h *EmailLogHandler) GetAllEmailLogs(c *gin.Context) {
	page, pageSize := paginationParams(c)

	emailLogs, err := h.emailLogService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, emailLogs)
}

// DeleteEmailLog handles DELETE /email-logs/:id
// @Summary Delete an archived email
// @Tags email-logs
// @Produce json
// @Param id path string true "Email log ID (UUID)"
// @Success 204 "Successfully deleted email"
// @Failure 404 {object} ErrorResponse "Email log not found"
// @Security BearerAuth
// @Router /email-logs/{id} [delete]
func (h *EmailLogHandler) DeleteEmailLog(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.emailLogService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
