package handlers

import (
	"net/http"
	"strconv"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ReportHandler handles HTTP requests for the administrative reports
type ReportHandler struct {
	reportService service.ReportServiceInterface
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService service.ReportServiceInterface) *ReportHandler {
	return &ReportHandler{
		reportService: reportService,
	}
}

// RunReport handles GET /reports/:name
// @Summary Run an administrative report
// @Description Run one of the named reports. Parameter requirements vary per report: guardian-dependents takes guardian_id, location-sessions takes location_id/from/to, game-session-activity takes from/to and an optional min_games, single-position-specialists takes an optional position, coach-relatives takes location_id.
// @Tags reports
// @Produce json
// @Param name path string true "Report name" Enums(location-summary, guardian-dependents, location-sessions, game-session-activity, never-assigned-members, active-adult-members, single-position-specialists, all-rounders, coach-relatives, undefeated-players, inactive-members)
// @Param guardian_id query string false "Guardian family member ID (UUID)"
// @Param location_id query string false "Location ID (UUID)"
// @Param from query string false "Range start, YYYY-MM-DD or RFC3339"
// @Param to query string false "Range end, YYYY-MM-DD or RFC3339"
// @Param min_games query int false "Minimum game sessions hosted" default(4)
// @Param position query string false "Playing position filter"
// @Success 200 {object} service.ReportResponse "Report rows"
// @Failure 400 {object} ErrorResponse "Missing or invalid report parameters"
// @Failure 404 {object} ErrorResponse "Unknown report name"
// @Security BearerAuth
// @Router /reports/{name} [get]
func (h *ReportHandler) RunReport(c *gin.Context) {
	name, err := service.ParseReportName(c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	params := service.ReportParams{
		GuardianID: c.Query("guardian_id"),
		LocationID: c.Query("location_id"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Position:   c.Query("position"),
	}
	if minGamesStr := c.Query("min_games"); minGamesStr != "" {
		minGames, err := strconv.Atoi(minGamesStr)
		if err != nil || minGames < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid min_games"})
			return
		}
		params.MinGames = &minGames
	}

	report, err := h.reportService.Run(name, params)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}
