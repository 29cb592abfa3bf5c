package handlers

import (
	"net/http"

	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// SessionHandler handles HTTP requests for training and game sessions,
// their teams, and player assignments
type SessionHandler struct {
	sessionService          service.SessionServiceInterface
	playerAssignmentService service.PlayerAssignmentServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(
	sessionService service.SessionServiceInterface,
	playerAssignmentService service.PlayerAssignmentServiceInterface,
) *SessionHandler {
	return &SessionHandler{
		sessionService:          sessionService,
		playerAssignmentService: playerAssignmentService,
	}
}

// CreateSession handles POST /sessions
// @Summary Schedule a training or game session
// @Description Schedule a session; the start time must be in the future
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body service.CreateSessionRequest true "Session data"
// @Success 201 {object} service.SessionResponse "Successfully created session"
// @Failure 400 {object} ErrorResponse "Invalid request or start time in the past"
// @Security BearerAuth
// @Router /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req service.CreateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Create(&req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, session)
}

// GetSession handles GET /sessions/:id
// @Summary Get session by ID with its teams and rosters
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse "Successfully retrieved session"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	session, err := h.sessionService.GetByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// GetAllSessions handles GET /sessions
// @Summary List sessions in chronological order
// @Tags sessions
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SessionListResponse "Successfully retrieved sessions"
// @Security BearerAuth
// @Router /sessions [get]
func (h *SessionHandler) GetAllSessions(c *gin.Context) {
	page, pageSize := paginationParams(c)

	sessions, err := h.sessionService.GetAll(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, sessions)
}

// UpdateSession handles PUT /sessions/:id
// @Summary Update a session
// @Description Reschedule or change the status of a session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param session body service.UpdateSessionRequest true "Fields to update"
// @Success 200 {object} service.SessionResponse "Successfully updated session"
// @Failure 400 {object} ErrorResponse "Invalid request or reschedule into the past"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [put]
func (h *SessionHandler) UpdateSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	session, err := h.sessionService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// DeleteSession handles DELETE /sessions/:id
// @Summary Delete a session with its teams and rosters
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 204 "Successfully deleted session"
// @Failure 404 {object} ErrorResponse "Session not found"
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) DeleteSession(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessionService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreateTeam handles POST /sessions/:id/teams
// @Summary Add a team to a session
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Param team body service.CreateSessionTeamRequest true "Team data"
// @Success 201 {object} service.SessionTeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 404 {object} ErrorResponse "Session, location or coach not found"
// @Security BearerAuth
// @Router /sessions/{id}/teams [post]
func (h *SessionHandler) CreateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreateSessionTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.sessionService.CreateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:id
// @Summary Get a session team with its player roster
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {object} service.SessionTeamResponse "Successfully retrieved team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [get]
func (h *SessionHandler) GetTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	team, err := h.sessionService.GetTeamByID(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// GetAllTeams handles GET /teams
// @Summary List session teams
// @Tags teams
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.SessionTeamListResponse "Successfully retrieved teams"
// @Security BearerAuth
// @Router /teams [get]
func (h *SessionHandler) GetAllTeams(c *gin.Context) {
	page, pageSize := paginationParams(c)

	teams, err := h.sessionService.GetAllTeams(page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:id
// @Summary Update a session team
// @Description Change a team's coach, name or final score
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param team body service.UpdateSessionTeamRequest true "Fields to update"
// @Success 200 {object} service.SessionTeamResponse "Successfully updated team"
// @Failure 404 {object} ErrorResponse "Team or coach not found"
// @Security BearerAuth
// @Router /teams/{id} [put]
func (h *SessionHandler) UpdateTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdateSessionTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.sessionService.UpdateTeam(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:id
// @Summary Delete a session team and its roster
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id} [delete]
func (h *SessionHandler) DeleteTeam(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.sessionService.DeleteTeam(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// CreatePlayerAssignment handles POST /teams/:id/players
// @Summary Add a club member to a team roster
// @Description Add a player to a team; inactive members cannot be rostered
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Param assignment body service.CreatePlayerAssignmentRequest true "Player assignment data"
// @Success 201 {object} service.PlayerAssignmentResponse "Successfully rostered player"
// @Failure 400 {object} ErrorResponse "Invalid request or member not active"
// @Failure 404 {object} ErrorResponse "Team or club member not found"
// @Failure 409 {object} ErrorResponse "Member already on the team"
// @Security BearerAuth
// @Router /teams/{id}/players [post]
func (h *SessionHandler) CreatePlayerAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.CreatePlayerAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.playerAssignmentService.Create(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, assignment)
}

// GetTeamPlayers handles GET /teams/:id/players
// @Summary Get a team's player roster
// @Tags teams
// @Produce json
// @Param id path string true "Team ID (UUID)"
// @Success 200 {array} service.PlayerAssignmentResponse "Successfully retrieved roster"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /teams/{id}/players [get]
func (h *SessionHandler) GetTeamPlayers(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.playerAssignmentService.GetByTeam(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// GetMemberAssignments handles GET /club-members/:id/assignments
// @Summary Get a club member's team assignment history
// @Tags teams
// @Produce json
// @Param id path string true "Club member ID (UUID)"
// @Success 200 {array} service.PlayerAssignmentResponse "Successfully retrieved assignments"
// @Failure 404 {object} ErrorResponse "Club member not found"
// @Security BearerAuth
// @Router /club-members/{id}/assignments [get]
func (h *SessionHandler) GetMemberAssignments(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	assignments, err := h.playerAssignmentService.GetByMember(id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignments)
}

// UpdatePlayerAssignment handles PUT /player-assignments/:id
// @Summary Update a player's position or starter flag
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Player assignment ID (UUID)"
// @Param assignment body service.UpdatePlayerAssignmentRequest true "Fields to update"
// @Success 200 {object} service.PlayerAssignmentResponse "Successfully updated assignment"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /player-assignments/{id} [put]
func (h *SessionHandler) UpdatePlayerAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req service.UpdatePlayerAssignmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	assignment, err := h.playerAssignmentService.Update(id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, assignment)
}

// DeletePlayerAssignment handles DELETE /player-assignments/:id
// @Summary Remove a player from a team roster
// @Tags teams
// @Produce json
// @Param id path string true "Player assignment ID (UUID)"
// @Success 204 "Successfully removed player"
// @Failure 404 {object} ErrorResponse "Assignment not found"
// @Security BearerAuth
// @Router /player-assignments/{id} [delete]
func (h *SessionHandler) DeletePlayerAssignment(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.playerAssignmentService.Delete(id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
