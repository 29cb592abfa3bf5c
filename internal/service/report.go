package service

import (
	"fmt"
	"time"

	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/eligibility"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/repository"

	"github.com/google/uuid"
)

// ReportName identifies one of the fixed reporting queries
type ReportName string

const (
	ReportLocationSummary       ReportName = "location-summary"
	ReportGuardianDependents    ReportName = "guardian-dependents"
	ReportLocationSessions      ReportName = "location-sessions"
	ReportGameSessionActivity   ReportName = "game-session-activity"
	ReportNeverAssignedMembers  ReportName = "never-assigned-members"
	ReportActiveAdultMembers    ReportName = "active-adult-members"
	ReportSinglePositionPlayers ReportName = "single-position-specialists"
	ReportAllRounders           ReportName = "all-rounders"
	ReportCoachRelatives        ReportName = "coach-relatives"
	ReportUndefeatedPlayers     ReportName = "undefeated-players"
	ReportInactiveMembers       ReportName = "inactive-members"
)

// reportNames is the closed set of valid report identifiers
var reportNames = map[ReportName]bool{
	ReportLocationSummary:       true,
	ReportGuardianDependents:    true,
	ReportLocationSessions:      true,
	ReportGameSessionActivity:   true,
	ReportNeverAssignedMembers:  true,
	ReportActiveAdultMembers:    true,
	ReportSinglePositionPlayers: true,
	ReportAllRounders:           true,
	ReportCoachRelatives:        true,
	ReportUndefeatedPlayers:     true,
	ReportInactiveMembers:       true,
}

// ParseReportName validates a report identifier. Unknown identifiers are an
// explicit error, never partial data.
func ParseReportName(s string) (ReportName, error) {
	name := ReportName(s)
	if !reportNames[name] {
		return "", apperrors.ErrUnknownReport
	}
	return name, nil
}

// minGamesThreshold is the default cutoff for the game-session-activity report
const minGamesThreshold = 4

// ReportParams carries the raw query parameters of a report request; each
// report picks out and parses the ones it needs
type ReportParams struct {
	GuardianID string
	LocationID string
	From       string
	To         string
	MinGames   *int
	Position   string
}

// ReportResponse wraps one report run. Rows is the report-specific row slice;
// an empty result renders as an empty list.
type ReportResponse struct {
	Name        ReportName  `json:"name"`
	GeneratedAt string      `json:"generated_at"`
	Rows        interface{} `json:"rows"`
}

// MemberAgeRow is a member row with the age computed at generation time
type MemberAgeRow struct {
	repository.MemberReportRow
	Age int `json:"age"`
}

// AdultMemberAgeRow is an adult member row with the computed age
type AdultMemberAgeRow struct {
	repository.AdultMemberRow
	Age int `json:"age"`
}

// DependentAgeRow is a guardian dependent row with the minor's computed age
type DependentAgeRow struct {
	repository.GuardianDependentRow
	Age int `json:"age"`
}

// ReportService runs the fixed reporting queries
type ReportService struct {
	repo repository.ReportRepositoryInterface
}

// NewReportService creates a new report service
func NewReportService(repo repository.ReportRepositoryInterface) *ReportService {
	return &ReportService{repo: repo}
}

// Run executes a report by name with the given parameters
func (s *ReportService) Run(name ReportName, params ReportParams) (*ReportResponse, error) {
	now := time.Now()

	var rows interface{}
	var err error
	switch name {
	case ReportLocationSummary:
		rows, err = s.repo.LocationSummary()
	case ReportGuardianDependents:
		rows, err = s.guardianDependents(params, now)
	case ReportLocationSessions:
		rows, err = s.locationSessions(params)
	case ReportGameSessionActivity:
		rows, err = s.gameSessionActivity(params)
	case ReportNeverAssignedMembers:
		rows, err = s.withAges(s.repo.NeverAssignedMembers())
	case ReportActiveAdultMembers:
		rows, err = s.activeAdultMembers(now)
	case ReportSinglePositionPlayers:
		rows, err = s.singlePositionSpecialists(params)
	case ReportAllRounders:
		rows, err = s.withAges(s.repo.AllRounders())
	case ReportCoachRelatives:
		rows, err = s.coachRelatives(params)
	case ReportUndefeatedPlayers:
		rows, err = s.withAges(s.repo.UndefeatedPlayers())
	case ReportInactiveMembers:
		rows, err = s.repo.InactiveMembers(now)
	default:
		return nil, apperrors.ErrUnknownReport
	}
	if err != nil {
		return nil, err
	}

	return &ReportResponse{
		Name:        name,
		GeneratedAt: now.Format("2006-01-02T15:04:05Z07:00"),
		Rows:        rows,
	}, nil
}

func (s *ReportService) guardianDependents(params ReportParams, now time.Time) ([]DependentAgeRow, error) {
	guardianID, err := parseUUIDParam(params.GuardianID, "guardian_id")
	if err != nil {
		return nil, err
	}

	raw, err := s.repo.GuardianDependents(guardianID)
	if err != nil {
		return nil, fmt.Errorf("failed to run guardian dependents report: %w", err)
	}

	rows := make([]DependentAgeRow, len(raw))
	for i, r := range raw {
		rows[i] = DependentAgeRow{
			GuardianDependentRow: r,
			Age:                  eligibility.Age(r.Birthdate, now),
		}
	}
	return rows, nil
}

func (s *ReportService) locationSessions(params ReportParams) ([]repository.SessionScheduleRow, error) {
	locationID, err := parseUUIDParam(params.LocationID, "location_id")
	if err != nil {
		return nil, err
	}
	from, to, err := parseTimeRange(params.From, params.To)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.LocationSessions(locationID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to run location sessions report: %w", err)
	}
	return rows, nil
}

func (s *ReportService) gameSessionActivity(params ReportParams) ([]repository.GameSessionActivityRow, error) {
	from, to, err := parseTimeRange(params.From, params.To)
	if err != nil {
		return nil, err
	}
	minGames := minGamesThreshold
	if params.MinGames != nil {
		if *params.MinGames < 1 {
			return nil, apperrors.ErrInvalidReportParams
		}
		minGames = *params.MinGames
	}

	rows, err := s.repo.GameSessionActivity(from, to, minGames)
	if err != nil {
		return nil, fmt.Errorf("failed to run game session activity report: %w", err)
	}
	return rows, nil
}

func (s *ReportService) activeAdultMembers(now time.Time) ([]AdultMemberAgeRow, error) {
	raw, err := s.repo.ActiveAdultMembers()
	if err != nil {
		return nil, fmt.Errorf("failed to run active adult members report: %w", err)
	}

	rows := make([]AdultMemberAgeRow, len(raw))
	for i, r := range raw {
		rows[i] = AdultMemberAgeRow{
			AdultMemberRow: r,
			Age:            eligibility.Age(r.Birthdate, now),
		}
	}
	return rows, nil
}

func (s *ReportService) singlePositionSpecialists(params ReportParams) ([]MemberAgeRow, error) {
	position := models.PositionSetter
	if params.Position != "" {
		position = models.Position(params.Position)
		if !validPosition(position) {
			return nil, apperrors.ErrInvalidReportParams
		}
	}

	return s.withAges(s.repo.SinglePositionSpecialists(position))
}

func (s *ReportService) coachRelatives(params ReportParams) ([]repository.CoachRelativeRow, error) {
	locationID, err := parseUUIDParam(params.LocationID, "location_id")
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.CoachRelatives(locationID)
	if err != nil {
		return nil, fmt.Errorf("failed to run coach relatives report: %w", err)
	}
	return rows, nil
}

// withAges decorates plain member rows with the age at generation time
func (s *ReportService) withAges(raw []repository.MemberReportRow, err error) ([]MemberAgeRow, error) {
	if err != nil {
		return nil, fmt.Errorf("failed to run report: %w", err)
	}

	now := time.Now()
	rows := make([]MemberAgeRow, len(raw))
	for i, r := range raw {
		rows[i] = MemberAgeRow{
			MemberReportRow: r,
			Age:             eligibility.Age(r.Birthdate, now),
		}
	}
	return rows, nil
}

func parseUUIDParam(value, field string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, fmt.Errorf("%w: %s is required", apperrors.ErrInvalidReportParams, field)
	}
	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %s is not a valid id", apperrors.ErrInvalidReportParams, field)
	}
	return id, nil
}

// parseTimeRange accepts date-only or full timestamp bounds; a date-only upper
// bound covers the whole day
func parseTimeRange(fromStr, toStr string) (time.Time, time.Time, error) {
	if fromStr == "" || toStr == "" {
		return time.Time{}, time.Time{}, fmt.Errorf("%w: from and to are required", apperrors.ErrInvalidReportParams)
	}

	from, _, err := parseTimeParam(fromStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	to, toDateOnly, err := parseTimeParam(toStr)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if toDateOnly {
		to = to.Add(24*time.Hour - time.Nanosecond)
	}

	if to.Before(from) {
		return time.Time{}, time.Time{}, apperrors.ErrInvalidTimeRange
	}
	return from, to, nil
}

func parseTimeParam(value string) (time.Time, bool, error) {
	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, false, nil
	}
	return time.Time{}, false, fmt.Errorf("%w: %q is not a valid date", apperrors.ErrInvalidReportParams, value)
}

func validPosition(p models.Position) bool {
	switch p {
	case models.PositionSetter, models.PositionLibero, models.PositionOutsideHitter,
		models.PositionOppositeHitter, models.PositionMiddleBlocker, models.PositionDefensiveSpecialist:
		return true
	}
	return false
}
