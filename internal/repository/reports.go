package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/eligibility"
)

// LocationSummaryRow is one location with its current general manager and
// membership breakdown
type LocationSummaryRow struct {
	LocationID     uuid.UUID `json:"location_id"`
	Name           string    `json:"name"`
	Type           string    `json:"type"`
	City           string    `json:"city"`
	Province       string    `json:"province"`
	GeneralManager string    `json:"general_manager"`
	MinorCount     int64     `json:"minor_count"`
	MajorCount     int64     `json:"major_count"`
	TeamCount      int64     `json:"team_count"`
}

// GuardianDependentRow is one minor member sponsored by a guardian, with the
// secondary contact registered for that guardian when one exists
type GuardianDependentRow struct {
	MinorID               uuid.UUID `json:"minor_id"`
	MembershipNumber      int64     `json:"membership_number"`
	FirstName             string    `json:"first_name"`
	LastName              string    `json:"last_name"`
	Birthdate             time.Time `json:"birthdate"`
	RelationshipType      string    `json:"relationship_type"`
	SecondaryFirstName    *string   `json:"secondary_first_name,omitempty"`
	SecondaryLastName     *string   `json:"secondary_last_name,omitempty"`
	SecondaryPhone        *string   `json:"secondary_phone,omitempty"`
	SecondaryRelationship *string   `json:"secondary_relationship,omitempty"`
}

// SessionScheduleRow is one player slot of one team formation of a session.
// Player columns are null for formations without assignments yet.
type SessionScheduleRow struct {
	SessionID       uuid.UUID `json:"session_id"`
	SessionType     string    `json:"session_type"`
	StartsAt        time.Time `json:"starts_at"`
	Status          string    `json:"status"`
	TeamID          uuid.UUID `json:"team_id"`
	TeamName        string    `json:"team_name"`
	TeamNumber      int       `json:"team_number"`
	CoachFirstName  string    `json:"coach_first_name"`
	CoachLastName   string    `json:"coach_last_name"`
	PlayerFirstName *string   `json:"player_first_name,omitempty"`
	PlayerLastName  *string   `json:"player_last_name,omitempty"`
	Position        *string   `json:"position,omitempty"`
}

// GameSessionActivityRow is the per-location session and player tally for a
// date range
type GameSessionActivityRow struct {
	LocationID       uuid.UUID `json:"location_id"`
	Name             string    `json:"name"`
	TrainingSessions int64     `json:"training_sessions"`
	GameSessions     int64     `json:"game_sessions"`
	TrainingPlayers  int64     `json:"training_players"`
	GamePlayers      int64     `json:"game_players"`
}

// MemberReportRow is the common member projection shared by several reports
type MemberReportRow struct {
	MemberID         uuid.UUID `json:"member_id"`
	MembershipNumber int64     `json:"membership_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Birthdate        time.Time `json:"birthdate"`
	LocationName     string    `json:"location_name"`
}

// AdultMemberRow is an active adult member with the earliest payment taken as
// the effective joining date
type AdultMemberRow struct {
	MemberID         uuid.UUID `json:"member_id"`
	MembershipNumber int64     `json:"membership_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Birthdate        time.Time `json:"birthdate"`
	LocationName     string    `json:"location_name"`
	FirstPaymentDate time.Time `json:"first_payment_date"`
}

// CoachRelativeRow is a family member who also head-coaches a team drawn from
// a location's active membership
type CoachRelativeRow struct {
	FamilyMemberID uuid.UUID `json:"family_member_id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Phone          string    `json:"phone"`
	Email          string    `json:"email"`
	TeamName       string    `json:"team_name"`
}

// InactiveMemberRow is a member matched by the inactivity rule
type InactiveMemberRow struct {
	MemberID         uuid.UUID `json:"member_id"`
	MembershipNumber int64     `json:"membership_number"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Email            string    `json:"email"`
	JoinedAt         time.Time `json:"joined_at"`
	LocationName     string    `json:"location_name"`
}

// ReportRepository runs the read-only reporting queries. The SQL sticks to
// the portable subset shared by postgres and sqlite; ages are computed by the
// service layer from the fetched birthdates.
type ReportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository
func NewReportRepository(db *gorm.DB) *ReportRepository {
	return &ReportRepository{db: db}
}

// LocationSummary lists every location with its current general manager,
// minor/major member counts and team formation count, ordered by province
// then city
func (r *ReportRepository) LocationSummary() ([]LocationSummaryRow, error) {
	var rows []LocationSummaryRow
	err := r.db.Raw(`
		SELECT l.id AS location_id, l.name, l.type, l.city, l.province,
			COALESCE((
				SELECT p.first_name || ' ' || p.last_name
				FROM personnel_assignments pa
				JOIN personnel p ON p.id = pa.personnel_id
				WHERE pa.location_id = l.id
					AND pa.role = 'general manager'
					AND pa.end_date IS NULL
				ORDER BY pa.start_date DESC
				LIMIT 1
			), '') AS general_manager,
			(SELECT COUNT(*) FROM club_members cm
				WHERE cm.location_id = l.id AND cm.minor) AS minor_count,
			(SELECT COUNT(*) FROM club_members cm
				WHERE cm.location_id = l.id AND NOT cm.minor) AS major_count,
			(SELECT COUNT(*) FROM session_teams st
				WHERE st.location_id = l.id) AS team_count
		FROM locations l
		ORDER BY l.province, l.city`).Scan(&rows).Error
	return rows, err
}

// GuardianDependents lists the minor members linked to a guardian, left-joined
// with the secondary contact the guardian registered for each minor
func (r *ReportRepository) GuardianDependents(guardianID uuid.UUID) ([]GuardianDependentRow, error) {
	var rows []GuardianDependentRow
	err := r.db.Raw(`
		SELECT cm.id AS minor_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, fr.relationship_type,
			sfm.first_name AS secondary_first_name,
			sfm.last_name AS secondary_last_name,
			sfm.phone AS secondary_phone,
			sfm.relationship_type AS secondary_relationship
		FROM family_relationships fr
		JOIN club_members cm ON cm.id = fr.minor_id
		LEFT JOIN secondary_family_members sfm
			ON sfm.minor_id = cm.id
			AND sfm.primary_family_member_id = fr.guardian_id
		WHERE fr.guardian_id = ?
		ORDER BY cm.last_name, cm.first_name`, guardianID).Scan(&rows).Error
	return rows, err
}

// LocationSessions lists the sessions a location's teams are fielded in within
// an inclusive time range, one row per player slot, chronologically
func (r *ReportRepository) LocationSessions(locationID uuid.UUID, from, to time.Time) ([]SessionScheduleRow, error) {
	var rows []SessionScheduleRow
	err := r.db.Raw(`
		SELECT s.id AS session_id, s.type AS session_type, s.starts_at, s.status,
			st.id AS team_id, st.team_name, st.team_number,
			p.first_name AS coach_first_name, p.last_name AS coach_last_name,
			cm.first_name AS player_first_name, cm.last_name AS player_last_name,
			pa.position
		FROM sessions s
		JOIN session_teams st ON st.session_id = s.id
		JOIN personnel p ON p.id = st.head_coach_id
		LEFT JOIN player_assignments pa ON pa.team_id = st.id
		LEFT JOIN club_members cm ON cm.id = pa.member_id
		WHERE st.location_id = ? AND s.starts_at BETWEEN ? AND ?
		ORDER BY s.starts_at, st.team_number, cm.last_name, cm.first_name`,
		locationID, from, to).Scan(&rows).Error
	return rows, err
}

// GameSessionActivity tallies training and game sessions per location in a
// date range, keeping only locations with at least minGames game sessions,
// most active first
func (r *ReportRepository) GameSessionActivity(from, to time.Time, minGames int) ([]GameSessionActivityRow, error) {
	var rows []GameSessionActivityRow
	err := r.db.Raw(`
		SELECT * FROM (
			SELECT l.id AS location_id, l.name,
				(SELECT COUNT(DISTINCT s.id) FROM sessions s
					JOIN session_teams st ON st.session_id = s.id
					WHERE st.location_id = l.id AND s.type = 'training'
						AND s.starts_at BETWEEN ? AND ?) AS training_sessions,
				(SELECT COUNT(DISTINCT s.id) FROM sessions s
					JOIN session_teams st ON st.session_id = s.id
					WHERE st.location_id = l.id AND s.type = 'game'
						AND s.starts_at BETWEEN ? AND ?) AS game_sessions,
				(SELECT COUNT(*) FROM player_assignments pa
					JOIN session_teams st ON st.id = pa.team_id
					JOIN sessions s ON s.id = st.session_id
					WHERE st.location_id = l.id AND s.type = 'training'
						AND s.starts_at BETWEEN ? AND ?) AS training_players,
				(SELECT COUNT(*) FROM player_assignments pa
					JOIN session_teams st ON st.id = pa.team_id
					JOIN sessions s ON s.id = st.session_id
					WHERE st.location_id = l.id AND s.type = 'game'
						AND s.starts_at BETWEEN ? AND ?) AS game_players
			FROM locations l
		) activity
		WHERE activity.game_sessions >= ?
		ORDER BY activity.game_sessions DESC`,
		from, to, from, to, from, to, from, to, minGames).Scan(&rows).Error
	return rows, err
}

// NeverAssignedMembers lists active members with no player assignment at all
func (r *ReportRepository) NeverAssignedMembers() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, l.name AS location_name
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		LEFT JOIN player_assignments pa ON pa.member_id = cm.id
		WHERE cm.active AND pa.id IS NULL
		ORDER BY cm.membership_number`).Scan(&rows).Error
	return rows, err
}

// ActiveAdultMembers lists active non-minor members with their earliest
// payment date, one row per member, ordered by location then age
func (r *ReportRepository) ActiveAdultMembers() ([]AdultMemberRow, error) {
	var rows []AdultMemberRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, l.name AS location_name,
			MIN(p.payment_date) AS first_payment_date
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		JOIN payments p ON p.member_id = cm.id
		WHERE cm.active AND NOT cm.minor
		GROUP BY cm.id, cm.membership_number, cm.first_name, cm.last_name,
			cm.birthdate, l.name
		ORDER BY l.name, cm.birthdate DESC`).Scan(&rows).Error
	return rows, err
}

// SinglePositionSpecialists lists active members whose assignments all carry
// the given position and no other
func (r *ReportRepository) SinglePositionSpecialists(position models.Position) ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, l.name AS location_name
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		WHERE cm.active
			AND cm.id IN (SELECT pa.member_id FROM player_assignments pa
				WHERE pa.position = ?)
			AND cm.id NOT IN (SELECT pa.member_id FROM player_assignments pa
				WHERE pa.position <> ?)
		ORDER BY cm.membership_number`, position, position).Scan(&rows).Error
	return rows, err
}

// AllRounders lists active members who covered all four key positions across
// game sessions
func (r *ReportRepository) AllRounders() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, l.name AS location_name
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		WHERE cm.active AND cm.id IN (
			SELECT pa.member_id
			FROM player_assignments pa
			JOIN session_teams st ON st.id = pa.team_id
			JOIN sessions s ON s.id = st.session_id
			WHERE s.type = 'game' AND pa.position IN ?
			GROUP BY pa.member_id
			HAVING COUNT(DISTINCT pa.position) = ?
		)
		ORDER BY cm.membership_number`,
		models.KeyPositions, len(models.KeyPositions)).Scan(&rows).Error
	return rows, err
}

// CoachRelatives lists family members who, matched to personnel by SSN, head
// coach teams fielding the given location's active members
func (r *ReportRepository) CoachRelatives(locationID uuid.UUID) ([]CoachRelativeRow, error) {
	var rows []CoachRelativeRow
	err := r.db.Raw(`
		SELECT DISTINCT fm.id AS family_member_id, fm.first_name, fm.last_name,
			fm.phone, fm.email, st.team_name
		FROM family_members fm
		JOIN personnel p ON p.ssn = fm.ssn
		JOIN session_teams st ON st.head_coach_id = p.id
		JOIN player_assignments pa ON pa.team_id = st.id
		JOIN club_members cm ON cm.id = pa.member_id
		WHERE cm.location_id = ? AND cm.active
		ORDER BY fm.last_name, fm.first_name`, locationID).Scan(&rows).Error
	return rows, err
}

// UndefeatedPlayers lists active members with at least one game appearance who
// were never on the losing side of a same-session score comparison
func (r *ReportRepository) UndefeatedPlayers() ([]MemberReportRow, error) {
	var rows []MemberReportRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.birthdate, l.name AS location_name
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		WHERE cm.active
			AND cm.id IN (
				SELECT pa.member_id FROM player_assignments pa
				JOIN session_teams st ON st.id = pa.team_id
				JOIN sessions s ON s.id = st.session_id
				WHERE s.type = 'game')
			AND cm.id NOT IN (
				SELECT pa.member_id FROM player_assignments pa
				JOIN session_teams st1 ON st1.id = pa.team_id
				JOIN session_teams st2 ON st2.session_id = st1.session_id
					AND st2.id <> st1.id
				JOIN sessions s ON s.id = st1.session_id
				WHERE s.type = 'game'
					AND st1.score IS NOT NULL AND st2.score IS NOT NULL
					AND st1.score < st2.score)
		ORDER BY cm.membership_number`).Scan(&rows).Error
	return rows, err
}

// InactiveMembers lists members flagged inactive who joined at least the
// lookback window before ref and made no payment for the prior membership year
func (r *ReportRepository) InactiveMembers(ref time.Time) ([]InactiveMemberRow, error) {
	var rows []InactiveMemberRow
	err := r.db.Raw(`
		SELECT cm.id AS member_id, cm.membership_number, cm.first_name,
			cm.last_name, cm.email, cm.joined_at, l.name AS location_name
		FROM club_members cm
		JOIN locations l ON l.id = cm.location_id
		WHERE NOT cm.active
			AND cm.joined_at <= ?
			AND NOT EXISTS (
				SELECT 1 FROM payments p
				WHERE p.member_id = cm.id AND p.membership_year = ?)
		ORDER BY cm.membership_number`,
		eligibility.InactivityCutoff(ref), eligibility.PriorMembershipYear(ref)).Scan(&rows).Error
	return rows, err
}
