package repository

import (
	"time"

	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// LocationRepositoryInterface defines the interface for location repository operations
type LocationRepositoryInterface interface {
	Create(location *models.Location) error
	GetByID(id uuid.UUID) (*models.Location, error)
	GetByName(name string) (*models.Location, error)
	GetAll(limit, offset int) ([]models.Location, int64, error)
	Update(location *models.Location) error
	Delete(id uuid.UUID) error
	DependentCounts(id uuid.UUID) (members, familyMembers, teams int64, err error)
}

// PersonnelRepositoryInterface defines the interface for personnel repository operations
type PersonnelRepositoryInterface interface {
	Create(personnel *models.Personnel) error
	GetByID(id uuid.UUID) (*models.Personnel, error)
	GetByIdentity(ssn, medicareNumber, email string) (*models.Personnel, error)
	GetAll(limit, offset int) ([]models.Personnel, int64, error)
	GetWithAssignments(id uuid.UUID) (*models.Personnel, error)
	Update(personnel *models.Personnel) error
	Delete(id uuid.UUID) error
	CountCoachedTeams(id uuid.UUID) (int64, error)
	CreateAssignment(assignment *models.PersonnelAssignment) error
	GetAssignmentByID(id uuid.UUID) (*models.PersonnelAssignment, error)
	GetAssignmentsByPersonnel(personnelID uuid.UUID) ([]models.PersonnelAssignment, error)
	UpdateAssignment(assignment *models.PersonnelAssignment) error
	DeleteAssignment(id uuid.UUID) error
}

// FamilyMemberRepositoryInterface defines the interface for family member repository operations
type FamilyMemberRepositoryInterface interface {
	Create(familyMember *models.FamilyMember) error
	GetByID(id uuid.UUID) (*models.FamilyMember, error)
	GetByIdentity(ssn, medicareNumber, email string) (*models.FamilyMember, error)
	GetAll(limit, offset int) ([]models.FamilyMember, int64, error)
	GetWithDetails(id uuid.UUID) (*models.FamilyMember, error)
	Update(familyMember *models.FamilyMember) error
	Delete(id uuid.UUID) error
	CreateSecondary(contact *models.SecondaryFamilyMember) error
	GetSecondaryByID(id uuid.UUID) (*models.SecondaryFamilyMember, error)
	UpdateSecondary(contact *models.SecondaryFamilyMember) error
	DeleteSecondary(id uuid.UUID) error
	CreateRelationship(rel *models.FamilyRelationship) error
	GetRelationshipByID(id uuid.UUID) (*models.FamilyRelationship, error)
	GetRelationshipByPair(minorID, guardianID uuid.UUID) (*models.FamilyRelationship, error)
	DeleteRelationship(id uuid.UUID) error
}

// ClubMemberRepositoryInterface defines the interface for club member repository operations
type ClubMemberRepositoryInterface interface {
	Create(member *models.ClubMember) error
	GetByID(id uuid.UUID) (*models.ClubMember, error)
	GetByIdentity(ssn, medicareNumber, email string) (*models.ClubMember, error)
	GetByMembershipNumber(number int64) (*models.ClubMember, error)
	GetAll(limit, offset int) ([]models.ClubMember, int64, error)
	GetWithDetails(id uuid.UUID) (*models.ClubMember, error)
	Update(member *models.ClubMember) error
	Delete(id uuid.UUID) error
	SetActiveStatus(id uuid.UUID, active bool) error
}

// PaymentRepositoryInterface defines the interface for payment repository operations
type PaymentRepositoryInterface interface {
	Create(payment *models.Payment) error
	GetByID(id uuid.UUID) (*models.Payment, error)
	GetByMember(memberID uuid.UUID) ([]models.Payment, error)
	TotalPaidForYear(memberID uuid.UUID, year int) (float64, error)
	Update(payment *models.Payment) error
	Delete(id uuid.UUID) error
}

// HobbyRepositoryInterface defines the interface for hobby repository operations
type HobbyRepositoryInterface interface {
	Create(hobby *models.Hobby) error
	GetByID(id uuid.UUID) (*models.Hobby, error)
	GetByName(name string) (*models.Hobby, error)
	GetAll() ([]models.Hobby, error)
	Delete(id uuid.UUID) error
	Attach(memberID, hobbyID uuid.UUID) error
	Detach(memberID, hobbyID uuid.UUID) error
	GetMemberHobbies(memberID uuid.UUID) ([]models.MemberHobby, error)
}

// SessionRepositoryInterface defines the interface for session and team repository operations
type SessionRepositoryInterface interface {
	Create(session *models.Session) error
	GetByID(id uuid.UUID) (*models.Session, error)
	GetAll(limit, offset int) ([]models.Session, int64, error)
	GetWithTeams(id uuid.UUID) (*models.Session, error)
	Update(session *models.Session) error
	Delete(id uuid.UUID) error
	CreateTeam(team *models.SessionTeam) error
	GetTeamByID(id uuid.UUID) (*models.SessionTeam, error)
	GetTeamWithPlayers(id uuid.UUID) (*models.SessionTeam, error)
	GetAllTeams(limit, offset int) ([]models.SessionTeam, int64, error)
	UpdateTeam(team *models.SessionTeam) error
	DeleteTeam(id uuid.UUID) error
}

// PlayerAssignmentRepositoryInterface defines the interface for player assignment repository operations
type PlayerAssignmentRepositoryInterface interface {
	Create(assignment *models.PlayerAssignment) error
	GetByID(id uuid.UUID) (*models.PlayerAssignment, error)
	GetByTeamAndMember(teamID, memberID uuid.UUID) (*models.PlayerAssignment, error)
	GetByTeam(teamID uuid.UUID) ([]models.PlayerAssignment, error)
	GetByMember(memberID uuid.UUID) ([]models.PlayerAssignment, error)
	Update(assignment *models.PlayerAssignment) error
	Delete(id uuid.UUID) error
}

// EmailLogRepositoryInterface defines the interface for email log repository operations
type EmailLogRepositoryInterface interface {
	Create(log *models.EmailLog) error
	GetByID(id uuid.UUID) (*models.EmailLog, error)
	GetAll(limit, offset int) ([]models.EmailLog, int64, error)
	Delete(id uuid.UUID) error
}

// ReportRepositoryInterface defines the read-only reporting queries
type ReportRepositoryInterface interface {
	LocationSummary() ([]LocationSummaryRow, error)
	GuardianDependents(guardianID uuid.UUID) ([]GuardianDependentRow, error)
	LocationSessions(locationID uuid.UUID, from, to time.Time) ([]SessionScheduleRow, error)
	GameSessionActivity(from, to time.Time, minGames int) ([]GameSessionActivityRow, error)
	NeverAssignedMembers() ([]MemberReportRow, error)
	ActiveAdultMembers() ([]AdultMemberRow, error)
	SinglePositionSpecialists(position models.Position) ([]MemberReportRow, error)
	AllRounders() ([]MemberReportRow, error)
	CoachRelatives(locationID uuid.UUID) ([]CoachRelativeRow, error)
	UndefeatedPlayers() ([]MemberReportRow, error)
	InactiveMembers(ref time.Time) ([]InactiveMemberRow, error)
}
