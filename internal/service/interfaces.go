package service

import (
	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// LocationServiceInterface defines the interface for location service
type LocationServiceInterface interface {
	Create(req *CreateLocationRequest) (*LocationResponse, error)
	GetByID(id uuid.UUID) (*LocationResponse, error)
	GetAll(page, pageSize int) (*LocationListResponse, error)
	Update(id uuid.UUID, req *UpdateLocationRequest) (*LocationResponse, error)
	Delete(id uuid.UUID) error
}

// PersonnelServiceInterface defines the interface for personnel service
type PersonnelServiceInterface interface {
	Create(req *CreatePersonnelRequest) (*PersonnelResponse, error)
	GetByID(id uuid.UUID) (*PersonnelResponse, error)
	GetAll(page, pageSize int) (*PersonnelListResponse, error)
	Update(id uuid.UUID, req *UpdatePersonnelRequest) (*PersonnelResponse, error)
	Delete(id uuid.UUID) error
	CreateAssignment(personnelID uuid.UUID, req *CreateAssignmentRequest) (*AssignmentResponse, error)
	GetAssignments(personnelID uuid.UUID) ([]AssignmentResponse, error)
	UpdateAssignment(id uuid.UUID, req *UpdateAssignmentRequest) (*AssignmentResponse, error)
	DeleteAssignment(id uuid.UUID) error
}

// FamilyMemberServiceInterface defines the interface for family member service
type FamilyMemberServiceInterface interface {
	Create(req *CreateFamilyMemberRequest) (*FamilyMemberResponse, error)
	GetByID(id uuid.UUID) (*FamilyMemberResponse, error)
	GetAll(page, pageSize int) (*FamilyMemberListResponse, error)
	Update(id uuid.UUID, req *UpdateFamilyMemberRequest) (*FamilyMemberResponse, error)
	Delete(id uuid.UUID) error
	CreateSecondaryContact(familyMemberID uuid.UUID, req *CreateSecondaryContactRequest) (*SecondaryContactResponse, error)
	UpdateSecondaryContact(id uuid.UUID, req *UpdateSecondaryContactRequest) (*SecondaryContactResponse, error)
	DeleteSecondaryContact(id uuid.UUID) error
	CreateRelationship(guardianID uuid.UUID, req *CreateRelationshipRequest) (*RelationshipResponse, error)
	DeleteRelationship(id uuid.UUID) error
}

// ClubMemberServiceInterface defines the interface for club member service
type ClubMemberServiceInterface interface {
	Create(req *CreateClubMemberRequest) (*ClubMemberResponse, error)
	GetByID(id uuid.UUID) (*ClubMemberResponse, error)
	GetByMembershipNumber(number int64) (*ClubMemberResponse, error)
	GetAll(page, pageSize int) (*ClubMemberListResponse, error)
	Update(id uuid.UUID, req *UpdateClubMemberRequest) (*ClubMemberResponse, error)
	SetActiveStatus(id uuid.UUID, active bool) (*ClubMemberResponse, error)
	Delete(id uuid.UUID) error
}

// PaymentServiceInterface defines the interface for payment service
type PaymentServiceInterface interface {
	Create(memberID uuid.UUID, req *CreatePaymentRequest) (*PaymentResponse, error)
	GetByID(id uuid.UUID) (*PaymentResponse, error)
	GetByMember(memberID uuid.UUID) ([]PaymentResponse, error)
	GetSummary(memberID uuid.UUID, year int) (*PaymentSummaryResponse, error)
	Update(id uuid.UUID, req *UpdatePaymentRequest) (*PaymentResponse, error)
	Delete(id uuid.UUID) error
}

// HobbyServiceInterface defines the interface for hobby service
type HobbyServiceInterface interface {
	Create(req *CreateHobbyRequest) (*HobbyResponse, error)
	GetAll() ([]HobbyResponse, error)
	Delete(id uuid.UUID) error
	Attach(memberID, hobbyID uuid.UUID) error
	Detach(memberID, hobbyID uuid.UUID) error
	GetMemberHobbies(memberID uuid.UUID) ([]HobbyResponse, error)
}

// SessionServiceInterface defines the interface for session service
type SessionServiceInterface interface {
	Create(req *CreateSessionRequest) (*SessionResponse, error)
	GetByID(id uuid.UUID) (*SessionResponse, error)
	GetAll(page, pageSize int) (*SessionListResponse, error)
	Update(id uuid.UUID, req *UpdateSessionRequest) (*SessionResponse, error)
	Delete(id uuid.UUID) error
	CreateTeam(sessionID uuid.UUID, req *CreateSessionTeamRequest) (*SessionTeamResponse, error)
	GetTeamByID(id uuid.UUID) (*SessionTeamResponse, error)
	GetAllTeams(page, pageSize int) (*SessionTeamListResponse, error)
	UpdateTeam(id uuid.UUID, req *UpdateSessionTeamRequest) (*SessionTeamResponse, error)
	DeleteTeam(id uuid.UUID) error
}

// PlayerAssignmentServiceInterface defines the interface for player assignment service
type PlayerAssignmentServiceInterface interface {
	Create(teamID uuid.UUID, req *CreatePlayerAssignmentRequest) (*PlayerAssignmentResponse, error)
	GetByTeam(teamID uuid.UUID) ([]PlayerAssignmentResponse, error)
	GetByMember(memberID uuid.UUID) ([]PlayerAssignmentResponse, error)
	Update(id uuid.UUID, req *UpdatePlayerAssignmentRequest) (*PlayerAssignmentResponse, error)
	Delete(id uuid.UUID) error
}

// EmailLogServiceInterface defines the interface for email log service
type EmailLogServiceInterface interface {
	Create(req *CreateEmailLogRequest) (*EmailLogResponse, error)
	GetByID(id uuid.UUID) (*EmailLogResponse, error)
	GetAll(page, pageSize int) (*EmailLogListResponse, error)
	Delete(id uuid.UUID) error
}

// ReportServiceInterface defines the interface for report service
type ReportServiceInterface interface {
	Run(name ReportName, params ReportParams) (*ReportResponse, error)
}
