package testutils

import (
	"time"

	"club-registry-backend/internal/database/models"

	"github.com/google/uuid"
)

// uniqueSuffix derives a short unique tag from a fresh UUID so identity
// columns (ssn, medicare number, email) never collide across factory calls.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// LocationFactory provides methods to create test Location data
type LocationFactory struct{}

// NewLocationFactory creates a new LocationFactory
func NewLocationFactory() *LocationFactory {
	return &LocationFactory{}
}

// Create creates a test branch Location with default values
func (f *LocationFactory) Create() *models.Location {
	return &models.Location{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:       "Branch " + uniqueSuffix(),
		Type:       models.LocationTypeBranch,
		Address:    "123 Test Street",
		City:       "Montreal",
		Province:   "Quebec",
		PostalCode: "H1A 1A1",
		Phone:      "514-555-0100",
		WebAddress: "https://club.test/branch",
		Capacity:   120,
	}
}

// WithName sets a custom name for the location
func (f *LocationFactory) WithName(name string) *models.Location {
	loc := f.Create()
	loc.Name = name
	return loc
}

// WithType sets a custom type for the location
func (f *LocationFactory) WithType(locationType models.LocationType) *models.Location {
	loc := f.Create()
	loc.Type = locationType
	return loc
}

// WithCity sets the city and province for the location
func (f *LocationFactory) WithCity(city, province string) *models.Location {
	loc := f.Create()
	loc.City = city
	loc.Province = province
	return loc
}

// PersonnelFactory provides methods to create test Personnel data
type PersonnelFactory struct{}

// NewPersonnelFactory creates a new PersonnelFactory
func NewPersonnelFactory() *PersonnelFactory {
	return &PersonnelFactory{}
}

// Create creates a test Personnel with unique identity fields
func (f *PersonnelFactory) Create() *models.Personnel {
	tag := uniqueSuffix()
	return &models.Personnel{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:      "Pat",
		LastName:       "Coach",
		Birthdate:      time.Date(1980, 3, 15, 0, 0, 0, 0, time.UTC),
		SSN:            "SSN-P-" + tag,
		MedicareNumber: "MED-P-" + tag,
		Email:          "personnel." + tag + "@club.test",
		Phone:          "514-555-0200",
		Address:        "456 Staff Avenue",
		City:           "Montreal",
		Province:       "Quebec",
		PostalCode:     "H2B 2B2",
	}
}

// WithName sets a custom name for the personnel
func (f *PersonnelFactory) WithName(first, last string) *models.Personnel {
	p := f.Create()
	p.FirstName = first
	p.LastName = last
	return p
}

// WithSSN sets a custom social security number for the personnel
func (f *PersonnelFactory) WithSSN(ssn string) *models.Personnel {
	p := f.Create()
	p.SSN = ssn
	return p
}

// PersonnelAssignmentFactory provides methods to create test PersonnelAssignment data
type PersonnelAssignmentFactory struct{}

// NewPersonnelAssignmentFactory creates a new PersonnelAssignmentFactory
func NewPersonnelAssignmentFactory() *PersonnelAssignmentFactory {
	return &PersonnelAssignmentFactory{}
}

// Create creates a current coach assignment with default values
func (f *PersonnelAssignmentFactory) Create(personnelID, locationID uuid.UUID) *models.PersonnelAssignment {
	return &models.PersonnelAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PersonnelID: personnelID,
		LocationID:  locationID,
		Role:        models.RoleCoach,
		Mandate:     models.MandateSalaried,
		StartDate:   time.Date(2023, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// WithRole sets a custom role for the assignment
func (f *PersonnelAssignmentFactory) WithRole(personnelID, locationID uuid.UUID, role models.AssignmentRole) *models.PersonnelAssignment {
	a := f.Create(personnelID, locationID)
	a.Role = role
	return a
}

// Ended closes the assignment at the given end date
func (f *PersonnelAssignmentFactory) Ended(personnelID, locationID uuid.UUID, endDate time.Time) *models.PersonnelAssignment {
	a := f.Create(personnelID, locationID)
	a.EndDate = &endDate
	return a
}

// ClubMemberFactory provides methods to create test ClubMember data
type ClubMemberFactory struct{}

// NewClubMemberFactory creates a new ClubMemberFactory
func NewClubMemberFactory() *ClubMemberFactory {
	return &ClubMemberFactory{}
}

// Create creates an active adult member. The membership number is left at
// zero so the schema hook assigns the next one on insert.
func (f *ClubMemberFactory) Create(locationID uuid.UUID) *models.ClubMember {
	tag := uniqueSuffix()
	return &models.ClubMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:      "Alex",
		LastName:       "Member",
		Birthdate:      time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		SSN:            "SSN-M-" + tag,
		MedicareNumber: "MED-M-" + tag,
		Email:          "member." + tag + "@club.test",
		Phone:          "514-555-0300",
		Address:        "789 Player Road",
		City:           "Montreal",
		Province:       "Quebec",
		PostalCode:     "H3C 3C3",
		Height:         180,
		Weight:         75,
		LocationID:     locationID,
		Active:         true,
		Minor:          false,
		Gender:         models.GenderFemale,
		JoinedAt:       time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// Minor creates an active minor member aged 14 at ref
func (f *ClubMemberFactory) Minor(locationID uuid.UUID, ref time.Time) *models.ClubMember {
	m := f.Create(locationID)
	m.Birthdate = time.Date(ref.Year()-14, ref.Month(), 1, 0, 0, 0, 0, time.UTC)
	m.Minor = true
	return m
}

// WithName sets a custom name for the member
func (f *ClubMemberFactory) WithName(locationID uuid.UUID, first, last string) *models.ClubMember {
	m := f.Create(locationID)
	m.FirstName = first
	m.LastName = last
	return m
}

// WithBirthdate sets a custom birthdate for the member
func (f *ClubMemberFactory) WithBirthdate(locationID uuid.UUID, birthdate time.Time) *models.ClubMember {
	m := f.Create(locationID)
	m.Birthdate = birthdate
	return m
}

// Inactive creates a deactivated member who joined at the given time
func (f *ClubMemberFactory) Inactive(locationID uuid.UUID, joinedAt time.Time) *models.ClubMember {
	m := f.Create(locationID)
	m.Active = false
	m.JoinedAt = joinedAt
	return m
}

// FamilyMemberFactory provides methods to create test FamilyMember data
type FamilyMemberFactory struct{}

// NewFamilyMemberFactory creates a new FamilyMemberFactory
func NewFamilyMemberFactory() *FamilyMemberFactory {
	return &FamilyMemberFactory{}
}

// Create creates a test FamilyMember with unique identity fields
func (f *FamilyMemberFactory) Create(locationID uuid.UUID) *models.FamilyMember {
	tag := uniqueSuffix()
	return &models.FamilyMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FirstName:      "Robin",
		LastName:       "Guardian",
		Birthdate:      time.Date(1975, 9, 20, 0, 0, 0, 0, time.UTC),
		SSN:            "SSN-F-" + tag,
		MedicareNumber: "MED-F-" + tag,
		Email:          "guardian." + tag + "@club.test",
		Phone:          "514-555-0400",
		Address:        "321 Family Lane",
		City:           "Montreal",
		Province:       "Quebec",
		PostalCode:     "H4D 4D4",
		LocationID:     locationID,
	}
}

// WithSSN sets a custom social security number for the family member
func (f *FamilyMemberFactory) WithSSN(locationID uuid.UUID, ssn string) *models.FamilyMember {
	fm := f.Create(locationID)
	fm.SSN = ssn
	return fm
}

// FamilyRelationshipFactory provides methods to create test FamilyRelationship data
type FamilyRelationshipFactory struct{}

// NewFamilyRelationshipFactory creates a new FamilyRelationshipFactory
func NewFamilyRelationshipFactory() *FamilyRelationshipFactory {
	return &FamilyRelationshipFactory{}
}

// Create links a minor to a guardian as the primary relationship
func (f *FamilyRelationshipFactory) Create(minorID, guardianID uuid.UUID) *models.FamilyRelationship {
	return &models.FamilyRelationship{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MinorID:          minorID,
		GuardianID:       guardianID,
		RelationshipType: "mother",
		IsPrimary:        true,
		EmergencyContact: true,
		StartDate:        time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

// SecondaryContactFactory provides methods to create test SecondaryFamilyMember data
type SecondaryContactFactory struct{}

// NewSecondaryContactFactory creates a new SecondaryContactFactory
func NewSecondaryContactFactory() *SecondaryContactFactory {
	return &SecondaryContactFactory{}
}

// Create creates a secondary contact for a guardian and minor pair
func (f *SecondaryContactFactory) Create(primaryID, minorID uuid.UUID) *models.SecondaryFamilyMember {
	return &models.SecondaryFamilyMember{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		PrimaryFamilyMemberID: primaryID,
		MinorID:               minorID,
		FirstName:             "Sam",
		LastName:              "Contact",
		Phone:                 "514-555-0500",
		RelationshipType:      "uncle",
	}
}

// PaymentFactory provides methods to create test Payment data
type PaymentFactory struct{}

// NewPaymentFactory creates a new PaymentFactory
func NewPaymentFactory() *PaymentFactory {
	return &PaymentFactory{}
}

// Create creates a first-installment cash membership payment
func (f *PaymentFactory) Create(memberID uuid.UUID, year int) *models.Payment {
	return &models.Payment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		MemberID:          memberID,
		Amount:            50,
		PaymentDate:       time.Date(year, 1, 15, 0, 0, 0, 0, time.UTC),
		Method:            models.PaymentMethodCash,
		MembershipYear:    year,
		PaymentType:       models.PaymentTypeMembership,
		InstallmentNumber: 1,
	}
}

// WithAmount sets a custom amount for the payment
func (f *PaymentFactory) WithAmount(memberID uuid.UUID, year int, amount float64) *models.Payment {
	p := f.Create(memberID, year)
	p.Amount = amount
	return p
}

// Installment sets the installment number for the payment
func (f *PaymentFactory) Installment(memberID uuid.UUID, year, number int) *models.Payment {
	p := f.Create(memberID, year)
	p.InstallmentNumber = number
	return p
}

// HobbyFactory provides methods to create test Hobby data
type HobbyFactory struct{}

// NewHobbyFactory creates a new HobbyFactory
func NewHobbyFactory() *HobbyFactory {
	return &HobbyFactory{}
}

// Create creates a hobby with a unique name
func (f *HobbyFactory) Create() *models.Hobby {
	return &models.Hobby{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name: "hobby-" + uniqueSuffix(),
	}
}

// WithName sets a custom name for the hobby
func (f *HobbyFactory) WithName(name string) *models.Hobby {
	h := f.Create()
	h.Name = name
	return h
}

// SessionFactory provides methods to create test Session data
type SessionFactory struct{}

// NewSessionFactory creates a new SessionFactory
func NewSessionFactory() *SessionFactory {
	return &SessionFactory{}
}

// Create creates a scheduled training session at the given start time
func (f *SessionFactory) Create(startsAt time.Time) *models.Session {
	return &models.Session{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Type:       models.SessionTypeTraining,
		StartsAt:   startsAt,
		Address:    "1 Arena Way",
		City:       "Montreal",
		Province:   "Quebec",
		PostalCode: "H5E 5E5",
		Status:     models.SessionStatusScheduled,
	}
}

// Game creates a game session at the given start time
func (f *SessionFactory) Game(startsAt time.Time) *models.Session {
	s := f.Create(startsAt)
	s.Type = models.SessionTypeGame
	return s
}

// SessionTeamFactory provides methods to create test SessionTeam data
type SessionTeamFactory struct{}

// NewSessionTeamFactory creates a new SessionTeamFactory
func NewSessionTeamFactory() *SessionTeamFactory {
	return &SessionTeamFactory{}
}

// Create creates team formation number 1 for a session
func (f *SessionTeamFactory) Create(sessionID, locationID, headCoachID uuid.UUID) *models.SessionTeam {
	return &models.SessionTeam{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SessionID:   sessionID,
		TeamNumber:  1,
		TeamName:    "Team " + uniqueSuffix(),
		LocationID:  locationID,
		HeadCoachID: headCoachID,
		Gender:      models.GenderFemale,
	}
}

// WithNumber sets the formation number within the session
func (f *SessionTeamFactory) WithNumber(sessionID, locationID, headCoachID uuid.UUID, number int) *models.SessionTeam {
	st := f.Create(sessionID, locationID, headCoachID)
	st.TeamNumber = number
	return st
}

// WithScore sets the final score for a game formation
func (f *SessionTeamFactory) WithScore(sessionID, locationID, headCoachID uuid.UUID, number, score int) *models.SessionTeam {
	st := f.WithNumber(sessionID, locationID, headCoachID, number)
	st.Score = &score
	return st
}

// PlayerAssignmentFactory provides methods to create test PlayerAssignment data
type PlayerAssignmentFactory struct{}

// NewPlayerAssignmentFactory creates a new PlayerAssignmentFactory
func NewPlayerAssignmentFactory() *PlayerAssignmentFactory {
	return &PlayerAssignmentFactory{}
}

// Create puts a member on a team as a starting setter
func (f *PlayerAssignmentFactory) Create(teamID, memberID uuid.UUID) *models.PlayerAssignment {
	return &models.PlayerAssignment{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		TeamID:    teamID,
		MemberID:  memberID,
		Position:  models.PositionSetter,
		IsStarter: true,
	}
}

// WithPosition sets a custom position for the assignment
func (f *PlayerAssignmentFactory) WithPosition(teamID, memberID uuid.UUID, position models.Position) *models.PlayerAssignment {
	pa := f.Create(teamID, memberID)
	pa.Position = position
	return pa
}

// EmailLogFactory provides methods to create test EmailLog data
type EmailLogFactory struct{}

// NewEmailLogFactory creates a new EmailLogFactory
func NewEmailLogFactory() *EmailLogFactory {
	return &EmailLogFactory{}
}

// Create creates a sent general email from a location
func (f *EmailLogFactory) Create(senderLocationID uuid.UUID) *models.EmailLog {
	return &models.EmailLog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		SenderLocationID: senderLocationID,
		ReceiverEmail:    "recipient." + uniqueSuffix() + "@club.test",
		Subject:          "Club announcement",
		BodyPreview:      "Reminder about the upcoming season",
		EmailType:        models.EmailTypeGeneral,
		Status:           models.EmailStatusSent,
		SentAt:           time.Now(),
	}
}

// SessionNotification creates a session notification email for a member
func (f *EmailLogFactory) SessionNotification(senderLocationID, memberID, sessionID uuid.UUID) *models.EmailLog {
	e := f.Create(senderLocationID)
	e.ReceiverMemberID = &memberID
	e.SessionID = &sessionID
	e.EmailType = models.EmailTypeSessionNotification
	return e
}

// FactorySet provides access to all factories
type FactorySet struct {
	Location            *LocationFactory
	Personnel           *PersonnelFactory
	PersonnelAssignment *PersonnelAssignmentFactory
	ClubMember          *ClubMemberFactory
	FamilyMember        *FamilyMemberFactory
	FamilyRelationship  *FamilyRelationshipFactory
	SecondaryContact    *SecondaryContactFactory
	Payment             *PaymentFactory
	Hobby               *HobbyFactory
	Session             *SessionFactory
	SessionTeam         *SessionTeamFactory
	PlayerAssignment    *PlayerAssignmentFactory
	EmailLog            *EmailLogFactory
}

// NewFactorySet creates a new FactorySet with all factories initialized
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Location:            NewLocationFactory(),
		Personnel:           NewPersonnelFactory(),
		PersonnelAssignment: NewPersonnelAssignmentFactory(),
		ClubMember:          NewClubMemberFactory(),
		FamilyMember:        NewFamilyMemberFactory(),
		FamilyRelationship:  NewFamilyRelationshipFactory(),
		SecondaryContact:    NewSecondaryContactFactory(),
		Payment:             NewPaymentFactory(),
		Hobby:               NewHobbyFactory(),
		Session:             NewSessionFactory(),
		SessionTeam:         NewSessionTeamFactory(),
		PlayerAssignment:    NewPlayerAssignmentFactory(),
		EmailLog:            NewEmailLogFactory(),
	}
}
