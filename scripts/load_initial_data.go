package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"club-registry-backend/internal/config"
	"club-registry-backend/internal/database"
	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/eligibility"

	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match the YAML data files

type LocationData struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	Address    string `yaml:"address,omitempty"`
	City       string `yaml:"city"`
	Province   string `yaml:"province"`
	PostalCode string `yaml:"postal_code,omitempty"`
	Phone      string `yaml:"phone,omitempty"`
	WebAddress string `yaml:"web_address,omitempty"`
	Capacity   int    `yaml:"capacity"`
}

type AssignmentData struct {
	LocationName string `yaml:"location_name"`
	Role         string `yaml:"role"`
	Mandate      string `yaml:"mandate"`
	StartDate    string `yaml:"start_date"`
	EndDate      string `yaml:"end_date,omitempty"`
}

type PersonnelData struct {
	FirstName      string           `yaml:"first_name"`
	LastName       string           `yaml:"last_name"`
	Birthdate      string           `yaml:"birthdate"`
	SSN            string           `yaml:"ssn"`
	MedicareNumber string           `yaml:"medicare_number"`
	Email          string           `yaml:"email"`
	Phone          string           `yaml:"phone,omitempty"`
	Assignments    []AssignmentData `yaml:"assignments,omitempty"`
}

type PaymentData struct {
	Amount            float64 `yaml:"amount"`
	PaymentDate       string  `yaml:"payment_date"`
	Method            string  `yaml:"method"`
	MembershipYear    int     `yaml:"membership_year"`
	InstallmentNumber int     `yaml:"installment_number"`
}

type ClubMemberData struct {
	FirstName      string        `yaml:"first_name"`
	LastName       string        `yaml:"last_name"`
	Birthdate      string        `yaml:"birthdate"`
	SSN            string        `yaml:"ssn"`
	MedicareNumber string        `yaml:"medicare_number"`
	Email          string        `yaml:"email"`
	Phone          string        `yaml:"phone,omitempty"`
	Gender         string        `yaml:"gender,omitempty"`
	Height         int           `yaml:"height,omitempty"`
	Weight         int           `yaml:"weight,omitempty"`
	LocationName   string        `yaml:"location_name"`
	JoinedAt       string        `yaml:"joined_at,omitempty"`
	Active         bool          `yaml:"active"`
	Hobbies        []string      `yaml:"hobbies,omitempty"`
	Payments       []PaymentData `yaml:"payments,omitempty"`
}

type RelationshipData struct {
	MemberEmail      string `yaml:"member_email"`
	RelationshipType string `yaml:"relationship_type"`
	IsPrimary        bool   `yaml:"is_primary"`
	EmergencyContact bool   `yaml:"emergency_contact"`
}

type SecondaryContactData struct {
	MemberEmail      string `yaml:"member_email"`
	FirstName        string `yaml:"first_name"`
	LastName         string `yaml:"last_name"`
	Phone            string `yaml:"phone"`
	RelationshipType string `yaml:"relationship_type"`
}

type FamilyMemberData struct {
	FirstName         string                 `yaml:"first_name"`
	LastName          string                 `yaml:"last_name"`
	Birthdate         string                 `yaml:"birthdate"`
	SSN               string                 `yaml:"ssn"`
	MedicareNumber    string                 `yaml:"medicare_number"`
	Email             string                 `yaml:"email"`
	Phone             string                 `yaml:"phone,omitempty"`
	LocationName      string                 `yaml:"location_name"`
	Relationships     []RelationshipData     `yaml:"relationships,omitempty"`
	SecondaryContacts []SecondaryContactData `yaml:"secondary_contacts,omitempty"`
}

type PlayerData struct {
	MemberEmail string `yaml:"member_email"`
	Position    string `yaml:"position"`
	IsStarter   bool   `yaml:"is_starter"`
}

type TeamData struct {
	LocationName string       `yaml:"location_name"`
	CoachEmail   string       `yaml:"coach_email"`
	TeamNumber   int          `yaml:"team_number"`
	TeamName     string       `yaml:"team_name"`
	Gender       string       `yaml:"gender,omitempty"`
	Score        *int         `yaml:"score,omitempty"`
	Players      []PlayerData `yaml:"players,omitempty"`
}

type SessionData struct {
	Type     string     `yaml:"type"`
	StartsAt string     `yaml:"starts_at"`
	Address  string     `yaml:"address,omitempty"`
	City     string     `yaml:"city,omitempty"`
	Province string     `yaml:"province,omitempty"`
	Status   string     `yaml:"status"`
	Teams    []TeamData `yaml:"teams,omitempty"`
}

// File structures

type LocationsFile struct {
	Locations []LocationData `yaml:"locations"`
}

type PersonnelFile struct {
	Personnel []PersonnelData `yaml:"personnel"`
}

type HobbiesFile struct {
	Hobbies []string `yaml:"hobbies"`
}

type MembersFile struct {
	Members []ClubMemberData `yaml:"members"`
}

type FamiliesFile struct {
	FamilyMembers []FamilyMemberData `yaml:"family_members"`
}

type SessionsFile struct {
	Sessions []SessionData `yaml:"sessions"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel:    logger.Silent,
		AutoMigrate: true,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	var locationsFile LocationsFile
	if err := readYAML(filepath.Join(dataDir, "locations.yaml"), &locationsFile); err != nil {
		return fmt.Errorf("failed to load locations: %w", err)
	}
	var personnelFile PersonnelFile
	if err := readYAML(filepath.Join(dataDir, "personnel.yaml"), &personnelFile); err != nil {
		return fmt.Errorf("failed to load personnel: %w", err)
	}
	var hobbiesFile HobbiesFile
	if err := readYAML(filepath.Join(dataDir, "hobbies.yaml"), &hobbiesFile); err != nil {
		return fmt.Errorf("failed to load hobbies: %w", err)
	}
	var membersFile MembersFile
	if err := readYAML(filepath.Join(dataDir, "members.yaml"), &membersFile); err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}
	var familiesFile FamiliesFile
	if err := readYAML(filepath.Join(dataDir, "families.yaml"), &familiesFile); err != nil {
		return fmt.Errorf("failed to load families: %w", err)
	}
	var sessionsFile SessionsFile
	if err := readYAML(filepath.Join(dataDir, "sessions.yaml"), &sessionsFile); err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	locationMap := make(map[string]*models.Location)
	locationsCreated := 0
	for _, data := range locationsFile.Locations {
		location, created, err := createLocation(db, data)
		if err != nil {
			return fmt.Errorf("failed to create location %s: %w", data.Name, err)
		}
		locationMap[data.Name] = location
		if created {
			locationsCreated++
		}
	}
	log.Printf("📋 Locations: %d created, %d total", locationsCreated, len(locationsFile.Locations))

	personnelMap := make(map[string]*models.Personnel)
	personnelCreated := 0
	for _, data := range personnelFile.Personnel {
		person, created, err := createPersonnel(db, data, locationMap)
		if err != nil {
			return fmt.Errorf("failed to create personnel %s: %w", data.Email, err)
		}
		personnelMap[data.Email] = person
		if created {
			personnelCreated++
		}
	}
	log.Printf("📋 Personnel: %d created, %d total", personnelCreated, len(personnelFile.Personnel))

	hobbyMap := make(map[string]*models.Hobby)
	hobbiesCreated := 0
	for _, name := range hobbiesFile.Hobbies {
		hobby, created, err := createHobby(db, name)
		if err != nil {
			return fmt.Errorf("failed to create hobby %s: %w", name, err)
		}
		hobbyMap[name] = hobby
		if created {
			hobbiesCreated++
		}
	}
	log.Printf("📋 Hobbies: %d created, %d total", hobbiesCreated, len(hobbiesFile.Hobbies))

	memberMap := make(map[string]*models.ClubMember)
	membersCreated := 0
	for _, data := range membersFile.Members {
		member, created, err := createClubMember(db, data, locationMap, hobbyMap)
		if err != nil {
			return fmt.Errorf("failed to create club member %s: %w", data.Email, err)
		}
		memberMap[data.Email] = member
		if created {
			membersCreated++
		}
	}
	log.Printf("📋 Club members: %d created, %d total", membersCreated, len(membersFile.Members))

	familiesCreated := 0
	for _, data := range familiesFile.FamilyMembers {
		_, created, err := createFamilyMember(db, data, locationMap, memberMap)
		if err != nil {
			return fmt.Errorf("failed to create family member %s: %w", data.Email, err)
		}
		if created {
			familiesCreated++
		}
	}
	log.Printf("📋 Family members: %d created, %d total", familiesCreated, len(familiesFile.FamilyMembers))

	sessionsCreated := 0
	for _, data := range sessionsFile.Sessions {
		created, err := createSession(db, data, locationMap, personnelMap, memberMap)
		if err != nil {
			return fmt.Errorf("failed to create session at %s: %w", data.StartsAt, err)
		}
		if created {
			sessionsCreated++
		}
	}
	log.Printf("📋 Sessions: %d created, %d total", sessionsCreated, len(sessionsFile.Sessions))

	return nil
}

func readYAML(path string, out interface{}) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(raw, out)
}

func parseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

func parseDatePtr(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	t, err := parseDate(value)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func createLocation(db *gorm.DB, data LocationData) (*models.Location, bool, error) {
	var existing models.Location
	err := db.Where("name = ?", data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	location := &models.Location{
		Name:       data.Name,
		Type:       models.LocationType(data.Type),
		Address:    data.Address,
		City:       data.City,
		Province:   data.Province,
		PostalCode: data.PostalCode,
		Phone:      data.Phone,
		WebAddress: data.WebAddress,
		Capacity:   data.Capacity,
	}
	if err := db.Create(location).Error; err != nil {
		return nil, false, err
	}
	return location, true, nil
}

func createPersonnel(db *gorm.DB, data PersonnelData, locationMap map[string]*models.Location) (*models.Personnel, bool, error) {
	var existing models.Personnel
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	birthdate, err := parseDate(data.Birthdate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid birthdate %q: %w", data.Birthdate, err)
	}

	person := &models.Personnel{
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Birthdate:      birthdate,
		SSN:            data.SSN,
		MedicareNumber: data.MedicareNumber,
		Email:          data.Email,
		Phone:          data.Phone,
	}
	if err := db.Create(person).Error; err != nil {
		return nil, false, err
	}

	for _, assignment := range data.Assignments {
		location, ok := locationMap[assignment.LocationName]
		if !ok {
			return nil, false, fmt.Errorf("unknown location %q", assignment.LocationName)
		}
		startDate, err := parseDate(assignment.StartDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid start_date %q: %w", assignment.StartDate, err)
		}
		endDate, err := parseDatePtr(assignment.EndDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid end_date %q: %w", assignment.EndDate, err)
		}
		record := &models.PersonnelAssignment{
			PersonnelID: person.ID,
			LocationID:  location.ID,
			Role:        models.AssignmentRole(assignment.Role),
			Mandate:     models.Mandate(assignment.Mandate),
			StartDate:   startDate,
			EndDate:     endDate,
		}
		if err := db.Create(record).Error; err != nil {
			return nil, false, err
		}
	}
	return person, true, nil
}

func createHobby(db *gorm.DB, name string) (*models.Hobby, bool, error) {
	var existing models.Hobby
	err := db.Where("name = ?", name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	hobby := &models.Hobby{Name: name}
	if err := db.Create(hobby).Error; err != nil {
		return nil, false, err
	}
	return hobby, true, nil
}

func createClubMember(db *gorm.DB, data ClubMemberData, locationMap map[string]*models.Location, hobbyMap map[string]*models.Hobby) (*models.ClubMember, bool, error) {
	var existing models.ClubMember
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	location, ok := locationMap[data.LocationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown location %q", data.LocationName)
	}
	birthdate, err := parseDate(data.Birthdate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid birthdate %q: %w", data.Birthdate, err)
	}

	member := &models.ClubMember{
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Birthdate:      birthdate,
		SSN:            data.SSN,
		MedicareNumber: data.MedicareNumber,
		Email:          data.Email,
		Phone:          data.Phone,
		Gender:         models.Gender(data.Gender),
		Height:         data.Height,
		Weight:         data.Weight,
		LocationID:     location.ID,
		Active:         data.Active,
		Minor:          eligibility.IsMinorAge(eligibility.Age(birthdate, time.Now())),
	}
	if data.JoinedAt != "" {
		joinedAt, err := parseDate(data.JoinedAt)
		if err != nil {
			return nil, false, fmt.Errorf("invalid joined_at %q: %w", data.JoinedAt, err)
		}
		member.JoinedAt = joinedAt
	}
	if err := db.Create(member).Error; err != nil {
		return nil, false, err
	}

	for _, hobbyName := range data.Hobbies {
		hobby, ok := hobbyMap[hobbyName]
		if !ok {
			return nil, false, fmt.Errorf("unknown hobby %q", hobbyName)
		}
		link := &models.MemberHobby{MemberID: member.ID, HobbyID: hobby.ID}
		if err := db.Create(link).Error; err != nil {
			return nil, false, err
		}
	}

	for _, paymentData := range data.Payments {
		paymentDate, err := parseDate(paymentData.PaymentDate)
		if err != nil {
			return nil, false, fmt.Errorf("invalid payment_date %q: %w", paymentData.PaymentDate, err)
		}
		payment := &models.Payment{
			MemberID:          member.ID,
			Amount:            paymentData.Amount,
			PaymentDate:       paymentDate,
			Method:            models.PaymentMethod(paymentData.Method),
			MembershipYear:    paymentData.MembershipYear,
			PaymentType:       models.PaymentTypeMembership,
			InstallmentNumber: paymentData.InstallmentNumber,
		}
		if err := db.Create(payment).Error; err != nil {
			return nil, false, err
		}
	}
	return member, true, nil
}

func createFamilyMember(db *gorm.DB, data FamilyMemberData, locationMap map[string]*models.Location, memberMap map[string]*models.ClubMember) (*models.FamilyMember, bool, error) {
	var existing models.FamilyMember
	err := db.Where("email = ?", data.Email).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	location, ok := locationMap[data.LocationName]
	if !ok {
		return nil, false, fmt.Errorf("unknown location %q", data.LocationName)
	}
	birthdate, err := parseDate(data.Birthdate)
	if err != nil {
		return nil, false, fmt.Errorf("invalid birthdate %q: %w", data.Birthdate, err)
	}

	guardian := &models.FamilyMember{
		FirstName:      data.FirstName,
		LastName:       data.LastName,
		Birthdate:      birthdate,
		SSN:            data.SSN,
		MedicareNumber: data.MedicareNumber,
		Email:          data.Email,
		Phone:          data.Phone,
		LocationID:     location.ID,
	}
	if err := db.Create(guardian).Error; err != nil {
		return nil, false, err
	}

	for _, relationship := range data.Relationships {
		member, ok := memberMap[relationship.MemberEmail]
		if !ok {
			return nil, false, fmt.Errorf("unknown club member %q", relationship.MemberEmail)
		}
		record := &models.FamilyRelationship{
			MinorID:          member.ID,
			GuardianID:       guardian.ID,
			RelationshipType: relationship.RelationshipType,
			IsPrimary:        relationship.IsPrimary,
			EmergencyContact: relationship.EmergencyContact,
		}
		if err := db.Create(record).Error; err != nil {
			return nil, false, err
		}
	}

	for _, contact := range data.SecondaryContacts {
		member, ok := memberMap[contact.MemberEmail]
		if !ok {
			return nil, false, fmt.Errorf("unknown club member %q", contact.MemberEmail)
		}
		record := &models.SecondaryFamilyMember{
			PrimaryFamilyMemberID: guardian.ID,
			MinorID:               member.ID,
			FirstName:             contact.FirstName,
			LastName:              contact.LastName,
			Phone:                 contact.Phone,
			RelationshipType:      contact.RelationshipType,
		}
		if err := db.Create(record).Error; err != nil {
			return nil, false, err
		}
	}
	return guardian, true, nil
}

func createSession(db *gorm.DB, data SessionData, locationMap map[string]*models.Location, personnelMap map[string]*models.Personnel, memberMap map[string]*models.ClubMember) (bool, error) {
	startsAt, err := time.Parse(time.RFC3339, data.StartsAt)
	if err != nil {
		return false, fmt.Errorf("invalid starts_at %q: %w", data.StartsAt, err)
	}

	var count int64
	if err := db.Model(&models.Session{}).
		Where("starts_at = ? AND type = ?", startsAt, data.Type).
		Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	session := &models.Session{
		Type:     models.SessionType(data.Type),
		StartsAt: startsAt,
		Address:  data.Address,
		City:     data.City,
		Province: data.Province,
		Status:   models.SessionStatus(data.Status),
	}
	if err := db.Create(session).Error; err != nil {
		return false, err
	}

	for _, teamData := range data.Teams {
		location, ok := locationMap[teamData.LocationName]
		if !ok {
			return false, fmt.Errorf("unknown location %q", teamData.LocationName)
		}
		coach, ok := personnelMap[teamData.CoachEmail]
		if !ok {
			return false, fmt.Errorf("unknown coach %q", teamData.CoachEmail)
		}
		team := &models.SessionTeam{
			SessionID:   session.ID,
			LocationID:  location.ID,
			HeadCoachID: coach.ID,
			TeamNumber:  teamData.TeamNumber,
			TeamName:    teamData.TeamName,
			Gender:      models.Gender(teamData.Gender),
			Score:       teamData.Score,
		}
		if err := db.Create(team).Error; err != nil {
			return false, err
		}

		for _, playerData := range teamData.Players {
			member, ok := memberMap[playerData.MemberEmail]
			if !ok {
				return false, fmt.Errorf("unknown club member %q", playerData.MemberEmail)
			}
			assignment := &models.PlayerAssignment{
				TeamID:    team.ID,
				MemberID:  member.ID,
				Position:  models.Position(playerData.Position),
				IsStarter: playerData.IsStarter,
			}
			if err := db.Create(assignment).Error; err != nil {
				return false, err
			}
		}
	}
	return true, nil
}
