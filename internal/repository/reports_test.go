package repository

import (
	"testing"
	"time"

	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ReportRepositoryTestSuite tests the reporting queries against an in-memory
// database seeded per test
type ReportRepositoryTestSuite struct {
	suite.Suite
	db        *gorm.DB
	repo      *ReportRepository
	factories *testutils.FactorySet
}

func (suite *ReportRepositoryTestSuite) SetupTest() {
	suite.db = testutils.NewSQLiteDB(suite.T())
	suite.repo = NewReportRepository(suite.db)
	suite.factories = testutils.NewFactorySet()
}

func (suite *ReportRepositoryTestSuite) create(value interface{}) {
	suite.Require().NoError(suite.db.Create(value).Error)
}

func (suite *ReportRepositoryTestSuite) createLocation(city, province string) *models.Location {
	location := suite.factories.Location.WithCity(city, province)
	suite.create(location)
	return location
}

func (suite *ReportRepositoryTestSuite) createMember(locationID uuid.UUID) *models.ClubMember {
	member := suite.factories.ClubMember.Create(locationID)
	suite.create(member)
	return member
}

func (suite *ReportRepositoryTestSuite) createMinor(locationID uuid.UUID) *models.ClubMember {
	member := suite.factories.ClubMember.Minor(locationID, time.Now())
	suite.create(member)
	return member
}

// createGame builds a game session with one team at the location and puts the
// member on it at the given position
func (suite *ReportRepositoryTestSuite) createGame(locationID uuid.UUID, member *models.ClubMember, position models.Position) *models.SessionTeam {
	coach := suite.factories.Personnel.Create()
	suite.create(coach)
	session := suite.factories.Session.Game(time.Now().Add(72 * time.Hour))
	suite.create(session)
	team := suite.factories.SessionTeam.Create(session.ID, locationID, coach.ID)
	suite.create(team)
	suite.create(suite.factories.PlayerAssignment.WithPosition(team.ID, member.ID, position))
	return team
}

func (suite *ReportRepositoryTestSuite) TestLocationSummary() {
	branch := suite.createLocation("Montreal", "Quebec")
	head := suite.factories.Location.WithType(models.LocationTypeHead)
	head.City = "Toronto"
	head.Province = "Ontario"
	suite.create(head)

	suite.createMember(branch.ID)
	suite.createMinor(branch.ID)
	suite.createMinor(branch.ID)

	// current general manager at the branch; an ended mandate must not show
	manager := suite.factories.Personnel.WithName("Morgan", "Boss")
	suite.create(manager)
	suite.create(suite.factories.PersonnelAssignment.WithRole(manager.ID, branch.ID, models.RoleGeneralManager))
	former := suite.factories.Personnel.WithName("Jess", "Former")
	suite.create(former)
	ended := suite.factories.PersonnelAssignment.WithRole(former.ID, branch.ID, models.RoleGeneralManager)
	endDate := time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)
	ended.EndDate = &endDate
	suite.create(ended)

	rows, err := suite.repo.LocationSummary()

	suite.NoError(err)
	suite.Len(rows, 2)
	// ordered by province then city: Ontario before Quebec
	suite.Equal(head.ID, rows[0].LocationID)
	suite.Equal("", rows[0].GeneralManager)
	suite.Equal(branch.ID, rows[1].LocationID)
	suite.Equal("Morgan Boss", rows[1].GeneralManager)
	suite.Equal(int64(2), rows[1].MinorCount)
	suite.Equal(int64(1), rows[1].MajorCount)
}

func (suite *ReportRepositoryTestSuite) TestGuardianDependents() {
	location := suite.createLocation("Montreal", "Quebec")
	guardian := suite.factories.FamilyMember.Create(location.ID)
	suite.create(guardian)
	otherGuardian := suite.factories.FamilyMember.Create(location.ID)
	suite.create(otherGuardian)

	minorA := suite.createMinor(location.ID)
	suite.Require().NoError(suite.db.Model(minorA).Update("last_name", "Aubry").Error)
	minorB := suite.createMinor(location.ID)
	suite.Require().NoError(suite.db.Model(minorB).Update("last_name", "Zhou").Error)

	suite.create(suite.factories.FamilyRelationship.Create(minorA.ID, guardian.ID))
	suite.create(suite.factories.FamilyRelationship.Create(minorB.ID, guardian.ID))

	// secondary contact registered by this guardian for minor A
	suite.create(suite.factories.SecondaryContact.Create(guardian.ID, minorA.ID))
	// another guardian's secondary contact for minor B must not bleed in
	suite.create(suite.factories.SecondaryContact.Create(otherGuardian.ID, minorB.ID))

	rows, err := suite.repo.GuardianDependents(guardian.ID)

	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal(minorA.ID, rows[0].MinorID)
	suite.NotNil(rows[0].SecondaryFirstName)
	suite.Equal("Sam", *rows[0].SecondaryFirstName)
	suite.Equal(minorB.ID, rows[1].MinorID)
	suite.Nil(rows[1].SecondaryFirstName)
}

func (suite *ReportRepositoryTestSuite) TestLocationSessions() {
	location := suite.createLocation("Montreal", "Quebec")
	other := suite.createLocation("Laval", "Quebec")
	coach := suite.factories.Personnel.Create()
	suite.create(coach)
	member := suite.createMember(location.ID)

	inRange := suite.factories.Session.Create(time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC))
	suite.create(inRange)
	team := suite.factories.SessionTeam.Create(inRange.ID, location.ID, coach.ID)
	suite.create(team)
	suite.create(suite.factories.PlayerAssignment.Create(team.ID, member.ID))

	// outside the range
	late := suite.factories.Session.Create(time.Date(2025, 9, 10, 18, 0, 0, 0, time.UTC))
	suite.create(late)
	suite.create(suite.factories.SessionTeam.Create(late.ID, location.ID, coach.ID))

	// other location's team in range
	elsewhere := suite.factories.Session.Create(time.Date(2025, 6, 12, 18, 0, 0, 0, time.UTC))
	suite.create(elsewhere)
	suite.create(suite.factories.SessionTeam.Create(elsewhere.ID, other.ID, coach.ID))

	rows, err := suite.repo.LocationSessions(location.ID,
		time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC))

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(inRange.ID, rows[0].SessionID)
	suite.Equal(team.ID, rows[0].TeamID)
	suite.NotNil(rows[0].PlayerFirstName)
}

func (suite *ReportRepositoryTestSuite) TestGameSessionActivity() {
	busy := suite.createLocation("Montreal", "Quebec")
	quiet := suite.createLocation("Laval", "Quebec")
	coach := suite.factories.Personnel.Create()
	suite.create(coach)
	member := suite.createMember(busy.ID)

	start := time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC)
	for i := 0; i < 2; i++ {
		session := suite.factories.Session.Game(start.AddDate(0, 0, i))
		suite.create(session)
		team := suite.factories.SessionTeam.Create(session.ID, busy.ID, coach.ID)
		suite.create(team)
		suite.create(suite.factories.PlayerAssignment.Create(team.ID, member.ID))
	}
	training := suite.factories.Session.Create(start.AddDate(0, 0, 5))
	suite.create(training)
	suite.create(suite.factories.SessionTeam.Create(training.ID, busy.ID, coach.ID))

	// one game at the quiet location, below the threshold
	game := suite.factories.Session.Game(start.AddDate(0, 0, 3))
	suite.create(game)
	suite.create(suite.factories.SessionTeam.Create(game.ID, quiet.ID, coach.ID))

	from := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC)

	rows, err := suite.repo.GameSessionActivity(from, to, 2)

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(busy.ID, rows[0].LocationID)
	suite.Equal(int64(2), rows[0].GameSessions)
	suite.Equal(int64(1), rows[0].TrainingSessions)
	suite.Equal(int64(2), rows[0].GamePlayers)

	// threshold 1 lets both through, most active first
	rows, err = suite.repo.GameSessionActivity(from, to, 1)
	suite.NoError(err)
	suite.Len(rows, 2)
	suite.Equal(busy.ID, rows[0].LocationID)
}

func (suite *ReportRepositoryTestSuite) TestNeverAssignedMembers() {
	location := suite.createLocation("Montreal", "Quebec")
	unassigned := suite.createMember(location.ID)
	assigned := suite.createMember(location.ID)
	suite.createGame(location.ID, assigned, models.PositionSetter)

	inactive := suite.factories.ClubMember.Inactive(location.ID, time.Now().AddDate(-1, 0, 0))
	suite.create(inactive)

	rows, err := suite.repo.NeverAssignedMembers()

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(unassigned.ID, rows[0].MemberID)
	suite.Equal(location.Name, rows[0].LocationName)
}

func (suite *ReportRepositoryTestSuite) TestActiveAdultMembers() {
	location := suite.createLocation("Montreal", "Quebec")

	adult := suite.createMember(location.ID)
	suite.create(suite.factories.Payment.Create(adult.ID, 2024))
	suite.create(suite.factories.Payment.Create(adult.ID, 2025))

	// minors and unpaying adults stay out
	minor := suite.createMinor(location.ID)
	suite.create(suite.factories.Payment.Create(minor.ID, 2025))
	suite.createMember(location.ID)

	rows, err := suite.repo.ActiveAdultMembers()

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(adult.ID, rows[0].MemberID)
	// earliest payment wins
	suite.Equal(2024, rows[0].FirstPaymentDate.Year())
}

func (suite *ReportRepositoryTestSuite) TestSinglePositionSpecialists() {
	location := suite.createLocation("Montreal", "Quebec")

	specialist := suite.createMember(location.ID)
	suite.createGame(location.ID, specialist, models.PositionLibero)
	suite.createGame(location.ID, specialist, models.PositionLibero)

	versatile := suite.createMember(location.ID)
	suite.createGame(location.ID, versatile, models.PositionLibero)
	suite.createGame(location.ID, versatile, models.PositionSetter)

	rows, err := suite.repo.SinglePositionSpecialists(models.PositionLibero)

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(specialist.ID, rows[0].MemberID)
}

func (suite *ReportRepositoryTestSuite) TestAllRounders() {
	location := suite.createLocation("Montreal", "Quebec")

	allRounder := suite.createMember(location.ID)
	for _, position := range models.KeyPositions {
		suite.createGame(location.ID, allRounder, position)
	}

	// three of four key positions is not enough
	almost := suite.createMember(location.ID)
	for _, position := range models.KeyPositions[:3] {
		suite.createGame(location.ID, almost, position)
	}

	// all four positions but in training sessions only
	trainee := suite.createMember(location.ID)
	coach := suite.factories.Personnel.Create()
	suite.create(coach)
	for _, position := range models.KeyPositions {
		session := suite.factories.Session.Create(time.Now().Add(72 * time.Hour))
		suite.create(session)
		team := suite.factories.SessionTeam.Create(session.ID, location.ID, coach.ID)
		suite.create(team)
		suite.create(suite.factories.PlayerAssignment.WithPosition(team.ID, trainee.ID, position))
	}

	rows, err := suite.repo.AllRounders()

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(allRounder.ID, rows[0].MemberID)
}

func (suite *ReportRepositoryTestSuite) TestCoachRelatives() {
	location := suite.createLocation("Montreal", "Quebec")
	member := suite.createMember(location.ID)

	// the coach is also a registered family member, matched by SSN
	coach := suite.factories.Personnel.WithSSN("SHARED-SSN-1")
	suite.create(coach)
	relative := suite.factories.FamilyMember.WithSSN(location.ID, "SHARED-SSN-1")
	suite.create(relative)

	session := suite.factories.Session.Game(time.Now().Add(72 * time.Hour))
	suite.create(session)
	team := suite.factories.SessionTeam.Create(session.ID, location.ID, coach.ID)
	suite.create(team)
	suite.create(suite.factories.PlayerAssignment.Create(team.ID, member.ID))

	// an unrelated coach never shows
	other := suite.factories.Personnel.Create()
	suite.create(other)

	rows, err := suite.repo.CoachRelatives(location.ID)

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(relative.ID, rows[0].FamilyMemberID)
	suite.Equal(team.TeamName, rows[0].TeamName)
}

func (suite *ReportRepositoryTestSuite) TestUndefeatedPlayers() {
	location := suite.createLocation("Montreal", "Quebec")
	coach := suite.factories.Personnel.Create()
	suite.create(coach)

	winner := suite.createMember(location.ID)
	loser := suite.createMember(location.ID)
	spectator := suite.createMember(location.ID)

	session := suite.factories.Session.Game(time.Now().Add(72 * time.Hour))
	suite.create(session)
	winning := suite.factories.SessionTeam.WithScore(session.ID, location.ID, coach.ID, 1, 25)
	suite.create(winning)
	losing := suite.factories.SessionTeam.WithScore(session.ID, location.ID, coach.ID, 2, 18)
	suite.create(losing)
	suite.create(suite.factories.PlayerAssignment.Create(winning.ID, winner.ID))
	suite.create(suite.factories.PlayerAssignment.Create(losing.ID, loser.ID))

	rows, err := suite.repo.UndefeatedPlayers()

	suite.NoError(err)
	suite.Len(rows, 1)
	suite.Equal(winner.ID, rows[0].MemberID)
	// spectator has no game appearance at all
	for _, row := range rows {
		suite.NotEqual(spectator.ID, row.MemberID)
	}
}

func (suite *ReportRepositoryTestSuite) TestInactiveMembers() {
	location := suite.createLocation("Montreal", "Quebec")
	ref := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	// flagged inactive, long tenure, no prior-year payment: reported
	dormant := suite.factories.ClubMember.Inactive(location.ID, ref.AddDate(0, 0, -800))
	suite.create(dormant)

	// exactly at the tenure boundary: reported
	boundary := suite.factories.ClubMember.Inactive(location.ID, ref.AddDate(0, 0, -730))
	suite.create(boundary)

	// too recent a joiner
	recent := suite.factories.ClubMember.Inactive(location.ID, ref.AddDate(0, 0, -400))
	suite.create(recent)

	// paid for the prior membership year
	paid := suite.factories.ClubMember.Inactive(location.ID, ref.AddDate(0, 0, -800))
	suite.create(paid)
	suite.create(suite.factories.Payment.Create(paid.ID, 2024))

	// still active
	suite.createMember(location.ID)

	rows, err := suite.repo.InactiveMembers(ref)

	suite.NoError(err)
	suite.Len(rows, 2)
	ids := []uuid.UUID{rows[0].MemberID, rows[1].MemberID}
	suite.Contains(ids, dormant.ID)
	suite.Contains(ids, boundary.ID)
}

func TestReportRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ReportRepositoryTestSuite))
}
