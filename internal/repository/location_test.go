//go:build integration
// +build integration

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

// LocationRepositoryTestSuite tests the LocationRepository against Postgres
type LocationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *LocationRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *LocationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewLocationRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *LocationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *LocationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *LocationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAndGetByName round-trips a location through the store
func (suite *LocationRepositoryTestSuite) TestCreateAndGetByName() {
	location := suite.factories.Location.WithName("East Branch")
	suite.NoError(suite.repo.Create(location))

	got, err := suite.repo.GetByName("East Branch")

	suite.NoError(err)
	suite.Equal(location.ID, got.ID)
	suite.Equal(models.LocationTypeBranch, got.Type)
}

// TestCreateDuplicateName verifies the unique index on name
func (suite *LocationRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.Location.WithName("Head Office")))

	err := suite.repo.Create(suite.factories.Location.WithName("Head Office"))

	suite.Error(err)
}

// TestGetByIDNotFound returns the record-not-found sentinel
func (suite *LocationRepositoryTestSuite) TestGetByIDNotFound() {
	got, err := suite.repo.GetByID(uuid.New())

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(got)
}

// TestGetAllOrderedByProvinceThenCity checks the listing order
func (suite *LocationRepositoryTestSuite) TestGetAllOrderedByProvinceThenCity() {
	suite.NoError(suite.repo.Create(suite.factories.Location.WithCity("Toronto", "Ontario")))
	suite.NoError(suite.repo.Create(suite.factories.Location.WithCity("Quebec City", "Quebec")))
	suite.NoError(suite.repo.Create(suite.factories.Location.WithCity("Montreal", "Quebec")))

	locations, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Equal("Ontario", locations[0].Province)
	suite.Equal("Montreal", locations[1].City)
	suite.Equal("Quebec City", locations[2].City)
}

// TestDependentCounts tallies members, family members and teams
func (suite *LocationRepositoryTestSuite) TestDependentCounts() {
	location := suite.factories.Location.Create()
	suite.NoError(suite.repo.Create(location))

	member := suite.factories.ClubMember.Create(location.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(member).Error)
	familyMember := suite.factories.FamilyMember.Create(location.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(familyMember).Error)

	coach := suite.factories.Personnel.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(coach).Error)
	session := suite.factories.Session.Create(time.Now().Add(72 * time.Hour))
	suite.NoError(suite.baseTestSuite.DB.Create(session).Error)
	team := suite.factories.SessionTeam.Create(session.ID, location.ID, coach.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(team).Error)

	members, familyMembers, teams, err := suite.repo.DependentCounts(location.ID)

	suite.NoError(err)
	suite.Equal(int64(1), members)
	suite.Equal(int64(1), familyMembers)
	suite.Equal(int64(1), teams)
}

// TestDeleteEmptyLocation deletes when nothing depends on it
func (suite *LocationRepositoryTestSuite) TestDeleteEmptyLocation() {
	location := suite.factories.Location.Create()
	suite.NoError(suite.repo.Create(location))

	suite.NoError(suite.repo.Delete(location.ID))

	_, err := suite.repo.GetByID(location.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func TestLocationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(LocationRepositoryTestSuite))
}
