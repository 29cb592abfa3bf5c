//go:build integration
// +build integration

package repository

import (
	"testing"

	"club-registry-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// PersonnelRepositoryTestSuite tests the PersonnelRepository against Postgres
type PersonnelRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *PersonnelRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *PersonnelRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewPersonnelRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *PersonnelRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *PersonnelRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *PersonnelRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateDuplicateSSN verifies the unique index on ssn
func (suite *PersonnelRepositoryTestSuite) TestCreateDuplicateSSN() {
	first := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(first))

	dup := suite.factories.Personnel.Create()
	dup.SSN = first.SSN

	suite.Error(suite.repo.Create(dup))
}

// TestCreateDuplicateMedicareNumber verifies the unique index on medicare_number
func (suite *PersonnelRepositoryTestSuite) TestCreateDuplicateMedicareNumber() {
	first := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(first))

	dup := suite.factories.Personnel.Create()
	dup.MedicareNumber = first.MedicareNumber

	suite.Error(suite.repo.Create(dup))
}

// TestCreateDuplicateEmail verifies the unique index on email
func (suite *PersonnelRepositoryTestSuite) TestCreateDuplicateEmail() {
	first := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(first))

	dup := suite.factories.Personnel.Create()
	dup.Email = first.Email

	suite.Error(suite.repo.Create(dup))
}

// TestGetByIdentityMatchesAnyField verifies lookup by each identity field
func (suite *PersonnelRepositoryTestSuite) TestGetByIdentityMatchesAnyField() {
	personnel := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(personnel))

	bySSN, err := suite.repo.GetByIdentity(personnel.SSN, "nope", "nope")
	suite.NoError(err)
	suite.Equal(personnel.ID, bySSN.ID)

	byEmail, err := suite.repo.GetByIdentity("nope", "nope", personnel.Email)
	suite.NoError(err)
	suite.Equal(personnel.ID, byEmail.ID)

	_, err = suite.repo.GetByIdentity("nope", "nope", "nobody@club.test")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetWithAssignments preloads the role history
func (suite *PersonnelRepositoryTestSuite) TestGetWithAssignments() {
	location := suite.factories.Location.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(location).Error)

	personnel := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(personnel))

	assignment := suite.factories.PersonnelAssignment.Create(personnel.ID, location.ID)
	suite.NoError(suite.repo.CreateAssignment(assignment))

	got, err := suite.repo.GetWithAssignments(personnel.ID)

	suite.NoError(err)
	suite.Len(got.Assignments, 1)
	suite.Equal(location.ID, got.Assignments[0].LocationID)
}

// TestDeleteCascadesAssignments verifies role history goes with the person
func (suite *PersonnelRepositoryTestSuite) TestDeleteCascadesAssignments() {
	location := suite.factories.Location.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(location).Error)

	personnel := suite.factories.Personnel.Create()
	suite.NoError(suite.repo.Create(personnel))
	suite.NoError(suite.repo.CreateAssignment(suite.factories.PersonnelAssignment.Create(personnel.ID, location.ID)))

	suite.NoError(suite.repo.Delete(personnel.ID))

	assignments, err := suite.repo.GetAssignmentsByPersonnel(personnel.ID)
	suite.NoError(err)
	suite.Empty(assignments)
}

func TestPersonnelRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PersonnelRepositoryTestSuite))
}
