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

// ClubMemberRepositoryTestSuite tests the ClubMemberRepository against Postgres
type ClubMemberRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ClubMemberRepository
	factories     *testutils.FactorySet
	location      *models.Location
}

// SetupSuite runs before all tests in the suite
func (suite *ClubMemberRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewClubMemberRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ClubMemberRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ClubMemberRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.location = suite.factories.Location.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.location).Error)
}

// TearDownTest runs after each test
func (suite *ClubMemberRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreateAssignsMembershipNumber verifies the number sequence starts above
// the seed and increments
func (suite *ClubMemberRepositoryTestSuite) TestCreateAssignsMembershipNumber() {
	first := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(first))
	suite.Equal(int64(100001), first.MembershipNumber)

	second := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(second))
	suite.Equal(int64(100002), second.MembershipNumber)
}

// TestCreateUnderageRejected verifies the schema-layer minimum age rule
func (suite *ClubMemberRepositoryTestSuite) TestCreateUnderageRejected() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	member.Birthdate = time.Now().AddDate(-10, 0, 0)

	err := suite.repo.Create(member)

	suite.Error(err)
	suite.Contains(err.Error(), "at least 11 years old")
}

// TestCreateDuplicateSSN verifies the unique index on identity fields
func (suite *ClubMemberRepositoryTestSuite) TestCreateDuplicateSSN() {
	first := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(first))

	dup := suite.factories.ClubMember.Create(suite.location.ID)
	dup.SSN = first.SSN

	suite.Error(suite.repo.Create(dup))
}

// TestGetByMembershipNumber retrieves by the assigned number
func (suite *ClubMemberRepositoryTestSuite) TestGetByMembershipNumber() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(member))

	got, err := suite.repo.GetByMembershipNumber(member.MembershipNumber)

	suite.NoError(err)
	suite.Equal(member.ID, got.ID)
}

// TestGetByIdentityMatchesAnyField verifies lookup by each identity field
func (suite *ClubMemberRepositoryTestSuite) TestGetByIdentityMatchesAnyField() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(member))

	byEmail, err := suite.repo.GetByIdentity("nope", "nope", member.Email)
	suite.NoError(err)
	suite.Equal(member.ID, byEmail.ID)

	_, err = suite.repo.GetByIdentity("nope", "nope", "nobody@club.test")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestSetActiveStatus flips only the flag
func (suite *ClubMemberRepositoryTestSuite) TestSetActiveStatus() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(member))

	suite.NoError(suite.repo.SetActiveStatus(member.ID, false))

	got, err := suite.repo.GetByID(member.ID)
	suite.NoError(err)
	suite.False(got.Active)
	suite.Equal(member.Email, got.Email)
}

// TestDeleteCascadesDependents verifies payments and assignments go with the member
func (suite *ClubMemberRepositoryTestSuite) TestDeleteCascadesDependents() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(member))

	payment := suite.factories.Payment.Create(member.ID, 2025)
	suite.NoError(suite.baseTestSuite.DB.Create(payment).Error)

	suite.NoError(suite.repo.Delete(member.ID))

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Payment{}).
		Where("member_id = ?", member.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestGetWithDetails preloads payments and hobbies
func (suite *ClubMemberRepositoryTestSuite) TestGetWithDetails() {
	member := suite.factories.ClubMember.Create(suite.location.ID)
	suite.NoError(suite.repo.Create(member))

	hobby := suite.factories.Hobby.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(hobby).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(&models.MemberHobby{
		MemberID: member.ID,
		HobbyID:  hobby.ID,
	}).Error)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.factories.Payment.Create(member.ID, 2025)).Error)

	got, err := suite.repo.GetWithDetails(member.ID)

	suite.NoError(err)
	suite.NotNil(got.Location)
	suite.Len(got.Payments, 1)
	suite.Len(got.Hobbies, 1)
	suite.NotNil(got.Hobbies[0].Hobby)
}

// TestGetAllOrderedByMembershipNumber lists in assignment order
func (suite *ClubMemberRepositoryTestSuite) TestGetAllOrderedByMembershipNumber() {
	for i := 0; i < 3; i++ {
		m := suite.factories.ClubMember.Create(suite.location.ID)
		suite.NoError(suite.repo.Create(m))
	}

	members, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(members, 3)
	suite.Less(members[0].MembershipNumber, members[1].MembershipNumber)
	suite.Less(members[1].MembershipNumber, members[2].MembershipNumber)
}

func TestClubMemberRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ClubMemberRepositoryTestSuite))
}
