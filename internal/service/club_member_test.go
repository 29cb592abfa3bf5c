package service_test

import (
	"testing"
	"time"

	"club-registry-backend/internal/database/models"
	"club-registry-backend/internal/eligibility"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// ClubMemberServiceTestSuite defines the test suite for ClubMemberService
type ClubMemberServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *mocks.MockClubMemberRepositoryInterface
	mockLocation *mocks.MockLocationRepositoryInterface
	svc          *service.ClubMemberService
}

func (suite *ClubMemberServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockClubMemberRepositoryInterface(suite.ctrl)
	suite.mockLocation = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.svc = service.NewClubMemberService(suite.mockRepo, suite.mockLocation, validator.New())
}

func (suite *ClubMemberServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClubMemberServiceTestSuite) validRequest(locationID uuid.UUID) *service.CreateClubMemberRequest {
	return &service.CreateClubMemberRequest{
		FirstName:      "Alex",
		LastName:       "Member",
		Birthdate:      time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		SSN:            "123-456-789",
		MedicareNumber: "MED123456",
		Email:          "alex@club.test",
		LocationID:     locationID,
		Gender:         models.GenderFemale,
	}
}

func (suite *ClubMemberServiceTestSuite) TestCreate_Adult_Success() {
	locationID := uuid.New()
	req := suite.validRequest(locationID)

	suite.mockLocation.EXPECT().GetByID(locationID).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().GetByIdentity(req.SSN, req.MedicareNumber, req.Email).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.ClubMember) error {
		m.MembershipNumber = 100001
		return nil
	})

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.NotNil(resp)
	suite.True(resp.Active)
	suite.False(resp.Minor)
	suite.Equal(eligibility.MajorAnnualFee, resp.AnnualFee)
	suite.Equal(int64(100001), resp.MembershipNumber)
}

func (suite *ClubMemberServiceTestSuite) TestCreate_MinorClassification() {
	locationID := uuid.New()
	req := suite.validRequest(locationID)
	// 14 years old at registration
	now := time.Now()
	req.Birthdate = time.Date(now.Year()-14, now.Month(), 1, 0, 0, 0, 0, time.UTC)

	suite.mockLocation.EXPECT().GetByID(locationID).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().GetByIdentity(req.SSN, req.MedicareNumber, req.Email).
		Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.True(resp.Minor)
	suite.Equal(eligibility.MinorAnnualFee, resp.AnnualFee)
}

func (suite *ClubMemberServiceTestSuite) TestCreate_ExplicitMinorOverridesAge() {
	locationID := uuid.New()
	req := suite.validRequest(locationID)
	// adult by birthdate, registered as a minor anyway
	minor := true
	req.Minor = &minor

	suite.mockLocation.EXPECT().GetByID(locationID).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().GetByIdentity(req.SSN, req.MedicareNumber, req.Email).
		Return(nil, gorm.ErrRecordNotFound)
	var stored *models.ClubMember
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(m *models.ClubMember) error {
		stored = m
		return nil
	})

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.True(stored.Minor)
	suite.True(resp.Minor)
	suite.Equal(eligibility.MinorAnnualFee, resp.AnnualFee)
}

func (suite *ClubMemberServiceTestSuite) TestCreate_Underage() {
	req := suite.validRequest(uuid.New())
	req.Birthdate = time.Now().AddDate(-10, 0, 0)

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
	suite.Contains(err.Error(), "at least 11 years old")
}

func (suite *ClubMemberServiceTestSuite) TestCreate_FutureBirthdate() {
	req := suite.validRequest(uuid.New())
	req.Birthdate = time.Now().AddDate(1, 0, 0)

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ClubMemberServiceTestSuite) TestCreate_DuplicateIdentity() {
	locationID := uuid.New()
	req := suite.validRequest(locationID)

	suite.mockLocation.EXPECT().GetByID(locationID).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().GetByIdentity(req.SSN, req.MedicareNumber, req.Email).
		Return(&models.ClubMember{}, nil)

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrClubMemberExists)
}

func (suite *ClubMemberServiceTestSuite) TestCreate_LocationNotFound() {
	locationID := uuid.New()
	req := suite.validRequest(locationID)

	suite.mockLocation.EXPECT().GetByID(locationID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func (suite *ClubMemberServiceTestSuite) TestGetByMembershipNumber_NotFound() {
	suite.mockRepo.EXPECT().GetByMembershipNumber(int64(999999)).
		Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByMembershipNumber(999999)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrClubMemberNotFound)
}

func (suite *ClubMemberServiceTestSuite) TestSetActiveStatus_Deactivate() {
	id := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: id},
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	suite.mockRepo.EXPECT().GetByID(id).Return(member, nil)
	suite.mockRepo.EXPECT().SetActiveStatus(id, false).Return(nil)

	resp, err := suite.svc.SetActiveStatus(id, false)

	suite.NoError(err)
	suite.False(resp.Active)
}

func (suite *ClubMemberServiceTestSuite) TestSetActiveStatus_NoChange() {
	id := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: id},
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}

	// already active: no store round-trip
	suite.mockRepo.EXPECT().GetByID(id).Return(member, nil)

	resp, err := suite.svc.SetActiveStatus(id, true)

	suite.NoError(err)
	suite.True(resp.Active)
}

func (suite *ClubMemberServiceTestSuite) TestUpdate_UnderageBirthdateRejected() {
	id := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: id},
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	tooYoung := time.Now().AddDate(-5, 0, 0)

	suite.mockRepo.EXPECT().GetByID(id).Return(member, nil)

	resp, err := suite.svc.Update(id, &service.UpdateClubMemberRequest{Birthdate: &tooYoung})

	suite.Error(err)
	suite.Nil(resp)
	suite.True(apperrors.IsValidation(err))
}

func (suite *ClubMemberServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(id)

	suite.ErrorIs(err, apperrors.ErrClubMemberNotFound)
}

func TestClubMemberServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClubMemberServiceTestSuite))
}
