package service_test

import (
	"testing"

	"club-registry-backend/internal/database/models"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// LocationServiceTestSuite defines the test suite for LocationService
type LocationServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockLocationRepositoryInterface
	svc      *service.LocationService
}

func (suite *LocationServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.svc = service.NewLocationService(suite.mockRepo, validator.New())
}

func (suite *LocationServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LocationServiceTestSuite) TestCreate_Success() {
	req := &service.CreateLocationRequest{
		Name: "West Branch",
		Type: models.LocationTypeBranch,
		City: "Laval",
	}

	suite.mockRepo.EXPECT().GetByName("West Branch").Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.Equal("West Branch", resp.Name)
	suite.Equal(models.LocationTypeBranch, resp.Type)
}

func (suite *LocationServiceTestSuite) TestCreate_DuplicateName() {
	req := &service.CreateLocationRequest{
		Name: "Head Office",
		Type: models.LocationTypeHead,
	}

	suite.mockRepo.EXPECT().GetByName("Head Office").Return(&models.Location{}, nil)

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLocationExists)
}

func (suite *LocationServiceTestSuite) TestCreate_InvalidType() {
	req := &service.CreateLocationRequest{
		Name: "Somewhere",
		Type: models.LocationType("warehouse"),
	}

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *LocationServiceTestSuite) TestGetByID_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.GetByID(id)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLocationNotFound)
}

func (suite *LocationServiceTestSuite) TestDelete_BlockedByDependents() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().DependentCounts(id).Return(int64(3), int64(1), int64(0), nil)

	err := suite.svc.Delete(id)

	suite.Error(err)
	suite.True(apperrors.IsReferentialConflict(err))
	suite.Contains(err.Error(), "3 club members")
	suite.Contains(err.Error(), "1 family members")
}

func (suite *LocationServiceTestSuite) TestDelete_Success() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Location{}, nil)
	suite.mockRepo.EXPECT().DependentCounts(id).Return(int64(0), int64(0), int64(0), nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.svc.Delete(id))
}

func (suite *LocationServiceTestSuite) TestUpdate_RenameToTakenName() {
	id := uuid.New()
	location := &models.Location{
		BaseModel: models.BaseModel{ID: id},
		Name:      "Old Name",
	}
	newName := "Taken Name"

	suite.mockRepo.EXPECT().GetByID(id).Return(location, nil)
	suite.mockRepo.EXPECT().GetByName(newName).Return(&models.Location{}, nil)

	resp, err := suite.svc.Update(id, &service.UpdateLocationRequest{Name: &newName})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrLocationExists)
}

func TestLocationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LocationServiceTestSuite))
}
