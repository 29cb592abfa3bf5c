package service_test

import (
	"testing"
	"time"

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

// SessionServiceTestSuite defines the test suite for SessionService
type SessionServiceTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockRepo      *mocks.MockSessionRepositoryInterface
	mockLocation  *mocks.MockLocationRepositoryInterface
	mockPersonnel *mocks.MockPersonnelRepositoryInterface
	svc           *service.SessionService
}

func (suite *SessionServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockLocation = mocks.NewMockLocationRepositoryInterface(suite.ctrl)
	suite.mockPersonnel = mocks.NewMockPersonnelRepositoryInterface(suite.ctrl)
	suite.svc = service.NewSessionService(suite.mockRepo, suite.mockLocation, suite.mockPersonnel, validator.New())
}

func (suite *SessionServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SessionServiceTestSuite) TestCreate_Success() {
	req := &service.CreateSessionRequest{
		Type:     models.SessionTypeTraining,
		StartsAt: time.Now().Add(48 * time.Hour),
		City:     "Montreal",
	}

	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.Create(req)

	suite.NoError(err)
	suite.Equal(models.SessionTypeTraining, resp.Type)
	suite.Equal(models.SessionStatusScheduled, resp.Status)
}

func (suite *SessionServiceTestSuite) TestCreate_PastDateRejected() {
	req := &service.CreateSessionRequest{
		Type:     models.SessionTypeGame,
		StartsAt: time.Now().Add(-time.Hour),
	}

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSessionDateInPast)
}

func (suite *SessionServiceTestSuite) TestCreate_InvalidType() {
	req := &service.CreateSessionRequest{
		Type:     models.SessionType("scrimmage"),
		StartsAt: time.Now().Add(48 * time.Hour),
	}

	resp, err := suite.svc.Create(req)

	suite.Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *SessionServiceTestSuite) TestCreateTeam_Success() {
	sessionID := uuid.New()
	locationID := uuid.New()
	coachID := uuid.New()
	req := &service.CreateSessionTeamRequest{
		TeamNumber:  1,
		TeamName:    "Home",
		LocationID:  locationID,
		HeadCoachID: coachID,
		Gender:      models.GenderFemale,
	}

	suite.mockRepo.EXPECT().GetByID(sessionID).Return(&models.Session{
		BaseModel: models.BaseModel{ID: sessionID},
	}, nil)
	suite.mockLocation.EXPECT().GetByID(locationID).Return(&models.Location{}, nil)
	suite.mockPersonnel.EXPECT().GetByID(coachID).Return(&models.Personnel{}, nil)
	suite.mockRepo.EXPECT().CreateTeam(gomock.Any()).Return(nil)

	resp, err := suite.svc.CreateTeam(sessionID, req)

	suite.NoError(err)
	suite.Equal(sessionID, resp.SessionID)
	suite.Equal(1, resp.TeamNumber)
	suite.Equal("Home", resp.TeamName)
}

func (suite *SessionServiceTestSuite) TestCreateTeam_SessionNotFound() {
	sessionID := uuid.New()
	req := &service.CreateSessionTeamRequest{
		TeamNumber:  1,
		TeamName:    "Home",
		LocationID:  uuid.New(),
		HeadCoachID: uuid.New(),
	}

	suite.mockRepo.EXPECT().GetByID(sessionID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.CreateTeam(sessionID, req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func (suite *SessionServiceTestSuite) TestUpdateTeam_Score() {
	id := uuid.New()
	team := &models.SessionTeam{
		BaseModel:  models.BaseModel{ID: id},
		TeamNumber: 1,
		TeamName:   "Home",
	}
	score := 25

	suite.mockRepo.EXPECT().GetTeamByID(id).Return(team, nil)
	suite.mockRepo.EXPECT().UpdateTeam(gomock.Any()).Return(nil)

	resp, err := suite.svc.UpdateTeam(id, &service.UpdateSessionTeamRequest{Score: &score})

	suite.NoError(err)
	suite.NotNil(resp.Score)
	suite.Equal(25, *resp.Score)
}

func (suite *SessionServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(id)

	suite.ErrorIs(err, apperrors.ErrSessionNotFound)
}

func TestSessionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SessionServiceTestSuite))
}
