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

// PlayerAssignmentServiceTestSuite defines the test suite for PlayerAssignmentService
type PlayerAssignmentServiceTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockRepo    *mocks.MockPlayerAssignmentRepositoryInterface
	mockSession *mocks.MockSessionRepositoryInterface
	mockMember  *mocks.MockClubMemberRepositoryInterface
	svc         *service.PlayerAssignmentService
}

func (suite *PlayerAssignmentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPlayerAssignmentRepositoryInterface(suite.ctrl)
	suite.mockSession = mocks.NewMockSessionRepositoryInterface(suite.ctrl)
	suite.mockMember = mocks.NewMockClubMemberRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPlayerAssignmentService(suite.mockRepo, suite.mockSession, suite.mockMember, validator.New())
}

func (suite *PlayerAssignmentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PlayerAssignmentServiceTestSuite) TestCreate_Success() {
	teamID := uuid.New()
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel:        models.BaseModel{ID: memberID},
		FirstName:        "Alex",
		LastName:         "Member",
		Birthdate:        time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:           true,
		MembershipNumber: 100001,
	}
	req := &service.CreatePlayerAssignmentRequest{
		MemberID:  memberID,
		Position:  models.PositionLibero,
		IsStarter: true,
	}

	suite.mockSession.EXPECT().GetTeamByID(teamID).Return(&models.SessionTeam{}, nil)
	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)
	suite.mockRepo.EXPECT().GetByTeamAndMember(teamID, memberID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	resp, err := suite.svc.Create(teamID, req)

	suite.NoError(err)
	suite.Equal(models.PositionLibero, resp.Position)
	suite.True(resp.IsStarter)
	suite.Equal("Alex Member", resp.MemberName)
	suite.Equal(int64(100001), resp.MembershipNumber)
}

func (suite *PlayerAssignmentServiceTestSuite) TestCreate_InactiveMember() {
	teamID := uuid.New()
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: memberID},
		Birthdate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:    false,
	}
	req := &service.CreatePlayerAssignmentRequest{
		MemberID: memberID,
		Position: models.PositionSetter,
	}

	suite.mockSession.EXPECT().GetTeamByID(teamID).Return(&models.SessionTeam{}, nil)
	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)

	resp, err := suite.svc.Create(teamID, req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrMemberNotActive)
}

func (suite *PlayerAssignmentServiceTestSuite) TestCreate_DuplicateOnTeam() {
	teamID := uuid.New()
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: memberID},
		Birthdate: time.Date(1995, 6, 1, 0, 0, 0, 0, time.UTC),
		Active:    true,
	}
	req := &service.CreatePlayerAssignmentRequest{
		MemberID: memberID,
		Position: models.PositionSetter,
	}

	suite.mockSession.EXPECT().GetTeamByID(teamID).Return(&models.SessionTeam{}, nil)
	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)
	suite.mockRepo.EXPECT().GetByTeamAndMember(teamID, memberID).
		Return(&models.PlayerAssignment{}, nil)

	resp, err := suite.svc.Create(teamID, req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrPlayerAssignmentExists)
}

func (suite *PlayerAssignmentServiceTestSuite) TestCreate_TeamNotFound() {
	teamID := uuid.New()
	req := &service.CreatePlayerAssignmentRequest{
		MemberID: uuid.New(),
		Position: models.PositionSetter,
	}

	suite.mockSession.EXPECT().GetTeamByID(teamID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(teamID, req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrSessionTeamNotFound)
}

func (suite *PlayerAssignmentServiceTestSuite) TestUpdate_Position() {
	id := uuid.New()
	assignment := &models.PlayerAssignment{
		BaseModel: models.BaseModel{ID: id},
		Position:  models.PositionSetter,
	}
	newPosition := models.PositionMiddleBlocker

	suite.mockRepo.EXPECT().GetByID(id).Return(assignment, nil)
	suite.mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	resp, err := suite.svc.Update(id, &service.UpdatePlayerAssignmentRequest{Position: &newPosition})

	suite.NoError(err)
	suite.Equal(models.PositionMiddleBlocker, resp.Position)
}

func (suite *PlayerAssignmentServiceTestSuite) TestDelete_NotFound() {
	id := uuid.New()
	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	err := suite.svc.Delete(id)

	suite.ErrorIs(err, apperrors.ErrPlayerAssignmentNotFound)
}

func TestPlayerAssignmentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PlayerAssignmentServiceTestSuite))
}
