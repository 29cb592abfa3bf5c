package service_test

import (
	"testing"
	"time"

	"club-registry-backend/internal/database/models"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/repository"
	"club-registry-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

func TestParseReportName(t *testing.T) {
	name, err := service.ParseReportName("location-summary")
	assert.NoError(t, err)
	assert.Equal(t, service.ReportLocationSummary, name)

	_, err = service.ParseReportName("quarterly-revenue")
	assert.ErrorIs(t, err, apperrors.ErrUnknownReport)

	_, err = service.ParseReportName("")
	assert.ErrorIs(t, err, apperrors.ErrUnknownReport)
}

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	mockRepo *mocks.MockReportRepositoryInterface
	svc      *service.ReportService
}

func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockReportRepositoryInterface(suite.ctrl)
	suite.svc = service.NewReportService(suite.mockRepo)
}

func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) TestRun_LocationSummary() {
	rows := []repository.LocationSummaryRow{
		{LocationID: uuid.New(), Name: "Head Office", Type: "head", GeneralManager: "Pat Boss"},
	}
	suite.mockRepo.EXPECT().LocationSummary().Return(rows, nil)

	resp, err := suite.svc.Run(service.ReportLocationSummary, service.ReportParams{})

	suite.NoError(err)
	suite.Equal(service.ReportLocationSummary, resp.Name)
	suite.NotEmpty(resp.GeneratedAt)
	suite.Equal(rows, resp.Rows)
}

func (suite *ReportServiceTestSuite) TestRun_UnknownName() {
	resp, err := suite.svc.Run(service.ReportName("bogus"), service.ReportParams{})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrUnknownReport)
}

func (suite *ReportServiceTestSuite) TestRun_GuardianDependents_MissingParam() {
	resp, err := suite.svc.Run(service.ReportGuardianDependents, service.ReportParams{})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidReportParams)
}

func (suite *ReportServiceTestSuite) TestRun_GuardianDependents_AgesComputed() {
	guardianID := uuid.New()
	birthdate := time.Now().AddDate(-14, 0, -1)
	suite.mockRepo.EXPECT().GuardianDependents(guardianID).Return([]repository.GuardianDependentRow{
		{MinorID: uuid.New(), FirstName: "Jo", Birthdate: birthdate},
	}, nil)

	resp, err := suite.svc.Run(service.ReportGuardianDependents,
		service.ReportParams{GuardianID: guardianID.String()})

	suite.NoError(err)
	rows, ok := resp.Rows.([]service.DependentAgeRow)
	suite.True(ok)
	suite.Len(rows, 1)
	suite.Equal(14, rows[0].Age)
}

func (suite *ReportServiceTestSuite) TestRun_LocationSessions_InvalidRange() {
	resp, err := suite.svc.Run(service.ReportLocationSessions, service.ReportParams{
		LocationID: uuid.New().String(),
		From:       "2025-06-30",
		To:         "2025-06-01",
	})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidTimeRange)
}

func (suite *ReportServiceTestSuite) TestRun_LocationSessions_DateOnlyUpperBoundInclusive() {
	locationID := uuid.New()
	suite.mockRepo.EXPECT().
		LocationSessions(locationID, gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ uuid.UUID, from, to time.Time) ([]repository.SessionScheduleRow, error) {
			// the whole last day is covered
			suite.Equal(time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), from)
			suite.True(to.After(time.Date(2025, 6, 30, 23, 59, 59, 0, time.UTC)))
			return []repository.SessionScheduleRow{}, nil
		})

	_, err := suite.svc.Run(service.ReportLocationSessions, service.ReportParams{
		LocationID: locationID.String(),
		From:       "2025-06-01",
		To:         "2025-06-30",
	})

	suite.NoError(err)
}

func (suite *ReportServiceTestSuite) TestRun_GameSessionActivity_DefaultThreshold() {
	suite.mockRepo.EXPECT().
		GameSessionActivity(gomock.Any(), gomock.Any(), 4).
		Return([]repository.GameSessionActivityRow{}, nil)

	_, err := suite.svc.Run(service.ReportGameSessionActivity, service.ReportParams{
		From: "2025-01-01",
		To:   "2025-12-31",
	})

	suite.NoError(err)
}

func (suite *ReportServiceTestSuite) TestRun_GameSessionActivity_InvalidMinGames() {
	zero := 0
	resp, err := suite.svc.Run(service.ReportGameSessionActivity, service.ReportParams{
		From:     "2025-01-01",
		To:       "2025-12-31",
		MinGames: &zero,
	})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidReportParams)
}

func (suite *ReportServiceTestSuite) TestRun_SinglePosition_DefaultsToSetter() {
	suite.mockRepo.EXPECT().
		SinglePositionSpecialists(models.PositionSetter).
		Return([]repository.MemberReportRow{}, nil)

	_, err := suite.svc.Run(service.ReportSinglePositionPlayers, service.ReportParams{})

	suite.NoError(err)
}

func (suite *ReportServiceTestSuite) TestRun_SinglePosition_InvalidPosition() {
	resp, err := suite.svc.Run(service.ReportSinglePositionPlayers, service.ReportParams{
		Position: "Goalkeeper",
	})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrInvalidReportParams)
}

func (suite *ReportServiceTestSuite) TestRun_NeverAssigned_AgesComputed() {
	birthdate := time.Now().AddDate(-20, 0, -1)
	suite.mockRepo.EXPECT().NeverAssignedMembers().Return([]repository.MemberReportRow{
		{MemberID: uuid.New(), MembershipNumber: 100001, Birthdate: birthdate},
	}, nil)

	resp, err := suite.svc.Run(service.ReportNeverAssignedMembers, service.ReportParams{})

	suite.NoError(err)
	rows, ok := resp.Rows.([]service.MemberAgeRow)
	suite.True(ok)
	suite.Len(rows, 1)
	suite.Equal(20, rows[0].Age)
}

func (suite *ReportServiceTestSuite) TestRun_InactiveMembers() {
	suite.mockRepo.EXPECT().InactiveMembers(gomock.Any()).
		Return([]repository.InactiveMemberRow{}, nil)

	resp, err := suite.svc.Run(service.ReportInactiveMembers, service.ReportParams{})

	suite.NoError(err)
	suite.NotNil(resp)
}

func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
