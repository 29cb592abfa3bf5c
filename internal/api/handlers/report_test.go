package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"club-registry-backend/internal/api/handlers"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ReportHandlerTestSuite defines the test suite for ReportHandler
type ReportHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockReportServiceInterface
	handler     *handlers.ReportHandler
	router      *gin.Engine
}

func (suite *ReportHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockReportServiceInterface(suite.ctrl)
	suite.handler = handlers.NewReportHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.GET("/reports/:name", suite.handler.RunReport)
}

func (suite *ReportHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportHandlerTestSuite) TestRunReport_Success() {
	resp := &service.ReportResponse{
		Name:        service.ReportLocationSummary,
		GeneratedAt: "2025-06-15T10:00:00Z",
		Rows:        []interface{}{},
	}
	suite.mockService.EXPECT().
		Run(service.ReportLocationSummary, gomock.Any()).
		Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/reports/location-summary", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ReportResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), service.ReportLocationSummary, got.Name)
}

func (suite *ReportHandlerTestSuite) TestRunReport_UnknownName() {
	req := httptest.NewRequest(http.MethodGet, "/reports/quarterly-earnings", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "unknown report")
}

func (suite *ReportHandlerTestSuite) TestRunReport_ParamsForwarded() {
	guardianID := uuid.NewString()
	suite.mockService.EXPECT().
		Run(service.ReportGuardianDependents, gomock.Any()).
		DoAndReturn(func(name service.ReportName, params service.ReportParams) (*service.ReportResponse, error) {
			assert.Equal(suite.T(), guardianID, params.GuardianID)
			return &service.ReportResponse{Name: name}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/reports/guardian-dependents?guardian_id="+guardianID, nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ReportHandlerTestSuite) TestRunReport_MinGamesForwarded() {
	suite.mockService.EXPECT().
		Run(service.ReportGameSessionActivity, gomock.Any()).
		DoAndReturn(func(name service.ReportName, params service.ReportParams) (*service.ReportResponse, error) {
			if assert.NotNil(suite.T(), params.MinGames) {
				assert.Equal(suite.T(), 2, *params.MinGames)
			}
			return &service.ReportResponse{Name: name}, nil
		})

	req := httptest.NewRequest(http.MethodGet,
		"/reports/game-session-activity?from=2025-01-01&to=2025-06-30&min_games=2", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *ReportHandlerTestSuite) TestRunReport_InvalidMinGames() {
	req := httptest.NewRequest(http.MethodGet,
		"/reports/game-session-activity?min_games=lots", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid min_games")
}

func (suite *ReportHandlerTestSuite) TestRunReport_MissingRequiredParam() {
	suite.mockService.EXPECT().
		Run(service.ReportGuardianDependents, gomock.Any()).
		Return(nil, apperrors.ErrInvalidReportParams)

	req := httptest.NewRequest(http.MethodGet, "/reports/guardian-dependents", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ReportHandlerTestSuite) TestRunReport_InvalidTimeRange() {
	suite.mockService.EXPECT().
		Run(service.ReportLocationSessions, gomock.Any()).
		Return(nil, apperrors.ErrInvalidTimeRange)

	req := httptest.NewRequest(http.MethodGet,
		"/reports/location-sessions?location_id="+uuid.NewString()+"&from=2025-06-30&to=2025-06-01", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid time range")
}

func TestReportHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ReportHandlerTestSuite))
}
