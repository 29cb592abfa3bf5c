package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"club-registry-backend/internal/api/handlers"
	"club-registry-backend/internal/database/models"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// LocationHandlerTestSuite defines the test suite for LocationHandler
type LocationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockLocationServiceInterface
	handler     *handlers.LocationHandler
	router      *gin.Engine
}

func (suite *LocationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockLocationServiceInterface(suite.ctrl)
	suite.handler = handlers.NewLocationHandler(suite.mockService)

	suite.router = gin.New()
	suite.router.POST("/locations", suite.handler.CreateLocation)
	suite.router.GET("/locations", suite.handler.GetAllLocations)
	suite.router.GET("/locations/:id", suite.handler.GetLocation)
	suite.router.DELETE("/locations/:id", suite.handler.DeleteLocation)
}

func (suite *LocationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *LocationHandlerTestSuite) TestCreateLocation_Success() {
	resp := &service.LocationResponse{
		ID:   uuid.New(),
		Name: "West Branch",
		Type: models.LocationTypeBranch,
		City: "Laval",
	}
	suite.mockService.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{"name":"West Branch","type":"branch","city":"Laval"}`
	req := httptest.NewRequest(http.MethodPost, "/locations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.LocationResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), "West Branch", got.Name)
	assert.Equal(suite.T(), models.LocationTypeBranch, got.Type)
}

func (suite *LocationHandlerTestSuite) TestCreateLocation_DuplicateName() {
	suite.mockService.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrLocationExists)

	body := `{"name":"Head Office","type":"head"}`
	req := httptest.NewRequest(http.MethodPost, "/locations", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "already exists")
}

func (suite *LocationHandlerTestSuite) TestGetAllLocations_DefaultPagination() {
	resp := &service.LocationListResponse{
		Locations: []service.LocationResponse{
			{ID: uuid.New(), Name: "Head Office", Type: models.LocationTypeHead},
		},
		Total:    1,
		Page:     1,
		PageSize: 20,
	}
	suite.mockService.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.LocationListResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(1), got.Total)
	assert.Len(suite.T(), got.Locations, 1)
}

func (suite *LocationHandlerTestSuite) TestGetAllLocations_BoundsNormalization() {
	// page=0 normalizes to 1; page_size=500 normalizes to 20
	resp := &service.LocationListResponse{
		Locations: []service.LocationResponse{},
		Total:     0,
		Page:      1,
		PageSize:  20,
	}
	suite.mockService.EXPECT().GetAll(1, 20).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/locations?page=0&page_size=500", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)
}

func (suite *LocationHandlerTestSuite) TestGetLocation_NotFound() {
	id := uuid.New()
	suite.mockService.EXPECT().GetByID(id).Return(nil, apperrors.ErrLocationNotFound)

	req := httptest.NewRequest(http.MethodGet, "/locations/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "location not found")
}

func (suite *LocationHandlerTestSuite) TestDeleteLocation_BlockedByDependents() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).
		Return(apperrors.NewReferentialConflictError("location", "3 club members"))

	req := httptest.NewRequest(http.MethodDelete, "/locations/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "3 club members")
}

func (suite *LocationHandlerTestSuite) TestDeleteLocation_Success() {
	id := uuid.New()
	suite.mockService.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/locations/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func TestLocationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LocationHandlerTestSuite))
}
