package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"club-registry-backend/internal/api/handlers"
	apperrors "club-registry-backend/internal/errors"
	"club-registry-backend/internal/mocks"
	"club-registry-backend/internal/service"
	"club-registry-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HobbyHandlerTestSuite defines the test suite for HobbyHandler
type HobbyHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockHobbyServiceInterface
	http        *testutils.HTTPTestSuite
}

func (suite *HobbyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockHobbyServiceInterface(suite.ctrl)
	handler := handlers.NewHobbyHandler(suite.mockService)

	suite.http = testutils.SetupHTTPTest()
	suite.http.Router.POST("/hobbies", handler.CreateHobby)
	suite.http.Router.GET("/hobbies", handler.GetAllHobbies)
	suite.http.Router.DELETE("/hobbies/:id", handler.DeleteHobby)
}

func (suite *HobbyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HobbyHandlerTestSuite) TestCreateHobby() {
	req := service.CreateHobbyRequest{Name: "Chess"}
	expected := &service.HobbyResponse{ID: uuid.New(), Name: "Chess"}

	suite.mockService.EXPECT().Create(&req).Return(expected, nil)

	recorder := suite.http.MakeRequest(http.MethodPost, "/hobbies", req)

	var got service.HobbyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusCreated, &got)
	suite.Equal(expected.ID, got.ID)
	suite.Equal("Chess", got.Name)
}

func (suite *HobbyHandlerTestSuite) TestCreateHobbyDuplicateName() {
	req := service.CreateHobbyRequest{Name: "Chess"}

	suite.mockService.EXPECT().Create(&req).Return(nil, apperrors.ErrHobbyExists)

	recorder := suite.http.MakeRequest(http.MethodPost, "/hobbies", req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusConflict, "already exists")
}

func (suite *HobbyHandlerTestSuite) TestCreateHobbyInvalidBody() {
	recorder := suite.http.MakeRequest(http.MethodPost, "/hobbies", map[string]interface{}{
		"name": 42,
	})

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "")
}

func (suite *HobbyHandlerTestSuite) TestCreateHobbyStorageFailureKeptGeneric() {
	req := service.CreateHobbyRequest{Name: "Chess"}

	suite.mockService.EXPECT().Create(&req).
		Return(nil, errors.New("failed to create hobby: driver: bad connection"))

	recorder := suite.http.MakeRequest(http.MethodPost, "/hobbies", req)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusInternalServerError, "internal server error")
	suite.NotContains(recorder.Body.String(), "driver")
}

func (suite *HobbyHandlerTestSuite) TestGetAllHobbies() {
	expected := []service.HobbyResponse{
		{ID: uuid.New(), Name: "Chess"},
		{ID: uuid.New(), Name: "Swimming"},
	}

	suite.mockService.EXPECT().GetAll().Return(expected, nil)

	recorder := suite.http.MakeRequest(http.MethodGet, "/hobbies", nil)

	var got []service.HobbyResponse
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &got)
	suite.Len(got, 2)
	suite.Equal("Chess", got[0].Name)
	suite.Equal("Swimming", got[1].Name)
}

func (suite *HobbyHandlerTestSuite) TestDeleteHobby() {
	id := uuid.New()

	suite.mockService.EXPECT().Delete(id).Return(nil)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/hobbies/"+id.String(), nil)

	suite.Equal(http.StatusNoContent, recorder.Code)
}

func (suite *HobbyHandlerTestSuite) TestDeleteHobbyNotFound() {
	id := uuid.New()

	suite.mockService.EXPECT().Delete(id).Return(apperrors.ErrHobbyNotFound)

	recorder := suite.http.MakeRequest(http.MethodDelete, "/hobbies/"+id.String(), nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusNotFound, "hobby not found")
}

func (suite *HobbyHandlerTestSuite) TestDeleteHobbyInvalidID() {
	recorder := suite.http.MakeRequest(http.MethodDelete, "/hobbies/not-a-uuid", nil)

	testutils.AssertErrorResponse(suite.T(), recorder, http.StatusBadRequest, "invalid id")
}

func TestHobbyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(HobbyHandlerTestSuite))
}
