package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
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

// ClubMemberHandlerTestSuite defines the test suite for ClubMemberHandler
type ClubMemberHandlerTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMemberSvc   *mocks.MockClubMemberServiceInterface
	mockPaymentSvc  *mocks.MockPaymentServiceInterface
	mockHobbySvc    *mocks.MockHobbyServiceInterface
	handler         *handlers.ClubMemberHandler
	router          *gin.Engine
}

func (suite *ClubMemberHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockMemberSvc = mocks.NewMockClubMemberServiceInterface(suite.ctrl)
	suite.mockPaymentSvc = mocks.NewMockPaymentServiceInterface(suite.ctrl)
	suite.mockHobbySvc = mocks.NewMockHobbyServiceInterface(suite.ctrl)
	suite.handler = handlers.NewClubMemberHandler(suite.mockMemberSvc, suite.mockPaymentSvc, suite.mockHobbySvc)

	suite.router = gin.New()
	suite.router.POST("/club-members", suite.handler.CreateClubMember)
	suite.router.GET("/club-members/:id", suite.handler.GetClubMember)
	suite.router.GET("/club-members/by-number/:number", suite.handler.GetClubMemberByNumber)
	suite.router.PATCH("/club-members/:id/status", suite.handler.SetClubMemberStatus)
	suite.router.DELETE("/club-members/:id", suite.handler.DeleteClubMember)
	suite.router.GET("/club-members/:id/payments/summary", suite.handler.GetPaymentSummary)
	suite.router.PUT("/club-members/:id/hobbies/:hobbyId", suite.handler.AttachHobby)
}

func (suite *ClubMemberHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClubMemberHandlerTestSuite) TestCreateClubMember_Success() {
	locationID := uuid.New()
	resp := &service.ClubMemberResponse{
		ID:               uuid.New(),
		MembershipNumber: 100001,
		FirstName:        "Jamie",
		LastName:         "Member",
		Active:           true,
		AnnualFee:        200,
		LocationID:       locationID,
	}
	suite.mockMemberSvc.EXPECT().Create(gomock.Any()).Return(resp, nil)

	body := `{"first_name":"Jamie","last_name":"Member","birthdate":"1995-06-01T00:00:00Z",
		"ssn":"SSN-1","medicare_number":"MED-1","email":"jamie@club.test",
		"location_id":"` + locationID.String() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/club-members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusCreated, w.Code)

	var got service.ClubMemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(100001), got.MembershipNumber)
	assert.True(suite.T(), got.Active)
}

func (suite *ClubMemberHandlerTestSuite) TestCreateClubMember_InvalidBody() {
	req := httptest.NewRequest(http.MethodPost, "/club-members", strings.NewReader("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ClubMemberHandlerTestSuite) TestCreateClubMember_Underage() {
	suite.mockMemberSvc.EXPECT().Create(gomock.Any()).
		Return(nil, apperrors.NewValidationError("birthdate", "club member must be at least 11 years old"))

	body := `{"first_name":"Kid","last_name":"Member","birthdate":"2020-06-01T00:00:00Z",
		"ssn":"SSN-2","medicare_number":"MED-2","email":"kid@club.test",
		"location_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/club-members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "at least 11 years old")
}

func (suite *ClubMemberHandlerTestSuite) TestCreateClubMember_DuplicateIdentity() {
	suite.mockMemberSvc.EXPECT().Create(gomock.Any()).Return(nil, apperrors.ErrClubMemberExists)

	body := `{"first_name":"Jamie","last_name":"Member","birthdate":"1995-06-01T00:00:00Z",
		"ssn":"SSN-1","medicare_number":"MED-1","email":"jamie@club.test",
		"location_id":"` + uuid.NewString() + `"}`
	req := httptest.NewRequest(http.MethodPost, "/club-members", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func (suite *ClubMemberHandlerTestSuite) TestGetClubMember_NotFound() {
	id := uuid.New()
	suite.mockMemberSvc.EXPECT().GetByID(id).Return(nil, apperrors.ErrClubMemberNotFound)

	req := httptest.NewRequest(http.MethodGet, "/club-members/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNotFound, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "club member not found")
}

func (suite *ClubMemberHandlerTestSuite) TestGetClubMember_InvalidID() {
	req := httptest.NewRequest(http.MethodGet, "/club-members/not-a-uuid", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ClubMemberHandlerTestSuite) TestGetClubMemberByNumber_Success() {
	resp := &service.ClubMemberResponse{ID: uuid.New(), MembershipNumber: 100042}
	suite.mockMemberSvc.EXPECT().GetByMembershipNumber(int64(100042)).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet, "/club-members/by-number/100042", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ClubMemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), int64(100042), got.MembershipNumber)
}

func (suite *ClubMemberHandlerTestSuite) TestGetClubMemberByNumber_NotANumber() {
	req := httptest.NewRequest(http.MethodGet, "/club-members/by-number/abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid membership number")
}

func (suite *ClubMemberHandlerTestSuite) TestSetClubMemberStatus_Success() {
	id := uuid.New()
	resp := &service.ClubMemberResponse{ID: id, Active: false}
	suite.mockMemberSvc.EXPECT().SetActiveStatus(id, false).Return(resp, nil)

	req := httptest.NewRequest(http.MethodPatch, "/club-members/"+id.String()+"/status",
		strings.NewReader(`{"active":false}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.ClubMemberResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.False(suite.T(), got.Active)
}

func (suite *ClubMemberHandlerTestSuite) TestSetClubMemberStatus_MissingFlag() {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodPatch, "/club-members/"+id.String()+"/status",
		strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
}

func (suite *ClubMemberHandlerTestSuite) TestDeleteClubMember_Success() {
	id := uuid.New()
	suite.mockMemberSvc.EXPECT().Delete(id).Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/club-members/"+id.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusNoContent, w.Code)
}

func (suite *ClubMemberHandlerTestSuite) TestGetPaymentSummary_WithYear() {
	id := uuid.New()
	resp := &service.PaymentSummaryResponse{
		MemberID:       id,
		MembershipYear: 2024,
		AnnualFee:      100,
		TotalPaid:      150,
		Balance:        0,
		Donation:       50,
	}
	suite.mockPaymentSvc.EXPECT().GetSummary(id, 2024).Return(resp, nil)

	req := httptest.NewRequest(http.MethodGet,
		"/club-members/"+id.String()+"/payments/summary?year=2024", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusOK, w.Code)

	var got service.PaymentSummaryResponse
	assert.NoError(suite.T(), json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(suite.T(), 2024, got.MembershipYear)
	assert.Equal(suite.T(), float64(50), got.Donation)
}

func (suite *ClubMemberHandlerTestSuite) TestGetPaymentSummary_InvalidYear() {
	id := uuid.New()

	req := httptest.NewRequest(http.MethodGet,
		"/club-members/"+id.String()+"/payments/summary?year=abc", nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusBadRequest, w.Code)
	assert.Contains(suite.T(), w.Body.String(), "invalid year")
}

func (suite *ClubMemberHandlerTestSuite) TestAttachHobby_AlreadyAttached() {
	memberID := uuid.New()
	hobbyID := uuid.New()
	suite.mockHobbySvc.EXPECT().Attach(memberID, hobbyID).Return(apperrors.ErrMemberHobbyExists)

	req := httptest.NewRequest(http.MethodPut,
		"/club-members/"+memberID.String()+"/hobbies/"+hobbyID.String(), nil)
	w := httptest.NewRecorder()

	suite.router.ServeHTTP(w, req)

	assert.Equal(suite.T(), http.StatusConflict, w.Code)
}

func TestClubMemberHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClubMemberHandlerTestSuite))
}
