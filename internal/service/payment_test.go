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

// PaymentServiceTestSuite defines the test suite for PaymentService
type PaymentServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockRepo   *mocks.MockPaymentRepositoryInterface
	mockMember *mocks.MockClubMemberRepositoryInterface
	svc        *service.PaymentService
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockRepo = mocks.NewMockPaymentRepositoryInterface(suite.ctrl)
	suite.mockMember = mocks.NewMockClubMemberRepositoryInterface(suite.ctrl)
	suite.svc = service.NewPaymentService(suite.mockRepo, suite.mockMember, validator.New())
}

func (suite *PaymentServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PaymentServiceTestSuite) TestCreate_DefaultsApplied() {
	memberID := uuid.New()
	req := &service.CreatePaymentRequest{
		Amount:         50,
		PaymentDate:    time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC),
		Method:         models.PaymentMethodCash,
		MembershipYear: 2025,
	}

	suite.mockMember.EXPECT().GetByID(memberID).Return(&models.ClubMember{}, nil)
	suite.mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(p *models.Payment) error {
		suite.Equal(models.PaymentTypeMembership, p.PaymentType)
		suite.Equal(1, p.InstallmentNumber)
		return nil
	})

	resp, err := suite.svc.Create(memberID, req)

	suite.NoError(err)
	suite.Equal(models.PaymentTypeMembership, resp.PaymentType)
	suite.Equal(1, resp.InstallmentNumber)
}

func (suite *PaymentServiceTestSuite) TestCreate_MemberNotFound() {
	memberID := uuid.New()
	req := &service.CreatePaymentRequest{
		Amount:         50,
		PaymentDate:    time.Now(),
		Method:         models.PaymentMethodCredit,
		MembershipYear: 2025,
	}

	suite.mockMember.EXPECT().GetByID(memberID).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Create(memberID, req)

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrClubMemberNotFound)
}

func (suite *PaymentServiceTestSuite) TestCreate_ZeroAmountRejected() {
	req := &service.CreatePaymentRequest{
		Amount:         0,
		PaymentDate:    time.Now(),
		Method:         models.PaymentMethodCash,
		MembershipYear: 2025,
	}

	resp, err := suite.svc.Create(uuid.New(), req)

	suite.Error(err)
	suite.Nil(resp)
	suite.Contains(err.Error(), "validation failed")
}

func (suite *PaymentServiceTestSuite) TestGetSummary_MinorOverpaidShowsDonation() {
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: memberID},
		Birthdate: time.Now().AddDate(-14, 0, 0),
		Minor:     true,
	}
	payments := []models.Payment{
		{MemberID: memberID, Amount: 100, MembershipYear: 2025, InstallmentNumber: 1},
		{MemberID: memberID, Amount: 50, MembershipYear: 2025, InstallmentNumber: 2},
		// prior-year payment must not count
		{MemberID: memberID, Amount: 100, MembershipYear: 2024, InstallmentNumber: 1},
	}

	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)
	suite.mockRepo.EXPECT().GetByMember(memberID).Return(payments, nil)

	resp, err := suite.svc.GetSummary(memberID, 2025)

	suite.NoError(err)
	suite.Equal(100.0, resp.AnnualFee)
	suite.Equal(150.0, resp.TotalPaid)
	suite.Equal(0.0, resp.Balance)
	suite.Equal(50.0, resp.Donation)
	suite.Len(resp.Payments, 2)
}

func (suite *PaymentServiceTestSuite) TestGetSummary_AdultUnderpaidShowsBalance() {
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: memberID},
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
		Minor:     false,
	}
	payments := []models.Payment{
		{MemberID: memberID, Amount: 120, MembershipYear: 2025, InstallmentNumber: 1},
	}

	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)
	suite.mockRepo.EXPECT().GetByMember(memberID).Return(payments, nil)

	resp, err := suite.svc.GetSummary(memberID, 2025)

	suite.NoError(err)
	suite.Equal(200.0, resp.AnnualFee)
	suite.Equal(120.0, resp.TotalPaid)
	suite.Equal(80.0, resp.Balance)
	suite.Equal(0.0, resp.Donation)
}

func (suite *PaymentServiceTestSuite) TestGetSummary_NoPaymentsForYear() {
	memberID := uuid.New()
	member := &models.ClubMember{
		BaseModel: models.BaseModel{ID: memberID},
		Birthdate: time.Date(1990, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockMember.EXPECT().GetByID(memberID).Return(member, nil)
	suite.mockRepo.EXPECT().GetByMember(memberID).Return([]models.Payment{}, nil)

	resp, err := suite.svc.GetSummary(memberID, 2025)

	suite.NoError(err)
	suite.Equal(0.0, resp.TotalPaid)
	suite.Equal(200.0, resp.Balance)
	suite.Empty(resp.Payments)
}

func (suite *PaymentServiceTestSuite) TestUpdate_NotFound() {
	id := uuid.New()
	amount := 75.0

	suite.mockRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	resp, err := suite.svc.Update(id, &service.UpdatePaymentRequest{Amount: &amount})

	suite.Error(err)
	suite.Nil(resp)
	suite.ErrorIs(err, apperrors.ErrPaymentNotFound)
}

func (suite *PaymentServiceTestSuite) TestDelete_Success() {
	id := uuid.New()

	suite.mockRepo.EXPECT().GetByID(id).Return(&models.Payment{}, nil)
	suite.mockRepo.EXPECT().Delete(id).Return(nil)

	suite.NoError(suite.svc.Delete(id))
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
