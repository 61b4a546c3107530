package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/scan_payroll_app/internal/apperrors"
	"github.com/SscSPs/scan_payroll_app/internal/core/domain"
	portssvc "github.com/SscSPs/scan_payroll_app/internal/core/ports/services"
	"github.com/SscSPs/scan_payroll_app/internal/core/services"
	"github.com/SscSPs/scan_payroll_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	ctx         context.Context
	now         time.Time
	paymentRepo *MockPaymentRepository
	staffRepo   *MockStaffRepository
	service     portssvc.PaymentSvcFacade
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.ctx = context.Background()
	suite.now = time.Date(2024, 4, 5, 10, 0, 0, 0, time.UTC)
	suite.paymentRepo = new(MockPaymentRepository)
	suite.staffRepo = new(MockStaffRepository)
	suite.service = services.NewPaymentService(suite.paymentRepo, suite.staffRepo,
		services.WithPaymentClock(func() time.Time { return suite.now }))
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DefaultsFromStaff() {
	staff := &domain.Staff{StaffID: "op-1", BankDetails: domain.BankDetails{AccountNo: "123456789012", IFSCCode: "SBIN0001234"}}
	suite.staffRepo.On("FindStaffByID", suite.ctx, "op-1").Return(staff, nil).Once()
	suite.paymentRepo.On("SavePayment", suite.ctx, mock.AnythingOfType("domain.Payment")).Return(nil).Once()

	payment, err := suite.service.RecordPayment(suite.ctx, actorWithRole("admin-1", domain.RoleAdmin), dto.RecordPaymentRequest{
		StaffID: "op-1",
		Amount:  decimal.NewFromInt(1500),
	})

	suite.Require().NoError(err)
	suite.NotEmpty(payment.PaymentID)
	suite.Equal(domain.PaymentModeBankTransfer, payment.PaymentMode)
	suite.Equal(domain.PaymentProcessed, payment.Status)
	suite.Equal(suite.now, payment.PaymentDate)
	suite.Equal("123456789012", payment.AccountDetails.AccountNo)
	suite.Equal("SBIN0001234", payment.AccountDetails.IFSCCode)
	suite.Equal("admin-1", payment.CreatedBy)
	suite.paymentRepo.AssertExpectations(suite.T())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_Rejections() {
	admin := actorWithRole("admin-1", domain.RoleAdmin)

	_, err := suite.service.RecordPayment(suite.ctx, actorWithRole("fm-1", domain.RoleFinanceManager), dto.RecordPaymentRequest{StaffID: "op-1", Amount: decimal.NewFromInt(1)})
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.RecordPayment(suite.ctx, admin, dto.RecordPaymentRequest{StaffID: "op-1", Amount: decimal.Zero})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecordPayment(suite.ctx, admin, dto.RecordPaymentRequest{StaffID: "op-1", Amount: decimal.NewFromInt(-5)})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.staffRepo.On("FindStaffByID", suite.ctx, "ghost").Return(nil, apperrors.ErrNotFound).Once()
	_, err = suite.service.RecordPayment(suite.ctx, admin, dto.RecordPaymentRequest{StaffID: "ghost", Amount: decimal.NewFromInt(5)})
	suite.ErrorIs(err, apperrors.ErrNotFound)

	suite.paymentRepo.AssertNotCalled(suite.T(), "SavePayment", mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestListPaymentsForStaff_Access() {
	payments := []domain.Payment{{PaymentID: "p1", StaffID: "op-1", Amount: decimal.NewFromInt(10)}}
	suite.staffRepo.On("FindStaffByID", suite.ctx, "op-1").Return(&domain.Staff{StaffID: "op-1"}, nil)
	suite.paymentRepo.On("ListPaymentsByStaff", suite.ctx, "op-1").Return(payments, nil)

	got, err := suite.service.ListPaymentsForStaff(suite.ctx, actorWithRole("op-1", domain.RoleStaff), "op-1")
	suite.Require().NoError(err)
	suite.Len(got, 1)

	_, err = suite.service.ListPaymentsForStaff(suite.ctx, actorWithRole("op-2", domain.RoleStaff), "op-1")
	suite.ErrorIs(err, apperrors.ErrForbidden)

	_, err = suite.service.ListPaymentsForStaff(suite.ctx, actorWithRole("fm-1", domain.RoleFinanceManager), "op-1")
	suite.NoError(err)
}

func (suite *PaymentServiceTestSuite) TestListPayments_RequiresCapability() {
	_, err := suite.service.ListPayments(suite.ctx, actorWithRole("sup-1", domain.RoleSupervisor))
	suite.ErrorIs(err, apperrors.ErrForbidden)

	suite.paymentRepo.On("ListPayments", suite.ctx).Return([]domain.Payment{}, nil).Once()
	_, err = suite.service.ListPayments(suite.ctx, actorWithRole("admin-1", domain.RoleAdmin))
	suite.NoError(err)
}
