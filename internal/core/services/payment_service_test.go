package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

type PaymentServiceTestSuite struct {
	suite.Suite
	mockPaymentRepo *MockPaymentRepository
	mockBookingRepo *MockBookingRepository
	mockUserSvc     *MockUserService
	service         portssvc.PaymentSvcFacade

	agent   domain.User
	auditor domain.User
	booking domain.Booking
}

func (suite *PaymentServiceTestSuite) SetupTest() {
	suite.mockPaymentRepo = new(MockPaymentRepository)
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewPaymentService(suite.mockPaymentRepo, suite.mockBookingRepo, suite.mockUserSvc)

	suite.agent = domain.User{UserID: uuid.NewString(), Role: domain.RoleSalesAgent}
	suite.auditor = domain.User{UserID: uuid.NewString(), Role: domain.RoleAuditor}
	suite.booking = domain.Booking{
		BookingID:     uuid.NewString(),
		BookingNumber: "BK20250101ABCDEF",
		Status:        domain.BookingApproved,
		TotalAmount:   decimal.NewFromInt(21240),
	}
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_PartialStatusDerived() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Method:     domain.MethodUPI,
		AmountPaid: decimal.NewFromInt(10000),
	}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, suite.booking.BookingID).Return(&suite.booking, nil).Once()

	var savedPayment domain.Payment
	var savedEntry domain.AuditLog
	suite.mockPaymentRepo.On("SavePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedPayment = args.Get(1).(domain.Payment)
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.booking.BookingID, req, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPartial, payment.Status)
	suite.True(payment.TotalAmount.Equal(decimal.NewFromInt(21240)))
	suite.True(payment.Balance().Equal(decimal.NewFromInt(11240)))

	suite.Equal(domain.PaymentPartial, savedPayment.Status)
	suite.Equal("Payment", savedEntry.ModelName)
	suite.Equal(domain.AuditCreate, savedEntry.Action)
	suite.Equal(savedPayment.PaymentID, savedEntry.ObjectID)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_FullAmountIsPaid() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{
		Method:     domain.MethodBankTransfer,
		AmountPaid: decimal.NewFromInt(21240),
	}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, suite.booking.BookingID).Return(&suite.booking, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.booking.BookingID, req, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, payment.Status)
	suite.True(payment.Balance().IsZero())
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ZeroAmountIsPending() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{Method: domain.MethodCash}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, suite.booking.BookingID).Return(&suite.booking, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	payment, err := suite.service.RecordPayment(ctx, suite.booking.BookingID, req, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPending, payment.Status)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_DuplicateBecomesConflict() {
	ctx := context.Background()
	req := dto.CreatePaymentRequest{Method: domain.MethodCard, AmountPaid: decimal.NewFromInt(500)}

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, suite.booking.BookingID).Return(&suite.booking, nil).Once()
	suite.mockPaymentRepo.On("SavePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).Return(apperrors.ErrDuplicate).Once()

	_, err := suite.service.RecordPayment(ctx, suite.booking.BookingID, req, suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrPaymentExists)
}

func (suite *PaymentServiceTestSuite) TestRecordPayment_ForbiddenRole() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.auditor.UserID).Return(&suite.auditor, nil).Once()

	_, err := suite.service.RecordPayment(ctx, suite.booking.BookingID, dto.CreatePaymentRequest{Method: domain.MethodCash}, suite.auditor.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PaymentServiceTestSuite) existingPayment(amountPaid int64) *domain.Payment {
	return &domain.Payment{
		PaymentID:   uuid.NewString(),
		BookingID:   suite.booking.BookingID,
		Status:      domain.DerivePaymentStatus(decimal.NewFromInt(amountPaid), suite.booking.TotalAmount),
		Method:      domain.MethodUPI,
		AmountPaid:  decimal.NewFromInt(amountPaid),
		TotalAmount: suite.booking.TotalAmount,
	}
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RejectsOverpayment() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)
	over := decimal.NewFromInt(25000)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	_, err := suite.service.UpdatePayment(ctx, payment.PaymentID, dto.UpdatePaymentRequest{AmountPaid: &over}, suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrOverpayment)
	suite.Contains(err.Error(), "25000.00")
	suite.Contains(err.Error(), "21240.00")
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_StatusRecomputed() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)
	full := decimal.NewFromInt(21240)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	var savedEntry domain.AuditLog
	suite.mockPaymentRepo.On("UpdatePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, payment.PaymentID, dto.UpdatePaymentRequest{AmountPaid: &full}, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentPaid, updated.Status)
	suite.Equal(domain.AuditUpdate, savedEntry.Action)
	suite.Equal("paid", savedEntry.Changes["status"])
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_NoChangesIsNoop() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	updated, err := suite.service.UpdatePayment(ctx, payment.PaymentID, dto.UpdatePaymentRequest{}, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Equal(payment.PaymentID, updated.PaymentID)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkRefunded_Success() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	var savedPayment domain.Payment
	var savedEntry domain.AuditLog
	suite.mockPaymentRepo.On("UpdatePaymentWithAudit", ctx, mock.AnythingOfType("domain.Payment"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedPayment = args.Get(1).(domain.Payment)
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	refunded, err := suite.service.MarkRefunded(ctx, payment.PaymentID, suite.agent.UserID, "customer cancelled trip")

	suite.Require().NoError(err)
	suite.Equal(domain.PaymentRefunded, refunded.Status)
	suite.Equal(domain.PaymentRefunded, savedPayment.Status)
	suite.Equal("refunded", savedEntry.Changes["status"])
	suite.Equal("customer cancelled trip", savedEntry.Notes)
}

func (suite *PaymentServiceTestSuite) TestMarkRefunded_AlreadyRefundedConflict() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)
	payment.Status = domain.PaymentRefunded

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	_, err := suite.service.MarkRefunded(ctx, payment.PaymentID, suite.agent.UserID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrAlreadyRefunded)
	suite.mockPaymentRepo.AssertNotCalled(suite.T(), "UpdatePaymentWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *PaymentServiceTestSuite) TestMarkRefunded_NothingPaid() {
	ctx := context.Background()
	payment := suite.existingPayment(0)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	_, err := suite.service.MarkRefunded(ctx, payment.PaymentID, suite.agent.UserID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrNothingToRefund)
}

func (suite *PaymentServiceTestSuite) TestUpdatePayment_RefundedIsImmutable() {
	ctx := context.Background()
	payment := suite.existingPayment(10000)
	payment.Status = domain.PaymentRefunded
	amount := decimal.NewFromInt(5000)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPaymentRepo.On("FindPaymentByID", ctx, payment.PaymentID).Return(payment, nil).Once()

	_, err := suite.service.UpdatePayment(ctx, payment.PaymentID, dto.UpdatePaymentRequest{AmountPaid: &amount}, suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrAlreadyRefunded)
}

func TestPaymentServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PaymentServiceTestSuite))
}
