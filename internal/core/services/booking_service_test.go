package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

type BookingServiceTestSuite struct {
	suite.Suite
	mockBookingRepo *MockBookingRepository
	mockPackageRepo *MockPackageRepository
	mockUserSvc     *MockUserService
	service         portssvc.BookingSvcFacade

	agent   domain.User
	manager domain.User
	auditor domain.User
	pkg     domain.TourPackage
}

func (suite *BookingServiceTestSuite) SetupTest() {
	suite.mockBookingRepo = new(MockBookingRepository)
	suite.mockPackageRepo = new(MockPackageRepository)
	suite.mockUserSvc = new(MockUserService)
	suite.service = services.NewBookingService(suite.mockBookingRepo, suite.mockPackageRepo, suite.mockUserSvc)

	suite.agent = domain.User{UserID: uuid.NewString(), Role: domain.RoleSalesAgent}
	suite.manager = domain.User{UserID: uuid.NewString(), Role: domain.RoleManager}
	suite.auditor = domain.User{UserID: uuid.NewString(), Role: domain.RoleAuditor}

	suite.pkg = domain.TourPackage{
		PackageID:             uuid.NewString(),
		Name:                  "Kerala Backwaters",
		Destination:           "Alleppey",
		DurationDays:          5,
		BasePrice:             decimal.NewFromInt(20000),
		TaxPercentage:         decimal.NewFromInt(18),
		CommissionPercentage:  decimal.NewFromInt(10),
		MaxDiscountPercentage: decimal.NewFromInt(15),
		IsActive:              true,
	}
}

func (suite *BookingServiceTestSuite) validCreateRequest() dto.CreateBookingRequest {
	return dto.CreateBookingRequest{
		PackageID:          suite.pkg.PackageID,
		CustomerName:       "Asha Menon",
		CustomerEmail:      "asha.menon@example.com",
		CustomerPhone:      "98765-43210",
		TravelDate:         time.Now().UTC().AddDate(0, 1, 0).Format("2006-01-02"),
		NumberOfTravelers:  2,
		PackagePrice:       decimal.NewFromInt(20000),
		DiscountPercentage: decimal.NewFromInt(10),
	}
}

func (suite *BookingServiceTestSuite) TestCreateBooking_Success() {
	ctx := context.Background()
	req := suite.validCreateRequest()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPackageRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(&suite.pkg, nil).Once()
	suite.mockBookingRepo.On("CountDuplicateBookings", ctx, "asha.menon@example.com", suite.pkg.PackageID, mock.AnythingOfType("time.Time"), mock.AnythingOfType("string")).Return(0, nil).Once()

	var savedBooking domain.Booking
	var savedEntry domain.AuditLog
	suite.mockBookingRepo.On("SaveBookingWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedBooking = args.Get(1).(domain.Booking)
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	booking, warnings, err := suite.service.CreateBooking(ctx, req, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(booking)
	suite.Empty(warnings)
	suite.Equal(domain.BookingPending, booking.Status)
	suite.False(booking.IsFlagged())

	suite.True(booking.DiscountAmount.Equal(decimal.NewFromInt(2000)))
	suite.True(booking.Subtotal.Equal(decimal.NewFromInt(18000)))
	suite.True(booking.TaxAmount.Equal(decimal.NewFromInt(3240)))
	suite.True(booking.TotalAmount.Equal(decimal.NewFromInt(21240)))
	suite.True(booking.CommissionAmount.Equal(decimal.NewFromInt(1800)))

	suite.Regexp(`^BK\d{8}[0-9A-F]{6}$`, savedBooking.BookingNumber)
	suite.Equal("9876543210", savedBooking.CustomerPhone)
	suite.Equal("Booking", savedEntry.ModelName)
	suite.Equal(domain.AuditCreate, savedEntry.Action)
	suite.Equal(savedBooking.BookingID, savedEntry.ObjectID)
	suite.Equal(savedBooking.BookingNumber, savedEntry.Changes["booking_number"])

	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func (suite *BookingServiceTestSuite) TestCreateBooking_ForbiddenRole() {
	ctx := context.Background()
	suite.mockUserSvc.On("GetUserByID", ctx, suite.auditor.UserID).Return(&suite.auditor, nil).Once()

	_, _, err := suite.service.CreateBooking(ctx, suite.validCreateRequest(), suite.auditor.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "SaveBookingWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_PastTravelDate() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.TravelDate = time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()

	_, _, err := suite.service.CreateBooking(ctx, req, suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrTravelDateInPast)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_InactivePackage() {
	ctx := context.Background()
	inactive := suite.pkg
	inactive.IsActive = false

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPackageRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(&inactive, nil).Once()

	_, _, err := suite.service.CreateBooking(ctx, suite.validCreateRequest(), suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrPackageInactive)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_SoftFlagsDoNotBlock() {
	ctx := context.Background()
	req := suite.validCreateRequest()
	req.PackagePrice = decimal.NewFromInt(15000)    // does not match the live price
	req.DiscountPercentage = decimal.NewFromInt(20) // above the 15% ceiling

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPackageRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(&suite.pkg, nil).Once()
	suite.mockBookingRepo.On("CountDuplicateBookings", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(1, nil).Once()
	suite.mockBookingRepo.On("SaveBookingWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	booking, warnings, err := suite.service.CreateBooking(ctx, req, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.True(booking.PriceMismatchFlag)
	suite.True(booking.ExcessDiscountFlag)
	suite.True(booking.DuplicateBookingFlag)
	suite.Len(warnings, 3)
	suite.Equal(domain.BookingPending, booking.Status)
}

func (suite *BookingServiceTestSuite) TestCreateBooking_RetriesOnBookingNumberCollision() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockPackageRepo.On("FindPackageByID", ctx, suite.pkg.PackageID).Return(&suite.pkg, nil).Once()
	suite.mockBookingRepo.On("CountDuplicateBookings", ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(0, nil).Once()
	suite.mockBookingRepo.On("SaveBookingWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).Return(apperrors.ErrDuplicate).Once()
	suite.mockBookingRepo.On("SaveBookingWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	booking, _, err := suite.service.CreateBooking(ctx, suite.validCreateRequest(), suite.agent.UserID)

	suite.Require().NoError(err)
	suite.NotNil(booking)
	suite.mockBookingRepo.AssertNumberOfCalls(suite.T(), "SaveBookingWithAudit", 2)
}

func (suite *BookingServiceTestSuite) pendingBooking(createdBy string) *domain.Booking {
	return &domain.Booking{
		BookingID:     uuid.NewString(),
		BookingNumber: "BK20250101ABCDEF",
		PackageID:     suite.pkg.PackageID,
		CustomerEmail: "asha.menon@example.com",
		Status:        domain.BookingPending,
		TotalAmount:   decimal.NewFromInt(21240),
		AuditFields:   domain.AuditFields{CreatedBy: createdBy},
	}
}

func (suite *BookingServiceTestSuite) TestApproveBooking_Success() {
	ctx := context.Background()
	booking := suite.pendingBooking(suite.agent.UserID)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.manager.UserID).Return(&suite.manager, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	var savedBooking domain.Booking
	var savedEntry domain.AuditLog
	suite.mockBookingRepo.On("UpdateBookingValidationWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedBooking = args.Get(1).(domain.Booking)
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	updated, err := suite.service.ApproveBooking(ctx, booking.BookingID, suite.manager.UserID, "looks fine")

	suite.Require().NoError(err)
	suite.Equal(domain.BookingApproved, updated.Status)
	suite.Require().NotNil(updated.ValidatedBy)
	suite.Equal(suite.manager.UserID, *updated.ValidatedBy)
	suite.NotNil(updated.ValidatedAt)

	suite.Equal(domain.BookingApproved, savedBooking.Status)
	suite.Equal(domain.AuditApprove, savedEntry.Action)
	suite.Equal("approved", savedEntry.Changes["status"])
}

func (suite *BookingServiceTestSuite) TestRejectBooking_RequiresNotes() {
	ctx := context.Background()

	_, err := suite.service.RejectBooking(ctx, uuid.NewString(), suite.manager.UserID, "   ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.ErrorIs(err, services.ErrRejectionNotesNeeded)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "UpdateBookingValidationWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestRejectBooking_Success() {
	ctx := context.Background()
	booking := suite.pendingBooking(suite.agent.UserID)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.manager.UserID).Return(&suite.manager, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()
	suite.mockBookingRepo.On("UpdateBookingValidationWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).Return(nil).Once()

	updated, err := suite.service.RejectBooking(ctx, booking.BookingID, suite.manager.UserID, "price mismatch unresolved")

	suite.Require().NoError(err)
	suite.Equal(domain.BookingRejected, updated.Status)
	suite.Equal("price mismatch unresolved", updated.ValidationNotes)
}

func (suite *BookingServiceTestSuite) TestApproveBooking_AlreadyValidated() {
	ctx := context.Background()
	booking := suite.pendingBooking(suite.agent.UserID)
	booking.Status = domain.BookingApproved

	suite.mockUserSvc.On("GetUserByID", ctx, suite.manager.UserID).Return(&suite.manager, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	_, err := suite.service.ApproveBooking(ctx, booking.BookingID, suite.manager.UserID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.ErrorIs(err, services.ErrAlreadyValidated)
	suite.mockBookingRepo.AssertNotCalled(suite.T(), "UpdateBookingValidationWithAudit", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *BookingServiceTestSuite) TestApproveBooking_ForbiddenForSalesAgent() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()

	_, err := suite.service.ApproveBooking(ctx, uuid.NewString(), suite.agent.UserID, "")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BookingServiceTestSuite) TestCancelBooking_Success() {
	ctx := context.Background()
	booking := suite.pendingBooking(suite.agent.UserID)

	suite.mockUserSvc.On("GetUserByID", ctx, suite.manager.UserID).Return(&suite.manager, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, booking.BookingID).Return(booking, nil).Once()

	var savedEntry domain.AuditLog
	suite.mockBookingRepo.On("UpdateBookingValidationWithAudit", ctx, mock.AnythingOfType("domain.Booking"), mock.AnythingOfType("domain.AuditLog")).
		Run(func(args mock.Arguments) {
			savedEntry = args.Get(2).(domain.AuditLog)
		}).Return(nil).Once()

	updated, err := suite.service.CancelBooking(ctx, booking.BookingID, suite.manager.UserID, "customer withdrew")

	suite.Require().NoError(err)
	suite.Equal(domain.BookingCancelled, updated.Status)
	suite.Equal(domain.AuditCancel, savedEntry.Action)
}

func (suite *BookingServiceTestSuite) TestGetBookingByID_SalesAgentScoping() {
	ctx := context.Background()
	otherAgentBooking := suite.pendingBooking(uuid.NewString())

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("FindBookingByID", ctx, otherAgentBooking.BookingID).Return(otherAgentBooking, nil).Once()

	_, err := suite.service.GetBookingByID(ctx, otherAgentBooking.BookingID, suite.agent.UserID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *BookingServiceTestSuite) TestListBookings_SalesAgentFilterApplied() {
	ctx := context.Background()

	suite.mockUserSvc.On("GetUserByID", ctx, suite.agent.UserID).Return(&suite.agent, nil).Once()
	suite.mockBookingRepo.On("ListBookings", ctx, mock.MatchedBy(func(f portsrepo.ListBookingsFilter) bool {
		return f.CreatedBy != nil && *f.CreatedBy == suite.agent.UserID
	}), 20, (*string)(nil)).Return([]domain.Booking{}, nil, nil).Once()

	_, _, err := suite.service.ListBookings(ctx, dto.ListBookingsParams{}, suite.agent.UserID)

	suite.Require().NoError(err)
	suite.mockBookingRepo.AssertExpectations(suite.T())
}

func TestBookingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(BookingServiceTestSuite))
}

func TestListPendingValidations_RequiresValidatorRole(t *testing.T) {
	mockBookingRepo := new(MockBookingRepository)
	mockPackageRepo := new(MockPackageRepository)
	mockUserSvc := new(MockUserService)
	svc := services.NewBookingService(mockBookingRepo, mockPackageRepo, mockUserSvc)

	agent := domain.User{UserID: uuid.NewString(), Role: domain.RoleSalesAgent}
	mockUserSvc.On("GetUserByID", mock.Anything, agent.UserID).Return(&agent, nil).Once()

	_, _, err := svc.ListPendingValidations(context.Background(), agent.UserID, false, 20, nil)

	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
