package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
)

// --- Mock BookingRepository ---

type MockBookingRepository struct {
	mock.Mock
}

var _ portsrepo.BookingRepositoryFacade = (*MockBookingRepository)(nil)

func (m *MockBookingRepository) SaveBookingWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error {
	args := m.Called(ctx, booking, entry)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBookingValidationWithAudit(ctx context.Context, booking domain.Booking, entry domain.AuditLog) error {
	args := m.Called(ctx, booking, entry)
	return args.Error(0)
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountDuplicateBookings(ctx context.Context, customerEmail, packageID string, travelDate time.Time, excludeBookingID string) (int, error) {
	args := m.Called(ctx, customerEmail, packageID, travelDate, excludeBookingID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) CountBookingsByPackage(ctx context.Context, packageID string) (int, error) {
	args := m.Called(ctx, packageID)
	return args.Int(0), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, filter portsrepo.ListBookingsFilter, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	args := m.Called(ctx, filter, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Booking), returnedNextToken, args.Error(2)
}

// --- Mock PackageRepository ---

type MockPackageRepository struct {
	mock.Mock
}

var _ portsrepo.PackageRepositoryFacade = (*MockPackageRepository)(nil)

func (m *MockPackageRepository) SavePackage(ctx context.Context, pkg domain.TourPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) FindPackageByID(ctx context.Context, packageID string) (*domain.TourPackage, error) {
	args := m.Called(ctx, packageID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TourPackage), args.Error(1)
}

func (m *MockPackageRepository) UpdatePackage(ctx context.Context, pkg domain.TourPackage) error {
	args := m.Called(ctx, pkg)
	return args.Error(0)
}

func (m *MockPackageRepository) DeletePackage(ctx context.Context, packageID string) error {
	args := m.Called(ctx, packageID)
	return args.Error(0)
}

func (m *MockPackageRepository) ListPackages(ctx context.Context, activeOnly bool, limit int, nextToken *string) ([]domain.TourPackage, *string, error) {
	args := m.Called(ctx, activeOnly, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.TourPackage), returnedNextToken, args.Error(2)
}

// --- Mock PaymentRepository ---

type MockPaymentRepository struct {
	mock.Mock
}

var _ portsrepo.PaymentRepositoryFacade = (*MockPaymentRepository)(nil)

func (m *MockPaymentRepository) SavePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error {
	args := m.Called(ctx, payment, entry)
	return args.Error(0)
}

func (m *MockPaymentRepository) UpdatePaymentWithAudit(ctx context.Context, payment domain.Payment, entry domain.AuditLog) error {
	args := m.Called(ctx, payment, entry)
	return args.Error(0)
}

func (m *MockPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.Payment, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) FindPaymentByBookingID(ctx context.Context, bookingID string) (*domain.Payment, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, status *domain.PaymentStatus, limit int, nextToken *string) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, status, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.Payment), returnedNextToken, args.Error(2)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
}

var _ portsrepo.UserRepositoryFacade = (*MockUserRepository)(nil)

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) MarkUserDeleted(ctx context.Context, userID string, deletedBy string) error {
	args := m.Called(ctx, userID, deletedBy)
	return args.Error(0)
}

func (m *MockUserRepository) ListUsers(ctx context.Context, limit int, nextToken *string) ([]domain.User, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.User), returnedNextToken, args.Error(2)
}

// --- Mock UserService (actor lookup for authorization checks) ---

type MockUserService struct {
	mock.Mock
}

var _ portssvc.UserSvcFacade = (*MockUserService)(nil)

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, actorUserID string) (*domain.User, error) {
	args := m.Called(ctx, userID, req, actorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) DeleteUser(ctx context.Context, userID string, actorUserID string) error {
	args := m.Called(ctx, userID, actorUserID)
	return args.Error(0)
}

func (m *MockUserService) ListUsers(ctx context.Context, actorUserID string, limit int, nextToken *string) ([]domain.User, *string, error) {
	args := m.Called(ctx, actorUserID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var returnedNextToken *string
	if args.Get(1) != nil {
		tokenVal := args.Get(1).(string)
		returnedNextToken = &tokenVal
	}
	return args.Get(0).([]domain.User), returnedNextToken, args.Error(2)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// --- Mock AuditService ---

type MockAuditService struct {
	mock.Mock
}

var _ portssvc.AuditSvcFacade = (*MockAuditService)(nil)

func (m *MockAuditService) Record(ctx context.Context, modelName, objectID string, action domain.AuditAction, userID *string, changes map[string]any, notes string, ipAddress *string) error {
	args := m.Called(ctx, modelName, objectID, action, userID, changes, notes, ipAddress)
	return args.Error(0)
}

func (m *MockAuditService) ListByEntity(ctx context.Context, actorUserID string, modelName, objectID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	args := m.Called(ctx, actorUserID, modelName, objectID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), nil, args.Error(2)
}

func (m *MockAuditService) ListByUser(ctx context.Context, actorUserID string, userID string, limit int, nextToken *string) ([]domain.AuditLog, *string, error) {
	args := m.Called(ctx, actorUserID, userID, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).([]domain.AuditLog), nil, args.Error(2)
}
