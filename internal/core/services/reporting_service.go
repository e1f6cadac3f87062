package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/lebinlenin2004/TravelSoftware/internal/apperrors"
	"github.com/lebinlenin2004/TravelSoftware/internal/core/domain"
	portsrepo "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/repositories"
	portssvc "github.com/lebinlenin2004/TravelSoftware/internal/core/ports/services"
	"github.com/lebinlenin2004/TravelSoftware/internal/dto"
	"github.com/lebinlenin2004/TravelSoftware/internal/middleware"
)

const (
	dashboardWindowDays = 30
	topPackagesLimit    = 5
	agentRankingLimit   = 10
)

type reportingService struct {
	reportingRepo portsrepo.ReportingRepositoryFacade
	userSvc       portssvc.UserSvcFacade
}

// NewReportingService creates a new ReportingService.
func NewReportingService(reportingRepo portsrepo.ReportingRepositoryFacade, userSvc portssvc.UserSvcFacade) portssvc.ReportingSvcFacade {
	return &reportingService{reportingRepo: reportingRepo, userSvc: userSvc}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) requireActor(ctx context.Context, actorUserID string) (*domain.User, error) {
	actor, err := s.userSvc.GetUserByID(ctx, actorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		return nil, fmt.Errorf("failed to load acting user: %w", err)
	}
	return actor, nil
}

// Dashboard implements portssvc.ReportingSvcFacade. Sales agents get their
// own numbers only; managers and up get the full picture.
func (s *reportingService) Dashboard(ctx context.Context, actorUserID string) (*dto.DashboardResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}

	to := time.Now().UTC()
	from := to.AddDate(0, 0, -dashboardWindowDays)

	var createdBy *string
	if actor.Role == domain.RoleSalesAgent && !actor.IsAdmin() {
		createdBy = &actorUserID
	} else if !actor.CanViewAnalytics() {
		return nil, fmt.Errorf("%w: role %s cannot view the dashboard", apperrors.ErrForbidden, actor.Role)
	}

	summary, err := s.reportingRepo.GetSalesSummary(ctx, from, to, createdBy)
	if err != nil {
		logger.Error("Failed to load sales summary", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load sales summary: %w", err)
	}

	resp := &dto.DashboardResponse{
		TotalBookings: summary.TotalBookings,
		TotalRevenue:  summary.TotalRevenue,
	}

	topPackages, err := s.reportingRepo.TopPackages(ctx, topPackagesLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load top packages: %w", err)
	}
	resp.TopPackages = topPackages

	if actor.CanValidateBooking() {
		pending, err := s.reportingRepo.CountPendingValidations(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to count pending validations: %w", err)
		}
		resp.PendingValidations = &pending
	}

	if actor.CanViewAnalytics() {
		agents, err := s.reportingRepo.AgentPerformance(ctx, from, to, agentRankingLimit)
		if err != nil {
			return nil, fmt.Errorf("failed to load agent performance: %w", err)
		}
		resp.AgentPerformance = agents
	}

	return resp, nil
}

// SalesReport implements portssvc.ReportingSvcFacade.
func (s *reportingService) SalesReport(ctx context.Context, actorUserID string, from, to time.Time) (*dto.SalesReportResponse, error) {
	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanViewAnalytics() {
		return nil, fmt.Errorf("%w: role %s cannot view sales reports", apperrors.ErrForbidden, actor.Role)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window end precedes start", apperrors.ErrValidation)
	}

	summary, err := s.reportingRepo.GetSalesSummary(ctx, from, to, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load sales summary: %w", err)
	}
	agents, err := s.reportingRepo.AgentPerformance(ctx, from, to, agentRankingLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to load agent performance: %w", err)
	}

	return &dto.SalesReportResponse{
		Window:           dto.ReportWindow{From: from, To: to},
		Summary:          *summary,
		AgentPerformance: agents,
	}, nil
}

// FinancialReport implements portssvc.ReportingSvcFacade.
func (s *reportingService) FinancialReport(ctx context.Context, actorUserID string, from, to time.Time) (*dto.FinancialReportResponse, error) {
	actor, err := s.requireActor(ctx, actorUserID)
	if err != nil {
		return nil, err
	}
	if !actor.CanViewFinancialReports() {
		return nil, fmt.Errorf("%w: role %s cannot view financial reports", apperrors.ErrForbidden, actor.Role)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: report window end precedes start", apperrors.ErrValidation)
	}

	summary, err := s.reportingRepo.GetPaymentSummary(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment summary: %w", err)
	}

	return &dto.FinancialReportResponse{
		Window:  dto.ReportWindow{From: from, To: to},
		Summary: *summary,
	}, nil
}
