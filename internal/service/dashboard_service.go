package service

import (
	"context"
	"fmt"

	"seacoff/internal/model"
	"seacoff/internal/repository"

	"github.com/rs/zerolog"
)

// dashboardService implements DashboardService.
type dashboardService struct {
	dashRepo repository.DashboardRepository
	logger   zerolog.Logger
}

// NewDashboardService creates a new dashboard service.
func NewDashboardService(dashRepo repository.DashboardRepository, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		dashRepo: dashRepo,
		logger:   logger.With().Str("service", "dashboard").Logger(),
	}
}

func clampLimit(limit, fallback, max int) int {
	if limit <= 0 {
		return fallback
	}
	if limit > max {
		return max
	}
	return limit
}

func validateRange(r model.DateRange) error {
	if r.Start != nil && r.End != nil && r.Start.After(*r.End) {
		return fmt.Errorf("start date must not be after end date")
	}
	return nil
}

// SalesPerDay returns daily sales aggregates.
func (s *dashboardService) SalesPerDay(ctx context.Context, r model.DateRange, limit int) ([]model.DailySales, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	result, err := s.dashRepo.SalesPerDay(ctx, r, clampLimit(limit, 30, 365))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get sales per day")
		return nil, fmt.Errorf("failed to get sales per day: %w", err)
	}
	return result, nil
}

// BestSellers returns products ranked by quantity sold.
func (s *dashboardService) BestSellers(ctx context.Context, r model.DateRange, limit int) ([]model.BestSeller, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	result, err := s.dashRepo.BestSellers(ctx, r, clampLimit(limit, 10, 100))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get best sellers")
		return nil, fmt.Errorf("failed to get best sellers: %w", err)
	}
	return result, nil
}

// Overview returns a trailing-period summary.
func (s *dashboardService) Overview(ctx context.Context, periodDays int) (*model.Overview, error) {
	if periodDays <= 0 {
		periodDays = 30
	}
	if periodDays > 365 {
		periodDays = 365
	}

	overview, err := s.dashRepo.Overview(ctx, periodDays)
	if err != nil {
		s.logger.Error().Err(err).Int("period_days", periodDays).Msg("failed to get overview")
		return nil, fmt.Errorf("failed to get overview: %w", err)
	}
	return overview, nil
}

// RevenueTrend returns revenue bucketed by day or month depending on period
// (week, month or year).
func (s *dashboardService) RevenueTrend(ctx context.Context, period string) ([]model.RevenuePoint, error) {
	var bucketFormat string
	var days int

	switch period {
	case "week":
		bucketFormat, days = "YYYY-MM-DD", 7
	case "month":
		bucketFormat, days = "YYYY-MM-DD", 30
	case "year":
		bucketFormat, days = "YYYY-MM", 365
	default:
		return nil, fmt.Errorf("period must be week, month or year")
	}

	result, err := s.dashRepo.RevenueTrend(ctx, bucketFormat, days)
	if err != nil {
		s.logger.Error().Err(err).Str("period", period).Msg("failed to get revenue trend")
		return nil, fmt.Errorf("failed to get revenue trend: %w", err)
	}
	return result, nil
}

// TopCustomers returns customers ranked by total spend.
func (s *dashboardService) TopCustomers(ctx context.Context, r model.DateRange, limit int) ([]model.TopCustomer, error) {
	if err := validateRange(r); err != nil {
		return nil, err
	}

	result, err := s.dashRepo.TopCustomers(ctx, r, clampLimit(limit, 10, 100))
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to get top customers")
		return nil, fmt.Errorf("failed to get top customers: %w", err)
	}
	return result, nil
}
