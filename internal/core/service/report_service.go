package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/aismap/position-api/internal/api/metrics"
	"github.com/aismap/position-api/internal/core/domain"
	"github.com/aismap/position-api/internal/core/ports"
)

type ReportService struct {
	repo   ports.ReportRepository
	logger zerolog.Logger
}

func NewReportService(repo ports.ReportRepository, logger zerolog.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// GetReport looks up the report of a single vessel. A vessel without a stored
// report yields (nil, nil); only storage failures are returned as errors.
func (s *ReportService) GetReport(ctx context.Context, mmsi uint32) (*domain.PositionReport, error) {
	s.logger.Info().Uint32("mmsi", mmsi).Msg("fetching ship")

	start := time.Now()
	report, err := s.repo.FindByMMSI(ctx, mmsi)
	metrics.ReportQueryDuration.WithLabelValues(metrics.QueryByVessel).Observe(time.Since(start).Seconds())

	switch {
	case errors.Is(err, domain.ErrReportNotFound):
		metrics.ReportQueriesTotal.WithLabelValues(metrics.QueryByVessel, metrics.ResultNotFound).Inc()
		s.logger.Debug().Uint32("mmsi", mmsi).Msg("no report for ship")
		return nil, nil
	case err != nil:
		metrics.ReportQueriesTotal.WithLabelValues(metrics.QueryByVessel, metrics.ResultError).Inc()
		s.logger.Error().Err(err).Uint32("mmsi", mmsi).Msg("failed to fetch ship")
		return nil, fmt.Errorf("get report %d: %w", mmsi, err)
	}

	metrics.ReportQueriesTotal.WithLabelValues(metrics.QueryByVessel, metrics.ResultFound).Inc()
	return report, nil
}

// LatestReports returns the most recent report of each vessel, newest first,
// capped at domain.FleetSnapshotLimit.
func (s *ReportService) LatestReports(ctx context.Context) ([]domain.PositionReport, error) {
	s.logger.Info().Msg("fetching unique ships")

	start := time.Now()
	reports, err := s.repo.LatestPerVessel(ctx, domain.FleetSnapshotLimit)
	metrics.ReportQueryDuration.WithLabelValues(metrics.QueryFleet).Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.ReportQueriesTotal.WithLabelValues(metrics.QueryFleet, metrics.ResultError).Inc()
		s.logger.Error().Err(err).Msg("failed to fetch unique ships")
		return nil, fmt.Errorf("latest reports: %w", err)
	}

	if len(reports) > domain.FleetSnapshotLimit {
		reports = reports[:domain.FleetSnapshotLimit]
	}
	if reports == nil {
		reports = []domain.PositionReport{}
	}

	metrics.ReportQueriesTotal.WithLabelValues(metrics.QueryFleet, metrics.ResultFound).Inc()
	metrics.FleetSnapshotSize.Set(float64(len(reports)))
	s.logger.Debug().Int("count", len(reports)).Msg("unique ships fetched")
	return reports, nil
}
