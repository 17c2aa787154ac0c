package ports

import (
	"context"

	"github.com/aismap/position-api/internal/core/domain"
)

// ReportService defines the use cases exposed over HTTP.
type ReportService interface {
	// GetReport returns nil without an error when the vessel has no report.
	GetReport(ctx context.Context, mmsi uint32) (*domain.PositionReport, error)
	// LatestReports returns the fleet snapshot, capped at domain.FleetSnapshotLimit.
	LatestReports(ctx context.Context) ([]domain.PositionReport, error)
}
