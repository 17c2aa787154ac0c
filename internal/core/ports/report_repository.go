package ports

import (
	"context"

	"github.com/aismap/position-api/internal/core/domain"
)

// ReportRepository defines read operations over stored position reports.
type ReportRepository interface {
	// FindByMMSI returns the report stored for the vessel, or
	// domain.ErrReportNotFound when there is none.
	FindByMMSI(ctx context.Context, mmsi uint32) (*domain.PositionReport, error)
	// LatestPerVessel returns the most recent report of up to limit vessels,
	// newest first. A single undecodable document fails the whole call.
	LatestPerVessel(ctx context.Context, limit int) ([]domain.PositionReport, error)
}
