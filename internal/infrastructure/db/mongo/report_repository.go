package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aismap/position-api/internal/core/domain"
)

const (
	collectionPositionReports = "position_reports"

	fieldMMSI    = "MetaData.MMSI"
	fieldTimeUTC = "MetaData.time_utc"
)

// ReportRepository implements ports.ReportRepository using MongoDB.
type ReportRepository struct {
	col     collection
	timeout time.Duration
}

// NewReportRepository binds the repository to the named collection. An empty
// name selects the default position_reports collection.
func NewReportRepository(db *mongo.Database, name string, timeout time.Duration) *ReportRepository {
	if name == "" {
		name = collectionPositionReports
	}
	return newReportRepository(mongoCollection{coll: db.Collection(name)}, timeout)
}

func newReportRepository(col collection, timeout time.Duration) *ReportRepository {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &ReportRepository{col: col, timeout: timeout}
}

// FindByMMSI retrieves the report stored for a vessel.
func (r *ReportRepository) FindByMMSI(ctx context.Context, mmsi uint32) (*domain.PositionReport, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var rep domain.PositionReport
	err := r.col.FindOne(ctx, vesselFilter(mmsi)).Decode(&rep)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrReportNotFound
		}
		return nil, fmt.Errorf("find report: %w", err)
	}
	return &rep, nil
}

// LatestPerVessel returns the newest report of up to limit vessels.
func (r *ReportRepository) LatestPerVessel(ctx context.Context, limit int) ([]domain.PositionReport, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	cur, err := r.col.Aggregate(ctx, latestPerVesselPipeline(limit))
	if err != nil {
		return nil, fmt.Errorf("aggregate latest reports: %w", err)
	}
	defer cur.Close(ctx)

	reports := make([]domain.PositionReport, 0, limit)
	for cur.Next(ctx) {
		var rep domain.PositionReport
		if err := cur.Decode(&rep); err != nil {
			return nil, fmt.Errorf("decode position report: %w", err)
		}
		reports = append(reports, rep)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("iterate latest reports: %w", err)
	}
	return reports, nil
}

func vesselFilter(mmsi uint32) bson.M {
	return bson.M{fieldMMSI: int64(mmsi)}
}

// latestPerVesselPipeline sorts by report time, keeps the first (newest)
// document per MMSI, then re-sorts the survivors since $group does not
// preserve order.
func latestPerVesselPipeline(limit int) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$sort", Value: bson.D{{Key: fieldTimeUTC, Value: -1}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$" + fieldMMSI},
			{Key: "document", Value: bson.D{{Key: "$first", Value: "$$ROOT"}}},
		}}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$document"}}}},
		{{Key: "$sort", Value: bson.D{{Key: fieldTimeUTC, Value: -1}}}},
		{{Key: "$limit", Value: int64(limit)}},
	}
}
