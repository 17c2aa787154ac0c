package mongo

import (
	"context"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/aismap/position-api/internal/core/domain"
)

const testDatabase = "ais_map_test"

var (
	setupOnce          sync.Once
	testMongoClient    *mongo.Client
	testMongoDB        *mongo.Database
	testMongoContainer testcontainers.Container
	skipMongoTests     bool
)

func TestMain(m *testing.M) {
	code := m.Run()

	ctx := context.Background()
	if testMongoClient != nil {
		_ = testMongoClient.Disconnect(ctx)
	}
	if testMongoContainer != nil {
		_ = testMongoContainer.Terminate(ctx)
	}
	os.Exit(code)
}

// setupMongoDB starts a throwaway mongod on first use. Tests skip when Docker
// is not reachable.
func setupMongoDB() {
	ctx := context.Background()

	var containerErr error
	func() {
		defer func() {
			if r := recover(); r != nil {
				containerErr = fmt.Errorf("docker not available: %v", r)
			}
		}()
		req := testcontainers.ContainerRequest{
			Image:        "mongo:7",
			ExposedPorts: []string{"27017/tcp"},
			WaitingFor:   wait.ForLog("Waiting for connections"),
			Tmpfs:        map[string]string{"/data/db": "rw"},
		}
		testMongoContainer, containerErr = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			ContainerRequest: req,
			Started:          true,
		})
	}()
	if containerErr != nil {
		fmt.Printf("Docker not available, MongoDB tests will be skipped: %v\n", containerErr)
		skipMongoTests = true
		return
	}

	host, err := testMongoContainer.Host(ctx)
	if err != nil {
		fmt.Printf("Failed to get container host: %v\n", err)
		skipMongoTests = true
		return
	}
	port, err := testMongoContainer.MappedPort(ctx, "27017")
	if err != nil {
		fmt.Printf("Failed to get container port: %v\n", err)
		skipMongoTests = true
		return
	}

	testMongoClient, testMongoDB, err = Connect(ctx, Config{
		URI:      fmt.Sprintf("mongodb://%s:%s", host, port.Port()),
		Database: testDatabase,
		Timeout:  30 * time.Second,
	})
	if err != nil {
		fmt.Printf("Failed to connect to MongoDB: %v\n", err)
		skipMongoTests = true
	}
}

// seededRepository returns a repository over a fresh collection named after
// the test, holding docs.
func seededRepository(t *testing.T, docs ...bson.M) *ReportRepository {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping MongoDB integration test in short mode")
	}
	setupOnce.Do(setupMongoDB)
	if skipMongoTests {
		t.Skip("Docker not available, skipping MongoDB test")
	}

	ctx := context.Background()
	col := testMongoDB.Collection(t.Name())
	if err := col.Drop(ctx); err != nil {
		t.Fatalf("failed to drop collection: %v", err)
	}
	t.Cleanup(func() { _ = col.Drop(context.Background()) })

	if len(docs) > 0 {
		batch := make([]any, 0, len(docs))
		for _, d := range docs {
			batch = append(batch, d)
		}
		if _, err := col.InsertMany(ctx, batch); err != nil {
			t.Fatalf("failed to seed reports: %v", err)
		}
	}
	return NewReportRepository(testMongoDB, t.Name(), 10*time.Second)
}

// storedReport is reportDoc without a fixed _id, so the server assigns one.
func storedReport(mmsi int32, ts time.Time) bson.M {
	doc := reportDoc(mmsi, ts)
	delete(doc, "_id")
	return doc
}

var (
	t1 = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	t2 = t1.Add(10 * time.Minute)
	t3 = t1.Add(5 * time.Minute)
)

func TestMongo_LatestPerVessel_LaterTimestampWins(t *testing.T) {
	repo := seededRepository(t,
		storedReport(100, t1),
		storedReport(100, t2),
		storedReport(200, t3),
	)

	got, err := repo.LatestPerVessel(context.Background(), domain.FleetSnapshotLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 reports, got %d", len(got))
	}

	want := map[uint32]time.Time{100: t2, 200: t3}
	for _, rep := range got {
		ts, ok := want[rep.MetaData.MMSI]
		if !ok {
			t.Fatalf("unexpected vessel %d", rep.MetaData.MMSI)
		}
		if !rep.MetaData.TimeUTC.Equal(ts) {
			t.Errorf("vessel %d: expected %s, got %s", rep.MetaData.MMSI, ts, rep.MetaData.TimeUTC)
		}
		delete(want, rep.MetaData.MMSI)
	}

	// Newest first: vessel 100 at T2 precedes vessel 200 at T3.
	if got[0].MetaData.MMSI != 100 {
		t.Errorf("expected vessel 100 first, got %d", got[0].MetaData.MMSI)
	}
}

func TestMongo_LatestPerVessel_CapsAtTenUniqueVessels(t *testing.T) {
	docs := []bson.M{
		storedReport(100, t1),
		storedReport(100, t2),
		storedReport(200, t3),
	}
	// 12 more vessels, two reports each, all heard after T2.
	for i := int32(0); i < 12; i++ {
		base := t2.Add(time.Duration(i+1) * time.Hour)
		docs = append(docs,
			storedReport(300+i, base),
			storedReport(300+i, base.Add(-30*time.Minute)),
		)
	}
	repo := seededRepository(t, docs...)

	got, err := repo.LatestPerVessel(context.Background(), domain.FleetSnapshotLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != domain.FleetSnapshotLimit {
		t.Fatalf("expected %d reports, got %d", domain.FleetSnapshotLimit, len(got))
	}

	seen := make(map[uint32]bool, len(got))
	for i, rep := range got {
		mmsi := rep.MetaData.MMSI
		if seen[mmsi] {
			t.Fatalf("vessel %d returned twice", mmsi)
		}
		seen[mmsi] = true

		if mmsi >= 300 {
			newest := t2.Add(time.Duration(mmsi-300+1) * time.Hour)
			if !rep.MetaData.TimeUTC.Equal(newest) {
				t.Errorf("vessel %d: expected %s, got %s", mmsi, newest, rep.MetaData.TimeUTC)
			}
		}
		if i > 0 && rep.MetaData.TimeUTC.After(got[i-1].MetaData.TimeUTC) {
			t.Errorf("result not newest first at index %d", i)
		}
	}

	// The ten most recently heard vessels are 302..311.
	for mmsi := uint32(302); mmsi <= 311; mmsi++ {
		if !seen[mmsi] {
			t.Errorf("expected vessel %d in snapshot", mmsi)
		}
	}
}

func TestMongo_LatestPerVessel_Empty(t *testing.T) {
	repo := seededRepository(t)

	got, err := repo.LatestPerVessel(context.Background(), domain.FleetSnapshotLimit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("expected no reports, got %d", len(got))
	}
}

func TestMongo_FindByMMSI(t *testing.T) {
	repo := seededRepository(t, storedReport(257000000, t1))
	ctx := context.Background()

	rep, err := repo.FindByMMSI(ctx, 257000000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if rep.MetaData.MMSI != 257000000 || !rep.MetaData.TimeUTC.Equal(t1) {
		t.Errorf("unexpected metadata: %+v", rep.MetaData)
	}
	if rep.MetaData.Extra["ShipName"] != "NORDIC STAR" {
		t.Errorf("metadata passthrough lost: %v", rep.MetaData.Extra)
	}
	if rep.Fields["MessageType"] != "PositionReport" {
		t.Errorf("document passthrough lost: %v", rep.Fields)
	}

	if _, err := repo.FindByMMSI(ctx, 123456789); err != domain.ErrReportNotFound {
		t.Errorf("expected ErrReportNotFound, got %v", err)
	}
}
