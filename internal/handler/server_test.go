package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/tripmapper/backend/internal/domain"
	"github.com/tripmapper/backend/internal/handler"
	"github.com/tripmapper/backend/internal/service"
)

// Function-field mocks: each test assigns only the functions it needs, and a
// call to an unassigned function panics, which surfaces unexpected calls.

type mockTripServicer struct {
	start     func(userID, startLocation string, startCoords *domain.Coordinates, now time.Time) (service.ActiveTrip, error)
	finish    func(userID, endLocation string, endCoords *domain.Coordinates, now time.Time) (domain.Trip, error)
	save      func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getByID   func(ctx context.Context, id string) (domain.Trip, error)
	listPaged func(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error)
}

var _ handler.TripServicer = (*mockTripServicer)(nil)

func (m *mockTripServicer) Start(userID, startLocation string, startCoords *domain.Coordinates, now time.Time) (service.ActiveTrip, error) {
	return m.start(userID, startLocation, startCoords, now)
}

func (m *mockTripServicer) Finish(userID, endLocation string, endCoords *domain.Coordinates, now time.Time) (domain.Trip, error) {
	return m.finish(userID, endLocation, endCoords, now)
}

func (m *mockTripServicer) Save(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.save(ctx, trip)
}

func (m *mockTripServicer) GetByID(ctx context.Context, id string) (domain.Trip, error) {
	return m.getByID(ctx, id)
}

func (m *mockTripServicer) ListPaged(ctx context.Context, userID string, p domain.PaginationParams) ([]domain.Trip, int64, error) {
	return m.listPaged(ctx, userID, p)
}

type mockStatsServicer struct {
	window func(ctx context.Context, userID string, w domain.Window, now time.Time) (domain.AggregateStats, error)
}

var _ handler.StatsServicer = (*mockStatsServicer)(nil)

func (m *mockStatsServicer) Window(ctx context.Context, userID string, w domain.Window, now time.Time) (domain.AggregateStats, error) {
	return m.window(ctx, userID, w, now)
}

type mockExportServicer struct {
	export func(ctx context.Context, w domain.Window, now time.Time) (string, string, error)
}

var _ handler.ExportServicer = (*mockExportServicer)(nil)

func (m *mockExportServicer) Export(ctx context.Context, w domain.Window, now time.Time) (string, string, error) {
	return m.export(ctx, w, now)
}

type mockActivityServicer struct {
	feed func(ctx context.Context, now time.Time) ([]domain.ActivityEvent, error)
}

var _ handler.ActivityServicer = (*mockActivityServicer)(nil)

func (m *mockActivityServicer) Feed(ctx context.Context, now time.Time) ([]domain.ActivityEvent, error) {
	return m.feed(ctx, now)
}

type serverMocks struct {
	trips    *mockTripServicer
	stats    *mockStatsServicer
	export   *mockExportServicer
	activity *mockActivityServicer
}

var testNow = time.Date(2025, 9, 15, 12, 0, 0, 0, time.UTC)

// newTestServer wires a Server with empty mocks and a fixed clock, mounted
// on its chi router so URL params resolve like in production.
func newTestServer(t *testing.T) (http.Handler, serverMocks) {
	t.Helper()
	m := serverMocks{
		trips:    &mockTripServicer{},
		stats:    &mockStatsServicer{},
		export:   &mockExportServicer{},
		activity: &mockActivityServicer{},
	}
	srv := handler.NewServer(m.trips, m.stats, m.export, m.activity, nil)
	srv.SetClock(func() time.Time { return testNow })
	return srv.Routes(), m
}

func doRequest(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var rdr *strings.Reader
	if body == "" {
		rdr = strings.NewReader("")
	} else {
		rdr = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rdr)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}
