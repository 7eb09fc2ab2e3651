package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tripmapper/backend/internal/domain"
)

func TestGetStats(t *testing.T) {
	h, m := newTestServer(t)
	m.stats.window = func(_ context.Context, userID string, w domain.Window, now time.Time) (domain.AggregateStats, error) {
		assert.Equal(t, "u1", userID)
		assert.Equal(t, domain.WindowPastWeek, w)
		assert.Equal(t, testNow, now)
		return domain.AggregateStats{
			TotalTrips:        3,
			TotalDistance:     12.5,
			ModeBreakdown:     map[domain.Mode]int{"vehicle": 2, "walking": 1},
			PurposeBreakdown:  map[domain.Purpose]int{"work": 3},
			TotalParticipants: 5,
			TopMode:           "vehicle",
			ActiveUserCount:   1,
		}, nil
	}

	rec := doRequest(h, http.MethodGet, "/stats?window=past-week&user_id=u1", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got domain.AggregateStats
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, 3, got.TotalTrips)
	assert.Equal(t, "vehicle", got.TopMode)
}

func TestGetStats_DefaultWindowIsAllTime(t *testing.T) {
	h, m := newTestServer(t)
	m.stats.window = func(_ context.Context, _ string, w domain.Window, _ time.Time) (domain.AggregateStats, error) {
		assert.Equal(t, domain.WindowAllTime, w)
		return domain.AggregateStats{TopMode: domain.TopModeNone}, nil
	}

	rec := doRequest(h, http.MethodGet, "/stats", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"topMode":"N/A"`)
}

func TestGetStats_UnknownWindow(t *testing.T) {
	h, _ := newTestServer(t)

	rec := doRequest(h, http.MethodGet, "/stats?window=fortnight", "")

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "validation_error")
}
