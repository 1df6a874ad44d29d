package linear

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeTrend(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		history []float64
		want    string
	}{
		{"flat", []float64{10, 10, 10, 10, 10, 10}, "stable"},
		{"rising", []float64{1, 1, 1, 10, 10, 10}, "improving"},
		{"falling", []float64{10, 10, 10, 1, 1, 1}, "declining"},
		{"too short", []float64{5, 5}, "insufficient data"},
		{"empty", nil, "insufficient data"},
		{"three points no prior window", []float64{4, 5, 6}, "stable"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, AnalyzeTrend(tt.history))
		})
	}
}

func TestCalculateVelocity(t *testing.T) {
	t.Parallel()
	v := CalculateVelocity([]float64{4, 8, 12, 16})
	require.NotNil(t, v)
	assert.Equal(t, 10, *v)

	assert.Nil(t, CalculateVelocity([]float64{5}))
	assert.Nil(t, CalculateVelocity(nil))

	// Longer series only considers the last 4 points.
	v = CalculateVelocity([]float64{100, 100, 4, 8, 12, 16})
	require.NotNil(t, v)
	assert.Equal(t, 10, *v)

	// Shorter series averages what little there is.
	v = CalculateVelocity([]float64{3, 5})
	require.NotNil(t, v)
	assert.Equal(t, 4, *v)
}

func TestAnalyzeBurndown_OnTrack(t *testing.T) {
	t.Parallel()
	start := time.Now().AddDate(0, 0, -10)
	end := time.Now()
	got := AnalyzeBurndown([]float64{0, 0, 0, 100}, []float64{0, 0, 0, 100}, start, end)
	assert.Equal(t, "on track", got)
}

func TestAnalyzeBurndown_BehindSchedule(t *testing.T) {
	t.Parallel()
	start := time.Now().AddDate(0, 0, -10)
	end := time.Now()
	got := AnalyzeBurndown([]float64{0, 0, 0, 100}, []float64{0, 0, 0, 10}, start, end)
	assert.Equal(t, "behind schedule", got)
}

func TestAnalyzeBurndown_AheadOfSchedule(t *testing.T) {
	t.Parallel()
	// Two days into a ten-day cycle with everything done.
	start := time.Now().AddDate(0, 0, -2)
	end := time.Now().AddDate(0, 0, 8)
	got := AnalyzeBurndown([]float64{100, 100, 100}, []float64{0, 50, 100}, start, end)
	assert.Equal(t, "ahead of schedule", got)
}

func TestAnalyzeBurndown_NoSchedule(t *testing.T) {
	t.Parallel()
	got := AnalyzeBurndown([]float64{100}, []float64{25}, time.Time{}, time.Time{})
	assert.Equal(t, "25% complete", got)
}

func TestAnalyzeBurndown_InsufficientData(t *testing.T) {
	t.Parallel()
	now := time.Now()
	assert.Equal(t, "insufficient data", AnalyzeBurndown(nil, nil, now, now))
	assert.Equal(t, "insufficient data", AnalyzeBurndown([]float64{10}, nil, now, now))
	assert.Equal(t, "insufficient data", AnalyzeBurndown(nil, []float64{10}, now, now))
	// Zero total scope would divide by zero.
	assert.Equal(t, "insufficient data", AnalyzeBurndown([]float64{0}, []float64{0}, time.Time{}, time.Time{}))
}

func TestAnalyzeBurndown_ZeroLengthSchedule(t *testing.T) {
	t.Parallel()
	// start == end would make expected progress divide by zero.
	now := time.Now()
	got := AnalyzeBurndown([]float64{100}, []float64{50}, now, now)
	assert.Equal(t, "insufficient data", got)
}
