package linear

import (
	"fmt"
	"math"
	"time"
)

const insufficientData = "insufficient data"

// AnalyzeBurndown classifies cycle progress against its schedule. With no
// schedule it reports a plain completion percentage. Progress more than
// 10 percentage points off the calendar-time expectation is reported as
// ahead of or behind schedule. A zero-length schedule (start == end) is
// treated as insufficient data to avoid a division by zero.
func AnalyzeBurndown(scope, completed []float64, startsAt, endsAt time.Time) string {
	if len(scope) == 0 || len(completed) == 0 {
		return insufficientData
	}

	totalScope := scope[len(scope)-1]
	if totalScope == 0 {
		return insufficientData
	}
	percentComplete := completed[len(completed)-1] / totalScope

	if startsAt.IsZero() || endsAt.IsZero() {
		return fmt.Sprintf("%d%% complete", int(math.Round(percentComplete*100)))
	}

	totalDays := endsAt.Sub(startsAt).Hours() / 24
	if totalDays == 0 {
		return insufficientData
	}
	elapsedDays := time.Since(startsAt).Hours() / 24
	expectedProgress := elapsedDays / totalDays

	switch {
	case percentComplete > expectedProgress+0.1:
		return "ahead of schedule"
	case percentComplete < expectedProgress-0.1:
		return "behind schedule"
	default:
		return "on track"
	}
}

// AnalyzeTrend compares the mean of the last 3 points against the mean of
// the 3 points before that window. A swing of more than 10% in either
// direction is reported; fewer than 3 points is insufficient data.
func AnalyzeTrend(history []float64) string {
	if len(history) < 3 {
		return insufficientData
	}

	recent := history[len(history)-3:]
	older := history[max(len(history)-6, 0) : len(history)-3]

	recentAvg := mean(recent)
	olderAvg := recentAvg
	if len(older) > 0 {
		olderAvg = mean(older)
	}

	switch {
	case recentAvg > olderAvg*1.1:
		return "improving"
	case recentAvg < olderAvg*0.9:
		return "declining"
	default:
		return "stable"
	}
}

// CalculateVelocity returns the rounded mean of the last 4 points, or
// fewer if the series is shorter. Fewer than 2 points yields nil.
func CalculateVelocity(history []float64) *int {
	if len(history) < 2 {
		return nil
	}
	recent := history[max(len(history)-4, 0):]
	v := int(math.Round(mean(recent)))
	return &v
}

func mean(xs []float64) float64 {
	var sum float64
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}
