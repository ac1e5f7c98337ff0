package helpers

import (
	"testing"
	"time"

	"gopkg.in/go-playground/assert.v1"
)

func TestBuildDailySeriesEmptyStore(t *testing.T) {
	end := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	series := BuildDailySeries(map[string]int{}, end, 7)

	assert.Equal(t, len(series), 7)
	assert.Equal(t, series[0].Date, "2026-03-01")
	assert.Equal(t, series[6].Date, "2026-03-07")
	for _, day := range series {
		assert.Equal(t, day.Count, 0)
	}
}

func TestBuildDailySeriesPlacesCounts(t *testing.T) {
	end := time.Date(2026, 3, 7, 12, 0, 0, 0, time.UTC)
	counts := map[string]int{
		"2026-03-01": 3,
		"2026-03-05": 1,
		"2026-02-20": 9, // outside the window, dropped
	}
	series := BuildDailySeries(counts, end, 7)

	assert.Equal(t, len(series), 7)
	assert.Equal(t, series[0].Count, 3)
	assert.Equal(t, series[4].Count, 1)
	assert.Equal(t, series[6].Count, 0)

	total := 0
	for _, day := range series {
		total += day.Count
	}
	assert.Equal(t, total, 4)
}
