package helpers

import "time"

type DailyCount struct {
	Date  string `json:"date" bson:"date"`
	Count int    `json:"count" bson:"count"`
}

// BuildDailySeries turns raw per-day counts into a zero-filled series over
// the trailing window ending at `end`, oldest day first. Days with no rows
// appear with a zero count so an empty store still yields a full series.
func BuildDailySeries(counts map[string]int, end time.Time, days int) []DailyCount {
	series := make([]DailyCount, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := end.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, DailyCount{Date: day, Count: counts[day]})
	}
	return series
}
