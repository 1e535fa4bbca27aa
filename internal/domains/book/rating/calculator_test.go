package rating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.August, 29, 12, 0, 0, 0, time.UTC)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalculateAt(t *testing.T) {
	tests := []struct {
		name      string
		published time.Time
		followers int
		want      float64
	}{
		{"published today, very popular author", date(2026, time.August, 29), 1500, 10.0},
		{"ten years old, middling author", date(2016, time.August, 29), 75, 4.9},
		{"thirty years old, unknown author", date(1996, time.August, 29), 10, 2.3},
		{"five years old sits on the first-branch boundary", date(2021, time.August, 29), 1500, 0.6*7.0 + 0.4*10.0},
		{"six years old moves to the middle branch", date(2020, time.August, 29), 1500, 0.6*6.7 + 0.4*10.0},
		{"fifteen years old bottoms the middle branch", date(2011, time.August, 29), 1500, 0.6*4.0 + 0.4*10.0},
		{"ancient book floors recency at one", date(1900, time.January, 1), 1500, 0.6*1.0 + 0.4*10.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateAt(tt.published, tt.followers, now)
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func TestFutureDateScoresAboveTen(t *testing.T) {
	// Negative elapsed years ride the first branch with no upper clamp.
	got := CalculateAt(date(2030, time.January, 1), 1500, now)
	assert.Greater(t, got, 10.0)
	assert.InDelta(t, 0.6*(10-(-3)*0.6)+0.4*10.0, got, 1e-9)
}

func TestPopularityThresholdsAreStrict(t *testing.T) {
	published := date(2026, time.August, 29) // recency fixed at 10.0

	tests := []struct {
		followers int
		want      float64
	}{
		{1001, 10.0},
		{1000, 8.0},
		{501, 8.0},
		{500, 6.0},
		{101, 6.0},
		{100, 4.0},
		{51, 4.0},
		{50, 2.0},
		{0, 2.0},
	}

	for _, tt := range tests {
		got := CalculateAt(published, tt.followers, now)
		assert.InDelta(t, 0.6*10.0+0.4*tt.want, got, 1e-9, "followers=%d", tt.followers)
	}
}

func TestWholeYearsBetween(t *testing.T) {
	tests := []struct {
		name string
		from time.Time
		to   time.Time
		want int
	}{
		{"same day", date(2026, time.August, 29), date(2026, time.August, 29), 0},
		{"one day short of a year", date(2025, time.August, 30), date(2026, time.August, 29), 0},
		{"exactly one year", date(2025, time.August, 29), date(2026, time.August, 29), 1},
		{"partial extra year truncates", date(2016, time.December, 1), date(2026, time.August, 29), 9},
		{"future date is negative", date(2030, time.January, 1), date(2026, time.August, 29), -3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, wholeYearsBetween(tt.from, tt.to))
		})
	}
}
