// Package rating derives a book's quality score from its publication
// recency and its author's audience reach. Pure computation, no state,
// no I/O.
package rating

import (
	"time"
)

// Weights of the two components in the blended score.
const (
	recencyWeight    = 0.6
	popularityWeight = 0.4
)

// Calculate blends recency and popularity:
//
//	0.6 * recencyScore(publicationDate) + 0.4 * popularityScore(followers)
//
// A future publication date yields negative elapsed years and a recency
// score above 10; the upper bound is intentionally unclamped.
func Calculate(publicationDate time.Time, followers int) float64 {
	return CalculateAt(publicationDate, followers, time.Now())
}

// CalculateAt is Calculate with an explicit "now", for deterministic use.
func CalculateAt(publicationDate time.Time, followers int, now time.Time) float64 {
	years := wholeYearsBetween(publicationDate, now)
	return recencyWeight*recencyScore(years) + popularityWeight*popularityScore(followers)
}

// recencyScore decays with elapsed whole years: 0.6/year for the first
// five, 0.3/year through year fifteen, then 0.1/year floored at 1.0.
func recencyScore(years int) float64 {
	switch {
	case years <= 5:
		return 10 - float64(years)*0.6
	case years <= 15:
		return 7 - float64(years-5)*0.3
	default:
		score := 4 - float64(years-15)*0.1
		if score < 1 {
			return 1
		}
		return score
	}
}

// popularityScore is a step function over follower count. Thresholds are
// strict greater-than: exactly 1000 followers lands in the 8.0 bracket.
func popularityScore(followers int) float64 {
	switch {
	case followers > 1000:
		return 10.0
	case followers > 500:
		return 8.0
	case followers > 100:
		return 6.0
	case followers > 50:
		return 4.0
	default:
		return 2.0
	}
}

// wholeYearsBetween counts complete calendar years from from to to,
// truncating toward zero. Reversed arguments give the negated count, so a
// future from yields a negative result.
func wholeYearsBetween(from, to time.Time) int {
	if to.Before(from) {
		return -wholeYearsBetween(to, from)
	}
	years := to.Year() - from.Year()
	if years > 0 && from.AddDate(years, 0, 0).After(to) {
		years--
	}
	return years
}
