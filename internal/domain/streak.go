package domain

import (
	"sort"
	"time"
)

// LongestStreak returns the length of the longest run of consecutive calendar
// days containing at least one of the given timestamps. Days are bucketed in
// UTC; multiple timestamps on the same day count once. An empty input yields
// 0, a single distinct day yields 1, and a gap of more than one day resets
// the run to 1 (the day after the gap still counts).
func LongestStreak(stamps []time.Time) int {
	if len(stamps) == 0 {
		return 0
	}

	seen := make(map[time.Time]struct{}, len(stamps))
	for _, ts := range stamps {
		y, m, d := ts.UTC().Date()
		seen[time.Date(y, m, d, 0, 0, 0, 0, time.UTC)] = struct{}{}
	}

	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i].Equal(days[i-1].AddDate(0, 0, 1)) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return best
}
