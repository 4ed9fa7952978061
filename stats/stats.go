// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package stats

import (
	"strconv"

	"github.com/danielhkuo/team-mood/models"
)

// Compute reduces a set of entries to a StatsResult. The tally maps
// string-encoded levels to counts and contains only levels that occur;
// the average is sum(levels)/count, or nil for an empty set (never 0,
// never NaN).
func Compute(entries []models.Entry) models.StatsResult {
	tally := make(map[string]int)
	sum := 0
	for _, entry := range entries {
		tally[strconv.Itoa(entry.Level)]++
		sum += entry.Level
	}

	result := models.StatsResult{Tally: tally}
	if len(entries) > 0 {
		average := float64(sum) / float64(len(entries))
		result.Average = &average
	}

	return result
}
