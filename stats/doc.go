// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package stats computes aggregate mood statistics.

# Aggregation

Compute is a pure, deterministic reduction of an entry set:

	result := stats.Compute(entries)
	// result.Tally   → {"3": 2, "5": 1}
	// result.Average → *2.0 ... *5.0, or nil

Properties:

  - the tally counts entries per level; absent levels are omitted, not
    zero-filled, and the counts always sum to the number of entries
  - the average is the arithmetic mean of all levels
  - an empty entry set yields an empty tally and a nil average, so the
    JSON encoding is {"tally": {}, "average": null} - division by a
    zero count never happens

Scope selection (which entries to aggregate for which caller) belongs
to the handlers; this package only reduces what it is given.
*/
package stats
