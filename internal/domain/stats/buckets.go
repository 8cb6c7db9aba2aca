package stats

import (
	"fmt"
	"math"
	"time"
)

// DaysBetween counts calendar days from date to now in loc.
func DaysBetween(date, now time.Time, loc *time.Location) int {
	diff := StartOfDay(now, loc).Sub(StartOfDay(date, loc))
	return int(math.Round(diff.Hours() / 24))
}

// BucketLabel returns the list heading for a record dated date.
func BucketLabel(date, now time.Time, loc *time.Location) string {
	switch d := DaysBetween(date, now, loc); {
	case d == 0:
		return "Today"
	case d == 1:
		return "Yesterday"
	case d >= 2 && d <= 6:
		return fmt.Sprintf("%d days ago", d)
	default:
		local := date.In(loc)
		return fmt.Sprintf("Month %d/%d", int(local.Month()), local.Year())
	}
}

type Group[T any] struct {
	Label string `json:"label"`
	Items []T    `json:"items"`
}

// GroupByBucket keeps the input order: groups appear in the order of their
// first record and records keep their relative order.
func GroupByBucket[T any](
	items []T,
	dateOf func(T) time.Time,
	now time.Time,
	loc *time.Location,
) []Group[T] {

	var groups []Group[T]
	index := make(map[string]int)

	for _, it := range items {
		label := BucketLabel(dateOf(it), now, loc)
		i, ok := index[label]
		if !ok {
			i = len(groups)
			index[label] = i
			groups = append(groups, Group[T]{Label: label})
		}
		groups[i].Items = append(groups[i].Items, it)
	}
	return groups
}
