package journal

import (
	"sort"
	"time"
)

// WeekBucket holds one calendar week of entries, keyed by the ISO date of the
// Sunday starting the week. All three category sequences are always present,
// possibly empty; rendering decides what to omit.
type WeekBucket struct {
	Sunday   string
	Work     []Entry
	Learning []Entry
	Interest []Entry
}

// ForCategory returns the bucket's sequence for a category.
func (b WeekBucket) ForCategory(c Category) []Entry {
	switch c {
	case CategoryWork:
		return b.Work
	case CategoryLearning:
		return b.Learning
	case CategoryInterest:
		return b.Interest
	}
	return nil
}

// MostRecentSunday returns the Sunday on or before d at day granularity. A
// date that is itself a Sunday maps to itself.
func MostRecentSunday(d time.Time) time.Time {
	y, m, day := d.Date()
	d = time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// GroupByWeek partitions entries into week buckets sorted ascending by the
// bucket's Sunday. Within a bucket each category keeps the relative input
// order of its entries.
func GroupByWeek(entries []Entry) []WeekBucket {
	byWeek := make(map[string]*WeekBucket)
	for _, e := range entries {
		key := MostRecentSunday(e.Date).Format(DateLayout)
		b, ok := byWeek[key]
		if !ok {
			b = &WeekBucket{
				Sunday:   key,
				Work:     []Entry{},
				Learning: []Entry{},
				Interest: []Entry{},
			}
			byWeek[key] = b
		}
		switch e.Category {
		case CategoryWork:
			b.Work = append(b.Work, e)
		case CategoryLearning:
			b.Learning = append(b.Learning, e)
		case CategoryInterest:
			b.Interest = append(b.Interest, e)
		}
	}

	buckets := make([]WeekBucket, 0, len(byWeek))
	for _, b := range byWeek {
		buckets = append(buckets, *b)
	}
	// Lexical order on ISO dates is chronological order.
	sort.Slice(buckets, func(i, j int) bool { return buckets[i].Sunday < buckets[j].Sunday })
	return buckets
}
