package service

import (
	"sort"
	"time"
)

// Interval is an absolute half-open interval [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// OccupiedInterval is a busy block in the day's timeline. Internal marks a
// block that matches one of the group's own bookings, which waives the
// buffer on both sides of it.
type OccupiedInterval struct {
	Start    time.Time
	End      time.Time
	Internal bool
}

// BuildOccupied normalizes the provider-reported busy blocks to UTC, orders
// them by end instant (stable, so equal ends keep arrival order), and tags
// the blocks whose bounds exactly equal an internal booking. Internal
// bookings with no matching block are not inserted; the provider already
// reports them as busy for every attending member.
func BuildOccupied(busy []Interval, internal []Interval) []OccupiedInterval {
	occupied := make([]OccupiedInterval, 0, len(busy))
	for _, b := range busy {
		occupied = append(occupied, OccupiedInterval{
			Start: b.Start.UTC(),
			End:   b.End.UTC(),
		})
	}

	sort.SliceStable(occupied, func(i, j int) bool {
		return occupied[i].End.Before(occupied[j].End)
	})

	for i := range occupied {
		for _, b := range internal {
			if occupied[i].Start.Equal(b.Start) && occupied[i].End.Equal(b.End) {
				occupied[i].Internal = true
				break
			}
		}
	}
	return occupied
}
