package service

import (
	"time"

	"go-appointment-api/modules/scheduling/dto"
)

// GenerateSlots sweeps the day window and emits every slot of the given
// duration that clears the occupied blocks. The occupied list must be sorted
// by end instant (see BuildOccupied); the sweep walks it with a single
// monotonic index.
//
// The buffer separates slots from external busy blocks and from each other.
// It is waived entirely when zero, and around a block tagged Internal: the
// group's own bookings already honored the policy when they were made.
func GenerateSlots(windowStart, windowEnd time.Time, duration, buffer time.Duration, occupied []OccupiedInterval) []dto.TimeSlot {
	slots := []dto.TimeSlot{}
	if duration <= 0 || !windowStart.Before(windowEnd) {
		return slots
	}

	currentStart := windowStart.Add(buffer)
	idx := 0

	for {
		currentEnd := currentStart.Add(duration)
		if currentEnd.After(windowEnd) {
			return slots
		}

		if idx >= len(occupied) {
			slots = append(slots, dto.TimeSlot{StartTime: currentStart, EndTime: currentEnd})
			currentStart = currentEnd.Add(buffer)
			continue
		}

		block := occupied[idx]
		pad := buffer
		if block.Internal {
			pad = 0
		}

		if !currentEnd.After(block.Start) && block.Start.Sub(currentEnd) >= pad {
			slots = append(slots, dto.TimeSlot{StartTime: currentStart, EndTime: currentEnd})
			currentStart = currentEnd.Add(pad)
			continue
		}

		// Conflict: resume after the block. Overlapping input blocks can
		// end before the cursor; never move it backwards.
		next := block.End.Add(pad)
		if next.After(currentStart) {
			currentStart = next
		}
		idx++
	}
}
