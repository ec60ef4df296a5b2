package service

import (
	"testing"
	"time"

	"go-appointment-api/modules/scheduling/dto"
)

func ts(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		t.Fatalf("parse %q: %v", value, err)
	}
	return parsed
}

func slotStrings(slots []dto.TimeSlot) [][2]string {
	out := make([][2]string, len(slots))
	for i, s := range slots {
		out[i] = [2]string{
			s.StartTime.UTC().Format(time.RFC3339),
			s.EndTime.UTC().Format(time.RFC3339),
		}
	}
	return out
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T17:00:00Z")

	slots := GenerateSlots(start, end, time.Hour, 0, nil)

	if len(slots) != 8 {
		t.Fatalf("got %d slots, want 8", len(slots))
	}
	if !slots[0].StartTime.Equal(start) {
		t.Errorf("first slot starts at %v, want %v", slots[0].StartTime, start)
	}
	if !slots[7].EndTime.Equal(end) {
		t.Errorf("last slot ends at %v, want %v", slots[7].EndTime, end)
	}
	// With no buffer consecutive slots touch.
	for i := 1; i < len(slots); i++ {
		if !slots[i].StartTime.Equal(slots[i-1].EndTime) {
			t.Errorf("slot %d does not touch its predecessor: %v vs %v",
				i, slots[i].StartTime, slots[i-1].EndTime)
		}
	}
}

func TestGenerateSlotsBufferAroundExternalBlock(t *testing.T) {
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T12:00:00Z")
	occupied := []OccupiedInterval{
		{Start: ts(t, "2026-09-01T10:00:00Z"), End: ts(t, "2026-09-01T10:30:00Z")},
	}

	slots := GenerateSlots(start, end, 30*time.Minute, 15*time.Minute, occupied)

	want := [][2]string{
		{"2026-09-01T09:15:00Z", "2026-09-01T09:45:00Z"},
		{"2026-09-01T10:45:00Z", "2026-09-01T11:15:00Z"},
		{"2026-09-01T11:30:00Z", "2026-09-01T12:00:00Z"},
	}
	got := slotStrings(slots)
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGenerateSlotsBufferWaivedForInternalBlock(t *testing.T) {
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T12:00:00Z")
	occupied := []OccupiedInterval{
		{Start: ts(t, "2026-09-01T10:00:00Z"), End: ts(t, "2026-09-01T10:30:00Z"), Internal: true},
	}

	slots := GenerateSlots(start, end, 30*time.Minute, 15*time.Minute, occupied)

	// Slots may touch the internal block on both sides; the buffer still
	// separates the remaining free slots from each other.
	want := [][2]string{
		{"2026-09-01T09:15:00Z", "2026-09-01T09:45:00Z"},
		{"2026-09-01T10:30:00Z", "2026-09-01T11:00:00Z"},
		{"2026-09-01T11:15:00Z", "2026-09-01T11:45:00Z"},
	}
	got := slotStrings(slots)
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestGenerateSlotsBlockSqueezesOutGap(t *testing.T) {
	// The gap before the block is exactly the duration but the buffer does
	// not fit, so no slot is emitted before it.
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T11:00:00Z")
	occupied := []OccupiedInterval{
		{Start: ts(t, "2026-09-01T09:45:00Z"), End: ts(t, "2026-09-01T10:00:00Z")},
	}

	slots := GenerateSlots(start, end, 30*time.Minute, 15*time.Minute, occupied)

	want := [][2]string{
		{"2026-09-01T10:15:00Z", "2026-09-01T10:45:00Z"},
	}
	got := slotStrings(slots)
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestGenerateSlotsDegenerateInputs(t *testing.T) {
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T17:00:00Z")

	if got := GenerateSlots(start, start, time.Hour, 0, nil); len(got) != 0 {
		t.Errorf("empty window: got %d slots, want 0", len(got))
	}
	if got := GenerateSlots(end, start, time.Hour, 0, nil); len(got) != 0 {
		t.Errorf("inverted window: got %d slots, want 0", len(got))
	}
	if got := GenerateSlots(start, end, 0, 0, nil); len(got) != 0 {
		t.Errorf("zero duration: got %d slots, want 0", len(got))
	}
	if got := GenerateSlots(start, end, 9*time.Hour, 0, nil); len(got) != 0 {
		t.Errorf("duration longer than window: got %d slots, want 0", len(got))
	}
}

func TestGenerateSlotsFullyBookedDay(t *testing.T) {
	start := ts(t, "2026-09-01T09:00:00Z")
	end := ts(t, "2026-09-01T12:00:00Z")
	occupied := []OccupiedInterval{
		{Start: ts(t, "2026-09-01T09:00:00Z"), End: ts(t, "2026-09-01T12:00:00Z")},
	}

	if got := GenerateSlots(start, end, 30*time.Minute, 0, occupied); len(got) != 0 {
		t.Fatalf("got %d slots, want 0", len(got))
	}
}

// The sweep invariants must hold even when members' busy blocks overlap
// each other: slots keep the exact duration, stay ordered, never overlap an
// occupied interval, and keep the buffer distance to external blocks.
func TestGenerateSlotsInvariantsWithOverlappingBlocks(t *testing.T) {
	start := ts(t, "2026-09-01T08:00:00Z")
	end := ts(t, "2026-09-01T18:00:00Z")
	duration := 45 * time.Minute
	buffer := 10 * time.Minute
	occupied := BuildOccupied([]Interval{
		{Start: ts(t, "2026-09-01T09:00:00Z"), End: ts(t, "2026-09-01T12:00:00Z")},
		{Start: ts(t, "2026-09-01T09:30:00Z"), End: ts(t, "2026-09-01T10:00:00Z")},
		{Start: ts(t, "2026-09-01T11:30:00Z"), End: ts(t, "2026-09-01T13:00:00Z")},
		{Start: ts(t, "2026-09-01T15:00:00Z"), End: ts(t, "2026-09-01T15:30:00Z")},
	}, nil)

	slots := GenerateSlots(start, end, duration, buffer, occupied)
	if len(slots) == 0 {
		t.Fatal("expected some slots")
	}

	for i, slot := range slots {
		if got := slot.EndTime.Sub(slot.StartTime); got != duration {
			t.Errorf("slot %d has duration %v, want %v", i, got, duration)
		}
		if slot.StartTime.Before(start) || slot.EndTime.After(end) {
			t.Errorf("slot %d %v-%v escapes the window", i, slot.StartTime, slot.EndTime)
		}
		if i > 0 && slot.StartTime.Before(slots[i-1].EndTime) {
			t.Errorf("slot %d overlaps its predecessor", i)
		}
		for _, block := range occupied {
			if slot.StartTime.Before(block.End) && block.Start.Before(slot.EndTime) {
				t.Errorf("slot %d %v-%v overlaps block %v-%v",
					i, slot.StartTime, slot.EndTime, block.Start, block.End)
			}
			if !block.Internal {
				if gap := block.Start.Sub(slot.EndTime); gap >= 0 && gap < buffer {
					t.Errorf("slot %d ends within buffer of block at %v", i, block.Start)
				}
				if gap := slot.StartTime.Sub(block.End); gap >= 0 && gap < buffer {
					t.Errorf("slot %d starts within buffer of block ending %v", i, block.End)
				}
			}
		}
	}

	// Same inputs, same answer.
	again := GenerateSlots(start, end, duration, buffer, occupied)
	if len(again) != len(slots) {
		t.Fatalf("second run produced %d slots, first %d", len(again), len(slots))
	}
	for i := range slots {
		if !slots[i].StartTime.Equal(again[i].StartTime) || !slots[i].EndTime.Equal(again[i].EndTime) {
			t.Errorf("slot %d differs between runs", i)
		}
	}
}
