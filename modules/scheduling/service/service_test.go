package service

import (
	"context"
	"testing"
	"time"

	"go-appointment-api/core/errors"
	availEntity "go-appointment-api/modules/availability/entity"
	calDto "go-appointment-api/modules/calendar/dto"
	eventEntity "go-appointment-api/modules/event/entity"
	groupEntity "go-appointment-api/modules/group/entity"

	"github.com/google/uuid"
)

type fakeGroups struct {
	group *groupEntity.AppointmentGroup
	err   *errors.AppError
}

func (f *fakeGroups) GetByRoute(ctx context.Context, route string) (*groupEntity.AppointmentGroup, *errors.AppError) {
	if f.err != nil {
		return nil, f.err
	}
	return f.group, nil
}

type fakeWindows struct {
	windows []availEntity.WorkingWindow
	err     *errors.AppError
}

func (f *fakeWindows) WindowsForDay(ctx context.Context, emails []string, weekday time.Weekday) ([]availEntity.WorkingWindow, *errors.AppError) {
	if f.err != nil {
		return nil, f.err
	}
	return f.windows, nil
}

type fakeBusy struct {
	blocks []calDto.BusyBlock
	err    *errors.AppError
	calls  int
}

func (f *fakeBusy) BusyBlocks(ctx context.Context, emails []string, start, end time.Time) ([]calDto.BusyBlock, *errors.AppError) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.blocks, nil
}

type fakeBookings struct {
	events []eventEntity.Event
	err    error
}

func (f *fakeBookings) ListForGroupDay(ctx context.Context, groupID uuid.UUID, dayStart, dayEnd time.Time) ([]eventEntity.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.events, nil
}

func testGroup() *groupEntity.AppointmentGroup {
	return &groupEntity.AppointmentGroup{
		ID:                    uuid.New(),
		Name:                  "Intro Call",
		Route:                 "intro-call",
		DurationSeconds:       3600,
		BookingFrequencyLimit: -1,
		Members: []groupEntity.GroupMember{
			{Email: "host@x.test", IsMandatory: true},
			{Email: "observer@x.test", IsMandatory: false},
		},
	}
}

func newTestService(groups *fakeGroups, windows *fakeWindows, busy *fakeBusy, bookings *fakeBookings) *SchedulingService {
	svc := NewSchedulingService(groups, windows, busy, bookings, time.UTC)
	svc.now = func() time.Time { return time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC) }
	return svc
}

func TestSlotsForDayComputesFreeSlots(t *testing.T) {
	groups := &fakeGroups{group: testGroup()}
	windows := &fakeWindows{windows: []availEntity.WorkingWindow{
		{Email: "host@x.test", Weekday: 2, StartClock: "09:00:00", EndClock: "17:00:00"},
	}}
	busy := &fakeBusy{blocks: []calDto.BusyBlock{
		{Email: "host@x.test", Start: ts(t, "2026-09-01T10:00:00Z"), End: ts(t, "2026-09-01T11:00:00Z")},
	}}
	svc := newTestService(groups, windows, busy, &fakeBookings{})

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.IsInvalidDate {
		t.Fatal("weekday inside the window must not be invalid")
	}
	if resp.TotalSlots != 7 {
		t.Fatalf("got %d slots, want 7", resp.TotalSlots)
	}
	if resp.AvailabilityStart != "2026-09-01T09:00:00Z" || resp.AvailabilityEnd != "2026-09-01T17:00:00Z" {
		t.Errorf("window %s - %s, want 09:00Z - 17:00Z", resp.AvailabilityStart, resp.AvailabilityEnd)
	}
	if !resp.Slots[0].StartTime.Equal(ts(t, "2026-09-01T09:00:00Z")) {
		t.Errorf("first slot at %v, want 09:00Z", resp.Slots[0].StartTime)
	}
	if !resp.Slots[1].StartTime.Equal(ts(t, "2026-09-01T11:00:00Z")) {
		t.Errorf("second slot at %v, want 11:00Z (block skipped)", resp.Slots[1].StartTime)
	}
	if resp.ValidEndDate != "" {
		t.Errorf("unbounded window should report empty ValidEndDate, got %q", resp.ValidEndDate)
	}
}

func TestSlotsForDayMalformedDate(t *testing.T) {
	svc := newTestService(&fakeGroups{group: testGroup()}, &fakeWindows{}, &fakeBusy{}, &fakeBookings{})

	_, appErr := svc.SlotsForDay(context.Background(), "intro-call", "09/01/2026")
	if appErr == nil || appErr.Code != errors.ErrInvalidInput {
		t.Fatalf("got %v, want ErrInvalidInput", appErr)
	}
}

func TestSlotsForDayUnknownGroup(t *testing.T) {
	groups := &fakeGroups{err: errors.NewAppError(errors.ErrNotFound, "appointment group not found", nil)}
	svc := newTestService(groups, &fakeWindows{}, &fakeBusy{}, &fakeBookings{})

	_, appErr := svc.SlotsForDay(context.Background(), "nope", "2026-09-01")
	if appErr == nil || appErr.Code != errors.ErrNotFound {
		t.Fatalf("got %v, want ErrNotFound", appErr)
	}
}

func TestSlotsForDayCollaboratorFailure(t *testing.T) {
	busy := &fakeBusy{err: errors.NewAppError(errors.ErrUpstreamUnavailable, "freebusy request failed", nil)}
	svc := newTestService(&fakeGroups{group: testGroup()}, &fakeWindows{}, busy, &fakeBookings{})

	_, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr == nil || appErr.Code != errors.ErrUpstreamUnavailable {
		t.Fatalf("got %v, want ErrUpstreamUnavailable", appErr)
	}
}

func TestSlotsForDayOutOfRangeDate(t *testing.T) {
	group := testGroup()
	group.MinimumNoticeDays = 2
	group.AvailabilityWindowDays = 5
	busy := &fakeBusy{}
	svc := newTestService(&fakeGroups{group: group}, &fakeWindows{}, busy, &fakeBookings{})

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-08-28")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.IsInvalidDate {
		t.Error("date inside notice period must be invalid")
	}
	if resp.TotalSlots != 0 {
		t.Errorf("invalid date carries %d slots, want 0", resp.TotalSlots)
	}
	if resp.ValidStartDate != "2026-08-29" || resp.ValidEndDate != "2026-09-03" {
		t.Errorf("valid range %s - %s, want 2026-08-29 - 2026-09-03",
			resp.ValidStartDate, resp.ValidEndDate)
	}
	if busy.calls != 0 {
		t.Error("rejected date must not reach the calendar provider")
	}
}

func TestSlotsForDayWeekendGate(t *testing.T) {
	group := testGroup()
	svc := newTestService(&fakeGroups{group: group}, &fakeWindows{}, &fakeBusy{}, &fakeBookings{})

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-05")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.IsInvalidDate {
		t.Error("saturday must be invalid when weekends are disabled")
	}

	group.SchedulingOnWeekends = true
	resp, appErr = svc.SlotsForDay(context.Background(), "intro-call", "2026-09-05")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.IsInvalidDate {
		t.Error("saturday must be bookable when weekends are enabled")
	}
	if !resp.EnableSchedulingOnWeekends {
		t.Error("response must echo the weekend policy")
	}
}

func TestSlotsForDayFrequencyReached(t *testing.T) {
	group := testGroup()
	group.BookingFrequencyLimit = 1
	bookings := &fakeBookings{events: []eventEntity.Event{
		{
			GroupID:  group.ID,
			StartsOn: ts(t, "2026-09-01T10:00:00Z"),
			EndsOn:   ts(t, "2026-09-01T11:00:00Z"),
		},
	}}
	busy := &fakeBusy{}
	svc := newTestService(&fakeGroups{group: group}, &fakeWindows{}, busy, bookings)

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if !resp.IsInvalidDate {
		t.Error("day at its booking limit must be invalid")
	}
	if busy.calls != 0 {
		t.Error("saturated day must not reach the calendar provider")
	}
}

func TestSlotsForDayInternalBookingWaivesBuffer(t *testing.T) {
	group := testGroup()
	group.DurationSeconds = 1800
	group.MinimumBufferSeconds = 900
	windows := &fakeWindows{windows: []availEntity.WorkingWindow{
		{Email: "host@x.test", Weekday: 2, StartClock: "09:00:00", EndClock: "12:00:00"},
	}}
	busy := &fakeBusy{blocks: []calDto.BusyBlock{
		{Email: "host@x.test", Start: ts(t, "2026-09-01T10:00:00Z"), End: ts(t, "2026-09-01T10:30:00Z")},
	}}
	bookings := &fakeBookings{events: []eventEntity.Event{
		{
			GroupID:  group.ID,
			StartsOn: ts(t, "2026-09-01T10:00:00Z"),
			EndsOn:   ts(t, "2026-09-01T10:30:00Z"),
		},
	}}
	svc := newTestService(&fakeGroups{group: group}, windows, busy, bookings)

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}

	want := [][2]string{
		{"2026-09-01T09:15:00Z", "2026-09-01T09:45:00Z"},
		{"2026-09-01T10:30:00Z", "2026-09-01T11:00:00Z"},
		{"2026-09-01T11:15:00Z", "2026-09-01T11:45:00Z"},
	}
	got := slotStrings(resp.Slots)
	if len(got) != len(want) {
		t.Fatalf("got %d slots %v, want %d", len(got), got, len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSlotsForDayCollapsedWindow(t *testing.T) {
	windows := &fakeWindows{windows: []availEntity.WorkingWindow{
		{Email: "host@x.test", Weekday: 2, StartClock: "08:00:00", EndClock: "10:00:00"},
		{Email: "observer@x.test", Weekday: 2, StartClock: "14:00:00", EndClock: "18:00:00"},
	}}
	busy := &fakeBusy{}
	svc := newTestService(&fakeGroups{group: testGroup()}, windows, busy, &fakeBookings{})

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.IsInvalidDate {
		t.Error("collapsed window is a zero-slot day, not an invalid date")
	}
	if resp.TotalSlots != 0 {
		t.Errorf("got %d slots, want 0", resp.TotalSlots)
	}
	if busy.calls != 0 {
		t.Error("collapsed window must not reach the calendar provider")
	}
}

func TestSlotsForDaySplitWindowsYieldNoSlots(t *testing.T) {
	windows := &fakeWindows{windows: []availEntity.WorkingWindow{
		{Email: "host@x.test", Weekday: 2, StartClock: "09:00:00", EndClock: "12:00:00"},
		{Email: "host@x.test", Weekday: 2, StartClock: "13:00:00", EndClock: "18:00:00"},
	}}
	busy := &fakeBusy{}
	svc := newTestService(&fakeGroups{group: testGroup()}, windows, busy, &fakeBookings{})

	resp, appErr := svc.SlotsForDay(context.Background(), "intro-call", "2026-09-01")
	if appErr != nil {
		t.Fatalf("unexpected error: %v", appErr)
	}
	if resp.TotalSlots != 0 {
		t.Errorf("got %d slots, want 0: nothing may be offered over the midday gap", resp.TotalSlots)
	}
	if busy.calls != 0 {
		t.Error("collapsed window must not reach the calendar provider")
	}
}
