package service

// FrequencyAvailable reports whether the group may take one more booking on
// the day. A negative limit means unlimited; a zero limit blocks the day
// entirely.
func FrequencyAvailable(limit, bookingCount int) bool {
	if limit < 0 {
		return true
	}
	return bookingCount < limit
}
