package service

import "testing"

func TestCanonicalClock(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"09:00:00", "09:00:00", false},
		{"9:00", "09:00:00", false},
		{"9:5", "09:05:00", false},
		{"23:59:59", "23:59:59", false},
		{"24:00:00", "24:00:00", false},
		{"24:00", "24:00:00", false},
		{" 10:30 ", "10:30:00", false},
		{"24:00:01", "", true},
		{"25:00:00", "", true},
		{"09:60:00", "", true},
		{"nine", "", true},
		{"09", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := CanonicalClock(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("CanonicalClock(%q) = %q, want error", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("CanonicalClock(%q): %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("CanonicalClock(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
