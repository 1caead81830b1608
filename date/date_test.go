package date

import (
	"testing"
	"time"
)

// TestTime assert that the time() is cannonical and gives comparable times.
func TestTime(t *testing.T) {
	d1 := New(2025, 7, 31)
	d2 := New(2025, 7, 31)

	if d1.time() != d2.time() {
		// Note that usually time.Time are not comparable (there is a pointer for the timezone) this
		// tests also checks that the property remain true
		t.Errorf("invalid time() function same day gives two different time")
	}
}

func TestAdd(t *testing.T) {
	testCases := []struct {
		from Date
		days int
		want string
	}{
		{New(2025, 1, 1), 30, "2025-01-31"},
		{New(2025, 1, 15), 30, "2025-02-14"},
		{New(2024, 2, 15), 30, "2024-03-16"}, // leap year
		{New(2025, 12, 15), 30, "2026-01-14"},
		{New(2025, 3, 1), -1, "2025-02-28"},
	}
	for _, tc := range testCases {
		if got := tc.from.Add(tc.days).String(); got != tc.want {
			t.Errorf("%v.Add(%d) = %q, want %q", tc.from, tc.days, got, tc.want)
		}
	}
}

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"2025-07-01", "2025-07-01", false},
		{"2025-7-1", "2025-07-01", false},
		{"", "", true},
		{"tomorrow", "", true},
		{"2025-13-01", "", true},
		{"01/07/2025", "", true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if (err != nil) != tc.wantErr {
			t.Errorf("Parse(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			continue
		}
		if err == nil && got.String() != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestDisplay(t *testing.T) {
	testCases := []struct {
		in   string
		want string
	}{
		{"2025-07-01", "Jul 01, 2025"},
		{"2025-12-25", "Dec 25, 2025"},
		{"", ""},
		{"not a date", ""},
		{"2025-02-30", ""},
	}
	for _, tc := range testCases {
		if got := Display(tc.in); got != tc.want {
			t.Errorf("Display(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestOf(t *testing.T) {
	got := Of(time.Date(2025, 8, 9, 23, 59, 0, 0, time.UTC))
	if got != New(2025, 8, 9) {
		t.Errorf("Of() = %v, want 2025-08-09", got)
	}
}
