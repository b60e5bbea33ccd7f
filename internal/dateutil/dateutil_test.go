package dateutil

import "testing"

func TestParseDate(t *testing.T) {
	got, err := ParseDate("2025-06-10")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "2025-06-10" {
		t.Fatalf("expected 2025-06-10, got %q", got)
	}

	for _, bad := range []string{"", "10-06-2025", "2025-13-01", "2025-06-10T00:00:00Z", "tomorrow"} {
		if _, err := ParseDate(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestParseTime(t *testing.T) {
	cases := map[string]string{
		"10:00:00": "10:00:00",
		"10:00":    "10:00:00",
		"23:59:59": "23:59:59",
	}
	for in, want := range cases {
		got, err := ParseTime(in)
		if err != nil {
			t.Fatalf("ParseTime(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("ParseTime(%q) = %q, want %q", in, got, want)
		}
	}

	for _, bad := range []string{"", "25:00", "10:61", "10am"} {
		if _, err := ParseTime(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestTodayShape(t *testing.T) {
	today := Today()
	if _, err := ParseDate(today); err != nil {
		t.Fatalf("Today() = %q is not a calendar date: %v", today, err)
	}
}
