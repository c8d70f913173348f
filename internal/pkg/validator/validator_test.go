package validator

import (
	"testing"
	"time"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	valid := []string{"2024-05-07", "1998-01-01", "2024-02-29"}
	invalid := []string{"2024-5-7", "2024/05/07", "2023-02-29", "2024-13-01", "today", ""}
	for _, d := range valid {
		if _, ok := IsValidDate(d); !ok {
			t.Errorf("IsValidDate(%q) = false, want true", d)
		}
	}
	for _, d := range invalid {
		if _, ok := IsValidDate(d); ok {
			t.Errorf("IsValidDate(%q) = true, want false", d)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "19:05", "23:59"}
	invalid := []string{"24:00", "8:30", "08:60", "0830", "08:30:00", "", "8:3"}
	for _, c := range valid {
		if !IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = false, want true", c)
		}
	}
	for _, c := range invalid {
		if IsValidClock(c) {
			t.Errorf("IsValidClock(%q) = true, want false", c)
		}
	}
}

func TestIsValidMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		if !IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = false, want true", month)
		}
	}
	for _, month := range []int{0, 13, -1} {
		if IsValidMonth(month) {
			t.Errorf("IsValidMonth(%d) = true, want false", month)
		}
	}
}

func TestIsValidYear(t *testing.T) {
	now := time.Now().Year()
	valid := []int{1998, 2020, now, now + 1}
	invalid := []int{1997, 0, now + 2}
	for _, y := range valid {
		if !IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = false, want true", y)
		}
	}
	for _, y := range invalid {
		if IsValidYear(y) {
			t.Errorf("IsValidYear(%d) = true, want false", y)
		}
	}
}

func TestValidationErrors_Error(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "date must be YYYY-MM-DD"},
		{Field: "check_in", Message: "check_in must be HH:MM"},
	}
	want := "date: date must be YYYY-MM-DD; check_in: check_in must be HH:MM"
	if errs.Error() != want {
		t.Errorf("Error() = %q, want %q", errs.Error(), want)
	}

	m := errs.ToMap()
	if len(m) != 2 || m["date"] == "" || m["check_in"] == "" {
		t.Errorf("ToMap() = %v", m)
	}
}
