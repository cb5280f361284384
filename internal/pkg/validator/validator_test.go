package validator

import (
	"testing"
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

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@.com", "test@com", "test@domain", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidMatricula(t *testing.T) {
	valid := []string{"20230123", "ALU-2023.001", "abc"}
	invalid := []string{"", "ab", "has space", "tab\tchar", "a@b"}
	for _, m := range valid {
		if !IsValidMatricula(m) {
			t.Errorf("IsValidMatricula(%q) = false, want true", m)
		}
	}
	for _, m := range invalid {
		if IsValidMatricula(m) {
			t.Errorf("IsValidMatricula(%q) = true, want false", m)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-01"); !ok {
		t.Error("IsValidDate(2025-03-01) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "01/03/2025", "", "yesterday"} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidTimeOfDay(t *testing.T) {
	valid := []string{"00:00", "09:00", "23:59"}
	invalid := []string{"24:00", "9h30", "09:60", ""}
	for _, s := range valid {
		if !IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if IsValidTimeOfDay(s) {
			t.Errorf("IsValidTimeOfDay(%q) = true, want false", s)
		}
	}
}

func TestCoordinateBounds(t *testing.T) {
	if !IsValidLatitude(-23.5) || !IsValidLongitude(-46.6) {
		t.Error("valid coordinates rejected")
	}
	if IsValidLatitude(90.1) || IsValidLatitude(-90.1) {
		t.Error("out-of-range latitude accepted")
	}
	if IsValidLongitude(180.1) || IsValidLongitude(-180.1) {
		t.Error("out-of-range longitude accepted")
	}
}
