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

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2024-03-15"); !ok {
		t.Error("IsValidDate(2024-03-15) = false, want true")
	}
	for _, s := range []string{"15-03-2024", "2024-3-15", "2024-13-01", "abc", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestIsValidLedgerDate(t *testing.T) {
	if _, ok := IsValidLedgerDate("15-03-2024"); !ok {
		t.Error("IsValidLedgerDate(15-03-2024) = false, want true")
	}
	for _, s := range []string{"2024-03-15", "32-01-2024", "15/03/2024", ""} {
		if _, ok := IsValidLedgerDate(s); ok {
			t.Errorf("IsValidLedgerDate(%q) = true, want false", s)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	roles := []string{"student", "teacher", "admin"}
	if !IsInSlice("teacher", roles) {
		t.Error("IsInSlice(teacher) = false, want true")
	}
	if IsInSlice("owner", roles) {
		t.Error("IsInSlice(owner) = true, want false")
	}
}
