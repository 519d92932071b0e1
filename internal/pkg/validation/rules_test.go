package validation

import "testing"

func TestIsValidEmail(t *testing.T) {
	valid := []string{"asha@college.edu", "a.b+tag@example.co.in"}
	invalid := []string{"", "plain", "missing@domain", "@nouser.com", "spaces in@mail.com"}

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

func TestIsValidMobileNumber(t *testing.T) {
	tests := []struct {
		number string
		want   bool
	}{
		{"9876543210", true},
		{"", true}, // optional until the profile form requires it
		{"12345", false},
		{"98765432100", false},
		{"98765abcde", false},
	}

	for _, tt := range tests {
		if got := IsValidMobileNumber(tt.number); got != tt.want {
			t.Errorf("IsValidMobileNumber(%q) = %v, want %v", tt.number, got, tt.want)
		}
	}
}
