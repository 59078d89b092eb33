package rules

import "testing"

func TestIsValidName(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"my-plugin-2", true},
		{"a", true},
		{"0", true},
		{"tools", true},
		{"my--plugin", true},
		{"123skill", true},
		{"", false},
		{"-bad", false},
		{"bad-", false},
		{"-", false},
		{"My-Plugin", false},
		{"my_plugin", false},
		{"my plugin", false},
		{"my.plugin", false},
		{"plügin", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidName(tt.in); got != tt.want {
				t.Errorf("IsValidName(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidSemver(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"1.2.3", true},
		{"0.1.0", true},
		{"1.2.3-beta.1", true},
		{"1.2.3+build.5", true},
		{"1.2.3-rc1+20260101", true},
		{"10.200.3000", true},
		{"1.2", false},
		{"v1.2.3", false},
		{"1.2.3-", false},
		{"1.2.3-beta_1", false},
		{"1.2.x", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidSemver(tt.in); got != tt.want {
				t.Errorf("IsValidSemver(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"dev@example.com", true},
		{"first.last+tag@sub.example.io", true},
		{"a_b%c@x-y.org", true},
		{"no-at-sign.example.com", false},
		{"user@localhost", false},
		{"user@example.c", false},
		{"@example.com", false},
		{"user name@example.com", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := IsValidEmail(tt.in); got != tt.want {
				t.Errorf("IsValidEmail(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}
