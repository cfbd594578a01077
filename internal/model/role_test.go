package model

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"Student", RoleStudent},
		{"Teacher", RoleTeacher},
		{"Admin", RoleAdmin},
		{"Anonymous", RoleAnonymous},
		{"", RoleAnonymous},
		{"student", RoleAnonymous}, // case matters; anything off-enum collapses
		{"SuperAdmin", RoleAnonymous},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestAuthenticated(t *testing.T) {
	for _, r := range []Role{RoleStudent, RoleTeacher, RoleAdmin} {
		if !r.Authenticated() {
			t.Errorf("%s.Authenticated() = false", r)
		}
	}
	if RoleAnonymous.Authenticated() {
		t.Error("Anonymous.Authenticated() = true")
	}
}
