package guard

import (
	"testing"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

func TestEvaluatePublicRoute(t *testing.T) {
	for _, role := range []model.Role{model.RoleAnonymous, model.RoleStudent, model.RoleTeacher, model.RoleAdmin} {
		d := Evaluate(nil, role)
		if !d.Allowed {
			t.Errorf("public route denied for %s", role)
		}
	}
}

func TestEvaluateAnonymousDenied(t *testing.T) {
	d := Evaluate([]model.Role{model.RoleStudent}, model.RoleAnonymous)
	if d.Allowed {
		t.Fatal("anonymous allowed on protected route")
	}
	if d.RedirectTo != LoginPath {
		t.Errorf("redirect = %q, want %q", d.RedirectTo, LoginPath)
	}
}

func TestEvaluateMembership(t *testing.T) {
	tests := []struct {
		name     string
		required []model.Role
		current  model.Role
		allowed  bool
	}{
		{"student on student route", []model.Role{model.RoleStudent}, model.RoleStudent, true},
		{"teacher on student route", []model.Role{model.RoleStudent}, model.RoleTeacher, false},
		{"admin on admin route", []model.Role{model.RoleAdmin}, model.RoleAdmin, true},
		{"student on admin route", []model.Role{model.RoleAdmin}, model.RoleStudent, false},
		{"teacher on shared route", []model.Role{model.RoleStudent, model.RoleTeacher}, model.RoleTeacher, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Evaluate(tt.required, tt.current)
			if d.Allowed != tt.allowed {
				t.Errorf("allowed = %v, want %v", d.Allowed, tt.allowed)
			}
			if !d.Allowed && d.RedirectTo == "" {
				t.Error("denied decision carries no redirect target")
			}
		})
	}
}

func TestAdminOnly(t *testing.T) {
	if !AdminOnly(model.RoleAdmin).Allowed {
		t.Error("admin denied")
	}
	if AdminOnly(model.RoleTeacher).Allowed {
		t.Error("teacher allowed through admin gate")
	}
	if AdminOnly(model.RoleAnonymous).Allowed {
		t.Error("anonymous allowed through admin gate")
	}
}

func TestDenyRedirectDefaultsToLogin(t *testing.T) {
	if got := DenyRedirect("").RedirectTo; got != LoginPath {
		t.Errorf("RedirectTo = %q, want %q", got, LoginPath)
	}
	if got := DenyRedirect("/").RedirectTo; got != "/" {
		t.Errorf("RedirectTo = %q, want /", got)
	}
}
