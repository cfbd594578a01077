// Package guard decides whether the current actor may reach a route.
//
// The decision uses only locally held session state: it is a UX
// convenience, not a security boundary. Client-held role flags are
// trivially forgeable, so the backend re-authorizes every API call
// independently of anything decided here.
package guard

import "github.com/MalithSamaradiwakara/frontend/internal/model"

// LoginPath is the default deny-redirect target.
const LoginPath = "/login"

// Decision is the outcome of a guard evaluation.
type Decision struct {
	Allowed bool
	// RedirectTo is set only when Allowed is false.
	RedirectTo string
}

// Allow is the permissive decision.
var Allow = Decision{Allowed: true}

// DenyRedirect denies access and names the redirect target.
func DenyRedirect(target string) Decision {
	if target == "" {
		target = LoginPath
	}
	return Decision{RedirectTo: target}
}

// Evaluate gates a route against the current role:
//   - empty required set: public, always allowed (Anonymous included);
//   - Anonymous on a protected route: deny to /login regardless of the set;
//   - otherwise allow iff the role is in the set.
func Evaluate(required []model.Role, current model.Role) Decision {
	if len(required) == 0 {
		return Allow
	}
	if current == model.RoleAnonymous {
		return DenyRedirect(LoginPath)
	}
	for _, r := range required {
		if r == current {
			return Allow
		}
	}
	return DenyRedirect(LoginPath)
}

// AdminOnly is the degenerate admin gate.
func AdminOnly(current model.Role) Decision {
	return Evaluate([]model.Role{model.RoleAdmin}, current)
}
