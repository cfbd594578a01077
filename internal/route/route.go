// Package route declares the URL surface: which view each path pattern
// mounts, which roles it demands, and which shell wraps it. The table is
// static and ordered; the first matching pattern wins.
package route

import (
	"strings"

	"github.com/MalithSamaradiwakara/frontend/internal/guard"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// Layout names the chrome wrapping a family of routes.
type Layout int

const (
	LayoutNone Layout = iota
	LayoutTeacherShell
	LayoutAdminShell
)

// Requirement is one entry of the route table.
type Requirement struct {
	// Pattern is a path pattern with :name parameter segments.
	Pattern string
	// Roles is the required-role set; empty means public.
	Roles []model.Role
	// Layout resolves the surrounding shell.
	Layout Layout
	// RedirectTo overrides the deny target; empty means /login.
	RedirectTo string
	// View names the handler that renders this route.
	View string
	// Methods lists the HTTP methods to register; empty means GET only.
	Methods []string
}

// Match is a resolved navigation: the winning requirement plus extracted
// path parameters.
type Match struct {
	Requirement Requirement
	Params      map[string]string
}

// Outcome is the terminal state of one navigation: either the view mounts
// or the client is redirected.
type Outcome struct {
	Mounted    bool
	Match      Match
	RedirectTo string
}

// Table is the ordered route table.
type Table struct {
	entries []Requirement
}

// NewTable builds a table from ordered requirements.
func NewTable(entries []Requirement) *Table {
	return &Table{entries: entries}
}

// Entries returns the ordered requirements for registration.
func (t *Table) Entries() []Requirement {
	return t.entries
}

// Resolve matches a navigation against the table, first match wins; an
// entry matches when both its pattern and its method set (GET by default,
// HEAD counts as GET) accept the request. The second return is false when
// nothing matched (the caller redirects home). Parameter values are
// extracted by shape only; validating their content is the view's job.
func (t *Table) Resolve(method, path string) (Match, bool) {
	segs := splitPath(path)
	for _, req := range t.entries {
		if !req.acceptsMethod(method) {
			continue
		}
		if params, ok := matchPattern(req.Pattern, segs); ok {
			return Match{Requirement: req, Params: params}, true
		}
	}
	return Match{}, false
}

func (r Requirement) acceptsMethod(method string) bool {
	if method == "HEAD" {
		method = "GET"
	}
	if len(r.Methods) == 0 {
		return method == "GET"
	}
	for _, m := range r.Methods {
		if m == method {
			return true
		}
	}
	return false
}

// Dispatch runs a full navigation: resolve, then gate on the current role.
// The guard runs before any view work, so a denied role never reaches the
// view at all. Unmatched paths redirect to /.
func (t *Table) Dispatch(method, path string, current model.Role) Outcome {
	m, ok := t.Resolve(method, path)
	if !ok {
		return Outcome{RedirectTo: "/"}
	}
	d := guard.Evaluate(m.Requirement.Roles, current)
	if !d.Allowed {
		target := d.RedirectTo
		if m.Requirement.RedirectTo != "" {
			target = m.Requirement.RedirectTo
		}
		return Outcome{RedirectTo: target}
	}
	return Outcome{Mounted: true, Match: m}
}

// navbarHiddenPrefixes suppress the global navbar; a pure string-prefix
// rule evaluated on every navigation.
var navbarHiddenPrefixes = []string{"/login", "/register", "/admin", "/teacher"}

// HideNavbar reports whether the global navbar is suppressed for a path.
func HideNavbar(path string) bool {
	for _, p := range navbarHiddenPrefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func splitPath(path string) []string {
	trimmed := strings.Trim(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

func matchPattern(pattern string, segs []string) (map[string]string, bool) {
	psegs := splitPath(pattern)
	if len(psegs) != len(segs) {
		return nil, false
	}
	var params map[string]string
	for i, p := range psegs {
		if strings.HasPrefix(p, ":") {
			if segs[i] == "" {
				return nil, false
			}
			if params == nil {
				params = make(map[string]string)
			}
			params[p[1:]] = segs[i]
			continue
		}
		if p != segs[i] {
			return nil, false
		}
	}
	return params, true
}
