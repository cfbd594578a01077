package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the three-way split every backend failure normalizes into.
// Callers branch on it to decide user-facing messaging: client errors are
// actionable feedback, server errors are "try again later", network errors
// are connectivity messages.
type Kind string

const (
	KindClient  Kind = "client"  // 4xx
	KindServer  Kind = "server"  // 5xx
	KindNetwork Kind = "network" // no response at all
)

// Error is the single error shape for all backend calls.
type Error struct {
	Kind    Kind
	Status  int // 0 for network errors
	Message string
}

func (e *Error) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("backend %s error (%d): %s", e.Kind, e.Status, e.Message)
	}
	return fmt.Sprintf("backend %s error: %s", e.Kind, e.Message)
}

// KindOf extracts the error kind, defaulting unknown errors to network.
func KindOf(err error) Kind {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Kind
	}
	return KindNetwork
}

// Message extracts the user-facing message from a gateway error.
func Message(err error) string {
	var ge *Error
	if errors.As(err, &ge) {
		return ge.Message
	}
	return err.Error()
}

// IsNotFound reports whether err is a backend 404.
func IsNotFound(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Status == http.StatusNotFound
}

// IsUnauthorized reports whether err is a backend 401.
func IsUnauthorized(err error) bool {
	var ge *Error
	return errors.As(err, &ge) && ge.Status == http.StatusUnauthorized
}
