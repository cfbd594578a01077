package gateway

import (
	"context"
	"net/http"

	"github.com/MalithSamaradiwakara/frontend/internal/model"
)

// Login exchanges credentials for a session seed.
func (c *Client) Login(ctx context.Context, creds model.LoginRequest) (model.SessionSeed, error) {
	var seed model.SessionSeed
	err := c.do(ctx, http.MethodPost, "/api/auth/login", creds, &seed)
	return seed, err
}

// LoginDetails resolves secondary identifiers (studentId) from a login id.
// Callers treat failure as non-fatal: the primary session stands without it.
func (c *Client) LoginDetails(ctx context.Context, loginID string) (model.LoginDetails, error) {
	var details model.LoginDetails
	err := c.do(ctx, http.MethodGet, "/api/auth/login/"+loginID, nil, &details)
	return details, err
}
