package response

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func newRequestIDRig() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seen string
	r := gin.New()
	r.Use(RequestIDMiddleware())
	r.GET("/", func(c *gin.Context) {
		seen = RequestIDFrom(c.Request.Context())
		c.Status(http.StatusOK)
	})
	return r, &seen
}

func TestRequestIDGenerated(t *testing.T) {
	r, seen := newRequestIDRig()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	id := w.Header().Get("X-Request-ID")
	if id == "" {
		t.Fatal("no X-Request-ID on response")
	}
	if *seen != id {
		t.Errorf("context carries %q, response header %q", *seen, id)
	}
}

func TestRequestIDHonorsInbound(t *testing.T) {
	r, seen := newRequestIDRig()

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("X-Request-ID", "client-supplied")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != "client-supplied" {
		t.Errorf("response header = %q, want client-supplied", got)
	}
	if *seen != "client-supplied" {
		t.Errorf("context carries %q, want client-supplied", *seen)
	}
}

func TestRequestIDFromPlainContext(t *testing.T) {
	if got := RequestIDFrom(context.Background()); got != "" {
		t.Errorf("RequestIDFrom(empty) = %q, want empty", got)
	}
	// An empty ID is not stored.
	ctx := WithRequestID(context.Background(), "")
	if got := RequestIDFrom(ctx); got != "" {
		t.Errorf("RequestIDFrom after empty WithRequestID = %q", got)
	}
	ctx = WithRequestID(context.Background(), "r-1")
	if got := RequestIDFrom(ctx); got != "r-1" {
		t.Errorf("RequestIDFrom = %q, want r-1", got)
	}
}
