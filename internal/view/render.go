// Package view renders the HTML surface: every handler loads what it
// needs through the gateway, maps failures onto inline or full-panel
// errors, and renders inside the shell the route table resolved.
package view

import (
	"context"
	"errors"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/route"
	"github.com/gin-gonic/gin"
)

// backendCtx is the request context with the session's bearer token
// attached, ready for gateway calls.
func backendCtx(c *gin.Context) context.Context {
	snap := middleware.GetSession(c)
	return gateway.WithBearer(c.Request.Context(), snap.Token)
}

// page assembles the data every template expects: the session snapshot
// for the chrome, navbar suppression, and any pending flash message.
func page(c *gin.Context, title string, data gin.H) gin.H {
	if data == nil {
		data = gin.H{}
	}
	snap := middleware.GetSession(c)
	data["Title"] = title
	data["Session"] = snap
	data["LoggedIn"] = !snap.Anonymous()
	data["ShowNavbar"] = !route.HideNavbar(c.Request.URL.Path)
	switch middleware.GetLayout(c) {
	case route.LayoutAdminShell:
		data["Shell"] = "admin"
	case route.LayoutTeacherShell:
		data["Shell"] = "teacher"
	}
	if msg := response.PopFlash(c); msg != "" {
		data["Flash"] = msg
	}
	return data
}

// loadFailed renders the full-panel load error. Client errors keep their
// actionable message; everything else gets the generic wording, with a
// retry offered only for transient (server/network) failures.
func loadFailed(c *gin.Context, err error) {
	switch gateway.KindOf(err) {
	case gateway.KindClient:
		response.ErrorPage(c, statusOf(err), gateway.Message(err), false)
	case gateway.KindServer:
		response.ErrorPage(c, statusOf(err), "Server error. Please try again later.", true)
	default:
		response.ErrorPage(c, statusOf(err), "Network error. Please check your connection.", true)
	}
}

func statusOf(err error) int {
	var ge *gateway.Error
	if errors.As(err, &ge) && ge.Status > 0 {
		return ge.Status
	}
	return 502
}
