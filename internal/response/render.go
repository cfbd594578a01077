// Package response holds the cross-cutting HTTP helpers: request tracing,
// the full-panel error page, and one-shot flash messages.
package response

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
)

const flashCookie = "brightway_flash"

// ErrorPage renders the full-panel error view used for failed data loads.
// Retry controls whether the page offers a retry link back to itself or
// only a "go back" action (fatal load failures).
func ErrorPage(c *gin.Context, status int, message string, retry bool) {
	c.HTML(status, "error.html", gin.H{
		"Message":   message,
		"Retry":     retry,
		"RetryPath": c.Request.URL.Path,
	})
}

// SetFlash stores a one-shot message shown on the next page render.
func SetFlash(c *gin.Context, message string) {
	c.SetCookie(flashCookie, url.QueryEscape(message), 60, "/", "", false, true)
}

// PopFlash returns and clears the pending flash message, if any.
func PopFlash(c *gin.Context) string {
	raw, err := c.Cookie(flashCookie)
	if err != nil || raw == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	msg, err := url.QueryUnescape(raw)
	if err != nil {
		return ""
	}
	return msg
}

// Redirect is a small wrapper so views read uniformly.
func Redirect(c *gin.Context, target string) {
	c.Redirect(http.StatusSeeOther, target)
}
