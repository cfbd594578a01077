package middleware

import (
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/session"
	"github.com/gin-gonic/gin"
)

const (
	// ContextKeySession is the Gin context key for the session snapshot.
	ContextKeySession = "session"
	// ContextKeySessionID is the Gin context key for the raw session id.
	ContextKeySessionID = "session_id"
)

// ResolveSession reads the session cookie and loads a fresh snapshot from
// the store on every request. There is no cross-request caching: a logout
// elsewhere is observed on the next navigation, never reactively. Missing,
// invalid, or expired cookies all resolve to Anonymous.
func ResolveSession(store *session.Store, codec *session.CookieCodec) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := session.Snapshot{Role: model.RoleAnonymous}
		sid := ""

		if raw, err := c.Cookie(session.CookieName); err == nil && raw != "" {
			if decoded, err := codec.Decode(raw); err == nil {
				sid = decoded
				snap = store.Current(c.Request.Context(), sid)
			}
		}

		c.Set(ContextKeySession, snap)
		c.Set(ContextKeySessionID, sid)
		c.Next()
	}
}

// GetSession retrieves the session snapshot resolved for this request.
func GetSession(c *gin.Context) session.Snapshot {
	val, exists := c.Get(ContextKeySession)
	if !exists {
		return session.Snapshot{Role: model.RoleAnonymous}
	}
	snap, ok := val.(session.Snapshot)
	if !ok {
		return session.Snapshot{Role: model.RoleAnonymous}
	}
	return snap
}

// GetSessionID retrieves the raw session id, "" when logged out.
func GetSessionID(c *gin.Context) string {
	return c.GetString(ContextKeySessionID)
}
