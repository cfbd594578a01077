package view

import (
	"net/http"

	"github.com/MalithSamaradiwakara/frontend/internal/gateway"
	"github.com/MalithSamaradiwakara/frontend/internal/middleware"
	"github.com/MalithSamaradiwakara/frontend/internal/model"
	"github.com/MalithSamaradiwakara/frontend/internal/response"
	"github.com/MalithSamaradiwakara/frontend/internal/session"
	"github.com/MalithSamaradiwakara/frontend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// AuthHandler owns login, logout, and registration entry points.
type AuthHandler struct {
	backend *gateway.Client
	store   *session.Store
	codec   *session.CookieCodec
	log     zerolog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(backend *gateway.Client, store *session.Store, codec *session.CookieCodec, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{backend: backend, store: store, codec: codec, log: log}
}

// LoginPage renders the credential form.
// GET /login
func (h *AuthHandler) LoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", page(c, "Login", gin.H{
		"Redirect": c.Query("redirect"),
	}))
}

// LoginSubmit authenticates against the backend and establishes the
// session. For students, a secondary lookup resolves the studentId; if it
// fails, the session stands but the user stays on the login page with an
// error instead of being navigated onward.
// POST /login
func (h *AuthHandler) LoginSubmit(c *gin.Context) {
	var creds model.LoginRequest
	if fields := validator.Bind(c, &creds); fields != nil {
		c.HTML(http.StatusBadRequest, "login.html", page(c, "Login", gin.H{
			"Fields": fields,
			"Form":   creds,
		}))
		return
	}

	seed, err := h.backend.Login(c.Request.Context(), creds)
	if err != nil {
		status := http.StatusUnauthorized
		msg := gateway.Message(err)
		if gateway.KindOf(err) != gateway.KindClient {
			status = http.StatusBadGateway
			msg = "Login failed. Please try again later."
		}
		c.HTML(status, "login.html", page(c, "Login", gin.H{
			"Error": msg,
			"Form":  creds,
		}))
		return
	}

	sid, err := h.store.Establish(c.Request.Context(), seed)
	if err != nil {
		// Covers ErrMalformedSession: the login response was unusable,
		// so no session exists at all.
		h.log.Error().Err(err).Msg("session establish failed")
		c.HTML(http.StatusBadGateway, "login.html", page(c, "Login", gin.H{
			"Error": "Invalid response format from server",
			"Form":  creds,
		}))
		return
	}

	cookie, err := h.codec.Encode(sid)
	if err != nil {
		h.log.Error().Err(err).Msg("session cookie encode failed")
		c.HTML(http.StatusInternalServerError, "login.html", page(c, "Login", gin.H{
			"Error": "Login failed. Please try again.",
		}))
		return
	}
	c.SetCookie(session.CookieName, cookie, 0, "/", "", false, true)

	role := model.ParseRole(seed.Role)

	// Students carry a secondary id resolved through a follow-up call.
	// The session survives a failed lookup, but the stricter behavior
	// applies: surface the error here rather than navigating onward.
	if role == model.RoleStudent {
		details, err := h.backend.LoginDetails(gateway.WithBearer(c.Request.Context(), seed.Token), seed.ActorID)
		if err != nil || details.StudentID == "" {
			h.log.Warn().Err(err).Str("actor_id", seed.ActorID).Msg("studentId resolution failed")
			c.HTML(http.StatusOK, "login.html", page(c, "Login", gin.H{
				"Error": "Logged in, but your student record could not be resolved. Please try again.",
			}))
			return
		}
		if err := h.store.SetStudentID(c.Request.Context(), sid, details.StudentID); err != nil {
			h.log.Warn().Err(err).Msg("studentId persist failed")
		}
	}

	if redirect := c.PostForm("redirect"); redirect != "" {
		response.Redirect(c, redirect)
		return
	}
	switch role {
	case model.RoleStudent:
		response.Redirect(c, "/student/dashboard")
	case model.RoleTeacher:
		response.Redirect(c, "/teacher/dashboard")
	case model.RoleAdmin:
		response.Redirect(c, "/admin")
	default:
		response.Redirect(c, "/")
	}
}

// Logout clears the session and the cookie; both are idempotent.
// POST /logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid := middleware.GetSessionID(c); sid != "" {
		h.store.Clear(c.Request.Context(), sid)
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	response.Redirect(c, "/")
}

// RegisterPage renders the account-type selection page.
// GET /register
func (h *AuthHandler) RegisterPage(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", page(c, "Register", nil))
}
