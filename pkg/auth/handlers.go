package auth

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/gorilla/sessions"

	"github.com/ghuser/inventree/pkg/httpx"
	"github.com/ghuser/inventree/pkg/logger"
)

// loginRequest is the body of POST /auth/session. Authentication itself is
// delegated to the deployment's SSO or reverse proxy; this endpoint only
// binds the already-authenticated identity to a session cookie so mutations
// can be attributed in the audit trail.
type loginRequest struct {
	Username string `json:"username"`
}

// LoginHandler creates a session carrying the actor identity.
func LoginHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			httpx.JSONError(w, http.StatusBadRequest, "invalid JSON")
			return
		}
		actor := strings.TrimSpace(req.Username)
		if actor == "" {
			httpx.JSONError(w, http.StatusUnprocessableEntity, "username is required")
			return
		}

		session, err := store.Get(r, sessionName)
		if err != nil {
			// A tampered cookie yields a fresh session from the store; any
			// other error is a backend failure.
			log.ErrorContext(r.Context(), "session load failed", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
			return
		}
		session.Values[sessionActorKey] = actor
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "session save failed", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
			return
		}

		httpx.JSON(w, http.StatusOK, map[string]string{"actor": actor})
	}
}

// LogoutHandler destroys the current session.
func LogoutHandler(store sessions.Store, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, err := store.Get(r, sessionName)
		if err != nil {
			log.WarnContext(r.Context(), "session load failed on logout", "error", err)
		}
		session.Options.MaxAge = -1
		if err := session.Save(r, w); err != nil {
			log.ErrorContext(r.Context(), "session destroy failed", "error", err)
			httpx.JSONError(w, http.StatusInternalServerError, "session unavailable")
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
