package auth

import (
	"net/http"

	"github.com/gorilla/sessions"

	"github.com/ghuser/inventree/pkg/httpx"
	"github.com/ghuser/inventree/pkg/logger"
)

const sessionName = "inventree_session"
const sessionActorKey = "actor"

// RequireActor is a chi middleware that enforces authentication via session
// cookies. It reads the session cookie, extracts the actor name, and injects
// it into the request context so mutations can attribute audit entries.
// Returns 401 Unauthorized if the session is missing, invalid, or lacks an
// actor.
//
// After this middleware, handlers can safely call auth.ActorFromCtx(r.Context()).
func RequireActor(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			actor, ok := session.Values[sessionActorKey].(string)
			if !ok || actor == "" {
				log.WarnContext(r.Context(), "session missing actor")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithActor(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
