package auth

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/itsklemy/cercle-backend/pkg/httpx"
	"github.com/itsklemy/cercle-backend/pkg/logger"
)

const sessionName = "cercle_session"

const (
	sessionMemberIDKey = "member_id"
	sessionCircleIDKey = "circle_id"
)

// RequireMember is a chi middleware that enforces authentication via session cookies.
// It reads the session cookie, extracts the member and circle IDs, and injects them
// into the request context. Returns 401 Unauthorized if the session is missing,
// invalid, or lacks a valid identity.
//
// After this middleware, handlers can safely call auth.MemberIDFromCtx and
// auth.CircleIDFromCtx on r.Context().
func RequireMember(store sessions.Store, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session, err := store.Get(r, sessionName)
			if err != nil {
				log.WarnContext(r.Context(), "invalid session cookie", "error", err)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			memberID, ok := parseSessionUUID(session, sessionMemberIDKey)
			if !ok {
				log.WarnContext(r.Context(), "session missing member_id")
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			circleID, ok := parseSessionUUID(session, sessionCircleIDKey)
			if !ok {
				log.WarnContext(r.Context(), "session missing circle_id", "member_id", memberID)
				httpx.JSON(w, http.StatusUnauthorized, map[string]string{"error": "authentication required"})
				return
			}

			ctx := WithMember(r.Context(), memberID, circleID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func parseSessionUUID(session *sessions.Session, key string) (uuid.UUID, bool) {
	raw, ok := session.Values[key].(string)
	if !ok || raw == "" {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return uuid.Nil, false
	}
	return id, true
}
