package middleware

import (
	"context"
	"net/http"
	"time"

	"fruit_trio/pkg/token"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const sessionCookieName = "session_id"

type ctxKey struct{}

// Session Достаёт ID сессии из подписанной cookie, если её нет или она протухла - открывает новую
func Session(secretKey []byte, ttl time.Duration, log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := ""
			if c, err := r.Cookie(sessionCookieName); err == nil {
				claims, err := token.VerifySessionToken(c.Value, secretKey)
				if err == nil {
					sessionID = claims.ID
				} else {
					log.Debug("session cookie rejected", zap.Error(err))
				}
			}

			if sessionID == "" {
				sessionID = uuid.NewString()
				signed, err := token.GenerateSessionToken(sessionID, secretKey, ttl)
				if err != nil {
					log.Error("failed to sign session token", zap.Error(err))
					http.Error(w, "session failed", http.StatusInternalServerError)
					return
				}
				setSessionIDCookie(w, signed, ttl)
			}

			ctx := context.WithValue(r.Context(), ctxKey{}, sessionID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(ctxKey{}).(string)
	return id, ok && id != ""
}

// setSessionIDCookie устанавливает cookie с session_id
func setSessionIDCookie(w http.ResponseWriter, value string, ttl time.Duration) {
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookieName,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteStrictMode,
		MaxAge:   int(ttl.Seconds()),
	})
}
