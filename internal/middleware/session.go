package middleware

import (
	"net/http"
	"strings"
	"time"

	"taxengine/internal/rates"
	"taxengine/internal/session"
	"taxengine/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session_token"
	SessionHeader = "X-Session-Token"

	ctxSessionID   = "sessionID"
	ctxRateSession = "rateSession"
)

// SetSessionCookie stores the session token as an HttpOnly cookie
func SetSessionCookie(c *gin.Context, token string, ttl time.Duration, secure bool) {
	// Production (cross-origin): SameSiteNoneMode + Secure=true
	// Development (same-site):   SameSiteLaxMode  + Secure=false
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	c.SetSameSite(sameSite)
	c.SetCookie(SessionCookie, token, int(ttl.Seconds()), "/", "", secure, true)
	c.Header(SessionHeader, token)
}

// ClearSessionCookie removes the session cookie
func ClearSessionCookie(c *gin.Context, secure bool) {
	sameSite := http.SameSiteLaxMode
	if secure {
		sameSite = http.SameSiteNoneMode
	}

	c.SetSameSite(sameSite)
	c.SetCookie(SessionCookie, "", -1, "/", "", secure, true)
}

// RequireSession attaches the caller's rate-table session to the request.
// A missing, invalid or expired token silently starts a new session. A token
// past half its lifetime is reissued, so active sessions keep sliding.
func RequireSession(store *session.Store, issuer *session.Issuer, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var (
			id    string
			sess  *rates.Session
			stale bool
		)

		if tokenString := sessionToken(c); tokenString != "" {
			if sid, old, err := issuer.Validate(tokenString); err == nil {
				if s, ok := store.Get(sid); ok {
					id, sess, stale = sid, s, old
				}
			}
		}

		fresh := sess == nil
		if fresh {
			id, sess = store.Create()
		}

		if fresh || stale {
			token, err := issuer.Issue(id)
			if err != nil {
				if fresh {
					store.Delete(id)
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, response.Error(http.StatusInternalServerError, "Failed to start session"))
				return
			}
			SetSessionCookie(c, token, issuer.TTL(), secure)
		}

		c.Set(ctxSessionID, id)
		c.Set(ctxRateSession, sess)
		c.Request = c.Request.WithContext(session.WithID(c.Request.Context(), id))

		c.Next()
	}
}

// RateSession returns the session attached by RequireSession
func RateSession(c *gin.Context) *rates.Session {
	sess, _ := c.MustGet(ctxRateSession).(*rates.Session)
	return sess
}

// SessionID returns the session id attached by RequireSession
func SessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// sessionToken tries the cookie first, then a Bearer header, then X-Session-Token
func sessionToken(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}

	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.Split(authHeader, " ")
		if len(parts) == 2 && parts[0] == "Bearer" {
			return parts[1]
		}
	}

	return strings.TrimSpace(c.GetHeader(SessionHeader))
}
