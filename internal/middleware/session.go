package middleware

import (
	"net/http"

	"github.com/khangviet/storefront/config"
	backendapi "github.com/khangviet/storefront/internal/infrastructure/backend-api"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/oklog/ulid/v2"
)

const (
	SessionIDKey = "session_id"
	AdminRole    = "admin"
)

// Session issues the session cookie on first contact and scopes backend
// calls in the request context to the session's tokens.
func Session(conf config.SessionConfig, secure bool, auth service.AuthService, sessions service.SessionService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			sessionID := ""
			if cookie, err := c.Cookie(conf.CookieName); err == nil {
				if _, err := ulid.ParseStrict(cookie.Value); err == nil {
					sessionID = cookie.Value
				}
			}

			if sessionID == "" {
				sessionID = ulid.Make().String()
				c.SetCookie(&http.Cookie{
					Name:     conf.CookieName,
					Value:    sessionID,
					Path:     "/",
					HttpOnly: true,
					Secure:   secure,
					SameSite: http.SameSiteLaxMode,
				})
			}

			c.Set(SessionIDKey, sessionID)
			sessions.Touch(sessionID)

			ctx := backendapi.ContextWithTokenStore(c.Request().Context(), auth.TokenStore(sessionID))
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// SessionID is the id set by Session, or "" outside of it.
func SessionID(c echo.Context) string {
	sessionID, _ := c.Get(SessionIDKey).(string)
	return sessionID
}

// RequireAdmin rejects sessions without admin credentials with a login redirect.
func RequireAdmin(auth service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			creds := auth.Credentials(c.Request().Context(), SessionID(c))
			if !creds.Authenticated() || creds.Role != AdminRole {
				return response.WriteErrorResponse(c, errs.ErrNotLoggedIn, nil)
			}
			return next(c)
		}
	}
}
