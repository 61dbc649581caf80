package controller

import (
	"strings"

	"github.com/khangviet/storefront/internal/dto"
	localmiddleware "github.com/khangviet/storefront/internal/middleware"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type AuthController struct {
	auth service.AuthService
}

func CreateAuthController(g *echo.Group, auth service.AuthService) {
	c := AuthController{auth: auth}

	g.POST("/auth/login", c.Login)
	g.POST("/auth/logout", c.Logout)
	g.GET("/auth/me", c.Me)
}

func (c *AuthController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	var missing []string
	if strings.TrimSpace(payload.Email) == "" {
		missing = append(missing, "email")
	}
	if payload.Password == "" {
		missing = append(missing, "password")
	}
	if len(missing) > 0 {
		return response.WriteErrorResponse(e, errs.NewValidationError(missing...), nil)
	}

	session, err := c.auth.Login(e.Request().Context(), localmiddleware.SessionID(e), strings.TrimSpace(payload.Email), payload.Password)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged in", session)
}

func (c *AuthController) Logout(e echo.Context) error {
	if err := c.auth.Logout(e.Request().Context(), localmiddleware.SessionID(e)); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "logged out", nil)
}

func (c *AuthController) Me(e echo.Context) error {
	user, err := c.auth.Me(e.Request().Context(), localmiddleware.SessionID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", user)
}

type SessionController struct {
	sessions service.SessionService
}

func CreateSessionController(g *echo.Group, sessions service.SessionService) {
	c := SessionController{sessions: sessions}

	g.GET("/session", c.GetSession)
	g.POST("/session/splash", c.MarkSplashShown)
}

func (c *SessionController) GetSession(e echo.Context) error {
	return response.WriteSuccessResponse(e, "", c.sessions.State(e.Request().Context(), localmiddleware.SessionID(e)))
}

func (c *SessionController) MarkSplashShown(e echo.Context) error {
	sessionID := localmiddleware.SessionID(e)
	c.sessions.MarkSplashShown(sessionID)

	return response.WriteSuccessResponse(e, "", c.sessions.State(e.Request().Context(), sessionID))
}
