package response

import (
	"errors"
	"net/http"

	"github.com/khangviet/storefront/pkg/errs"
	"github.com/labstack/echo/v4"
)

// LoginPath is where clients are sent once their session can no longer be refreshed.
const LoginPath = "/login"

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

type ErrorResponse struct {
	Status   string      `json:"status"`
	Message  string      `json:"message"`
	Errors   interface{} `json:"errors"`
	Redirect string      `json:"redirect,omitempty"`
}

func WriteSuccessResponse(c echo.Context, message string, data interface{}) error {
	resp := SuccessResponse{}
	resp.Status = "success"
	resp.Data = data
	resp.Message = message

	return c.JSON(http.StatusOK, resp)
}

func WriteErrorResponse(c echo.Context, err error, errors interface{}) error {
	statusCode := errs.GetErrorStatusCode(err)
	resp := ErrorResponse{}
	resp.Status = "error"
	resp.Message = err.Error()
	resp.Errors = errors

	if requiresLogin(err) {
		resp.Redirect = LoginPath
	}

	return c.JSON(statusCode, resp)
}

func requiresLogin(err error) bool {
	return errors.Is(err, errs.ErrSessionExpired) || errors.Is(err, errs.ErrNotLoggedIn)
}
