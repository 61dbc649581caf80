package controller

import (
	"github.com/khangviet/storefront/internal/dto"
	localmiddleware "github.com/khangviet/storefront/internal/middleware"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type CheckoutController struct {
	checkout service.CheckoutService
}

func CreateCheckoutController(g *echo.Group, checkout service.CheckoutService) {
	c := CheckoutController{checkout: checkout}

	g.POST("/checkout", c.PlaceOrder)
}

// PlaceOrder echoes the submitted form back in the error envelope so the
// client can retry without retyping it.
func (c *CheckoutController) PlaceOrder(e echo.Context) error {
	payload := dto.CheckoutRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "PlaceOrder").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	order, err := c.checkout.PlaceOrder(e.Request().Context(), localmiddleware.SessionID(e), payload.CustomerInfo())
	if err != nil {
		return response.WriteErrorResponse(e, err, payload)
	}

	return response.WriteSuccessResponse(e, "order placed", order)
}
