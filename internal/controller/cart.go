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

type CartController struct {
	cart service.CartService
	shop service.ShopService
}

func CreateCartController(g *echo.Group, cart service.CartService, shop service.ShopService) {
	c := CartController{cart: cart, shop: shop}

	g.GET("/cart", c.GetCart)
	g.POST("/cart/items", c.AddItem)
	g.DELETE("/cart/items/:product_id", c.RemoveItem)
	g.DELETE("/cart", c.ClearCart)
}

func (c *CartController) GetCart(e echo.Context) error {
	cart := c.cart.GetCart(e.Request().Context(), localmiddleware.SessionID(e))
	return response.WriteSuccessResponse(e, "", dto.NewCartResponse(cart))
}

func (c *CartController) AddItem(e echo.Context) error {
	payload := dto.AddToCartRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddItem").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}
	if payload.ProductID == "" {
		return response.WriteErrorResponse(e, errs.NewValidationError("product_id"), nil)
	}

	cart, err := c.shop.QuickAdd(e.Request().Context(), localmiddleware.SessionID(e), payload.ProductID, payload.Selections)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "product added to cart", dto.NewCartResponse(cart))
}

func (c *CartController) RemoveItem(e echo.Context) error {
	cart, err := c.cart.RemoveFromCart(e.Request().Context(), localmiddleware.SessionID(e), e.Param("product_id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.NewCartResponse(cart))
}

func (c *CartController) ClearCart(e echo.Context) error {
	cart, err := c.cart.ClearCart(e.Request().Context(), localmiddleware.SessionID(e))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.NewCartResponse(cart))
}
