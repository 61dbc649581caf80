package controller

import (
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

type ShopController struct {
	shop service.ShopService
}

func CreateShopController(g *echo.Group, shop service.ShopService) {
	c := ShopController{shop: shop}

	g.GET("/shop/categories", c.GetCategories)
	g.GET("/shop/products", c.GetProducts)
	g.GET("/shop/products/:id", c.GetProduct)
	g.POST("/shop/products/:id/quote", c.QuoteProduct)
}

func (c *ShopController) GetCategories(e echo.Context) error {
	categories, err := c.shop.Categories(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", categories)
}

func (c *ShopController) GetProducts(e echo.Context) error {
	filter := service.CatalogFilter{
		CategoryID: e.QueryParam("category_id"),
		Search:     e.QueryParam("q"),
	}

	products, err := c.shop.Browse(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", products)
}

func (c *ShopController) GetProduct(e echo.Context) error {
	product, err := c.shop.Product(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", product)
}

func (c *ShopController) QuoteProduct(e echo.Context) error {
	payload := dto.QuoteRequest{}
	if err := e.Bind(&payload); err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "QuoteProduct").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	cfg, err := c.shop.Quote(e.Request().Context(), e.Param("id"), payload.Selections)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", dto.NewQuoteResponse(cfg))
}
