package controller

import (
	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/service"
	"github.com/khangviet/storefront/pkg/response"
	"github.com/labstack/echo/v4"
)

type GalleryController struct {
	gallery service.GalleryService
}

func CreateGalleryController(g *echo.Group, gallery service.GalleryService) {
	c := GalleryController{gallery: gallery}

	g.GET("/projects", c.GetProjects)
	g.GET("/projects/featured", c.GetFeaturedProjects)
	g.GET("/projects/:slug", c.GetProject)
	g.GET("/companies", c.GetCompanies)
}

func (c *GalleryController) GetProjects(e echo.Context) error {
	cards, err := c.gallery.Projects(e.Request().Context(), e.QueryParam("company"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", cards)
}

func (c *GalleryController) GetFeaturedProjects(e echo.Context) error {
	cards, err := c.gallery.Featured(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", cards)
}

type projectDetail struct {
	Project domain.Project     `json:"project"`
	Card    domain.GalleryCard `json:"card"`
}

func (c *GalleryController) GetProject(e echo.Context) error {
	project, card, err := c.gallery.Project(e.Request().Context(), e.Param("slug"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", projectDetail{Project: project, Card: card})
}

func (c *GalleryController) GetCompanies(e echo.Context) error {
	companies, err := c.gallery.Companies(e.Request().Context())
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, "", companies)
}
