package backendapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
)

func (c *Client) ListProducts(ctx context.Context) ([]domain.Product, error) {
	var records []dto.ProductRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/products/"}, &records); err != nil {
		return nil, err
	}
	return dto.ProductsToDomain(records), nil
}

func (c *Client) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	var record dto.ProductRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/products/" + url.PathEscape(id)}, &record); err != nil {
		return domain.Product{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) CreateProduct(ctx context.Context, p domain.Product) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/products/", body: dto.NewProductPayload(p)}, nil)
}

func (c *Client) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/products/" + url.PathEscape(id), body: dto.NewProductPayload(p)}, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/products/" + url.PathEscape(id)}, nil)
}

func (c *Client) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var records []dto.CategoryRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/categories/"}, &records); err != nil {
		return nil, err
	}
	return dto.CategoriesToDomain(records), nil
}

func (c *Client) CreateCategory(ctx context.Context, cat domain.Category) error {
	body := dto.CategoryPayload{Name: cat.Name, Slug: cat.Slug}
	return c.do(ctx, request{method: http.MethodPost, path: "/categories/", body: body}, nil)
}

func (c *Client) UpdateCategory(ctx context.Context, id string, cat domain.Category) error {
	body := dto.CategoryPayload{Name: cat.Name, Slug: cat.Slug}
	return c.do(ctx, request{method: http.MethodPut, path: "/categories/" + url.PathEscape(id), body: body}, nil)
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	return c.do(ctx, request{method: http.MethodDelete, path: "/categories/" + url.PathEscape(id)}, nil)
}

// ListProjects filters by company when companySlug is set.
func (c *Client) ListProjects(ctx context.Context, companySlug string) ([]domain.Project, error) {
	req := request{method: http.MethodGet, path: "/projects/"}
	if companySlug != "" {
		req.query = url.Values{"company_slug": []string{companySlug}}
	}

	var records []dto.ProjectRecord
	if err := c.do(ctx, req, &records); err != nil {
		return nil, err
	}
	return dto.ProjectsToDomain(records), nil
}

func (c *Client) FeaturedProjects(ctx context.Context) ([]domain.Project, error) {
	var records []dto.ProjectRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/projects/featured"}, &records); err != nil {
		return nil, err
	}
	return dto.ProjectsToDomain(records), nil
}

func (c *Client) GetProject(ctx context.Context, slug string) (domain.Project, error) {
	var record dto.ProjectRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/projects/" + url.PathEscape(slug)}, &record); err != nil {
		return domain.Project{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) CreateProject(ctx context.Context, p domain.Project) error {
	return c.do(ctx, request{method: http.MethodPost, path: "/projects/", body: dto.NewProjectPayload(p)}, nil)
}

func (c *Client) UpdateProject(ctx context.Context, id string, p domain.Project) error {
	return c.do(ctx, request{method: http.MethodPut, path: "/projects/" + url.PathEscape(id), body: dto.NewProjectPayload(p)}, nil)
}

func (c *Client) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	var records []dto.CompanyRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/companies"}, &records); err != nil {
		return nil, err
	}
	return dto.CompaniesToDomain(records), nil
}

func (c *Client) CreateCompany(ctx context.Context, co domain.Company) error {
	body := dto.CompanyPayload{Name: co.Name, Slug: co.Slug, LogoURL: co.LogoURL}
	return c.do(ctx, request{method: http.MethodPost, path: "/companies", body: body}, nil)
}

func (c *Client) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (domain.Order, error) {
	var record dto.OrderRecord
	if err := c.do(ctx, request{method: http.MethodPost, path: "/orders/", body: req}, &record); err != nil {
		return domain.Order{}, err
	}
	return record.ToDomain(), nil
}

func (c *Client) ListOrders(ctx context.Context, status, search string) ([]domain.Order, error) {
	query := url.Values{}
	if status != "" {
		query.Set("status", status)
	}
	if search != "" {
		query.Set("search", search)
	}

	var records []dto.OrderRecord
	if err := c.do(ctx, request{method: http.MethodGet, path: "/orders/", query: query}, &records); err != nil {
		return nil, err
	}
	return dto.OrdersToDomain(records), nil
}

func (c *Client) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	var record dto.OrderRecord
	req := request{method: http.MethodPatch, path: "/orders/" + url.PathEscape(id), body: dto.OrderStatusRequest{Status: status}}
	if err := c.do(ctx, req, &record); err != nil {
		return domain.Order{}, err
	}
	return record.ToDomain(), nil
}
