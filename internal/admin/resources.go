package admin

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/errs"
)

const (
	ResourceProducts   = "products"
	ResourceCategories = "categories"
	ResourceProjects   = "projects"
	ResourceCompanies  = "companies"
)

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func validation(fields []string) error {
	if len(fields) == 0 {
		return nil
	}
	return errs.NewValidationError(fields...)
}

type ProductResource struct {
	backend ProductBackend
}

func (r ProductResource) Name() string { return ResourceProducts }

func (r ProductResource) List(ctx context.Context) ([]domain.Product, error) {
	return r.backend.ListProducts(ctx)
}

func (r ProductResource) Create(ctx context.Context, p domain.Product) error {
	return r.backend.CreateProduct(ctx, p)
}

func (r ProductResource) Update(ctx context.Context, id string, p domain.Product) error {
	return r.backend.UpdateProduct(ctx, id, p)
}

func (r ProductResource) Delete(ctx context.Context, id string) error {
	return r.backend.DeleteProduct(ctx, id)
}

func (r ProductResource) Blank() domain.Product {
	return domain.Product{Type: domain.ProductTypeReady, Images: []string{}, Options: []domain.OptionGroup{}}
}

func (r ProductResource) Validate(p domain.Product) error {
	var fields []string
	if blank(p.Name) {
		fields = append(fields, "name")
	}
	if p.Price < 0 {
		fields = append(fields, "price")
	}
	if !p.Type.Valid() {
		fields = append(fields, "type")
	}
	for _, g := range p.Options {
		if blank(g.Name) {
			fields = append(fields, "options")
			break
		}
	}
	return validation(fields)
}

func (r ProductResource) Fields(p *domain.Product) Fields {
	if p.Images == nil {
		p.Images = []string{}
	}
	return Fields{ID: p.ID, Name: p.Name, Slug: &p.Slug, Images: &p.Images}
}

type CategoryResource struct {
	backend CategoryBackend
}

func (r CategoryResource) Name() string { return ResourceCategories }

func (r CategoryResource) List(ctx context.Context) ([]domain.Category, error) {
	return r.backend.ListCategories(ctx)
}

func (r CategoryResource) Create(ctx context.Context, c domain.Category) error {
	return r.backend.CreateCategory(ctx, c)
}

func (r CategoryResource) Update(ctx context.Context, id string, c domain.Category) error {
	return r.backend.UpdateCategory(ctx, id, c)
}

func (r CategoryResource) Delete(ctx context.Context, id string) error {
	return r.backend.DeleteCategory(ctx, id)
}

func (r CategoryResource) Blank() domain.Category {
	return domain.Category{}
}

func (r CategoryResource) Validate(c domain.Category) error {
	var fields []string
	if blank(c.Name) {
		fields = append(fields, "name")
	}
	if blank(c.Slug) {
		fields = append(fields, "slug")
	}
	return validation(fields)
}

func (r CategoryResource) Fields(c *domain.Category) Fields {
	return Fields{ID: c.ID, Name: c.Name, Slug: &c.Slug}
}

// ProjectResource cannot delete: the backend has no such endpoint.
type ProjectResource struct {
	backend ProjectBackend
}

func (r ProjectResource) Name() string { return ResourceProjects }

func (r ProjectResource) List(ctx context.Context) ([]domain.Project, error) {
	return r.backend.ListProjects(ctx, "")
}

func (r ProjectResource) Create(ctx context.Context, p domain.Project) error {
	return r.backend.CreateProject(ctx, p)
}

func (r ProjectResource) Update(ctx context.Context, id string, p domain.Project) error {
	return r.backend.UpdateProject(ctx, id, p)
}

func (r ProjectResource) Delete(ctx context.Context, id string) error {
	return errs.ErrNotSupported
}

func (r ProjectResource) Blank() domain.Project {
	return domain.Project{ImageURLs: []string{}}
}

func (r ProjectResource) Validate(p domain.Project) error {
	var fields []string
	if blank(p.Name) {
		fields = append(fields, "name")
	}
	if blank(p.Slug) {
		fields = append(fields, "slug")
	}
	if blank(p.CompanySlug) {
		fields = append(fields, "company_slug")
	}
	if len(p.ImageURLs) == 0 {
		fields = append(fields, "image_urls")
	}
	return validation(fields)
}

// NormalizePatch accepts completion_date as a calendar day, the format the
// date picker emits, as well as RFC 3339. An empty string clears it.
func (r ProjectResource) NormalizePatch(fields map[string]json.RawMessage) error {
	raw, ok := fields["completion_date"]
	if !ok {
		return nil
	}

	var value string
	if err := json.Unmarshal(raw, &value); err != nil {
		return nil
	}
	if value == "" {
		fields["completion_date"] = json.RawMessage("null")
		return nil
	}

	day, err := time.Parse(time.DateOnly, value)
	if err != nil {
		return nil
	}
	encoded, err := json.Marshal(day)
	if err != nil {
		return err
	}
	fields["completion_date"] = encoded
	return nil
}

func (r ProjectResource) Fields(p *domain.Project) Fields {
	if p.ImageURLs == nil {
		p.ImageURLs = []string{}
	}
	return Fields{ID: p.ID, Name: p.Name, Slug: &p.Slug, Images: &p.ImageURLs}
}

// CompanyResource can only list and create.
type CompanyResource struct {
	backend CompanyBackend
}

func (r CompanyResource) Name() string { return ResourceCompanies }

func (r CompanyResource) List(ctx context.Context) ([]domain.Company, error) {
	return r.backend.ListCompanies(ctx)
}

func (r CompanyResource) Create(ctx context.Context, c domain.Company) error {
	return r.backend.CreateCompany(ctx, c)
}

func (r CompanyResource) Update(ctx context.Context, id string, c domain.Company) error {
	return errs.ErrNotSupported
}

func (r CompanyResource) Delete(ctx context.Context, id string) error {
	return errs.ErrNotSupported
}

func (r CompanyResource) Blank() domain.Company {
	return domain.Company{}
}

func (r CompanyResource) Validate(c domain.Company) error {
	var fields []string
	if blank(c.Name) {
		fields = append(fields, "name")
	}
	if blank(c.Slug) {
		fields = append(fields, "slug")
	}
	return validation(fields)
}

func (r CompanyResource) Fields(c *domain.Company) Fields {
	return Fields{ID: c.ID, Name: c.Name, Slug: &c.Slug}
}
