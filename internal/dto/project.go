package dto

import (
	"time"

	"github.com/khangviet/storefront/internal/domain"
)

type CompanyRecord struct {
	MongoID string `json:"_id,omitempty"`
	ID      string `json:"id,omitempty"`
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url"`
}

func (r CompanyRecord) ToDomain() domain.Company {
	return domain.Company{ID: recordID(r.MongoID, r.ID), Name: r.Name, Slug: r.Slug, LogoURL: r.LogoURL}
}

func CompaniesToDomain(records []CompanyRecord) []domain.Company {
	companies := make([]domain.Company, 0, len(records))
	for _, r := range records {
		companies = append(companies, r.ToDomain())
	}
	return companies
}

type CompanyPayload struct {
	Name    string `json:"name"`
	Slug    string `json:"slug"`
	LogoURL string `json:"logo_url,omitempty"`
}

type ProjectRecord struct {
	MongoID        string   `json:"_id,omitempty"`
	ID             string   `json:"id,omitempty"`
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	CompanySlug    string   `json:"company_slug"`
	Address        string   `json:"address"`
	CompletionDate string   `json:"completion_date"`
	IsFeatured     bool     `json:"is_featured"`
	ImageURLs      []string `json:"image_urls"`
}

func (r ProjectRecord) ToDomain() domain.Project {
	p := domain.Project{
		ID:          recordID(r.MongoID, r.ID),
		Name:        r.Name,
		Slug:        r.Slug,
		CompanySlug: r.CompanySlug,
		Address:     r.Address,
		IsFeatured:  r.IsFeatured,
		ImageURLs:   append([]string{}, r.ImageURLs...),
	}
	if t, ok := parseBackendTime(r.CompletionDate); ok {
		p.CompletionDate = &t
	}
	return p
}

func ProjectsToDomain(records []ProjectRecord) []domain.Project {
	projects := make([]domain.Project, 0, len(records))
	for _, r := range records {
		projects = append(projects, r.ToDomain())
	}
	return projects
}

// ProjectPayload omits an empty address and sends the completion date as ISO-8601.
type ProjectPayload struct {
	Name           string   `json:"name"`
	Slug           string   `json:"slug"`
	CompanySlug    string   `json:"company_slug"`
	Address        string   `json:"address,omitempty"`
	CompletionDate string   `json:"completion_date,omitempty"`
	IsFeatured     bool     `json:"is_featured"`
	ImageURLs      []string `json:"image_urls"`
}

func NewProjectPayload(p domain.Project) ProjectPayload {
	payload := ProjectPayload{
		Name:        p.Name,
		Slug:        p.Slug,
		CompanySlug: p.CompanySlug,
		Address:     p.Address,
		IsFeatured:  p.IsFeatured,
		ImageURLs:   p.ImageURLs,
	}
	if payload.ImageURLs == nil {
		payload.ImageURLs = []string{}
	}
	if p.CompletionDate != nil && !p.CompletionDate.IsZero() {
		payload.CompletionDate = p.CompletionDate.UTC().Format(time.RFC3339)
	}
	return payload
}
