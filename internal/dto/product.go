package dto

import "github.com/khangviet/storefront/internal/domain"

type OptionChoiceRecord struct {
	Label         string  `json:"label"`
	PriceModifier float64 `json:"price_modifier"`
}

type OptionGroupRecord struct {
	Name    string               `json:"name"`
	Choices []OptionChoiceRecord `json:"choices"`
}

// ProductRecord is a product as the backend serves it.
type ProductRecord struct {
	MongoID     string              `json:"_id,omitempty"`
	ID          string              `json:"id,omitempty"`
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Price       float64             `json:"price"`
	Images      []string            `json:"images"`
	ImageURL    string              `json:"image_url,omitempty"`
	CategoryID  string              `json:"category_id"`
	Category    string              `json:"category"`
	Description string              `json:"description"`
	Type        string              `json:"type"`
	Options     []OptionGroupRecord `json:"options"`
}

func (r ProductRecord) ToDomain() domain.Product {
	images := append([]string{}, r.Images...)
	if len(images) == 0 && r.ImageURL != "" {
		images = []string{r.ImageURL}
	}

	productType := domain.ProductType(r.Type)
	if !productType.Valid() {
		productType = domain.ProductTypeReady
	}

	options := make([]domain.OptionGroup, 0, len(r.Options))
	for _, g := range r.Options {
		choices := make([]domain.OptionChoice, 0, len(g.Choices))
		for _, c := range g.Choices {
			choices = append(choices, domain.OptionChoice{Label: c.Label, PriceModifier: c.PriceModifier})
		}
		options = append(options, domain.OptionGroup{Name: g.Name, Choices: choices})
	}

	return domain.Product{
		ID:          recordID(r.MongoID, r.ID),
		Name:        r.Name,
		Slug:        r.Slug,
		Price:       r.Price,
		Images:      images,
		CategoryID:  r.CategoryID,
		Category:    r.Category,
		Description: r.Description,
		Type:        productType,
		Options:     options,
	}
}

func ProductsToDomain(records []ProductRecord) []domain.Product {
	products := make([]domain.Product, 0, len(records))
	for _, r := range records {
		products = append(products, r.ToDomain())
	}
	return products
}

// ProductPayload is the create/update body sent to the backend.
type ProductPayload struct {
	Name        string              `json:"name"`
	Slug        string              `json:"slug"`
	Price       float64             `json:"price"`
	Images      []string            `json:"images"`
	CategoryID  string              `json:"category_id,omitempty"`
	Category    string              `json:"category,omitempty"`
	Description string              `json:"description,omitempty"`
	Type        string              `json:"type"`
	Options     []OptionGroupRecord `json:"options"`
}

func NewProductPayload(p domain.Product) ProductPayload {
	options := make([]OptionGroupRecord, 0, len(p.Options))
	for _, g := range p.Options {
		choices := make([]OptionChoiceRecord, 0, len(g.Choices))
		for _, c := range g.Choices {
			choices = append(choices, OptionChoiceRecord{Label: c.Label, PriceModifier: c.PriceModifier})
		}
		options = append(options, OptionGroupRecord{Name: g.Name, Choices: choices})
	}

	images := p.Images
	if images == nil {
		images = []string{}
	}

	return ProductPayload{
		Name:        p.Name,
		Slug:        p.Slug,
		Price:       p.Price,
		Images:      images,
		CategoryID:  p.CategoryID,
		Category:    p.Category,
		Description: p.Description,
		Type:        string(p.Type),
		Options:     options,
	}
}

type CategoryRecord struct {
	MongoID      string `json:"_id,omitempty"`
	ID           string `json:"id,omitempty"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	ProductCount int    `json:"product_count"`
}

func (r CategoryRecord) ToDomain() domain.Category {
	return domain.Category{ID: recordID(r.MongoID, r.ID), Name: r.Name, Slug: r.Slug, ProductCount: r.ProductCount}
}

func CategoriesToDomain(records []CategoryRecord) []domain.Category {
	categories := make([]domain.Category, 0, len(records))
	for _, r := range records {
		categories = append(categories, r.ToDomain())
	}
	return categories
}

type CategoryPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}
