package domain

import (
	"fmt"

	"github.com/khangviet/storefront/pkg/errs"
	"github.com/shopspring/decimal"
)

type ProductType string

const (
	ProductTypeReady  ProductType = "ready"
	ProductTypeCustom ProductType = "custom"
)

func (t ProductType) Valid() bool {
	return t == ProductTypeReady || t == ProductTypeCustom
}

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Slug        string        `json:"slug"`
	Price       float64       `json:"price"`
	Images      []string      `json:"images"`
	CategoryID  string        `json:"category_id"`
	Category    string        `json:"category"`
	Description string        `json:"description"`
	Type        ProductType   `json:"type"`
	Options     []OptionGroup `json:"options"`
}

type OptionGroup struct {
	Name    string         `json:"name"`
	Choices []OptionChoice `json:"choices"`
}

type OptionChoice struct {
	Label         string  `json:"label"`
	PriceModifier float64 `json:"price_modifier"`
}

// Cover is the first image, or "" when the product has none.
func (p Product) Cover() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p Product) group(name string) (OptionGroup, bool) {
	for _, g := range p.Options {
		if g.Name == name {
			return g, true
		}
	}
	return OptionGroup{}, false
}

// Selection maps an option group name to its chosen choice.
type Selection map[string]OptionChoice

// DefaultSelection picks the first choice of every group that has one.
func DefaultSelection(p Product) Selection {
	sel := Selection{}
	for _, g := range p.Options {
		if len(g.Choices) > 0 {
			sel[g.Name] = g.Choices[0]
		}
	}
	return sel
}

// Select returns a copy of s with only group replaced.
func (s Selection) Select(p Product, group, label string) (Selection, error) {
	g, ok := p.group(group)
	if !ok {
		return nil, fmt.Errorf("unknown option group %q: %w", group, errs.ErrClient)
	}

	for _, c := range g.Choices {
		if c.Label == label {
			next := make(Selection, len(s)+1)
			for k, v := range s {
				next[k] = v
			}
			next[group] = c
			return next, nil
		}
	}

	return nil, fmt.Errorf("unknown choice %q for %q: %w", label, group, errs.ErrClient)
}

// TotalPrice is base plus every selected modifier.
func TotalPrice(base float64, sel Selection) float64 {
	total := decimal.NewFromFloat(base)
	for _, c := range sel {
		total = total.Add(decimal.NewFromFloat(c.PriceModifier))
	}
	return total.InexactFloat64()
}

// Configuration is a product together with the choices made for it.
type Configuration struct {
	Product   Product   `json:"product"`
	Selection Selection `json:"selection"`
}

// NewConfiguration overlays picks (group name to choice label) on the defaults.
func NewConfiguration(p Product, picks map[string]string) (Configuration, error) {
	sel := DefaultSelection(p)
	for group, label := range picks {
		next, err := sel.Select(p, group, label)
		if err != nil {
			return Configuration{}, err
		}
		sel = next
	}
	return Configuration{Product: p, Selection: sel}, nil
}

func (c Configuration) Total() float64 {
	return TotalPrice(c.Product.Price, c.Selection)
}

// CartProduct is the snapshot added to the cart, priced with the modifiers.
func (c Configuration) CartProduct() CartProduct {
	return CartProduct{
		ID:       c.Product.ID,
		Name:     c.Product.Name,
		Price:    c.Total(),
		ImageURL: c.Product.Cover(),
	}
}
