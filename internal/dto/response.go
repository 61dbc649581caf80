package dto

import (
	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/pkg/utils"
)

type CartResponse struct {
	Items          []domain.CartItem `json:"items"`
	Count          int               `json:"count"`
	Total          float64           `json:"total"`
	FormattedTotal string            `json:"formatted_total"`
}

func NewCartResponse(cart domain.Cart) CartResponse {
	items := cart.Items
	if items == nil {
		items = []domain.CartItem{}
	}
	return CartResponse{
		Items:          items,
		Count:          cart.Count(),
		Total:          cart.Total(),
		FormattedTotal: utils.FormatVND(cart.Total()),
	}
}

type QuoteResponse struct {
	ProductID string               `json:"product_id"`
	BasePrice float64              `json:"base_price"`
	Selection domain.Selection     `json:"selection"`
	Total     float64              `json:"total"`
	Snapshot  domain.CartProduct   `json:"snapshot"`
	Options   []domain.OptionGroup `json:"options"`
}

func NewQuoteResponse(cfg domain.Configuration) QuoteResponse {
	return QuoteResponse{
		ProductID: cfg.Product.ID,
		BasePrice: cfg.Product.Price,
		Selection: cfg.Selection,
		Total:     cfg.Total(),
		Snapshot:  cfg.CartProduct(),
		Options:   cfg.Product.Options,
	}
}

type SessionResponse struct {
	SplashShown   bool   `json:"splash_shown"`
	CartCount     int    `json:"cart_count"`
	Authenticated bool   `json:"authenticated"`
	Role          string `json:"role,omitempty"`
	Email         string `json:"email,omitempty"`
}

type UploadResponse struct {
	URLs     []string    `json:"urls"`
	Uploaded int         `json:"uploaded"`
	Failed   int         `json:"failed"`
	Failures []string    `json:"failures,omitempty"`
	Editor   interface{} `json:"editor,omitempty"`
}
