package dto

import "github.com/khangviet/storefront/internal/domain"

type CheckoutRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Note    string `json:"note"`
}

func (r CheckoutRequest) CustomerInfo() domain.CustomerInfo {
	return domain.CustomerInfo{Name: r.Name, Phone: r.Phone, Email: r.Email, Address: r.Address, Note: r.Note}
}

type AddToCartRequest struct {
	ProductID  string            `json:"product_id"`
	Selections map[string]string `json:"selections"`
}

type QuoteRequest struct {
	Selections map[string]string `json:"selections"`
}

type ImageReorderRequest struct {
	Images []string `json:"images"`
}

// PointerTravel is how far the pointer moved between press and release.
type PointerTravel struct {
	DX float64 `json:"dx"`
	DY float64 `json:"dy"`
}

type ImageMoveRequest struct {
	Active string         `json:"active"`
	Over   string         `json:"over"`
	Travel *PointerTravel `json:"travel,omitempty"`
}

type ImageRemoveRequest struct {
	URL string `json:"url" query:"url"`
}

type OrderStatusUpdateRequest struct {
	Status string `json:"status"`
}

type CalendarQuery struct {
	View     string `query:"view"`
	ViewDate string `query:"view_date"`
	Value    string `query:"value"`
	MaxDate  string `query:"max_date"`
	Action   string `query:"action"`
	Year     int    `query:"year"`
	Month    int    `query:"month"`
	Day      string `query:"day"`
}
