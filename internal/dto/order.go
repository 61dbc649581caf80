package dto

import "github.com/khangviet/storefront/internal/domain"

type OrderItemRecord struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

// OrderRecord is the backend's flat order document.
type OrderRecord struct {
	MongoID         string            `json:"_id,omitempty"`
	ID              string            `json:"id,omitempty"`
	CustomerName    string            `json:"customer_name"`
	CustomerPhone   string            `json:"customer_phone"`
	CustomerEmail   string            `json:"customer_email"`
	CustomerAddress string            `json:"customer_address"`
	CustomerNote    string            `json:"customer_note"`
	Items           []OrderItemRecord `json:"items"`
	TotalAmount     float64           `json:"total_amount"`
	Status          string            `json:"status"`
	CreatedAt       string            `json:"created_at"`
	UpdatedAt       string            `json:"updated_at"`
}

func (r OrderRecord) ToDomain() domain.Order {
	items := make([]domain.OrderItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, domain.OrderItem{
			ProductID:       it.ProductID,
			ProductName:     it.ProductName,
			Quantity:        it.Quantity,
			PriceAtPurchase: it.PriceAtPurchase,
		})
	}

	status := domain.OrderStatus(r.Status)
	if status == "" {
		status = domain.OrderStatusPending
	}

	order := domain.Order{
		ID: recordID(r.MongoID, r.ID),
		CustomerInfo: domain.CustomerInfo{
			Name:    r.CustomerName,
			Phone:   r.CustomerPhone,
			Email:   r.CustomerEmail,
			Address: r.CustomerAddress,
			Note:    r.CustomerNote,
		},
		Items:       items,
		TotalAmount: r.TotalAmount,
		Status:      status,
	}
	if t, ok := parseBackendTime(r.CreatedAt); ok {
		order.CreatedAt = t
	}
	if t, ok := parseBackendTime(r.UpdatedAt); ok {
		order.UpdatedAt = t
	}
	return order
}

func OrdersToDomain(records []OrderRecord) []domain.Order {
	orders := make([]domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, r.ToDomain())
	}
	return orders
}

type OrderRequestItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type CreateOrderRequest struct {
	CustomerInfo domain.CustomerInfo `json:"customer_info"`
	Items        []OrderRequestItem  `json:"items"`
}

// NewCreateOrderRequest sends only product ids and quantities; the backend prices the order.
func NewCreateOrderRequest(info domain.CustomerInfo, cart domain.Cart) CreateOrderRequest {
	items := make([]OrderRequestItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderRequestItem{ProductID: it.Product.ID, Quantity: it.Quantity})
	}
	return CreateOrderRequest{CustomerInfo: info, Items: items}
}

type OrderStatusRequest struct {
	Status domain.OrderStatus `json:"status"`
}

// OrderFilter is the server-side order list query.
type OrderFilter struct {
	Status string `query:"status"`
	Search string `query:"search"`
	Sort   string `query:"sort"`
}
