package domain

import (
	"time"

	"github.com/khangviet/storefront/pkg/errs"
)

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "pending"
	OrderStatusProcessing OrderStatus = "processing"
	OrderStatusReady      OrderStatus = "ready"
	OrderStatusCompleted  OrderStatus = "completed"
)

var OrderStatuses = []OrderStatus{OrderStatusPending, OrderStatusProcessing, OrderStatusReady, OrderStatusCompleted}

func ParseOrderStatus(s string) (OrderStatus, error) {
	for _, st := range OrderStatuses {
		if string(st) == s {
			return st, nil
		}
	}
	return "", errs.ErrInvalidOrderStatus
}

type CustomerInfo struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	Address string `json:"address"`
	Note    string `json:"note,omitempty"`
}

type OrderItem struct {
	ProductID       string  `json:"product_id"`
	ProductName     string  `json:"product_name"`
	Quantity        int     `json:"quantity"`
	PriceAtPurchase float64 `json:"price_at_purchase"`
}

type Order struct {
	ID           string       `json:"id"`
	CustomerInfo CustomerInfo `json:"customer_info"`
	Items        []OrderItem  `json:"items"`
	TotalAmount  float64      `json:"total_amount"`
	Status       OrderStatus  `json:"status"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}
