package domain

import "github.com/shopspring/decimal"

type CartProduct struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	ImageURL string  `json:"imageUrl"`
}

type CartItem struct {
	Product  CartProduct `json:"product"`
	Quantity int         `json:"quantity"`
}

// Cart holds at most one item per product id. Every mutation returns a new Cart.
type Cart struct {
	Items []CartItem `json:"items"`
}

// Add increments the quantity of an existing item or appends a new one.
// The first snapshot of a product is kept on re-add.
func (c Cart) Add(p CartProduct) Cart {
	items := make([]CartItem, 0, len(c.Items)+1)
	found := false
	for _, it := range c.Items {
		if it.Product.ID == p.ID {
			it.Quantity++
			found = true
		}
		items = append(items, it)
	}
	if !found {
		items = append(items, CartItem{Product: p, Quantity: 1})
	}
	return Cart{Items: items}
}

func (c Cart) Remove(productID string) Cart {
	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		if it.Product.ID != productID {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

// Subtract takes the ordered quantities out of the cart. Items added after the
// order snapshot survive, as do any units beyond what was ordered.
func (c Cart) Subtract(ordered Cart) Cart {
	taken := make(map[string]int, len(ordered.Items))
	for _, it := range ordered.Items {
		taken[it.Product.ID] += it.Quantity
	}

	items := make([]CartItem, 0, len(c.Items))
	for _, it := range c.Items {
		it.Quantity -= taken[it.Product.ID]
		if it.Quantity > 0 {
			items = append(items, it)
		}
	}
	return Cart{Items: items}
}

func (c Cart) Clear() Cart {
	return Cart{Items: []CartItem{}}
}

func (c Cart) Count() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}

func (c Cart) Total() float64 {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(decimal.NewFromFloat(it.Product.Price).Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.InexactFloat64()
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Valid reports whether the items satisfy the cart invariants.
func (c Cart) Valid() bool {
	seen := make(map[string]struct{}, len(c.Items))
	for _, it := range c.Items {
		if it.Product.ID == "" || it.Quantity < 1 {
			return false
		}
		if _, dup := seen[it.Product.ID]; dup {
			return false
		}
		seen[it.Product.ID] = struct{}{}
	}
	return true
}
