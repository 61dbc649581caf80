package admin

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/rs/zerolog/log"
)

const (
	SortNewest = "newest"
	SortOldest = "oldest"
	allStatus  = "all"
)

type OrderBoardView struct {
	Orders   []domain.Order       `json:"orders"`
	Filter   dto.OrderFilter      `json:"filter"`
	Statuses []domain.OrderStatus `json:"statuses"`
	Error    string               `json:"error,omitempty"`
}

// OrderBoard is the admin order list. Local state only changes after the
// backend confirms.
type OrderBoard struct {
	backend   OrderBackend
	publisher EventPublisher

	mu      sync.Mutex
	orders  []domain.Order
	filter  dto.OrderFilter
	lastErr error
}

func NewOrderBoard(backend OrderBackend, publisher EventPublisher) *OrderBoard {
	return &OrderBoard{backend: backend, publisher: publisher, orders: []domain.Order{}, filter: dto.OrderFilter{Sort: SortNewest}}
}

func normalizeFilter(f dto.OrderFilter) (dto.OrderFilter, error) {
	f.Search = strings.TrimSpace(f.Search)
	if f.Status == allStatus {
		f.Status = ""
	}
	if f.Status != "" {
		if _, err := domain.ParseOrderStatus(f.Status); err != nil {
			return f, err
		}
	}
	if f.Sort != SortOldest {
		f.Sort = SortNewest
	}
	return f, nil
}

// SortOrders orders by creation time, newest first unless how is SortOldest.
func SortOrders(orders []domain.Order, how string) []domain.Order {
	out := append([]domain.Order{}, orders...)
	sort.SliceStable(out, func(i, j int) bool {
		if how == SortOldest {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Refresh queries the backend with the status and search filter, then sorts locally.
func (b *OrderBoard) Refresh(ctx context.Context, filter dto.OrderFilter) (OrderBoardView, error) {
	filter, err := normalizeFilter(filter)
	if err != nil {
		return b.View(), err
	}

	orders, err := b.backend.ListOrders(ctx, filter.Status, filter.Search)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "OrderBoardRefresh").Msg("")
		b.mu.Lock()
		b.lastErr = err
		b.mu.Unlock()
		return b.View(), err
	}

	b.mu.Lock()
	b.orders = SortOrders(orders, filter.Sort)
	b.filter = filter
	b.lastErr = nil
	b.mu.Unlock()

	return b.View(), nil
}

// UpdateStatus accepts any transition between known statuses.
func (b *OrderBoard) UpdateStatus(ctx context.Context, id string, status string) (domain.Order, error) {
	next, err := domain.ParseOrderStatus(status)
	if err != nil {
		return domain.Order{}, err
	}

	updated, err := b.backend.UpdateOrderStatus(ctx, id, next)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "OrderBoardUpdateStatus").Str("order_id", id).Msg("")
		b.mu.Lock()
		b.lastErr = fmt.Errorf("updating order %s: %w", id, err)
		b.mu.Unlock()
		return domain.Order{}, err
	}

	b.mu.Lock()
	for i := range b.orders {
		if b.orders[i].ID != id {
			continue
		}
		if updated.ID == "" {
			b.orders[i].Status = next
			updated = b.orders[i]
		} else {
			b.orders[i] = updated
		}
	}
	b.lastErr = nil
	b.mu.Unlock()

	if b.publisher != nil {
		msg := dto.KafkaMessage{EventType: dto.EventOrderStatusUpdated, Data: updated}
		if err := b.publisher.Publish(ctx, id, msg); err != nil {
			log.Ctx(ctx).Error().Err(err).Str("component", "OrderBoardUpdateStatus").Msg("failed to publish status event")
		}
	}

	return updated, nil
}

func (b *OrderBoard) View() OrderBoardView {
	b.mu.Lock()
	defer b.mu.Unlock()

	view := OrderBoardView{
		Orders:   append([]domain.Order{}, b.orders...),
		Filter:   b.filter,
		Statuses: domain.OrderStatuses,
	}
	if b.lastErr != nil {
		view.Error = b.lastErr.Error()
	}
	return view
}
