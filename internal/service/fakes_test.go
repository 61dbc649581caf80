package service

import (
	"context"
	"errors"
	"sync"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
)

type fakeCatalog struct {
	products   []domain.Product
	categories []domain.Category
	err        error
}

func (f *fakeCatalog) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return f.products, f.err
}

func (f *fakeCatalog) GetProduct(ctx context.Context, id string) (domain.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.Product{}, errs.ErrNotFound
}

func (f *fakeCatalog) ListCategories(ctx context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

type fakeOrders struct {
	mu       sync.Mutex
	calls    int
	requests []dto.CreateOrderRequest
	err      error
	during   func()
}

func (f *fakeOrders) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (domain.Order, error) {
	if f.during != nil {
		f.during()
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.requests = append(f.requests, req)
	if f.err != nil {
		return domain.Order{}, f.err
	}
	return domain.Order{ID: "o-1", CustomerInfo: req.CustomerInfo, Status: domain.OrderStatusPending}, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []dto.KafkaMessage
	err    error
	stall  bool
}

// Publish with stall set behaves like an unreachable broker and returns only
// when ctx is done.
func (f *fakePublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, msg)
	if f.stall {
		<-ctx.Done()
		return ctx.Err()
	}
	return f.err
}

type fakeNotifier struct {
	orders []domain.Order
	err    error
}

func (f *fakeNotifier) OrderPlaced(ctx context.Context, order domain.Order) error {
	f.orders = append(f.orders, order)
	return f.err
}

type failingStorage struct{}

var errStorageDown = errors.New("storage down")

func (failingStorage) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errStorageDown
}

func (failingStorage) Set(ctx context.Context, key string, value []byte) error {
	return errStorageDown
}

func (failingStorage) Delete(ctx context.Context, key string) error {
	return errStorageDown
}
