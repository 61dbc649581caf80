package admin

import (
	"context"
	"sync"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	"github.com/khangviet/storefront/pkg/errs"
)

type fakeBackend struct {
	mu sync.Mutex

	products   []domain.Product
	categories []domain.Category
	projects   []domain.Project
	companies  []domain.Company
	orders     []domain.Order

	created []interface{}
	updated map[string]interface{}
	deleted []string
	calls   int

	listErr   error
	writeErr  error
	statusErr error
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{updated: map[string]interface{}{}}
}

func (f *fakeBackend) hit() {
	f.mu.Lock()
	f.calls++
	f.mu.Unlock()
}

func (f *fakeBackend) ListProducts(ctx context.Context) ([]domain.Product, error) {
	f.hit()
	return f.products, f.listErr
}

func (f *fakeBackend) CreateProduct(ctx context.Context, p domain.Product) error {
	f.hit()
	if f.writeErr != nil {
		return f.writeErr
	}
	p.ID = "new-product"
	f.products = append(f.products, p)
	f.created = append(f.created, p)
	return nil
}

func (f *fakeBackend) UpdateProduct(ctx context.Context, id string, p domain.Product) error {
	f.hit()
	if f.writeErr != nil {
		return f.writeErr
	}
	f.updated[id] = p
	return nil
}

func (f *fakeBackend) DeleteProduct(ctx context.Context, id string) error {
	f.hit()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) ListCategories(ctx context.Context) ([]domain.Category, error) {
	f.hit()
	return f.categories, f.listErr
}

func (f *fakeBackend) CreateCategory(ctx context.Context, c domain.Category) error {
	f.hit()
	f.created = append(f.created, c)
	return f.writeErr
}

func (f *fakeBackend) UpdateCategory(ctx context.Context, id string, c domain.Category) error {
	f.hit()
	f.updated[id] = c
	return f.writeErr
}

func (f *fakeBackend) DeleteCategory(ctx context.Context, id string) error {
	f.hit()
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBackend) ListProjects(ctx context.Context, companySlug string) ([]domain.Project, error) {
	f.hit()
	return f.projects, f.listErr
}

func (f *fakeBackend) CreateProject(ctx context.Context, p domain.Project) error {
	f.hit()
	f.created = append(f.created, p)
	return f.writeErr
}

func (f *fakeBackend) UpdateProject(ctx context.Context, id string, p domain.Project) error {
	f.hit()
	f.updated[id] = p
	return f.writeErr
}

func (f *fakeBackend) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	f.hit()
	return f.companies, f.listErr
}

func (f *fakeBackend) CreateCompany(ctx context.Context, c domain.Company) error {
	f.hit()
	f.created = append(f.created, c)
	return f.writeErr
}

func (f *fakeBackend) ListOrders(ctx context.Context, status, search string) ([]domain.Order, error) {
	f.hit()
	if f.listErr != nil {
		return nil, f.listErr
	}
	var out []domain.Order
	for _, o := range f.orders {
		if status == "" || string(o.Status) == status {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeBackend) UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error) {
	f.hit()
	if f.statusErr != nil {
		return domain.Order{}, f.statusErr
	}
	for i := range f.orders {
		if f.orders[i].ID == id {
			f.orders[i].Status = status
			return f.orders[i], nil
		}
	}
	return domain.Order{}, errs.ErrNotFound
}

type fakePublisher struct {
	events []dto.KafkaMessage
}

func (f *fakePublisher) Publish(ctx context.Context, key string, msg dto.KafkaMessage) error {
	f.events = append(f.events, msg)
	return nil
}
