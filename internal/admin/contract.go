package admin

import (
	"context"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
)

type ProductBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	CreateProduct(ctx context.Context, p domain.Product) error
	UpdateProduct(ctx context.Context, id string, p domain.Product) error
	DeleteProduct(ctx context.Context, id string) error
}

type CategoryBackend interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	CreateCategory(ctx context.Context, cat domain.Category) error
	UpdateCategory(ctx context.Context, id string, cat domain.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type ProjectBackend interface {
	ListProjects(ctx context.Context, companySlug string) ([]domain.Project, error)
	CreateProject(ctx context.Context, p domain.Project) error
	UpdateProject(ctx context.Context, id string, p domain.Project) error
}

type CompanyBackend interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	CreateCompany(ctx context.Context, co domain.Company) error
}

type OrderBackend interface {
	ListOrders(ctx context.Context, status, search string) ([]domain.Order, error)
	UpdateOrderStatus(ctx context.Context, id string, status domain.OrderStatus) (domain.Order, error)
}

// Backend is everything the admin workspace needs from the product backend.
type Backend interface {
	ProductBackend
	CategoryBackend
	ProjectBackend
	CompanyBackend
	OrderBackend
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

// Handle is an Editor with its entity type erased, for use by transport code.
type Handle interface {
	Name() string
	Refresh(ctx context.Context) error
	AddNew()
	Edit(id string) error
	Patch(patch []byte) error
	Submit(ctx context.Context) error
	Cancel()
	Delete(ctx context.Context, id string, confirmed bool) error
	ReorderImages(urls []string) error
	RemoveImage(url string) error
	MoveImage(active, over string) error
	AppendImages(urls ...string) error
	CanAcceptImages() error
	Snapshot() interface{}
}
