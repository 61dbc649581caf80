package service

import (
	"context"
	"time"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/dto"
	backendapi "github.com/khangviet/storefront/internal/infrastructure/backend-api"
)

type CatalogBackend interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (domain.Product, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

type OrderBackend interface {
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (domain.Order, error)
}

type GalleryBackend interface {
	ListProjects(ctx context.Context, companySlug string) ([]domain.Project, error)
	FeaturedProjects(ctx context.Context) ([]domain.Project, error)
	GetProject(ctx context.Context, slug string) (domain.Project, error)
	ListCompanies(ctx context.Context) ([]domain.Company, error)
}

type AuthBackend interface {
	Login(ctx context.Context, email, password string) (backendapi.Credentials, error)
	Logout(ctx context.Context, current backendapi.Credentials) error
	Me(ctx context.Context) (dto.UserResponse, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, key string, msg dto.KafkaMessage) error
}

type Notifier interface {
	OrderPlaced(ctx context.Context, order domain.Order) error
}

type CartService interface {
	GetCart(ctx context.Context, sessionID string) domain.Cart
	AddToCart(ctx context.Context, sessionID string, product domain.CartProduct) (domain.Cart, error)
	RemoveFromCart(ctx context.Context, sessionID string, productID string) (domain.Cart, error)
	ClearCart(ctx context.Context, sessionID string) (domain.Cart, error)
	SettleOrder(ctx context.Context, sessionID string, ordered domain.Cart) (domain.Cart, error)
}

type ShopService interface {
	Categories(ctx context.Context) ([]domain.Category, error)
	Browse(ctx context.Context, filter CatalogFilter) ([]domain.Product, error)
	Product(ctx context.Context, id string) (domain.Product, error)
	Quote(ctx context.Context, productID string, picks map[string]string) (domain.Configuration, error)
	QuickAdd(ctx context.Context, sessionID string, productID string, picks map[string]string) (domain.Cart, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context, sessionID string, info domain.CustomerInfo) (domain.Order, error)
}

type GalleryService interface {
	Projects(ctx context.Context, companySlug string) ([]domain.GalleryCard, error)
	Featured(ctx context.Context) ([]domain.GalleryCard, error)
	Project(ctx context.Context, slug string) (domain.Project, domain.GalleryCard, error)
	Companies(ctx context.Context) ([]domain.Company, error)
}

type UploadService interface {
	UploadImages(ctx context.Context, files []UploadFile) UploadResult
}

type AuthService interface {
	Login(ctx context.Context, sessionID, email, password string) (dto.SessionResponse, error)
	Logout(ctx context.Context, sessionID string) error
	Me(ctx context.Context, sessionID string) (dto.UserResponse, error)
	Credentials(ctx context.Context, sessionID string) backendapi.Credentials
	TokenStore(sessionID string) backendapi.TokenStore
}

type SessionService interface {
	State(ctx context.Context, sessionID string) dto.SessionResponse
	Touch(sessionID string)
	MarkSplashShown(sessionID string)
	Sweep(idle time.Duration) []string
}
