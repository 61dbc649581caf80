package service

import (
	"context"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

type ShopServiceImpl struct {
	catalog CatalogBackend
	cart    CartService
}

func CreateShopService(catalog CatalogBackend, cart CartService) *ShopServiceImpl {
	return &ShopServiceImpl{catalog: catalog, cart: cart}
}

func (s *ShopServiceImpl) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := s.catalog.ListCategories(ctx)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Categories").Msg("")
		return nil, err
	}
	return categories, nil
}

// Browse loads products and categories together, then filters locally.
func (s *ShopServiceImpl) Browse(ctx context.Context, filter CatalogFilter) ([]domain.Product, error) {
	var (
		products   []domain.Product
		categories []domain.Category
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		products, err = s.catalog.ListProducts(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		categories, err = s.catalog.ListCategories(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Browse").Msg("")
		return nil, err
	}

	if filter.CategoryID != "" && filter.CategoryID != AllCategories && filter.CategoryName == "" {
		for _, c := range categories {
			if c.ID == filter.CategoryID {
				filter.CategoryName = c.Name
				break
			}
		}
	}

	return FilterProducts(products, filter), nil
}

func (s *ShopServiceImpl) Product(ctx context.Context, id string) (domain.Product, error) {
	product, err := s.catalog.GetProduct(ctx, id)
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "Product").Msg("")
		return domain.Product{}, err
	}
	return product, nil
}

func (s *ShopServiceImpl) Quote(ctx context.Context, productID string, picks map[string]string) (domain.Configuration, error) {
	product, err := s.Product(ctx, productID)
	if err != nil {
		return domain.Configuration{}, err
	}
	return domain.NewConfiguration(product, picks)
}

// QuickAdd prices the product with the given picks and adds the snapshot to the cart.
func (s *ShopServiceImpl) QuickAdd(ctx context.Context, sessionID string, productID string, picks map[string]string) (domain.Cart, error) {
	cfg, err := s.Quote(ctx, productID, picks)
	if err != nil {
		return domain.Cart{}, err
	}
	return s.cart.AddToCart(ctx, sessionID, cfg.CartProduct())
}
