package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/khangviet/storefront/pkg/errs"
	"github.com/rs/zerolog/log"
)

const cartKeyPrefix = "cartItems:"

type CartServiceImpl struct {
	storage repository.StorageRepository
	locks   sync.Map
}

func CreateCartService(storage repository.StorageRepository) *CartServiceImpl {
	return &CartServiceImpl{storage: storage}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *CartServiceImpl) lock(sessionID string) func() {
	mu, _ := s.locks.LoadOrStore(sessionID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// GetCart never fails: missing, unreadable or corrupt data yields an empty cart.
func (s *CartServiceImpl) GetCart(ctx context.Context, sessionID string) domain.Cart {
	raw, err := s.storage.Get(ctx, cartKey(sessionID))
	if err != nil {
		if !errors.Is(err, errs.ErrNotFound) {
			log.Ctx(ctx).Warn().Err(err).Str("component", "GetCart").Msg("cart storage unreadable, starting empty")
		}
		return domain.Cart{}.Clear()
	}

	var items []domain.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		log.Ctx(ctx).Warn().Err(err).Str("component", "GetCart").Msg("stored cart is corrupt, starting empty")
		return domain.Cart{}.Clear()
	}

	cart := domain.Cart{Items: items}
	if !cart.Valid() {
		log.Ctx(ctx).Warn().Str("component", "GetCart").Msg("stored cart breaks item invariants, starting empty")
		return domain.Cart{}.Clear()
	}
	if cart.Items == nil {
		return cart.Clear()
	}
	return cart
}

func (s *CartServiceImpl) AddToCart(ctx context.Context, sessionID string, product domain.CartProduct) (domain.Cart, error) {
	if product.ID == "" {
		return domain.Cart{}, fmt.Errorf("cart product has no id: %w", errs.ErrClient)
	}
	return s.mutate(ctx, sessionID, func(c domain.Cart) domain.Cart { return c.Add(product) })
}

func (s *CartServiceImpl) RemoveFromCart(ctx context.Context, sessionID string, productID string) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domain.Cart) domain.Cart { return c.Remove(productID) })
}

func (s *CartServiceImpl) ClearCart(ctx context.Context, sessionID string) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domain.Cart) domain.Cart { return c.Clear() })
}

// SettleOrder removes what was ordered and keeps anything added since.
func (s *CartServiceImpl) SettleOrder(ctx context.Context, sessionID string, ordered domain.Cart) (domain.Cart, error) {
	return s.mutate(ctx, sessionID, func(c domain.Cart) domain.Cart { return c.Subtract(ordered) })
}

// mutate applies fn to the stored cart and writes back the full item list.
func (s *CartServiceImpl) mutate(ctx context.Context, sessionID string, fn func(domain.Cart) domain.Cart) (domain.Cart, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	next := fn(s.GetCart(ctx, sessionID))

	raw, err := json.Marshal(next.Items)
	if err != nil {
		return domain.Cart{}, err
	}
	if err := s.storage.Set(ctx, cartKey(sessionID), raw); err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "CartMutate").Msg("")
		return domain.Cart{}, fmt.Errorf("%w: saving cart: %v", errs.ErrInternalServer, err)
	}

	return next, nil
}

// Forget drops the per-session lock once the session is gone.
func (s *CartServiceImpl) Forget(sessionID string) {
	s.locks.Delete(sessionID)
}
