package service

import (
	"context"
	"sync"
	"testing"

	"github.com/khangviet/storefront/internal/domain"
	"github.com/khangviet/storefront/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartServiceRoundTrip(t *testing.T) {
	ctx := context.Background()
	storage := repository.CreateNewMemoryRepository()
	svc := CreateCartService(storage)

	neon := domain.CartProduct{ID: "p1", Name: "Neon", Price: 100000}
	for i := 0; i < 3; i++ {
		_, err := svc.AddToCart(ctx, "s1", neon)
		require.NoError(t, err)
	}

	cart := CreateCartService(storage).GetCart(ctx, "s1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Count())
	assert.Equal(t, 300000.0, cart.Total())

	assert.True(t, svc.GetCart(ctx, "other").IsEmpty())

	cart, err := svc.RemoveFromCart(ctx, "s1", "p1")
	require.NoError(t, err)
	assert.True(t, cart.IsEmpty())

	cart, err = svc.AddToCart(ctx, "s1", neon)
	require.NoError(t, err)
	assert.Equal(t, 1, cart.Items[0].Quantity)

	_, err = svc.ClearCart(ctx, "s1")
	require.NoError(t, err)
	cart = svc.GetCart(ctx, "s1")
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
}

func TestCartServiceCorruptStorageLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	testCases := []struct {
		Name  string
		Value string
	}{
		{Name: "not json", Value: "{oops"},
		{Name: "wrong shape", Value: `{"items":1}`},
		{Name: "zero quantity", Value: `[{"product":{"id":"p1"},"quantity":0}]`},
		{Name: "duplicate id", Value: `[{"product":{"id":"p1"},"quantity":1},{"product":{"id":"p1"},"quantity":2}]`},
		{Name: "missing id", Value: `[{"product":{"name":"x"},"quantity":1}]`},
		{Name: "null", Value: `null`},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			storage := repository.CreateNewMemoryRepository()
			require.NoError(t, storage.Set(ctx, cartKey("s1"), []byte(tc.Value)))

			cart := CreateCartService(storage).GetCart(ctx, "s1")
			assert.True(t, cart.IsEmpty())
			assert.Equal(t, 0, cart.Count())
		})
	}
}

func TestCartServiceStorageFailure(t *testing.T) {
	svc := CreateCartService(failingStorage{})

	assert.True(t, svc.GetCart(context.Background(), "s1").IsEmpty())

	_, err := svc.AddToCart(context.Background(), "s1", domain.CartProduct{ID: "p1"})
	assert.Error(t, err)
}

func TestCartServiceConcurrentAdds(t *testing.T) {
	ctx := context.Background()
	svc := CreateCartService(repository.CreateNewMemoryRepository())

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.AddToCart(ctx, "s1", domain.CartProduct{ID: "p1", Price: 10})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 20, svc.GetCart(ctx, "s1").Count())
}
