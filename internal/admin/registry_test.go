package admin

import (
	"testing"
	"time"

	"github.com/khangviet/storefront/pkg/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryScopesWorkspacesBySession(t *testing.T) {
	registry := CreateRegistry(newFakeBackend(), nil)

	a := registry.Get("s1")
	a.Products.AddNew()
	assert.Same(t, a, registry.Get("s1"))
	assert.Equal(t, ModeList, registry.Get("s2").Products.View().Mode)

	handle, err := a.Editor(ResourceProducts)
	require.NoError(t, err)
	assert.Equal(t, ResourceProducts, handle.Name())

	_, err = a.Editor("invoices")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestRegistrySweep(t *testing.T) {
	registry := CreateRegistry(newFakeBackend(), nil)
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	registry.now = func() time.Time { return now }

	registry.Get("old")
	now = now.Add(time.Hour)
	registry.Get("fresh")

	assert.Equal(t, 1, registry.Sweep(30*time.Minute))
	assert.Equal(t, 1, registry.Len())

	registry.Evict("fresh")
	assert.Equal(t, 0, registry.Len())
}
