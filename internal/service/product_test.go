package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lionhard83/sample-server-tests/internal/model"
	"github.com/lionhard83/sample-server-tests/internal/repository"
)

func newTestProductService() *ProductService {
	return NewProductService(repository.NewMemoryProductRepository())
}

func productReq(name, brand string, price float64) model.ProductRequest {
	return model.ProductRequest{Name: name, Brand: brand, Price: &price}
}

func TestProductCreateAndGet(t *testing.T) {
	svc := newTestProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, productReq("Keyboard", "Acme", 49.90))
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	assert.Equal(t, "Keyboard", created.Name)
	assert.Equal(t, "Acme", created.Brand)
	assert.Equal(t, 49.90, created.Price)

	fetched, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, fetched)
}

func TestProductGetMissing(t *testing.T) {
	svc := newTestProductService()

	_, err := svc.Get(context.Background(), "no-such-id")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductUpdate(t *testing.T) {
	svc := newTestProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, productReq("Keyboard", "Acme", 49.90))
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, productReq("Keyboard Pro", "Acme", 59.90))
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "Keyboard Pro", updated.Name)
	assert.Equal(t, 59.90, updated.Price)

	_, err = svc.Update(ctx, "no-such-id", productReq("X", "Y", 1))
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestProductDelete(t *testing.T) {
	svc := newTestProductService()
	ctx := context.Background()

	created, err := svc.Create(ctx, productReq("Keyboard", "Acme", 49.90))
	require.NoError(t, err)

	require.NoError(t, svc.Delete(ctx, created.ID))

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, svc.Delete(ctx, created.ID), ErrProductNotFound)
}

func TestProductListFilters(t *testing.T) {
	svc := newTestProductService()
	ctx := context.Background()

	_, err := svc.Create(ctx, productReq("Keyboard", "Acme", 49.90))
	require.NoError(t, err)
	_, err = svc.Create(ctx, productReq("Mouse", "Acme", 19.90))
	require.NoError(t, err)
	_, err = svc.Create(ctx, productReq("Keyboard", "Globex", 89.90))
	require.NoError(t, err)

	all, err := svc.List(ctx, model.ProductFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	acme, err := svc.List(ctx, model.ProductFilter{Brand: "Acme"})
	require.NoError(t, err)
	assert.Len(t, acme, 2)

	price := 89.90
	expensive, err := svc.List(ctx, model.ProductFilter{Price: &price})
	require.NoError(t, err)
	require.Len(t, expensive, 1)
	assert.Equal(t, "Globex", expensive[0].Brand)
}
