package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/enertrics/storefront-backend/internal/domain"
	"github.com/enertrics/storefront-backend/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage — CartStorage в памяти с инъекцией ошибок.
type fakeStorage struct {
	data      map[string][]domain.LineItem
	loadErr   error
	saveErr   error
	saveCalls int
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string][]domain.LineItem)}
}

func (f *fakeStorage) Load(_ context.Context, cartID string) ([]domain.LineItem, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.data[cartID], nil
}

func (f *fakeStorage) Save(_ context.Context, cartID string, items []domain.LineItem) error {
	f.saveCalls++
	if f.saveErr != nil {
		return f.saveErr
	}
	f.data[cartID] = items
	return nil
}

func addBattery(t *testing.T, store *CartStore, cartID string, qty int) *CartSnapshot {
	t.Helper()
	return store.AddItem(context.Background(), cartID, &AddItemReq{
		ProductID:  "p1",
		Title:      "Battery",
		PriceCents: 10000,
		Quantity:   qty,
	})
}

func TestCartStore_AddThenAddMerges(t *testing.T) {
	store := NewCartStore(newFakeStorage(), logger.NewSlogLogger())

	addBattery(t, store, "c1", 1)
	snap := addBattery(t, store, "c1", 2)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, 3, snap.TotalItems)
	assert.Equal(t, int64(30000), snap.TotalPriceCents)
}

func TestCartStore_PersistsAfterEveryMutation(t *testing.T) {
	storage := newFakeStorage()
	store := NewCartStore(storage, logger.NewSlogLogger())
	ctx := context.Background()

	addBattery(t, store, "c1", 2)
	store.UpdateQuantity(ctx, "c1", "p1", 5)
	store.RemoveItem(ctx, "c1", "p1")
	store.ClearCart(ctx, "c1")

	assert.Equal(t, 4, storage.saveCalls)
	assert.Empty(t, storage.data["c1"])
}

func TestCartStore_OpenCloseToggleDoNotPersist(t *testing.T) {
	storage := newFakeStorage()
	store := NewCartStore(storage, logger.NewSlogLogger())
	ctx := context.Background()

	snap := store.OpenCart(ctx, "c1")
	assert.True(t, snap.IsOpen)

	snap = store.ToggleCart(ctx, "c1")
	assert.False(t, snap.IsOpen)

	snap = store.CloseCart(ctx, "c1")
	assert.False(t, snap.IsOpen)

	assert.Zero(t, storage.saveCalls)
}

func TestCartStore_RoundTripThroughFreshInstance(t *testing.T) {
	storage := newFakeStorage()
	ctx := context.Background()

	first := NewCartStore(storage, logger.NewSlogLogger())
	first.AddItem(ctx, "c1", &AddItemReq{
		ProductID:  "p2",
		Title:      "Inverter",
		PriceCents: 5000,
		Quantity:   1,
		Variant:    &VariantReq{ID: "v1", Name: "Compact", PriceCents: 4000},
	})
	want := addBattery(t, first, "c1", 2).Items

	// Новый экземпляр поверх того же хранилища видит те же строки в том же порядке
	second := NewCartStore(storage, logger.NewSlogLogger())
	snap := second.GetCart(ctx, "c1")

	assert.Equal(t, want, snap.Items)
	assert.False(t, snap.IsOpen) // флаг открытости не переживает перезагрузку
}

func TestCartStore_LoadFailureFallsBackToEmpty(t *testing.T) {
	storage := newFakeStorage()
	storage.loadErr = errors.New("storage unavailable")
	store := NewCartStore(storage, logger.NewSlogLogger())

	snap := store.GetCart(context.Background(), "c1")

	assert.Empty(t, snap.Items)
	assert.Equal(t, 0, snap.TotalItems)
}

func TestCartStore_SaveFailureKeepsInMemoryState(t *testing.T) {
	storage := newFakeStorage()
	storage.saveErr = errors.New("storage full")
	store := NewCartStore(storage, logger.NewSlogLogger())

	snap := addBattery(t, store, "c1", 3)
	require.Len(t, snap.Items, 1)

	// состояние в памяти первично и пережило отказ записи
	snap = store.GetCart(context.Background(), "c1")
	assert.Equal(t, 3, snap.TotalItems)
}

func TestCartStore_CartsAreIsolatedByID(t *testing.T) {
	store := NewCartStore(newFakeStorage(), logger.NewSlogLogger())

	addBattery(t, store, "c1", 1)
	snap := store.GetCart(context.Background(), "c2")

	assert.Empty(t, snap.Items)
}

func TestCartStore_Scenario_AddOneThenTwo(t *testing.T) {
	store := NewCartStore(newFakeStorage(), logger.NewSlogLogger())

	addBattery(t, store, "c1", 1)
	snap := addBattery(t, store, "c1", 2)

	require.Len(t, snap.Items, 1)
	assert.Equal(t, 3, snap.Items[0].Quantity)
	assert.Equal(t, int64(30000), snap.TotalPriceCents)
}
