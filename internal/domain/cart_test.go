package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func battery(qty int) LineItem {
	return LineItem{
		ProductID:  "p1",
		Title:      "Battery Module",
		PriceCents: 10000,
		Quantity:   qty,
	}
}

func TestCart_AddItem_MergesSameProduct(t *testing.T) {
	cart := NewCart()

	cart.AddItem(battery(1))
	cart.AddItem(battery(2))

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "p1", cart.Items[0].ID)
	assert.Equal(t, 3, cart.Items[0].Quantity)
	assert.Equal(t, int64(30000), cart.TotalPriceCents())
}

func TestCart_AddItem_KeepsFirstWriteDisplayFields(t *testing.T) {
	cart := NewCart()

	cart.AddItem(battery(1))

	second := battery(1)
	second.Title = "Battery Module v2"
	second.PriceCents = 99900
	cart.AddItem(second)

	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Battery Module", cart.Items[0].Title)
	assert.Equal(t, int64(10000), cart.Items[0].PriceCents)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestCart_AddItem_VariantProducesSeparateLine(t *testing.T) {
	cart := NewCart()

	cart.AddItem(battery(1))

	withVariant := battery(1)
	withVariant.Variant = &LineVariant{ID: "v-75", Name: "75 kWh", PriceCents: 12000}
	cart.AddItem(withVariant)

	require.Len(t, cart.Items, 2)
	assert.Equal(t, "p1", cart.Items[0].ID)
	assert.Equal(t, "p1-v-75", cart.Items[1].ID)
}

func TestCart_AddItem_VariantPriceOverridesBase(t *testing.T) {
	cart := NewCart()

	cart.AddItem(LineItem{ProductID: "p1", PriceCents: 10000, Quantity: 2})
	cart.AddItem(LineItem{
		ProductID:  "p2",
		PriceCents: 5000,
		Quantity:   1,
		Variant:    &LineVariant{ID: "v1", Name: "Compact", PriceCents: 4000},
	})

	assert.Equal(t, int64(24000), cart.TotalPriceCents())
}

func TestCart_AddItem_NonPositiveQuantityIsRemoveCase(t *testing.T) {
	cart := NewCart()

	cart.AddItem(battery(0))
	assert.Empty(t, cart.Items)

	cart.AddItem(battery(2))
	cart.AddItem(battery(-2))
	assert.Empty(t, cart.Items)
}

func TestCart_RemoveItem(t *testing.T) {
	cart := NewCart()
	cart.AddItem(battery(1))

	cart.RemoveItem("p1")
	assert.Empty(t, cart.Items)

	// отсутствующая строка — no-op
	cart.AddItem(battery(1))
	cart.RemoveItem("unknown")
	assert.Len(t, cart.Items, 1)
}

func TestCart_UpdateQuantity(t *testing.T) {
	cart := NewCart()
	cart.AddItem(battery(1))

	cart.UpdateQuantity("p1", 5)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)

	cart.UpdateQuantity("unknown", 7)
	assert.Equal(t, 5, cart.Items[0].Quantity)
}

func TestCart_UpdateQuantityZeroEqualsRemove(t *testing.T) {
	viaUpdate := NewCart()
	viaUpdate.AddItem(battery(3))
	viaUpdate.UpdateQuantity("p1", 0)

	viaRemove := NewCart()
	viaRemove.AddItem(battery(3))
	viaRemove.RemoveItem("p1")

	assert.Equal(t, viaRemove.Items, viaUpdate.Items)
}

func TestCart_TotalItems(t *testing.T) {
	cart := NewCart()
	assert.Equal(t, 0, cart.TotalItems())

	cart.AddItem(battery(3))
	assert.Equal(t, 3, cart.TotalItems())

	other := battery(2)
	other.ProductID = "p2"
	cart.AddItem(other)
	assert.Equal(t, 5, cart.TotalItems())
}

func TestCart_Clear(t *testing.T) {
	cart := NewCart()
	cart.AddItem(battery(4))
	cart.AddItem(LineItem{ProductID: "p2", PriceCents: 100, Quantity: 1})

	cart.Clear()

	assert.Empty(t, cart.Items)
	assert.Equal(t, 0, cart.TotalItems())
	assert.Equal(t, int64(0), cart.TotalPriceCents())
}

func TestCart_InsertionOrderIsStable(t *testing.T) {
	cart := NewCart()
	for _, id := range []string{"p3", "p1", "p2"} {
		cart.AddItem(LineItem{ProductID: id, PriceCents: 100, Quantity: 1})
	}

	// повторное добавление не меняет позицию строки
	cart.AddItem(LineItem{ProductID: "p1", PriceCents: 100, Quantity: 1})

	ids := make([]string, 0, len(cart.Items))
	for _, item := range cart.Items {
		ids = append(ids, item.ID)
	}
	assert.Equal(t, []string{"p3", "p1", "p2"}, ids)
}

func TestCart_OpenCloseToggle(t *testing.T) {
	cart := NewCart()
	assert.False(t, cart.IsOpen)

	cart.Open()
	assert.True(t, cart.IsOpen)

	cart.Toggle()
	assert.False(t, cart.IsOpen)

	cart.Toggle()
	cart.Close()
	assert.False(t, cart.IsOpen)
}

func TestLineID(t *testing.T) {
	assert.Equal(t, "p1", LineID("p1", nil))
	assert.Equal(t, "p1-v2", LineID("p1", &LineVariant{ID: "v2"}))
}
