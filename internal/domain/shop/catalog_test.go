package shop

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingBus captures publishes for assertions.
type recordingBus struct {
	events   []string
	payloads []any
}

func (b *recordingBus) Publish(name string, payload any) {
	b.events = append(b.events, name)
	b.payloads = append(b.payloads, payload)
}

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func testProducts() []Product {
	return []Product{
		{ID: "a", Title: "Бэдж-утешитель", Category: "другое", Price: price(100)},
		{ID: "b", Title: "Мамка-таймер", Category: "софт-скил", Price: nil},
		{ID: "c", Title: "Кнопка «Замьютить кота»", Category: "кнопка", Price: price(750)},
	}
}

func TestCatalogModel_SetCatalog(t *testing.T) {
	bus := &recordingBus{}
	m := NewCatalogModel(bus)

	m.SetCatalog(testProducts())

	require.Len(t, m.Catalog(), 3)
	require.Equal(t, []string{EventItemsChanged}, bus.events)

	changed, ok := bus.payloads[0].(CatalogChanged)
	require.True(t, ok)
	assert.Len(t, changed.Catalog, 3)
}

func TestCatalogModel_SetCatalog_ReplacesWholesale(t *testing.T) {
	bus := &recordingBus{}
	m := NewCatalogModel(bus)

	m.SetCatalog(testProducts())
	m.SetCatalog([]Product{{ID: "x", Title: "Новый товар"}})

	catalog := m.Catalog()
	require.Len(t, catalog, 1)
	assert.Equal(t, "x", catalog[0].ID)
}

func TestCatalogModel_SetPreview(t *testing.T) {
	bus := &recordingBus{}
	m := NewCatalogModel(bus)
	items := testProducts()
	m.SetCatalog(items)

	m.SetPreview(items[1])

	assert.Equal(t, "b", m.PreviewID())
	require.Equal(t, []string{EventItemsChanged, EventPreviewChanged}, bus.events)
	assert.Equal(t, items[1], bus.payloads[1])
}

func TestCatalogModel_FindItem(t *testing.T) {
	m := NewCatalogModel(&recordingBus{})
	m.SetCatalog(testProducts())

	t.Run("known id", func(t *testing.T) {
		item, ok := m.FindItem("c")
		require.True(t, ok)
		assert.Equal(t, "Кнопка «Замьютить кота»", item.Title)
	})

	t.Run("unknown id resolves to not found", func(t *testing.T) {
		_, ok := m.FindItem("nope")
		assert.False(t, ok)
	})
}

func TestCatalogModel_StalePreviewResolvesToNotFound(t *testing.T) {
	m := NewCatalogModel(&recordingBus{})
	items := testProducts()
	m.SetCatalog(items)
	m.SetPreview(items[0])

	// Wholesale replacement can strand the preview id.
	m.SetCatalog([]Product{{ID: "x"}})

	_, ok := m.FindItem(m.PreviewID())
	assert.False(t, ok)
}

func TestCatalogModel_CatalogReturnsCopy(t *testing.T) {
	m := NewCatalogModel(&recordingBus{})
	m.SetCatalog(testProducts())

	got := m.Catalog()
	got[0].ID = "mutated"

	fresh := m.Catalog()
	assert.Equal(t, "a", fresh[0].ID)
}
