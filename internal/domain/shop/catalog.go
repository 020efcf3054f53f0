package shop

// CatalogModel owns the product catalog and the single optional preview
// selection. The catalog is replaced wholesale on fetch; the preview id is set
// and cleared independently of it.
type CatalogModel struct {
	events  Publisher
	catalog []Product
	preview string // id of the previewed product, empty when none
}

// NewCatalogModel creates an empty catalog model.
func NewCatalogModel(events Publisher) *CatalogModel {
	return &CatalogModel{events: events}
}

// SetCatalog replaces the catalog and publishes EventItemsChanged with the
// new list.
func (m *CatalogModel) SetCatalog(items []Product) {
	m.catalog = append([]Product(nil), items...)
	m.events.Publish(EventItemsChanged, CatalogChanged{Catalog: m.Catalog()})
}

// Catalog returns the current product sequence in insertion order.
func (m *CatalogModel) Catalog() []Product {
	return append([]Product(nil), m.catalog...)
}

// SetPreview records the item's id as the preview selection and publishes
// EventPreviewChanged carrying the full item.
func (m *CatalogModel) SetPreview(item Product) {
	m.preview = item.ID
	m.events.Publish(EventPreviewChanged, item)
}

// PreviewID returns the id of the previewed product, or "" when none is set.
func (m *CatalogModel) PreviewID() string {
	return m.preview
}

// FindItem looks up a product by id. An unknown id reports ok=false rather
// than failing. A preview id can go unknown after a catalog replacement.
func (m *CatalogModel) FindItem(id string) (Product, bool) {
	for _, item := range m.catalog {
		if item.ID == id {
			return item, true
		}
	}
	return Product{}, false
}
