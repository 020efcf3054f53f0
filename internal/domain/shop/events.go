package shop

// Event names published and consumed across the application. The bus treats
// them as opaque strings; the "<topic>:<what>" shape is convention only.
const (
	EventItemsChanged   = "items:changed"
	EventPreviewChanged = "preview:changed"
	EventCardSelect     = "card:select"

	EventBasketChanged = "basket:changed"
	EventBasketOpen    = "basket:open"

	EventOrderOpen      = "order:open"
	EventOrderInput     = "order:input"
	EventOrderSubmit    = "order:submit"
	EventContactsInput  = "contacts:input"
	EventContactsSubmit = "contacts:submit"
	EventPaymentChange  = "payment:change"

	EventModalOpen  = "modal:open"
	EventModalClose = "modal:close"
)

// CatalogChanged is the payload of EventItemsChanged.
type CatalogChanged struct {
	Catalog []Product
}
