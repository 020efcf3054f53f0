package shop

import "github.com/shopspring/decimal"

// BasketModel owns the basket and the order draft. Every state change is a
// single atomic mutation followed by an EventBasketChanged publish; queries
// never publish. Nothing outside the model mutates either structure directly.
type BasketModel struct {
	events Publisher
	items  []Product
	draft  OrderDraft
}

// NewBasketModel creates an empty basket with an empty order draft.
func NewBasketModel(events Publisher) *BasketModel {
	return &BasketModel{events: events}
}

// AddToBasket appends the item and publishes EventBasketChanged. Membership
// is not re-checked here: callers consult IsItemInBasket first, or a
// duplicate add will double-count the total.
func (m *BasketModel) AddToBasket(item Product) {
	m.items = append(m.items, item)
	m.events.Publish(EventBasketChanged, nil)
}

// RemoveFromBasket removes every entry matching id and publishes
// EventBasketChanged. Removing an absent id is a no-op that still publishes.
func (m *BasketModel) RemoveFromBasket(id string) {
	kept := m.items[:0]
	for _, item := range m.items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	m.items = kept
	m.events.Publish(EventBasketChanged, nil)
}

// IsItemInBasket reports whether an item with the given id is present.
func (m *BasketModel) IsItemInBasket(id string) bool {
	for _, item := range m.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns the basket contents in insertion order.
func (m *BasketModel) Items() []Product {
	return append([]Product(nil), m.items...)
}

// Total sums the prices of the present items, counting a nil price as zero.
// It is recomputed on every call and never cached.
func (m *BasketModel) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range m.items {
		total = total.Add(item.PriceOrZero())
	}
	return total
}

// Clear empties the basket, resets the order draft to its empty defaults and
// publishes EventBasketChanged.
func (m *BasketModel) Clear() {
	m.items = nil
	m.draft = OrderDraft{}
	m.events.Publish(EventBasketChanged, nil)
}

// SetOrderField writes a single order draft field. No event is published;
// field-level feedback is driven by the caller re-running validation.
func (m *BasketModel) SetOrderField(field OrderField, value string) {
	switch field {
	case FieldPayment:
		m.draft.Payment = PaymentMethod(value)
	case FieldAddress:
		m.draft.Address = value
	case FieldEmail:
		m.draft.Email = value
	case FieldPhone:
		m.draft.Phone = value
	}
}

// OrderData returns a copy of the current order draft.
func (m *BasketModel) OrderData() OrderDraft {
	return m.draft
}

// ValidateOrder returns "" when the order step is valid, otherwise the first
// failing rule's message (payment before address).
func (m *BasketModel) ValidateOrder() string {
	return m.draft.validateOrder()
}

// ValidateContacts returns "" when the contacts step is valid, otherwise the
// first failing rule's message (email before phone).
func (m *BasketModel) ValidateContacts() string {
	return m.draft.validateContacts()
}

// CreateOrderPayload recomputes the draft's Total and Items from current
// basket state and returns the draft as the submission payload. This is a
// side-effecting read, meant to be called exactly once, immediately before
// submission.
func (m *BasketModel) CreateOrderPayload() OrderDraft {
	ids := make([]string, 0, len(m.items))
	for _, item := range m.items {
		ids = append(ids, item.ID)
	}
	m.draft.Total = m.Total()
	m.draft.Items = ids
	return m.draft
}
