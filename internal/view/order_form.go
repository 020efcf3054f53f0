package view

import (
	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

// PaymentChange is the payload of EventPaymentChange.
type PaymentChange struct {
	Method shop.PaymentMethod
}

// OrderForm is the first wizard step: payment method plus delivery address.
// The payment sub-control highlights exactly one of the two mutually
// exclusive buttons.
type OrderForm struct {
	Form
	card *ui.Element
	cash *ui.Element
}

// NewOrderForm wraps the order form template.
func NewOrderForm(root *ui.Element, events Publisher) *OrderForm {
	f := &OrderForm{Form: *NewForm(root, events)}
	f.card = ui.Find(root, "button[name=card]")
	f.cash = ui.Find(root, "button[name=cash]")

	if f.card != nil {
		f.card.On(ui.Click, func(*ui.Event) { f.SelectPayment(shop.PaymentCard) })
	}
	if f.cash != nil {
		f.cash.On(ui.Click, func(*ui.Event) { f.SelectPayment(shop.PaymentCash) })
	}

	// Highlighting is re-derivable from the draft's current payment value so
	// reopening the step reflects the prior choice.
	f.Bind("payment", func(v any) {
		f.highlight(shop.PaymentMethod(asString(v)))
	})

	return f
}

// SelectPayment highlights the chosen method and publishes EventPaymentChange.
func (f *OrderForm) SelectPayment(method shop.PaymentMethod) {
	f.highlight(method)
	f.events.Publish(shop.EventPaymentChange, PaymentChange{Method: method})
}

// highlight toggles the active modifier; idempotent, at most one button lit.
func (f *OrderForm) highlight(method shop.PaymentMethod) {
	if f.card != nil {
		f.card.ToggleClass("button_alt-active", method == shop.PaymentCard)
	}
	if f.cash != nil {
		f.cash.ToggleClass("button_alt-active", method == shop.PaymentCash)
	}
}

// Clear resets the inputs and drops the payment highlight.
func (f *OrderForm) Clear() {
	f.Form.Clear()
	f.highlight(shop.PaymentUnset)
}
