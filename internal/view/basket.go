package view

import (
	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

// Basket renders the basket contents inside the modal: the item list, the
// running total, and the checkout button that starts the order wizard.
type Basket struct {
	Component
	button *ui.Element
}

// NewBasket wraps the basket template. The checkout button publishes
// EventOrderOpen; it stays disabled while the basket is empty.
func NewBasket(root *ui.Element, events Publisher) *Basket {
	list := ui.MustFind(root, ".basket__list")
	total := ui.MustFind(root, ".basket__price")
	button := ui.MustFind(root, ".basket__button")

	button.On(ui.Click, func(*ui.Event) {
		events.Publish(shop.EventOrderOpen, nil)
	})

	b := &Basket{Component: newComponent(root), button: button}
	b.Bind("items", func(v any) {
		items, ok := v.([]*ui.Element)
		if !ok {
			return
		}
		if len(items) == 0 {
			list.ReplaceChildren(
				ui.NewElement("p").WithClass("basket__empty").WithText("Корзина пуста"),
			)
			button.SetDisabled(true)
			return
		}
		list.ReplaceChildren(items...)
		button.SetDisabled(false)
	})
	b.Bind("total", func(v any) {
		total.SetText(formatPrice(asPrice(v)))
	})

	// Fresh basket starts empty.
	b.Render(Patch{"items": []*ui.Element{}})
	return b
}
