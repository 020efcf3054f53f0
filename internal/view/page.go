package view

import (
	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

// Page renders the storefront chrome: the catalog gallery, the header basket
// counter, and the scroll lock applied while the modal is open.
type Page struct {
	Component
}

// NewPage wraps the page body. Clicking the header basket button publishes
// EventBasketOpen.
func NewPage(root *ui.Element, events Publisher) *Page {
	counter := ui.MustFind(root, ".header__basket-counter")
	gallery := ui.MustFind(root, ".gallery")
	wrapper := ui.MustFind(root, ".page__wrapper")
	basketButton := ui.MustFind(root, ".header__basket")

	basketButton.On(ui.Click, func(*ui.Event) {
		events.Publish(shop.EventBasketOpen, nil)
	})

	p := &Page{Component: newComponent(root)}
	p.Bind("counter", func(v any) { setText(counter, v) })
	p.Bind("locked", func(v any) {
		wrapper.ToggleClass("page__wrapper_locked", asBool(v))
	})
	p.Bind("catalog", func(v any) {
		if cards, ok := v.([]*ui.Element); ok {
			gallery.ReplaceChildren(cards...)
		}
	})
	return p
}
