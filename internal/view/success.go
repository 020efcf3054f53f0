package view

import "github.com/webshop/storefront/internal/ui"

// SuccessActions carries the dismiss callback for the success screen.
type SuccessActions struct {
	OnClick func()
}

// Success renders the order confirmation shown after a completed checkout.
type Success struct {
	Component
}

// NewSuccess wraps the success template.
func NewSuccess(root *ui.Element, actions SuccessActions) *Success {
	description := ui.MustFind(root, ".order-success__description")
	closeButton := ui.MustFind(root, ".order-success__close")

	if actions.OnClick != nil {
		closeButton.On(ui.Click, func(*ui.Event) { actions.OnClick() })
	}

	s := &Success{Component: newComponent(root)}
	s.Bind("total", func(v any) {
		description.SetText("Списано " + formatPrice(asPrice(v)))
	})
	return s
}
