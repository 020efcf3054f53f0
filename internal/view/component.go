// Package view implements the visual components of the storefront. Every
// component owns exactly one root element fixed at construction and exposes
// the shared rendering contract: Render applies a partial patch through the
// component's setter table and returns the root node unchanged in identity.
package view

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/webshop/storefront/internal/ui"
)

// Publisher is the slice of the event bus the view layer needs.
type Publisher interface {
	Publish(name string, payload any)
}

// Patch is a partial bag of named values applied through a component's
// settable fields.
type Patch map[string]any

// Component is the uniform rendering base. Concrete components embed it and
// register one idempotent setter per settable field; each setter encapsulates
// the node mutation needed to reflect its value.
type Component struct {
	root    *ui.Element
	setters map[string]func(any)
}

func newComponent(root *ui.Element) Component {
	return Component{
		root:    root,
		setters: make(map[string]func(any)),
	}
}

// Root returns the component's root element.
func (c *Component) Root() *ui.Element { return c.root }

// Bind registers the setter for a named field.
func (c *Component) Bind(field string, set func(any)) {
	c.setters[field] = set
}

// Render applies each named value present in the patch through the
// corresponding setter and returns the root node. Fields without a setter
// are ignored. A nil or empty patch is a no-op that still returns the root,
// for call sites that just want the node as currently rendered.
func (c *Component) Render(patch Patch) *ui.Element {
	for field, value := range patch {
		if set, ok := c.setters[field]; ok {
			set(value)
		}
	}
	return c.root
}

// setText writes text content, tolerating an absent element the way the
// original markup wiring does.
func setText(el *ui.Element, v any) {
	if el != nil {
		el.SetText(asString(v))
	}
}

func asString(v any) string {
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	default:
		return fmt.Sprint(v)
	}
}

func asBool(v any) bool {
	b, _ := v.(bool)
	return b
}

// asPrice coerces patch values carrying a product price. A nil pointer means
// "not for sale".
func asPrice(v any) *decimal.Decimal {
	switch p := v.(type) {
	case *decimal.Decimal:
		return p
	case decimal.Decimal:
		return &p
	default:
		return nil
	}
}

// formatPrice renders a price for display; a nil price is priceless.
func formatPrice(price *decimal.Decimal) string {
	if price == nil {
		return "Бесценно"
	}
	return price.String() + " синапсов"
}
