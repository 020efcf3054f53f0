package view

import (
	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

// categoryModifiers maps catalog category labels to the card's CSS modifier.
// Presentation-only: unknown labels fall back to the "other" style.
var categoryModifiers = map[string]string{
	"софт-скил":      "card__category_soft",
	"хард-скил":      "card__category_hard",
	"другое":         "card__category_other",
	"дополнительное": "card__category_additional",
	"кнопка":         "card__category_button",
}

// CardActions carries the click callback injected by the orchestration layer.
type CardActions struct {
	OnClick func()
}

// Card renders a product in any of its three template shapes: catalog tile,
// preview, or basket row. Elements absent from a given template are simply
// not wired, so one component serves all three.
type Card struct {
	Component
	button *ui.Element
	text   *ui.Element

	inBasket   bool
	notForSale bool
}

// NewCard wraps a cloned card template. The click callback attaches to the
// card's action button when the template has one (preview toggle, basket row
// delete), otherwise to the whole card (catalog tile).
func NewCard(root *ui.Element, actions CardActions) *Card {
	title := ui.MustFind(root, ".card__title")
	price := ui.MustFind(root, ".card__price")
	category := ui.Find(root, ".card__category")
	image := ui.Find(root, ".card__image")
	text := ui.Find(root, ".card__text")
	index := ui.Find(root, ".basket__item-index")

	button := ui.Find(root, ".card__button")
	if button == nil {
		button = ui.Find(root, ".basket__item-delete")
	}

	c := &Card{Component: newComponent(root), button: button, text: text}

	if actions.OnClick != nil {
		target := button
		if target == nil {
			target = root
		}
		target.On(ui.Click, func(*ui.Event) { actions.OnClick() })
	}

	c.Bind("title", func(v any) { setText(title, v) })
	c.Bind("description", func(v any) { setText(text, v) })
	c.Bind("index", func(v any) { setText(index, v) })
	c.Bind("price", func(v any) {
		p := asPrice(v)
		price.SetText(formatPrice(p))
		c.notForSale = p == nil
		c.updateButton()
	})
	c.Bind("category", func(v any) {
		if category == nil {
			return
		}
		label := asString(v)
		category.SetText(label)
		modifier, ok := categoryModifiers[label]
		if !ok {
			modifier = "card__category_other"
		}
		for _, m := range categoryModifiers {
			category.ToggleClass(m, m == modifier)
		}
	})
	c.Bind("image", func(v any) {
		if image != nil {
			image.WithAttr("src", asString(v))
		}
	})
	c.Bind("inBasket", func(v any) {
		c.inBasket = asBool(v)
		c.updateButton()
	})

	return c
}

// updateButton keeps the preview buy button in sync with the price and the
// basket membership. A priceless product cannot be bought: the button is
// disabled and captioned accordingly. Templates without a buy button (catalog
// tile, basket row) are left alone.
func (c *Card) updateButton() {
	if c.button == nil || c.text == nil {
		return
	}
	if c.notForSale {
		c.button.SetText("Недоступно")
		c.button.SetDisabled(true)
		return
	}
	c.button.SetDisabled(false)
	if c.inBasket {
		c.button.SetText("Удалить из корзины")
	} else {
		c.button.SetText("Купить")
	}
}

// ProductPatch builds the render patch for a product.
func ProductPatch(item shop.Product) Patch {
	return Patch{
		"title":       item.Title,
		"description": item.Description,
		"image":       item.Image,
		"category":    item.Category,
		"price":       item.Price,
	}
}
