package view

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

func price(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

func TestCard_RenderCatalogTile(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardCatalog)
	clicked := false
	card := NewCard(root, CardActions{OnClick: func() { clicked = true }})

	item := shop.Product{
		ID:       "a",
		Title:    "Бэдж-утешитель",
		Category: "софт-скил",
		Image:    "https://cdn.example/badge.svg",
		Price:    price(100),
	}
	got := card.Render(ProductPatch(item))

	assert.Same(t, root, got)
	assert.Equal(t, "Бэдж-утешитель", ui.Find(root, ".card__title").Text)
	assert.Equal(t, "100 синапсов", ui.Find(root, ".card__price").Text)
	assert.Equal(t, "https://cdn.example/badge.svg", ui.Find(root, ".card__image").Attrs["src"])

	category := ui.Find(root, ".card__category")
	assert.Equal(t, "софт-скил", category.Text)
	assert.True(t, category.HasClass("card__category_soft"))

	// Catalog tile: the whole card is the click target.
	root.Click()
	assert.True(t, clicked)
}

func TestCard_NilPriceIsPriceless(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardCatalog)
	card := NewCard(root, CardActions{})

	card.Render(ProductPatch(shop.Product{Title: "Мамка-таймер", Price: nil}))

	assert.Equal(t, "Бесценно", ui.Find(root, ".card__price").Text)
}

func TestCard_CategoryModifierExclusive(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardCatalog)
	card := NewCard(root, CardActions{})
	category := ui.Find(root, ".card__category")

	card.Render(Patch{"category": "кнопка"})
	card.Render(Patch{"category": "хард-скил"})

	assert.True(t, category.HasClass("card__category_hard"))
	assert.False(t, category.HasClass("card__category_button"))
}

func TestCard_UnknownCategoryFallsBack(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardCatalog)
	card := NewCard(root, CardActions{})

	card.Render(Patch{"category": "загадка"})

	assert.True(t, ui.Find(root, ".card__category").HasClass("card__category_other"))
}

func TestCard_PreviewInBasketCaption(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardPreview)
	clicked := 0
	card := NewCard(root, CardActions{OnClick: func() { clicked++ }})
	button := ui.Find(root, ".card__button")
	require.NotNil(t, button)

	card.Render(Patch{"inBasket": false})
	assert.Equal(t, "Купить", button.Text)

	card.Render(Patch{"inBasket": true})
	assert.Equal(t, "Удалить из корзины", button.Text)

	// Preview: only the action button is the click target.
	button.Click()
	assert.Equal(t, 1, clicked)
}

func TestCard_PreviewNotForSale(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardPreview)
	clicked := 0
	card := NewCard(root, CardActions{OnClick: func() { clicked++ }})
	button := ui.Find(root, ".card__button")
	require.NotNil(t, button)

	patch := ProductPatch(shop.Product{ID: "b", Title: "Мамка-таймер", Price: nil})
	patch["inBasket"] = false
	card.Render(patch)

	assert.Equal(t, "Недоступно", button.Text)
	assert.True(t, button.Disabled)

	button.Click()
	assert.Zero(t, clicked)

	// A priced product re-enables the button.
	card.Render(Patch{"price": price(100)})
	assert.False(t, button.Disabled)
	assert.Equal(t, "Купить", button.Text)
}

func TestCard_BasketRowIndex(t *testing.T) {
	root := ui.CloneTemplate(NewTemplates().CardBasket)
	card := NewCard(root, CardActions{})

	card.Render(Patch{"index": 3})

	assert.Equal(t, "3", ui.Find(root, ".basket__item-index").Text)
}

func TestBasket_ItemsAndTotal(t *testing.T) {
	bus := &recordingBus{}
	basket := NewBasket(ui.CloneTemplate(NewTemplates().Basket), bus)
	root := basket.Root()
	button := ui.Find(root, ".basket__button")

	// Fresh basket: empty placeholder, checkout disabled.
	assert.True(t, button.Disabled)

	rows := []*ui.Element{ui.NewElement("li"), ui.NewElement("li")}
	basket.Render(Patch{"items": rows, "total": decimal.NewFromInt(850)})

	assert.Len(t, ui.Find(root, ".basket__list").Children(), 2)
	assert.Equal(t, "850 синапсов", ui.Find(root, ".basket__price").Text)
	assert.False(t, button.Disabled)

	basket.Render(Patch{"items": []*ui.Element{}})
	assert.True(t, button.Disabled)

	// Checkout cannot start from an empty basket: the disabled button
	// swallows the click.
	button.Click()
	name, _ := bus.last()
	assert.Equal(t, "", name)

	basket.Render(Patch{"items": rows, "total": decimal.NewFromInt(850)})
	button.Click()
	name, _ = bus.last()
	assert.Equal(t, shop.EventOrderOpen, name)
}

func TestPage_CounterCatalogLock(t *testing.T) {
	bus := &recordingBus{}
	root := NewPageElement()
	page := NewPage(root, bus)

	page.Render(Patch{"counter": 2})
	assert.Equal(t, "2", ui.Find(root, ".header__basket-counter").Text)

	cards := []*ui.Element{ui.NewElement("button"), ui.NewElement("button")}
	page.Render(Patch{"catalog": cards})
	assert.Len(t, ui.Find(root, ".gallery").Children(), 2)

	page.Render(Patch{"locked": true})
	assert.True(t, ui.Find(root, ".page__wrapper").HasClass("page__wrapper_locked"))

	ui.Find(root, ".header__basket").Click()
	name, _ := bus.last()
	assert.Equal(t, shop.EventBasketOpen, name)
}

func TestSuccess_TotalAndDismiss(t *testing.T) {
	dismissed := false
	root := ui.CloneTemplate(NewTemplates().Success)
	success := NewSuccess(root, SuccessActions{OnClick: func() { dismissed = true }})

	success.Render(Patch{"total": decimal.NewFromInt(850)})
	assert.Equal(t, "Списано 850 синапсов", ui.Find(root, ".order-success__description").Text)

	ui.Find(root, ".order-success__close").Click()
	assert.True(t, dismissed)
}
