package view

import "github.com/webshop/storefront/internal/ui"

// Templates holds the cloneable markup fragments the application stamps out
// at runtime, mirroring the template blocks of the original page markup.
type Templates struct {
	CardCatalog *ui.Element
	CardPreview *ui.Element
	CardBasket  *ui.Element
	Basket      *ui.Element
	Order       *ui.Element
	Contacts    *ui.Element
	Success     *ui.Element
}

// NewTemplates builds the full template set.
func NewTemplates() Templates {
	return Templates{
		CardCatalog: cardCatalogTemplate(),
		CardPreview: cardPreviewTemplate(),
		CardBasket:  cardBasketTemplate(),
		Basket:      basketTemplate(),
		Order:       orderTemplate(),
		Contacts:    contactsTemplate(),
		Success:     successTemplate(),
	}
}

// NewPageElement builds the static page skeleton: header with basket button
// and counter, the catalog gallery, and the modal container.
func NewPageElement() *ui.Element {
	return ui.NewElement("body").Append(
		ui.NewElement("div").WithClass("page__wrapper").Append(
			ui.NewElement("header").WithClass("header").Append(
				ui.NewElement("button").WithClass("header__basket").Append(
					ui.NewElement("span").WithClass("header__basket-counter").WithText("0"),
				),
			),
			ui.NewElement("main").WithClass("gallery"),
		),
		ui.NewElement("div").WithID("modal-container").WithClass("modal").Append(
			ui.NewElement("div").WithClass("modal__container").Append(
				ui.NewElement("button").WithClass("modal__close"),
				ui.NewElement("div").WithClass("modal__content"),
			),
		),
	)
}

func cardCatalogTemplate() *ui.Element {
	return ui.NewElement("button").WithClass("gallery__item", "card").Append(
		ui.NewElement("span").WithClass("card__category"),
		ui.NewElement("h2").WithClass("card__title"),
		ui.NewElement("img").WithClass("card__image"),
		ui.NewElement("span").WithClass("card__price"),
	)
}

func cardPreviewTemplate() *ui.Element {
	return ui.NewElement("div").WithClass("card", "card_full").Append(
		ui.NewElement("img").WithClass("card__image"),
		ui.NewElement("div").WithClass("card__column").Append(
			ui.NewElement("span").WithClass("card__category"),
			ui.NewElement("h2").WithClass("card__title"),
			ui.NewElement("p").WithClass("card__text"),
			ui.NewElement("div").WithClass("card__row").Append(
				ui.NewElement("button").WithClass("card__button", "button"),
				ui.NewElement("span").WithClass("card__price"),
			),
		),
	)
}

func cardBasketTemplate() *ui.Element {
	return ui.NewElement("li").WithClass("basket__item", "card", "card_compact").Append(
		ui.NewElement("span").WithClass("basket__item-index"),
		ui.NewElement("span").WithClass("card__title"),
		ui.NewElement("span").WithClass("card__price"),
		ui.NewElement("button").WithClass("basket__item-delete"),
	)
}

func basketTemplate() *ui.Element {
	return ui.NewElement("div").WithClass("basket").Append(
		ui.NewElement("h2").WithClass("modal__title").WithText("Корзина"),
		ui.NewElement("ul").WithClass("basket__list"),
		ui.NewElement("div").WithClass("modal__actions").Append(
			ui.NewElement("button").WithClass("basket__button", "button").WithText("Оформить"),
			ui.NewElement("span").WithClass("basket__price"),
		),
	)
}

func orderTemplate() *ui.Element {
	return ui.NewElement("form").WithName("order").Append(
		ui.NewElement("div").WithClass("order__buttons").Append(
			ui.NewElement("button").WithName("card").WithClass("button", "button_alt").WithText("Онлайн"),
			ui.NewElement("button").WithName("cash").WithClass("button", "button_alt").WithText("При получении"),
		),
		ui.NewElement("input").WithName("address").WithAttr("placeholder", "Введите адрес"),
		ui.NewElement("div").WithClass("modal__actions").Append(
			ui.NewElement("button").WithClass("order__button", "button").WithAttr("type", "submit").WithText("Далее"),
			ui.NewElement("span").WithClass("form__errors"),
		),
	)
}

func contactsTemplate() *ui.Element {
	return ui.NewElement("form").WithName("contacts").Append(
		ui.NewElement("input").WithName("email").WithAttr("placeholder", "Введите Email"),
		ui.NewElement("input").WithName("phone").WithAttr("placeholder", "+7 ("),
		ui.NewElement("div").WithClass("modal__actions").Append(
			ui.NewElement("button").WithClass("button").WithAttr("type", "submit").WithText("Оплатить"),
			ui.NewElement("span").WithClass("form__errors"),
		),
	)
}

func successTemplate() *ui.Element {
	return ui.NewElement("div").WithClass("order-success").Append(
		ui.NewElement("h2").WithClass("order-success__title").WithText("Заказ оформлен"),
		ui.NewElement("p").WithClass("order-success__description"),
		ui.NewElement("button").WithClass("order-success__close", "button").WithText("За новыми покупками!"),
	)
}
