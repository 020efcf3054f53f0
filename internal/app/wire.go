package app

import (
	"go.uber.org/zap"

	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
	"github.com/webshop/storefront/internal/view"
)

// wire registers every bus handler. Handlers run synchronously and
// depth-first, so each user action settles the whole model/view chain before
// the triggering UI event returns.
func (a *App) wire() {
	// Page scroll lock follows the modal lifecycle.
	a.bus.Subscribe(shop.EventModalOpen, func(any) {
		a.page.Render(view.Patch{"locked": true})
	})
	a.bus.Subscribe(shop.EventModalClose, func(any) {
		a.page.Render(view.Patch{"locked": false})
	})

	// Catalog replacement rebuilds the gallery.
	a.bus.Subscribe(shop.EventItemsChanged, func(payload any) {
		changed, ok := payload.(shop.CatalogChanged)
		if !ok {
			return
		}
		cards := make([]*ui.Element, 0, len(changed.Catalog))
		for _, item := range changed.Catalog {
			item := item
			card := view.NewCard(ui.CloneTemplate(a.templates.CardCatalog), view.CardActions{
				OnClick: func() { a.bus.Publish(shop.EventCardSelect, item) },
			})
			cards = append(cards, card.Render(view.ProductPatch(item)))
		}
		a.page.Render(view.Patch{"catalog": cards})
	})

	// Selecting a card records the preview.
	a.bus.Subscribe(shop.EventCardSelect, func(payload any) {
		if item, ok := payload.(shop.Product); ok {
			a.catalog.SetPreview(item)
		}
	})

	// Preview opens the detail card in the modal. The card button toggles
	// basket membership and reflects the toggle immediately.
	a.bus.Subscribe(shop.EventPreviewChanged, func(payload any) {
		item, ok := payload.(shop.Product)
		if !ok {
			return
		}
		var card *view.Card
		card = view.NewCard(ui.CloneTemplate(a.templates.CardPreview), view.CardActions{
			OnClick: func() {
				if a.basket.IsItemInBasket(item.ID) {
					a.basket.RemoveFromBasket(item.ID)
					card.Render(view.Patch{"inBasket": false})
				} else {
					a.basket.AddToBasket(item)
					card.Render(view.Patch{"inBasket": true})
				}
			},
		})
		patch := view.ProductPatch(item)
		patch["inBasket"] = a.basket.IsItemInBasket(item.ID)
		a.modal.Render(view.Patch{"content": card.Render(patch)})
		a.modal.Open()
	})

	// Any basket change refreshes the counter and the basket list.
	a.bus.Subscribe(shop.EventBasketChanged, func(any) {
		items := a.basket.Items()
		a.page.Render(view.Patch{"counter": len(items)})

		rows := make([]*ui.Element, 0, len(items))
		for i, item := range items {
			item := item
			row := view.NewCard(ui.CloneTemplate(a.templates.CardBasket), view.CardActions{
				OnClick: func() { a.basket.RemoveFromBasket(item.ID) },
			})
			patch := view.ProductPatch(item)
			patch["index"] = i + 1
			rows = append(rows, row.Render(patch))
		}
		a.basketView.Render(view.Patch{"items": rows, "total": a.basket.Total()})
	})

	a.bus.Subscribe(shop.EventBasketOpen, func(any) {
		a.modal.Render(view.Patch{"content": a.basketView.Render(nil)})
		a.modal.Open()
	})

	// Wizard step 1: payment and address, prefilled from the draft so
	// reopening reflects prior edits.
	a.bus.Subscribe(shop.EventOrderOpen, func(any) {
		draft := a.basket.OrderData()
		errMsg := a.basket.ValidateOrder()
		a.modal.Render(view.Patch{"content": a.orderForm.Render(view.Patch{
			"payment": string(draft.Payment),
			"address": draft.Address,
			"valid":   errMsg == "",
			"errors":  errMsg,
		})})
	})

	a.bus.Subscribe(shop.EventOrderInput, func(payload any) {
		if change, ok := payload.(view.FieldChange); ok {
			a.basket.SetOrderField(shop.OrderField(change.Field), change.Value)
			a.refreshOrderValidity()
		}
	})

	a.bus.Subscribe(shop.EventPaymentChange, func(payload any) {
		if change, ok := payload.(view.PaymentChange); ok {
			a.basket.SetOrderField(shop.FieldPayment, string(change.Method))
			a.refreshOrderValidity()
		}
	})

	// Step 1 → step 2 only on a clean validation; otherwise stay and
	// surface the error.
	a.bus.Subscribe(shop.EventOrderSubmit, func(any) {
		if errMsg := a.basket.ValidateOrder(); errMsg != "" {
			a.orderForm.Render(view.Patch{"valid": false, "errors": errMsg})
			return
		}
		draft := a.basket.OrderData()
		errMsg := a.basket.ValidateContacts()
		a.modal.Render(view.Patch{"content": a.contactsForm.Render(view.Patch{
			"email":  draft.Email,
			"phone":  draft.Phone,
			"valid":  errMsg == "",
			"errors": errMsg,
		})})
	})

	a.bus.Subscribe(shop.EventContactsInput, func(payload any) {
		if change, ok := payload.(view.FieldChange); ok {
			a.basket.SetOrderField(shop.OrderField(change.Field), change.Value)
			a.refreshContactsValidity()
		}
	})

	a.bus.Subscribe(shop.EventContactsSubmit, func(any) {
		a.submitOrder()
	})
}

func (a *App) refreshOrderValidity() {
	errMsg := a.basket.ValidateOrder()
	a.orderForm.Render(view.Patch{"valid": errMsg == "", "errors": errMsg})
}

func (a *App) refreshContactsValidity() {
	errMsg := a.basket.ValidateContacts()
	a.contactsForm.Render(view.Patch{"valid": errMsg == "", "errors": errMsg})
}

// submitOrder finishes the wizard: snapshot the draft, create the order, and
// on success clear the session's basket and show the confirmation. A failed
// submission is logged and leaves the contacts step as is; it has no
// user-facing error surface.
func (a *App) submitOrder() {
	if errMsg := a.basket.ValidateContacts(); errMsg != "" {
		a.contactsForm.Render(view.Patch{"valid": false, "errors": errMsg})
		return
	}

	payload := a.basket.CreateOrderPayload()
	result, err := a.shopAPI.CreateOrder(a.baseCtx, payload)
	if err != nil {
		a.log.Error("order submission failed", zap.Error(err))
		return
	}

	a.log.Info("order created",
		zap.String("order_id", result.ID),
		zap.String("total", result.Total.String()),
	)

	a.basket.Clear()
	a.orderForm.Clear()
	a.contactsForm.Clear()
	a.modal.Render(view.Patch{"content": a.success.Render(view.Patch{"total": result.Total})})
}
