package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

func TestForm_FieldEditPublishesInput(t *testing.T) {
	bus := &recordingBus{}
	form := NewForm(ui.CloneTemplate(NewTemplates().Contacts), bus)

	form.Root().Dispatch(&ui.Event{Type: ui.Input, Field: "email", Value: "e@x"})

	require.Equal(t, []string{"contacts:input"}, bus.events)
	assert.Equal(t, FieldChange{Field: "email", Value: "e@x"}, bus.payloads[0])
}

func TestForm_SubmitSuppressesDefaultAndPublishes(t *testing.T) {
	bus := &recordingBus{}
	form := NewForm(ui.CloneTemplate(NewTemplates().Order), bus)

	ev := &ui.Event{Type: ui.Submit}
	form.Root().Dispatch(ev)

	assert.True(t, ev.DefaultPrevented())
	require.Equal(t, []string{"order:submit"}, bus.events)
	assert.Nil(t, bus.payloads[0])
}

func TestForm_ValidTogglesSubmitControl(t *testing.T) {
	form := NewForm(ui.CloneTemplate(NewTemplates().Order), &recordingBus{})
	submit := ui.Find(form.Root(), "button[type=submit]")

	form.Render(Patch{"valid": false})
	assert.True(t, submit.Disabled)

	form.Render(Patch{"valid": true})
	assert.False(t, submit.Disabled)
}

func TestForm_ErrorsShownVerbatim(t *testing.T) {
	form := NewForm(ui.CloneTemplate(NewTemplates().Order), &recordingBus{})
	errors := ui.Find(form.Root(), ".form__errors")

	form.Render(Patch{"errors": shop.MsgPaymentRequired})
	assert.Equal(t, shop.MsgPaymentRequired, errors.Text)

	form.Render(Patch{"errors": ""})
	assert.Empty(t, errors.Text)
}

func TestForm_RenderWritesFieldValues(t *testing.T) {
	form := NewForm(ui.CloneTemplate(NewTemplates().Contacts), &recordingBus{})

	form.Render(Patch{"email": "e@x", "phone": "1"})

	assert.Equal(t, "e@x", ui.Find(form.Root(), "input[name=email]").Value)
	assert.Equal(t, "1", ui.Find(form.Root(), "input[name=phone]").Value)
}

func TestForm_Clear(t *testing.T) {
	form := NewForm(ui.CloneTemplate(NewTemplates().Contacts), &recordingBus{})
	form.Render(Patch{"email": "e@x", "phone": "1"})

	form.Clear()

	assert.Empty(t, ui.Find(form.Root(), "input[name=email]").Value)
	assert.Empty(t, ui.Find(form.Root(), "input[name=phone]").Value)
}

func TestForm_NameRequiredElements(t *testing.T) {
	// A form template without its submit control is a startup defect.
	assert.Panics(t, func() {
		NewForm(ui.NewElement("form").WithName("broken"), &recordingBus{})
	})
}

func TestOrderForm_SelectPayment(t *testing.T) {
	bus := &recordingBus{}
	form := NewOrderForm(ui.CloneTemplate(NewTemplates().Order), bus)
	card := ui.Find(form.Root(), "button[name=card]")
	cash := ui.Find(form.Root(), "button[name=cash]")

	card.Click()

	assert.True(t, card.HasClass("button_alt-active"))
	assert.False(t, cash.HasClass("button_alt-active"))
	name, payload := bus.last()
	assert.Equal(t, shop.EventPaymentChange, name)
	assert.Equal(t, PaymentChange{Method: shop.PaymentCard}, payload)
}

func TestOrderForm_HighlightExclusiveAndIdempotent(t *testing.T) {
	form := NewOrderForm(ui.CloneTemplate(NewTemplates().Order), &recordingBus{})
	card := ui.Find(form.Root(), "button[name=card]")
	cash := ui.Find(form.Root(), "button[name=cash]")

	form.SelectPayment(shop.PaymentCard)
	form.SelectPayment(shop.PaymentCard)
	form.SelectPayment(shop.PaymentCash)

	assert.False(t, card.HasClass("button_alt-active"))
	assert.True(t, cash.HasClass("button_alt-active"))
}

func TestOrderForm_RenderRederivesHighlightFromDraft(t *testing.T) {
	bus := &recordingBus{}
	form := NewOrderForm(ui.CloneTemplate(NewTemplates().Order), bus)
	cash := ui.Find(form.Root(), "button[name=cash]")

	// Re-opening the step pushes the draft's current payment back in; this
	// must highlight without republishing the change.
	before := len(bus.events)
	form.Render(Patch{"payment": string(shop.PaymentCash)})

	assert.True(t, cash.HasClass("button_alt-active"))
	assert.Len(t, bus.events, before)
}

func TestOrderForm_ClearDropsHighlight(t *testing.T) {
	form := NewOrderForm(ui.CloneTemplate(NewTemplates().Order), &recordingBus{})
	form.SelectPayment(shop.PaymentCard)
	form.Render(Patch{"address": "Spb"})

	form.Clear()

	assert.False(t, ui.Find(form.Root(), "button[name=card]").HasClass("button_alt-active"))
	assert.Empty(t, ui.Find(form.Root(), "input[name=address]").Value)
}
