package view

import (
	"github.com/webshop/storefront/internal/ui"
)

// FieldChange is the payload of a "<form>:input" event.
type FieldChange struct {
	Field string
	Value string
}

// Form is the generic form wrapper. It turns field edits and submission on
// its root into bus events named after the form's identity, and reflects
// externally computed validity back in through its setters. It performs no
// validation of its own.
type Form struct {
	Component
	events Publisher
	name   string
	submit *ui.Element
	errors *ui.Element
}

// NewForm wraps a form element. Field edits publish "<name>:input" carrying
// {Field, Value}; submission suppresses the default action and publishes
// "<name>:submit" with no payload.
func NewForm(root *ui.Element, events Publisher) *Form {
	submit := ui.MustFind(root, "button[type=submit]")
	errors := ui.MustFind(root, ".form__errors")

	f := &Form{
		Component: newComponent(root),
		events:    events,
		name:      root.Name,
		submit:    submit,
		errors:    errors,
	}

	root.On(ui.Input, func(e *ui.Event) {
		f.events.Publish(f.name+":input", FieldChange{Field: e.Field, Value: e.Value})
	})
	root.On(ui.Submit, func(e *ui.Event) {
		e.PreventDefault()
		f.events.Publish(f.name+":submit", nil)
	})

	f.Bind("valid", func(v any) { submit.SetDisabled(!asBool(v)) })
	f.Bind("errors", func(v any) { setText(errors, v) })

	// One setter per named input, so Render can write field values back when
	// a step is reopened.
	ui.Walk(root, func(el *ui.Element) {
		if el.Tag == "input" && el.Name != "" {
			input := el
			f.Bind(input.Name, func(v any) { input.Value = asString(v) })
		}
	})

	return f
}

// Name returns the form's identity, the prefix of its event names.
func (f *Form) Name() string { return f.name }

// Clear resets every named input to empty, as a native form reset would.
func (f *Form) Clear() {
	ui.Walk(f.Root(), func(el *ui.Element) {
		if el.Tag == "input" {
			el.Value = ""
		}
	})
}
