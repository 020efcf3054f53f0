package view

import (
	"github.com/webshop/storefront/internal/domain/shop"
	"github.com/webshop/storefront/internal/ui"
)

// modalKeyOwner keys the document escape listener; registering under a fixed
// owner keeps repeated opens from stacking handlers.
const modalKeyOwner = "modal"

// Modal owns the single active/inactive state and the single content slot.
// Escape, backdrop click and the close button all go through the same Close
// path; there are no distinct cancellation outcomes.
type Modal struct {
	Component
	doc     *ui.Document
	events  Publisher
	content *ui.Element
	active  bool
}

// NewModal wraps the modal container.
func NewModal(root *ui.Element, doc *ui.Document, events Publisher) *Modal {
	closeButton := ui.MustFind(root, ".modal__close")
	content := ui.MustFind(root, ".modal__content")

	m := &Modal{
		Component: newComponent(root),
		doc:       doc,
		events:    events,
		content:   content,
	}

	closeButton.On(ui.Click, func(*ui.Event) { m.Close() })
	root.On(ui.Click, func(e *ui.Event) {
		// Backdrop only: clicks on the content bubble here too.
		if e.Target == root {
			m.Close()
		}
	})

	// Re-entrant render while open swaps content in place, without a
	// close/open flash.
	m.Bind("content", func(v any) {
		if el, ok := v.(*ui.Element); ok {
			content.ReplaceChildren(el)
		}
	})

	return m
}

// Open activates the modal, registers the document escape listener and
// publishes EventModalOpen. Opening an already open modal does not register
// the listener twice.
func (m *Modal) Open() {
	m.Root().AddClass("modal_active")
	m.doc.AddKeyListener(modalKeyOwner, func(e *ui.Event) {
		if e.Key == "Escape" {
			m.Close()
		}
	})
	m.active = true
	m.events.Publish(shop.EventModalOpen, nil)
}

// Close deactivates the modal, clears the content slot, removes the escape
// listener and publishes EventModalClose.
func (m *Modal) Close() {
	m.Root().RemoveClass("modal_active")
	m.content.ReplaceChildren()
	m.doc.RemoveKeyListener(modalKeyOwner)
	m.active = false
	m.events.Publish(shop.EventModalClose, nil)
}

// IsOpen reports whether the modal is active.
func (m *Modal) IsOpen() bool { return m.active }

// Content returns the current content slot children.
func (m *Modal) Content() []*ui.Element { return m.content.Children() }
