package view

import "github.com/webshop/storefront/internal/ui"

// ContactsForm is the second wizard step: email and phone. All behavior
// comes from the generic form wrapper.
type ContactsForm struct {
	Form
}

// NewContactsForm wraps the contacts form template.
func NewContactsForm(root *ui.Element, events Publisher) *ContactsForm {
	return &ContactsForm{Form: *NewForm(root, events)}
}
