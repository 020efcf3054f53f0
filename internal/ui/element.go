// Package ui provides the in-memory node tree the view layer renders into,
// together with event dispatch, template cloning and the required-element
// lookup every view constructor relies on.
package ui

// EventType names a native UI signal.
type EventType string

const (
	Click  EventType = "click"
	Input  EventType = "input"
	Submit EventType = "submit"
	KeyUp  EventType = "keyup"
)

// Event is a UI signal dispatched into the tree. Input events carry the
// edited field name and its new value; keyboard events carry the key.
type Event struct {
	Type   EventType
	Target *Element
	Field  string
	Value  string
	Key    string

	defaultPrevented bool
}

// PreventDefault suppresses the signal's default action (form submission
// navigation, in browser terms).
func (e *Event) PreventDefault() { e.defaultPrevented = true }

// DefaultPrevented reports whether PreventDefault was called.
func (e *Event) DefaultPrevented() bool { return e.defaultPrevented }

// Element is a node of the visual tree.
type Element struct {
	Tag      string
	ID       string
	Name     string
	Text     string
	Value    string
	Disabled bool
	Attrs    map[string]string

	classes  []string
	parent   *Element
	children []*Element
	handlers map[EventType][]func(*Event)
}

// NewElement creates an element with the given tag.
func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

// WithID sets the element id and returns the element for chaining.
func (el *Element) WithID(id string) *Element {
	el.ID = id
	return el
}

// WithName sets the element name and returns the element for chaining.
func (el *Element) WithName(name string) *Element {
	el.Name = name
	return el
}

// WithClass adds classes and returns the element for chaining.
func (el *Element) WithClass(classes ...string) *Element {
	for _, c := range classes {
		el.AddClass(c)
	}
	return el
}

// WithAttr sets an attribute and returns the element for chaining.
func (el *Element) WithAttr(key, value string) *Element {
	if el.Attrs == nil {
		el.Attrs = make(map[string]string)
	}
	el.Attrs[key] = value
	return el
}

// WithText sets the text content and returns the element for chaining.
func (el *Element) WithText(text string) *Element {
	el.Text = text
	return el
}

// Append adds children, reparenting them to el, and returns el for chaining.
func (el *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = el
		el.children = append(el.children, c)
	}
	return el
}

// ReplaceChildren detaches all current children and appends the given ones.
func (el *Element) ReplaceChildren(children ...*Element) {
	for _, c := range el.children {
		c.parent = nil
	}
	el.children = nil
	el.Append(children...)
}

// Children returns the current child list.
func (el *Element) Children() []*Element {
	return append([]*Element(nil), el.children...)
}

// Parent returns the element's parent, nil at the root.
func (el *Element) Parent() *Element { return el.parent }

// SetText sets the text content. Writing the same value twice leaves the
// same visible result.
func (el *Element) SetText(text string) { el.Text = text }

// SetDisabled sets the disabled state.
func (el *Element) SetDisabled(disabled bool) { el.Disabled = disabled }

// HasClass reports whether the class is present.
func (el *Element) HasClass(name string) bool {
	for _, c := range el.classes {
		if c == name {
			return true
		}
	}
	return false
}

// AddClass adds a class if absent.
func (el *Element) AddClass(name string) {
	if !el.HasClass(name) {
		el.classes = append(el.classes, name)
	}
}

// RemoveClass removes a class if present.
func (el *Element) RemoveClass(name string) {
	for i, c := range el.classes {
		if c == name {
			el.classes = append(el.classes[:i], el.classes[i+1:]...)
			return
		}
	}
}

// ToggleClass adds or removes a class according to on. Idempotent.
func (el *Element) ToggleClass(name string, on bool) {
	if on {
		el.AddClass(name)
	} else {
		el.RemoveClass(name)
	}
}

// On registers a handler for an event type on this element.
func (el *Element) On(t EventType, fn func(*Event)) {
	if fn == nil {
		return
	}
	if el.handlers == nil {
		el.handlers = make(map[EventType][]func(*Event))
	}
	el.handlers[t] = append(el.handlers[t], fn)
}

// Dispatch delivers the event to this element's handlers and then bubbles it
// up through the ancestor chain, mirroring how container-level listeners see
// signals raised on descendants. The event's Target is set to el if unset.
func (el *Element) Dispatch(ev *Event) {
	if ev.Target == nil {
		ev.Target = el
	}
	for node := el; node != nil; node = node.parent {
		handlers := append([]func(*Event){}, node.handlers[ev.Type]...)
		for _, h := range handlers {
			h(ev)
		}
	}
}

// Click is shorthand for dispatching a click event on the element. Disabled
// elements swallow clicks, as native buttons do.
func (el *Element) Click() {
	if el.Disabled {
		return
	}
	el.Dispatch(&Event{Type: Click})
}

// Clone deep-copies the element subtree. Handlers are not copied: a clone is
// fresh markup, listeners are attached by whoever constructs a component
// around it.
func (el *Element) Clone() *Element {
	dup := &Element{
		Tag:      el.Tag,
		ID:       el.ID,
		Name:     el.Name,
		Text:     el.Text,
		Value:    el.Value,
		Disabled: el.Disabled,
		classes:  append([]string(nil), el.classes...),
	}
	if el.Attrs != nil {
		dup.Attrs = make(map[string]string, len(el.Attrs))
		for k, v := range el.Attrs {
			dup.Attrs[k] = v
		}
	}
	for _, c := range el.children {
		dup.Append(c.Clone())
	}
	return dup
}

// CloneTemplate clones a template's content subtree.
func CloneTemplate(tpl *Element) *Element {
	return tpl.Clone()
}

// Walk visits el and every descendant depth-first.
func Walk(el *Element, visit func(*Element)) {
	visit(el)
	for _, c := range el.children {
		Walk(c, visit)
	}
}
