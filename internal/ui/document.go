package ui

// Document owns the element tree's root and the document-level key listeners
// used for modal cancellation.
type Document struct {
	Body *Element

	keyListeners []keyListener
}

type keyListener struct {
	owner string
	fn    func(*Event)
}

// NewDocument creates a document around the given body element.
func NewDocument(body *Element) *Document {
	return &Document{Body: body}
}

// AddKeyListener registers a document-level keyup listener under an owner
// token. Registering the same owner again replaces the previous listener, so
// repeated registration cannot stack handlers.
func (d *Document) AddKeyListener(owner string, fn func(*Event)) {
	for i, l := range d.keyListeners {
		if l.owner == owner {
			d.keyListeners[i].fn = fn
			return
		}
	}
	d.keyListeners = append(d.keyListeners, keyListener{owner: owner, fn: fn})
}

// RemoveKeyListener drops the listener registered under the owner token.
// Removing an unregistered owner is a no-op.
func (d *Document) RemoveKeyListener(owner string) {
	for i, l := range d.keyListeners {
		if l.owner == owner {
			d.keyListeners = append(d.keyListeners[:i], d.keyListeners[i+1:]...)
			return
		}
	}
}

// KeyListenerCount returns the number of registered key listeners.
func (d *Document) KeyListenerCount() int {
	return len(d.keyListeners)
}

// DispatchKey delivers a keyup event to every document-level listener in
// registration order.
func (d *Document) DispatchKey(key string) {
	ev := &Event{Type: KeyUp, Key: key}
	listeners := append([]keyListener(nil), d.keyListeners...)
	for _, l := range listeners {
		l.fn(ev)
	}
}
