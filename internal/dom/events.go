// ABOUTME: Key and click event dispatch for the element tree.
// ABOUTME: Single-goroutine discipline; handlers run synchronously in FireX calls.

package dom

// Key identifies a keyboard key by its browser key code.
type Key int

const (
	KeyBackspace Key = 8
	KeyDelete    Key = 46
)

// OnKeyUp registers the key-up handler. A nil handler removes it.
func (e *Element) OnKeyUp(fn func(Key)) {
	e.keyUp = fn
}

// HasKeyUpHandler reports whether a key-up handler is attached.
func (e *Element) HasKeyUpHandler() bool {
	return e.keyUp != nil
}

// FireKeyUp dispatches a key-up event to the element's handler, if any.
func (e *Element) FireKeyUp(key Key) {
	if e.keyUp != nil {
		e.keyUp(key)
	}
}

// OnClick registers the click handler. A nil handler removes it.
func (e *Element) OnClick(fn func()) {
	e.click = fn
}

// Click dispatches a click event to the element's handler, if any.
func (e *Element) Click() {
	if e.click != nil {
		e.click()
	}
}
