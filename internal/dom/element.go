// ABOUTME: Minimal in-memory element tree standing in for a browser DOM.
// ABOUTME: Elements carry tag name, attributes, classes, children, and handlers.

package dom

// Element is a node in the visual tree. A node with an empty tag name is a
// text node and Text holds its character data; element nodes keep their
// character data in text-node children instead.
type Element struct {
	tag     string
	text    string
	attrs   map[string]string
	classes []string

	editable bool
	children []*Element

	keyUp func(Key)
	click func()
}

func NewElement(tag string) *Element {
	return &Element{tag: tag}
}

func NewText(text string) *Element {
	return &Element{text: text}
}

func (e *Element) TagName() string {
	return e.tag
}

// IsText reports whether this node is a text node.
func (e *Element) IsText() bool {
	return e.tag == ""
}

// Text returns the character data of a text node.
func (e *Element) Text() string {
	return e.text
}

func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

func (e *Element) Attribute(name string) string {
	return e.attrs[name]
}

func (e *Element) AddClass(names ...string) {
	for _, n := range names {
		if n == "" || e.HasClass(n) {
			continue
		}
		e.classes = append(e.classes, n)
	}
}

func (e *Element) RemoveClass(name string) {
	for i, c := range e.classes {
		if c == name {
			e.classes = append(e.classes[:i], e.classes[i+1:]...)
			return
		}
	}
}

func (e *Element) HasClass(name string) bool {
	for _, c := range e.classes {
		if c == name {
			return true
		}
	}
	return false
}

// Classes returns the class list in insertion order.
func (e *Element) Classes() []string {
	out := make([]string, len(e.classes))
	copy(out, e.classes)
	return out
}

func (e *Element) SetContentEditable(editable bool) {
	e.editable = editable
}

func (e *Element) ContentEditable() bool {
	return e.editable
}

func (e *Element) AppendChild(child *Element) {
	e.children = append(e.children, child)
}

func (e *Element) RemoveChild(child *Element) {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i], e.children[i+1:]...)
			return
		}
	}
}

// Children returns the child nodes, text nodes included.
func (e *Element) Children() []*Element {
	out := make([]*Element, len(e.children))
	copy(out, e.children)
	return out
}

// ChildElements returns only the element children, in tree order.
func (e *Element) ChildElements() []*Element {
	var out []*Element
	for _, c := range e.children {
		if !c.IsText() {
			out = append(out, c)
		}
	}
	return out
}

// TextContent returns the concatenated character data of the subtree,
// matching the browser property of the same name.
func (e *Element) TextContent() string {
	if e.IsText() {
		return e.text
	}
	var out string
	for _, c := range e.children {
		out += c.TextContent()
	}
	return out
}

// SetTextContent replaces all children with a single text node.
func (e *Element) SetTextContent(text string) {
	e.children = nil
	if text != "" {
		e.children = []*Element{NewText(text)}
	}
}

// FindByClass returns the first element in the subtree carrying the class,
// depth-first, or nil. The receiver itself is a candidate.
func (e *Element) FindByClass(name string) *Element {
	if e.HasClass(name) {
		return e
	}
	for _, c := range e.children {
		if c.IsText() {
			continue
		}
		if found := c.FindByClass(name); found != nil {
			return found
		}
	}
	return nil
}

// FindAllByClass returns every element in the subtree carrying the class,
// in tree order.
func (e *Element) FindAllByClass(name string) []*Element {
	var out []*Element
	if e.HasClass(name) {
		out = append(out, e)
	}
	for _, c := range e.children {
		if c.IsText() {
			continue
		}
		out = append(out, c.FindAllByClass(name)...)
	}
	return out
}
