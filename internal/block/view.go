// ABOUTME: View construction for the tagged-text block.
// ABOUTME: Builds wrapper, editable region, and tag strip from configuration alone.

package block

import "github.com/deathau/editorjs-playground/internal/dom"

// Class names owned by the block. The host's style classes are layered on top.
const (
	ClassWrapper = "cdx-tagged-text"
	ClassText    = "cdx-tagged-text__text"
	ClassTags    = "cdx-tagged-text__tags"
	ClassTag     = "cdx-tagged-text__tag"
)

// drawView builds the three view handles. Pure construction: no dependency on
// prior text or tag values. The key-up listener is attached only when editing
// is enabled; its sole job is the backspace-empty cleanup in data.go.
func (b *Block) drawView() {
	text := dom.NewElement("div")
	text.AddClass(ClassText, b.api.Styles.Input)
	text.SetContentEditable(!b.readOnly)
	text.SetAttribute("data-placeholder", b.api.Translate(b.config.Placeholder))

	tags := dom.NewElement("div")
	tags.AddClass(ClassTags)

	wrapper := dom.NewElement("div")
	wrapper.AddClass(ClassWrapper, b.api.Styles.Block)
	wrapper.AppendChild(text)
	wrapper.AppendChild(tags)

	if !b.readOnly {
		text.OnKeyUp(b.onKeyUp)
	}

	b.wrapper = wrapper
	b.textEl = text
	b.tagsEl = tags
}
