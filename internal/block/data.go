// ABOUTME: Data synchronizer between the visual tree and the BlockData record.
// ABOUTME: The tree is the source of truth while mounted; reads recompute.

package block

import (
	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/sanitize"
)

// Data recomputes the record from the live tree. The cache field is
// overwritten on every call; it exists only as a stable reference for
// callers, never as the authority.
func (b *Block) Data() models.BlockData {
	b.data = models.BlockData{
		Text: sanitize.Text(b.textEl.InnerHTML()),
		Tags: b.tagNames(),
	}
	return b.data
}

// SetData pushes a record into the tree: full destructive replace of both the
// editable region and the tag strip. A nil record means empty.
func (b *Block) SetData(data *models.BlockData) {
	var d models.BlockData
	if data != nil {
		d = *data
	}

	b.textEl.SetInnerHTML(d.Text)

	for _, tagEl := range b.tagsEl.Children() {
		b.tagsEl.RemoveChild(tagEl)
	}
	for _, name := range d.Tags {
		b.addTag(name)
	}
}

// addTag appends a tag child if-and-only-if the identifier is absent.
func (b *Block) addTag(name string) {
	if b.hasTag(name) {
		return
	}
	tagEl := dom.NewElement("span")
	tagEl.AddClass(ClassTag)
	tagEl.SetTextContent(name)
	b.tagsEl.AppendChild(tagEl)
}

// removeTag deletes the one matching tag child.
func (b *Block) removeTag(name string) {
	for _, tagEl := range b.tagsEl.ChildElements() {
		if tagEl.TextContent() == name {
			b.tagsEl.RemoveChild(tagEl)
			return
		}
	}
}

func (b *Block) hasTag(name string) bool {
	for _, tagEl := range b.tagsEl.ChildElements() {
		if tagEl.TextContent() == name {
			return true
		}
	}
	return false
}

// tagNames enumerates the tag strip in tree order. The strip is the single
// source of truth for membership; there is no shadow field to drift.
func (b *Block) tagNames() []string {
	var names []string
	for _, tagEl := range b.tagsEl.ChildElements() {
		names = append(names, tagEl.TextContent())
	}
	return names
}

// onKeyUp collapses the stray line-break element some browsers leave behind
// when an editable region is emptied with Backspace or Delete.
func (b *Block) onKeyUp(key dom.Key) {
	if key != dom.KeyBackspace && key != dom.KeyDelete {
		return
	}
	if b.textEl.TextContent() == "" {
		b.textEl.SetInnerHTML("")
	}
}
