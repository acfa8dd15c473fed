// ABOUTME: Lifecycle controller for the tagged-text block.
// ABOUTME: Implements the host contract: construct, render, save, merge, validate, paste.

package block

import (
	"strings"

	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/sanitize"
)

type Block struct {
	api      *API
	config   Config
	readOnly bool

	wrapper *dom.Element
	textEl  *dom.Element
	tagsEl  *dom.Element

	// Cache record handed out by Data; overwritten on every read.
	data models.BlockData
}

// New constructs a block from saved data. Missing inputs default rather than
// error: nil data means empty text and no tags, nil api means DefaultAPI.
func New(data *models.BlockData, config Config, api *API, readOnly bool) *Block {
	b := &Block{
		api:      api.withDefaults(),
		config:   config.withDefaults(),
		readOnly: readOnly,
	}
	b.drawView()
	b.SetData(data)
	return b
}

// Render returns the wrapping container. Idempotent: every call returns the
// same instance, never a rebuild.
func (b *Block) Render() *dom.Element {
	return b.wrapper
}

// Save derives a fresh record from the rendered tree passed in, by selector,
// independent of the internal cache.
func (b *Block) Save(root *dom.Element) models.BlockData {
	data := models.BlockData{}

	if textEl := root.FindByClass(ClassText); textEl != nil {
		data.Text = sanitize.Text(textEl.InnerHTML())
	}
	for _, tagEl := range root.FindAllByClass(ClassTag) {
		data.Tags = append(data.Tags, tagEl.TextContent())
	}
	return data
}

// Merge appends the incoming block's text (no separator) and unions its tags,
// novel identifiers after this block's own.
func (b *Block) Merge(incoming models.BlockData) {
	current := b.Data()

	merged := models.NewTagList(current.Tags...)
	merged.Union(incoming.Tags)

	b.SetData(&models.BlockData{
		Text: current.Text + incoming.Text,
		Tags: merged.Names(),
	})
}

// Validate rejects records whose trimmed text is empty, unless the block is
// configured to preserve blanks. Tags never affect validity.
func (b *Block) Validate(data models.BlockData) bool {
	if strings.TrimSpace(data.Text) != "" {
		return true
	}
	return b.config.PreserveBlank
}

// PasteEvent carries the node the host extracted from a paste payload.
type PasteEvent struct {
	Node *dom.Element
}

// OnPaste replaces the text with the pasted node's inner markup and keeps the
// existing tags untouched. The host has already filtered the payload down to
// the tags declared in PasteConfig.
func (b *Block) OnPaste(event PasteEvent) {
	data := models.BlockData{
		Tags: b.tagNames(),
	}
	if event.Node != nil {
		data.Text = sanitize.Text(event.Node.InnerHTML())
	}
	b.SetData(&data)
}
