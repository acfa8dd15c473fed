// ABOUTME: Minimal host editor: mounts blocks, orchestrates save/merge/paste/convert.
// ABOUTME: Coalesces overlapping saves behind a busy flag; one in-flight save at most.

package editor

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/models"
)

var (
	ErrUnknownKind  = errors.New("unknown block kind")
	ErrBlockIndex   = errors.New("block index out of range")
	ErrPasteIgnored = errors.New("paste payload matched no accepted element")
)

type mounted struct {
	id    string
	kind  string
	block Block
	root  *dom.Element
}

type Editor struct {
	registry *Registry
	api      *block.API
	config   block.Config
	readOnly bool

	title  string
	docID  string
	blocks []*mounted

	mu       sync.Mutex
	saving   bool
	lastSave *models.Document
}

func New(registry *Registry, config block.Config, api *block.API, readOnly bool) *Editor {
	if registry == nil {
		registry = DefaultRegistry()
	}
	return &Editor{
		registry: registry,
		api:      api,
		config:   config,
		readOnly: readOnly,
	}
}

// Load constructs and mounts every block of the document. Blocks of unknown
// kinds are skipped rather than failing the whole document.
func (e *Editor) Load(doc *models.Document) {
	e.blocks = nil
	if doc == nil {
		return
	}
	e.title = doc.Title
	e.docID = doc.ID.String()
	for _, saved := range doc.Blocks {
		reg, ok := e.registry.kinds[saved.Kind]
		if !ok {
			continue
		}
		data := saved.Data
		blk := reg.construct(&data, e.config, e.api, e.readOnly)
		e.blocks = append(e.blocks, &mounted{
			id:    saved.ID,
			kind:  saved.Kind,
			block: blk,
			root:  blk.Render(),
		})
	}
}

// AddBlock mounts a new block after the existing ones and returns its index.
func (e *Editor) AddBlock(kind string, data *models.BlockData) (int, error) {
	reg, ok := e.registry.kinds[kind]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownKind, kind)
	}
	blk := reg.construct(data, e.config, e.api, e.readOnly)
	e.blocks = append(e.blocks, &mounted{
		id:    uuid.NewString(),
		kind:  kind,
		block: blk,
		root:  blk.Render(),
	})
	return len(e.blocks) - 1, nil
}

// Len returns the number of mounted blocks.
func (e *Editor) Len() int {
	return len(e.blocks)
}

// Block returns the mounted block at index i.
func (e *Editor) Block(i int) (Block, error) {
	if i < 0 || i >= len(e.blocks) {
		return nil, ErrBlockIndex
	}
	return e.blocks[i].block, nil
}

// Save reads every block back from its rendered tree and returns a fresh
// document, dropping blocks whose data fails validation. Overlapping saves
// are coalesced: a call arriving while one is in flight returns the result
// of the in-flight save.
func (e *Editor) Save(ctx context.Context) (*models.Document, error) {
	e.mu.Lock()
	if e.saving {
		last := e.lastSave
		e.mu.Unlock()
		return last, nil
	}
	e.saving = true
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.saving = false
		e.mu.Unlock()
	}()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	doc := models.NewDocument(e.title)
	if e.docID != "" {
		if id, err := uuid.Parse(e.docID); err == nil {
			doc.ID = id
		}
	}
	for _, m := range e.blocks {
		data := m.block.Save(m.root)
		if !m.block.Validate(data) {
			continue
		}
		doc.Blocks = append(doc.Blocks, models.SavedBlock{
			ID:   m.id,
			Kind: m.kind,
			Data: data,
		})
	}

	e.mu.Lock()
	e.lastSave = doc
	e.mu.Unlock()
	return doc, nil
}

// MergeBlocks merges block j into block i and unmounts j. This is the
// backspace-at-start-of-block path; separators are the caller's business.
func (e *Editor) MergeBlocks(i, j int) error {
	if i < 0 || i >= len(e.blocks) || j < 0 || j >= len(e.blocks) || i == j {
		return ErrBlockIndex
	}
	target := e.blocks[i]
	source := e.blocks[j]

	target.block.Merge(source.block.Save(source.root))
	e.blocks = append(e.blocks[:j], e.blocks[j+1:]...)
	return nil
}

// Paste parses markup, keeps only elements matching the block's declared
// paste tags, and dispatches the first match to the block.
func (e *Editor) Paste(i int, markup string) error {
	if i < 0 || i >= len(e.blocks) {
		return ErrBlockIndex
	}
	m := e.blocks[i]
	caps, _ := e.registry.Capabilities(m.kind)

	for _, node := range dom.ParseFragment(markup) {
		if node.IsText() {
			continue
		}
		if !acceptsTag(caps.PasteTags, node.TagName()) {
			continue
		}
		m.block.OnPaste(block.PasteEvent{Node: node})
		return nil
	}
	return ErrPasteIgnored
}

// Convert replaces block i with a block of targetKind, carrying content
// across through both kinds' conversion keys. Only the exported field
// survives; tags do not follow a conversion.
func (e *Editor) Convert(i int, targetKind string) error {
	if i < 0 || i >= len(e.blocks) {
		return ErrBlockIndex
	}
	reg, ok := e.registry.kinds[targetKind]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownKind, targetKind)
	}

	m := e.blocks[i]
	data := m.block.Save(m.root)

	// Both built-in conversion keys are "text"; a kind exporting a
	// different field would be wired through its capabilities here.
	imported := models.BlockData{Text: data.Text}
	blk := reg.construct(&imported, e.config, e.api, e.readOnly)
	e.blocks[i] = &mounted{
		id:    m.id,
		kind:  targetKind,
		block: blk,
		root:  blk.Render(),
	}
	return nil
}

func acceptsTag(accepted []string, tag string) bool {
	for _, a := range accepted {
		if strings.EqualFold(a, tag) {
			return true
		}
	}
	return false
}
