// ABOUTME: Block-kind registry mapping kind names to constructors and capabilities.
// ABOUTME: The host consumes capability declarations here at registration time.

package editor

import (
	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/sanitize"
)

// Block is the lifecycle surface the host drives on a mounted block.
type Block interface {
	Render() *dom.Element
	Save(root *dom.Element) models.BlockData
	Validate(data models.BlockData) bool
	Merge(incoming models.BlockData)
	OnPaste(event block.PasteEvent)
}

// Constructor builds a mounted block from saved data. Nil data means empty.
type Constructor func(data *models.BlockData, config block.Config, api *block.API, readOnly bool) Block

// Capabilities are the static declarations a kind exposes to the host.
type Capabilities struct {
	Toolbox       block.ToolboxEntry
	PasteTags     []string
	ConversionKey string
	ReadOnly      bool
	Sanitize      map[string]sanitize.Rule
}

type registration struct {
	construct Constructor
	caps      Capabilities
}

type Registry struct {
	kinds map[string]registration
}

func NewRegistry() *Registry {
	return &Registry{kinds: make(map[string]registration)}
}

func (r *Registry) Register(kind string, construct Constructor, caps Capabilities) {
	r.kinds[kind] = registration{construct: construct, caps: caps}
}

// Capabilities returns the declarations for kind; ok is false for unknown kinds.
func (r *Registry) Capabilities(kind string) (Capabilities, bool) {
	reg, ok := r.kinds[kind]
	return reg.caps, ok
}

// Kinds returns the registered kind names.
func (r *Registry) Kinds() []string {
	out := make([]string, 0, len(r.kinds))
	for k := range r.kinds {
		out = append(out, k)
	}
	return out
}

// DefaultRegistry registers the built-in tagged-text kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(block.Kind,
		func(data *models.BlockData, config block.Config, api *block.API, readOnly bool) Block {
			return block.New(data, config, api, readOnly)
		},
		Capabilities{
			Toolbox:       block.Toolbox(),
			PasteTags:     block.PasteConfig().Tags,
			ConversionKey: block.ConversionConfig().Export,
			ReadOnly:      block.IsReadOnlySupported(),
			Sanitize:      block.SanitizeRules(),
		},
	)
	return r
}
