// ABOUTME: Static capability declarations consumed by the host at registration.
// ABOUTME: Toolbox metadata, sanitize rules, paste acceptance, conversion, read-only.

package block

import "github.com/deathau/editorjs-playground/internal/sanitize"

// Kind is the block-type identifier used in saved documents.
const Kind = "taggedtext"

const toolboxIcon = `<svg width="17" height="15" viewBox="0 0 336 276" xmlns="http://www.w3.org/2000/svg"><path d="M291 150V79c0-19-15-34-34-34H79c-19 0-34 15-34 34v42l67-44 81 72 56-29 42 30zm0 52l-43-30-56 30-81-67-66 39v23c0 19 15 34 34 34h178c17 0 31-13 34-29zM79 0h178c44 0 79 35 79 79v118c0 44-35 79-79 79H79c-44 0-79-35-79-79V79C0 35 35 0 79 0z"/></svg>`

type ToolboxEntry struct {
	Title string
	Icon  string
}

// Toolbox describes the block in the host's insert menu.
func Toolbox() ToolboxEntry {
	return ToolboxEntry{
		Title: "Tagged Text",
		Icon:  toolboxIcon,
	}
}

// SanitizeRules declares, per data field, the markup the host's sanitizer
// may retain. Only line breaks survive in text.
func SanitizeRules() map[string]sanitize.Rule {
	return map[string]sanitize.Rule{
		"text": sanitize.TextRule,
	}
}

// PasteAcceptance declares which pasted elements the host should route here.
type PasteAcceptance struct {
	Tags []string
}

func PasteConfig() PasteAcceptance {
	return PasteAcceptance{Tags: []string{"P"}}
}

// Conversion declares the field used for lossless round-trips when this
// block is converted to or from other kinds exposing the same field.
type Conversion struct {
	Export string
	Import string
}

func ConversionConfig() Conversion {
	return Conversion{Export: "text", Import: "text"}
}

func IsReadOnlySupported() bool {
	return true
}
