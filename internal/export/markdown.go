// ABOUTME: Markdown conversion: documents to markdown and markdown intake.
// ABOUTME: Intake renders markdown with goldmark and feeds the block paste path.

package export

import (
	"bytes"
	"context"
	"fmt"
	"html"
	"strings"

	"github.com/yuin/goldmark"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/dom"
	"github.com/deathau/editorjs-playground/internal/editor"
	"github.com/deathau/editorjs-playground/internal/models"
)

// ToMarkdown renders a document as markdown: one paragraph per block, line
// breaks become hard breaks, and a block's tags trail it as a #tag line.
func ToMarkdown(doc *models.Document) string {
	var sb strings.Builder

	if doc.Title != "" {
		fmt.Fprintf(&sb, "# %s\n\n", doc.Title)
	}
	for _, b := range doc.Blocks {
		text := strings.ReplaceAll(b.Data.Text, "<br>", "  \n")
		sb.WriteString(html.UnescapeString(text))
		sb.WriteString("\n")
		if len(b.Data.Tags) > 0 {
			for i, tag := range b.Data.Tags {
				if i > 0 {
					sb.WriteString(" ")
				}
				sb.WriteString("#" + tag)
			}
			sb.WriteString("\n")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

// FromMarkdown converts markdown into a document: goldmark renders the source
// to HTML and every paragraph is pasted into a fresh tagged-text block, which
// applies the block's own paste filtering and sanitization.
func FromMarkdown(title string, source []byte) (*models.Document, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert(source, &buf); err != nil {
		return nil, fmt.Errorf("render markdown: %w", err)
	}

	host := editor.New(editor.DefaultRegistry(), block.Config{}, block.DefaultAPI(), false)
	for _, node := range dom.ParseFragment(buf.String()) {
		if node.IsText() || node.TagName() != "p" {
			continue
		}
		i, err := host.AddBlock(block.Kind, nil)
		if err != nil {
			return nil, err
		}
		if err := host.Paste(i, node.OuterHTML()); err != nil {
			return nil, err
		}
	}

	doc, err := host.Save(context.Background())
	if err != nil {
		return nil, err
	}
	doc.Title = title
	return doc, nil
}
