// ABOUTME: Terminal UI formatting for edjs output.
// ABOUTME: Uses glamour for markdown previews and fatih/color for styling.

package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"

	"github.com/deathau/editorjs-playground/internal/models"
)

var (
	faint = color.New(color.Faint).SprintFunc()
	bold  = color.New(color.Bold).SprintFunc()
	cyan  = color.New(color.FgCyan).SprintFunc()
)

type TagCount struct {
	Name  string
	Count int
}

func FormatDocumentListItem(doc *models.Document) string {
	var sb strings.Builder

	// ID prefix and title
	idPrefix := doc.ID.String()[:6]
	sb.WriteString(fmt.Sprintf("  %s  %s\n", faint(idPrefix), bold(doc.Title)))

	// Block count
	sb.WriteString(fmt.Sprintf("         %s %d\n", faint("Blocks:"), len(doc.Blocks)))

	// Tags line if present
	if tags := doc.Tags(); len(tags) > 0 {
		sb.WriteString(fmt.Sprintf("         %s %s\n",
			faint("Tags:"),
			cyan(strings.Join(tags, ", "))))
	}

	// Date
	sb.WriteString(fmt.Sprintf("         %s %s\n",
		faint("Updated:"),
		faint(doc.UpdatedAt.Format("2006-01-02 15:04"))))

	return sb.String()
}

func FormatDocumentHeader(doc *models.Document) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s\n", bold(doc.Title)))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("ID:"), faint(doc.ID.String())))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Created:"), faint(doc.CreatedAt.Format("2006-01-02 15:04"))))
	sb.WriteString(fmt.Sprintf("%s %s\n", faint("Updated:"), faint(doc.UpdatedAt.Format("2006-01-02 15:04"))))

	if tags := doc.Tags(); len(tags) > 0 {
		sb.WriteString(fmt.Sprintf("%s %s\n", faint("Tags:"), cyan(strings.Join(tags, ", "))))
	}

	sb.WriteString(Separator())
	return sb.String()
}

// FormatPreview renders a markdown preview of a document for the terminal.
func FormatPreview(markdown string) (string, error) {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		// Fallback to raw content if renderer fails
		return markdown, nil //nolint:nilerr // Intentional fallback
	}

	out, err := renderer.Render(markdown)
	if err != nil {
		// Fallback to raw content if rendering fails
		return markdown, nil //nolint:nilerr // Intentional fallback
	}
	return out, nil
}

func FormatTagList(tags []TagCount) string {
	var sb strings.Builder

	for _, t := range tags {
		sb.WriteString(fmt.Sprintf("  %s %s\n",
			cyan(t.Name),
			faint(fmt.Sprintf("(%d)", t.Count))))
	}

	return sb.String()
}

func Separator() string {
	return faint(strings.Repeat("─", 50)) + "\n"
}

func Success(msg string) string {
	return color.New(color.FgGreen).Sprint("✓ ") + msg
}

func Error(msg string) string {
	return color.New(color.FgRed).Sprint("✗ ") + msg
}
