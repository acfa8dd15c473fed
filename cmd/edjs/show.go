// ABOUTME: Show command for displaying a single document.
// ABOUTME: Renders a glamour markdown preview or the raw block data.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var showCmd = &cobra.Command{
	Use:   "show <id-prefix>",
	Short: "Show a document",
	Long:  `Display a document by ID prefix. Shows a rendered preview by default; use --raw for the stored block markup.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rawFlag, _ := cmd.Flags().GetBool("raw")

		doc, err := resolveDocument(args[0])
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}

		fmt.Print(ui.FormatDocumentHeader(doc))

		if rawFlag {
			for i, b := range doc.Blocks {
				fmt.Printf("[%d] %s\n", i, b.Data.Text)
				if len(b.Data.Tags) > 0 {
					fmt.Printf("    tags: %v\n", b.Data.Tags)
				}
			}
			return nil
		}

		preview, err := ui.FormatPreview(export.ToMarkdown(doc))
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Print(preview)
		return nil
	},
}

// resolveDocument finds a document by full UUID or ID prefix.
func resolveDocument(id string) (*models.Document, error) {
	if parsed, err := uuid.Parse(id); err == nil {
		return store.GetDocumentByID(dbConn, parsed)
	}
	doc, err := store.GetDocumentByPrefix(dbConn, id)
	if err != nil {
		if errors.Is(err, store.ErrPrefixTooShort) {
			fmt.Fprintln(os.Stderr, "Hint: ID prefixes need at least 6 characters.")
		}
		return nil, err
	}
	return doc, nil
}

func init() {
	showCmd.Flags().Bool("raw", false, "show stored block markup instead of a preview")
	rootCmd.AddCommand(showCmd)
}
