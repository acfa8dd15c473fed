// ABOUTME: Import command for restoring documents from an export file.
// ABOUTME: Accepts JSON exports; --replace swaps a document in place.

package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import documents from a JSON export",
	Long:  `Restore documents from a JSON export file. Existing documents with the same ID are updated when --replace is set, otherwise skipped.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		replaceFlag, _ := cmd.Flags().GetBool("replace")

		f, err := os.Open(args[0]) //nolint:gosec // User-specified file path is expected CLI behavior
		if err != nil {
			return fmt.Errorf("failed to open export file: %w", err)
		}
		defer func() { _ = f.Close() }()

		docs, err := export.ReadJSON(f)
		if err != nil {
			return fmt.Errorf("failed to read export: %w", err)
		}

		var imported, skipped int
		for _, doc := range docs {
			_, err := store.GetDocumentByID(dbConn, doc.ID)
			switch {
			case err == nil && replaceFlag:
				if err := store.UpdateDocument(dbConn, doc); err != nil {
					return fmt.Errorf("failed to update document %s: %w", doc.ID.String()[:6], err)
				}
				imported++
			case err == nil:
				skipped++
			case errors.Is(err, store.ErrDocumentNotFound):
				if err := store.CreateDocument(dbConn, doc); err != nil {
					return fmt.Errorf("failed to create document %s: %w", doc.ID.String()[:6], err)
				}
				imported++
			default:
				return fmt.Errorf("failed to check document %s: %w", doc.ID.String()[:6], err)
			}
		}

		msg := fmt.Sprintf("Imported %d documents", imported)
		if skipped > 0 {
			msg += fmt.Sprintf(" (%d skipped, use --replace to overwrite)", skipped)
		}
		fmt.Println(ui.Success(msg))
		return nil
	},
}

func init() {
	importCmd.Flags().Bool("replace", false, "overwrite existing documents with the same ID")
	rootCmd.AddCommand(importCmd)
}
