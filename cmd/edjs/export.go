// ABOUTME: Export command for backing up documents.
// ABOUTME: Writes JSON, YAML, or markdown to a file or stdout.

package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export documents",
	Long:  `Export all documents (or one, with --doc) as JSON, YAML, or markdown.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		formatFlag, _ := cmd.Flags().GetString("format")
		outputFlag, _ := cmd.Flags().GetString("output")
		docFlag, _ := cmd.Flags().GetString("doc")

		var docs []*models.Document
		if docFlag != "" {
			doc, err := resolveDocument(docFlag)
			if err != nil {
				return fmt.Errorf("failed to get document: %w", err)
			}
			docs = []*models.Document{doc}
		} else {
			all, err := store.ListDocuments(dbConn, nil, 0)
			if err != nil {
				return fmt.Errorf("failed to list documents: %w", err)
			}
			docs = all
		}

		out := os.Stdout
		if outputFlag != "" {
			f, err := os.Create(outputFlag) //nolint:gosec // User-specified output path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()
			out = f
		}

		switch formatFlag {
		case "json":
			if err := export.WriteJSON(docs, out); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
		case "yaml":
			if err := export.WriteYAML(docs, out); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
		case "md", "markdown":
			var sb strings.Builder
			for i, doc := range docs {
				if i > 0 {
					sb.WriteString("\n---\n\n")
				}
				sb.WriteString(export.ToMarkdown(doc))
			}
			if _, err := fmt.Fprint(out, sb.String()); err != nil {
				return fmt.Errorf("failed to write export: %w", err)
			}
		default:
			return fmt.Errorf("unknown format: %s (want json, yaml, or md)", formatFlag)
		}

		if outputFlag != "" {
			fmt.Println(ui.Success(fmt.Sprintf("Exported %d documents to %s", len(docs), outputFlag)))
		}
		return nil
	},
}

func init() {
	exportCmd.Flags().StringP("format", "f", "json", "export format: json, yaml, or md")
	exportCmd.Flags().StringP("output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().String("doc", "", "export a single document by ID prefix")
	rootCmd.AddCommand(exportCmd)
}
