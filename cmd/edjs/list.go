// ABOUTME: List command for displaying documents.
// ABOUTME: Supports filtering by block tag and limiting result count.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents",
	Long:  `List all documents, newest first, optionally filtered by block tag.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		tagFlag, _ := cmd.Flags().GetString("tag")
		limitFlag, _ := cmd.Flags().GetInt("limit")

		var tag *string
		if tagFlag != "" {
			tag = &tagFlag
		}

		docs, err := store.ListDocuments(dbConn, tag, limitFlag)
		if err != nil {
			return fmt.Errorf("failed to list documents: %w", err)
		}

		if len(docs) == 0 {
			fmt.Println("No documents found.")
			return nil
		}

		for _, doc := range docs {
			fmt.Print(ui.FormatDocumentListItem(doc))
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringP("tag", "t", "", "filter by block tag")
	listCmd.Flags().IntP("limit", "n", 20, "number of results")
	rootCmd.AddCommand(listCmd)
}
