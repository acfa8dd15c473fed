// ABOUTME: Remove command for deleting documents.
// ABOUTME: Deletes by ID prefix with a --force flag to skip confirmation.

package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var rmCmd = &cobra.Command{
	Use:   "rm <id-prefix>",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		forceFlag, _ := cmd.Flags().GetBool("force")

		doc, err := resolveDocument(args[0])
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}

		if !forceFlag {
			fmt.Printf("Delete %q (%s)? [y/N] ", doc.Title, doc.ID.String()[:6])
			reader := bufio.NewReader(os.Stdin)
			response, err := reader.ReadString('\n')
			if err != nil {
				return nil //nolint:nilerr // Intentional: treat stdin issues as "no"
			}
			response = strings.TrimSpace(strings.ToLower(response))
			if response != "y" && response != "yes" {
				fmt.Println("Cancelled.")
				return nil
			}
		}

		if err := store.DeleteDocument(dbConn, doc.ID); err != nil {
			return fmt.Errorf("failed to delete document: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Deleted document %s", doc.ID.String()[:6])))
		return nil
	},
}

func init() {
	rmCmd.Flags().BoolP("force", "f", false, "skip confirmation")
	rootCmd.AddCommand(rmCmd)
}
