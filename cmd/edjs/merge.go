// ABOUTME: Merge command for joining adjacent blocks of a document.
// ABOUTME: Runs the mount/merge/save cycle through the editor harness.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/editor"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var mergeCmd = &cobra.Command{
	Use:   "merge <id-prefix> <target-index> <source-index>",
	Short: "Merge two blocks of a document",
	Long:  `Merge the source block into the target block: text is appended and tags are unioned, then the source block is removed.`,
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		doc, err := resolveDocument(args[0])
		if err != nil {
			return fmt.Errorf("failed to get document: %w", err)
		}

		target, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid target index %q: %w", args[1], err)
		}
		source, err := strconv.Atoi(args[2])
		if err != nil {
			return fmt.Errorf("invalid source index %q: %w", args[2], err)
		}

		host := editor.New(editor.DefaultRegistry(), block.Config{}, block.DefaultAPI(), false)
		host.Load(doc)

		if err := host.MergeBlocks(target, source); err != nil {
			return fmt.Errorf("failed to merge blocks: %w", err)
		}

		merged, err := host.Save(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to save document: %w", err)
		}
		merged.CreatedAt = doc.CreatedAt

		if err := store.UpdateDocument(dbConn, merged); err != nil {
			return fmt.Errorf("failed to update document: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Merged block %d into block %d of %s", source, target, merged.ID.String()[:6])))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
}
