// ABOUTME: Tag command for managing block tags.
// ABOUTME: Provides add, rm, toggle, and list subcommands.

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage block tags",
	Long:  `Add, remove, toggle, or list tags on document blocks.`,
}

var tagAddCmd = &cobra.Command{
	Use:   "add <id-prefix> <block-index> <tag>",
	Short: "Add a tag to a block",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeBlockTags(args, func(tags *models.TagList, name string) string {
			if tags.Add(name) {
				return fmt.Sprintf("Added tag %q", name)
			}
			return fmt.Sprintf("Block already tagged %q", name)
		})
	},
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <id-prefix> <block-index> <tag>",
	Short: "Remove a tag from a block",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeBlockTags(args, func(tags *models.TagList, name string) string {
			if tags.Remove(name) {
				return fmt.Sprintf("Removed tag %q", name)
			}
			return fmt.Sprintf("Block not tagged %q", name)
		})
	},
}

var tagToggleCmd = &cobra.Command{
	Use:   "toggle <id-prefix> <block-index> <tag>",
	Short: "Toggle a tag on a block",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		return changeBlockTags(args, func(tags *models.TagList, name string) string {
			if tags.Toggle(name) {
				return fmt.Sprintf("Added tag %q", name)
			}
			return fmt.Sprintf("Removed tag %q", name)
		})
	},
}

var tagListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tags",
	RunE: func(cmd *cobra.Command, args []string) error {
		tags, err := store.ListAllTags(dbConn)
		if err != nil {
			return fmt.Errorf("failed to list tags: %w", err)
		}

		if len(tags) == 0 {
			fmt.Println("No tags found.")
			return nil
		}

		var tagCounts []ui.TagCount
		for _, t := range tags {
			tagCounts = append(tagCounts, ui.TagCount{
				Name:  t.Name,
				Count: t.Count,
			})
		}
		fmt.Print(ui.FormatTagList(tagCounts))
		return nil
	},
}

// changeBlockTags loads a document, applies apply to one block's tag list, and
// persists the result. apply returns the message to print.
func changeBlockTags(args []string, apply func(tags *models.TagList, name string) string) error {
	doc, err := resolveDocument(args[0])
	if err != nil {
		return fmt.Errorf("failed to get document: %w", err)
	}

	index, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid block index %q: %w", args[1], err)
	}
	if index < 0 || index >= len(doc.Blocks) {
		return fmt.Errorf("block index %d out of range (document has %d blocks)", index, len(doc.Blocks))
	}

	tags := models.NewTagList(doc.Blocks[index].Data.Tags...)
	msg := apply(tags, args[2])
	doc.Blocks[index].Data.Tags = tags.Names()
	doc.Touch()

	if err := store.UpdateDocument(dbConn, doc); err != nil {
		return fmt.Errorf("failed to update document: %w", err)
	}

	fmt.Println(ui.Success(fmt.Sprintf("%s on block %d of %s", msg, index, doc.ID.String()[:6])))
	return nil
}

func init() {
	tagCmd.AddCommand(tagAddCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagToggleCmd)
	tagCmd.AddCommand(tagListCmd)
	rootCmd.AddCommand(tagCmd)
}
