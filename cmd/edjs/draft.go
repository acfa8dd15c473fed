// ABOUTME: Draft command for managing autosaved drafts.
// ABOUTME: Provides list, show, commit, and rm subcommands over the Badger store.

package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/draft"
	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage drafts",
	Long:  `List, preview, commit, or discard draft documents that have not been committed to the main store.`,
}

var draftListCmd = &cobra.Command{
	Use:   "list",
	Short: "List drafts",
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, err := draft.Open(draftDir())
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer func() { _ = drafts.Close() }()

		docs, err := drafts.List()
		if err != nil {
			return fmt.Errorf("failed to list drafts: %w", err)
		}

		if len(docs) == 0 {
			fmt.Println("No drafts found.")
			return nil
		}

		for _, doc := range docs {
			fmt.Print(ui.FormatDocumentListItem(doc))
		}
		return nil
	},
}

var draftShowCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, err := draft.Open(draftDir())
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer func() { _ = drafts.Close() }()

		doc, err := resolveDraft(drafts, args[0])
		if err != nil {
			return err
		}

		fmt.Print(ui.FormatDocumentHeader(doc))
		preview, err := ui.FormatPreview(export.ToMarkdown(doc))
		if err != nil {
			return fmt.Errorf("failed to render preview: %w", err)
		}
		fmt.Print(preview)
		return nil
	},
}

var draftCommitCmd = &cobra.Command{
	Use:   "commit <id>",
	Short: "Commit a draft to the main store",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, err := draft.Open(draftDir())
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer func() { _ = drafts.Close() }()

		doc, err := resolveDraft(drafts, args[0])
		if err != nil {
			return err
		}

		if err := store.CreateDocument(dbConn, doc); err != nil {
			return fmt.Errorf("failed to commit draft: %w", err)
		}
		if err := drafts.Delete(doc.ID); err != nil {
			return fmt.Errorf("failed to remove committed draft: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Committed draft %s", doc.ID.String()[:6])))
		return nil
	},
}

var draftRmCmd = &cobra.Command{
	Use:   "rm <id>",
	Short: "Discard a draft",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		drafts, err := draft.Open(draftDir())
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer func() { _ = drafts.Close() }()

		doc, err := resolveDraft(drafts, args[0])
		if err != nil {
			return err
		}

		if err := drafts.Delete(doc.ID); err != nil {
			return fmt.Errorf("failed to discard draft: %w", err)
		}

		fmt.Println(ui.Success(fmt.Sprintf("Discarded draft %s", doc.ID.String()[:6])))
		return nil
	},
}

// resolveDraft finds a draft by full UUID or ID prefix.
func resolveDraft(drafts *draft.Store, id string) (*models.Document, error) {
	if parsed, parseErr := uuid.Parse(id); parseErr == nil {
		d, err := drafts.Get(parsed)
		if err != nil {
			return nil, fmt.Errorf("failed to get draft: %w", err)
		}
		return d, nil
	}

	if len(id) < 6 {
		return nil, fmt.Errorf("draft ID prefix must be at least 6 characters")
	}
	all, err := drafts.List()
	if err != nil {
		return nil, fmt.Errorf("failed to list drafts: %w", err)
	}
	var match *models.Document
	for _, d := range all {
		if len(d.ID.String()) >= len(id) && d.ID.String()[:len(id)] == id {
			if match != nil {
				return nil, fmt.Errorf("draft ID prefix %q is ambiguous", id)
			}
			match = d
		}
	}
	if match == nil {
		return nil, draft.ErrDraftNotFound
	}
	return match, nil
}

func init() {
	draftCmd.AddCommand(draftListCmd)
	draftCmd.AddCommand(draftShowCmd)
	draftCmd.AddCommand(draftCommitCmd)
	draftCmd.AddCommand(draftRmCmd)
	rootCmd.AddCommand(draftCmd)
}
