// ABOUTME: Add command for creating new documents.
// ABOUTME: Supports inline text, file input, markdown intake, or $EDITOR.

package main

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/draft"
	"github.com/deathau/editorjs-playground/internal/export"
	"github.com/deathau/editorjs-playground/internal/models"
	"github.com/deathau/editorjs-playground/internal/sanitize"
	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var addCmd = &cobra.Command{
	Use:   "add <title>",
	Short: "Add a new document",
	Long:  `Create a new document with the given title. Text can be provided via --text, --file, --markdown, or $EDITOR.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]

		textFlag, _ := cmd.Flags().GetString("text")
		fileFlag, _ := cmd.Flags().GetString("file")
		markdownFlag, _ := cmd.Flags().GetString("markdown")
		tagsFlag, _ := cmd.Flags().GetString("tags")
		draftFlag, _ := cmd.Flags().GetBool("draft")

		// Markdown intake runs the full paste pipeline and yields
		// one block per paragraph.
		if markdownFlag != "" {
			source, err := os.ReadFile(markdownFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read markdown file: %w", err)
			}
			doc, err := export.FromMarkdown(title, source)
			if err != nil {
				return fmt.Errorf("failed to convert markdown: %w", err)
			}
			return saveNewDocument(doc, draftFlag)
		}

		var text string
		var err error

		switch {
		case textFlag != "":
			text = textFlag
		case fileFlag != "":
			data, err := os.ReadFile(fileFlag) //nolint:gosec // User-specified file path is expected CLI behavior
			if err != nil {
				return fmt.Errorf("failed to read file: %w", err)
			}
			text = string(data)
		default:
			text, err = openEditor("")
			if err != nil {
				return fmt.Errorf("failed to open editor: %w", err)
			}
		}

		if strings.TrimSpace(text) == "" {
			return fmt.Errorf("document text cannot be empty")
		}

		data := models.NewBlockData(sanitize.Text(normalizeBreaks(text)), splitTags(tagsFlag))
		doc := models.NewDocument(title, models.NewSavedBlock(block.Kind, data))
		return saveNewDocument(doc, draftFlag)
	},
}

func saveNewDocument(doc *models.Document, asDraft bool) error {
	if asDraft {
		drafts, err := draft.Open(draftDir())
		if err != nil {
			return fmt.Errorf("failed to open draft store: %w", err)
		}
		defer func() { _ = drafts.Close() }()

		if err := drafts.Save(doc); err != nil {
			return fmt.Errorf("failed to save draft: %w", err)
		}
		fmt.Println(ui.Success(fmt.Sprintf("Saved draft %s", doc.ID.String()[:6])))
		return nil
	}

	if err := store.CreateDocument(dbConn, doc); err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	fmt.Println(ui.Success(fmt.Sprintf("Created document %s", doc.ID.String()[:6])))
	return nil
}

// normalizeBreaks turns newlines in plain-text input into line break tags.
func normalizeBreaks(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.ReplaceAll(text, "\n", "<br>")
}

// splitTags parses a comma-separated tag flag into trimmed names.
func splitTags(flag string) []string {
	if flag == "" {
		return nil
	}
	var tags []string
	for _, tag := range strings.Split(flag, ",") {
		tag = strings.TrimSpace(tag)
		if tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func openEditor(initial string) (string, error) {
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vim"
	}

	tmpFile, err := os.CreateTemp("", "edjs-*.md")
	if err != nil {
		return "", err
	}
	defer func() {
		_ = os.Remove(tmpFile.Name()) // Best-effort cleanup
	}()

	if initial != "" {
		if _, err := tmpFile.WriteString(initial); err != nil {
			_ = tmpFile.Close()
			return "", fmt.Errorf("failed to write initial content: %w", err)
		}
	}
	if err := tmpFile.Close(); err != nil {
		return "", fmt.Errorf("failed to close temp file: %w", err)
	}

	cmd := exec.Command(editor, tmpFile.Name()) //nolint:gosec // Launching $EDITOR is expected CLI behavior
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", err
	}

	data, err := os.ReadFile(tmpFile.Name())
	if err != nil {
		return "", err
	}

	return string(data), nil
}

func init() {
	addCmd.Flags().String("text", "", "block text (inline)")
	addCmd.Flags().String("file", "", "read text from file")
	addCmd.Flags().String("markdown", "", "import a markdown file, one block per paragraph")
	addCmd.Flags().String("tags", "", "comma-separated block tags")
	addCmd.Flags().Bool("draft", false, "save as a draft instead of committing")
	rootCmd.AddCommand(addCmd)
}
