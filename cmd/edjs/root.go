// ABOUTME: Root command wiring for the edjs CLI.
// ABOUTME: Opens the document database and shares the connection with subcommands.

package main

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/deathau/editorjs-playground/internal/store"
	"github.com/deathau/editorjs-playground/internal/ui"
)

var dbConn *sql.DB

var rootCmd = &cobra.Command{
	Use:           "edjs",
	Short:         "Playground for tagged-text block documents",
	Long:          `edjs manages block documents built from tagged-text blocks: create, tag, merge, preview, and export them.`,
	Version:       fmt.Sprintf("%s (commit %s, built %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		dbConn, err = store.Open(dbPath())
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if dbConn != nil {
			return dbConn.Close()
		}
		return nil
	},
}

func dbPath() string {
	if path := os.Getenv("EDJS_DB"); path != "" {
		return path
	}
	return store.DefaultPath()
}

// draftDir is where autosaved drafts live, next to the main database.
func draftDir() string {
	return filepath.Join(filepath.Dir(dbPath()), "drafts")
}

func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error(err.Error()))
		return err
	}
	return nil
}
