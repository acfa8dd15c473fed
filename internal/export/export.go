// ABOUTME: Export records and writers for backing up documents.
// ABOUTME: Supports JSON and YAML export formats plus re-import.

package export

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/deathau/editorjs-playground/internal/models"
)

type ExportBlock struct {
	ID   string   `json:"id" yaml:"id"`
	Kind string   `json:"kind" yaml:"kind"`
	Text string   `json:"text" yaml:"text"`
	Tags []string `json:"tags,omitempty" yaml:"tags,omitempty"`
}

type ExportDocument struct {
	ID        string        `json:"id" yaml:"id"`
	Title     string        `json:"title" yaml:"title"`
	Blocks    []ExportBlock `json:"blocks" yaml:"blocks"`
	CreatedAt time.Time     `json:"created_at" yaml:"created"`
	UpdatedAt time.Time     `json:"updated_at" yaml:"updated"`
}

type ExportData struct {
	ExportedAt time.Time        `json:"exported_at" yaml:"exported"`
	Version    string           `json:"version" yaml:"version"`
	Documents  []ExportDocument `json:"documents" yaml:"documents"`
}

func fromDocument(doc *models.Document) ExportDocument {
	out := ExportDocument{
		ID:        doc.ID.String(),
		Title:     doc.Title,
		CreatedAt: doc.CreatedAt,
		UpdatedAt: doc.UpdatedAt,
	}
	for _, b := range doc.Blocks {
		out.Blocks = append(out.Blocks, ExportBlock{
			ID:   b.ID,
			Kind: b.Kind,
			Text: b.Data.Text,
			Tags: b.Data.Tags,
		})
	}
	return out
}

func buildExport(docs []*models.Document) ExportData {
	data := ExportData{
		ExportedAt: time.Now(),
		Version:    "1.0",
	}
	for _, doc := range docs {
		data.Documents = append(data.Documents, fromDocument(doc))
	}
	return data
}

// WriteJSON writes an export of docs to w.
func WriteJSON(docs []*models.Document, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(buildExport(docs))
}

// WriteYAML writes an export of docs to w.
func WriteYAML(docs []*models.Document, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()
	return enc.Encode(buildExport(docs))
}

// ReadJSON parses an export previously written by WriteJSON.
func ReadJSON(r io.Reader) ([]*models.Document, error) {
	var data ExportData
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("parse export: %w", err)
	}
	return toDocuments(data)
}

func toDocuments(data ExportData) ([]*models.Document, error) {
	var docs []*models.Document
	for _, ed := range data.Documents {
		doc := models.NewDocument(ed.Title)
		if ed.CreatedAt.IsZero() {
			ed.CreatedAt = time.Now()
		}
		doc.CreatedAt = ed.CreatedAt
		doc.UpdatedAt = ed.UpdatedAt
		for _, eb := range ed.Blocks {
			block := models.SavedBlock{
				ID:   eb.ID,
				Kind: eb.Kind,
				Data: models.NewBlockData(eb.Text, eb.Tags),
			}
			if block.ID == "" {
				block = models.NewSavedBlock(eb.Kind, block.Data)
			}
			doc.Blocks = append(doc.Blocks, block)
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
