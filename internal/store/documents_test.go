// ABOUTME: Tests for document database operations.
// ABOUTME: Covers create, read, update, delete, prefix matching, and tag order.

package store

import (
	"path/filepath"
	"reflect"
	"testing"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/models"
)

func testDocument(texts ...string) *models.Document {
	var blocks []models.SavedBlock
	for _, text := range texts {
		blocks = append(blocks, models.NewSavedBlock(block.Kind, models.BlockData{Text: text}))
	}
	return models.NewDocument("Test Title", blocks...)
}

func TestCreateAndGetDocument(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc := testDocument("first block", "second block")
	doc.Blocks[0].Data.Tags = []string{"y", "x"}
	if err := CreateDocument(db, doc); err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	got, err := GetDocumentByID(db, doc.ID)
	if err != nil {
		t.Fatalf("failed to get document: %v", err)
	}

	if got.Title != doc.Title {
		t.Errorf("expected title %q, got %q", doc.Title, got.Title)
	}
	if len(got.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(got.Blocks))
	}
	if got.Blocks[0].Data.Text != "first block" {
		t.Errorf("expected first block text, got %q", got.Blocks[0].Data.Text)
	}
	if !reflect.DeepEqual(got.Blocks[0].Data.Tags, []string{"y", "x"}) {
		t.Errorf("expected tag order preserved, got %v", got.Blocks[0].Data.Tags)
	}
}

func TestGetDocumentByPrefix(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc := testDocument("content")
	if err := CreateDocument(db, doc); err != nil {
		t.Fatalf("failed to create document: %v", err)
	}

	got, err := GetDocumentByPrefix(db, doc.ID.String()[:8])
	if err != nil {
		t.Fatalf("failed to get document by prefix: %v", err)
	}
	if got.ID != doc.ID {
		t.Errorf("expected ID %v, got %v", doc.ID, got.ID)
	}
}

func TestGetDocumentByPrefixTooShort(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	_, err = GetDocumentByPrefix(db, "abc")
	if err == nil {
		t.Error("expected error for short prefix")
	}
}

func TestListDocuments(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc1 := testDocument("one")
	doc2 := testDocument("two")
	doc2.Blocks[0].Data.Tags = []string{"feature"}
	CreateDocument(db, doc1)
	CreateDocument(db, doc2)

	docs, err := ListDocuments(db, nil, 20)
	if err != nil {
		t.Fatalf("failed to list documents: %v", err)
	}
	if len(docs) != 2 {
		t.Errorf("expected 2 documents, got %d", len(docs))
	}

	tag := "feature"
	tagged, err := ListDocuments(db, &tag, 20)
	if err != nil {
		t.Fatalf("failed to list by tag: %v", err)
	}
	if len(tagged) != 1 || tagged[0].ID != doc2.ID {
		t.Errorf("expected only the tagged document, got %d", len(tagged))
	}
}

func TestUpdateDocumentReplacesBlocks(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc := testDocument("original")
	CreateDocument(db, doc)

	doc.Title = "Updated"
	doc.Blocks = []models.SavedBlock{
		models.NewSavedBlock(block.Kind, models.BlockData{Text: "replaced", Tags: []string{"x"}}),
	}
	doc.Touch()

	if err := UpdateDocument(db, doc); err != nil {
		t.Fatalf("failed to update document: %v", err)
	}

	got, _ := GetDocumentByID(db, doc.ID)
	if got.Title != "Updated" {
		t.Errorf("expected title 'Updated', got %q", got.Title)
	}
	if len(got.Blocks) != 1 || got.Blocks[0].Data.Text != "replaced" {
		t.Errorf("expected replaced blocks, got %+v", got.Blocks)
	}
}

func TestDeleteDocument(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc := testDocument("content")
	CreateDocument(db, doc)

	if err := DeleteDocument(db, doc.ID); err != nil {
		t.Fatalf("failed to delete document: %v", err)
	}

	_, err = GetDocumentByID(db, doc.ID)
	if err == nil {
		t.Error("expected error getting deleted document")
	}
}

func TestListAllTags(t *testing.T) {
	db, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	defer db.Close()

	doc := testDocument("a", "b")
	doc.Blocks[0].Data.Tags = []string{"feature", "persona"}
	doc.Blocks[1].Data.Tags = []string{"feature"}
	CreateDocument(db, doc)

	tags, err := ListAllTags(db)
	if err != nil {
		t.Fatalf("failed to list tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("expected 2 tags, got %d", len(tags))
	}
	// Alphabetical: feature then persona.
	if tags[0].Name != "feature" || tags[0].Count != 2 {
		t.Errorf("expected feature with count 2, got %+v", tags[0])
	}
	if tags[1].Name != "persona" || tags[1].Count != 1 {
		t.Errorf("expected persona with count 1, got %+v", tags[1])
	}
}
