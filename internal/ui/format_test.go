// ABOUTME: Tests for terminal UI formatting functions.
// ABOUTME: Validates document display and markdown preview rendering.

package ui

import (
	"strings"
	"testing"

	"github.com/deathau/editorjs-playground/internal/block"
	"github.com/deathau/editorjs-playground/internal/models"
)

func TestFormatDocumentListItem(t *testing.T) {
	doc := models.NewDocument("Test Document",
		models.NewSavedBlock(block.Kind, models.BlockData{Text: "body", Tags: []string{"important", "work"}}),
	)

	output := FormatDocumentListItem(doc)

	if !strings.Contains(output, doc.ID.String()[:6]) {
		t.Error("expected output to contain ID prefix")
	}
	if !strings.Contains(output, "Test Document") {
		t.Error("expected output to contain title")
	}
	if !strings.Contains(output, "important") {
		t.Error("expected output to contain tag")
	}
}

func TestFormatDocumentHeader(t *testing.T) {
	doc := models.NewDocument("Header Doc",
		models.NewSavedBlock(block.Kind, models.BlockData{Text: "x", Tags: []string{"y"}}),
	)

	output := FormatDocumentHeader(doc)

	if !strings.Contains(output, "Header Doc") {
		t.Error("expected output to contain title")
	}
	if !strings.Contains(output, doc.ID.String()) {
		t.Error("expected output to contain full ID")
	}
	if !strings.Contains(output, "y") {
		t.Error("expected output to contain tag")
	}
}

func TestFormatPreview(t *testing.T) {
	markdown := "# Hello\n\nThis is **bold** text."

	output, err := FormatPreview(markdown)
	if err != nil {
		t.Fatalf("failed to format preview: %v", err)
	}

	if output == "" {
		t.Error("expected non-empty output")
	}
}

func TestFormatTagList(t *testing.T) {
	tags := []TagCount{
		{Name: "work", Count: 5},
		{Name: "personal", Count: 3},
	}

	output := FormatTagList(tags)

	if !strings.Contains(output, "work") {
		t.Error("expected output to contain 'work'")
	}
	if !strings.Contains(output, "5") {
		t.Error("expected output to contain count '5'")
	}
}
