// ABOUTME: Document model representing a saved block document.
// ABOUTME: Provides constructor and methods for document lifecycle.

package models

import (
	"time"

	"github.com/google/uuid"
)

// SavedBlock is one persisted block of a document.
type SavedBlock struct {
	ID   string    `json:"id"`
	Kind string    `json:"kind"`
	Data BlockData `json:"data"`
}

// NewSavedBlock assigns a fresh ID to a block record.
func NewSavedBlock(kind string, data BlockData) SavedBlock {
	return SavedBlock{
		ID:   uuid.NewString(),
		Kind: kind,
		Data: data,
	}
}

type Document struct {
	ID        uuid.UUID
	Title     string
	Blocks    []SavedBlock
	CreatedAt time.Time
	UpdatedAt time.Time
}

func NewDocument(title string, blocks ...SavedBlock) *Document {
	now := time.Now()
	return &Document{
		ID:        uuid.New(),
		Title:     title,
		Blocks:    blocks,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func (d *Document) Touch() {
	d.UpdatedAt = time.Now()
}

// Tags returns the union of all block tags in document order, no duplicates.
func (d *Document) Tags() []string {
	all := NewTagList()
	for _, b := range d.Blocks {
		all.Union(b.Data.Tags)
	}
	return all.Names()
}
