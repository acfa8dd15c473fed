// ABOUTME: Draft snapshots in Badger KV with type-prefixed keys (draft:uuid).
// ABOUTME: Autosave layer for documents not yet committed to the main store.

package draft

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/dgraph-io/badger/v3"
	"github.com/google/uuid"

	"github.com/deathau/editorjs-playground/internal/models"
)

const (
	// Prefix is the key prefix for draft snapshots.
	Prefix = "draft:"
)

var ErrDraftNotFound = errors.New("draft not found")

// Store wraps a Badger database holding draft snapshots.
type Store struct {
	kv *badger.DB
}

// Open opens (or creates) the draft database in dir.
func Open(dir string) (*Store, error) {
	opts := badger.DefaultOptions(dir).WithLogger(nil)
	kv, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("open draft store: %w", err)
	}
	return &Store{kv: kv}, nil
}

func (s *Store) Close() error {
	return s.kv.Close()
}

// Snapshot is a draft stored in the KV.
type Snapshot struct {
	ID      string              `json:"id"`
	Title   string              `json:"title"`
	Blocks  []models.SavedBlock `json:"blocks,omitempty"`
	SavedAt int64               `json:"saved_at"`
}

// ToModel converts a Snapshot to a models.Document.
func (d *Snapshot) ToModel() (*models.Document, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse draft ID: %w", err)
	}
	saved := time.Unix(d.SavedAt, 0)
	return &models.Document{
		ID:        id,
		Title:     d.Title,
		Blocks:    d.Blocks,
		CreatedAt: saved,
		UpdatedAt: saved,
	}, nil
}

// FromModel creates a Snapshot from a document.
func FromModel(doc *models.Document) *Snapshot {
	return &Snapshot{
		ID:      doc.ID.String(),
		Title:   doc.Title,
		Blocks:  doc.Blocks,
		SavedAt: time.Now().Unix(),
	}
}

// draftKey returns the key for a draft.
func draftKey(id uuid.UUID) []byte {
	return []byte(Prefix + id.String())
}

// Save writes a snapshot of the document, replacing any previous draft.
func (s *Store) Save(doc *models.Document) error {
	encoded, err := json.Marshal(FromModel(doc))
	if err != nil {
		return fmt.Errorf("marshal draft: %w", err)
	}
	return s.kv.Update(func(txn *badger.Txn) error {
		return txn.Set(draftKey(doc.ID), encoded)
	})
}

// Get retrieves a draft by document ID.
func (s *Store) Get(id uuid.UUID) (*models.Document, error) {
	var snap Snapshot
	err := s.kv.View(func(txn *badger.Txn) error {
		item, err := txn.Get(draftKey(id))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, &snap)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return nil, ErrDraftNotFound
	}
	if err != nil {
		return nil, err
	}
	return snap.ToModel()
}

// List returns all drafts, newest first.
func (s *Store) List() ([]*models.Document, error) {
	var snaps []*Snapshot

	prefix := []byte(Prefix)
	err := s.kv.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = true
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				var snap Snapshot
				if err := json.Unmarshal(val, &snap); err != nil {
					return err
				}
				snaps = append(snaps, &snap)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(snaps, func(i, j int) bool {
		return snaps[i].SavedAt > snaps[j].SavedAt
	})

	docs := make([]*models.Document, 0, len(snaps))
	for _, snap := range snaps {
		doc, err := snap.ToModel()
		if err != nil {
			continue // Skip invalid drafts
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Delete removes a draft.
func (s *Store) Delete(id uuid.UUID) error {
	err := s.kv.Update(func(txn *badger.Txn) error {
		if _, err := txn.Get(draftKey(id)); err != nil {
			return err
		}
		return txn.Delete(draftKey(id))
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return ErrDraftNotFound
	}
	return err
}
