// ABOUTME: Database operations for documents and their blocks.
// ABOUTME: Provides CRUD and prefix-based lookup; tag order survives storage.

package store

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/deathau/editorjs-playground/internal/models"
)

var ErrPrefixTooShort = errors.New("prefix must be at least 6 characters")
var ErrAmbiguousPrefix = errors.New("prefix matches multiple documents")
var ErrDocumentNotFound = errors.New("document not found")

func CreateDocument(db *sql.DB, doc *models.Document) error {
	_, err := db.Exec(
		`INSERT INTO documents (id, title, created_at, updated_at)
		 VALUES (?, ?, ?, ?)`,
		doc.ID.String(), doc.Title, doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return err
	}
	return insertBlocks(db, doc)
}

func insertBlocks(db *sql.DB, doc *models.Document) error {
	for pos, b := range doc.Blocks {
		if _, err := db.Exec(
			`INSERT INTO blocks (id, document_id, position, kind, text)
			 VALUES (?, ?, ?, ?, ?)`,
			b.ID, doc.ID.String(), pos, b.Kind, b.Data.Text,
		); err != nil {
			return fmt.Errorf("insert block: %w", err)
		}
		for tagPos, name := range b.Data.Tags {
			if err := addTagToBlock(db, b.ID, name, tagPos); err != nil {
				return fmt.Errorf("add tag %s: %w", name, err)
			}
		}
	}
	return nil
}

func getOrCreateTag(db *sql.DB, name string) (int64, error) {
	var id int64
	err := db.QueryRow(`SELECT id FROM tags WHERE name = ?`, name).Scan(&id)
	if err == nil {
		return id, nil
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return 0, err
	}

	result, err := db.Exec(`INSERT INTO tags (name) VALUES (?)`, name)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func addTagToBlock(db *sql.DB, blockID, name string, position int) error {
	tagID, err := getOrCreateTag(db, name)
	if err != nil {
		return err
	}
	_, err = db.Exec(
		`INSERT OR IGNORE INTO block_tags (block_id, tag_id, position) VALUES (?, ?, ?)`,
		blockID, tagID, position,
	)
	return err
}

func loadBlocks(db *sql.DB, docID string) ([]models.SavedBlock, error) {
	rows, err := db.Query(
		`SELECT id, kind, text FROM blocks WHERE document_id = ? ORDER BY position`,
		docID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var blocks []models.SavedBlock
	for rows.Next() {
		var b models.SavedBlock
		if err := rows.Scan(&b.ID, &b.Kind, &b.Data.Text); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range blocks {
		tags, err := blockTags(db, blocks[i].ID)
		if err != nil {
			return nil, err
		}
		blocks[i].Data.Tags = tags
	}
	return blocks, nil
}

// blockTags returns a block's tags in their original append order.
func blockTags(db *sql.DB, blockID string) ([]string, error) {
	rows, err := db.Query(
		`SELECT t.name FROM tags t
		 JOIN block_tags bt ON t.id = bt.tag_id
		 WHERE bt.block_id = ?
		 ORDER BY bt.position`,
		blockID,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		tags = append(tags, name)
	}
	return tags, rows.Err()
}

func GetDocumentByID(db *sql.DB, id uuid.UUID) (*models.Document, error) {
	doc := &models.Document{}
	var idStr string
	err := db.QueryRow(
		`SELECT id, title, created_at, updated_at FROM documents WHERE id = ?`,
		id.String(),
	).Scan(&idStr, &doc.Title, &doc.CreatedAt, &doc.UpdatedAt)
	if err == sql.ErrNoRows {
		return nil, ErrDocumentNotFound
	}
	if err != nil {
		return nil, err
	}
	doc.ID = id

	doc.Blocks, err = loadBlocks(db, idStr)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

func GetDocumentByPrefix(db *sql.DB, prefix string) (*models.Document, error) {
	if len(prefix) < 6 {
		return nil, ErrPrefixTooShort
	}

	rows, err := db.Query(
		`SELECT id FROM documents WHERE id LIKE ?`,
		prefix+"%",
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var idStr string
		if err := rows.Scan(&idStr); err != nil {
			return nil, err
		}
		ids = append(ids, idStr)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(ids) == 0 {
		return nil, ErrDocumentNotFound
	}
	if len(ids) > 1 {
		return nil, fmt.Errorf("%w: %d matches", ErrAmbiguousPrefix, len(ids))
	}

	id, err := uuid.Parse(ids[0])
	if err != nil {
		return nil, fmt.Errorf("invalid document ID in database: %w", err)
	}
	return GetDocumentByID(db, id)
}

func ListDocuments(db *sql.DB, tag *string, limit int) ([]*models.Document, error) {
	if limit <= 0 {
		limit = -1 // SQLite treats a negative LIMIT as unbounded
	}

	var rows *sql.Rows
	var err error

	if tag != nil {
		rows, err = db.Query(
			`SELECT DISTINCT d.id
			 FROM documents d
			 JOIN blocks b ON b.document_id = d.id
			 JOIN block_tags bt ON bt.block_id = b.id
			 JOIN tags t ON bt.tag_id = t.id
			 WHERE t.name = ?
			 ORDER BY d.updated_at DESC
			 LIMIT ?`,
			*tag, limit,
		)
	} else {
		rows, err = db.Query(
			`SELECT id FROM documents ORDER BY updated_at DESC LIMIT ?`,
			limit,
		)
	}
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var idStr string
		if err := rows.Scan(&idStr); err != nil {
			return nil, err
		}
		id, parseErr := uuid.Parse(idStr)
		if parseErr != nil {
			return nil, fmt.Errorf("invalid document ID in database: %w", parseErr)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	var docs []*models.Document
	for _, id := range ids {
		doc, err := GetDocumentByID(db, id)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// UpdateDocument replaces the stored blocks wholesale; the saved record is a
// full snapshot, so incremental diffing buys nothing here.
func UpdateDocument(db *sql.DB, doc *models.Document) error {
	result, err := db.Exec(
		`UPDATE documents SET title = ?, updated_at = ? WHERE id = ?`,
		doc.Title, time.Now(), doc.ID.String(),
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}

	if _, err := db.Exec(`DELETE FROM blocks WHERE document_id = ?`, doc.ID.String()); err != nil {
		return fmt.Errorf("clear blocks: %w", err)
	}
	return insertBlocks(db, doc)
}

func DeleteDocument(db *sql.DB, id uuid.UUID) error {
	result, err := db.Exec(`DELETE FROM documents WHERE id = ?`, id.String())
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrDocumentNotFound
	}
	return nil
}
