// ABOUTME: Database operations for tag listings across documents.
// ABOUTME: Provides tag counts for the CLI and MCP tag listings.

package store

import "database/sql"

type TagCount struct {
	Name  string
	Count int
}

// ListAllTags returns every tag with the number of blocks carrying it.
func ListAllTags(db *sql.DB) ([]TagCount, error) {
	rows, err := db.Query(
		`SELECT t.name, COUNT(bt.block_id) as count
		 FROM tags t
		 LEFT JOIN block_tags bt ON t.id = bt.tag_id
		 GROUP BY t.id
		 ORDER BY t.name`,
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var tags []TagCount
	for rows.Next() {
		var tc TagCount
		if err := rows.Scan(&tc.Name, &tc.Count); err != nil {
			return nil, err
		}
		tags = append(tags, tc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return tags, nil
}
