package db

import (
	"context"
	"fmt"
)

// ListPublicTables returns the names of the tables in the public schema,
// sorted ascending. This mirrors what the hosted database exposes through
// its table-listing RPC.
func (db *DB) ListPublicTables(ctx context.Context) ([]string, error) {
	rows, err := db.pool.Query(ctx,
		`SELECT table_name FROM information_schema.tables
		 WHERE table_schema = 'public' AND table_type = 'BASE TABLE'
		 ORDER BY table_name`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan table name: %w", err)
		}
		tables = append(tables, name)
	}
	return tables, nil
}
