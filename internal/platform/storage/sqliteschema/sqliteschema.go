// Package sqliteschema applies a fixed SQL schema batch to a SQLite database.
package sqliteschema

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

// SplitStatements splits a flat SQL text into individual statements.
// Statements are separated by semicolons; each is trimmed and empty
// statements are discarded. Line comments are stripped so a comment
// between statements never produces a phantom statement.
func SplitStatements(script string) []string {
	var statements []string
	for _, raw := range strings.Split(script, ";") {
		stmt := stripLineComments(raw)
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		statements = append(statements, stmt)
	}
	return statements
}

// Ensure applies the schema script at most once per fresh database.
//
// sentinelTable names a table created by the script; when it already exists
// the whole batch is skipped, so seed statements run at most once. The batch
// executes inside a single transaction and any statement error aborts it.
func Ensure(ctx context.Context, sqlDB *sql.DB, script string, sentinelTable string) error {
	if sqlDB == nil {
		return fmt.Errorf("sql db is required")
	}
	if strings.TrimSpace(sentinelTable) == "" {
		return fmt.Errorf("sentinel table is required")
	}

	exists, err := TableExists(ctx, sqlDB, sentinelTable)
	if err != nil {
		return fmt.Errorf("check sentinel table %s: %w", sentinelTable, err)
	}
	if exists {
		return nil
	}

	statements := SplitStatements(script)
	if len(statements) == 0 {
		return fmt.Errorf("schema script has no statements")
	}

	tx, err := sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema transaction: %w", err)
	}
	for _, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			_ = tx.Rollback()
			return fmt.Errorf("exec schema statement %q: %w", firstLine(stmt), err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema transaction: %w", err)
	}
	return nil
}

// TableExists reports whether a table is present in sqlite_master.
func TableExists(ctx context.Context, sqlDB *sql.DB, name string) (bool, error) {
	var found int
	row := sqlDB.QueryRowContext(
		ctx,
		"SELECT 1 FROM sqlite_master WHERE type = 'table' AND name = ?",
		name,
	)
	if err := row.Scan(&found); err != nil {
		if err == sql.ErrNoRows {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func stripLineComments(stmt string) string {
	lines := strings.Split(stmt, "\n")
	kept := lines[:0]
	for _, line := range lines {
		if strings.HasPrefix(strings.TrimSpace(line), "--") {
			continue
		}
		kept = append(kept, line)
	}
	return strings.Join(kept, "\n")
}

func firstLine(stmt string) string {
	if idx := strings.IndexByte(stmt, '\n'); idx >= 0 {
		return stmt[:idx]
	}
	return stmt
}
