package out

import (
	"context"
	"database/sql"
	"fmt"

	drawout "numdraw/internal/modules/draw/port/out"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps the drawn set in a private in-memory SQLite database.
// The database lives only as long as the store.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(ctx context.Context) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// every pooled connection would otherwise get its own empty database
	db.SetMaxOpenConns(1)
	store := &SQLiteStore{db: db}
	if err := store.ensureSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

var _ drawout.DrawnStore = (*SQLiteStore)(nil)

func (s *SQLiteStore) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS drawn (
  number INTEGER PRIMARY KEY CHECK (number BETWEEN 1 AND 99)
);
`
	if _, err := s.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create drawn table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Has(ctx context.Context, n int) (bool, error) {
	var found int
	err := s.db.QueryRowContext(ctx, `SELECT 1 FROM drawn WHERE number = ?`, n).Scan(&found)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query drawn number: %w", err)
	}
	return true, nil
}

func (s *SQLiteStore) Add(ctx context.Context, values ...int) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin add: %w", err)
	}
	defer func() { _ = tx.Rollback() }()
	for _, n := range values {
		if _, err := tx.ExecContext(ctx, `INSERT INTO drawn (number) VALUES (?) ON CONFLICT(number) DO NOTHING`, n); err != nil {
			return fmt.Errorf("insert drawn number %d: %w", n, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit add: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Len(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM drawn`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count drawn numbers: %w", err)
	}
	return n, nil
}

func (s *SQLiteStore) Values(ctx context.Context) ([]int, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT number FROM drawn`)
	if err != nil {
		return nil, fmt.Errorf("list drawn numbers: %w", err)
	}
	defer rows.Close()
	out := []int{}
	for rows.Next() {
		var n int
		if err := rows.Scan(&n); err != nil {
			return nil, fmt.Errorf("scan drawn number: %w", err)
		}
		out = append(out, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate drawn numbers: %w", err)
	}
	return out, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM drawn`); err != nil {
		return fmt.Errorf("clear drawn numbers: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
