package db

import (
	"database/sql"
	"errors"
	"testing"

	_ "modernc.org/sqlite"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}
	db.SetMaxOpenConns(1)

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT)`)
	if err != nil {
		db.Close()
		t.Fatalf("failed to create table: %v", err)
	}

	return db
}

func countRows(t *testing.T, db *sql.DB) int {
	t.Helper()
	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM kv`).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count
}

func TestWithTx_Commit(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		for _, k := range []string{"slideshow_mode", "slideshow_theme"} {
			if _, err := tx.Exec(`INSERT INTO kv (key, value) VALUES (?, ?)`, k, "x"); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		t.Fatalf("WithTx failed: %v", err)
	}

	if got := countRows(t, db); got != 2 {
		t.Errorf("count = %d, want 2", got)
	}
}

func TestWithTx_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	boom := errors.New("boom")
	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv (key, value) VALUES ('a', 'b')`); err != nil {
			return err
		}
		return boom
	})

	if !errors.Is(err, boom) {
		t.Fatalf("WithTx error = %v, want %v", err, boom)
	}
	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}

func TestWithTx_ConstraintViolationRollsBack(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	err := WithTx(db, func(tx *sql.Tx) error {
		if _, err := tx.Exec(`INSERT INTO kv (key, value) VALUES ('dup', '1')`); err != nil {
			return err
		}
		_, err := tx.Exec(`INSERT INTO kv (key, value) VALUES ('dup', '2')`)
		return err
	})

	if err == nil {
		t.Fatal("expected primary key violation")
	}
	if got := countRows(t, db); got != 0 {
		t.Errorf("count = %d, want 0 (rolled back)", got)
	}
}
