package state

import (
	"database/sql"
	"errors"
	"time"

	dbutil "github.com/llehouerou/slides/internal/db"
)

func getSetting(db *sql.DB, key string) (string, bool, error) {
	var value string
	err := db.QueryRow(`SELECT value FROM settings WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func saveSetting(db *sql.DB, key, value string) error {
	_, err := db.Exec(`
		INSERT INTO settings (key, value, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at
	`, key, value, time.Now().Unix())
	return err
}

func deleteSettings(sqlDB *sql.DB, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return dbutil.WithTx(sqlDB, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`DELETE FROM settings WHERE key = ?`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, key := range keys {
			if _, err := stmt.Exec(key); err != nil {
				return err
			}
		}
		return nil
	})
}
