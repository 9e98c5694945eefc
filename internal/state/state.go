package state

import (
	"database/sql"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	_ "modernc.org/sqlite" // SQLite driver
)

const (
	appName    = "slides"
	dbFileName = "slides.db"
)

// Manager owns the SQLite database holding persisted settings. It is the
// prefs.Backend of the running application.
type Manager struct {
	db *sql.DB
}

// Open opens the database at path, or at the XDG data location when path is
// empty, creating the schema on first use.
func Open(path string) (*Manager, error) {
	if path == "" {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return nil, err
		}
	}

	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}

	if path == ":memory:" {
		// every pooled connection would otherwise see its own empty database
		db.SetMaxOpenConns(1)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// DefaultPath returns the database location under the XDG data directory.
func DefaultPath() (string, error) {
	return xdg.DataFile(filepath.Join(appName, dbFileName))
}

// Close closes the database.
func (m *Manager) Close() error {
	return m.db.Close()
}

// GetSetting returns the raw stored value for key.
func (m *Manager) GetSetting(key string) (string, bool, error) {
	return getSetting(m.db, key)
}

// SaveSetting stores value under key, replacing any previous value.
func (m *Manager) SaveSetting(key, value string) error {
	return saveSetting(m.db, key, value)
}

// DeleteSetting removes key. Removing a missing key is not an error.
func (m *Manager) DeleteSetting(key string) error {
	return deleteSettings(m.db, key)
}

// DeleteSettings removes all given keys in one transaction.
func (m *Manager) DeleteSettings(keys ...string) error {
	return deleteSettings(m.db, keys...)
}
