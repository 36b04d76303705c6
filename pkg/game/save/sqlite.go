package save

import (
	"context"
	"database/sql"
	"path/filepath"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
	_ "modernc.org/sqlite"
)

// ErrNoSave is returned when a slot holds nothing
var ErrNoSave = errors.New("no saved game")

const schema = `CREATE TABLE IF NOT EXISTS saves (
	slot       TEXT PRIMARY KEY,
	blob       BLOB NOT NULL,
	updated_at INTEGER NOT NULL
)`

// SlotInfo describes one stored slot
type SlotInfo struct {
	Name      string `db:"slot"`
	Size      int    `db:"size"`
	UpdatedAt int64  `db:"updated_at"` // Unix milliseconds
}

// Updated returns UpdatedAt as a time
func (i SlotInfo) Updated() time.Time {
	return time.UnixMilli(i.UpdatedAt).UTC()
}

// SlotStore keeps save blobs in named slots of a SQLite database
type SlotStore struct {
	db  *sqlx.DB
	now func() time.Time
}

// Open opens (creating if needed) the slot database at path. The special
// path ":memory:" gives a private in-memory store.
func Open(ctx context.Context, path string) (*SlotStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("save path is required")
	}
	dsn := path
	if path != ":memory:" {
		dsn = filepath.Clean(path)
	}
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "open sqlite db")
	}
	// One connection keeps an in-memory database alive and serializes writers.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping sqlite db")
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "create saves table")
	}
	return &SlotStore{db: db, now: time.Now}, nil
}

// Close closes the database
func (s *SlotStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Put stores blob in slot, replacing what was there
func (s *SlotStore) Put(ctx context.Context, slot string, blob []byte) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO saves (slot, blob, updated_at) VALUES (?, ?, ?)
		ON CONFLICT(slot) DO UPDATE SET blob = excluded.blob, updated_at = excluded.updated_at`,
		slot, blob, s.now().UTC().UnixMilli())
	return errors.Wrapf(err, "put slot %q", slot)
}

// Get returns the blob in slot, or ErrNoSave
func (s *SlotStore) Get(ctx context.Context, slot string) ([]byte, error) {
	var blob []byte
	err := s.db.GetContext(ctx, &blob, `SELECT blob FROM saves WHERE slot = ?`, slot)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, errors.Wrapf(ErrNoSave, "slot %q", slot)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "get slot %q", slot)
	}
	return blob, nil
}

// Delete empties slot. Deleting an empty slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, slot string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM saves WHERE slot = ?`, slot)
	return errors.Wrapf(err, "delete slot %q", slot)
}

// List describes every stored slot, ordered by name
func (s *SlotStore) List(ctx context.Context) ([]SlotInfo, error) {
	var infos []SlotInfo
	err := s.db.SelectContext(ctx, &infos,
		`SELECT slot, length(blob) AS size, updated_at FROM saves ORDER BY slot`)
	if err != nil {
		return nil, errors.Wrap(err, "list slots")
	}
	return infos, nil
}

// Slot binds a store to one slot name. It is the controller's autosave
// target.
type Slot struct {
	Store   *SlotStore
	Name    string
	Timeout time.Duration
}

func (sl Slot) context() (context.Context, context.CancelFunc) {
	timeout := sl.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return context.WithTimeout(context.Background(), timeout)
}

// Save writes blob to the slot
func (sl Slot) Save(blob []byte) error {
	ctx, cancel := sl.context()
	defer cancel()
	return sl.Store.Put(ctx, sl.Name, blob)
}

// Load reads the slot, returning ErrNoSave when it is empty
func (sl Slot) Load() ([]byte, error) {
	ctx, cancel := sl.context()
	defer cancel()
	return sl.Store.Get(ctx, sl.Name)
}

// Clear empties the slot
func (sl Slot) Clear() error {
	ctx, cancel := sl.context()
	defer cancel()
	return sl.Store.Delete(ctx, sl.Name)
}

// List describes every slot in the store
func (sl Slot) List() ([]SlotInfo, error) {
	ctx, cancel := sl.context()
	defer cancel()
	return sl.Store.List(ctx)
}
