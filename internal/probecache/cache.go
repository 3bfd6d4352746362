package probecache

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"golang.org/x/sys/unix"
	_ "modernc.org/sqlite"

	"ffkit/internal/config"
)

// Cache manages probe report persistence backed by SQLite.
type Cache struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Open initializes or connects to the cache database under the
// configured cache directory.
func Open(cfg *config.Config) (*Cache, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	if err := unix.Access(cfg.Cache.Dir, unix.W_OK|unix.X_OK); err != nil {
		return nil, fmt.Errorf("cache directory %s not writable: %w", cfg.Cache.Dir, err)
	}

	dbPath := filepath.Join(cfg.Cache.Dir, "probe.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	cache := &Cache{
		db:   db,
		path: dbPath,
		lock: flock.New(filepath.Join(cfg.Cache.Dir, "probe.lock")),
	}
	if err := cache.applySchema(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}
	return cache, nil
}

// Close closes the underlying database connection.
func (c *Cache) Close() error {
	if c == nil || c.db == nil {
		return nil
	}
	return c.db.Close()
}

func (c *Cache) applySchema(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS probe_reports (
    path       TEXT PRIMARY KEY,
    size       INTEGER NOT NULL,
    mtime_ns   INTEGER NOT NULL,
    raw_json   BLOB NOT NULL,
    created_at TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_probe_reports_created_at ON probe_reports (created_at);
`
	if _, err := c.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("apply schema: %w", err)
	}
	return nil
}

// fingerprint identifies one concrete file state.
type fingerprint struct {
	path    string
	size    int64
	mtimeNS int64
}

func fingerprintFile(path string) (fingerprint, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fingerprint{}, fmt.Errorf("resolve path: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return fingerprint{}, fmt.Errorf("stat %s: %w", abs, err)
	}
	return fingerprint{path: abs, size: info.Size(), mtimeNS: info.ModTime().UnixNano()}, nil
}

// Get returns the cached raw probe JSON for path. The second return
// value is false when there is no entry or the file changed since it
// was cached.
func (c *Cache) Get(ctx context.Context, path string) ([]byte, bool, error) {
	fp, err := fingerprintFile(path)
	if err != nil {
		return nil, false, err
	}

	var size, mtimeNS int64
	var raw []byte
	row := c.db.QueryRowContext(ctx,
		`SELECT size, mtime_ns, raw_json FROM probe_reports WHERE path = ?`, fp.path)
	if err := row.Scan(&size, &mtimeNS, &raw); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("query cache: %w", err)
	}
	if size != fp.size || mtimeNS != fp.mtimeNS {
		return nil, false, nil
	}
	return raw, true, nil
}

// Put stores raw probe JSON for the current state of path, replacing
// any previous entry.
func (c *Cache) Put(ctx context.Context, path string, raw []byte) error {
	fp, err := fingerprintFile(path)
	if err != nil {
		return err
	}
	createdAt := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = c.db.ExecContext(ctx,
		`INSERT INTO probe_reports (path, size, mtime_ns, raw_json, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT(path) DO UPDATE SET
           size = excluded.size,
           mtime_ns = excluded.mtime_ns,
           raw_json = excluded.raw_json,
           created_at = excluded.created_at`,
		fp.path, fp.size, fp.mtimeNS, raw, createdAt)
	if err != nil {
		return fmt.Errorf("store cache entry: %w", err)
	}
	return nil
}

// Prune removes the oldest entries beyond maxEntries and reports how
// many were deleted. It holds an exclusive cross-process lock for the
// duration so concurrent invocations do not both prune.
func (c *Cache) Prune(ctx context.Context, maxEntries int) (int64, error) {
	if maxEntries <= 0 {
		return 0, nil
	}
	locked, err := c.lock.TryLockContext(ctx, 100*time.Millisecond)
	if err != nil {
		return 0, fmt.Errorf("acquire prune lock: %w", err)
	}
	if !locked {
		return 0, nil
	}
	defer func() { _ = c.lock.Unlock() }()

	result, err := c.db.ExecContext(ctx,
		`DELETE FROM probe_reports WHERE path NOT IN (
            SELECT path FROM probe_reports ORDER BY created_at DESC LIMIT ?
         )`, maxEntries)
	if err != nil {
		return 0, fmt.Errorf("prune cache: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, nil
	}
	return deleted, nil
}
