// Package library maintains an SQLite index over a directory of GLDF
// containers, so a picker UI can list and search products without
// opening every archive on each start. Files are re-read only when
// their content hash changes.
package library

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"strings"
	"time"

	"lukechampine.com/blake3"
	_ "modernc.org/sqlite"

	"github.com/luxkit/gldf/container"
	"github.com/luxkit/gldf/dbopen"
	"github.com/luxkit/gldf/validate"
)

// Entry is one indexed product summary.
type Entry struct {
	Path          string `json:"path"`
	ContentHash   string `json:"contentHash"`
	GldfID        string `json:"gldfId"`
	Manufacturer  string `json:"manufacturer"`
	Name          string `json:"name"`
	ProductNumber string `json:"productNumber"`
	Author        string `json:"author"`
	VariantCount  int    `json:"variantCount"`
	ErrorCount    int    `json:"errorCount"`
	FileCount     int    `json:"fileCount"`
	SizeBytes     int64  `json:"sizeBytes"`
	IndexedAt     int64  `json:"indexedAt"`
}

// Library is a product index backed by SQLite.
type Library struct {
	DB  *sql.DB
	log *slog.Logger
}

// Option configures a Library.
type Option func(*Library)

// WithLogger sets the logger used during scans.
func WithLogger(log *slog.Logger) Option {
	return func(l *Library) {
		if log != nil {
			l.log = log
		}
	}
}

// Open creates or opens the index database at dbPath.
func Open(dbPath string, opts ...Option) (*Library, error) {
	db, err := dbopen.Open(dbPath, dbopen.WithMkdirAll(), dbopen.WithSchema(Schema))
	if err != nil {
		return nil, err
	}
	return NewWithDB(db, opts...), nil
}

// NewWithDB wraps an already-opened database. The schema must have been
// applied by the caller (dbopen.WithSchema(Schema)).
func NewWithDB(db *sql.DB, opts ...Option) *Library {
	l := &Library{DB: db, log: slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.Level(math.MaxInt)}))}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Close closes the underlying database.
func (l *Library) Close() error { return l.DB.Close() }

// Scan walks dir for .gldf files and reconciles the index: new files are
// added, changed files re-read, and rows whose file is gone are removed.
// It returns the number of added, updated and removed entries.
func (l *Library) Scan(ctx context.Context, dir string) (added, updated, removed int, err error) {
	onDisk := make(map[string]bool)

	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.EqualFold(filepath.Ext(path), ".gldf") {
			return nil
		}
		onDisk[path] = true

		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("library: read %s: %w", path, err)
		}
		sum := blake3.Sum256(data)
		hash := hex.EncodeToString(sum[:])

		var stored string
		row := l.DB.QueryRowContext(ctx, `SELECT content_hash FROM products WHERE path = ?`, path)
		switch err := row.Scan(&stored); {
		case err == sql.ErrNoRows:
			// fall through to index
		case err != nil:
			return fmt.Errorf("library: lookup %s: %w", path, err)
		case stored == hash:
			return nil
		}

		entry, err := summarize(path, data, hash)
		if err != nil {
			// A file that is not a readable GLDF is logged and skipped,
			// not fatal to the whole scan.
			l.log.Warn("skipping unreadable container", "path", path, "error", err)
			delete(onDisk, path)
			return nil
		}
		if err := l.upsert(ctx, entry); err != nil {
			return err
		}
		if stored == "" {
			added++
		} else {
			updated++
		}
		return nil
	})
	if walkErr != nil {
		return added, updated, removed, walkErr
	}

	stale, err := l.stalePaths(ctx, dir, onDisk)
	if err != nil {
		return added, updated, removed, err
	}
	for _, path := range stale {
		if _, err := dbopen.Exec(ctx, l.DB, `DELETE FROM products WHERE path = ?`, path); err != nil {
			return added, updated, removed, fmt.Errorf("library: remove %s: %w", path, err)
		}
		removed++
	}

	l.log.Debug("scan complete", "dir", dir, "added", added, "updated", updated, "removed", removed)
	return added, updated, removed, nil
}

func (l *Library) stalePaths(ctx context.Context, dir string, onDisk map[string]bool) ([]string, error) {
	rows, err := l.DB.QueryContext(ctx, `SELECT path FROM products WHERE path LIKE ?`,
		filepath.Clean(dir)+string(filepath.Separator)+"%")
	if err != nil {
		return nil, fmt.Errorf("library: list stale: %w", err)
	}
	defer rows.Close()

	var stale []string
	for rows.Next() {
		var path string
		if err := rows.Scan(&path); err != nil {
			return nil, err
		}
		if !onDisk[path] {
			stale = append(stale, path)
		}
	}
	return stale, rows.Err()
}

func summarize(path string, data []byte, hash string) (*Entry, error) {
	p, assets, err := container.Decode(data)
	if err != nil {
		return nil, err
	}

	entry := &Entry{
		Path:         path,
		ContentHash:  hash,
		GldfID:       p.Header.UniqueGldfID,
		Manufacturer: p.Header.Manufacturer,
		Author:       p.Header.Author,
		FileCount:    len(p.GeneralDefinitions.Files.File),
		SizeBytes:    int64(len(data)),
		IndexedAt:    time.Now().UnixMilli(),
	}
	if md := p.ProductDefinitions.ProductMetaData; md != nil {
		entry.Name = md.Name.First()
		entry.ProductNumber = md.ProductNumber.First()
	}
	if vs := p.ProductDefinitions.Variants; vs != nil {
		entry.VariantCount = len(vs.Variant)
	}
	entry.ErrorCount = len(validate.Product(p, assets).Errors())
	return entry, nil
}

func (l *Library) upsert(ctx context.Context, e *Entry) error {
	return dbopen.RunTx(ctx, l.DB, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO products (path, content_hash, gldf_id, manufacturer, name,
			    product_number, author, variant_count, error_count, file_count,
			    size_bytes, indexed_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(path) DO UPDATE SET
			    content_hash = excluded.content_hash,
			    gldf_id = excluded.gldf_id,
			    manufacturer = excluded.manufacturer,
			    name = excluded.name,
			    product_number = excluded.product_number,
			    author = excluded.author,
			    variant_count = excluded.variant_count,
			    error_count = excluded.error_count,
			    file_count = excluded.file_count,
			    size_bytes = excluded.size_bytes,
			    indexed_at = excluded.indexed_at`,
			e.Path, e.ContentHash, e.GldfID, e.Manufacturer, e.Name,
			e.ProductNumber, e.Author, e.VariantCount, e.ErrorCount,
			e.FileCount, e.SizeBytes, e.IndexedAt)
		if err != nil {
			return fmt.Errorf("library: upsert %s: %w", e.Path, err)
		}
		return nil
	})
}

const entryColumns = `path, content_hash, gldf_id, manufacturer, name,
	product_number, author, variant_count, error_count, file_count, size_bytes, indexed_at`

// Get returns the indexed entry for a container path.
func (l *Library) Get(ctx context.Context, path string) (*Entry, error) {
	row := l.DB.QueryRowContext(ctx,
		`SELECT `+entryColumns+` FROM products WHERE path = ?`, path)
	return scanEntry(row)
}

// List returns all indexed entries ordered by manufacturer and name.
func (l *Library) List(ctx context.Context) ([]*Entry, error) {
	rows, err := l.DB.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM products ORDER BY manufacturer, name, path`)
	if err != nil {
		return nil, fmt.Errorf("library: list: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

// Search returns entries whose name, manufacturer or product number
// contains the query, case-insensitively.
func (l *Library) Search(ctx context.Context, query string) ([]*Entry, error) {
	like := "%" + query + "%"
	rows, err := l.DB.QueryContext(ctx,
		`SELECT `+entryColumns+` FROM products
		WHERE name LIKE ? COLLATE NOCASE
		   OR manufacturer LIKE ? COLLATE NOCASE
		   OR product_number LIKE ? COLLATE NOCASE
		ORDER BY manufacturer, name, path`,
		like, like, like)
	if err != nil {
		return nil, fmt.Errorf("library: search: %w", err)
	}
	defer rows.Close()
	return collectEntries(rows)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*Entry, error) {
	var e Entry
	err := row.Scan(&e.Path, &e.ContentHash, &e.GldfID, &e.Manufacturer, &e.Name,
		&e.ProductNumber, &e.Author, &e.VariantCount, &e.ErrorCount,
		&e.FileCount, &e.SizeBytes, &e.IndexedAt)
	if err != nil {
		return nil, err
	}
	return &e, nil
}

func collectEntries(rows *sql.Rows) ([]*Entry, error) {
	var out []*Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
