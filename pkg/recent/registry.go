package recent

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultMaxEntries is the number of projects remembered when no limit is given.
const DefaultMaxEntries = 10

// Project is a recently opened or saved project.
type Project struct {
	Path      string
	Name      string
	OpenCount int
	LastUsed  time.Time
}

// Registry keeps the list of recent projects in a SQLite database.
type Registry struct {
	db         *sql.DB
	dataDir    string
	maxEntries int
	now        func() time.Time
}

// NewRegistry opens (and creates if needed) the registry in dataDir.
func NewRegistry(dataDir string) (*Registry, error) {
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dataDir, "recent.db")
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	r := &Registry{
		db:         db,
		dataDir:    dataDir,
		maxEntries: DefaultMaxEntries,
		now:        time.Now,
	}

	if err := r.init(); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize registry: %w", err)
	}

	return r, nil
}

// init creates the database schema
func (r *Registry) init() error {
	schema := `
	CREATE TABLE IF NOT EXISTS recent_projects (
		path TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		open_count INTEGER NOT NULL DEFAULT 1,
		last_used TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_recent_last_used ON recent_projects(last_used);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SetMaxEntries changes how many projects are kept. Values below 1 are ignored.
func (r *Registry) SetMaxEntries(n int) {
	if n > 0 {
		r.maxEntries = n
	}
}

// SetRecent records path as the most recently used project and drops the
// oldest entries beyond the limit.
func (r *Registry) SetRecent(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	query := `
	INSERT INTO recent_projects (path, name, open_count, last_used)
	VALUES (?, ?, 1, ?)
	ON CONFLICT(path) DO UPDATE SET
		open_count = open_count + 1,
		last_used = excluded.last_used
	`
	if _, err := r.db.Exec(query, absPath, filepath.Base(absPath), r.now()); err != nil {
		return fmt.Errorf("record recent project: %w", err)
	}

	prune := `
	DELETE FROM recent_projects WHERE path NOT IN (
		SELECT path FROM recent_projects ORDER BY last_used DESC LIMIT ?
	)
	`
	if _, err := r.db.Exec(prune, r.maxEntries); err != nil {
		return fmt.Errorf("prune recent projects: %w", err)
	}
	return nil
}

// List returns up to limit projects, most recent first. A limit below 1
// uses the configured maximum.
func (r *Registry) List(limit int) ([]*Project, error) {
	if limit < 1 {
		limit = r.maxEntries
	}

	query := `
	SELECT path, name, open_count, last_used
	FROM recent_projects ORDER BY last_used DESC LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(&p.Path, &p.Name, &p.OpenCount, &p.LastUsed); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}

	return projects, rows.Err()
}

// Remove forgets a project.
func (r *Registry) Remove(path string) error {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	_, err = r.db.Exec("DELETE FROM recent_projects WHERE path = ?", absPath)
	return err
}

// Close closes the registry database
func (r *Registry) Close() error {
	return r.db.Close()
}
