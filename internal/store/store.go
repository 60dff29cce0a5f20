package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	sqlann "entgo.io/ent/dialect/entsql"
	entsql "entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/schema"

	entschema "github.com/abhisek/academy/ent/schema"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

var tables = []*schema.Table{
	tableFor(tableLearners, entschema.Learner{}),
}

// tableFor builds a migration table from an ent schema definition: mixin
// fields first, then the schema's own. The "id" field is the primary key.
// CHECK constraints come from the schema's entsql annotation.
func tableFor(name string, s ent.Interface) *schema.Table {
	var fields []ent.Field
	var indexes []ent.Index
	for _, m := range s.Mixin() {
		fields = append(fields, m.Fields()...)
		indexes = append(indexes, m.Indexes()...)
	}
	fields = append(fields, s.Fields()...)
	indexes = append(indexes, s.Indexes()...)

	t := &schema.Table{Name: name}
	byName := make(map[string]*schema.Column, len(fields))
	for _, f := range fields {
		d := f.Descriptor()
		col := &schema.Column{
			Name:     d.Name,
			Type:     d.Info.Type,
			Nullable: d.Optional,
		}
		if v, ok := d.Default.(int); ok {
			col.Default = v
		}
		t.Columns = append(t.Columns, col)
		byName[d.Name] = col
		if d.Name == "id" {
			t.PrimaryKey = []*schema.Column{col}
		}
	}

	prefix := strings.TrimSuffix(name, "s")
	for _, idx := range indexes {
		d := idx.Descriptor()
		ix := &schema.Index{
			Name:   prefix + "_" + strings.Join(d.Fields, "_"),
			Unique: d.Unique,
		}
		for _, f := range d.Fields {
			ix.Columns = append(ix.Columns, byName[f])
		}
		t.Indexes = append(t.Indexes, ix)
	}

	for _, a := range s.Annotations() {
		if ant, ok := a.(*sqlann.Annotation); ok {
			t.SetAnnotation(ant)
		}
	}
	return t
}

// Store holds the SQLite connection and provides access to repositories.
type Store struct {
	db  *sql.DB
	drv *entsql.Driver
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas and runs auto-migration.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", withConnPragmas(dsn))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	drv := entsql.OpenDB(dialect.SQLite, db)
	if err := migrate(context.Background(), drv); err != nil {
		drv.Close()
		return nil, fmt.Errorf("auto-migrate: %w", err)
	}

	return &Store{db: db, drv: drv}, nil
}

func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return err
	}
	return m.Create(ctx, tables...)
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.drv.Close()
}

// LearnerRepo returns a LearnerRepo backed by this store.
func (s *Store) LearnerRepo() LearnerRepo {
	return &learnerRepo{db: s.db}
}

// withConnPragmas adds per-connection pragmas to the DSN so every pooled
// connection gets them, not only the one applyPragmas ran on.
func withConnPragmas(dsn string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// applyPragmas configures SQLite for single-user performance.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA foreign_keys = ON",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// DefaultDBPath resolves the database file path:
// 1. $XDG_DATA_HOME/academy/academy.db
// 2. ~/.local/share/academy/academy.db
func DefaultDBPath() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "academy", "academy.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
