package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Store wraps the SQLite database and provides access to repositories.
type Store struct {
	db *sql.DB
}

// Open creates a new Store connected to the SQLite database at dsn.
// It applies recommended pragmas, creates the schema if missing, and
// seeds the subtopic catalog when it is empty.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("ensure schema: %w", err)
	}

	if err := seedSubtopics(ctx, db); err != nil {
		db.Close()
		return nil, fmt.Errorf("seed subtopics: %w", err)
	}

	return &Store{db: db}, nil
}

// DB returns the underlying *sql.DB for raw queries.
func (s *Store) DB() *sql.DB {
	return s.db
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// EventRepo returns the LLM request event repository backed by this store.
func (s *Store) EventRepo() EventRepo {
	return &eventRepo{db: s.db}
}

// applyPragmas configures SQLite for a small single-node service.
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

const schemaSQL = `
CREATE TABLE IF NOT EXISTS subtopics (
  id TEXT PRIMARY KEY,
  name TEXT NOT NULL,
  notes TEXT NOT NULL DEFAULT '',
  topic_name TEXT NOT NULL DEFAULT '',
  topic_year TEXT NOT NULL DEFAULT '',
  topic_code TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS llm_events (
  id TEXT PRIMARY KEY,
  created_at INTEGER NOT NULL,
  provider TEXT NOT NULL,
  model TEXT NOT NULL,
  purpose TEXT NOT NULL,
  input_tokens INTEGER NOT NULL DEFAULT 0,
  output_tokens INTEGER NOT NULL DEFAULT 0,
  latency_ms INTEGER NOT NULL DEFAULT 0,
  success INTEGER NOT NULL,
  error_message TEXT NOT NULL DEFAULT '',
  request_body TEXT NOT NULL DEFAULT '',
  response_body TEXT NOT NULL DEFAULT ''
);

CREATE INDEX IF NOT EXISTS idx_llm_events_created_at ON llm_events(created_at);
`

// seedSubtopics loads the starter derivative curriculum when the catalog
// is empty, so a fresh database can enrich prompts out of the box.
func seedSubtopics(ctx context.Context, db *sql.DB) error {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM subtopics").Scan(&n); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	seed := []struct {
		id, name, notes string
	}{
		{"derivadas-definicion", "Derivada por definición", "Límite del cociente incremental; interpretación geométrica como pendiente de la recta tangente."},
		{"reglas-derivacion", "Reglas de derivación", "Derivada de suma, producto y cociente; derivada de potencias, exponenciales y logaritmos."},
		{"regla-cadena", "Regla de la cadena", "Derivación de funciones compuestas; combinar con reglas de producto y cociente."},
		{"derivadas-trigonometricas", "Derivadas trigonométricas", "Derivadas de sen, cos y tan; composición con polinomios."},
		{"aplicaciones-derivada", "Aplicaciones de la derivada", "Monotonía, extremos relativos, optimización y problemas con enunciado."},
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	for _, s := range seed {
		_, err := tx.ExecContext(ctx,
			`INSERT OR IGNORE INTO subtopics (id, name, notes, topic_name, topic_year, topic_code)
			 VALUES (?, ?, ?, 'Cálculo Diferencial', '2º Bachillerato', 'MAT-CD')`,
			s.id, s.name, s.notes)
		if err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}

// DefaultDBPath returns the database path under the user config dir,
// creating parent directories as needed.
func DefaultDBPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	path := filepath.Join(dir, "mathcoach", "mathcoach.db")
	return path, EnsureDir(path)
}

// EnsureDir creates the parent directory of path if it does not exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
