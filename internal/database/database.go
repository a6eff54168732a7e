package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq"  // PostgreSQL driver
	_ "modernc.org/sqlite" // embedded SQLite driver (pure Go)
)

// Supported storage backends. The backend is chosen once at startup;
// nothing above this package branches on it.
const (
	BackendSQLite   = "sqlite"
	BackendPostgres = "postgres"
)

// Config holds the storage connection settings.
type Config struct {
	Backend string

	// SQLite
	SQLitePath string

	// PostgreSQL
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DB is the storage handle owned by the process: opened once at startup,
// closed at shutdown, passed explicitly to whoever needs it.
type DB struct {
	conn    *sql.DB
	backend string
}

// Open connects to the configured backend, applies the schema and runs the
// one-time seed bootstrap.
func Open(cfg Config) (*DB, error) {
	backend := cfg.Backend
	if backend == "" {
		backend = BackendSQLite
	}

	var conn *sql.DB
	var err error
	switch backend {
	case BackendPostgres:
		connStr := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)
		conn, err = sql.Open("postgres", connStr)
	case BackendSQLite:
		if dir := filepath.Dir(cfg.SQLitePath); dir != "." && dir != "" {
			if mkErr := os.MkdirAll(dir, 0750); mkErr != nil {
				return nil, fmt.Errorf("create data directory: %w", mkErr)
			}
		}
		conn, err = sql.Open("sqlite", sqliteDSN(cfg.SQLitePath))
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db := &DB{conn: conn, backend: backend}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	if err := db.applySchema(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	if err := db.seedCatalog(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("seed catalog: %w", err)
	}

	return db, nil
}

// Conn returns the underlying connection pool.
func (d *DB) Conn() *sql.DB {
	return d.conn
}

// Backend reports which backend this handle was opened against.
func (d *DB) Backend() string {
	return d.backend
}

// Begin starts a transaction.
func (d *DB) Begin() (*sql.Tx, error) {
	return d.conn.Begin()
}

// Close closes the connection pool.
func (d *DB) Close() error {
	if d.conn != nil {
		return d.conn.Close()
	}
	return nil
}

// Rebind converts ?-style placeholders to the $N form required by
// PostgreSQL. Repositories write portable ?-queries and rebind through
// the handle, so query text never branches on the backend.
func (d *DB) Rebind(query string) string {
	if d.backend != BackendPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// sqliteDSN appends the pragmas every pooled connection needs. Foreign keys
// are off by default in SQLite and the cascade rules depend on them, so they
// must travel in the DSN: a pooled *sql.DB opens connections lazily, and a
// pragma issued through Exec only reaches whichever connection served it.
func sqliteDSN(path string) string {
	return path +
		"?_pragma=journal_mode(WAL)" +
		"&_pragma=foreign_keys(1)" +
		"&_pragma=busy_timeout(5000)" +
		"&_pragma=synchronous(NORMAL)"
}
