package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/binhbb2204/Translation-Hub/pkg/logger"
	_ "modernc.org/sqlite"
)

// TimeLayout is how rating timestamps are stored. Lexical order equals time order.
const TimeLayout = "2006-01-02 15:04:05"

var DB *sql.DB

func InitDatabase(dbPath string) error {
	db, err := Open(dbPath)
	if err != nil {
		return err
	}
	DB = db
	return nil
}

// Open opens (creating if needed) a sqlite database and applies the schema.
func Open(dbPath string) (*sql.DB, error) {
	log := logger.WithContext("component", "database")

	dir := filepath.Dir(dbPath)
	if dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("database_connection_established", "path", dbPath)

	if err = createTables(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	log.Debug("database_tables_ready")
	return db, nil
}

func createTables(db *sql.DB) error {
	schema := `
    CREATE TABLE IF NOT EXISTS ratings (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        source_text TEXT,
        translated_text TEXT,
        source_language TEXT,
        target_language TEXT,
        model_id TEXT,
        rating INTEGER,
        timestamp DATETIME
    );

    CREATE INDEX IF NOT EXISTS idx_ratings_timestamp ON ratings(timestamp);
    `

	if _, err := db.Exec(schema); err != nil {
		return err
	}
	// Databases written by older builds predate the model_id column.
	return ensureColumn(db, "ratings", "model_id", "TEXT")
}

func ensureColumn(db *sql.DB, table, column, ctype string) error {
	rows, err := db.Query(fmt.Sprintf(`PRAGMA table_info(%s);`, table))
	if err != nil {
		return err
	}
	defer rows.Close()

	found := false
	for rows.Next() {
		var cid int
		var name, colType string
		var notnull, pk int
		var dflt interface{}
		if err := rows.Scan(&cid, &name, &colType, &notnull, &dflt, &pk); err != nil {
			return err
		}
		if strings.EqualFold(name, column) {
			found = true
			break
		}
	}
	if err := rows.Err(); err != nil {
		return err
	}
	rows.Close()

	if !found {
		stmt := fmt.Sprintf(`ALTER TABLE %s ADD COLUMN %s %s;`, table, column, ctype)
		if _, err := db.Exec(stmt); err != nil {
			logger.Warn("add_column_failed", "table", table, "column", column, "error", err.Error())
		} else {
			logger.Info("added_column", "table", table, "column", column)
		}
	}
	return nil
}

func Close() error {
	if DB != nil {
		return DB.Close()
	}
	return nil
}
