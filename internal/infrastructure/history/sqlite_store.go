// Package history persists run records so past pipeline commands can be
// inspected after the fact.
package history

import (
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/doeshing/cictl/internal/domain"
	"github.com/doeshing/cictl/internal/ports"
)

// SQLiteStore persists run records in a SQLite database.
type SQLiteStore struct {
	db   *sql.DB
	path string
	mu   sync.Mutex
}

// NewSQLiteStore creates (or opens) the ~/.cictl/history/history.db database.
func NewSQLiteStore() *SQLiteStore {
	return NewSQLiteStoreAt(filepath.Join(userHome(), ".cictl", "history", "history.db"))
}

// NewSQLiteStoreAt creates (or opens) a database at an explicit path.
// When the database cannot be opened the store degrades to the JSONL
// FileStore at the same location.
func NewSQLiteStoreAt(path string) *SQLiteStore {
	_ = os.MkdirAll(filepath.Dir(path), domain.DirectoryPermissions)
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &SQLiteStore{path: path}
	}
	store := &SQLiteStore{db: db, path: path}
	if err := store.init(); err != nil {
		return &SQLiteStore{path: path}
	}
	return store
}

func (s *SQLiteStore) init() error {
	if s.db == nil {
		return os.ErrInvalid
	}
	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		timestamp TEXT,
		description TEXT,
		command TEXT,
		attempts INTEGER,
		exit_code INTEGER,
		success INTEGER,
		duration_ms INTEGER
	);`)
	return err
}

// Save inserts a new run record.
func (s *SQLiteStore) Save(record domain.RunRecord) error {
	if s.db == nil {
		return (&FileStore{path: s.path}).Save(record)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	_, err := s.db.Exec(`INSERT INTO runs
		(id, timestamp, description, command, attempts, exit_code, success, duration_ms)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		record.ID,
		record.Timestamp.Format(domain.TimestampFormat),
		record.Description,
		record.Command,
		record.Attempts,
		record.ExitCode,
		boolToInt(record.Success),
		record.DurationMS,
	)
	return err
}

// Records returns run records, newest first (limit/search optional).
func (s *SQLiteStore) Records(limit int, search string) ([]domain.RunRecord, error) {
	if s.db == nil {
		return (&FileStore{path: s.path}).Records(limit, search)
	}
	builder := strings.Builder{}
	builder.WriteString("SELECT id, timestamp, description, command, attempts, exit_code, success, duration_ms FROM runs")
	var args []interface{}
	if search != "" {
		builder.WriteString(" WHERE description LIKE ? OR command LIKE ?")
		args = append(args, "%"+search+"%", "%"+search+"%")
	}
	builder.WriteString(" ORDER BY datetime(timestamp) DESC")
	if limit > 0 {
		builder.WriteString(" LIMIT ?")
		args = append(args, limit)
	}
	rows, err := s.db.Query(builder.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var records []domain.RunRecord
	for rows.Next() {
		var rec domain.RunRecord
		var ts string
		var success int
		if err := rows.Scan(&rec.ID, &ts, &rec.Description, &rec.Command, &rec.Attempts, &rec.ExitCode, &success, &rec.DurationMS); err != nil {
			return nil, err
		}
		if t, err := time.Parse(domain.TimestampFormat, ts); err == nil {
			rec.Timestamp = t
		}
		rec.Success = success == 1
		records = append(records, rec)
	}
	return records, rows.Err()
}

// Clear deletes all run records.
func (s *SQLiteStore) Clear() error {
	if s.db == nil {
		return (&FileStore{path: s.path}).Clear()
	}
	_, err := s.db.Exec("DELETE FROM runs")
	return err
}

// ExportJSON writes all run records to a jsonl file.
func (s *SQLiteStore) ExportJSON(dest string) error {
	records, err := s.Records(0, "")
	if err != nil {
		return err
	}
	file, err := os.Create(dest)
	if err != nil {
		return err
	}
	defer file.Close()
	for _, rec := range records {
		b, err := json.Marshal(rec)
		if err != nil {
			return err
		}
		if _, err := file.Write(append(b, '\n')); err != nil {
			return err
		}
	}
	return nil
}

// Path returns the sqlite database path.
func (s *SQLiteStore) Path() string {
	return s.path
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

var _ ports.HistoryStore = (*SQLiteStore)(nil)
