package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"trainlog/internal/modules/activity/domain"
	apperrors "trainlog/internal/platform/errors"

	_ "modernc.org/sqlite"
)

// SQLiteRecordStore persists activity records in a single SQLite database.
// The connection is opened once at construction and shared; Init is
// idempotent and safe for concurrent callers, which all converge on the one
// schema setup.
type SQLiteRecordStore struct {
	db       *sql.DB
	initOnce sync.Once
	initErr  error
}

func NewSQLiteRecordStore(dbPath string) (*SQLiteRecordStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	store := &SQLiteRecordStore{db: db}
	if err := store.Init(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}

func (s *SQLiteRecordStore) Init(ctx context.Context) error {
	s.initOnce.Do(func() {
		const ddl = `
CREATE TABLE IF NOT EXISTS activities (
  date TEXT PRIMARY KEY,
  exercises TEXT NOT NULL,
  completed TEXT NOT NULL,
  all_completed INTEGER NOT NULL,
  last_updated TEXT
);
CREATE INDEX IF NOT EXISTS idx_activities_date ON activities(date);
CREATE INDEX IF NOT EXISTS idx_activities_all_completed ON activities(all_completed);
`
		if _, err := s.db.ExecContext(ctx, ddl); err != nil {
			s.initErr = fmt.Errorf("create activities schema: %w", err)
		}
	})
	return s.initErr
}

func (s *SQLiteRecordStore) Get(ctx context.Context, date string) (domain.Record, error) {
	const query = `SELECT date, exercises, completed, all_completed, last_updated FROM activities WHERE date = ?`
	record, err := scanRecord(s.db.QueryRowContext(ctx, query, date))
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Record{}, apperrors.ErrNotFound
	}
	if err != nil {
		return domain.Record{}, fmt.Errorf("get activity %s: %w", date, err)
	}
	return record, nil
}

func (s *SQLiteRecordStore) Put(ctx context.Context, record domain.Record) error {
	exercises, err := json.Marshal(record.Exercises)
	if err != nil {
		return fmt.Errorf("encode exercises: %w", err)
	}
	completed, err := json.Marshal(record.Completed)
	if err != nil {
		return fmt.Errorf("encode completed set: %w", err)
	}
	const stmt = `
INSERT INTO activities (date, exercises, completed, all_completed, last_updated)
VALUES (?, ?, ?, ?, ?)
ON CONFLICT(date) DO UPDATE SET
  exercises=excluded.exercises,
  completed=excluded.completed,
  all_completed=excluded.all_completed,
  last_updated=excluded.last_updated;
`
	if _, err := s.db.ExecContext(ctx, stmt, record.Date, string(exercises), string(completed), boolToInt(record.AllCompleted), record.LastUpdated); err != nil {
		return fmt.Errorf("upsert activity %s: %w", record.Date, err)
	}
	return nil
}

func (s *SQLiteRecordStore) GetAll(ctx context.Context) ([]domain.Record, error) {
	const query = `SELECT date, exercises, completed, all_completed, last_updated FROM activities`
	return s.queryRecords(ctx, query)
}

func (s *SQLiteRecordStore) GetRange(ctx context.Context, startDate, endDate string) ([]domain.Record, error) {
	const query = `SELECT date, exercises, completed, all_completed, last_updated FROM activities WHERE date >= ? AND date <= ? ORDER BY date`
	return s.queryRecords(ctx, query, startDate, endDate)
}

func (s *SQLiteRecordStore) Delete(ctx context.Context, date string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM activities WHERE date = ?`, date); err != nil {
		return fmt.Errorf("delete activity %s: %w", date, err)
	}
	return nil
}

func (s *SQLiteRecordStore) ClearAll(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM activities`); err != nil {
		return fmt.Errorf("clear activities: %w", err)
	}
	return nil
}

func (s *SQLiteRecordStore) ExportAll(ctx context.Context) ([]domain.Record, error) {
	return s.GetAll(ctx)
}

// ImportAll upserts record by record. Not transactional: records written
// before a failure stay committed.
func (s *SQLiteRecordStore) ImportAll(ctx context.Context, records []domain.Record) error {
	for _, record := range records {
		if err := s.Put(ctx, record); err != nil {
			return fmt.Errorf("import activity %s: %w", record.Date, err)
		}
	}
	return nil
}

func (s *SQLiteRecordStore) queryRecords(ctx context.Context, query string, args ...any) ([]domain.Record, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}
	defer rows.Close()

	var out []domain.Record
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan activity: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate activities: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (domain.Record, error) {
	var (
		record       domain.Record
		exercises    string
		completed    string
		allCompleted int
		lastUpdated  sql.NullString
	)
	if err := row.Scan(&record.Date, &exercises, &completed, &allCompleted, &lastUpdated); err != nil {
		return domain.Record{}, err
	}
	if err := json.Unmarshal([]byte(exercises), &record.Exercises); err != nil {
		return domain.Record{}, fmt.Errorf("decode exercises: %w", err)
	}
	if err := json.Unmarshal([]byte(completed), &record.Completed); err != nil {
		return domain.Record{}, fmt.Errorf("decode completed set: %w", err)
	}
	record.AllCompleted = allCompleted != 0
	record.LastUpdated = lastUpdated.String
	return record, nil
}

// Close releases the underlying database. Only bootstrap and tests hold the
// concrete type.
func (s *SQLiteRecordStore) Close() error {
	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
