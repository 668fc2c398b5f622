package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/nao1215/scamscan/internal/model"
)

// FileName is the database file created inside the database directory.
const FileName = "scamscan.db"

// timeLayout is fixed width so that stored timestamps sort lexically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// ResultDB provides SQLite-based storage for analysis results and the
// training corpus.
type ResultDB struct {
	// db is the underlying SQL database connection.
	db *sql.DB

	// dbPath is the path to the SQLite database file.
	dbPath string
}

// Options configures ResultDB behavior.
type Options struct {
	// CreateIfNotExists creates the database file if it doesn't exist.
	CreateIfNotExists bool

	// EnableWAL enables Write-Ahead Logging for better concurrent performance.
	EnableWAL bool
}

// DefaultOptions returns the default database options.
func DefaultOptions() Options {
	return Options{
		CreateIfNotExists: true,
		EnableWAL:         true,
	}
}

// Open opens or creates a ResultDB in dbDir.
// If CreateIfNotExists is false and the database doesn't exist, an error is returned.
func Open(dbDir string, opts Options) (*ResultDB, error) {
	dbPath := filepath.Join(dbDir, FileName)

	if !opts.CreateIfNotExists {
		if _, err := os.Stat(dbPath); os.IsNotExist(err) {
			return nil, fmt.Errorf("database not found at %s (use CreateIfNotExists option to create)", dbPath)
		} else if err != nil {
			return nil, fmt.Errorf("failed to check database path: %w", err)
		}
	} else {
		if err := os.MkdirAll(dbDir, 0750); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// mode=rw refuses to create a missing file, mode=rwc allows it.
	var dsn string
	if opts.CreateIfNotExists {
		dsn = dbPath + "?mode=rwc"
	} else {
		dsn = dbPath + "?mode=rw"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(1) // SQLite only supports one writer
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	rdb := &ResultDB{
		db:     db,
		dbPath: dbPath,
	}

	if opts.EnableWAL {
		if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
		}
	}

	if err := rdb.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create tables: %w", err)
	}

	return rdb, nil
}

// Close closes the database connection.
func (rdb *ResultDB) Close() error {
	return rdb.db.Close()
}

// Path returns the database file path.
func (rdb *ResultDB) Path() string {
	return rdb.dbPath
}

// createTables creates the database schema if it doesn't exist.
func (rdb *ResultDB) createTables() error {
	schema := `
	-- Analysis results; the full result is kept as JSON, the rest are
	-- query columns
	CREATE TABLE IF NOT EXISTS analysis_results (
		id TEXT PRIMARY KEY,
		unit_id TEXT,
		origin TEXT NOT NULL,
		platform TEXT,
		confidence REAL NOT NULL,
		is_flagged INTEGER NOT NULL,
		risk_level TEXT,
		model_version TEXT,
		degraded INTEGER NOT NULL,
		analyzed_at TEXT NOT NULL,
		result_json TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_results_analyzed_at ON analysis_results(analyzed_at);
	CREATE INDEX IF NOT EXISTS idx_results_origin ON analysis_results(origin);

	-- Training examples accumulate; rows are never updated or deleted
	CREATE TABLE IF NOT EXISTS training_examples (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		text TEXT NOT NULL,
		label TEXT NOT NULL,
		added_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	`

	_, err := rdb.db.ExecContext(context.Background(), schema)
	return err
}

// execer is satisfied by *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// SaveResult inserts or replaces an analysis result.
func (rdb *ResultDB) SaveResult(ctx context.Context, r *model.AnalysisResult) error {
	return saveResult(ctx, rdb.db, r)
}

// SaveResults stores results in a single transaction.
func (rdb *ResultDB) SaveResults(ctx context.Context, results []*model.AnalysisResult) error {
	tx, err := rdb.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	for _, r := range results {
		if err := saveResult(ctx, tx, r); err != nil {
			_ = tx.Rollback()
			return err
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit results: %w", err)
	}
	return nil
}

func saveResult(ctx context.Context, ex execer, r *model.AnalysisResult) error {
	if r == nil {
		return nil
	}
	resultJSON, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to serialize result: %w", err)
	}

	query := `
	INSERT INTO analysis_results (id, unit_id, origin, platform, confidence, is_flagged,
		risk_level, model_version, degraded, analyzed_at, result_json)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		confidence = excluded.confidence,
		is_flagged = excluded.is_flagged,
		risk_level = excluded.risk_level,
		model_version = excluded.model_version,
		degraded = excluded.degraded,
		analyzed_at = excluded.analyzed_at,
		result_json = excluded.result_json
	`

	_, err = ex.ExecContext(ctx, query,
		r.ID,
		r.UnitID,
		string(r.Origin),
		string(r.Platform),
		r.Confidence,
		r.IsFlagged,
		r.RiskLevel.String(),
		r.ModelVersion,
		r.Degraded,
		formatTime(r.AnalyzedAt),
		string(resultJSON),
	)
	if err != nil {
		return fmt.Errorf("failed to save result: %w", err)
	}
	return nil
}

// GetResult retrieves a result by ID. It returns nil, nil when no result
// has that ID.
func (rdb *ResultDB) GetResult(ctx context.Context, id string) (*model.AnalysisResult, error) {
	var resultJSON string
	err := rdb.db.QueryRowContext(ctx, `SELECT result_json FROM analysis_results WHERE id = ?`, id).Scan(&resultJSON)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // absent result is not an error
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get result: %w", err)
	}

	var r model.AnalysisResult
	if err := json.Unmarshal([]byte(resultJSON), &r); err != nil {
		return nil, fmt.Errorf("failed to parse result: %w", err)
	}
	return &r, nil
}

// ResultFilter selects stored results. Zero values disable a condition.
type ResultFilter struct {
	// Origin restricts results to one content origin.
	Origin model.Origin

	// Since is the inclusive lower bound on AnalyzedAt.
	Since time.Time

	// Until is the exclusive upper bound on AnalyzedAt.
	Until time.Time

	// FlaggedOnly drops results that were not flagged.
	FlaggedOnly bool

	// IncludeDegraded keeps results of failed analyses.
	IncludeDegraded bool

	// Limit caps the number of results.
	Limit int
}

// ListResults returns the results matching filter, oldest first.
func (rdb *ResultDB) ListResults(ctx context.Context, filter ResultFilter) ([]*model.AnalysisResult, error) {
	query := `SELECT result_json FROM analysis_results WHERE 1=1`
	args := make([]any, 0)

	if filter.Origin != "" {
		query += " AND origin = ?"
		args = append(args, string(filter.Origin))
	}
	if !filter.Since.IsZero() {
		query += " AND analyzed_at >= ?"
		args = append(args, formatTime(filter.Since))
	}
	if !filter.Until.IsZero() {
		query += " AND analyzed_at < ?"
		args = append(args, formatTime(filter.Until))
	}
	if filter.FlaggedOnly {
		query += " AND is_flagged = 1"
	}
	if !filter.IncludeDegraded {
		query += " AND degraded = 0"
	}
	query += " ORDER BY analyzed_at ASC, id ASC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := rdb.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query results: %w", err)
	}
	defer rows.Close()

	results := make([]*model.AnalysisResult, 0)
	for rows.Next() {
		var resultJSON string
		if err := rows.Scan(&resultJSON); err != nil {
			return nil, fmt.Errorf("failed to scan result: %w", err)
		}
		var r model.AnalysisResult
		if err := json.Unmarshal([]byte(resultJSON), &r); err != nil {
			continue // Skip malformed rows
		}
		results = append(results, &r)
	}
	return results, rows.Err()
}

// ResultsSince returns the successful results analyzed at or after since.
func (rdb *ResultDB) ResultsSince(ctx context.Context, since time.Time) ([]*model.AnalysisResult, error) {
	return rdb.ListResults(ctx, ResultFilter{Since: since})
}

// ResultStats summarizes stored results.
type ResultStats struct {
	Total    int
	Flagged  int
	Degraded int

	// ByRiskLevel counts social post results per risk level name.
	ByRiskLevel map[string]int
}

// Stats counts the results analyzed at or after since.
func (rdb *ResultDB) Stats(ctx context.Context, since time.Time) (*ResultStats, error) {
	stats := &ResultStats{ByRiskLevel: make(map[string]int)}
	cutoff := formatTime(since)

	err := rdb.db.QueryRowContext(ctx, `
	SELECT COUNT(*), COALESCE(SUM(is_flagged), 0), COALESCE(SUM(degraded), 0)
	FROM analysis_results WHERE analyzed_at >= ?`, cutoff).Scan(&stats.Total, &stats.Flagged, &stats.Degraded)
	if err != nil {
		return nil, fmt.Errorf("failed to count results: %w", err)
	}

	rows, err := rdb.db.QueryContext(ctx, `
	SELECT risk_level, COUNT(*) FROM analysis_results
	WHERE analyzed_at >= ? AND degraded = 0 AND risk_level != ''
	GROUP BY risk_level`, cutoff)
	if err != nil {
		return nil, fmt.Errorf("failed to count risk levels: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var level string
		var n int
		if err := rows.Scan(&level, &n); err != nil {
			return nil, fmt.Errorf("failed to scan risk level: %w", err)
		}
		stats.ByRiskLevel[level] = n
	}
	return stats, rows.Err()
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timestampFormats contains the timestamp formats that SQLite may return.
// The order matters: more specific formats should come first.
var timestampFormats = []string{
	timeLayout,
	"2006-01-02 15:04:05",  // SQLite default datetime format
	"2006-01-02T15:04:05Z", // ISO 8601 with Z suffix
	time.RFC3339,
	time.RFC3339Nano,
}

// parseTimestamp attempts to parse a timestamp string using multiple formats.
// If parsing fails with all formats, returns zero time.
func parseTimestamp(s string) time.Time {
	for _, format := range timestampFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t
		}
	}
	return time.Time{}
}
