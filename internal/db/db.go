package db

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const schema = `
-- Submission audit log (operational record for debugging and volume
-- tracking; daily logs themselves are never persisted)
CREATE TABLE IF NOT EXISTS parse_log (
    id TEXT PRIMARY KEY,
    device_id TEXT,
    raw_chars INTEGER NOT NULL,
    activity_count INTEGER NOT NULL,
    total_time INTEGER NOT NULL,
    productivity INTEGER NOT NULL,
    created_at TEXT NOT NULL
);

-- Scheduler job tracking
CREATE TABLE IF NOT EXISTS scheduler_runs (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    job_type TEXT NOT NULL,
    status TEXT NOT NULL,
    started_at TEXT NOT NULL,
    completed_at TEXT,
    error_message TEXT
);

CREATE INDEX IF NOT EXISTS idx_parse_log_created ON parse_log(created_at);
CREATE INDEX IF NOT EXISTS idx_scheduler_job ON scheduler_runs(job_type);
`

type DB struct {
	conn *sql.DB
}

func Open(path string) (*DB, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := conn.Ping(); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	db := &DB{conn: conn}
	if err := db.migrate(); err != nil {
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return db, nil
}

func (db *DB) migrate() error {
	_, err := db.conn.Exec(schema)
	if err != nil {
		return fmt.Errorf("executing migration: %w", err)
	}
	return nil
}

func (db *DB) Close() error {
	return db.conn.Close()
}

// Ping checks connectivity, used by the health endpoint and scheduler
func (db *DB) Ping() error {
	return db.conn.Ping()
}

// LogParse records one submission's metadata. Raw text is not stored;
// only its length is kept for volume tracking.
func (db *DB) LogParse(id, deviceID string, rawChars, activityCount, totalTime, productivity int) error {
	_, err := db.conn.Exec(`
		INSERT INTO parse_log (id, device_id, raw_chars, activity_count, total_time, productivity, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, id, deviceID, rawChars, activityCount, totalTime, productivity, time.Now().UTC().Format(time.RFC3339))
	return err
}

// CountParsesSince returns the number of submissions recorded since the
// given time
func (db *DB) CountParsesSince(since time.Time) (int, error) {
	var count int
	err := db.conn.QueryRow(`
		SELECT COUNT(*) FROM parse_log WHERE created_at >= ?
	`, since.UTC().Format(time.RFC3339)).Scan(&count)
	return count, err
}

// PurgeParseLog deletes audit rows older than the cutoff and returns how
// many were removed
func (db *DB) PurgeParseLog(before time.Time) (int64, error) {
	result, err := db.conn.Exec(`
		DELETE FROM parse_log WHERE created_at < ?
	`, before.UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

// SchedulerRun tracks a scheduler job execution
type SchedulerRun struct {
	ID           int64
	JobType      string
	Status       string
	StartedAt    time.Time
	CompletedAt  *time.Time
	ErrorMessage string
}

// StartSchedulerRun records the start of a scheduler job
func (db *DB) StartSchedulerRun(jobType string) (int64, error) {
	result, err := db.conn.Exec(`
		INSERT INTO scheduler_runs (job_type, status, started_at)
		VALUES (?, 'running', ?)
	`, jobType, time.Now().UTC().Format(time.RFC3339))
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// CompleteSchedulerRun marks a scheduler job as completed
func (db *DB) CompleteSchedulerRun(runID int64, errMsg string) error {
	status := "completed"
	if errMsg != "" {
		status = "failed"
	}
	_, err := db.conn.Exec(`
		UPDATE scheduler_runs
		SET status = ?, completed_at = ?, error_message = ?
		WHERE id = ?
	`, status, time.Now().UTC().Format(time.RFC3339), errMsg, runID)
	return err
}

// GetLastSchedulerRun returns the last run for a job type
func (db *DB) GetLastSchedulerRun(jobType string) (*SchedulerRun, error) {
	var run SchedulerRun
	var startedStr string
	var completedStr, errMsg sql.NullString
	err := db.conn.QueryRow(`
		SELECT id, job_type, status, started_at, completed_at, error_message
		FROM scheduler_runs
		WHERE job_type = ?
		ORDER BY started_at DESC
		LIMIT 1
	`, jobType).Scan(&run.ID, &run.JobType, &run.Status, &startedStr, &completedStr, &errMsg)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	run.StartedAt, _ = time.Parse(time.RFC3339, startedStr)
	if completedStr.Valid {
		t, _ := time.Parse(time.RFC3339, completedStr.String)
		run.CompletedAt = &t
	}
	if errMsg.Valid {
		run.ErrorMessage = errMsg.String
	}
	return &run, nil
}
