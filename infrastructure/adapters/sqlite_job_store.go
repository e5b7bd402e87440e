package adapters

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/toruasakawa/short-video-generator-clean/application/ports/outbound"
	"github.com/toruasakawa/short-video-generator-clean/domain"
)

const (
	busyRetries    = 5
	busyRetryDelay = 50 * time.Millisecond

	// Fixed-width UTC timestamps keep ORDER BY created_at chronological.
	timeLayout = "2006-01-02T15:04:05.000000000Z"
)

const jobsSchema = `
CREATE TABLE IF NOT EXISTS video_generations (
	id             TEXT PRIMARY KEY,
	user_id        TEXT NOT NULL,
	topic          TEXT NOT NULL,
	style          TEXT NOT NULL,
	speaker        INTEGER NOT NULL,
	enable_preview INTEGER NOT NULL DEFAULT 0,
	status         TEXT NOT NULL,
	result_path    TEXT NOT NULL DEFAULT '',
	error_detail   TEXT NOT NULL DEFAULT '',
	scene_outcomes TEXT NOT NULL DEFAULT '',
	created_at     TEXT NOT NULL,
	completed_at   TEXT
);
CREATE INDEX IF NOT EXISTS idx_video_generations_user
	ON video_generations (user_id, created_at DESC);
`

type sqliteJobStore struct {
	db     *sql.DB
	logger outbound.LoggerPort
}

// NewSqliteJobStore opens (and migrates) the durable job record. Terminal
// states are absorbing: the mark statements refuse to overwrite a completed
// or failed row.
func NewSqliteJobStore(path string, logger outbound.LoggerPort) (*sqliteJobStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open job store: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL;",
		"PRAGMA busy_timeout=5000;",
		"PRAGMA foreign_keys=ON;",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("configure job store: %w", err)
		}
	}

	if _, err := db.Exec(jobsSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate job store: %w", err)
	}

	return &sqliteJobStore{db: db, logger: logger}, nil
}

func (s *sqliteJobStore) Close() error {
	return s.db.Close()
}

func (s *sqliteJobStore) Create(ctx context.Context, job domain.Job) error {
	return s.retryOnBusy(func() error {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO video_generations
				(id, user_id, topic, style, speaker, enable_preview, status, created_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			job.ID, job.UserID, job.Topic, job.Style, job.Speaker,
			boolToInt(job.EnablePreview), string(job.Status),
			job.CreatedAt.UTC().Format(timeLayout),
		)
		return err
	})
}

func (s *sqliteJobStore) Get(ctx context.Context, id string) (*domain.Job, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, topic, style, speaker, enable_preview, status,
		       result_path, error_detail, scene_outcomes, created_at, completed_at
		FROM video_generations WHERE id = ?`, id)
	return scanJob(row)
}

func (s *sqliteJobStore) MarkProcessing(ctx context.Context, id string) error {
	return s.retryOnBusy(func() error {
		_, err := s.db.ExecContext(ctx, `
			UPDATE video_generations SET status = ?
			WHERE id = ? AND status NOT IN ('completed', 'failed')`,
			string(domain.JobProcessing), id)
		return err
	})
}

func (s *sqliteJobStore) MarkCompleted(ctx context.Context, id string, resultPath string, outcomes []domain.SceneOutcome) error {
	return s.markTerminal(ctx, id, domain.JobCompleted, resultPath, "", outcomes)
}

func (s *sqliteJobStore) MarkFailed(ctx context.Context, id string, detail string, outcomes []domain.SceneOutcome) error {
	return s.markTerminal(ctx, id, domain.JobFailed, "", detail, outcomes)
}

func (s *sqliteJobStore) markTerminal(ctx context.Context, id string, status domain.JobStatus, resultPath, detail string, outcomes []domain.SceneOutcome) error {
	encoded, err := encodeOutcomes(outcomes)
	if err != nil {
		return err
	}
	completedAt := time.Now().UTC().Format(timeLayout)

	return s.retryOnBusy(func() error {
		_, err := s.db.ExecContext(ctx, `
			UPDATE video_generations
			SET status = ?, result_path = ?, error_detail = ?, scene_outcomes = ?, completed_at = ?
			WHERE id = ? AND status NOT IN ('completed', 'failed')`,
			string(status), resultPath, detail, encoded, completedAt, id)
		return err
	})
}

func (s *sqliteJobStore) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Job, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, topic, style, speaker, enable_preview, status,
		       result_path, error_detail, scene_outcomes, created_at, completed_at
		FROM video_generations
		WHERE user_id = ?
		ORDER BY created_at DESC
		LIMIT ?`, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var jobs []domain.Job
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, *job)
	}
	return jobs, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanJob(row rowScanner) (*domain.Job, error) {
	var (
		job           domain.Job
		enablePreview int
		status        string
		outcomes      string
		createdAt     string
		completedAt   sql.NullString
	)
	err := row.Scan(&job.ID, &job.UserID, &job.Topic, &job.Style, &job.Speaker,
		&enablePreview, &status, &job.ResultPath, &job.ErrorDetail,
		&outcomes, &createdAt, &completedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	job.EnablePreview = enablePreview != 0
	job.Status = domain.JobStatus(status)
	if job.CreatedAt, err = time.Parse(timeLayout, createdAt); err != nil {
		return nil, fmt.Errorf("corrupt created_at for job %s: %w", job.ID, err)
	}
	if completedAt.Valid {
		parsed, err := time.Parse(timeLayout, completedAt.String)
		if err != nil {
			return nil, fmt.Errorf("corrupt completed_at for job %s: %w", job.ID, err)
		}
		job.CompletedAt = &parsed
	}
	if outcomes != "" {
		if err := json.Unmarshal([]byte(outcomes), &job.SceneOutcomes); err != nil {
			return nil, fmt.Errorf("corrupt scene_outcomes for job %s: %w", job.ID, err)
		}
	}
	return &job, nil
}

func encodeOutcomes(outcomes []domain.SceneOutcome) (string, error) {
	if len(outcomes) == 0 {
		return "", nil
	}
	encoded, err := json.Marshal(outcomes)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func (s *sqliteJobStore) retryOnBusy(fn func() error) error {
	var err error
	for attempt := 0; attempt < busyRetries; attempt++ {
		err = fn()
		if err == nil || !isBusy(err) {
			return err
		}
		time.Sleep(busyRetryDelay << attempt)
	}
	return err
}

func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
