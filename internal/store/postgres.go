// Package store provides storage backends for SurveyBot.
//
// This file implements the PostgreSQL-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "embed"

	"github.com/akobirdev/surveybot/internal/models"
	_ "github.com/lib/pq"
)

// Database connection pool configuration constants
const (
	// DefaultMaxOpenConns is the default maximum number of open connections to the database
	DefaultMaxOpenConns = 25
	// DefaultMaxIdleConns is the default maximum number of idle connections in the pool
	DefaultMaxIdleConns = 25
	// DefaultConnMaxLifetime is the default maximum amount of time a connection may be reused
	DefaultConnMaxLifetime = 5 * time.Minute
)

//go:embed migrations_postgres.sql
var postgresMigrations string

type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore creates a new Postgres store based on provided options.
func NewPostgresStore(opts ...Option) (*PostgresStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewPostgresStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("PostgresStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		slog.Error("Failed to open Postgres connection", "error", err)
		return nil, err
	}

	db.SetMaxOpenConns(DefaultMaxOpenConns)
	db.SetMaxIdleConns(DefaultMaxIdleConns)
	db.SetConnMaxLifetime(DefaultConnMaxLifetime)

	if err := db.Ping(); err != nil {
		slog.Error("Postgres ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(postgresMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("Postgres migrations applied successfully")

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetRespondent(id int64) (*models.Respondent, error) {
	row := s.db.QueryRow(`SELECT id, phone_number, username, first_name, last_name, language, registered_at FROM respondents WHERE id = $1`, id)
	r, err := scanRespondentRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.Error("PostgresStore GetRespondent failed", "error", err, "id", id)
		return nil, fmt.Errorf("failed to query respondent %d: %w", id, err)
	}
	return r, nil
}

func (s *PostgresStore) SaveRespondent(r models.Respondent) error {
	_, err := s.db.Exec(`INSERT INTO respondents (id, phone_number, username, first_name, last_name, language, registered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			phone_number = EXCLUDED.phone_number,
			username = EXCLUDED.username,
			first_name = EXCLUDED.first_name,
			last_name = EXCLUDED.last_name,
			language = EXCLUDED.language,
			registered_at = EXCLUDED.registered_at`,
		r.ID, nilIfEmpty(r.PhoneNumber), nilIfEmpty(r.Username), nilIfEmpty(r.FirstName), nilIfEmpty(r.LastName), string(r.Language), nullableTime(r.RegisteredAt))
	if err != nil {
		slog.Error("PostgresStore SaveRespondent failed", "error", err, "id", r.ID)
		return fmt.Errorf("failed to save respondent %d: %w", r.ID, err)
	}
	slog.Debug("PostgresStore SaveRespondent succeeded", "id", r.ID, "language", r.Language)
	return nil
}

func (s *PostgresStore) AddAnswer(a models.Answer) error {
	_, err := s.db.Exec(`INSERT INTO answers (respondent_id, survey, attempt_id, position, question_text, answer_text, answered_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		a.RespondentID, string(a.Survey), a.AttemptID, a.Position, a.QuestionText, a.AnswerText, a.AnsweredAt)
	if err != nil {
		slog.Error("PostgresStore AddAnswer failed", "error", err, "respondent", a.RespondentID, "survey", a.Survey)
		return fmt.Errorf("failed to insert answer for respondent %d: %w", a.RespondentID, err)
	}
	slog.Debug("PostgresStore AddAnswer succeeded", "respondent", a.RespondentID, "survey", a.Survey, "position", a.Position)
	return nil
}

func (s *PostgresStore) GetAnswersBySurvey(survey models.SurveyID) ([]models.Answer, error) {
	rows, err := s.db.Query(`SELECT id, respondent_id, survey, attempt_id, position, question_text, answer_text, answered_at
		FROM answers WHERE survey = $1 ORDER BY id`, string(survey))
	if err != nil {
		slog.Error("PostgresStore GetAnswersBySurvey query failed", "error", err, "survey", survey)
		return nil, fmt.Errorf("failed to query answers for %s: %w", survey, err)
	}
	defer rows.Close()
	return collectAnswers(rows)
}

func (s *PostgresStore) IsAdmin(id int64) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM admins WHERE id = $1`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		slog.Error("PostgresStore IsAdmin failed", "error", err, "id", id)
		return false, fmt.Errorf("failed to query admin %d: %w", id, err)
	}
	return true, nil
}

func (s *PostgresStore) AddAdmin(a models.Admin) error {
	_, err := s.db.Exec(`INSERT INTO admins (id, username, first_name, last_name, added_at, added_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO NOTHING`,
		a.ID, nilIfEmpty(a.Username), nilIfEmpty(a.FirstName), nilIfEmpty(a.LastName), a.AddedAt, a.AddedBy)
	if err != nil {
		slog.Error("PostgresStore AddAdmin failed", "error", err, "id", a.ID)
		return fmt.Errorf("failed to insert admin %d: %w", a.ID, err)
	}
	slog.Debug("PostgresStore AddAdmin succeeded", "id", a.ID, "added_by", a.AddedBy)
	return nil
}

func (s *PostgresStore) RemoveAdmin(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM admins WHERE id = $1`, id)
	if err != nil {
		slog.Error("PostgresStore RemoveAdmin failed", "error", err, "id", id)
		return false, fmt.Errorf("failed to delete admin %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (s *PostgresStore) ListAdmins() ([]models.Admin, error) {
	rows, err := s.db.Query(`SELECT id, username, first_name, last_name, added_at, added_by FROM admins ORDER BY added_at`)
	if err != nil {
		slog.Error("PostgresStore ListAdmins query failed", "error", err)
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()
	return collectAdmins(rows)
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
