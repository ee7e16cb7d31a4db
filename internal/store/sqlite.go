// Package store provides storage backends for SurveyBot.
//
// This file implements the SQLite-backed store.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	_ "embed"

	"github.com/akobirdev/surveybot/internal/models"
	_ "github.com/mattn/go-sqlite3"
)

// DefaultDirPermissions defines the default permissions for database
// directories.
const DefaultDirPermissions = 0755

//go:embed migrations_sqlite.sql
var sqliteMigrations string

type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite store with the given DSN.
// The DSN is a file path to the SQLite database file; the parent directory
// is created if it does not exist.
func NewSQLiteStore(opts ...Option) (*SQLiteStore, error) {
	var cfg Opts
	for _, opt := range opts {
		opt(&cfg)
	}
	slog.Debug("NewSQLiteStore invoked", "DSN_set", cfg.DSN != "")

	dsn := cfg.DSN
	if dsn == "" {
		slog.Error("SQLiteStore DSN not set")
		return nil, fmt.Errorf("database DSN not set")
	}

	dir := filepath.Dir(dsn)
	if err := os.MkdirAll(dir, DefaultDirPermissions); err != nil {
		slog.Error("Failed to create database directory", "error", err, "dir", dir)
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		slog.Error("Failed to open SQLite connection", "error", err)
		return nil, err
	}

	if err := db.Ping(); err != nil {
		slog.Error("SQLite ping failed", "error", err)
		return nil, err
	}

	if _, err := db.Exec(sqliteMigrations); err != nil {
		slog.Error("Failed to run migrations", "error", err)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	slog.Debug("SQLite migrations applied successfully")

	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) GetRespondent(id int64) (*models.Respondent, error) {
	row := s.db.QueryRow(`SELECT id, phone_number, username, first_name, last_name, language, registered_at FROM respondents WHERE id = ?`, id)
	r, err := scanRespondentRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		slog.Error("SQLiteStore GetRespondent failed", "error", err, "id", id)
		return nil, fmt.Errorf("failed to query respondent %d: %w", id, err)
	}
	return r, nil
}

func (s *SQLiteStore) SaveRespondent(r models.Respondent) error {
	_, err := s.db.Exec(`INSERT INTO respondents (id, phone_number, username, first_name, last_name, language, registered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			phone_number = excluded.phone_number,
			username = excluded.username,
			first_name = excluded.first_name,
			last_name = excluded.last_name,
			language = excluded.language,
			registered_at = excluded.registered_at`,
		r.ID, nilIfEmpty(r.PhoneNumber), nilIfEmpty(r.Username), nilIfEmpty(r.FirstName), nilIfEmpty(r.LastName), string(r.Language), nullableTime(r.RegisteredAt))
	if err != nil {
		slog.Error("SQLiteStore SaveRespondent failed", "error", err, "id", r.ID)
		return fmt.Errorf("failed to save respondent %d: %w", r.ID, err)
	}
	slog.Debug("SQLiteStore SaveRespondent succeeded", "id", r.ID, "language", r.Language)
	return nil
}

func (s *SQLiteStore) AddAnswer(a models.Answer) error {
	_, err := s.db.Exec(`INSERT INTO answers (respondent_id, survey, attempt_id, position, question_text, answer_text, answered_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		a.RespondentID, string(a.Survey), a.AttemptID, a.Position, a.QuestionText, a.AnswerText, a.AnsweredAt)
	if err != nil {
		slog.Error("SQLiteStore AddAnswer failed", "error", err, "respondent", a.RespondentID, "survey", a.Survey)
		return fmt.Errorf("failed to insert answer for respondent %d: %w", a.RespondentID, err)
	}
	slog.Debug("SQLiteStore AddAnswer succeeded", "respondent", a.RespondentID, "survey", a.Survey, "position", a.Position)
	return nil
}

func (s *SQLiteStore) GetAnswersBySurvey(survey models.SurveyID) ([]models.Answer, error) {
	rows, err := s.db.Query(`SELECT id, respondent_id, survey, attempt_id, position, question_text, answer_text, answered_at
		FROM answers WHERE survey = ? ORDER BY id`, string(survey))
	if err != nil {
		slog.Error("SQLiteStore GetAnswersBySurvey query failed", "error", err, "survey", survey)
		return nil, fmt.Errorf("failed to query answers for %s: %w", survey, err)
	}
	defer rows.Close()
	return collectAnswers(rows)
}

func (s *SQLiteStore) IsAdmin(id int64) (bool, error) {
	var one int
	err := s.db.QueryRow(`SELECT 1 FROM admins WHERE id = ?`, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		slog.Error("SQLiteStore IsAdmin failed", "error", err, "id", id)
		return false, fmt.Errorf("failed to query admin %d: %w", id, err)
	}
	return true, nil
}

func (s *SQLiteStore) AddAdmin(a models.Admin) error {
	_, err := s.db.Exec(`INSERT INTO admins (id, username, first_name, last_name, added_at, added_by)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING`,
		a.ID, nilIfEmpty(a.Username), nilIfEmpty(a.FirstName), nilIfEmpty(a.LastName), a.AddedAt, a.AddedBy)
	if err != nil {
		slog.Error("SQLiteStore AddAdmin failed", "error", err, "id", a.ID)
		return fmt.Errorf("failed to insert admin %d: %w", a.ID, err)
	}
	slog.Debug("SQLiteStore AddAdmin succeeded", "id", a.ID, "added_by", a.AddedBy)
	return nil
}

func (s *SQLiteStore) RemoveAdmin(id int64) (bool, error) {
	res, err := s.db.Exec(`DELETE FROM admins WHERE id = ?`, id)
	if err != nil {
		slog.Error("SQLiteStore RemoveAdmin failed", "error", err, "id", id)
		return false, fmt.Errorf("failed to delete admin %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n > 0, nil
}

func (s *SQLiteStore) ListAdmins() ([]models.Admin, error) {
	rows, err := s.db.Query(`SELECT id, username, first_name, last_name, added_at, added_by FROM admins ORDER BY added_at`)
	if err != nil {
		slog.Error("SQLiteStore ListAdmins query failed", "error", err)
		return nil, fmt.Errorf("failed to query admins: %w", err)
	}
	defer rows.Close()
	return collectAdmins(rows)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
