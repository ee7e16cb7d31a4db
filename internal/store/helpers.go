package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/akobirdev/surveybot/internal/models"
)

// nilIfEmpty returns nil if s is empty, otherwise returns s.
// Used for nullable database columns.
func nilIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// nullableTime returns nil for the zero time so unregistered respondents
// store NULL instead of the epoch.
func nullableTime(t time.Time) interface{} {
	if t.IsZero() {
		return nil
	}
	return t
}

// scanRespondentRow scans a Respondent from a single sql.Row.
func scanRespondentRow(row *sql.Row) (*models.Respondent, error) {
	var r models.Respondent
	var phone, username, firstName, lastName sql.NullString
	var registeredAt sql.NullTime
	err := row.Scan(&r.ID, &phone, &username, &firstName, &lastName, &r.Language, &registeredAt)
	if err != nil {
		return nil, err
	}
	r.PhoneNumber = phone.String
	r.Username = username.String
	r.FirstName = firstName.String
	r.LastName = lastName.String
	if registeredAt.Valid {
		r.RegisteredAt = registeredAt.Time
	}
	return &r, nil
}

// collectAnswers drains answer rows.
func collectAnswers(rows *sql.Rows) ([]models.Answer, error) {
	var answers []models.Answer
	for rows.Next() {
		var a models.Answer
		if err := rows.Scan(&a.ID, &a.RespondentID, &a.Survey, &a.AttemptID, &a.Position, &a.QuestionText, &a.AnswerText, &a.AnsweredAt); err != nil {
			return nil, fmt.Errorf("failed to scan answer row: %w", err)
		}
		answers = append(answers, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate answer rows: %w", err)
	}
	return answers, nil
}

// collectAdmins drains admin rows.
func collectAdmins(rows *sql.Rows) ([]models.Admin, error) {
	var admins []models.Admin
	for rows.Next() {
		var a models.Admin
		var username, firstName, lastName sql.NullString
		if err := rows.Scan(&a.ID, &username, &firstName, &lastName, &a.AddedAt, &a.AddedBy); err != nil {
			return nil, fmt.Errorf("failed to scan admin row: %w", err)
		}
		a.Username = username.String
		a.FirstName = firstName.String
		a.LastName = lastName.String
		admins = append(admins, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate admin rows: %w", err)
	}
	return admins, nil
}
