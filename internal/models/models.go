// Package models defines the core data structures for SurveyBot.
//
// It includes respondent, answer, and admin records shared across modules,
// plus the normalized inbound event and keyboard types the messaging
// gateway exchanges with the conversation controller.
package models

import (
	"errors"
	"time"
)

// Language identifies a supported interface language.
type Language string

const (
	// LanguageUzbek is the default language and the fallback for any
	// unsupported code.
	LanguageUzbek Language = "uz"
	// LanguageRussian is the Russian language variant.
	LanguageRussian Language = "ru"
	// LanguageKarakalpak is the Karakalpak language variant.
	LanguageKarakalpak Language = "kk"
)

// IsValidLanguage checks if the given language code is supported.
func IsValidLanguage(l Language) bool {
	switch l {
	case LanguageUzbek, LanguageRussian, LanguageKarakalpak:
		return true
	default:
		return false
	}
}

// NormalizeLanguage resolves any language code to a supported one,
// falling back to Uzbek. Absence of a match is not an error path.
func NormalizeLanguage(l Language) Language {
	if IsValidLanguage(l) {
		return l
	}
	return LanguageUzbek
}

// SurveyID identifies a questionnaire.
type SurveyID string

const (
	// SurveyCorruption is the anti-corruption questionnaire (Uzbek only).
	SurveyCorruption SurveyID = "corruption"
	// SurveyTeacherEvaluation is the scored teacher-evaluation
	// questionnaire, available in three language variants.
	SurveyTeacherEvaluation SurveyID = "teacher_evaluation"
)

// IsValidSurvey checks if the given survey identifier is known.
func IsValidSurvey(s SurveyID) bool {
	switch s {
	case SurveyCorruption, SurveyTeacherEvaluation:
		return true
	default:
		return false
	}
}

// MultiSelectSeparator joins the selected option labels of a multi-select
// answer into a single stored value.
const MultiSelectSeparator = "; "

// Respondent is an end user identified by their stable chat identifier.
// A respondent exists before any answer can be attributed to them.
type Respondent struct {
	ID           int64     `json:"id"`
	PhoneNumber  string    `json:"phone_number,omitempty"`
	Username     string    `json:"username,omitempty"`
	FirstName    string    `json:"first_name,omitempty"`
	LastName     string    `json:"last_name,omitempty"`
	Language     Language  `json:"language"`
	RegisteredAt time.Time `json:"registered_at"`
}

// Registered reports whether the respondent completed phone registration.
func (r *Respondent) Registered() bool {
	return r.PhoneNumber != ""
}

// Answer is one persisted response to one question by one respondent on
// one attempt. Created exactly once per answered question; immutable.
type Answer struct {
	ID           int64     `json:"id,omitempty"`
	RespondentID int64     `json:"respondent_id"`
	Survey       SurveyID  `json:"survey"`
	AttemptID    string    `json:"attempt_id"`
	Position     int       `json:"position"` // 1-based question position
	QuestionText string    `json:"question_text"`
	AnswerText   string    `json:"answer_text"`
	AnsweredAt   time.Time `json:"answered_at"`
}

// Admin is a privileged account authorized to view statistics and manage
// other privileged accounts.
type Admin struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username,omitempty"`
	FirstName string    `json:"first_name,omitempty"`
	LastName  string    `json:"last_name,omitempty"`
	AddedAt   time.Time `json:"added_at"`
	AddedBy   int64     `json:"added_by"`
}

// Error variables for better error handling and testability.
var (
	ErrMalformedCallback = errors.New("malformed callback payload")
	ErrUnknownPurpose    = errors.New("unknown callback purpose")
	ErrUnknownSurvey     = errors.New("unknown survey identifier")
	ErrInvalidAdminID    = errors.New("admin id must be an integer of 9 to 10 digits")
)
