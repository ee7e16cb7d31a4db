// Package models defines inbound event normalization and the callback-data
// wire format shared between the messaging gateway and the controller.
package models

import (
	"fmt"
	"strconv"
	"strings"
)

// EventKind tags a normalized inbound event.
type EventKind string

const (
	// EventCommand is a slash command such as /start.
	EventCommand EventKind = "command"
	// EventText is a free-text message that did not resolve to an action.
	EventText EventKind = "text"
	// EventAction is a reply-keyboard button press resolved to the action
	// code attached when the keyboard was built.
	EventAction EventKind = "action"
	// EventCallback is an inline-keyboard button press carrying callback
	// data.
	EventCallback EventKind = "callback"
	// EventContact is a shared-contact payload (phone registration).
	EventContact EventKind = "contact"
)

// ActionCode is a language-independent identifier for a reply-keyboard
// button. Buttons carry their code at construction time so intent is never
// re-derived from the displayed label.
type ActionCode string

const (
	ActionBack             ActionCode = "back"
	ActionCancelSurvey     ActionCode = "cancel_survey"
	ActionSharePhone       ActionCode = "share_phone"
	ActionSelectCorruption ActionCode = "select_corruption"
	ActionSelectTeacher    ActionCode = "select_teacher"
	ActionAdminParticipate ActionCode = "admin_participate"
	ActionAdminStats       ActionCode = "admin_stats"
	ActionAdminManage      ActionCode = "admin_manage"
	ActionAdminAdd         ActionCode = "admin_add"
	ActionAdminRemove      ActionCode = "admin_remove"
	ActionAdminList        ActionCode = "admin_list"
	ActionAdminExport      ActionCode = "admin_export"
)

// Contact carries a shared-contact payload.
type Contact struct {
	PhoneNumber string `json:"phone_number"`
	FirstName   string `json:"first_name,omitempty"`
	LastName    string `json:"last_name,omitempty"`
}

// Sender carries the display identity of the account that produced an
// event, snapshotted for respondent and admin records.
type Sender struct {
	Username  string `json:"username,omitempty"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

// InboundEvent is the gateway-normalized form of one incoming update.
type InboundEvent struct {
	ChatID     int64      `json:"chat_id"`
	Kind       EventKind  `json:"kind"`
	Text       string     `json:"text,omitempty"`
	Action     ActionCode `json:"action,omitempty"`
	Callback   string     `json:"callback,omitempty"`
	CallbackID string     `json:"callback_id,omitempty"`
	MessageID  int        `json:"message_id,omitempty"`
	Contact    *Contact   `json:"contact,omitempty"`
	From       Sender     `json:"from"`
	Time       int64      `json:"time"`
}

// CallbackPurpose tags the leading token of an inline callback payload.
type CallbackPurpose string

const (
	CallbackLanguage CallbackPurpose = "lang"
	CallbackSurvey   CallbackPurpose = "survey"
	CallbackAnswer   CallbackPurpose = "ans"
	CallbackToggle   CallbackPurpose = "multi"
	CallbackSave     CallbackPurpose = "save"
	CallbackExport   CallbackPurpose = "export"
)

// Callback is a parsed inline callback payload. Which fields are
// meaningful depends on Purpose: Language for lang, Survey for survey,
// QuestionIndex for save, QuestionIndex+OptionIndex for ans and multi.
type Callback struct {
	Purpose       CallbackPurpose
	Language      Language
	Survey        SurveyID
	QuestionIndex int
	OptionIndex   int
}

// LanguageCallback encodes a language selection payload.
func LanguageCallback(l Language) string {
	return fmt.Sprintf("%s_%s", CallbackLanguage, l)
}

// SurveyCallback encodes a questionnaire selection payload.
func SurveyCallback(s SurveyID) string {
	return fmt.Sprintf("%s_%s", CallbackSurvey, s)
}

// AnswerCallback encodes a single-select answer payload.
func AnswerCallback(questionIndex, optionIndex int) string {
	return fmt.Sprintf("%s_%d_%d", CallbackAnswer, questionIndex, optionIndex)
}

// ToggleCallback encodes a multi-select toggle payload.
func ToggleCallback(questionIndex, optionIndex int) string {
	return fmt.Sprintf("%s_%d_%d", CallbackToggle, questionIndex, optionIndex)
}

// SaveCallback encodes a multi-select commit payload.
func SaveCallback(questionIndex int) string {
	return fmt.Sprintf("%s_%d", CallbackSave, questionIndex)
}

// ExportCallback encodes an answer export request payload.
func ExportCallback(s SurveyID) string {
	return fmt.Sprintf("%s_%s", CallbackExport, s)
}

// ParseCallback decodes an inline callback payload. Unparsable payloads
// return ErrMalformedCallback so callers can ignore them without any
// state mutation.
func ParseCallback(data string) (Callback, error) {
	purpose, rest, ok := strings.Cut(data, "_")
	if !ok || rest == "" {
		return Callback{}, fmt.Errorf("%w: %q", ErrMalformedCallback, data)
	}

	switch CallbackPurpose(purpose) {
	case CallbackLanguage:
		lang := Language(rest)
		if !IsValidLanguage(lang) {
			return Callback{}, fmt.Errorf("%w: language %q", ErrMalformedCallback, rest)
		}
		return Callback{Purpose: CallbackLanguage, Language: lang}, nil

	case CallbackSurvey, CallbackExport:
		survey := SurveyID(rest)
		if !IsValidSurvey(survey) {
			return Callback{}, fmt.Errorf("%w: %q", ErrUnknownSurvey, rest)
		}
		return Callback{Purpose: CallbackPurpose(purpose), Survey: survey}, nil

	case CallbackSave:
		q, err := strconv.Atoi(rest)
		if err != nil || q < 0 {
			return Callback{}, fmt.Errorf("%w: save index %q", ErrMalformedCallback, rest)
		}
		return Callback{Purpose: CallbackSave, QuestionIndex: q}, nil

	case CallbackAnswer, CallbackToggle:
		qs, os, ok := strings.Cut(rest, "_")
		if !ok {
			return Callback{}, fmt.Errorf("%w: %q", ErrMalformedCallback, data)
		}
		q, err := strconv.Atoi(qs)
		if err != nil || q < 0 {
			return Callback{}, fmt.Errorf("%w: question index %q", ErrMalformedCallback, qs)
		}
		o, err := strconv.Atoi(os)
		if err != nil || o < 0 {
			return Callback{}, fmt.Errorf("%w: option index %q", ErrMalformedCallback, os)
		}
		return Callback{Purpose: CallbackPurpose(purpose), QuestionIndex: q, OptionIndex: o}, nil

	default:
		return Callback{}, fmt.Errorf("%w: %q", ErrUnknownPurpose, purpose)
	}
}
