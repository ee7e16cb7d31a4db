// Package session manages per-chat conversation state.
//
// A session record exists only while a chat is inside a questionnaire or an
// admin input step; idle chats have no record. Records live in process
// memory by default and optionally in Redis, behind the Registry interface.
package session

import (
	"context"
	"sort"
	"sync"

	"github.com/akobirdev/surveybot/internal/catalog"
	"github.com/akobirdev/surveybot/internal/models"
)

// Mode identifies what kind of input a chat is currently expected to send.
type Mode string

const (
	// ModeAwaitingAnswer expects a single-select inline button press.
	ModeAwaitingAnswer Mode = "awaiting_answer"
	// ModeAwaitingText expects a free-text message.
	ModeAwaitingText Mode = "awaiting_text_input"
	// ModeAwaitingMultiSelect expects toggle presses followed by a save.
	ModeAwaitingMultiSelect Mode = "awaiting_multi_select"
	// ModeAwaitingAdminAddID expects the id of an admin to add.
	ModeAwaitingAdminAddID Mode = "awaiting_admin_add_id"
	// ModeAwaitingAdminRemoveID expects the id of an admin to remove.
	ModeAwaitingAdminRemoveID Mode = "awaiting_admin_remove_id"
	// ModeAdminStatsPick expects a survey selection for the statistics
	// view rather than for participation.
	ModeAdminStatsPick Mode = "admin_stats_survey_selection"
	// ModeAdminStatsView marks a chat looking at a statistics summary, so
	// back returns it to the statistics survey picker.
	ModeAdminStatsView Mode = "admin_stats_viewing"
)

// Record is the state of one chat mid-conversation. Questions is a
// snapshot taken when the questionnaire starts so later catalog edits
// cannot shift a running attempt.
type Record struct {
	Mode      Mode               `json:"mode"`
	Survey    models.SurveyID    `json:"survey,omitempty"`
	AttemptID string             `json:"attempt_id,omitempty"`
	Index     int                `json:"index"`
	Questions []catalog.Question `json:"questions,omitempty"`
	Selected  []int              `json:"selected,omitempty"`
	// PromptMessageID is the message carrying the current question; it is
	// deleted before the next question is sent.
	PromptMessageID int `json:"prompt_message_id,omitempty"`
}

// Question returns the current question, or nil when Index is out of range.
func (r *Record) Question() *catalog.Question {
	if r.Index < 0 || r.Index >= len(r.Questions) {
		return nil
	}
	return &r.Questions[r.Index]
}

// IsSelected reports whether a multi-select option is currently toggled on.
func (r *Record) IsSelected(option int) bool {
	for _, s := range r.Selected {
		if s == option {
			return true
		}
	}
	return false
}

// Toggle flips a multi-select option and reports the resulting state.
func (r *Record) Toggle(option int) bool {
	for i, s := range r.Selected {
		if s == option {
			r.Selected = append(r.Selected[:i], r.Selected[i+1:]...)
			return false
		}
	}
	r.Selected = append(r.Selected, option)
	return true
}

// SelectedLabels resolves the toggled options of the current question to
// their labels in ascending option order.
func (r *Record) SelectedLabels() []string {
	q := r.Question()
	if q == nil {
		return nil
	}
	idx := append([]int(nil), r.Selected...)
	sort.Ints(idx)
	var labels []string
	for _, i := range idx {
		if i >= 0 && i < len(q.Options) {
			labels = append(labels, q.Options[i])
		}
	}
	return labels
}

// Registry stores in-flight session records keyed by chat id.
type Registry interface {
	// Get returns the record for a chat, or nil when the chat is idle.
	Get(ctx context.Context, chatID int64) (*Record, error)
	// Save stores or replaces the record for a chat.
	Save(ctx context.Context, chatID int64, rec *Record) error
	// Remove clears the record for a chat. Removing an idle chat is a
	// no-op.
	Remove(ctx context.Context, chatID int64) error
}

// MemoryRegistry is the default process-local Registry.
type MemoryRegistry struct {
	mu      sync.RWMutex
	records map[int64]*Record
}

func NewMemoryRegistry() *MemoryRegistry {
	return &MemoryRegistry{records: make(map[int64]*Record)}
}

func (m *MemoryRegistry) Get(ctx context.Context, chatID int64) (*Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	rec, ok := m.records[chatID]
	if !ok {
		return nil, nil
	}
	cp := *rec
	cp.Selected = append([]int(nil), rec.Selected...)
	return &cp, nil
}

func (m *MemoryRegistry) Save(ctx context.Context, chatID int64, rec *Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := *rec
	cp.Selected = append([]int(nil), rec.Selected...)
	m.records[chatID] = &cp
	return nil
}

func (m *MemoryRegistry) Remove(ctx context.Context, chatID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.records, chatID)
	return nil
}
