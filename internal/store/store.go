// Package store provides storage backends for SurveyBot.
//
// It includes SQLite and PostgreSQL backends behind a common interface,
// plus an in-memory store for tests.
package store

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/akobirdev/surveybot/internal/models"
)

// Store is the persistence interface the bot depends on. Respondent saves
// are upserts; answers are append-only.
type Store interface {
	GetRespondent(id int64) (*models.Respondent, error)
	SaveRespondent(r models.Respondent) error

	AddAnswer(a models.Answer) error
	GetAnswersBySurvey(survey models.SurveyID) ([]models.Answer, error)

	IsAdmin(id int64) (bool, error)
	AddAdmin(a models.Admin) error
	RemoveAdmin(id int64) (bool, error)
	ListAdmins() ([]models.Admin, error)

	Close() error
}

// Opts holds configuration options for store implementations.
type Opts struct {
	// DSN is the database connection string: a file path for SQLite, a
	// postgres:// URL or key=value string for PostgreSQL.
	DSN string
}

// Option defines a functional option for store configuration.
type Option func(*Opts)

// WithDSN sets the database connection string.
func WithDSN(dsn string) Option {
	return func(o *Opts) {
		o.DSN = dsn
	}
}

// DetectDSNType reports the driver a DSN selects: "postgres" for
// postgres:// URLs and key=value connection strings, "sqlite3" otherwise.
func DetectDSNType(dsn string) string {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") {
		return "postgres"
	}
	if strings.Contains(dsn, "host=") || strings.Contains(dsn, "dbname=") {
		return "postgres"
	}
	return "sqlite3"
}

// InMemoryStore is a map-backed Store used by tests and as a fallback when
// no DSN is configured.
type InMemoryStore struct {
	mu          sync.RWMutex
	respondents map[int64]models.Respondent
	answers     []models.Answer
	admins      map[int64]models.Admin
	nextAnswer  int64
}

func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		respondents: make(map[int64]models.Respondent),
		admins:      make(map[int64]models.Admin),
	}
}

func (s *InMemoryStore) GetRespondent(id int64) (*models.Respondent, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	r, ok := s.respondents[id]
	if !ok {
		return nil, nil
	}
	cp := r
	return &cp, nil
}

func (s *InMemoryStore) SaveRespondent(r models.Respondent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.respondents[r.ID] = r
	return nil
}

func (s *InMemoryStore) AddAnswer(a models.Answer) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextAnswer++
	a.ID = s.nextAnswer
	if a.AnsweredAt.IsZero() {
		a.AnsweredAt = time.Now()
	}
	s.answers = append(s.answers, a)
	return nil
}

func (s *InMemoryStore) GetAnswersBySurvey(survey models.SurveyID) ([]models.Answer, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []models.Answer
	for _, a := range s.answers {
		if a.Survey == survey {
			out = append(out, a)
		}
	}
	return out, nil
}

func (s *InMemoryStore) IsAdmin(id int64) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.admins[id]
	return ok, nil
}

func (s *InMemoryStore) AddAdmin(a models.Admin) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[a.ID]; ok {
		return nil
	}
	if a.AddedAt.IsZero() {
		a.AddedAt = time.Now()
	}
	s.admins[a.ID] = a
	return nil
}

func (s *InMemoryStore) RemoveAdmin(id int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.admins[id]; !ok {
		return false, nil
	}
	delete(s.admins, id)
	return true, nil
}

func (s *InMemoryStore) ListAdmins() ([]models.Admin, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Admin, 0, len(s.admins))
	for _, a := range s.admins {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].AddedAt.Before(out[j].AddedAt) })
	return out, nil
}

func (s *InMemoryStore) Close() error {
	return nil
}
