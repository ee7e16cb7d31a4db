package bot

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/akobirdev/surveybot/internal/admin"
	"github.com/akobirdev/surveybot/internal/catalog"
	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/session"
	"github.com/akobirdev/surveybot/internal/store"
)

type sentMessage struct {
	chatID int64
	msg    models.OutboundMessage
	id     int
}

type fakeGateway struct {
	mu      sync.Mutex
	sent    []sentMessage
	edited  []int
	deleted []int
	docs    []string
	nextID  int
}

func (f *fakeGateway) Start(ctx context.Context) error    { return nil }
func (f *fakeGateway) Stop() error                        { return nil }
func (f *fakeGateway) Events() <-chan models.InboundEvent { return nil }

func (f *fakeGateway) AckCallback(ctx context.Context, id string) error { return nil }

func (f *fakeGateway) SendMessage(ctx context.Context, chatID int64, msg models.OutboundMessage) (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	f.sent = append(f.sent, sentMessage{chatID: chatID, msg: msg, id: f.nextID})
	return f.nextID, nil
}

func (f *fakeGateway) EditInlineKeyboard(ctx context.Context, chatID int64, messageID int, kb *models.InlineKeyboard) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.edited = append(f.edited, messageID)
	return nil
}

func (f *fakeGateway) DeleteMessage(ctx context.Context, chatID int64, messageID int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deleted = append(f.deleted, messageID)
	return nil
}

func (f *fakeGateway) SendDocument(ctx context.Context, chatID int64, filename string, data []byte, caption string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.docs = append(f.docs, filename)
	return nil
}

func (f *fakeGateway) last(t *testing.T) sentMessage {
	t.Helper()
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.sent) == 0 {
		t.Fatal("no messages sent")
	}
	return f.sent[len(f.sent)-1]
}

func (f *fakeGateway) reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.sent = nil
	f.edited = nil
	f.deleted = nil
	f.docs = nil
}

// failingStore makes the next answer write fail.
type failingStore struct {
	*store.InMemoryStore
	failNext bool
}

func (s *failingStore) AddAnswer(a models.Answer) error {
	if s.failNext {
		s.failNext = false
		return errors.New("disk full")
	}
	return s.InMemoryStore.AddAnswer(a)
}

type fixture struct {
	gw       *fakeGateway
	st       *failingStore
	registry session.Registry
	ctrl     *Controller
	ctx      context.Context
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gw := &fakeGateway{}
	st := &failingStore{InMemoryStore: store.NewInMemoryStore()}
	reg := session.NewMemoryRegistry()
	ctrl := NewController(gw, st, reg, admin.NewDirectory(st))
	return &fixture{gw: gw, st: st, registry: reg, ctrl: ctrl, ctx: context.Background()}
}

const chat = int64(42)

func (fx *fixture) command(text string) {
	fx.ctrl.HandleEvent(fx.ctx, models.InboundEvent{
		ChatID: chat, Kind: models.EventCommand, Text: text,
		From: models.Sender{Username: "aziz", FirstName: "Aziz"},
	})
}

func (fx *fixture) callback(data string, messageID int) {
	fx.ctrl.HandleEvent(fx.ctx, models.InboundEvent{
		ChatID: chat, Kind: models.EventCallback, Callback: data, CallbackID: "cb", MessageID: messageID,
	})
}

func (fx *fixture) text(text string) {
	fx.ctrl.HandleEvent(fx.ctx, models.InboundEvent{ChatID: chat, Kind: models.EventText, Text: text})
}

func (fx *fixture) action(a models.ActionCode) {
	fx.ctrl.HandleEvent(fx.ctx, models.InboundEvent{ChatID: chat, Kind: models.EventAction, Action: a})
}

func (fx *fixture) contact(phone string) {
	fx.ctrl.HandleEvent(fx.ctx, models.InboundEvent{
		ChatID: chat, Kind: models.EventContact,
		Contact: &models.Contact{PhoneNumber: phone, FirstName: "Aziz"},
	})
}

// register walks a chat through /start, language selection, and phone
// sharing so later steps begin at the main menu.
func (fx *fixture) register(t *testing.T, lang models.Language) {
	t.Helper()
	fx.command("/start")
	fx.callback(models.LanguageCallback(lang), fx.gw.last(t).id)
	fx.contact("+998901234567")
	fx.gw.reset()
}

func TestStartShowsLanguageSelection(t *testing.T) {
	fx := newFixture(t)
	fx.command("/start")

	got := fx.gw.last(t)
	if got.msg.Inline == nil || len(got.msg.Inline.Rows) != 3 {
		t.Fatalf("expected 3 language buttons, got %+v", got.msg.Inline)
	}
	if got.msg.Inline.Rows[0][0].Data != "lang_uz" {
		t.Errorf("first button should select Uzbek, got %q", got.msg.Inline.Rows[0][0].Data)
	}
	if !strings.Contains(got.msg.Body, "Aziz") {
		t.Errorf("greeting should address the user, got %q", got.msg.Body)
	}

	r, err := fx.st.GetRespondent(chat)
	if err != nil || r == nil {
		t.Fatalf("respondent should exist after /start: %v", err)
	}
	if r.Username != "aziz" {
		t.Errorf("identity not captured: %+v", r)
	}
}

func TestLanguageSelectionUnregisteredAsksForPhone(t *testing.T) {
	fx := newFixture(t)
	fx.command("/start")
	prompt := fx.gw.last(t)

	fx.callback("lang_ru", prompt.id)

	got := fx.gw.last(t)
	if got.msg.Reply == nil {
		t.Fatal("phone request should carry a reply keyboard")
	}
	if !got.msg.Reply.Rows[0][0].RequestContact {
		t.Error("first button should request the contact")
	}
	if got.msg.Body != catalog.PhoneRequest(models.LanguageRussian) {
		t.Errorf("phone request not localized: %q", got.msg.Body)
	}
	if len(fx.gw.deleted) != 1 || fx.gw.deleted[0] != prompt.id {
		t.Errorf("language prompt should be deleted, deleted=%v", fx.gw.deleted)
	}

	r, _ := fx.st.GetRespondent(chat)
	if r.Language != models.LanguageRussian {
		t.Errorf("language not persisted: %+v", r)
	}
}

func TestContactRegistersAndShowsMenu(t *testing.T) {
	fx := newFixture(t)
	fx.command("/start")
	fx.callback("lang_uz", fx.gw.last(t).id)

	fx.contact("+998901234567")

	r, _ := fx.st.GetRespondent(chat)
	if r == nil || !r.Registered() || r.RegisteredAt.IsZero() {
		t.Fatalf("respondent should be registered: %+v", r)
	}

	menu := fx.gw.last(t)
	if menu.msg.Inline == nil || len(menu.msg.Inline.Rows) != 2 {
		t.Fatalf("Uzbek menu should offer both surveys, got %+v", menu.msg.Inline)
	}
}

func TestRussianMenuOffersOnlyTeacherEvaluation(t *testing.T) {
	fx := newFixture(t)
	fx.command("/start")
	fx.callback("lang_ru", fx.gw.last(t).id)

	fx.contact("+79161234567")

	menu := fx.gw.last(t)
	if menu.msg.Inline == nil || len(menu.msg.Inline.Rows) != 1 {
		t.Fatalf("Russian menu should offer one survey, got %+v", menu.msg.Inline)
	}
	if menu.msg.Inline.Rows[0][0].Data != "survey_teacher_evaluation" {
		t.Errorf("unexpected survey: %q", menu.msg.Inline.Rows[0][0].Data)
	}
}

func TestLanguageReselectWhenRegisteredReshowsLanguageSelection(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)

	fx.command("/start")
	fx.callback("lang_ru", fx.gw.last(t).id)

	got := fx.gw.last(t)
	if got.msg.Inline == nil || len(got.msg.Inline.Rows) != 3 || got.msg.Inline.Rows[0][0].Data != "lang_uz" {
		t.Fatalf("registered respondent should see the language prompt again, got %+v", got.msg.Inline)
	}
	r, _ := fx.st.GetRespondent(chat)
	if r.Language != models.LanguageRussian {
		t.Errorf("re-selected language not persisted: %+v", r)
	}
}

func TestSurveyStartSnapshotsQuestions(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)

	fx.callback("survey_teacher_evaluation", 0)

	rec, err := fx.registry.Get(fx.ctx, chat)
	if err != nil || rec == nil {
		t.Fatalf("session should exist: %v", err)
	}
	if rec.Survey != models.SurveyTeacherEvaluation || len(rec.Questions) != 6 || rec.Index != 0 {
		t.Errorf("session wrong: %+v", rec)
	}
	if rec.AttemptID == "" {
		t.Error("attempt id should be minted at start")
	}

	q := fx.gw.last(t)
	if q.msg.Inline == nil {
		t.Fatal("first question should carry option buttons")
	}
	if !strings.Contains(q.msg.Body, "1/6") {
		t.Errorf("question header missing: %q", q.msg.Body)
	}
	if q.msg.Inline.Rows[0][0].Data != "ans_0_0" {
		t.Errorf("unexpected callback data: %q", q.msg.Inline.Rows[0][0].Data)
	}
}

func TestSingleAnswerPersistsAndAdvances(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_teacher_evaluation", 0)
	first := fx.gw.last(t)

	fx.callback("ans_0_0", first.id)

	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyTeacherEvaluation)
	if len(answers) != 1 {
		t.Fatalf("expected 1 answer, got %d", len(answers))
	}
	a := answers[0]
	if a.Position != 1 || a.RespondentID != chat || a.AttemptID == "" {
		t.Errorf("answer wrong: %+v", a)
	}
	q := catalog.Questions(models.SurveyTeacherEvaluation, models.LanguageUzbek)[0]
	if a.QuestionText != q.Text || a.AnswerText != q.Options[0] {
		t.Errorf("answer text not snapshotted: %+v", a)
	}

	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec.Index != 1 {
		t.Errorf("session should advance, index=%d", rec.Index)
	}
	found := false
	for _, id := range fx.gw.deleted {
		if id == first.id {
			found = true
		}
	}
	if !found {
		t.Error("answered question message should be deleted")
	}
	next := fx.gw.last(t)
	if !strings.Contains(next.msg.Body, "2/6") {
		t.Errorf("next question not asked: %q", next.msg.Body)
	}
}

func TestStaleCallbackDoesNothing(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_teacher_evaluation", 0)
	fx.callback("ans_0_0", fx.gw.last(t).id)

	// A second tap on the already-answered question.
	fx.callback("ans_0_1", 0)

	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyTeacherEvaluation)
	if len(answers) != 1 {
		t.Fatalf("stale callback must not add an answer, got %d", len(answers))
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec.Index != 1 {
		t.Errorf("stale callback must not advance, index=%d", rec.Index)
	}
}

func TestFailedWriteDoesNotAdvance(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_teacher_evaluation", 0)
	first := fx.gw.last(t)

	fx.st.failNext = true
	fx.callback("ans_0_0", first.id)

	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyTeacherEvaluation)
	if len(answers) != 0 {
		t.Fatalf("failed write must not store an answer, got %d", len(answers))
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec.Index != 0 {
		t.Errorf("failed write must not advance, index=%d", rec.Index)
	}
	if fx.gw.last(t).msg.Body != catalog.WriteFailed(models.LanguageUzbek) {
		t.Errorf("respondent should see the failure notice, got %q", fx.gw.last(t).msg.Body)
	}

	// Retrying the same option succeeds and advances.
	fx.callback("ans_0_0", first.id)
	answers, _ = fx.st.GetAnswersBySurvey(models.SurveyTeacherEvaluation)
	if len(answers) != 1 {
		t.Fatalf("retry should store the answer, got %d", len(answers))
	}
	rec, _ = fx.registry.Get(fx.ctx, chat)
	if rec.Index != 1 {
		t.Errorf("retry should advance, index=%d", rec.Index)
	}
}

// walkCorruptionTo answers corruption questions until reaching the given
// zero-based index.
func (fx *fixture) walkCorruptionTo(t *testing.T, target int) {
	t.Helper()
	for {
		rec, err := fx.registry.Get(fx.ctx, chat)
		if err != nil || rec == nil {
			t.Fatalf("session lost at walk: %v", err)
		}
		if rec.Index >= target {
			return
		}
		q := rec.Question()
		switch {
		case q.RequireText:
			fx.text("erkin javob")
		case q.AllowMultiple:
			fx.callback(models.ToggleCallback(rec.Index, 0), fx.gw.last(t).id)
			fx.callback(models.SaveCallback(rec.Index), fx.gw.last(t).id)
		default:
			fx.callback(models.AnswerCallback(rec.Index, 0), fx.gw.last(t).id)
		}
	}
}

func TestFreeTextQuestion(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_corruption", 0)
	fx.walkCorruptionTo(t, 8) // question 9 collects free text

	fx.text("menda taklif bor")

	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyCorruption)
	last := answers[len(answers)-1]
	if last.Position != 9 || last.AnswerText != "menda taklif bor" {
		t.Errorf("free text answer wrong: %+v", last)
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec.Index != 9 || rec.Mode != session.ModeAwaitingMultiSelect {
		t.Errorf("should move to the first multi-select, got %+v", rec)
	}
}

func TestMultiSelectToggleAndSave(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_corruption", 0)
	fx.walkCorruptionTo(t, 9)
	prompt := fx.gw.last(t)

	// Saving with no selection is rejected.
	fx.callback(models.SaveCallback(9), prompt.id)
	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyCorruption)
	before := len(answers)

	// Toggle options out of order; the joined answer is ascending.
	fx.callback(models.ToggleCallback(9, 2), prompt.id)
	fx.callback(models.ToggleCallback(9, 0), prompt.id)
	if len(fx.gw.edited) != 2 {
		t.Errorf("each toggle should edit the keyboard, edits=%v", fx.gw.edited)
	}

	// Toggling off removes a selection.
	fx.callback(models.ToggleCallback(9, 2), prompt.id)
	fx.callback(models.ToggleCallback(9, 1), prompt.id)

	fx.callback(models.SaveCallback(9), prompt.id)
	answers, _ = fx.st.GetAnswersBySurvey(models.SurveyCorruption)
	if len(answers) != before+1 {
		t.Fatalf("save should store one answer, got %d new", len(answers)-before)
	}
	q := catalog.Questions(models.SurveyCorruption, models.LanguageUzbek)[9]
	want := q.Options[0] + models.MultiSelectSeparator + q.Options[1]
	got := answers[len(answers)-1].AnswerText
	if got != want {
		t.Errorf("joined answer = %q, want %q", got, want)
	}
}

func TestSurveyCompletion(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_corruption", 0)
	fx.walkCorruptionTo(t, 12)

	rec, _ := fx.registry.Get(fx.ctx, chat)
	fx.callback(models.ToggleCallback(12, 0), fx.gw.last(t).id)
	fx.callback(models.SaveCallback(12), fx.gw.last(t).id)

	if rec, _ = fx.registry.Get(fx.ctx, chat); rec != nil {
		t.Errorf("session should be cleared after completion: %+v", rec)
	}
	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyCorruption)
	if len(answers) != 13 {
		t.Errorf("expected 13 answers, got %d", len(answers))
	}
	// Every answer of the run shares one attempt id.
	for _, a := range answers {
		if a.AttemptID != answers[0].AttemptID {
			t.Errorf("attempt ids differ: %q vs %q", a.AttemptID, answers[0].AttemptID)
		}
	}

	var sawThanks bool
	fx.gw.mu.Lock()
	for _, m := range fx.gw.sent {
		if strings.Contains(m.msg.Body, catalog.ThankYou(models.LanguageUzbek)) && m.msg.RemoveReply {
			sawThanks = true
		}
	}
	fx.gw.mu.Unlock()
	if !sawThanks {
		t.Error("completion should thank the respondent and clear the reply keyboard")
	}
}

func TestCancelSurvey(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_teacher_evaluation", 0)

	fx.action(models.ActionCancelSurvey)

	if rec, _ := fx.registry.Get(fx.ctx, chat); rec != nil {
		t.Errorf("session should be cleared on cancel: %+v", rec)
	}
	answers, _ := fx.st.GetAnswersBySurvey(models.SurveyTeacherEvaluation)
	if len(answers) != 0 {
		t.Errorf("cancel must not store answers, got %d", len(answers))
	}
}

func TestBackMidSurveyFallsThroughToLanguageSelection(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.callback("survey_teacher_evaluation", 0)
	fx.gw.reset()

	fx.action(models.ActionBack)

	if rec, _ := fx.registry.Get(fx.ctx, chat); rec != nil {
		t.Errorf("session should be cleared on back: %+v", rec)
	}
	got := fx.gw.last(t)
	if got.msg.Inline == nil || len(got.msg.Inline.Rows) != 3 || got.msg.Inline.Rows[0][0].Data != "lang_uz" {
		t.Fatalf("back should fall through to language selection, got %+v", got.msg.Inline)
	}
	for _, m := range fx.gw.sent {
		if m.msg.Body == catalog.SurveyCancelled(models.LanguageUzbek) {
			t.Error("back must not send the cancellation notice")
		}
	}
}
