package bot

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/akobirdev/surveybot/internal/catalog"
	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/session"
	"github.com/akobirdev/surveybot/internal/store"
)

func (fx *fixture) makeAdmin(t *testing.T) {
	t.Helper()
	err := fx.st.AddAdmin(models.Admin{ID: chat, AddedAt: time.Now(), AddedBy: 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestNilDirectoryRunsAsPlainRespondentBot(t *testing.T) {
	gw := &fakeGateway{}
	st := &failingStore{InMemoryStore: store.NewInMemoryStore()}
	ctrl := NewController(gw, st, session.NewMemoryRegistry(), nil)
	fx := &fixture{gw: gw, st: st, registry: ctrl.registry, ctrl: ctrl, ctx: context.Background()}

	fx.command("/start")
	fx.callback(models.LanguageCallback(models.LanguageUzbek), fx.gw.last(t).id)
	fx.contact("+998901234567")

	menu := fx.gw.last(t)
	if menu.msg.Inline == nil || len(menu.msg.Inline.Rows) != 2 {
		t.Fatalf("expected the plain survey picker, got %+v", menu.msg.Inline)
	}

	fx.gw.reset()
	fx.action(models.ActionAdminStats)
	fx.gw.mu.Lock()
	defer fx.gw.mu.Unlock()
	if len(fx.gw.sent) != 0 {
		t.Errorf("admin actions should be ignored without a directory, sent %d messages", len(fx.gw.sent))
	}
}

func TestAdminSeesPanelAfterRegistration(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.command("/start")
	fx.callback(models.LanguageCallback(models.LanguageUzbek), fx.gw.last(t).id)
	fx.contact("+998901234567")

	panel := fx.gw.last(t)
	if panel.msg.Reply == nil || len(panel.msg.Reply.Rows) != 3 {
		t.Fatalf("admin panel should have 3 rows, got %+v", panel.msg.Reply)
	}
	if panel.msg.Reply.Rows[1][0].Action != models.ActionAdminStats {
		t.Errorf("second row should open statistics, got %+v", panel.msg.Reply.Rows[1][0])
	}
}

func TestAdminActionsIgnoredForRegularUsers(t *testing.T) {
	fx := newFixture(t)
	fx.register(t, models.LanguageUzbek)
	fx.gw.reset()

	fx.action(models.ActionAdminStats)

	fx.gw.mu.Lock()
	defer fx.gw.mu.Unlock()
	if len(fx.gw.sent) != 0 {
		t.Errorf("unprivileged admin action should be ignored, sent %d messages", len(fx.gw.sent))
	}
}

func TestAdminStatisticsFlow(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	// Seed a few answers.
	for i, text := range []string{"Yaxshi (1 ball)", "Yomon (0 ball)", "boshqa"} {
		err := fx.st.AddAnswer(models.Answer{
			RespondentID: int64(100 + i),
			Survey:       models.SurveyTeacherEvaluation,
			AttemptID:    "a",
			Position:     1,
			QuestionText: "q",
			AnswerText:   text,
			AnsweredAt:   time.Now(),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	fx.action(models.ActionAdminStats)
	picker := fx.gw.last(t)
	if picker.msg.Inline == nil || len(picker.msg.Inline.Rows) != 2 {
		t.Fatalf("stats picker should list both surveys, got %+v", picker.msg.Inline)
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec == nil || rec.Mode != session.ModeAdminStatsPick {
		t.Fatalf("stats selection mode not set: %+v", rec)
	}

	fx.callback("survey_teacher_evaluation", picker.id)

	view := fx.gw.last(t)
	if !strings.Contains(view.msg.Body, "3") {
		t.Errorf("summary should show totals, got %q", view.msg.Body)
	}
	if view.msg.Inline == nil || view.msg.Inline.Rows[0][0].Data != "export_teacher_evaluation" {
		t.Errorf("summary should carry an export button, got %+v", view.msg.Inline)
	}
	if rec, _ := fx.registry.Get(fx.ctx, chat); rec == nil || rec.Mode != session.ModeAdminStatsView {
		t.Errorf("viewing stats should keep the sub-flow mode: %+v", rec)
	}

	// Leaving the sub-flow via participate resets the record, so survey
	// selection starts the questionnaire instead.
	fx.action(models.ActionAdminParticipate)
	fx.callback("survey_teacher_evaluation", fx.gw.last(t).id)
	if rec, _ := fx.registry.Get(fx.ctx, chat); rec == nil || rec.Mode == session.ModeAdminStatsPick {
		t.Errorf("plain selection should start the survey, got %+v", rec)
	}
}

func TestBackFromStatsViewReturnsToPicker(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.action(models.ActionAdminStats)
	fx.callback("survey_corruption", fx.gw.last(t).id)

	fx.action(models.ActionBack)

	picker := fx.gw.last(t)
	if picker.msg.Inline == nil || len(picker.msg.Inline.Rows) != 2 {
		t.Fatalf("back from the stats view should re-show the picker, got %+v", picker.msg.Inline)
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec == nil || rec.Mode != session.ModeAdminStatsPick {
		t.Fatalf("picker mode should be restored: %+v", rec)
	}

	fx.action(models.ActionBack)
	panel := fx.gw.last(t)
	if panel.msg.Reply == nil || panel.msg.Reply.Rows[0][0].Action != models.ActionAdminParticipate {
		t.Errorf("back from the picker should return to the panel, got %+v", panel.msg.Reply)
	}
}

func TestAdminExport(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.callback("export_corruption", 0)

	fx.gw.mu.Lock()
	defer fx.gw.mu.Unlock()
	if len(fx.gw.docs) != 1 || !strings.HasPrefix(fx.gw.docs[0], "corruption_") {
		t.Errorf("export should send a workbook, docs=%v", fx.gw.docs)
	}
	if !strings.HasSuffix(fx.gw.docs[0], ".xlsx") {
		t.Errorf("export filename should be xlsx, got %q", fx.gw.docs[0])
	}
}

func TestAdminAddFlow(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.action(models.ActionAdminManage)
	manage := fx.gw.last(t)
	if manage.msg.Reply == nil || len(manage.msg.Reply.Rows) != 4 {
		t.Fatalf("manage menu should have 4 rows, got %+v", manage.msg.Reply)
	}

	fx.action(models.ActionAdminAdd)
	if fx.gw.last(t).msg.Body != catalog.AdminIDPrompt(models.LanguageUzbek) {
		t.Fatalf("expected id prompt, got %q", fx.gw.last(t).msg.Body)
	}

	// Malformed ids are rejected and the prompt mode stays.
	fx.text("12345")
	if fx.gw.last(t).msg.Body != catalog.AdminIDInvalid(models.LanguageUzbek) {
		t.Errorf("expected invalid id notice, got %q", fx.gw.last(t).msg.Body)
	}
	rec, _ := fx.registry.Get(fx.ctx, chat)
	if rec == nil || rec.Mode != session.ModeAwaitingAdminAddID {
		t.Fatalf("invalid id should keep the input mode: %+v", rec)
	}

	fx.text("123456789")
	if !fx.ctrl.directory.IsPrivileged(123456789) {
		t.Error("valid id should grant privileges")
	}
	if rec, _ := fx.registry.Get(fx.ctx, chat); rec != nil {
		t.Errorf("input mode should be cleared: %+v", rec)
	}
}

func TestAdminRemoveFlow(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.action(models.ActionAdminRemove)
	fx.text("123456789")
	if fx.gw.sent[len(fx.gw.sent)-2].msg.Body != catalog.AdminNotFound(models.LanguageUzbek) {
		t.Errorf("removing an unknown id should report not found")
	}

	if _, err := fx.ctrl.directory.Add(123456789, chat); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	fx.action(models.ActionAdminRemove)
	fx.text("123456789")
	if fx.ctrl.directory.IsPrivileged(123456789) {
		t.Error("removed id should lose privileges")
	}
}

func TestAdminListFlow(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.action(models.ActionAdminList)
	got := fx.gw.last(t).msg.Body
	if !strings.Contains(got, "42") {
		t.Errorf("list should contain the admin id, got %q", got)
	}
}

func TestBackFromManageReturnsToPanel(t *testing.T) {
	fx := newFixture(t)
	fx.makeAdmin(t)
	fx.register(t, models.LanguageUzbek)

	fx.action(models.ActionAdminAdd)
	fx.action(models.ActionBack)

	panel := fx.gw.last(t)
	if panel.msg.Reply == nil || panel.msg.Reply.Rows[0][0].Action != models.ActionAdminParticipate {
		t.Errorf("back should return to the admin panel, got %+v", panel.msg.Reply)
	}
	if rec, _ := fx.registry.Get(fx.ctx, chat); rec != nil {
		t.Errorf("input mode should be cleared: %+v", rec)
	}
}
