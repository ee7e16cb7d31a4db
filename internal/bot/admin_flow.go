package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/akobirdev/surveybot/internal/admin"
	"github.com/akobirdev/surveybot/internal/catalog"
	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/session"
	"github.com/akobirdev/surveybot/internal/stats"
)

// showAdminPanel presents the privileged menu. Reaching it is gated by
// the caller; the panel itself re-checks nothing.
func (c *Controller) showAdminPanel(ctx context.Context, chatID int64, lang models.Language) {
	kb := &models.ReplyKeyboard{Rows: [][]models.ReplyButton{
		{{Label: catalog.AdminParticipate(lang), Action: models.ActionAdminParticipate}},
		{{Label: catalog.AdminStats(lang), Action: models.ActionAdminStats}},
		{{Label: catalog.AdminManage(lang), Action: models.ActionAdminManage}},
	}}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:  catalog.AdminPanelTitle(lang),
		Reply: kb,
	})
	if err != nil {
		slog.Error("Controller admin panel failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) handleAdminAction(ctx context.Context, ev models.InboundEvent) {
	if !c.directory.IsPrivileged(ev.ChatID) {
		slog.Warn("Controller admin action from unprivileged chat", "chat", ev.ChatID, "action", ev.Action)
		return
	}
	lang := c.language(ev.ChatID)

	switch ev.Action {
	case models.ActionAdminParticipate:
		if err := c.registry.Remove(ctx, ev.ChatID); err != nil {
			slog.Error("Controller session reset failed", "error", err, "chat", ev.ChatID)
		}
		c.showSurveyPicker(ctx, ev.ChatID, lang, catalog.AdminPartPicker(lang))

	case models.ActionAdminStats:
		rec := &session.Record{Mode: session.ModeAdminStatsPick}
		if err := c.registry.Save(ctx, ev.ChatID, rec); err != nil {
			slog.Error("Controller session save failed", "error", err, "chat", ev.ChatID)
			return
		}
		// Statistics cover every questionnaire, not just the ones the
		// admin's own language offers.
		c.showAllSurveysPicker(ctx, ev.ChatID, lang, catalog.AdminStatsPicker(lang))

	case models.ActionAdminManage:
		c.showManageMenu(ctx, ev.ChatID, lang)

	case models.ActionAdminAdd:
		c.promptAdminID(ctx, ev.ChatID, lang, session.ModeAwaitingAdminAddID)

	case models.ActionAdminRemove:
		c.promptAdminID(ctx, ev.ChatID, lang, session.ModeAwaitingAdminRemoveID)

	case models.ActionAdminList:
		c.listAdmins(ctx, ev.ChatID, lang)
	}
}

func (c *Controller) showAllSurveysPicker(ctx context.Context, chatID int64, lang models.Language, title string) {
	rows := [][]models.InlineButton{
		{{Label: catalog.SurveyLabel(models.SurveyTeacherEvaluation, lang), Data: models.SurveyCallback(models.SurveyTeacherEvaluation)}},
		{{Label: catalog.SurveyLabel(models.SurveyCorruption, lang), Data: models.SurveyCallback(models.SurveyCorruption)}},
	}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:   title,
		Inline: &models.InlineKeyboard{Rows: rows},
	})
	if err != nil {
		slog.Error("Controller stats picker failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) showManageMenu(ctx context.Context, chatID int64, lang models.Language) {
	kb := &models.ReplyKeyboard{Rows: [][]models.ReplyButton{
		{{Label: catalog.AdminAddButton(lang), Action: models.ActionAdminAdd}},
		{{Label: catalog.AdminRemoveButton(lang), Action: models.ActionAdminRemove}},
		{{Label: catalog.AdminListButton(lang), Action: models.ActionAdminList}},
		{{Label: catalog.BackButton(lang), Action: models.ActionBack}},
	}}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:  catalog.AdminManage(lang),
		Reply: kb,
	})
	if err != nil {
		slog.Error("Controller manage menu failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) promptAdminID(ctx context.Context, chatID int64, lang models.Language, mode session.Mode) {
	rec := &session.Record{Mode: mode}
	if err := c.registry.Save(ctx, chatID, rec); err != nil {
		slog.Error("Controller session save failed", "error", err, "chat", chatID)
		return
	}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body: catalog.AdminIDPrompt(lang),
	})
	if err != nil {
		slog.Error("Controller admin id prompt failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) adminAdd(ctx context.Context, ev models.InboundEvent) {
	if !c.directory.IsPrivileged(ev.ChatID) {
		return
	}
	lang := c.language(ev.ChatID)

	id, err := admin.ParseAdminID(ev.Text)
	if err != nil {
		c.send(ctx, ev.ChatID, catalog.AdminIDInvalid(lang))
		return
	}

	added, err := c.directory.Add(id, ev.ChatID)
	if err != nil {
		slog.Error("Controller admin add failed", "error", err, "chat", ev.ChatID, "target", id)
		c.send(ctx, ev.ChatID, catalog.WriteFailed(lang))
		return
	}
	if err := c.registry.Remove(ctx, ev.ChatID); err != nil {
		slog.Error("Controller session remove failed", "error", err, "chat", ev.ChatID)
	}
	if added {
		c.send(ctx, ev.ChatID, catalog.AdminAdded(lang))
	} else {
		c.send(ctx, ev.ChatID, catalog.AdminAlready(lang))
	}
	c.showManageMenu(ctx, ev.ChatID, lang)
}

func (c *Controller) adminRemove(ctx context.Context, ev models.InboundEvent) {
	if !c.directory.IsPrivileged(ev.ChatID) {
		return
	}
	lang := c.language(ev.ChatID)

	id, err := admin.ParseAdminID(ev.Text)
	if err != nil {
		c.send(ctx, ev.ChatID, catalog.AdminIDInvalid(lang))
		return
	}

	removed, err := c.directory.Remove(id)
	if err != nil {
		slog.Error("Controller admin remove failed", "error", err, "chat", ev.ChatID, "target", id)
		c.send(ctx, ev.ChatID, catalog.WriteFailed(lang))
		return
	}
	if err := c.registry.Remove(ctx, ev.ChatID); err != nil {
		slog.Error("Controller session remove failed", "error", err, "chat", ev.ChatID)
	}
	if removed {
		c.send(ctx, ev.ChatID, catalog.AdminRemoved(lang))
	} else {
		c.send(ctx, ev.ChatID, catalog.AdminNotFound(lang))
	}
	c.showManageMenu(ctx, ev.ChatID, lang)
}

func (c *Controller) listAdmins(ctx context.Context, chatID int64, lang models.Language) {
	admins, err := c.directory.List()
	if err != nil {
		slog.Error("Controller admin list failed", "error", err, "chat", chatID)
		c.send(ctx, chatID, catalog.StatsFailed(lang))
		return
	}

	var b strings.Builder
	b.WriteString(catalog.AdminListButton(lang))
	b.WriteString("\n")
	for i, a := range admins {
		fmt.Fprintf(&b, "\n%d. %d", i+1, a.ID)
		if a.Username != "" {
			fmt.Fprintf(&b, " (@%s)", a.Username)
		}
	}
	c.send(ctx, chatID, b.String())
}

// showStatistics renders the summary of a questionnaire with an export
// button attached.
func (c *Controller) showStatistics(ctx context.Context, ev models.InboundEvent, survey models.SurveyID) {
	if !c.directory.IsPrivileged(ev.ChatID) {
		return
	}
	lang := c.language(ev.ChatID)

	c.gateway.DeleteMessage(ctx, ev.ChatID, ev.MessageID)

	summary, err := c.aggregator.Summarize(survey)
	if err != nil {
		slog.Error("Controller statistics failed", "error", err, "chat", ev.ChatID, "survey", survey)
		c.send(ctx, ev.ChatID, catalog.StatsFailed(lang))
		return
	}

	// Stay inside the statistics sub-flow so back pops to the picker
	// rather than falling through.
	rec := &session.Record{Mode: session.ModeAdminStatsView}
	if err := c.registry.Save(ctx, ev.ChatID, rec); err != nil {
		slog.Error("Controller session save failed", "error", err, "chat", ev.ChatID)
	}

	kb := &models.InlineKeyboard{Rows: [][]models.InlineButton{
		{{Label: catalog.ExportButton(lang), Data: models.ExportCallback(survey)}},
	}}
	_, err = c.gateway.SendMessage(ctx, ev.ChatID, models.OutboundMessage{
		Body:   catalog.SurveyLabel(survey, lang) + "\n\n" + stats.FormatSummary(summary, lang),
		Inline: kb,
	})
	if err != nil {
		slog.Error("Controller statistics message failed", "error", err, "chat", ev.ChatID)
	}
}

// exportAnswers builds the xlsx workbook for a questionnaire and sends it
// as a document.
func (c *Controller) exportAnswers(ctx context.Context, ev models.InboundEvent, survey models.SurveyID) {
	if !c.directory.IsPrivileged(ev.ChatID) {
		return
	}
	lang := c.language(ev.ChatID)

	answers, err := c.store.GetAnswersBySurvey(survey)
	if err != nil {
		slog.Error("Controller export load failed", "error", err, "chat", ev.ChatID, "survey", survey)
		c.send(ctx, ev.ChatID, catalog.ExportFailed(lang))
		return
	}
	workbook, err := stats.BuildWorkbook(survey, answers)
	if err != nil {
		slog.Error("Controller export build failed", "error", err, "chat", ev.ChatID, "survey", survey)
		c.send(ctx, ev.ChatID, catalog.ExportFailed(lang))
		return
	}

	filename := fmt.Sprintf("%s_%s.xlsx", survey, time.Now().Format("2006-01-02"))
	err = c.gateway.SendDocument(ctx, ev.ChatID, filename, workbook, catalog.SurveyLabel(survey, lang))
	if err != nil {
		slog.Error("Controller export send failed", "error", err, "chat", ev.ChatID)
		c.send(ctx, ev.ChatID, catalog.ExportFailed(lang))
	}
}

func (c *Controller) send(ctx context.Context, chatID int64, body string) {
	if _, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{Body: body}); err != nil {
		slog.Error("Controller send failed", "error", err, "chat", chatID)
	}
}
