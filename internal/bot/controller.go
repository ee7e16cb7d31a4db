// Package bot implements the conversation state machine.
//
// The Controller consumes normalized inbound events from the messaging
// gateway, drives registration and questionnaire flows against the session
// registry, and persists answers through the store.
package bot

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/akobirdev/surveybot/internal/admin"
	"github.com/akobirdev/surveybot/internal/catalog"
	"github.com/akobirdev/surveybot/internal/messaging"
	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/session"
	"github.com/akobirdev/surveybot/internal/stats"
	"github.com/akobirdev/surveybot/internal/store"
)

// Controller wires the gateway, store, and session registry into the
// conversation flow.
type Controller struct {
	gateway    messaging.Gateway
	store      store.Store
	registry   session.Registry
	directory  *admin.Directory
	aggregator *stats.Aggregator
	dispatcher *session.Dispatcher

	done chan struct{}
}

// NewController creates a Controller over the given collaborators. A nil
// directory disables the admin features and leaves a plain respondent bot.
func NewController(gw messaging.Gateway, st store.Store, reg session.Registry, dir *admin.Directory) *Controller {
	c := &Controller{
		gateway:    gw,
		store:      st,
		registry:   reg,
		directory:  dir,
		aggregator: stats.NewAggregator(st),
		done:       make(chan struct{}),
	}
	c.dispatcher = session.NewDispatcher(c.HandleEvent)
	return c
}

// Start begins consuming gateway events until the channel closes or the
// context is canceled. Events are serialized per chat so a burst of taps
// cannot race over one session.
func (c *Controller) Start(ctx context.Context) error {
	if err := c.gateway.Start(ctx); err != nil {
		return err
	}
	go func() {
		defer close(c.done)
		for {
			select {
			case <-ctx.Done():
				return
			case ev, ok := <-c.gateway.Events():
				if !ok {
					return
				}
				c.dispatcher.Dispatch(ev)
			}
		}
	}()
	return nil
}

// Stop shuts down event consumption and waits for in-flight handlers.
func (c *Controller) Stop() error {
	if err := c.gateway.Stop(); err != nil {
		slog.Error("Controller gateway stop failed", "error", err)
	}
	<-c.done
	c.dispatcher.Stop()
	return nil
}

// HandleEvent processes one inbound event.
func (c *Controller) HandleEvent(ctx context.Context, ev models.InboundEvent) {
	switch ev.Kind {
	case models.EventCommand:
		c.handleCommand(ctx, ev)
	case models.EventCallback:
		c.handleCallback(ctx, ev)
	case models.EventContact:
		c.handleContact(ctx, ev)
	case models.EventAction:
		c.handleAction(ctx, ev)
	case models.EventText:
		c.handleText(ctx, ev)
	default:
		slog.Debug("Controller ignoring event", "chat", ev.ChatID, "kind", ev.Kind)
	}
}

func (c *Controller) handleCommand(ctx context.Context, ev models.InboundEvent) {
	switch ev.Text {
	case "/start":
		c.startConversation(ctx, ev)
	case "/admin":
		if c.directory.IsPrivileged(ev.ChatID) {
			lang := c.language(ev.ChatID)
			c.showAdminPanel(ctx, ev.ChatID, lang)
		}
	default:
		slog.Debug("Controller unknown command", "chat", ev.ChatID, "command", ev.Text)
	}
}

// startConversation resets the chat and shows the language selection.
// An existing respondent record keeps its phone number and language; only
// the display identity is refreshed.
func (c *Controller) startConversation(ctx context.Context, ev models.InboundEvent) {
	if err := c.registry.Remove(ctx, ev.ChatID); err != nil {
		slog.Error("Controller session reset failed", "error", err, "chat", ev.ChatID)
	}

	r, err := c.store.GetRespondent(ev.ChatID)
	if err != nil {
		slog.Error("Controller respondent lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if r == nil {
		r = &models.Respondent{ID: ev.ChatID, Language: models.LanguageUzbek}
	}
	r.Username = ev.From.Username
	r.FirstName = ev.From.FirstName
	r.LastName = ev.From.LastName
	if err := c.store.SaveRespondent(*r); err != nil {
		slog.Error("Controller respondent save failed", "error", err, "chat", ev.ChatID)
	}

	c.showLanguageSelection(ctx, ev.ChatID, ev.From)
}

func (c *Controller) showLanguageSelection(ctx context.Context, chatID int64, from models.Sender) {
	kb := &models.InlineKeyboard{Rows: [][]models.InlineButton{
		{{Label: catalog.LanguageLabel(models.LanguageUzbek), Data: models.LanguageCallback(models.LanguageUzbek)}},
		{{Label: catalog.LanguageLabel(models.LanguageRussian), Data: models.LanguageCallback(models.LanguageRussian)}},
		{{Label: catalog.LanguageLabel(models.LanguageKarakalpak), Data: models.LanguageCallback(models.LanguageKarakalpak)}},
	}}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:   catalog.Greeting(from.FirstName, from.LastName),
		Inline: kb,
	})
	if err != nil {
		slog.Error("Controller language prompt failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) handleCallback(ctx context.Context, ev models.InboundEvent) {
	defer c.gateway.AckCallback(ctx, ev.CallbackID)

	cb, err := models.ParseCallback(ev.Callback)
	if err != nil {
		slog.Debug("Controller ignoring malformed callback", "chat", ev.ChatID, "data", ev.Callback, "error", err)
		return
	}

	switch cb.Purpose {
	case models.CallbackLanguage:
		c.selectLanguage(ctx, ev, cb.Language)
	case models.CallbackSurvey:
		c.selectSurvey(ctx, ev, cb.Survey)
	case models.CallbackAnswer:
		c.answerSingle(ctx, ev, cb)
	case models.CallbackToggle:
		c.toggleOption(ctx, ev, cb)
	case models.CallbackSave:
		c.saveMultiSelect(ctx, ev, cb)
	case models.CallbackExport:
		c.exportAnswers(ctx, ev, cb.Survey)
	}
}

func (c *Controller) selectLanguage(ctx context.Context, ev models.InboundEvent, lang models.Language) {
	r, err := c.store.GetRespondent(ev.ChatID)
	if err != nil {
		slog.Error("Controller respondent lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if r == nil {
		r = &models.Respondent{ID: ev.ChatID}
	}
	r.Language = lang
	if err := c.store.SaveRespondent(*r); err != nil {
		slog.Error("Controller language save failed", "error", err, "chat", ev.ChatID)
		return
	}
	c.gateway.DeleteMessage(ctx, ev.ChatID, ev.MessageID)

	if !r.Registered() {
		c.requestPhone(ctx, ev.ChatID, lang)
		return
	}
	// A respondent with a phone on file gets the language prompt again,
	// not the menu. The menu is reached through registration or a survey
	// exit.
	c.showLanguageSelection(ctx, ev.ChatID, ev.From)
}

func (c *Controller) requestPhone(ctx context.Context, chatID int64, lang models.Language) {
	kb := &models.ReplyKeyboard{Rows: [][]models.ReplyButton{
		{{Label: catalog.PhoneButton(lang), RequestContact: true}},
		{{Label: catalog.BackButton(lang), Action: models.ActionBack}},
	}}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:  catalog.PhoneRequest(lang),
		Reply: kb,
	})
	if err != nil {
		slog.Error("Controller phone request failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) handleContact(ctx context.Context, ev models.InboundEvent) {
	if ev.Contact == nil || ev.Contact.PhoneNumber == "" {
		return
	}
	r, err := c.store.GetRespondent(ev.ChatID)
	if err != nil {
		slog.Error("Controller respondent lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if r == nil {
		r = &models.Respondent{ID: ev.ChatID, Language: models.LanguageUzbek}
	}
	r.PhoneNumber = ev.Contact.PhoneNumber
	if r.FirstName == "" {
		r.FirstName = ev.Contact.FirstName
	}
	if r.RegisteredAt.IsZero() {
		r.RegisteredAt = time.Now()
	}
	if err := c.store.SaveRespondent(*r); err != nil {
		slog.Error("Controller registration save failed", "error", err, "chat", ev.ChatID)
		return
	}
	slog.Info("Controller respondent registered", "chat", ev.ChatID)

	_, err = c.gateway.SendMessage(ctx, ev.ChatID, models.OutboundMessage{
		Body:        catalog.RegistrationDone(r.Language),
		RemoveReply: true,
	})
	if err != nil {
		slog.Error("Controller registration confirmation failed", "error", err, "chat", ev.ChatID)
	}
	c.showMainMenu(ctx, ev.ChatID, r.Language)
}

// showMainMenu presents the questionnaire picker, or the admin panel for
// privileged accounts.
func (c *Controller) showMainMenu(ctx context.Context, chatID int64, lang models.Language) {
	if c.directory.IsPrivileged(chatID) {
		c.showAdminPanel(ctx, chatID, lang)
		return
	}
	c.showSurveyPicker(ctx, chatID, lang, catalog.ChooseSurvey(lang))
}

func (c *Controller) showSurveyPicker(ctx context.Context, chatID int64, lang models.Language, title string) {
	var rows [][]models.InlineButton
	for _, survey := range catalog.Surveys(lang) {
		rows = append(rows, []models.InlineButton{{
			Label: catalog.SurveyLabel(survey, lang),
			Data:  models.SurveyCallback(survey),
		}})
	}
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:   title,
		Inline: &models.InlineKeyboard{Rows: rows},
	})
	if err != nil {
		slog.Error("Controller survey picker failed", "error", err, "chat", chatID)
	}
}

func (c *Controller) selectSurvey(ctx context.Context, ev models.InboundEvent, survey models.SurveyID) {
	rec, err := c.registry.Get(ctx, ev.ChatID)
	if err != nil {
		slog.Error("Controller session lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if rec != nil && (rec.Mode == session.ModeAdminStatsPick || rec.Mode == session.ModeAdminStatsView) {
		c.showStatistics(ctx, ev, survey)
		return
	}

	r, err := c.store.GetRespondent(ev.ChatID)
	if err != nil {
		slog.Error("Controller respondent lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if r == nil || !r.Registered() {
		lang := models.LanguageUzbek
		if r != nil {
			lang = r.Language
		}
		c.requestPhone(ctx, ev.ChatID, lang)
		return
	}

	c.gateway.DeleteMessage(ctx, ev.ChatID, ev.MessageID)
	c.startSurvey(ctx, ev.ChatID, r.Language, survey)
}

// startSurvey snapshots the questionnaire and asks the first question.
// The snapshot pins the running attempt to the question list as it was at
// start time.
func (c *Controller) startSurvey(ctx context.Context, chatID int64, lang models.Language, survey models.SurveyID) {
	questions := catalog.Questions(survey, lang)
	if len(questions) == 0 {
		slog.Error("Controller survey has no questions", "chat", chatID, "survey", survey)
		return
	}

	rec := &session.Record{
		Mode:      session.ModeAwaitingAnswer,
		Survey:    survey,
		AttemptID: uuid.New().String(),
		Questions: questions,
	}
	slog.Info("Controller survey started", "chat", chatID, "survey", survey, "attempt", rec.AttemptID)

	// The cancel button rides a reply keyboard so it stays visible for
	// the whole questionnaire.
	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body: catalog.SurveyLabel(survey, lang),
		Reply: &models.ReplyKeyboard{Rows: [][]models.ReplyButton{
			{{Label: catalog.CancelButton(lang), Action: models.ActionCancelSurvey}},
		}},
	})
	if err != nil {
		slog.Error("Controller survey intro failed", "error", err, "chat", chatID)
	}

	c.askQuestion(ctx, chatID, lang, rec)
}

// askQuestion renders the current question and saves the session record.
// Past the last question it completes the attempt instead.
func (c *Controller) askQuestion(ctx context.Context, chatID int64, lang models.Language, rec *session.Record) {
	q := rec.Question()
	if q == nil {
		c.completeSurvey(ctx, chatID, lang, rec)
		return
	}

	body := catalog.QuestionHeader(rec.Index+1, len(rec.Questions), lang) + "\n\n" + q.Text
	msg := models.OutboundMessage{Body: body}

	switch {
	case q.RequireText:
		rec.Mode = session.ModeAwaitingText
		msg.Body += "\n\n" + catalog.WriteAnswer(lang)
	case q.AllowMultiple:
		rec.Mode = session.ModeAwaitingMultiSelect
		rec.Selected = nil
		msg.Body += "\n\n" + catalog.MultiSelectHint(lang)
		msg.Inline = multiSelectKeyboard(q, rec, lang)
	default:
		rec.Mode = session.ModeAwaitingAnswer
		msg.Inline = singleSelectKeyboard(q, rec.Index)
	}

	messageID, err := c.gateway.SendMessage(ctx, chatID, msg)
	if err != nil {
		slog.Error("Controller question send failed", "error", err, "chat", chatID, "position", rec.Index+1)
		return
	}
	rec.PromptMessageID = messageID
	if err := c.registry.Save(ctx, chatID, rec); err != nil {
		slog.Error("Controller session save failed", "error", err, "chat", chatID)
	}
}

func singleSelectKeyboard(q *catalog.Question, questionIndex int) *models.InlineKeyboard {
	var rows [][]models.InlineButton
	for i, opt := range q.Options {
		rows = append(rows, []models.InlineButton{{
			Label: opt,
			Data:  models.AnswerCallback(questionIndex, i),
		}})
	}
	return &models.InlineKeyboard{Rows: rows}
}

func multiSelectKeyboard(q *catalog.Question, rec *session.Record, lang models.Language) *models.InlineKeyboard {
	var rows [][]models.InlineButton
	for i, opt := range q.Options {
		label := opt
		if rec.IsSelected(i) {
			label = "✅ " + opt
		}
		rows = append(rows, []models.InlineButton{{
			Label: label,
			Data:  models.ToggleCallback(rec.Index, i),
		}})
	}
	saveLabel := catalog.MultiSaveButton(lang)
	if len(rec.Selected) == 0 {
		saveLabel = catalog.MultiSaveEmpty(lang)
	}
	rows = append(rows, []models.InlineButton{{
		Label: saveLabel,
		Data:  models.SaveCallback(rec.Index),
	}})
	return &models.InlineKeyboard{Rows: rows}
}

// currentRecord loads the session record and checks it matches the
// expected mode and question index. Stale callbacks from earlier
// questions resolve to nil.
func (c *Controller) currentRecord(ctx context.Context, chatID int64, mode session.Mode, questionIndex int) *session.Record {
	rec, err := c.registry.Get(ctx, chatID)
	if err != nil {
		slog.Error("Controller session lookup failed", "error", err, "chat", chatID)
		return nil
	}
	if rec == nil || rec.Mode != mode || rec.Index != questionIndex {
		return nil
	}
	return rec
}

func (c *Controller) answerSingle(ctx context.Context, ev models.InboundEvent, cb models.Callback) {
	rec := c.currentRecord(ctx, ev.ChatID, session.ModeAwaitingAnswer, cb.QuestionIndex)
	if rec == nil {
		return
	}
	q := rec.Question()
	if q == nil || cb.OptionIndex >= len(q.Options) {
		return
	}
	c.commitAnswer(ctx, ev.ChatID, rec, q.Options[cb.OptionIndex])
}

func (c *Controller) toggleOption(ctx context.Context, ev models.InboundEvent, cb models.Callback) {
	rec := c.currentRecord(ctx, ev.ChatID, session.ModeAwaitingMultiSelect, cb.QuestionIndex)
	if rec == nil {
		return
	}
	q := rec.Question()
	if q == nil || cb.OptionIndex >= len(q.Options) {
		return
	}
	rec.Toggle(cb.OptionIndex)
	if err := c.registry.Save(ctx, ev.ChatID, rec); err != nil {
		slog.Error("Controller session save failed", "error", err, "chat", ev.ChatID)
		return
	}

	lang := c.language(ev.ChatID)
	if err := c.gateway.EditInlineKeyboard(ctx, ev.ChatID, rec.PromptMessageID, multiSelectKeyboard(q, rec, lang)); err != nil {
		slog.Error("Controller keyboard update failed", "error", err, "chat", ev.ChatID)
	}
}

func (c *Controller) saveMultiSelect(ctx context.Context, ev models.InboundEvent, cb models.Callback) {
	rec := c.currentRecord(ctx, ev.ChatID, session.ModeAwaitingMultiSelect, cb.QuestionIndex)
	if rec == nil {
		return
	}
	labels := rec.SelectedLabels()
	if len(labels) == 0 {
		// Committing nothing is rejected; the save button already shows
		// the warning label.
		return
	}
	c.commitAnswer(ctx, ev.ChatID, rec, joinLabels(labels))
}

func joinLabels(labels []string) string {
	return strings.Join(labels, models.MultiSelectSeparator)
}

func (c *Controller) handleText(ctx context.Context, ev models.InboundEvent) {
	rec, err := c.registry.Get(ctx, ev.ChatID)
	if err != nil {
		slog.Error("Controller session lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if rec == nil {
		slog.Debug("Controller ignoring stray text", "chat", ev.ChatID)
		return
	}

	switch rec.Mode {
	case session.ModeAwaitingText:
		if ev.Text == "" {
			return
		}
		c.commitAnswer(ctx, ev.ChatID, rec, ev.Text)
	case session.ModeAwaitingAdminAddID:
		c.adminAdd(ctx, ev)
	case session.ModeAwaitingAdminRemoveID:
		c.adminRemove(ctx, ev)
	default:
		slog.Debug("Controller ignoring text in mode", "chat", ev.ChatID, "mode", rec.Mode)
	}
}

// commitAnswer persists the current answer and advances to the next
// question. A failed write keeps the session where it is so the
// respondent can retry; the attempt never advances past an unsaved
// answer.
func (c *Controller) commitAnswer(ctx context.Context, chatID int64, rec *session.Record, answerText string) {
	q := rec.Question()
	if q == nil {
		return
	}
	lang := c.language(chatID)

	answer := models.Answer{
		RespondentID: chatID,
		Survey:       rec.Survey,
		AttemptID:    rec.AttemptID,
		Position:     rec.Index + 1,
		QuestionText: q.Text,
		AnswerText:   answerText,
		AnsweredAt:   time.Now(),
	}
	if err := c.store.AddAnswer(answer); err != nil {
		slog.Error("Controller answer write failed", "error", err, "chat", chatID, "position", answer.Position)
		if _, serr := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{Body: catalog.WriteFailed(lang)}); serr != nil {
			slog.Error("Controller write failure notice failed", "error", serr, "chat", chatID)
		}
		return
	}

	if rec.PromptMessageID != 0 {
		c.gateway.DeleteMessage(ctx, chatID, rec.PromptMessageID)
	}
	rec.Index++
	rec.Selected = nil
	rec.PromptMessageID = 0
	c.askQuestion(ctx, chatID, lang, rec)
}

func (c *Controller) completeSurvey(ctx context.Context, chatID int64, lang models.Language, rec *session.Record) {
	if err := c.registry.Remove(ctx, chatID); err != nil {
		slog.Error("Controller session remove failed", "error", err, "chat", chatID)
	}
	slog.Info("Controller survey completed", "chat", chatID, "survey", rec.Survey, "attempt", rec.AttemptID)

	_, err := c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:        catalog.SurveyCompleted(lang) + "\n\n" + catalog.ThankYou(lang),
		RemoveReply: true,
	})
	if err != nil {
		slog.Error("Controller completion message failed", "error", err, "chat", chatID)
	}
	c.showMainMenu(ctx, chatID, lang)
}

func (c *Controller) handleAction(ctx context.Context, ev models.InboundEvent) {
	switch ev.Action {
	case models.ActionCancelSurvey:
		c.cancelSurvey(ctx, ev.ChatID)
	case models.ActionBack:
		c.goBack(ctx, ev)
	case models.ActionAdminParticipate, models.ActionAdminStats, models.ActionAdminManage,
		models.ActionAdminAdd, models.ActionAdminRemove, models.ActionAdminList:
		c.handleAdminAction(ctx, ev)
	default:
		slog.Debug("Controller unknown action", "chat", ev.ChatID, "action", ev.Action)
	}
}

func (c *Controller) cancelSurvey(ctx context.Context, chatID int64) {
	rec, err := c.registry.Get(ctx, chatID)
	if err != nil {
		slog.Error("Controller session lookup failed", "error", err, "chat", chatID)
		return
	}
	lang := c.language(chatID)
	if rec != nil {
		if rec.PromptMessageID != 0 {
			c.gateway.DeleteMessage(ctx, chatID, rec.PromptMessageID)
		}
		if err := c.registry.Remove(ctx, chatID); err != nil {
			slog.Error("Controller session remove failed", "error", err, "chat", chatID)
		}
		slog.Info("Controller survey cancelled", "chat", chatID, "survey", rec.Survey, "attempt", rec.AttemptID)
	}
	_, err = c.gateway.SendMessage(ctx, chatID, models.OutboundMessage{
		Body:        catalog.SurveyCancelled(lang),
		RemoveReply: true,
	})
	if err != nil {
		slog.Error("Controller cancel message failed", "error", err, "chat", chatID)
	}
	c.showMainMenu(ctx, chatID, lang)
}

// goBack leaves whatever step the chat is in. The stats view pops to the
// stats picker, admin input steps return to the admin panel; anything
// else, including a questionnaire in progress, falls through to the
// language selection. Abandoning an attempt this way sends no
// cancellation notice; the cancel button remains the explicit path out.
func (c *Controller) goBack(ctx context.Context, ev models.InboundEvent) {
	rec, err := c.registry.Get(ctx, ev.ChatID)
	if err != nil {
		slog.Error("Controller session lookup failed", "error", err, "chat", ev.ChatID)
		return
	}
	if rec != nil {
		if err := c.registry.Remove(ctx, ev.ChatID); err != nil {
			slog.Error("Controller session remove failed", "error", err, "chat", ev.ChatID)
		}
		switch rec.Mode {
		case session.ModeAwaitingAdminAddID, session.ModeAwaitingAdminRemoveID, session.ModeAdminStatsPick:
			c.showAdminPanel(ctx, ev.ChatID, c.language(ev.ChatID))
			return
		case session.ModeAdminStatsView:
			lang := c.language(ev.ChatID)
			pick := &session.Record{Mode: session.ModeAdminStatsPick}
			if err := c.registry.Save(ctx, ev.ChatID, pick); err != nil {
				slog.Error("Controller session save failed", "error", err, "chat", ev.ChatID)
			}
			c.showAllSurveysPicker(ctx, ev.ChatID, lang, catalog.AdminStatsPicker(lang))
			return
		}
		if rec.PromptMessageID != 0 {
			c.gateway.DeleteMessage(ctx, ev.ChatID, rec.PromptMessageID)
		}
		slog.Info("Controller survey abandoned", "chat", ev.ChatID, "survey", rec.Survey, "attempt", rec.AttemptID)
	}
	c.showLanguageSelection(ctx, ev.ChatID, ev.From)
}

// language resolves the stored language of a chat, defaulting to Uzbek.
func (c *Controller) language(chatID int64) models.Language {
	r, err := c.store.GetRespondent(chatID)
	if err != nil || r == nil {
		return models.LanguageUzbek
	}
	return models.NormalizeLanguage(r.Language)
}
