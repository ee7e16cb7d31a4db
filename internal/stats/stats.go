// Package stats aggregates stored answers into admin-facing summaries.
//
// Classification is a keyword heuristic over the literal answer labels, so
// summaries are deterministic and need no external service.
package stats

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/store"
)

// Sentiment buckets an answer for the summary view.
type Sentiment string

const (
	SentimentPositive Sentiment = "positive"
	SentimentNegative Sentiment = "negative"
	SentimentNeutral  Sentiment = "neutral"
)

// Classifier buckets one answer text.
type Classifier interface {
	Classify(answer string) Sentiment
}

// ScoreLabelClassifier buckets scored option labels such as "1 ball" or
// "0.3 балл". Negative labels are matched first: "-2 ball" contains
// "2 ball" and must not count as positive.
type ScoreLabelClassifier struct{}

var (
	scoreNegative = []string{"0 ball", "0.3 ball", "0.5 ball", "-2 ball", "0 балл", "0.3 балл", "0.5 балл", "-2 балл"}
	scorePositive = []string{"1 ball", "0.9 ball", "0.7 ball", "2 ball", "1.7 ball", "1 балл", "0.9 балл", "0.7 балл", "2 балл", "1.7 балл"}
)

func (ScoreLabelClassifier) Classify(answer string) Sentiment {
	lower := strings.ToLower(answer)
	if containsAny(lower, scoreNegative) {
		return SentimentNegative
	}
	if containsAny(lower, scorePositive) {
		return SentimentPositive
	}
	return SentimentNeutral
}

// PhraseClassifier buckets free-form Uzbek answers on the corruption
// questionnaire. Positive phrases are matched first: "ha, tayyorman" and
// "bunday holatlar mavjud emas" contain negative keywords.
type PhraseClassifier struct{}

var (
	phrasePositive = []string{"yo'q", "bilmayman", "bunday holatlar mavjud emas", "duch kelmaganman", "ha, tayyorman"}
	phraseNegative = []string{"xa", "ha", "bo'ladi", "mavjud", "guvoh"}
)

func (PhraseClassifier) Classify(answer string) Sentiment {
	lower := strings.ToLower(answer)
	if containsAny(lower, phrasePositive) {
		return SentimentPositive
	}
	if containsAny(lower, phraseNegative) {
		return SentimentNegative
	}
	return SentimentNeutral
}

func containsAny(s string, keywords []string) bool {
	for _, k := range keywords {
		if strings.Contains(s, k) {
			return true
		}
	}
	return false
}

// ClassifierFor picks the classifier matching a questionnaire.
func ClassifierFor(survey models.SurveyID) Classifier {
	if survey == models.SurveyTeacherEvaluation {
		return ScoreLabelClassifier{}
	}
	return PhraseClassifier{}
}

// Summary is the aggregate view of one questionnaire.
type Summary struct {
	Survey       models.SurveyID
	Participants int
	TotalAnswers int
	Positive     int
	Negative     int
	Neutral      int
}

// Percent renders part of the total as a one-decimal percentage, "0" when
// there are no answers.
func (s Summary) Percent(part int) string {
	if s.TotalAnswers == 0 {
		return "0"
	}
	return strconv.FormatFloat(float64(part)/float64(s.TotalAnswers)*100, 'f', 1, 64)
}

// Aggregator computes summaries from the answer store.
type Aggregator struct {
	store store.Store
}

// NewAggregator creates an Aggregator backed by the given store.
func NewAggregator(st store.Store) *Aggregator {
	return &Aggregator{store: st}
}

// Summarize loads every answer of a questionnaire and buckets it.
func (a *Aggregator) Summarize(survey models.SurveyID) (Summary, error) {
	answers, err := a.store.GetAnswersBySurvey(survey)
	if err != nil {
		return Summary{}, fmt.Errorf("failed to load answers for %s: %w", survey, err)
	}

	classifier := ClassifierFor(survey)
	sum := Summary{Survey: survey, TotalAnswers: len(answers)}
	seen := make(map[int64]struct{})
	for _, ans := range answers {
		seen[ans.RespondentID] = struct{}{}
		switch classifier.Classify(ans.AnswerText) {
		case SentimentPositive:
			sum.Positive++
		case SentimentNegative:
			sum.Negative++
		default:
			sum.Neutral++
		}
	}
	sum.Participants = len(seen)
	return sum, nil
}

var summaryLabels = map[models.Language][6]string{
	models.LanguageUzbek:      {"Statistika", "Qatnashganlar", "Jami javoblar", "Tahlil", "Ijobiy", "Salbiy"},
	models.LanguageRussian:    {"Статистика", "Участники", "Всего ответов", "Анализ", "Положительные", "Отрицательные"},
	models.LanguageKarakalpak: {"Statistika", "Qatnasqanlar", "Jámi juwaplar", "Analiz", "Oń", "Teris"},
}

var neutralLabels = map[models.Language]string{
	models.LanguageUzbek:      "Boshqa",
	models.LanguageRussian:    "Другие",
	models.LanguageKarakalpak: "Basqa",
}

// FormatSummary renders a summary for the admin statistics view.
func FormatSummary(s Summary, lang models.Language) string {
	lang = models.NormalizeLanguage(lang)
	l := summaryLabels[lang]

	var b strings.Builder
	fmt.Fprintf(&b, "📈 %s\n\n", l[0])
	fmt.Fprintf(&b, "👥 %s: %d\n", l[1], s.Participants)
	fmt.Fprintf(&b, "📝 %s: %d\n\n", l[2], s.TotalAnswers)
	fmt.Fprintf(&b, "📊 %s:\n", l[3])
	fmt.Fprintf(&b, "✅ %s: %d (%s%%)\n", l[4], s.Positive, s.Percent(s.Positive))
	fmt.Fprintf(&b, "❌ %s: %d (%s%%)\n", l[5], s.Negative, s.Percent(s.Negative))
	fmt.Fprintf(&b, "➖ %s: %d (%s%%)", neutralLabels[lang], s.Neutral, s.Percent(s.Neutral))
	return b.String()
}
