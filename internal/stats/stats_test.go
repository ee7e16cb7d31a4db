package stats

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/akobirdev/surveybot/internal/models"
	"github.com/akobirdev/surveybot/internal/store"
)

func TestScoreLabelClassifier(t *testing.T) {
	c := ScoreLabelClassifier{}
	cases := []struct {
		answer string
		want   Sentiment
	}{
		{"Interaktiv usullardan foydalanadi (1 ball)", SentimentPositive},
		{"Qisman foydalanadi (0.7 ball)", SentimentPositive},
		{"Juda yaxshi (2 ball)", SentimentPositive},
		{"Deyarli foydalanmaydi (0.3 ball)", SentimentNegative},
		{"Umuman yo'q (0 ball)", SentimentNegative},
		{"Yomon (-2 ball)", SentimentNegative},
		{"Использует частично (0.5 балл)", SentimentNegative},
		{"Использует хорошо (1 балл)", SentimentPositive},
		{"free text with no score", SentimentNeutral},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.answer); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.answer, got, tc.want)
		}
	}
}

func TestPhraseClassifier(t *testing.T) {
	c := PhraseClassifier{}
	cases := []struct {
		answer string
		want   Sentiment
	}{
		{"Yo'q", SentimentPositive},
		{"Bilmayman", SentimentPositive},
		{"Bunday holatlar mavjud emas", SentimentPositive},
		{"Duch kelmaganman", SentimentPositive},
		{"Ha, tayyorman", SentimentPositive},
		{"Xa", SentimentNegative},
		{"Ha", SentimentNegative},
		{"Bunday holatlar mavjud", SentimentNegative},
		{"O'zim guvoh bo'lganman", SentimentNegative},
		{"qandaydir boshqa javob", SentimentNeutral},
	}
	for _, tc := range cases {
		if got := c.Classify(tc.answer); got != tc.want {
			t.Errorf("Classify(%q) = %s, want %s", tc.answer, got, tc.want)
		}
	}
}

func TestClassifierFor(t *testing.T) {
	if _, ok := ClassifierFor(models.SurveyTeacherEvaluation).(ScoreLabelClassifier); !ok {
		t.Error("teacher evaluation should use the score label classifier")
	}
	if _, ok := ClassifierFor(models.SurveyCorruption).(PhraseClassifier); !ok {
		t.Error("corruption survey should use the phrase classifier")
	}
}

func TestSummarize(t *testing.T) {
	st := store.NewInMemoryStore()
	now := time.Now()
	add := func(respondent int64, text string) {
		t.Helper()
		err := st.AddAnswer(models.Answer{
			RespondentID: respondent,
			Survey:       models.SurveyTeacherEvaluation,
			AttemptID:    "a",
			Position:     1,
			QuestionText: "q",
			AnswerText:   text,
			AnsweredAt:   now,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	add(1, "Yaxshi (1 ball)")
	add(1, "Yomon (0 ball)")
	add(2, "Zo'r (2 ball)")
	add(2, "boshqa fikr")

	sum, err := NewAggregator(st).Summarize(models.SurveyTeacherEvaluation)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.Participants != 2 {
		t.Errorf("participants = %d, want 2", sum.Participants)
	}
	if sum.TotalAnswers != 4 || sum.Positive != 2 || sum.Negative != 1 || sum.Neutral != 1 {
		t.Errorf("summary wrong: %+v", sum)
	}
	if got := sum.Percent(sum.Positive); got != "50.0" {
		t.Errorf("positive percent = %s, want 50.0", got)
	}
}

func TestSummarizeEmptySurvey(t *testing.T) {
	sum, err := NewAggregator(store.NewInMemoryStore()).Summarize(models.SurveyCorruption)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sum.TotalAnswers != 0 || sum.Participants != 0 {
		t.Errorf("empty summary wrong: %+v", sum)
	}
	if got := sum.Percent(sum.Positive); got != "0" {
		t.Errorf("zero-denominator percent = %q, want \"0\"", got)
	}
}

func TestFormatSummaryLocalized(t *testing.T) {
	sum := Summary{Survey: models.SurveyCorruption, Participants: 3, TotalAnswers: 10, Positive: 6, Negative: 3, Neutral: 1}
	uz := FormatSummary(sum, models.LanguageUzbek)
	ru := FormatSummary(sum, models.LanguageRussian)
	if uz == ru {
		t.Error("summaries should be localized")
	}
	if !strings.Contains(uz, "60.0%") || !strings.Contains(uz, "30.0%") {
		t.Errorf("percentages missing from summary:\n%s", uz)
	}
	// Unsupported language falls back to Uzbek.
	if FormatSummary(sum, "en") != uz {
		t.Error("unsupported language should fall back to Uzbek")
	}
}

func TestBuildWorkbook(t *testing.T) {
	answers := []models.Answer{{
		RespondentID: 42,
		AttemptID:    "attempt-1",
		Survey:       models.SurveyCorruption,
		Position:     1,
		QuestionText: "savol",
		AnswerText:   "Yo'q",
		AnsweredAt:   time.Now(),
	}}
	data, err := BuildWorkbook(models.SurveyCorruption, answers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}
	// xlsx files are zip archives.
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Error("workbook does not look like an xlsx file")
	}
}

func TestBuildWorkbookNoAnswers(t *testing.T) {
	data, err := BuildWorkbook(models.SurveyTeacherEvaluation, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("workbook is empty")
	}
}
