package models

import (
	"errors"
	"testing"
)

func TestCallbackRoundTrip(t *testing.T) {
	cases := []struct {
		data string
		want Callback
	}{
		{LanguageCallback(LanguageRussian), Callback{Purpose: CallbackLanguage, Language: LanguageRussian}},
		{SurveyCallback(SurveyCorruption), Callback{Purpose: CallbackSurvey, Survey: SurveyCorruption}},
		{AnswerCallback(3, 1), Callback{Purpose: CallbackAnswer, QuestionIndex: 3, OptionIndex: 1}},
		{ToggleCallback(9, 4), Callback{Purpose: CallbackToggle, QuestionIndex: 9, OptionIndex: 4}},
		{SaveCallback(12), Callback{Purpose: CallbackSave, QuestionIndex: 12}},
		{ExportCallback(SurveyTeacherEvaluation), Callback{Purpose: CallbackExport, Survey: SurveyTeacherEvaluation}},
	}
	for _, c := range cases {
		got, err := ParseCallback(c.data)
		if err != nil {
			t.Errorf("ParseCallback(%q) unexpected error: %v", c.data, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCallback(%q) = %+v, want %+v", c.data, got, c.want)
		}
	}
}

func TestParseCallbackRejectsMalformed(t *testing.T) {
	malformed := []string{
		"",
		"lang",
		"lang_",
		"lang_en",
		"ans_1",
		"ans_x_1",
		"ans_1_x",
		"ans_-1_0",
		"multi_0_-2",
		"save_x",
		"save_-1",
	}
	for _, data := range malformed {
		if _, err := ParseCallback(data); !errors.Is(err, ErrMalformedCallback) {
			t.Errorf("ParseCallback(%q) should fail with ErrMalformedCallback, got %v", data, err)
		}
	}

	if _, err := ParseCallback("survey_unknown"); !errors.Is(err, ErrUnknownSurvey) {
		t.Errorf("unknown survey should fail with ErrUnknownSurvey, got %v", err)
	}
	if _, err := ParseCallback("bogus_1"); !errors.Is(err, ErrUnknownPurpose) {
		t.Errorf("unknown purpose should fail with ErrUnknownPurpose, got %v", err)
	}
}

func TestNormalizeLanguage(t *testing.T) {
	if NormalizeLanguage("ru") != LanguageRussian {
		t.Error("supported code should pass through")
	}
	if NormalizeLanguage("en") != LanguageUzbek {
		t.Error("unsupported code should fall back to Uzbek")
	}
	if NormalizeLanguage("") != LanguageUzbek {
		t.Error("empty code should fall back to Uzbek")
	}
}

func TestTruncateLabel(t *testing.T) {
	short := "Orqaga"
	if TruncateLabel(short) != short {
		t.Error("short labels pass through")
	}

	long := make([]rune, 0, 100)
	for i := 0; i < 100; i++ {
		long = append(long, 'я')
	}
	got := TruncateLabel(string(long))
	runes := []rune(got)
	if len(runes) != MaxButtonLabelLength {
		t.Errorf("truncated length = %d runes, want %d", len(runes), MaxButtonLabelLength)
	}
	if string(runes[len(runes)-3:]) != "..." {
		t.Errorf("truncated label should end with ellipsis, got %q", got)
	}
}
