// Package catalog holds the static, read-only questionnaire definitions
// and the localized interface strings the bot renders.
//
// Question content is configuration data: it is never persisted
// per-respondent, only the resolved text is copied into answer records.
package catalog

import (
	"github.com/akobirdev/surveybot/internal/models"
)

// Question is one immutable questionnaire entry.
type Question struct {
	Text          string
	Options       []string
	AllowMultiple bool
	RequireText   bool
	MaxScore      int // display annotation for scored questionnaires, 0 if unscored
}

// Questions returns the ordered question list for a questionnaire in the
// given language. The corruption survey exists only in Uzbek; the teacher
// evaluation falls back to Uzbek for unsupported codes. There is no error
// path: absence of a language match resolves to the default variant.
func Questions(survey models.SurveyID, lang models.Language) []Question {
	switch survey {
	case models.SurveyCorruption:
		return corruptionUz
	case models.SurveyTeacherEvaluation:
		switch models.NormalizeLanguage(lang) {
		case models.LanguageRussian:
			return teacherEvaluationRu
		case models.LanguageKarakalpak:
			return teacherEvaluationKk
		default:
			return teacherEvaluationUz
		}
	default:
		return nil
	}
}

// Surveys lists the questionnaires offered for a language. The corruption
// survey is offered only to Uzbek-language respondents.
func Surveys(lang models.Language) []models.SurveyID {
	if models.NormalizeLanguage(lang) == models.LanguageUzbek {
		return []models.SurveyID{models.SurveyTeacherEvaluation, models.SurveyCorruption}
	}
	return []models.SurveyID{models.SurveyTeacherEvaluation}
}
