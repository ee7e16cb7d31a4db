package catalog

import (
	"fmt"

	"github.com/akobirdev/surveybot/internal/models"
)

// localized maps one string to its three language variants. Lookup falls
// back to Uzbek, mirroring the question catalog.
type localized map[models.Language]string

func (l localized) For(lang models.Language) string {
	if s, ok := l[models.NormalizeLanguage(lang)]; ok {
		return s
	}
	return l[models.LanguageUzbek]
}

// Greeting returns the language-selection greeting shown on /start.
func Greeting(firstName, lastName string) string {
	if firstName != "" {
		name := firstName
		if lastName != "" {
			name += " " + lastName
		}
		return "Iltimos, tilni tanlang " + name + "!\n\n" +
			"Пожалуйста, выберите язык " + name + "!\n\n" +
			"Tildi tańlań " + name + "!"
	}
	return "Assalomu alaykum! Iltimos, tilni tanlang:\n\n" +
		"Здравствуйте! Пожалуйста, выберите язык:\n\n" +
		"Sálem! Tildi tańlań:"
}

// LanguageLabel is the display label for a language button.
func LanguageLabel(lang models.Language) string {
	switch lang {
	case models.LanguageRussian:
		return "🇷🇺 Русский"
	case models.LanguageKarakalpak:
		return "Qaraqalpaq"
	default:
		return "🇺🇿 O'zbek"
	}
}

// SurveyLabel is the display label for a questionnaire button.
func SurveyLabel(survey models.SurveyID, lang models.Language) string {
	switch survey {
	case models.SurveyCorruption:
		return "📝 " + localized{
			models.LanguageUzbek:      "Korrupsiya so'rovnomasi",
			models.LanguageRussian:    "Опрос о коррупции",
			models.LanguageKarakalpak: "Korrupsiya sorawnomasi",
		}.For(lang)
	case models.SurveyTeacherEvaluation:
		return "📊 " + localized{
			models.LanguageUzbek:      "O'qituvchilarni baholash",
			models.LanguageRussian:    "Оценка преподавателей",
			models.LanguageKarakalpak: "Oqıtıwshılardı bahalaw",
		}.For(lang)
	default:
		return "📋 " + localized{
			models.LanguageUzbek:      "So'rovnoma",
			models.LanguageRussian:    "Опрос",
			models.LanguageKarakalpak: "Sorawnoma",
		}.For(lang)
	}
}

var phoneRequest = localized{
	models.LanguageUzbek:      "Ro'yxatdan o'tish uchun telefon raqamingizni yuboring:",
	models.LanguageRussian:    "Для регистрации отправьте свой номер телефона:",
	models.LanguageKarakalpak: "Dizimnen ótiw ushın telefon nomerinizdi jiberiń:",
}

var phoneButton = localized{
	models.LanguageUzbek:      "📱 Telefon raqamni yuborish",
	models.LanguageRussian:    "📱 Отправить номер телефона",
	models.LanguageKarakalpak: "📱 Telefon nomerin jiberiw",
}

var backButton = localized{
	models.LanguageUzbek:      "🔙 Orqaga",
	models.LanguageRussian:    "🔙 Назад",
	models.LanguageKarakalpak: "🔙 Артқa",
}

var registrationDone = localized{
	models.LanguageUzbek:      "Ro'yxatdan o'tish muvaffaqiyatli! Endi so'rovnomani tanlang:",
	models.LanguageRussian:    "Регистрация успешна! Теперь выберите опрос:",
	models.LanguageKarakalpak: "Dizimnen ótiw tabıslı! Endi sorawnomanı tańlań:",
}

var chooseSurvey = localized{
	models.LanguageUzbek:      "So'rovnomani tanlang:",
	models.LanguageRussian:    "Выберите опрос:",
	models.LanguageKarakalpak: "Sorawnomanı tańlań:",
}

var cancelButton = localized{
	models.LanguageUzbek:      "🛑 So'rovnomani tugatish",
	models.LanguageRussian:    "🛑 Завершить опрос",
	models.LanguageKarakalpak: "🛑 Sorawnomanı tamamlaw",
}

var surveyCancelled = localized{
	models.LanguageUzbek:      "So'rovnoma bekor qilindi.",
	models.LanguageRussian:    "Опрос отменен.",
	models.LanguageKarakalpak: "Sorawnoma biykar etildi.",
}

var surveyCompleted = localized{
	models.LanguageUzbek:      "Yakunlandi!",
	models.LanguageRussian:    "Завершенный!",
	models.LanguageKarakalpak: "Juwmaqlandı!",
}

var thankYou = localized{
	models.LanguageUzbek:      "So'rovnomani to'ldirib, vaqtingizni ajratganingiz uchun katta rahmat! Sizning fikringiz biz uchun juda muhim.",
	models.LanguageRussian:    "Большое спасибо за то, что заполнили опрос и уделили свое время! Ваше мнение очень важно для нас.",
	models.LanguageKarakalpak: "Sorawnomanı toltırıp, waqtınızdı ajıratqanınız ushın úlken raxmet! Sizin pikiriiniz biz ushın júdá mańızlı.",
}

var writeAnswer = localized{
	models.LanguageUzbek:      "💬 Javobingizni yozing:",
	models.LanguageRussian:    "💬 Напишите свой ответ:",
	models.LanguageKarakalpak: "💬 Juwabıńızdı jazıń:",
}

var multiSelectHint = localized{
	models.LanguageUzbek:      "📌 Bir nechta javobni tanlashingiz mumkin:",
	models.LanguageRussian:    "📌 Можно выбрать несколько ответов:",
	models.LanguageKarakalpak: "📌 Bir neshe juwaptı saylawıńız múmkin:",
}

var multiSaveButton = localized{
	models.LanguageUzbek:      "✅ Saqlash va davom etish",
	models.LanguageRussian:    "✅ Сохранить и продолжить",
	models.LanguageKarakalpak: "✅ Saqlaw hám dawam etiw",
}

var multiSaveEmptyButton = localized{
	models.LanguageUzbek:      "⚠️ Kamida bitta javobni tanlang",
	models.LanguageRussian:    "⚠️ Выберите хотя бы один ответ",
	models.LanguageKarakalpak: "⚠️ Keminde bir juwaptı saylań",
}

var writeFailed = localized{
	models.LanguageUzbek:      "⚠️ Xatolik yuz berdi, javob saqlanmadi. Iltimos, qayta urinib ko'ring.",
	models.LanguageRussian:    "⚠️ Произошла ошибка, ответ не сохранен. Пожалуйста, попробуйте еще раз.",
	models.LanguageKarakalpak: "⚠️ Qátelik júz berdi, juwap saqlanbadı. Ótinish, qaytadan urınıp kóriń.",
}

var adminPanelTitle = localized{
	models.LanguageUzbek:      "Admin Panel\n\nTanlang:",
	models.LanguageRussian:    "Панель администратора\n\nВыберите:",
	models.LanguageKarakalpak: "Admin Panel\n\nSaylań:",
}

var adminParticipate = localized{
	models.LanguageUzbek:      "✍️ So'rovnomada qatnashish",
	models.LanguageRussian:    "✍️ Примите участие в опросе",
	models.LanguageKarakalpak: "✍️ So‘rawnamada qatnasıw",
}

var adminStats = localized{
	models.LanguageUzbek:      "📈 Statistikani ko'rish",
	models.LanguageRussian:    "📈 Просмотреть статистику",
	models.LanguageKarakalpak: "📈 Statistikanı kóriw",
}

var adminManage = localized{
	models.LanguageUzbek:      "👥 Adminlarni boshqarish",
	models.LanguageRussian:    "👥 Управление администраторами",
	models.LanguageKarakalpak: "👥 Adminlerdi basqarıw",
}

var adminStatsPicker = localized{
	models.LanguageUzbek:      "Admin Panel - Statistika\n\nSo'rovnomani tanlang:",
	models.LanguageRussian:    "Панель администратора - Статистика\n\nВыберите опрос:",
	models.LanguageKarakalpak: "Admin Panel – Statistika\n\nSo‘rawnamanı saylań:",
}

var adminParticipatePicker = localized{
	models.LanguageUzbek:      "Admin Panel - Qatnashish\n\nSo'rovnomani tanlang:",
	models.LanguageRussian:    "Панель администратора - Участие\n\nВыберите опрос:",
	models.LanguageKarakalpak: "Admin Panel – Qatnasıw\n\nSo‘rawnamanı saylań:",
}

var adminAddButton = localized{
	models.LanguageUzbek:      "➕ Admin qo'shish",
	models.LanguageRussian:    "➕ Добавить администратора",
	models.LanguageKarakalpak: "➕ Admin qosıw",
}

var adminRemoveButton = localized{
	models.LanguageUzbek:      "➖ Adminni o'chirish",
	models.LanguageRussian:    "➖ Удалить администратора",
	models.LanguageKarakalpak: "➖ Admindi óshiriw",
}

var adminListButton = localized{
	models.LanguageUzbek:      "📋 Adminlar ro'yxati",
	models.LanguageRussian:    "📋 Список администраторов",
	models.LanguageKarakalpak: "📋 Adminler dizimi",
}

var adminIDPrompt = localized{
	models.LanguageUzbek:      "Yangi adminning Telegram ID raqamini yuboring (9-10 xonali son):",
	models.LanguageRussian:    "Отправьте Telegram ID нового администратора (число из 9-10 цифр):",
	models.LanguageKarakalpak: "Jańa adminniń Telegram ID nomerin jiberiń (9-10 sanlı):",
}

var adminIDInvalid = localized{
	models.LanguageUzbek:      "⚠️ Noto'g'ri ID. 9-10 xonali son yuboring:",
	models.LanguageRussian:    "⚠️ Неверный ID. Отправьте число из 9-10 цифр:",
	models.LanguageKarakalpak: "⚠️ Qáte ID. 9-10 sanlı nomer jiberiń:",
}

var adminAdded = localized{
	models.LanguageUzbek:      "✅ Yangi admin qo'shildi.",
	models.LanguageRussian:    "✅ Новый администратор добавлен.",
	models.LanguageKarakalpak: "✅ Jańa admin qosıldı.",
}

var adminAlready = localized{
	models.LanguageUzbek:      "ℹ️ Bu ID allaqachon admin.",
	models.LanguageRussian:    "ℹ️ Этот ID уже является администратором.",
	models.LanguageKarakalpak: "ℹ️ Bul ID áldennen admin.",
}

var adminRemoved = localized{
	models.LanguageUzbek:      "✅ Admin o'chirildi.",
	models.LanguageRussian:    "✅ Администратор удален.",
	models.LanguageKarakalpak: "✅ Admin óshirildi.",
}

var adminNotFound = localized{
	models.LanguageUzbek:      "⚠️ Bunday admin topilmadi.",
	models.LanguageRussian:    "⚠️ Такой администратор не найден.",
	models.LanguageKarakalpak: "⚠️ Bunday admin tabılmadı.",
}

var exportButton = localized{
	models.LanguageUzbek:      "📥 Excel yuklab olish",
	models.LanguageRussian:    "📥 Скачать Excel",
	models.LanguageKarakalpak: "📥 Excel júklep alıw",
}

var exportFailed = localized{
	models.LanguageUzbek:      "❌ Eksport qilishda xatolik yuz berdi!",
	models.LanguageRussian:    "❌ Ошибка при экспорте!",
	models.LanguageKarakalpak: "❌ Eksportta qátelik júz berdi!",
}

var statsFailed = localized{
	models.LanguageUzbek:      "❌ Statistikani yuklashda xatolik yuz berdi!",
	models.LanguageRussian:    "❌ Ошибка при загрузке статистики!",
	models.LanguageKarakalpak: "❌ Statistikanı júklewde qátelik júz berdi!",
}

// Exported accessors. Each takes the respondent language and resolves
// with the Uzbek fallback.

func PhoneRequest(lang models.Language) string      { return phoneRequest.For(lang) }
func PhoneButton(lang models.Language) string       { return phoneButton.For(lang) }
func BackButton(lang models.Language) string        { return backButton.For(lang) }
func RegistrationDone(lang models.Language) string  { return registrationDone.For(lang) }
func ChooseSurvey(lang models.Language) string      { return chooseSurvey.For(lang) }
func CancelButton(lang models.Language) string      { return cancelButton.For(lang) }
func SurveyCancelled(lang models.Language) string   { return surveyCancelled.For(lang) }
func SurveyCompleted(lang models.Language) string   { return surveyCompleted.For(lang) }
func ThankYou(lang models.Language) string          { return thankYou.For(lang) }
func WriteAnswer(lang models.Language) string       { return writeAnswer.For(lang) }
func MultiSelectHint(lang models.Language) string   { return multiSelectHint.For(lang) }
func MultiSaveButton(lang models.Language) string   { return multiSaveButton.For(lang) }
func MultiSaveEmpty(lang models.Language) string    { return multiSaveEmptyButton.For(lang) }
func WriteFailed(lang models.Language) string       { return writeFailed.For(lang) }
func AdminPanelTitle(lang models.Language) string   { return adminPanelTitle.For(lang) }
func AdminParticipate(lang models.Language) string  { return adminParticipate.For(lang) }
func AdminStats(lang models.Language) string        { return adminStats.For(lang) }
func AdminManage(lang models.Language) string       { return adminManage.For(lang) }
func AdminStatsPicker(lang models.Language) string  { return adminStatsPicker.For(lang) }
func AdminPartPicker(lang models.Language) string   { return adminParticipatePicker.For(lang) }
func AdminAddButton(lang models.Language) string    { return adminAddButton.For(lang) }
func AdminRemoveButton(lang models.Language) string { return adminRemoveButton.For(lang) }
func AdminListButton(lang models.Language) string   { return adminListButton.For(lang) }
func AdminIDPrompt(lang models.Language) string     { return adminIDPrompt.For(lang) }
func AdminIDInvalid(lang models.Language) string    { return adminIDInvalid.For(lang) }
func AdminAdded(lang models.Language) string        { return adminAdded.For(lang) }
func AdminAlready(lang models.Language) string      { return adminAlready.For(lang) }
func AdminRemoved(lang models.Language) string      { return adminRemoved.For(lang) }
func AdminNotFound(lang models.Language) string     { return adminNotFound.For(lang) }
func ExportButton(lang models.Language) string      { return exportButton.For(lang) }
func ExportFailed(lang models.Language) string      { return exportFailed.For(lang) }
func StatsFailed(lang models.Language) string       { return statsFailed.For(lang) }

// QuestionHeader renders the "❓ Savol N/M" line that precedes each
// question body.
func QuestionHeader(n, total int, lang models.Language) string {
	word := localized{
		models.LanguageUzbek:      "Savol",
		models.LanguageRussian:    "Вопрос",
		models.LanguageKarakalpak: "Sawal",
	}.For(lang)
	return fmt.Sprintf("❓ %s %d/%d", word, n, total)
}
