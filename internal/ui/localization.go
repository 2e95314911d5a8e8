package ui

import "github.com/ytget/asset-standardizer/internal/model"

// Localization manages UI text translations
type Localization struct {
	currentLanguage model.Language
	texts           map[model.Language]map[string]string
}

// LanguageOption pairs a language with the label shown in the selector
type LanguageOption struct {
	Code  model.Language
	Label string
}

// Text keys for localization
const (
	KeyTitle          = "title"
	KeySelectFile     = "select_file"
	KeyStart          = "start"
	KeyProgress       = "progress"
	KeySelectLanguage = "select_language"
	KeyDone           = "done"
	KeyDoneNoOpen     = "done_no_open"
	KeyOK             = "ok"
	KeySettings       = "settings"
	KeyAutoOpenFolder = "auto_open_folder"
	KeyLanguageFile   = "language_file"
	KeySave           = "save"
	KeyCancel         = "cancel"
)

// Selector labels are written in each language's own script
var languageOptions = []LanguageOption{
	{Code: model.LanguageChinese, Label: "中文"},
	{Code: model.LanguageMongolian, Label: "ᠮᠣᠩᠭᠣᠯ"},
	{Code: model.LanguageEnglish, Label: "English"},
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: model.DefaultLanguage,
		texts:           make(map[model.Language]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language; unknown languages are ignored
func (l *Localization) SetLanguage(lang model.Language) {
	if _, exists := l.texts[lang]; exists {
		l.currentLanguage = lang
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.currentLanguage]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts[model.LanguageEnglish]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Final fallback - return key itself
	return key
}

// GetTextFor returns the text for key in lang without switching languages
func (l *Localization) GetTextFor(lang model.Language, key string) string {
	if text, found := l.texts[lang][key]; found {
		return text
	}
	return key
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() model.Language {
	return l.currentLanguage
}

// GetAvailableLanguages returns the selector entries in display order
func (l *Localization) GetAvailableLanguages() []LanguageOption {
	options := make([]LanguageOption, len(languageOptions))
	copy(options, languageOptions)
	return options
}

// LabelForLanguage returns the selector label of lang
func (l *Localization) LabelForLanguage(lang model.Language) string {
	for _, opt := range languageOptions {
		if opt.Code == lang {
			return opt.Label
		}
	}
	return ""
}

// LanguageForLabel maps a selector label back to its language. Unrecognized
// labels select English.
func (l *Localization) LanguageForLabel(label string) model.Language {
	for _, opt := range languageOptions {
		if opt.Label == label {
			return opt.Code
		}
	}
	return model.LanguageEnglish
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// Chinese texts
	l.texts[model.LanguageChinese] = map[string]string{
		KeyTitle:          "固定资产文件标准化处理工具",
		KeySelectFile:     "选择文件",
		KeyStart:          "开始处理",
		KeyProgress:       "处理进度",
		KeySelectLanguage: "语言",
		KeyDone:           "处理完成！已打开文件所在目录。",
		KeyDoneNoOpen:     "处理完成！",
		KeyOK:             "确定",
		KeySettings:       "设置",
		KeyAutoOpenFolder: "处理完成后打开文件所在目录",
		KeyLanguageFile:   "语言设置文件",
		KeySave:           "保存",
		KeyCancel:         "取消",
	}

	// Mongolian texts
	l.texts[model.LanguageMongolian] = map[string]string{
		KeyTitle:          "Бэлэгтийн бэлэгт файлын стандартизэлтийн бэлэглэх хэрэгсэл",
		KeySelectFile:     "Файл сонгох",
		KeyStart:          "Боловсруулж эхлэх",
		KeyProgress:       "Явц",
		KeySelectLanguage: "Хэл",
		KeyDone:           "Боловсруулалт дууслаа! Файлын хавтас нээгдлээ。",
		KeyDoneNoOpen:     "Боловсруулалт дууслаа!",
		KeyOK:             "За",
		KeySettings:       "Тохиргоо",
		KeyAutoOpenFolder: "Дууссаны дараа файлын хавтсыг нээх",
		KeyLanguageFile:   "Хэлний тохиргооны файл",
		KeySave:           "Хадгалах",
		KeyCancel:         "Цуцлах",
	}

	// English texts
	l.texts[model.LanguageEnglish] = map[string]string{
		KeyTitle:          "Fixed Asset File Standardization Tool",
		KeySelectFile:     "Select File",
		KeyStart:          "Start Processing",
		KeyProgress:       "Progress",
		KeySelectLanguage: "Language",
		KeyDone:           "Processing complete! Folder opened.",
		KeyDoneNoOpen:     "Processing complete!",
		KeyOK:             "OK",
		KeySettings:       "Settings",
		KeyAutoOpenFolder: "Open the containing folder when processing completes",
		KeyLanguageFile:   "Language file",
		KeySave:           "Save",
		KeyCancel:         "Cancel",
	}
}
