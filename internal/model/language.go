package model

import "strings"

// Language is an interface language code
type Language string

const (
	LanguageChinese   Language = "zh"
	LanguageMongolian Language = "mn"
	LanguageEnglish   Language = "en"
)

// DefaultLanguage is used when nothing else can be determined
const DefaultLanguage = LanguageEnglish

// Languages lists supported languages in selector order
var Languages = []Language{LanguageChinese, LanguageMongolian, LanguageEnglish}

// String returns the language code
func (l Language) String() string {
	return string(l)
}

// IsValid reports whether l is one of the supported languages
func (l Language) IsValid() bool {
	for _, lang := range Languages {
		if l == lang {
			return true
		}
	}
	return false
}

// ParseLanguage returns the language for code. Surrounding whitespace is ignored;
// anything outside the supported set is rejected.
func ParseLanguage(code string) (Language, bool) {
	lang := Language(strings.TrimSpace(code))
	if !lang.IsValid() {
		return "", false
	}
	return lang, true
}
