package platform

import (
	"strings"

	golocale "github.com/jeandeaual/go-locale"
	"golang.org/x/text/language"

	"github.com/ytget/asset-standardizer/internal/model"
)

// systemLocale returns the user's locale as reported by the OS, or "" if unknown.
var systemLocale = func() string {
	loc, err := golocale.GetLocale()
	if err != nil {
		return ""
	}
	return loc
}

// DetectSystemLanguage maps the OS locale onto a supported interface language
func DetectSystemLanguage() model.Language {
	return LanguageFromLocale(systemLocale())
}

// LanguageFromLocale returns zh when the locale mentions zh, mn when it mentions mn,
// and en otherwise. The raw string is checked first; the canonical tag only adds
// matches for three letter codes such as "chi" or "mon".
func LanguageFromLocale(loc string) model.Language {
	if lang, ok := matchLanguage(strings.TrimSpace(loc)); ok {
		return lang
	}
	if lang, ok := matchLanguage(normalizeLocale(loc)); ok {
		return lang
	}
	return model.DefaultLanguage
}

func matchLanguage(loc string) (model.Language, bool) {
	switch {
	case strings.Contains(loc, "zh"):
		return model.LanguageChinese, true
	case strings.Contains(loc, "mn"):
		return model.LanguageMongolian, true
	default:
		return "", false
	}
}

// normalizeLocale turns POSIX style locales ("zh_CN.UTF-8", "mon@cyrillic") into
// canonical BCP 47 tags. Strings that do not parse are returned trimmed.
func normalizeLocale(loc string) string {
	loc = strings.TrimSpace(loc)
	if i := strings.IndexAny(loc, ".@"); i >= 0 {
		loc = loc[:i]
	}
	if loc == "" || loc == "C" || loc == "POSIX" {
		return ""
	}

	tag, err := language.Parse(strings.ReplaceAll(loc, "_", "-"))
	if err != nil {
		return loc
	}
	return tag.String()
}
