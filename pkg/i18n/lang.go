package i18n

import (
	"fmt"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no default is configured.
const DefaultLanguage = "en"

// NormalizeLanguage returns the canonical BCP 47 form of lang ("en-us" -> "en-US").
func NormalizeLanguage(lang string) (string, error) {
	tag, err := language.Parse(lang)
	if err != nil {
		return "", fmt.Errorf("%w %q: %v", ErrInvalidLanguageTag, lang, err)
	}
	return tag.String(), nil
}

// baseLanguage returns the primary subtag of a canonical tag ("en-US" -> "en").
func baseLanguage(lang string) string {
	tag, err := language.Parse(lang)
	if err != nil {
		return lang
	}
	base, _ := tag.Base()
	return base.String()
}
