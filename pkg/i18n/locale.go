// Package i18n holds the bilingual conventions of the portal: the locale flag, bilingual field
// pairs, request locale resolution and the UI message catalog.
package i18n

import (
	"strings"

	"golang.org/x/text/language"
)

type Locale string

const (
	Arabic  Locale = "ar"
	English Locale = "en"
)

var (
	supportedTags = []language.Tag{language.Arabic, language.English}
	matcher       = language.NewMatcher(supportedTags)
)

// Supported returns the locales in switcher order.
func Supported() []Locale {
	return []Locale{Arabic, English}
}

// Parse accepts bare codes and full tags ("ar", "EN", "ar-SA", "en-US").
func Parse(value string) (Locale, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}

	tag, err := language.Parse(value)
	if err != nil {
		return "", false
	}

	base, _ := tag.Base()

	switch base.String() {
	case string(Arabic):
		return Arabic, true
	case string(English):
		return English, true
	}

	return "", false
}

// MustParse is Parse for trusted values such as validated config; unknown values yield Arabic.
func MustParse(value string) Locale {
	if l, ok := Parse(value); ok {
		return l
	}

	return Arabic
}

// T picks the half of a bilingual pair that matches the locale.
func (l Locale) T(ar, en string) string {
	if l == English {
		return en
	}

	return ar
}

// Dir is the text direction the locale renders with.
func (l Locale) Dir() string {
	return l.T("rtl", "ltr")
}

func (l Locale) String() string {
	return string(l)
}

// Other returns the opposite locale, used for catalog fallbacks and language switchers.
func (l Locale) Other() Locale {
	if l == English {
		return Arabic
	}

	return English
}

func matchTags(tags []language.Tag, fallback Locale) Locale {
	if len(tags) == 0 {
		return fallback
	}

	_, idx, confidence := matcher.Match(tags...)
	if confidence == language.No {
		return fallback
	}

	if supportedTags[idx] == language.English {
		return English
	}

	return Arabic
}
