package i18n

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// LangParam is the query parameter used to select a language.
	LangParam = "lang"
	// LangCookieName stores the visitor's language preference.
	LangCookieName = "portal_lang"
)

// Option is one entry of the language switcher.
type Option struct {
	Locale Locale `json:"locale"`
	Label  string `json:"label"`
	Dir    string `json:"dir"`
	URL    string `json:"url"`
	Active bool   `json:"active"`
}

// Resolve determines the locale of a request: query param, then cookie, then Accept-Language,
// then fallback. The bool reports whether the query param chose it and should be persisted.
func Resolve(r *http.Request, fallback Locale) (Locale, bool) {
	if r == nil {
		return fallback, false
	}

	if l, ok := Parse(r.URL.Query().Get(LangParam)); ok {
		return l, true
	}

	if cookie, err := r.Cookie(LangCookieName); err == nil {
		if l, ok := Parse(cookie.Value); ok {
			return l, false
		}
	}

	if accept := strings.TrimSpace(r.Header.Get("Accept-Language")); accept != "" {
		if tags, _, err := language.ParseAcceptLanguage(accept); err == nil {
			return matchTags(tags, fallback), false
		}
	}

	return fallback, false
}

func SetCookie(w http.ResponseWriter, l Locale) {
	http.SetCookie(w, &http.Cookie{
		Name:     LangCookieName,
		Value:    l.String(),
		Path:     "/",
		MaxAge:   int((365 * 24 * time.Hour).Seconds()),
		SameSite: http.SameSiteLaxMode,
	})
}

// LanguageURL returns path with the lang param set to l, keeping the rest of the query.
func LanguageURL(path, rawQuery string, l Locale) string {
	path = strings.TrimSpace(path)
	if path == "" {
		path = "/"
	}

	query, err := url.ParseQuery(rawQuery)
	if err != nil {
		query = url.Values{}
	}

	query.Set(LangParam, l.String())

	return (&url.URL{Path: path, RawQuery: query.Encode()}).String()
}

func Options(active Locale, path, rawQuery string) []Option {
	options := make([]Option, 0, len(Supported()))

	for _, l := range Supported() {
		options = append(options, Option{
			Locale: l,
			Label:  l.T("العربية", "English"),
			Dir:    l.Dir(),
			URL:    LanguageURL(path, rawQuery, l),
			Active: l == active,
		})
	}

	return options
}
