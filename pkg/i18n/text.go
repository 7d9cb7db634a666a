package i18n

import "strings"

// Text is a bilingual field pair.
type Text struct {
	Ar string `json:"ar" yaml:"ar"`
	En string `json:"en" yaml:"en"`
}

func (t Text) In(l Locale) string {
	return l.T(t.Ar, t.En)
}

func (t Text) IsZero() bool {
	return t.Ar == "" && t.En == ""
}

// ContainsFold reports whether either half contains query, ignoring case.
// query is expected to be lower-cased already.
func (t Text) ContainsFold(query string) bool {
	return strings.Contains(strings.ToLower(t.Ar), query) ||
		strings.Contains(strings.ToLower(t.En), query)
}
