package i18n

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Both locales print Western digits grouped by commas, as dates do.
var digits = message.NewPrinter(language.English)

// FormatAmount renders a whole-unit money amount with digit grouping and the locale's currency label.
func (c *Catalog) FormatAmount(l Locale, amount decimal.Decimal, currency string) string {
	return digits.Sprintf("%d", amount.Round(0).IntPart()) + " " + c.Message(l, "currency."+currency)
}

// FormatDate renders a calendar date with the locale's month name and Western digits.
func FormatDate(l Locale, t time.Time) string {
	if t.IsZero() {
		return ""
	}

	month := monthNames[t.Month()-1]

	return fmt.Sprintf("%d %s %d", t.Day(), month.In(l), t.Year())
}

var monthNames = [12]Text{
	{Ar: "يناير", En: "January"},
	{Ar: "فبراير", En: "February"},
	{Ar: "مارس", En: "March"},
	{Ar: "أبريل", En: "April"},
	{Ar: "مايو", En: "May"},
	{Ar: "يونيو", En: "June"},
	{Ar: "يوليو", En: "July"},
	{Ar: "أغسطس", En: "August"},
	{Ar: "سبتمبر", En: "September"},
	{Ar: "أكتوبر", En: "October"},
	{Ar: "نوفمبر", En: "November"},
	{Ar: "ديسمبر", En: "December"},
}
