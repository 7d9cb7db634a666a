package service

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/samandr77/microservices/portal/internal/entity"
)

const (
	EmailMaxLen   = 255
	NameMinLen    = 2
	NameMaxLen    = 100
	ChatMaxLen    = 1000
	MessageMaxLen = 5000
)

var (
	emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	phoneRegexp = regexp.MustCompile(`^\+?[0-9][0-9 -]{6,18}[0-9]$`)
)

func ValidateEmail(email string) error {
	if len(email) > EmailMaxLen || !emailRegexp.MatchString(email) || strings.Contains(email, "..") {
		return entity.ErrEmailInvalidFormat
	}

	return nil
}

func ValidateName(name string) error {
	nameLen := utf8.RuneCountInString(name)
	if nameLen < NameMinLen || nameLen > NameMaxLen {
		return entity.ErrNameInvalidLen
	}

	return nil
}

// ValidatePhone accepts an empty phone, the field is optional on every form.
func ValidatePhone(phone string) error {
	if phone == "" {
		return nil
	}

	if !phoneRegexp.MatchString(phone) {
		return entity.ErrPhoneInvalidFormat
	}

	return nil
}

func ValidateChatText(text string) error {
	textLen := utf8.RuneCountInString(text)
	if textLen == 0 || textLen > ChatMaxLen {
		return entity.ErrChatTextInvalidLen
	}

	return nil
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
