package entity

import "errors"

var (
	ErrNotFound             = errors.New("not found")
	ErrNetworkUnavailable   = errors.New("network unavailable")
	ErrIncorrectRequestBody = errors.New("incorrect request body")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrForbidden            = errors.New("forbidden")
	ErrAlreadyExists        = errors.New("already exists")

	ErrNameInvalidLen     = errors.New("name must be between 2 and 100 characters")
	ErrEmailInvalidFormat = errors.New("invalid email format")
	ErrPhoneInvalidFormat = errors.New("invalid phone format")
	ErrMessageRequired    = errors.New("message is required")
	ErrUnknownProgram     = errors.New("unknown program")
	ErrInvalidInquiryKind = errors.New("invalid inquiry kind")
	ErrChatTextInvalidLen = errors.New("chat message must be between 1 and 1000 characters")
	ErrInvalidRole        = errors.New("invalid role")
)

// IsValidationErr reports whether err is one of the input validation errors.
func IsValidationErr(err error) bool {
	for _, target := range []error{
		ErrNameInvalidLen,
		ErrEmailInvalidFormat,
		ErrPhoneInvalidFormat,
		ErrMessageRequired,
		ErrUnknownProgram,
		ErrInvalidInquiryKind,
		ErrChatTextInvalidLen,
		ErrInvalidRole,
	} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}
