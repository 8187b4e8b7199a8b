package accounts

import "github.com/KirkDiggler/moodmeet/internal/common/apperrors"

// AccountsError is returned for invalid service configuration
type AccountsError string

// Error implements the error interface
func (e AccountsError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        AccountsError = "config cannot be nil"
	ErrNilUsers         AccountsError = "users collection cannot be nil"
	ErrNilUUIDGenerator AccountsError = "UUID generator cannot be nil"
)

var (
	ErrUserNotFound       = apperrors.NotFound("user not found")
	ErrUsernameTaken      = apperrors.Conflict("username already taken")
	ErrInvalidCredentials = apperrors.Unauthenticated("username or password is incorrect")
	ErrWrongPassword      = apperrors.Unauthenticated("current password is incorrect")
	ErrUsernameRequired   = apperrors.Invalid("username cannot be empty")
	ErrPasswordRequired   = apperrors.Invalid("password cannot be empty")
	ErrUsernameTooLong    = apperrors.Invalid("username cannot be longer than 32 characters")
	ErrPasswordTooLong    = apperrors.Invalid("password cannot be longer than %d bytes", maxPasswordBytes)
)
