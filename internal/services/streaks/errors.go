package streaks

// StreakError is returned for invalid service configuration
type StreakError string

// Error implements the error interface
func (e StreakError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     StreakError = "config cannot be nil"
	ErrNilStreaks    StreakError = "streaks collection cannot be nil"
	ErrInvalidPeriod StreakError = "period must be positive"
	ErrMissingUserID StreakError = "user ID cannot be empty"
)
