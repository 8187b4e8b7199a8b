package activity

// ActivityError is returned for invalid publisher configuration
type ActivityError string

// Error implements the error interface
func (e ActivityError) Error() string {
	return string(e)
}

const (
	ErrNilConfig ActivityError = "config cannot be nil"
	ErrNilClient ActivityError = "rueidis client cannot be nil"
)
