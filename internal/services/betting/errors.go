package betting

// ServiceError is a configuration error returned by New
type ServiceError string

// Error implements the error interface
func (e ServiceError) Error() string {
	return string(e)
}

const (
	ErrNilConfig        ServiceError = "config cannot be nil"
	ErrNilGroupRepo     ServiceError = "group repository cannot be nil"
	ErrNilPublisher     ServiceError = "event publisher cannot be nil"
	ErrNilClock         ServiceError = "clock cannot be nil"
	ErrNilUUIDGenerator ServiceError = "UUID generator cannot be nil"
)
