package errors

import "errors"

var (
	ErrAccessDenied         = errors.New("ACCESS_DENIED")
	ErrAdminReadOnly        = errors.New("ADMIN_READ_ONLY")
	ErrInvalidFormat        = errors.New("INVALID_FORMAT")
	ErrBelowMinimum         = errors.New("BELOW_MINIMUM")
	ErrExceedsMaximum       = errors.New("EXCEEDS_MAXIMUM")
	ErrInsufficientBaseline = errors.New("INSUFFICIENT_DAILY_BASELINE")
	ErrDailyLimitExceeded   = errors.New("DAILY_LIMIT_EXCEEDED")
	ErrCollaboratorDown     = errors.New("COLLABORATOR_UNAVAILABLE")
	ErrEmployeeExists       = errors.New("EMPLOYEE_EXISTS")
	ErrNotFound             = errors.New("NOT_FOUND")
	ErrUnauthorized         = errors.New("UNAUTHORIZED")
	ErrInvalidInput         = errors.New("INVALID_INPUT")
)

// DomainError представляет доменную ошибку с кодом и сообщением
type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError создает новую доменную ошибку
func NewDomainError(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
