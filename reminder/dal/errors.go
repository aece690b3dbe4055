package dal

import "errors"

var (
	ErrInvalidKind           = errors.New("reminder kind is not valid")
	ErrUndefinedReminderID   = errors.New("reminder id cannot be empty")
	ErrUndefinedCompanyID    = errors.New("company id cannot be empty")
	ErrUndefinedSourceID     = errors.New("source entity id cannot be empty")
	ErrReminderNotFound      = errors.New("reminder not found")
	ErrCompanyNotFound       = errors.New("company not found")
	ErrMetricsNotFound       = errors.New("daily metrics not found")
	ErrUndefinedDay          = errors.New("day key cannot be empty")
	ErrUndefinedCounterField = errors.New("counter field cannot be empty")
)
