package service

import "errors"

var (
	ErrInvalidRecipient    = errors.New("invalid recipient email")
	ErrMissingContextField = errors.New("missing reminder context field")
	ErrInvalidEventTime    = errors.New("invalid transport event time")
	ErrInvalidOffset       = errors.New("reminder offset must not be negative")
)
