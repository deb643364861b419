package apperror

import (
	"fmt"
)

type ErrorType int

const (
	// ErrorTypeUnknown is the default error type.
	ErrorTypeUnknown ErrorType = 0

	ErrorTypeInvalidCapacity ErrorType = 101
	ErrorTypeInvalidConfig   ErrorType = 102

	ErrorTypeQueueFull ErrorType = 201
	ErrorTypeClosed    ErrorType = 202
)

func (t ErrorType) String() string {
	switch t {
	case ErrorTypeUnknown:
		return "Unknown"
	case ErrorTypeInvalidCapacity:
		return "InvalidCapacity"
	case ErrorTypeInvalidConfig:
		return "InvalidConfig"
	case ErrorTypeQueueFull:
		return "QueueFull"
	case ErrorTypeClosed:
		return "Closed"
	default:
		return "Unknown"
	}
}

type AppError struct {
	Type   ErrorType
	Reason string
}

func NewAppError(t ErrorType, reason string) *AppError {
	return &AppError{
		Type:   t,
		Reason: reason,
	}
}

func (e AppError) Error() string {
	return fmt.Sprintf("ErrorType: %s, Reason: %s", e.Type, e.Reason)
}

func (e AppError) GetType() ErrorType {
	return e.Type
}

func (e AppError) Equal(err AppError) bool {
	return e.Type == err.Type
}
