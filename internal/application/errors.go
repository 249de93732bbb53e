package application

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common conditions
var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidCatalog  = errors.New("invalid catalog")
	ErrInvalidCriteria = errors.New("invalid criteria")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError is returned when no questionnaire has the requested abbreviation
type NotFoundError struct {
	Short       string
	Suggestions []string
}

func (e *NotFoundError) Error() string {
	msg := fmt.Sprintf("questionnaire %q not found", e.Short)
	if len(e.Suggestions) > 0 {
		msg += fmt.Sprintf(" (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return msg
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// CriteriaError marks a user-supplied filter value as unusable
type CriteriaError struct {
	Field string
	Value string
	Err   error
}

func (e *CriteriaError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *CriteriaError) Is(target error) bool {
	return target == ErrInvalidCriteria
}

func (e *CriteriaError) Unwrap() error {
	return e.Err
}
