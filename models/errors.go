package models

// ErrorInvalidInput is returned when a request fails shape checks: a malformed
// id, a missing required field or a failed validation rule.
type ErrorInvalidInput struct {
	Message string
	// Fields maps a json field name to its validation messages. May be nil.
	Fields map[string][]string
	Inner  error
}

func (e *ErrorInvalidInput) Error() string {
	return e.Message
}

func (e *ErrorInvalidInput) Unwrap() error {
	return e.Inner
}

// ErrorNotFound is returned when no record matches the lookup.
type ErrorNotFound struct {
	Resource string
	Search   string
}

func (e *ErrorNotFound) Error() string {
	if e.Search == "" {
		return e.Resource + " not found"
	}
	return e.Resource + " not found: " + e.Search
}

// ErrorConflict is returned when a write violates a unique constraint.
type ErrorConflict struct {
	Resource string
	Inner    error
}

func (e *ErrorConflict) Error() string {
	return e.Resource + " already exists"
}

func (e *ErrorConflict) Unwrap() error {
	return e.Inner
}

// ErrorStore wraps any other persistence failure.
type ErrorStore struct {
	Operation string
	Inner     error
}

func (e *ErrorStore) Error() string {
	return "database operation failed: " + e.Operation + ": " + e.Inner.Error()
}

func (e *ErrorStore) Unwrap() error {
	return e.Inner
}

func NewInvalidInput(message string) error {
	return &ErrorInvalidInput{Message: message}
}

func NewNotFound(resource, search string) error {
	return &ErrorNotFound{Resource: resource, Search: search}
}
