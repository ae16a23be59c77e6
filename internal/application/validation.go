package application

// ValidationResult is the outcome of a request validator: a pass/fail flag
// plus an ordered list of human-readable error messages. Passed implies an
// empty error list; a failed result carries at least one message.
type ValidationResult struct {
	Passed bool
	Errors []string
}

// NewValidationResult creates a ValidationResult with the given outcome and
// optional initial error messages.
func NewValidationResult(passed bool, errors ...string) ValidationResult {
	return ValidationResult{Passed: passed, Errors: errors}
}

// AddError appends an error message and marks the result as failed.
func (r *ValidationResult) AddError(message string) {
	r.Passed = false
	r.Errors = append(r.Errors, message)
}

// FirstError returns the first recorded error message, or "" if none.
func (r ValidationResult) FirstError() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0]
}
