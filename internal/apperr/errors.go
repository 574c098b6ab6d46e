package apperr

type ValidationError struct {
	Message string
	// Subject is the identifier or literal the error is about, if any.
	Subject string
	Err     error
}

func (e *ValidationError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

func NewValidation(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}

func NewValidationWrap(msg string, err error) *ValidationError {
	return &ValidationError{Message: msg, Err: err}
}

func NewSubjectWrap(msg, subject string, err error) *ValidationError {
	return &ValidationError{Message: msg, Subject: subject, Err: err}
}

var (
	ErrGrammar      = NewValidation("grammar error")
	ErrDuplicate    = NewValidation("duplicate declaration")
	ErrInvalidValue = NewValidation("invalid value for base")
	ErrUndeclared   = NewValidation("undeclared variable")
)
