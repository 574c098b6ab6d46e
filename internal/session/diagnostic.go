package session

import "fmt"

// Kind is the outcome a Diagnostic reports.
type Kind int

const (
	Declared Kind = iota
	GrammarError
	DuplicateOrInvalid
	ValidExpression
	UndeclaredVariable
)

var kindNames = map[Kind]string{
	Declared:           "declared",
	GrammarError:       "grammar_error",
	DuplicateOrInvalid: "duplicate_or_invalid",
	ValidExpression:    "valid",
	UndeclaredVariable: "undeclared",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(text []byte) error {
	for kind, name := range kindNames {
		if name == string(text) {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown diagnostic kind %q", text)
}

// Failed reports whether k describes a rejected line.
func (k Kind) Failed() bool {
	return k != Declared && k != ValidExpression
}

// Diagnostic is the message produced for one processed line.
type Diagnostic struct {
	Kind Kind `json:"kind"`
	// Subject is the variable the diagnostic is about, if any.
	Subject string `json:"subject,omitempty"`
	Message string `json:"message"`
	// Detail precedes Message when the literal was invalid for its base.
	Detail string `json:"detail,omitempty"`
	Err    error  `json:"-"`
}

func declaredMsg(name string) string {
	return fmt.Sprintf("Variable %s declared successfully.", name)
}

func grammarMsg() string {
	return "Error: grammar error in variable declaration."
}

func duplicateOrInvalidMsg(name string) string {
	return fmt.Sprintf("Error: variable %s was already declared or has an invalid value.", name)
}

func invalidValueMsg(value string, base fmt.Stringer) string {
	return fmt.Sprintf("Error: value '%s' is not valid for type %s.", value, base)
}

func validExpressionMsg() string {
	return "Expression is valid."
}

func undeclaredMsg(name string) string {
	return fmt.Sprintf("Error: variable %s was not declared.", name)
}
