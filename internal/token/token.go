package token

type Type int

const (
	EOF Type = iota
	PLUS
	MINUS
	MULTIPLY
	DIVIDE
	LPAREN
	RPAREN
	SEMICOLON
	BIN
	OCT
	HEX
	ID
	BINARY_NUMBER
	OCTAL_NUMBER
	HEXADECIMAL_NUMBER
	INVALID
)

func (t Type) String() string {
	switch t {
	case EOF:
		return "EOF"
	case PLUS:
		return "PLUS"
	case MINUS:
		return "MINUS"
	case MULTIPLY:
		return "MULTIPLY"
	case DIVIDE:
		return "DIVIDE"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case SEMICOLON:
		return "SEMICOLON"
	case BIN:
		return "BIN"
	case OCT:
		return "OCT"
	case HEX:
		return "HEX"
	case ID:
		return "ID"
	case BINARY_NUMBER:
		return "BINARY_NUMBER"
	case OCTAL_NUMBER:
		return "OCTAL_NUMBER"
	case HEXADECIMAL_NUMBER:
		return "HEXADECIMAL_NUMBER"
	case INVALID:
		return "INVALID"
	default:
		return "UNKNOWN"
	}
}

// IsBase reports whether t is one of the base keywords.
func (t Type) IsBase() bool {
	return t == BIN || t == OCT || t == HEX
}

// IsNumber reports whether t is one of the numeric literal kinds.
func (t Type) IsNumber() bool {
	return t == BINARY_NUMBER || t == OCTAL_NUMBER || t == HEXADECIMAL_NUMBER
}

// Token represents a lexical token with its type and literal value.
type Token struct {
	Type  Type   `json:"type"`
	Value string `json:"value"`
}

func (t Token) String() string {
	if t.Type == EOF {
		return "EOF"
	}
	return t.Type.String() + "(" + t.Value + ")"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}
