package symbol

import (
	"fmt"
	"strings"

	"github.com/DjordjeVuckovic/base-checker/internal/token"
)

// Base is the numeral system a declared variable's value is written in.
type Base int

const (
	Bin Base = iota
	Oct
	Hex
)

func (b Base) String() string {
	switch b {
	case Bin:
		return "BIN"
	case Oct:
		return "OCT"
	case Hex:
		return "HEX"
	default:
		return "UNKNOWN"
	}
}

func (b Base) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}

func (b *Base) UnmarshalText(text []byte) error {
	base, err := ParseBase(string(text))
	if err != nil {
		return err
	}
	*b = base
	return nil
}

// ParseBase accepts the keyword spelling of a base in any case.
func ParseBase(s string) (Base, error) {
	switch strings.ToLower(s) {
	case "bin":
		return Bin, nil
	case "oct":
		return Oct, nil
	case "hex":
		return Hex, nil
	default:
		return 0, fmt.Errorf("unknown base %q", s)
	}
}

// BaseFromToken maps a BIN, OCT or HEX keyword to its Base.
func BaseFromToken(t token.Type) (Base, bool) {
	switch t {
	case token.BIN:
		return Bin, true
	case token.OCT:
		return Oct, true
	case token.HEX:
		return Hex, true
	default:
		return 0, false
	}
}

// Valid reports whether every character of literal is a digit of b.
// The empty literal is never valid.
func (b Base) Valid(literal string) bool {
	if literal == "" {
		return false
	}
	for i := 0; i < len(literal); i++ {
		if !b.digit(literal[i]) {
			return false
		}
	}
	return true
}

func (b Base) digit(c byte) bool {
	switch b {
	case Bin:
		return c == '0' || c == '1'
	case Oct:
		return '0' <= c && c <= '7'
	case Hex:
		return ('0' <= c && c <= '9') || ('a' <= c && c <= 'f') || ('A' <= c && c <= 'F')
	default:
		return false
	}
}
