package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/DjordjeVuckovic/base-checker/internal/analyzer"
	"github.com/DjordjeVuckovic/base-checker/internal/apperr"
	"github.com/DjordjeVuckovic/base-checker/internal/symbol"
	"github.com/DjordjeVuckovic/base-checker/internal/token"
	"github.com/google/uuid"
)

const (
	DefaultSentinel = "END"

	declarationsPrompt = "Enter variable declarations (e.g. bin var1 1010;), finish with '%s'"
	expressionPrompt   = "Enter an expression to analyze:"
)

var ErrSessionDone = errors.New("session already finished")

type State int

const (
	AwaitingDeclarations State = iota
	ExpressionCheck
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingDeclarations:
		return "awaiting_declarations"
	case ExpressionCheck:
		return "expression_check"
	case Done:
		return "done"
	default:
		return "unknown"
	}
}

func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type Option func(*Session)

func WithSentinel(sentinel string) Option {
	return func(s *Session) {
		s.sentinel = sentinel
	}
}

func WithTokenizer(t token.Tokenizer) Option {
	return func(s *Session) {
		s.lexer = t
	}
}

// Session is one run of the declaration language: a series of declarations
// followed by a single expression. It owns its symbol table.
// A Session is not safe for concurrent use.
type Session struct {
	ID uuid.UUID

	lexer    token.Tokenizer
	table    *symbol.Table
	sentinel string
	state    State
}

func New(opts ...Option) *Session {
	s := &Session{
		ID:       uuid.New(),
		lexer:    token.NewBaseLexer(),
		table:    symbol.NewTable(),
		sentinel: DefaultSentinel,
		state:    AwaitingDeclarations,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) State() State {
	return s.state
}

func (s *Session) Table() *symbol.Table {
	return s.table
}

func (s *Session) Sentinel() string {
	return s.sentinel
}

// Declare processes one declaration line. Rejected lines are reported in the
// returned Diagnostic and leave the table unchanged; the error is only set
// when the session no longer accepts declarations.
func (s *Session) Declare(line string) (Diagnostic, error) {
	if s.state != AwaitingDeclarations {
		return Diagnostic{}, ErrSessionDone
	}

	decl, err := analyzer.ValidateDeclaration(s.lexer.Tokenize(line), s.table)
	d := declarationDiagnostic(decl, err)

	slog.Debug("Declaration processed", "session", s.ID, "line", line, "kind", d.Kind)

	return d, nil
}

func declarationDiagnostic(decl analyzer.Declaration, err error) Diagnostic {
	switch {
	case err == nil:
		return Diagnostic{Kind: Declared, Subject: decl.Name, Message: declaredMsg(decl.Name)}
	case errors.Is(err, apperr.ErrGrammar):
		return Diagnostic{Kind: GrammarError, Message: grammarMsg(), Err: err}
	case errors.Is(err, apperr.ErrInvalidValue):
		return Diagnostic{
			Kind:    DuplicateOrInvalid,
			Subject: decl.Name,
			Message: duplicateOrInvalidMsg(decl.Name),
			Detail:  invalidValueMsg(decl.Value, decl.Base),
			Err:     err,
		}
	default:
		return Diagnostic{Kind: DuplicateOrInvalid, Subject: decl.Name, Message: duplicateOrInvalidMsg(decl.Name), Err: err}
	}
}

// EndDeclarations moves the session to the expression check.
func (s *Session) EndDeclarations() {
	if s.state == AwaitingDeclarations {
		s.state = ExpressionCheck
	}
}

// CheckExpression checks that every identifier in line was declared and
// finishes the session. Only the first undeclared identifier is reported.
func (s *Session) CheckExpression(line string) (Diagnostic, error) {
	if s.state == Done {
		return Diagnostic{}, ErrSessionDone
	}
	s.state = Done

	err := analyzer.CheckExpression(s.lexer.Tokenize(line), s.table)
	if err != nil {
		var ve *apperr.ValidationError
		name := ""
		if errors.As(err, &ve) {
			name = ve.Subject
		}
		slog.Debug("Expression rejected", "session", s.ID, "line", line, "variable", name)
		return Diagnostic{Kind: UndeclaredVariable, Subject: name, Message: undeclaredMsg(name), Err: err}, nil
	}

	slog.Debug("Expression accepted", "session", s.ID, "line", line)
	return Diagnostic{Kind: ValidExpression, Message: validExpressionMsg()}, nil
}

// Run drives the whole session: declarations are read from src until a line
// equal to the sentinel, then one expression line is checked. Every outcome
// is reported to sink. The context is checked between lines.
func (s *Session) Run(ctx context.Context, src LineSource, sink Sink) error {
	if s.state == Done {
		return ErrSessionDone
	}

	if s.state == AwaitingDeclarations {
		sink.Prompt(fmt.Sprintf(declarationsPrompt, s.sentinel))
	}

	for s.state == AwaitingDeclarations {
		line, err := s.readLine(ctx, src)
		if err != nil {
			return err
		}
		if line == s.sentinel {
			s.EndDeclarations()
			break
		}

		d, err := s.Declare(line)
		if err != nil {
			return err
		}
		sink.Report(d)
	}

	sink.Prompt(expressionPrompt)
	line, err := s.readLine(ctx, src)
	if err != nil {
		return err
	}

	d, err := s.CheckExpression(line)
	if err != nil {
		return err
	}
	sink.Report(d)

	slog.Info("Session finished", "session", s.ID, "variables", s.table.Len(), "result", d.Kind)

	return nil
}

func (s *Session) readLine(ctx context.Context, src LineSource) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := src.ReadLine()
	if errors.Is(err, io.EOF) {
		return "", fmt.Errorf("input ended during %s: %w", s.state, io.ErrUnexpectedEOF)
	}
	if err != nil {
		return "", fmt.Errorf("read line: %w", err)
	}
	return line, nil
}

// Snapshot is a read-only view of a session.
type Snapshot struct {
	ID        uuid.UUID      `json:"id"`
	State     State          `json:"state"`
	Sentinel  string         `json:"sentinel"`
	Variables []symbol.Entry `json:"variables"`
}

func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		ID:        s.ID,
		State:     s.state,
		Sentinel:  s.sentinel,
		Variables: s.table.Entries(),
	}
}
