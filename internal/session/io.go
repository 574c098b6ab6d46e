package session

import (
	"bufio"
	"io"
	"math"

	"github.com/fatih/color"
)

// LineSource supplies input lines without their line terminator.
// ReadLine returns io.EOF once the input is exhausted.
type LineSource interface {
	ReadLine() (string, error)
}

// Sink receives prompts and diagnostics.
type Sink interface {
	Prompt(msg string)
	Report(d Diagnostic)
}

// maxLineSize bounds a single input line; the scanner grows its buffer up to it.
const maxLineSize = math.MaxInt32

type ScannerSource struct {
	scanner *bufio.Scanner
}

func NewScannerSource(r io.Reader) *ScannerSource {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	return &ScannerSource{scanner: scanner}
}

func (s *ScannerSource) ReadLine() (string, error) {
	if s.scanner.Scan() {
		return s.scanner.Text(), nil
	}
	if err := s.scanner.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}

type SliceSource struct {
	lines []string
	pos   int
}

func NewSliceSource(lines ...string) *SliceSource {
	return &SliceSource{lines: lines}
}

func (s *SliceSource) ReadLine() (string, error) {
	if s.pos >= len(s.lines) {
		return "", io.EOF
	}
	line := s.lines[s.pos]
	s.pos++
	return line, nil
}

// ConsoleSink writes prompts and diagnostics to a terminal, colored by outcome.
type ConsoleSink struct {
	out    io.Writer
	prompt *color.Color
	ok     *color.Color
	fail   *color.Color
	detail *color.Color
}

func NewConsoleSink(out io.Writer, noColor bool) *ConsoleSink {
	s := &ConsoleSink{
		out:    out,
		prompt: color.New(color.FgCyan),
		ok:     color.New(color.FgGreen),
		fail:   color.New(color.FgRed, color.Bold),
		detail: color.New(color.FgYellow),
	}
	if noColor {
		for _, c := range []*color.Color{s.prompt, s.ok, s.fail, s.detail} {
			c.DisableColor()
		}
	}
	return s
}

func (s *ConsoleSink) Prompt(msg string) {
	_, _ = s.prompt.Fprintln(s.out, msg)
}

func (s *ConsoleSink) Report(d Diagnostic) {
	if d.Detail != "" {
		_, _ = s.detail.Fprintln(s.out, d.Detail)
	}
	if d.Kind.Failed() {
		_, _ = s.fail.Fprintln(s.out, d.Message)
		return
	}
	_, _ = s.ok.Fprintln(s.out, d.Message)
}

// Recorder keeps everything it receives, in order.
type Recorder struct {
	Prompts     []string
	Diagnostics []Diagnostic
}

func (r *Recorder) Prompt(msg string) {
	r.Prompts = append(r.Prompts, msg)
}

func (r *Recorder) Report(d Diagnostic) {
	r.Diagnostics = append(r.Diagnostics, d)
}

// Kinds returns the kinds of the recorded diagnostics.
func (r *Recorder) Kinds() []Kind {
	kinds := make([]Kind, len(r.Diagnostics))
	for i, d := range r.Diagnostics {
		kinds[i] = d.Kind
	}
	return kinds
}
