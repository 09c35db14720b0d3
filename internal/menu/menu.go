package menu

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/extgen-labs/extgen/internal/screen"
)

// ExitLabel is the label of the implicit last option.
const ExitLabel = "Exit"

// Action is a deferred, zero-argument operation bound to a menu option.
type Action func() error

// ActionMap binds 1-based option indices to actions.
type ActionMap map[int]Action

// Menu is a message plus its selectable options. Exit is implicit.
type Menu struct {
	Message string
	Options []string
	// Screen names the screen the menu belongs to; it is only used for logging.
	Screen screen.Name
}

// ExitIndex returns the index of the implicit Exit option.
func (m Menu) ExitIndex() int {
	return len(m.Options) + 1
}

// Outcome is the result of a single Dispatch call.
type Outcome int

const (
	OutcomeInvoked Outcome = iota + 1
	OutcomeExit
	OutcomeInvalid
)

func (o Outcome) String() string {
	switch o {
	case OutcomeInvoked:
		return "invoked"
	case OutcomeExit:
		return "exit"
	case OutcomeInvalid:
		return "invalid"
	default:
		return "none"
	}
}

// MissingActionError reports an in-range choice with no bound action. It is a
// programming error in the caller's ActionMap.
type MissingActionError struct {
	Index  int
	Screen screen.Name
}

func (e *MissingActionError) Error() string {
	if e.Screen != "" {
		return fmt.Sprintf("no action bound to option %d on screen %q", e.Index, e.Screen)
	}
	return fmt.Sprintf("no action bound to option %d", e.Index)
}

// Prompter prints menus to w and reads choices from r.
type Prompter struct {
	reader *bufio.Reader
	w      io.Writer
	exit   func(code int)
	logger *slog.Logger
}

// Option configures a Prompter.
type Option func(*Prompter)

// WithExit replaces os.Exit as the handler for the Exit option.
func WithExit(fn func(code int)) Option {
	return func(p *Prompter) { p.exit = fn }
}

// WithLogger sets the logger used for dispatch diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(p *Prompter) { p.logger = l }
}

// NewPrompter returns a Prompter reading from r and writing to w.
func NewPrompter(r io.Reader, w io.Writer, opts ...Option) *Prompter {
	p := &Prompter{
		reader: bufio.NewReader(r),
		w:      w,
		exit:   os.Exit,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Writer returns the writer menus are printed to.
func (p *Prompter) Writer() io.Writer { return p.w }

// Dispatch prints m, reads one line and acts on it. The line is trimmed of
// surrounding whitespace before it is compared.
//
// A choice in 1..len(m.Options) invokes actions[n] and returns its error
// unchanged. The Exit index calls the exit handler with code 0. Anything else
// prints invalidMessage and returns OutcomeInvalid.
func (p *Prompter) Dispatch(m Menu, actions ActionMap, invalidMessage string) (Outcome, error) {
	fmt.Fprintln(p.w, m.Message)
	for i, option := range m.Options {
		fmt.Fprintf(p.w, "%d. %s\n", i+1, option)
	}
	fmt.Fprintf(p.w, "%d. %s\n", m.ExitIndex(), ExitLabel)

	line, err := p.readLine()
	if err != nil {
		return 0, fmt.Errorf("reading choice: %w", err)
	}

	if n, ok := parseChoice(line); ok && n >= 1 && n <= len(m.Options) {
		action := actions[n]
		if action == nil {
			return 0, &MissingActionError{Index: n, Screen: m.Screen}
		}
		p.logger.Debug("menu choice", "screen", m.Screen, "option", n, "label", m.Options[n-1])
		return OutcomeInvoked, action()
	}

	if line == strconv.Itoa(m.ExitIndex()) {
		p.logger.Debug("menu exit", "screen", m.Screen)
		p.exit(0)
		return OutcomeExit, nil
	}

	p.logger.Debug("invalid menu choice", "screen", m.Screen, "input", line)
	fmt.Fprintln(p.w, invalidMessage)
	return OutcomeInvalid, nil
}

// ReadLine prints prompt on its own line and returns the next input line,
// trimmed.
func (p *Prompter) ReadLine(prompt string) (string, error) {
	fmt.Fprintln(p.w, prompt)
	line, err := p.readLine()
	if err != nil {
		return "", fmt.Errorf("reading answer: %w", err)
	}
	return line, nil
}

// readLine returns the next line without surrounding whitespace. A final line
// without a newline is still returned; io.EOF is only reported when nothing
// was read.
func (p *Prompter) readLine() (string, error) {
	line, err := p.reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// parseChoice accepts only unsigned ASCII decimal digits, so "+1" and "-1" are
// rejected even though strconv.Atoi would parse them. Other Unicode decimal
// digits such as "٣" are rejected too; they fall into the invalid branch.
func parseChoice(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return n, true
}
