// Package bolterr defines the closed set of error kinds every fallible
// Bolt operation returns, generalizing the teacher parser's
// line/column-tagged ParseError into a single shape shared by the
// parser, the evaluator, and the IR emitter.
package bolterr

import "fmt"

// Kind classifies an Error. The set is closed: Generic, Internal,
// Parse, EndOfInput, Eval.
type Kind int

const (
	// Generic covers errors that don't fit a more specific kind.
	Generic Kind = iota
	// Internal marks a failure that should be impossible given a
	// well-formed AST — a bug in Bolt itself, not in the source program.
	Internal
	// Parse marks a syntax error produced while scanning or parsing.
	Parse
	// EndOfInput marks a clean end of the token stream. The parser's
	// statement loop stops on the EOF token itself and does not create
	// an Error of this kind.
	EndOfInput
	// Eval marks a failure raised while evaluating or emitting IR for
	// an otherwise syntactically valid program.
	Eval
)

func (k Kind) String() string {
	switch k {
	case Generic:
		return "generic"
	case Internal:
		return "internal"
	case Parse:
		return "parse"
	case EndOfInput:
		return "end of input"
	case Eval:
		return "eval"
	default:
		return "unknown"
	}
}

// Error is the single error type returned by every fallible core
// operation: scanning, parsing, evaluation, and IR emission.
type Error struct {
	Kind    Kind
	Message string
	Line    int // 0 when no source line applies
}

func (e *Error) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s error at line %d: %s", e.Kind, e.Line, e.Message)
	}

	return fmt.Sprintf("%s error: %s", e.Kind, e.Message)
}

// New builds an Error with no associated source line.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Newf builds an Error with no associated source line, formatting the
// message like fmt.Sprintf.
func Newf(kind Kind, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...)}
}

// NewAt builds an Error tagged with the source line it occurred on.
func NewAt(kind Kind, line int, message string) *Error {
	return &Error{Kind: kind, Message: message, Line: line}
}

// NewAtf builds an Error tagged with a source line, formatting the
// message like fmt.Sprintf.
func NewAtf(kind Kind, line int, format string, args ...any) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, args...), Line: line}
}

// IsEndOfInput reports whether err is the EndOfInput sentinel.
func IsEndOfInput(err error) bool {
	e, ok := err.(*Error)

	return ok && e.Kind == EndOfInput
}

// List accumulates parse errors the way the teacher's ParseErrors type
// does and formats a combined message when there is more than one. The
// parser itself aborts its statement loop at the first error recorded
// here, so in practice a List built by internal/parser rarely holds
// more than one entry; the multi-error formatting exists because the
// type is shared, not because the parser deliberately collects several.
type List struct {
	errors []*Error
}

// Add appends a new Parse error at line with the given message.
func (l *List) Add(line int, message string) {
	l.errors = append(l.errors, NewAt(Parse, line, message))
}

// Addf appends a new Parse error at line, formatting the message like
// fmt.Sprintf.
func (l *List) Addf(line int, format string, args ...any) {
	l.errors = append(l.errors, NewAtf(Parse, line, format, args...))
}

// HasErrors reports whether any error has been recorded.
func (l *List) HasErrors() bool { return len(l.errors) > 0 }

// Count returns the number of recorded errors.
func (l *List) Count() int { return len(l.errors) }

// Errors returns the recorded errors in the order they were added.
func (l *List) Errors() []*Error { return l.errors }

// Err returns nil if no errors were recorded, the sole error if
// exactly one was, or a combined *Error listing all of them.
func (l *List) Err() error {
	switch len(l.errors) {
	case 0:
		return nil
	case 1:
		return l.errors[0]
	default:
		msg := fmt.Sprintf("%d parse errors:", len(l.errors))
		for _, e := range l.errors {
			msg += "\n\t" + e.Error()
		}

		return New(Parse, msg)
	}
}
