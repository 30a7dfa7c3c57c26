package diagnostic

import "fmt"

// Kind classifies why a diagnostic was raised.
type Kind int

const (
	// KindInput covers a missing input file, a non-absolute --target, a lens
	// that does not apply, or a parser load failure. Always fatal.
	KindInput Kind = iota
	// KindResource covers an allocation failure. Always fatal.
	KindResource
	// KindInternal covers a consistency violation the chooser did not expect
	// (a nil chosen tail, an empty tails-at-position list). Non-fatal: the
	// caller falls back to a wildcard predicate and keeps going.
	KindInternal
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case KindInput:
		return "input error"
	case KindResource:
		return "out of memory"
	case KindInternal:
		return "internal error"
	default:
		return "unknown"
	}
}

// Diagnostic is a single reported condition.
type Diagnostic struct {
	Kind Kind
	// Message is the human-readable description.
	Message string
	// Head identifies the group (by its head path) this relates to, if any.
	Head string
	// Position identifies the position within the group this relates to.
	// Zero means "not applicable".
	Position int
}

// String renders the diagnostic the way it appears on stderr.
func (d Diagnostic) String() string {
	var loc string
	if d.Head != "" {
		if d.Position > 0 {
			loc = fmt.Sprintf("%s[%d]: ", d.Head, d.Position)
		} else {
			loc = d.Head + ": "
		}
	}

	return fmt.Sprintf("%s: %s%s", d.Kind, loc, d.Message)
}

// Diagnostics accumulates every diagnostic raised while ingesting,
// disambiguating, and emitting one file. Only KindInternal entries can
// accumulate alongside a successful run; KindInput and KindResource are
// always returned immediately as an error instead of being appended here.
type Diagnostics struct {
	Internal []Diagnostic
}

// AddInternal records a non-fatal internal-consistency violation.
func (d *Diagnostics) AddInternal(head string, position int, format string, args ...any) {
	d.Internal = append(d.Internal, Diagnostic{
		Kind:     KindInternal,
		Message:  fmt.Sprintf(format, args...),
		Head:     head,
		Position: position,
	})
}

// HasInternal reports whether any internal-consistency violation was seen.
func (d *Diagnostics) HasInternal() bool {
	return len(d.Internal) > 0
}

// Lines renders every accumulated diagnostic as one string per line, in the
// order they were recorded.
func (d *Diagnostics) Lines() []string {
	lines := make([]string, 0, len(d.Internal))
	for _, diag := range d.Internal {
		lines = append(lines, diag.String())
	}

	return lines
}

// Fatal wraps an input or resource-exhaustion condition as a plain error,
// for the two error kinds that abort the run immediately.
func Fatal(kind Kind, format string, args ...any) error {
	return fmt.Errorf("%s: %s", kind, fmt.Sprintf(format, args...))
}
