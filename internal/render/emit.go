package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"augpredicate/internal/pathseg"
	"augpredicate/internal/predicate"
)

// ResolvedSegment pairs a path segment with the group that owns its
// position, once stage 3 has assigned one. Group is nil for the trailing
// segment, which carries no position.
type ResolvedSegment struct {
	pathseg.Segment
	Group *predicate.Group
}

// Entry is one (path, value) pair together with the segment chain the
// emitter walks to render its "set" line.
type Entry struct {
	Path     string
	Value    *string
	Segments []ResolvedSegment
}

// Emitter renders a list of entries as a script of "set" commands.
type Emitter struct {
	Writer    io.Writer
	Pretty    bool
	UseRegexp bool
	NoSeq     bool
	Verbose   bool
	// Logger traces one output_segment line per rendered predicate at
	// Debug level. Nil disables tracing.
	Logger *log.Logger
}

// trace is a no-op when the emitter carries no logger.
func (e *Emitter) trace(msg string, keyvals ...interface{}) {
	if e.Logger == nil {
		return
	}

	e.Logger.Debug(msg, keyvals...)
}

// Emit writes one "set" line per entry to e.Writer, skipping null-valued
// interior nodes that are strict path-prefixes of the entry that follows,
// and separating groups with a blank line when Pretty is set.
func (e *Emitter) Emit(entries []Entry) error {
	for i, entry := range entries {
		// anchor is the empty-string-coerced-to-nil value used only to decide
		// null-anchor suppression and the verbose echo; the "set" line itself
		// always renders entry.Value as written, so an empty string still
		// emits "set <path> ''" rather than a null-value set.
		anchor := entry.Value
		if anchor != nil && *anchor == "" {
			anchor = nil
		}

		if e.Verbose {
			if anchor == nil {
				fmt.Fprintf(e.Writer, "#   %s\n", entry.Path)
			} else {
				fmt.Fprintf(e.Writer, "#   %s  %s\n", entry.Path, predicate.QuoteValue(anchor))
			}
		}

		if anchor == nil && i < len(entries)-1 && pathseg.IsChild(entry.Path, entries[i+1].Path) {
			continue
		}

		if err := e.writeSetLine(entry, entry.Value); err != nil {
			return err
		}

		if e.Pretty && i < len(entries)-1 {
			if separatesGroups(entry, entries[i+1]) {
				fmt.Fprintln(e.Writer)
			}
		}
	}

	return nil
}

func separatesGroups(a, b Entry) bool {
	if len(a.Segments) == 0 || len(b.Segments) == 0 {
		return false
	}

	ag, bg := a.Segments[0].Group, b.Segments[0].Group
	if ag != bg {
		return true
	}

	return ag != nil && a.Segments[0].Position != b.Segments[0].Position
}

func (e *Emitter) writeSetLine(entry Entry, value *string) error {
	var b strings.Builder

	b.WriteString("set ")

	for _, seg := range entry.Segments {
		b.WriteString(renderSegmentText(seg.Segment, e.NoSeq))
		b.WriteString(e.predicateFor(seg, value))
	}

	var err error

	if value != nil {
		_, err = fmt.Fprintf(e.Writer, "%s %s\n", b.String(), predicate.QuoteValue(value))
	} else {
		_, err = fmt.Fprintf(e.Writer, "%s\n", b.String())
	}

	return err
}

func renderSegmentText(seg pathseg.Segment, noSeq bool) string {
	if seg.Position == pathseg.NoPosition || !endsWithSlash(seg.Text) {
		return seg.Text
	}

	if noSeq {
		return seg.Text + "*"
	}

	return seg.Text + "seq::*"
}

func endsWithSlash(s string) bool {
	return len(s) > 0 && s[len(s)-1] == '/'
}

func sameValue(a, b *string) bool {
	if a == nil && b == nil {
		return true
	}

	if a == nil || b == nil {
		return false
	}

	return *a == *b
}

func pad(s string, width int) string {
	if width <= 0 || len(s) >= width {
		return s
	}

	return s + strings.Repeat(" ", width-len(s))
}

func valueOfTail(t *predicate.Tail, useRegexp bool) string {
	if useRegexp {
		return t.ValueRegexp
	}

	return predicate.QuoteValue(t.Value)
}

// predicateFor renders the "[...]" (or "[...][n]") that follows seg's text,
// advancing the owning group's WIP/Done state as it goes. Returns "" for
// the trailing segment, which owns no group.
func (e *Emitter) predicateFor(seg ResolvedSegment, entryValue *string) string {
	g := seg.Group
	if g == nil {
		return ""
	}

	pos := seg.Position
	chosen := g.ChosenTail(pos)
	state := g.ChosenState(pos)
	first := g.FirstTail(pos)
	width := g.PrettyWidth(pos)

	e.trace("output_segment", "head", g.Head, "position", pos, "state", state)

	switch state {
	case predicate.FirstTail, predicate.ChosenTailDone, predicate.FirstTailPlusPosition:
		out := renderSingle(chosen, e.UseRegexp, width)
		if state == predicate.FirstTailPlusPosition {
			out += fmt.Sprintf("[%d]", g.SubgroupIndex(pos))
		}

		return out

	case predicate.ChosenTailStart, predicate.ChosenTailWIP:
		out := renderSingleOrAbsent(chosen, e.UseRegexp, width)
		if chosen.SimpleTail == seg.SimplifiedTail && sameValue(chosen.Value, entryValue) {
			g.SetChosenState(pos, predicate.ChosenTailDone)
		} else {
			g.SetChosenState(pos, predicate.ChosenTailWIP)
		}

		return out

	case predicate.ChosenTailPlusFirstTailStart, predicate.ChosenTailPlusFirstTailWIP:
		out := renderCombined(first, chosen, e.UseRegexp, width, true)
		if chosen.SimpleTail == seg.SimplifiedTail && sameValue(chosen.Value, entryValue) {
			g.SetChosenState(pos, predicate.ChosenTailPlusFirstTailDone)
		} else {
			g.SetChosenState(pos, predicate.ChosenTailPlusFirstTailWIP)
		}

		return out

	case predicate.ChosenTailPlusFirstTailDone:
		return renderCombined(first, chosen, e.UseRegexp, width, false)

	case predicate.NoChildNodes:
		if !endsWithSlash(seg.Text) {
			return "[*]"
		}

		return ""

	default:
		return renderSingle(chosen, e.UseRegexp, width)
	}
}

// renderSingle is the plain "[tail=value]" (or "[tail]" for a null value)
// used once a position's predicate is settled.
func renderSingle(t *predicate.Tail, useRegexp bool, width int) string {
	expr := pathseg.Expr(t.SimpleTail)

	if t.Value == nil {
		return fmt.Sprintf("[%s]", expr)
	}

	if useRegexp {
		return fmt.Sprintf("[%s=~regexp(%s)]", expr, pad(valueOfTail(t, useRegexp), width))
	}

	return fmt.Sprintf("[%s=%s]", expr, pad(valueOfTail(t, useRegexp), width))
}

// renderSingleOrAbsent is renderSingle plus "or count(tail)=0", used while a
// position's predicate is still being emitted across several entries that
// may or may not carry it.
func renderSingleOrAbsent(t *predicate.Tail, useRegexp bool, width int) string {
	expr := pathseg.Expr(t.SimpleTail)

	if t.Value == nil {
		return fmt.Sprintf("[%s or count(%s)=0]", expr, expr)
	}

	if useRegexp {
		return fmt.Sprintf("[%s=~regexp(%s) or count(%s)=0]", expr, pad(valueOfTail(t, useRegexp), width), expr)
	}

	return fmt.Sprintf("[%s=%s or count(%s)=0]", expr, pad(valueOfTail(t, useRegexp), width), expr)
}

// renderCombined is the third-tier "[first and chosen]" predicate; wip adds
// the "or count(chosen)=0" alternative while the chosen tail's owning row
// hasn't been emitted yet.
func renderCombined(first, chosen *predicate.Tail, useRegexp bool, width int, wip bool) string {
	firstExpr := pathseg.Expr(first.SimpleTail)
	chosenExpr := pathseg.Expr(chosen.SimpleTail)

	var firstPart string

	switch {
	case first.Value == nil:
		firstPart = firstExpr
	case useRegexp:
		firstPart = fmt.Sprintf("%s=~regexp(%s)", firstExpr, pad(valueOfTail(first, useRegexp), width))
	default:
		firstPart = fmt.Sprintf("%s=%s", firstExpr, pad(valueOfTail(first, useRegexp), width))
	}

	var chosenPart string

	if useRegexp {
		chosenPart = fmt.Sprintf("%s=~regexp(%s)", chosenExpr, valueOfTail(chosen, useRegexp))
	} else {
		chosenPart = fmt.Sprintf("%s=%s", chosenExpr, valueOfTail(chosen, useRegexp))
	}

	if wip {
		return fmt.Sprintf("[%s and ( %s or count(%s)=0 )]", firstPart, chosenPart, chosenExpr)
	}

	return fmt.Sprintf("[%s and %s]", firstPart, chosenPart)
}
