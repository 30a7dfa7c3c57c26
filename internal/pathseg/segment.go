package pathseg

import "strconv"

// NoPosition marks a segment (the trailing tailpiece) that carries no
// positional selector — the "⊥" of the specification's data model.
const NoPosition = -1

// Segment is one positional selector in a path, or the trailing tailpiece
// after the last one.
type Segment struct {
	// Head is the absolute prefix ending at the label that carries the
	// position. Two segments with byte-identical heads belong to the same
	// group.
	Head string
	// Text is the slice of Head from the previous segment boundary; it is
	// what gets printed verbatim during emission.
	Text string
	// Position is the integer inside "[n]" or between two "/"; NoPosition
	// for the tailpiece.
	Position int
	// Bracketed is true when Position came from the "[n]" form rather than
	// the "/n" numeric-leaf form. (Emission tells the two forms apart by
	// whether Text ends in "/" when deciding whether a NO_CHILD_NODES
	// fallback appends "[*]"; see design note ii.)
	Bracketed bool
	// SimplifiedTail is the remainder of the path after this selector, with
	// every further embedded positional marker rewritten. Empty for the
	// tailpiece.
	SimplifiedTail string
}

// Split breaks an absolute path into its segment chain. noSeq controls
// whether embedded "/n" markers simplify to "/*" instead of "/seq::*".
func Split(path string, noSeq bool) []Segment {
	var segs []Segment

	cur := 0

	for cur < len(path) {
		rel, ok := nextPosition(path[cur:])
		if !ok {
			break
		}

		headEnd := cur + rel.headEnd
		tailStart := cur + rel.tailStart

		segs = append(segs, Segment{
			Head:           path[:headEnd],
			Text:           path[cur:headEnd],
			Position:       rel.position,
			Bracketed:      rel.bracketed,
			SimplifiedTail: Simplify(path[tailStart:], noSeq),
		})

		cur = tailStart
	}

	segs = append(segs, Segment{
		Head:           path,
		Text:           path[cur:],
		Position:       NoPosition,
		SimplifiedTail: "",
	})

	return segs
}

type positionMatch struct {
	headEnd   int
	tailStart int
	position  int
	bracketed bool
}

// nextPosition scans s for the next positional marker, in exactly the two
// forms the specification recognises:
//
//	"[n]" where n is one or more decimal digits terminated by "]";
//	"/n"  where n is one or more decimal digits terminated by "/" or eos.
//
// headEnd is the offset where the segment's head ends (before "[", or right
// after the leading "/" for the numeric-leaf form); tailStart is the offset
// where the leftover tail begins (after "]", or at the trailing "/" / eos).
func nextPosition(s string) (positionMatch, bool) {
	i := 0

	for i < len(s) {
		c := s[i]

		if c == '[' && i+1 < len(s) && isDigit(s[i+1]) {
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			if j < len(s) && s[j] == ']' {
				n, _ := strconv.Atoi(s[i+1 : j])

				return positionMatch{headEnd: i, tailStart: j + 1, position: n, bracketed: true}, true
			}
		} else if c == '/' && i+1 < len(s) && isDigit(s[i+1]) {
			j := i + 1
			for j < len(s) && isDigit(s[j]) {
				j++
			}

			if j == len(s) || s[j] == '/' {
				n, _ := strconv.Atoi(s[i+1 : j])

				return positionMatch{headEnd: i + 1, tailStart: j, position: n, bracketed: false}, true
			}
		}

		i++
	}

	return positionMatch{}, false
}

// Simplify rewrites every positional marker in tail: "[n]" is deleted,
// "/n" becomes the seq-wildcard literal.
func Simplify(tail string, noSeq bool) string {
	seqLiteral := "/seq::*"
	if noSeq {
		seqLiteral = "/*"
	}

	out := make([]byte, 0, len(tail))
	i := 0

	for i < len(tail) {
		c := tail[i]

		if c == '[' && i+1 < len(tail) && isDigit(tail[i+1]) {
			j := i + 1
			for j < len(tail) && isDigit(tail[j]) {
				j++
			}

			if j < len(tail) && tail[j] == ']' {
				i = j + 1

				continue
			}
		} else if c == '/' && i+1 < len(tail) && isDigit(tail[i+1]) {
			j := i + 1
			for j < len(tail) && isDigit(tail[j]) {
				j++
			}

			if j == len(tail) || tail[j] == '/' {
				out = append(out, seqLiteral...)
				i = j

				continue
			}
		}

		out = append(out, c)
		i++
	}

	return string(out)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Expr renders a simplified tail as the child-path used inside a predicate:
// "/name" becomes "name", "" (the selector's own tail) becomes ".".
func Expr(simplifiedTail string) string {
	if simplifiedTail == "" {
		return "."
	}

	if simplifiedTail[0] == '/' {
		return simplifiedTail[1:]
	}

	return simplifiedTail
}

// IsChild reports whether child is a path-strict descendant of parent under
// the simplified-tail convention: parent is a byte-prefix of child and the
// next character in child is "/".
func IsChild(parent, child string) bool {
	if len(child) <= len(parent) || child[:len(parent)] != parent {
		return false
	}

	return child[len(parent)] == '/'
}
