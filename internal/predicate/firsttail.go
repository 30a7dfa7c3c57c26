package predicate

import (
	"augpredicate/internal/common"
	"augpredicate/internal/pathseg"
)

// findFirstTail returns the first entry in stubs (in first-seen order) that
// either carries a non-empty value or has no child segment beneath it,
// along with its index. Interior nodes with a null value that are strict
// path-prefixes of the next stub are skipped, since they carry no
// disambiguating information of their own.
func findFirstTail(stubs []*Tail) (*Tail, int) {
	if common.IsEmpty(stubs) {
		return nil, -1
	}

	i := 0

	for i < len(stubs)-1 {
		t := stubs[i]

		if t.Value != nil && *t.Value != "" {
			break
		}

		if !pathseg.IsChild(t.SimpleTail, stubs[i+1].SimpleTail) {
			break
		}

		i++
	}

	return stubs[i], i
}
