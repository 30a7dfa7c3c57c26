// Package fake is an in-memory aug.Tree used by the chooser's own tests, so
// stages 2-5 can be exercised against a literal list of (path, value) pairs
// without a real Augeas installation.
package fake

import (
	"fmt"
	"sort"
	"strings"

	"augpredicate/internal/aug"
	"augpredicate/internal/common"
)

// Tree is a literal (path, value) store that implements aug.Tree.
type Tree struct {
	entries []aug.PathValue
	lenses  map[string]string // lens name -> include glob, set by Transform
	moved   map[string]string // src prefix -> dst prefix, set by Move
}

// New builds a Tree pre-populated with entries, in the order Match should
// return them (the fake does not re-sort; callers seed it in input order).
func New(entries []aug.PathValue) *Tree {
	return &Tree{entries: entries, lenses: map[string]string{}, moved: map[string]string{}}
}

func (t *Tree) Init(_ string, _ aug.InitFlags) error { return nil }

func (t *Tree) Transform(lens, file string) error {
	t.lenses[lens] = file

	return nil
}

func (t *Tree) Load(_ string) error { return nil }

func (t *Tree) Match(expr string) ([]aug.PathValue, error) {
	if expr != "/files/descendant::*" {
		return nil, fmt.Errorf("fake tree: unsupported match expression %q", expr)
	}

	out := make([]aug.PathValue, len(t.entries))
	for i, e := range t.entries {
		path := e.Path
		for src, dst := range t.moved {
			if strings.HasPrefix(path, src) {
				path = dst + strings.TrimPrefix(path, src)
			}
		}

		out[i] = aug.PathValue{Path: path, Value: e.Value}
	}

	return out, nil
}

func (t *Tree) Move(src, dst string) error {
	t.moved[src] = dst

	return nil
}

func (t *Tree) InferLens(target string) (string, error) {
	var candidates []string

	for lens, glob := range t.lenses {
		if strings.Contains(target, glob) || glob == target {
			candidates = append(candidates, lens)
		}
	}

	if common.IsMultiple(candidates) {
		sort.Strings(candidates)
	}

	lens, ok := common.First(candidates)
	if !ok {
		return "", fmt.Errorf("no lens applies to target %q", target)
	}

	return lens, nil
}

func (t *Tree) Close() error { return nil }
