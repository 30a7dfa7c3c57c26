// Package predicate implements stages 3 and 4 of the pipeline: grouping
// segments that share an absolute head, then choosing which sibling tail
// disambiguates each position within a group well enough to stand in for a
// numeric index.
package predicate
