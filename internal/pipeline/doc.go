// Package pipeline wires the five stages together: it pulls every
// (path, value) pair out of an aug.Tree, segments each path, groups
// segments by absolute head, resolves a disambiguating tail per group
// position, and renders the result as a script of "set" commands.
package pipeline
