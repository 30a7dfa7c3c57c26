// Package render implements stage 5 of the pipeline: walking the segment
// chain of each entry and writing the "set" command line it resolves to,
// using the tails predicate.Choose already picked for each group position.
package render
