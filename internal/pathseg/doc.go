// Package pathseg implements stage 2 of the pipeline: splitting an absolute
// parser path into the chain of segments the disambiguator and emitter walk.
package pathseg
