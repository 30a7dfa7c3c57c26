// Package config carries every flag-derived value into the predicate
// chooser's stages. No stage reads a package-level flag variable; each
// receives a Config value explicitly, per the "no global mutable options"
// design note.
package config

// DefaultRegexpMinLen is the minimum regex width used when --regexp is
// given without an explicit N.
const DefaultRegexpMinLen = 8

// MaxPrettyWidth caps the alignment field width computed in stage 4.6.
const MaxPrettyWidth = 30

// Config is threaded through every stage of the pipeline.
type Config struct {
	// Pretty enables alignment padding (§4.6) and blank-line group
	// separation (§4.7).
	Pretty bool
	// UseRegexp enables regular-expression relaxation of chosen values
	// (§4.5). RegexpMinLen is meaningless when this is false.
	UseRegexp bool
	// RegexpMinLen is the minimum truncation width for a relaxed value.
	RegexpMinLen int
	// NoSeq renders numeric-leaf positions as "*" instead of "seq::*".
	NoSeq bool
	// Target, if non-empty, is the path the loaded tree is renamed to
	// before emission; it must be absolute.
	Target string
	// Lens is the explicit lens transform to apply, if any.
	Lens string
	// Verbose enables the "#"-commented echo of every matched path/value.
	Verbose bool
	// Debug enables fine-grained tracing through the structured logger.
	Debug bool
}

// SeqLiteral returns the wildcard string substituted for a bare numeric-leaf
// position ("seq::*" ordinarily, "*" when NoSeq is set).
func (c Config) SeqLiteral() string {
	if c.NoSeq {
		return "*"
	}

	return "seq::*"
}

// EffectiveRegexpMinLen returns the minimum regex width to use, applying
// the documented default when UseRegexp is on but no width was given.
func (c Config) EffectiveRegexpMinLen() int {
	if c.RegexpMinLen <= 0 {
		return DefaultRegexpMinLen
	}

	return c.RegexpMinLen
}
