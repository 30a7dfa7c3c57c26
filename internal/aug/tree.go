package aug

import "fmt"

// PathValue is one (path, value) pair as returned by Match. Value is nil
// for interior nodes the parser has not assigned a leaf value to.
type PathValue struct {
	Path  string
	Value *string
}

// String renders the pair the way --verbose echoes it.
func (pv PathValue) String() string {
	if pv.Value == nil {
		return pv.Path
	}

	return fmt.Sprintf("%s %s", pv.Path, *pv.Value)
}

// InitFlags mirrors the small set of parser init flags the CLI layer needs
// to pass through (AUG_NO_MODL_AUTOLOAD, AUG_NO_LOAD, AUG_NO_ERR_CLOSE in
// the original tool's vocabulary).
type InitFlags uint

const FlagNone InitFlags = 0

const (
	// FlagNoModuleAutoload disables automatic lens discovery; set once an
	// explicit --lens is given.
	FlagNoModuleAutoload InitFlags = 1 << iota
	// FlagNoLoad defers the initial full-tree load so a single file can be
	// loaded selectively afterwards.
	FlagNoLoad
	// FlagNoErrClose keeps the tree usable after a load error instead of
	// tearing it down, so error details can still be queried.
	FlagNoErrClose
)

// Tree is the entire surface the predicate chooser's pipeline is allowed to
// depend on. Everything else about the parser — its lens language, its
// module search path, its own CLI — is out of scope per §1.
type Tree interface {
	// Init prepares the tree, given an optional load path and init flags.
	Init(loadPath string, flags InitFlags) error
	// Transform associates a named lens with an include glob for file,
	// so a subsequent Load knows how to parse it.
	Transform(lens, file string) error
	// Load parses file into the tree.
	Load(file string) error
	// Match enumerates every path under expr, paired with its value.
	// The chooser only ever calls it with "/files/descendant::*".
	Match(expr string) ([]PathValue, error)
	// Move relocates the subtree at src to dst, used to implement
	// --target.
	Move(src, dst string) error
	// InferLens finds the lens that applies to target by querying the
	// parser's module-load table. Used only by the CLI layer when no
	// explicit --lens is given, against --target if one is given and
	// against the input file otherwise.
	InferLens(target string) (string, error)
	// Close releases any resources held by the tree.
	Close() error
}
