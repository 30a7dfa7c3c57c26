package aug

import (
	"fmt"

	augeas "honnef.co/go/augeas"

	"augpredicate/internal/common"
)

// realTree adapts honnef.co/go/augeas, the Go binding for the Augeas
// configuration-tree library, to the Tree interface. This is the one place
// in the module that talks to a real Augeas installation; every stage of
// the chooser itself is built and tested entirely against fake.Tree.
type realTree struct {
	handle augeas.Augeas
}

// NewRealTree constructs a Tree backed by libaugeas.
func NewRealTree() Tree {
	return &realTree{}
}

func toAugeasFlags(flags InitFlags) augeas.Flag {
	var out augeas.Flag

	if flags&FlagNoModuleAutoload != 0 {
		out |= augeas.NoModlAutoload
	}

	if flags&FlagNoLoad != 0 {
		out |= augeas.NoLoad
	}

	if flags&FlagNoErrClose != 0 {
		out |= augeas.NoErrClose
	}

	return out
}

func (t *realTree) Init(loadPath string, flags InitFlags) error {
	handle, err := augeas.New("/", loadPath, toAugeasFlags(flags))
	if err != nil {
		return fmt.Errorf("initializing augeas tree: %w", err)
	}

	t.handle = handle

	return nil
}

// Transform associates lens with file's include glob the portable way: by
// writing the /augeas/load/<lens> nodes directly rather than relying on a
// binding-specific transform call, then relying on the following Load to
// pick it up.
func (t *realTree) Transform(lens, file string) error {
	base := "/augeas/load/" + lens

	if err := t.handle.Set(base+"/lens", lens+".lns"); err != nil {
		return fmt.Errorf("setting lens for %s: %w", lens, err)
	}

	if err := t.handle.Set(base+"/incl", file); err != nil {
		return fmt.Errorf("setting include glob for %s: %w", lens, err)
	}

	return nil
}

func (t *realTree) Load(_ string) error {
	if err := t.handle.Load(); err != nil {
		return fmt.Errorf("loading tree: %w", err)
	}

	return nil
}

func (t *realTree) Match(expr string) ([]PathValue, error) {
	paths, err := t.handle.Match(expr)
	if err != nil {
		return nil, fmt.Errorf("matching %q: %w", expr, err)
	}

	out := make([]PathValue, len(paths))

	for i, p := range paths {
		value, err := t.handle.Get(p)
		if err != nil {
			out[i] = PathValue{Path: p, Value: nil}

			continue
		}

		v := value
		out[i] = PathValue{Path: p, Value: &v}
	}

	return out, nil
}

func (t *realTree) Move(src, dst string) error {
	if err := t.handle.Mv(src, dst); err != nil {
		return fmt.Errorf("moving %s to %s: %w", src, dst, err)
	}

	return nil
}

func (t *realTree) InferLens(target string) (string, error) {
	expr := fmt.Sprintf(
		"/augeas/load/*[incl =~ glob(%q)][excl !~ glob(%q)]",
		target, target,
	)

	matches, err := t.handle.Match(expr)
	if err != nil {
		return "", fmt.Errorf("inferring lens for %s: %w", target, err)
	}

	lens, ok := common.First(matches)
	if !ok {
		return "", fmt.Errorf("no lens applies to target %q", target)
	}

	// Path is "/augeas/load/<Lens>"; the lens name is the final segment.
	for i := len(lens) - 1; i >= 0; i-- {
		if lens[i] == '/' {
			return lens[i+1:], nil
		}
	}

	return lens, nil
}

func (t *realTree) Close() error {
	t.handle.Close()

	return nil
}
