package pipeline

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"augpredicate/internal/aug"
	"augpredicate/internal/config"
	"augpredicate/internal/diagnostic"
	"augpredicate/internal/pathseg"
	"augpredicate/internal/predicate"
	"augpredicate/internal/render"
)

// matchExpr is the one query the pipeline ever issues against a Tree: every
// node under /files, in document order.
const matchExpr = "/files/descendant::*"

// segmented is one matched (path, value) pair together with its segment
// chain, before grouping has resolved which group owns each segment.
type segmented struct {
	pathValue aug.PathValue
	segments  []pathseg.Segment
}

// Run pulls every path under /files out of tree, disambiguates each
// position against a numeric index, and writes the resulting "set" script
// to out. Internal-consistency problems are recorded on diags rather than
// aborting the run; the offending position falls back to a wildcard.
// logger traces split_path, find_or_create_group, choose_tail,
// grow_position_arrays, and output_segment decisions at Debug level; a nil
// logger disables tracing entirely.
func Run(tree aug.Tree, cfg config.Config, out io.Writer, diags *diagnostic.Diagnostics, logger *log.Logger) error {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	matches, err := tree.Match(matchExpr)
	if err != nil {
		return fmt.Errorf("matching tree: %w", err)
	}

	segs := make([]segmented, len(matches))
	for i, pv := range matches {
		segments := pathseg.Split(pv.Path, cfg.NoSeq)
		logger.Debug("split_path", "path", pv.Path, "segments", len(segments))

		segs[i] = segmented{pathValue: pv, segments: segments}
	}

	groups := predicate.NewSet()
	groups.Logger = logger
	owners := assignGroups(groups, segs, cfg.UseRegexp)

	predicate.ChooseAll(groups, cfg.UseRegexp, cfg.EffectiveRegexpMinLen(), cfg.Pretty, config.MaxPrettyWidth)

	checkConsistency(groups, diags)

	entries := buildEntries(segs, owners)

	emitter := &render.Emitter{
		Writer:    out,
		Pretty:    cfg.Pretty,
		UseRegexp: cfg.UseRegexp,
		NoSeq:     cfg.NoSeq,
		Verbose:   cfg.Verbose,
		Logger:    logger,
	}

	return emitter.Emit(entries)
}

// assignGroups feeds every positioned segment into its group, returning,
// per entry per segment, the group that owns it (nil for the trailing
// segment).
func assignGroups(groups *predicate.Set, segs []segmented, useRegexp bool) [][]*predicate.Group {
	owners := make([][]*predicate.Group, len(segs))

	for i, e := range segs {
		owners[i] = make([]*predicate.Group, len(e.segments))

		for j, seg := range e.segments {
			if seg.Position == pathseg.NoPosition {
				continue
			}

			g := groups.FindOrCreateGroup(seg.Head)
			g.AddSegment(seg.SimplifiedTail, e.pathValue.Value, seg.Position, useRegexp)
			owners[i][j] = g
		}
	}

	return owners
}

func buildEntries(segs []segmented, owners [][]*predicate.Group) []render.Entry {
	entries := make([]render.Entry, len(segs))

	for i, e := range segs {
		resolved := make([]render.ResolvedSegment, len(e.segments))
		for j, seg := range e.segments {
			resolved[j] = render.ResolvedSegment{Segment: seg, Group: owners[i][j]}
		}

		entries[i] = render.Entry{Path: e.pathValue.Path, Value: e.pathValue.Value, Segments: resolved}
	}

	return entries
}

// checkConsistency flags any group position whose chosen tail came back
// nil for a reason other than the group genuinely having no children —
// this signals a segmentation or grouping bug rather than a shape of input
// data the algorithm expects to see.
func checkConsistency(groups *predicate.Set, diags *diagnostic.Diagnostics) {
	for _, g := range groups.All() {
		for pos := 1; pos <= g.MaxPosition; pos++ {
			if g.ChosenTail(pos) == nil && g.ChosenState(pos) != predicate.NoChildNodes {
				diags.AddInternal(g.Head, pos, "choose_tail returned no tail for a non-empty position")
			}
		}
	}
}
