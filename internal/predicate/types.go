package predicate

import "github.com/charmbracelet/log"

// State names which disambiguation tier produced a group position's chosen
// tail, and how far the emitter has progressed through the run of entries
// that share it. The tier is decided once per position by Choose; WIP/Done
// transitions happen as the emitter walks entries and are recorded back
// onto the group so a later entry sees the earlier one's progress.
type State int

const (
	NotDone State = iota
	FirstTail
	ChosenTailStart
	ChosenTailWIP
	ChosenTailDone
	ChosenTailPlusFirstTailStart
	ChosenTailPlusFirstTailWIP
	ChosenTailPlusFirstTailDone
	FirstTailPlusPosition
	NoChildNodes
)

// Tail is one distinct (simplified tail, value) pair observed among the
// children of some position within a group.
type Tail struct {
	SimpleTail string
	Value      *string

	// ValueRegexp is populated by ChooseReWidth, once the emitter knows it
	// needs a regex value at all.
	ValueRegexp string

	// valueFoundAt counts, per position, how many segments at that position
	// carried this exact (SimpleTail, Value) pair.
	valueFoundAt map[int]int
	// valueFoundTotal is the sum of valueFoundAt across every position.
	valueFoundTotal int
}

// FoundAt reports how many times this tail's exact value occurred at pos.
func (t *Tail) FoundAt(pos int) int { return t.valueFoundAt[pos] }

// FoundTotal reports how many times this tail's exact value occurred
// across every position in its group.
func (t *Tail) FoundTotal() int { return t.valueFoundTotal }

// Subgroup narrows a group to the positions where some particular tail (its
// FirstTail) was seen, used by the third disambiguation tier.
type Subgroup struct {
	FirstTail *Tail
	// Positions lists, in ascending order, every position at which
	// FirstTail occurs.
	Positions []int
}

// Group collects every segment sharing one absolute head. Positions run
// 1..MaxPosition; index 0 is unused so debug output can match the source
// tool's 1-based numbering.
type Group struct {
	Head        string
	MaxPosition int

	// Tails holds every distinct (simplified tail, value) pair seen
	// anywhere in the group, in first-seen order.
	Tails []*Tail

	// tailsAtPosition holds, per position, the tail of every segment that
	// occurred there, in first-seen order (duplicates included).
	tailsAtPosition map[int][]*Tail

	// tailCountAtPosition counts, per (simplified tail, position),
	// occurrences regardless of value; shared by every Tail with that
	// simplified tail.
	tailCountAtPosition map[string]map[int]int

	chosenTail  map[int]*Tail
	chosenState map[int]State
	firstTail   map[int]*Tail

	subgroups        map[*Tail]*Subgroup
	subgroupPosition map[int]int

	prettyWidth   map[int]int
	reWidthChosen map[int]int
	reWidthFirst  map[int]int

	// logger traces tier decisions and position-array growth at Debug
	// level; nil (the zero value from a bare NewGroup) means no trace, so
	// tests that build a Group directly never need to set one up.
	logger *log.Logger
}

// trace is a no-op when the group carries no logger.
func (g *Group) trace(msg string, keyvals ...interface{}) {
	if g.logger == nil {
		return
	}

	g.logger.Debug(msg, keyvals...)
}

// NewGroup constructs an empty group for the given absolute head.
func NewGroup(head string) *Group {
	return &Group{
		Head:                head,
		tailsAtPosition:     map[int][]*Tail{},
		tailCountAtPosition: map[string]map[int]int{},
		chosenTail:          map[int]*Tail{},
		chosenState:         map[int]State{},
		firstTail:           map[int]*Tail{},
		subgroups:           map[*Tail]*Subgroup{},
		subgroupPosition:    map[int]int{},
		prettyWidth:         map[int]int{},
		reWidthChosen:       map[int]int{},
		reWidthFirst:        map[int]int{},
	}
}

func (g *Group) TailsAt(pos int) []*Tail  { return g.tailsAtPosition[pos] }
func (g *Group) ChosenTail(pos int) *Tail { return g.chosenTail[pos] }
func (g *Group) ChosenState(pos int) State { return g.chosenState[pos] }
func (g *Group) FirstTail(pos int) *Tail  { return g.firstTail[pos] }
func (g *Group) SubgroupIndex(pos int) int { return g.subgroupPosition[pos] }
func (g *Group) PrettyWidth(pos int) int  { return g.prettyWidth[pos] }
func (g *Group) ReWidthChosen(pos int) int { return g.reWidthChosen[pos] }
func (g *Group) ReWidthFirst(pos int) int  { return g.reWidthFirst[pos] }

// SetChosenState lets the emitter advance a position's WIP/Done state as it
// walks entries.
func (g *Group) SetChosenState(pos int, s State) { g.chosenState[pos] = s }

// Set is the arena all groups in one run live in, keyed by absolute head.
type Set struct {
	byHead map[string]*Group
	order  []*Group

	// Logger is copied onto every group this set creates, tracing
	// find_or_create_group and, through the group, choose_tail and
	// grow_position_arrays decisions at Debug level. Nil disables tracing.
	Logger *log.Logger
}

// NewSet constructs an empty group arena.
func NewSet() *Set {
	return &Set{byHead: map[string]*Group{}}
}

// All returns every group created so far, in first-seen order.
func (s *Set) All() []*Group { return s.order }
