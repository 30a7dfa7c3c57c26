package predicate

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strp(s string) *string { return &s }

func TestChoose_FirstTierUniqueFirstTail(t *testing.T) {
	g := NewGroup("/files/etc/hosts/entry")
	g.AddSegment("/ipaddr", strp("10.0.0.1"), 1, false)
	g.AddSegment("/ipaddr", strp("10.0.0.2"), 2, false)
	g.AddSegment("/ipaddr", strp("10.0.0.3"), 3, false)

	tail := Choose(g, 1)

	require.NotNil(t, tail)
	assert.Equal(t, FirstTail, g.ChosenState(1))
	assert.Equal(t, "10.0.0.1", *tail.Value)
}

func TestChoose_SecondTierUniqueGroupWide(t *testing.T) {
	g := NewGroup("/files/etc/passwd/entry")

	for i, name := range []string{"root", "daemon", "root"} {
		pos := i + 1
		g.AddSegment("/name", strp(name), pos, false)
	}

	g.AddSegment("/uid", strp("0"), 1, false)
	g.AddSegment("/uid", strp("1"), 2, false)
	g.AddSegment("/uid", strp("2"), 3, false)

	// position 1 and 3 share name="root" so /name is not unique there;
	// /uid is unique at every position and exists everywhere.
	tail1 := Choose(g, 1)
	require.NotNil(t, tail1)
	assert.Equal(t, ChosenTailStart, g.ChosenState(1))
	assert.Equal(t, "/uid", tail1.SimpleTail)

	tail2 := Choose(g, 2)
	if !assert.Equal(t, FirstTail, g.ChosenState(2)) {
		t.Log(spew.Sdump(g))
	}

	assert.Equal(t, "/name", tail2.SimpleTail)
}

func TestChoose_NoChildNodes(t *testing.T) {
	g := NewGroup("/files/etc/empty/entry")

	tail := Choose(g, 1)

	assert.Nil(t, tail)
	assert.Equal(t, NoChildNodes, g.ChosenState(1))
}

func TestChooseAll_PopulatesEveryPosition(t *testing.T) {
	s := NewSet()
	g := s.FindOrCreateGroup("/files/etc/hosts/entry")
	g.AddSegment("/ipaddr", strp("10.0.0.1"), 1, false)
	g.AddSegment("/ipaddr", strp("10.0.0.2"), 2, false)

	ChooseAll(s, false, 8, false, 30)

	assert.NotNil(t, g.ChosenTail(1))
	assert.NotNil(t, g.ChosenTail(2))
}

func TestChooseAll_SkipsWidthDerivationForSparsePosition(t *testing.T) {
	s := NewSet()
	g := s.FindOrCreateGroup("/files/etc/fstab/entry")
	g.AddSegment("/spec", strp("/dev/sda1"), 1, false)
	// position 2 deliberately has no segments; MaxPosition still advances to 3.
	g.AddSegment("/spec", strp("/dev/sda3"), 3, false)

	assert.NotPanics(t, func() {
		ChooseAll(s, true, 4, true, 30)
	})

	assert.Equal(t, NoChildNodes, g.ChosenState(2))
	assert.Nil(t, g.ChosenTail(2))
}

func TestValueCmp_RegexpTreatsBracketAsWildcard(t *testing.T) {
	a, b := "foo]bar", "foo0bar"

	equal, matched := valueCmp(&a, &b, true)

	assert.True(t, equal)
	assert.Equal(t, len(a), matched)
}

func TestValueCmp_ExactModeRequiresEquality(t *testing.T) {
	a, b := "foo]bar", "foo0bar"

	equal, _ := valueCmp(&a, &b, false)

	assert.False(t, equal)
}

func TestValueCmp_BothNil(t *testing.T) {
	equal, matched := valueCmp(nil, nil, false)

	assert.True(t, equal)
	assert.Equal(t, 0, matched)
}
