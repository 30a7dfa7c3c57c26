package fake

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augpredicate/internal/aug"
)

func strp(s string) *string { return &s }

func TestTree_MatchRejectsUnsupportedExpr(t *testing.T) {
	tr := New(nil)

	_, err := tr.Match("/files/etc/hosts/*")
	assert.Error(t, err)
}

func TestTree_MatchAppliesMove(t *testing.T) {
	tr := New([]aug.PathValue{
		{Path: "/files/tmp/fstab/1/spec", Value: strp("/dev/sda1")},
	})

	require.NoError(t, tr.Move("/files/tmp/fstab", "/files/etc/fstab"))

	matches, err := tr.Match("/files/descendant::*")
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, "/files/etc/fstab/1/spec", matches[0].Path)
}

func TestTree_InferLensPicksLexicallyFirstOfSeveralCandidates(t *testing.T) {
	tr := New(nil)

	require.NoError(t, tr.Transform("Fstab", "/etc/fstab"))
	require.NoError(t, tr.Transform("Aliases", "/etc/fstab"))

	lens, err := tr.InferLens("/etc/fstab")
	require.NoError(t, err)
	assert.Equal(t, "Aliases", lens)
}

func TestTree_InferLensNoCandidatesIsError(t *testing.T) {
	tr := New(nil)

	_, err := tr.InferLens("/etc/unknown")
	assert.Error(t, err)
}
