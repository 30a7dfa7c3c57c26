package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDiagnostics_AddInternal(t *testing.T) {
	d := &Diagnostics{}

	d.AddInternal("/files/etc/hosts/entry", 3, "choose_tail returned %s", "nil")

	assert.True(t, d.HasInternal())
	require := assert.New(t)
	require.Len(d.Internal, 1)
	require.Equal(KindInternal, d.Internal[0].Kind)
	require.Contains(d.Lines()[0], "/files/etc/hosts/entry[3]")
}

func TestDiagnostics_EmptyHasNoInternal(t *testing.T) {
	d := &Diagnostics{}
	assert.False(t, d.HasInternal())
	assert.Empty(t, d.Lines())
}

func TestFatal_FormatsKindAndMessage(t *testing.T) {
	err := Fatal(KindInput, "missing file %s", "sudoers")
	assert.EqualError(t, err, "input error: missing file sudoers")
}
