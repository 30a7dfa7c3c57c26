package pipeline

import (
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"augpredicate/internal/aug"
	"augpredicate/internal/aug/fake"
	"augpredicate/internal/config"
	"augpredicate/internal/diagnostic"
)

func strp(s string) *string { return &s }

func TestRun_EmitsSetLinesForEachEntry(t *testing.T) {
	tree := fake.New([]aug.PathValue{
		{Path: "/files/etc/hosts/1/ipaddr", Value: strp("10.0.0.1")},
		{Path: "/files/etc/hosts/1/canonical", Value: strp("host1")},
		{Path: "/files/etc/hosts/2/ipaddr", Value: strp("10.0.0.2")},
		{Path: "/files/etc/hosts/2/canonical", Value: strp("host2")},
	})

	var out strings.Builder

	diags := &diagnostic.Diagnostics{}
	err := Run(tree, config.Config{}, &out, diags, nil)

	require.NoError(t, err)
	assert.False(t, diags.HasInternal())

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	assert.Len(t, lines, 4)

	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "set /files/etc/hosts/"))
	}
}

func TestRun_VerboseEchoesInput(t *testing.T) {
	tree := fake.New([]aug.PathValue{
		{Path: "/files/etc/hosts/1/canonical", Value: strp("host1")},
	})

	var out strings.Builder

	err := Run(tree, config.Config{Verbose: true}, &out, &diagnostic.Diagnostics{}, nil)

	require.NoError(t, err)
	assert.Contains(t, out.String(), "#   /files/etc/hosts/1/canonical")
}

func TestRun_NoSeqUsesStarLiteral(t *testing.T) {
	tree := fake.New([]aug.PathValue{
		{Path: "/files/etc/aliases/1/name", Value: strp("root")},
		{Path: "/files/etc/aliases/2/name", Value: strp("admin")},
	})

	var out strings.Builder

	err := Run(tree, config.Config{NoSeq: true}, &out, &diagnostic.Diagnostics{}, nil)

	require.NoError(t, err)
	assert.NotContains(t, out.String(), "seq::*")
}

func TestRun_DebugLoggerTracesEachStage(t *testing.T) {
	tree := fake.New([]aug.PathValue{
		{Path: "/files/etc/hosts/1/ipaddr", Value: strp("10.0.0.1")},
		{Path: "/files/etc/hosts/2/ipaddr", Value: strp("10.0.0.2")},
	})

	var out, logs strings.Builder

	logger := log.New(&logs)
	logger.SetLevel(log.DebugLevel)

	err := Run(tree, config.Config{}, &out, &diagnostic.Diagnostics{}, logger)
	require.NoError(t, err)

	trace := logs.String()
	assert.Contains(t, trace, "split_path")
	assert.Contains(t, trace, "find_or_create_group")
	assert.Contains(t, trace, "choose_tail")
	assert.Contains(t, trace, "output_segment")
}
