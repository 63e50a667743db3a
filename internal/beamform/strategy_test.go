package beamform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStrategy(t *testing.T) {
	for _, s := range []Strategy{PartitionByPoint, PartitionByChannelReduce, PartitionByChannelLocked} {
		got, err := ParseStrategy(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
	got, err := ParseStrategy(" Channel-Reduce ")
	require.NoError(t, err)
	assert.Equal(t, PartitionByChannelReduce, got)

	got, err = ParseStrategy("")
	require.NoError(t, err)
	assert.Equal(t, PartitionByPoint, got)

	for _, bad := range []string{"channel", "channel-shared", "unlocked", "row"} {
		_, err := ParseStrategy(bad)
		assert.Error(t, err, bad)
	}
	assert.Equal(t, "Strategy(9)", Strategy(9).String())
}

func TestParseTopology(t *testing.T) {
	for in, want := range map[string]Topology{
		"":          TopologyBarrier,
		"barrier":   TopologyBarrier,
		"forkjoin":  TopologyForkJoin,
		"Fork-Join": TopologyForkJoin,
	} {
		got, err := ParseTopology(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseTopology("pool")
	assert.Error(t, err)
	assert.Equal(t, "forkjoin", TopologyForkJoin.String())
}
