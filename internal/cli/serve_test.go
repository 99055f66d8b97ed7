package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServeOverridesTrackSeedFlag(t *testing.T) {
	assert.False(t, serveOverrides(serveCmd.Flags()).SeedSet, "seed starts unset")

	require.NoError(t, serveCmd.ParseFlags([]string{"--seed", "0", "--rows", "250", "--port", "8080"}))
	t.Cleanup(func() {
		serveSeed = 0
		serveRows = 0
		servePort = ""
	})

	o := serveOverrides(serveCmd.Flags())
	assert.True(t, o.SeedSet, "an explicit --seed 0 counts as set")
	assert.Equal(t, int64(0), o.Seed)
	assert.Equal(t, 250, o.Rows)
	assert.Equal(t, "8080", o.Port)
}
