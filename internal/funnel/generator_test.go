package funnel

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMonotonicity(t *testing.T) {
	for _, seed := range []int64{1, 17, 42, 2024} {
		events, err := GenerateSeed(seed, 3000, DefaultScenario())
		require.NoError(t, err)

		for i, e := range events {
			if e.Click {
				assert.True(t, e.Open, "seed %d row %d: click without open", seed, i)
			}
			if e.Open {
				assert.True(t, e.Reach, "seed %d row %d: open without reach", seed, i)
			}
			if e.Reach {
				assert.True(t, e.Target, "seed %d row %d: reach without target", seed, i)
			}
		}
	}
}

func TestGenerateDeterministic(t *testing.T) {
	first, err := GenerateSeed(17, 6000, DefaultScenario())
	require.NoError(t, err)
	second, err := GenerateSeed(17, 6000, DefaultScenario())
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestGenerateDifferentSeedsDiffer(t *testing.T) {
	a, err := GenerateSeed(17, 500, DefaultScenario())
	require.NoError(t, err)
	b, err := GenerateSeed(18, 500, DefaultScenario())
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestGenerateNegativeRows(t *testing.T) {
	_, err := GenerateSeed(17, -1, DefaultScenario())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestGenerateZeroRows(t *testing.T) {
	events, err := GenerateSeed(17, 0, DefaultScenario())
	require.NoError(t, err)
	assert.Empty(t, events)
}

func TestGenerateFieldDomains(t *testing.T) {
	events, err := GenerateSeed(17, 2000, DefaultScenario())
	require.NoError(t, err)
	require.Len(t, events, 2000)

	yearEnd := time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)
	for _, e := range events {
		assert.True(t, strings.HasPrefix(e.HCPID, "HCP"))
		assert.Contains(t, Brands, e.Brand)
		assert.Contains(t, CampaignsByBrand[e.Brand], e.Campaign, "campaign must belong to its brand")
		assert.Contains(t, Specialties, e.Specialty)
		assert.Contains(t, Regions, e.Region)
		assert.False(t, e.EventDate.Before(yearStart))
		assert.False(t, e.EventDate.After(yearEnd))
	}
}

func TestGenerateTargetRateWithinBand(t *testing.T) {
	events, err := GenerateSeed(17, 6000, DefaultScenario())
	require.NoError(t, err)

	summary := Aggregate(events, ModeEvents)

	// Expectation is 6000 * 0.85 = 5100; the band is generous because it
	// depends on the RNG stream, not on a fixed golden value.
	assert.GreaterOrEqual(t, summary.Counts.Target, 4800)
	assert.LessOrEqual(t, summary.Counts.Target, 5400)
}

func TestGenerateHCPPoolBounds(t *testing.T) {
	pool := HCPPool()
	require.Len(t, pool, HCPPoolSize)
	assert.Equal(t, "HCP01000", pool[0])
	assert.Equal(t, "HCP01499", pool[len(pool)-1])

	events, err := GenerateSeed(3, 1000, DefaultScenario())
	require.NoError(t, err)
	for _, e := range events {
		assert.GreaterOrEqual(t, e.HCPID, "HCP01000")
		assert.LessOrEqual(t, e.HCPID, "HCP01499")
	}
}

func TestWeightedRegionDistribution(t *testing.T) {
	rng := NewRand(99)
	const n = 100000
	counts := map[string]int{}
	for i := 0; i < n; i++ {
		counts[weightedRegion(rng)]++
	}

	for i, region := range Regions {
		got := float64(counts[region]) / n
		assert.InDelta(t, RegionWeights[i], got, 0.01, "region %s", region)
	}
}
