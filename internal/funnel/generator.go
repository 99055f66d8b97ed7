package funnel

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"time"
)

// The simulated campaign year. 2024 is a leap year, so 366 candidate dates.
var (
	yearStart = time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearDays  = 366
)

// NewRand returns a PCG-seeded random source. The same seed always yields
// the same draw sequence, which makes Generate fully deterministic.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)))
}

// GenerateSeed generates rows events from a fresh source seeded with seed.
func GenerateSeed(seed int64, rows int, sc Scenario) ([]Event, error) {
	return Generate(NewRand(seed), rows, sc)
}

// Generate produces rows simulated funnel events. The random source is
// explicit so callers own determinism and the generator stays testable in
// isolation. Draws happen per record in upstream-to-downstream stage order,
// which guarantees the monotonicity invariant by construction: a stage flag
// can only be set when the previous stage flag is.
func Generate(rng *rand.Rand, rows int, sc Scenario) ([]Event, error) {
	if rows < 0 {
		return nil, fmt.Errorf("%w: negative row count %d", ErrInvalidArgument, rows)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}

	events := make([]Event, 0, rows)
	for i := 0; i < rows; i++ {
		events = append(events, generateOne(rng, sc))
	}
	return events, nil
}

func generateOne(rng *rand.Rand, sc Scenario) Event {
	e := Event{
		HCPID: hcpID(rng.IntN(HCPPoolSize)),
	}

	e.Brand = Brands[rng.IntN(len(Brands))]
	campaigns := CampaignsByBrand[e.Brand]
	e.Campaign = campaigns[rng.IntN(len(campaigns))]

	e.EventDate = yearStart.AddDate(0, 0, rng.IntN(yearDays))

	e.Specialty = Specialties[rng.IntN(len(Specialties))]
	e.Region = weightedRegion(rng)

	e.Target = bernoulli(rng, sc.TargetRate)
	e.Reach = e.Target && bernoulli(rng, sc.ReachRate)

	openBase := e.Reach && bernoulli(rng, sc.OpenRate)
	openLift := (slices.Contains(sc.LiftCampaigns, e.Campaign) && bernoulli(rng, sc.OpenCampaignLift)) ||
		(e.Brand == sc.LiftBrand && bernoulli(rng, sc.OpenBrandLift))
	e.Open = e.Reach && (openBase || openLift)

	clickBase := e.Open && bernoulli(rng, sc.ClickRate)
	clickLift := slices.Contains(sc.LiftSpecialties, e.Specialty) && bernoulli(rng, sc.ClickSpecialtyLift)
	e.Click = e.Open && (clickBase || clickLift)

	return e
}

func bernoulli(rng *rand.Rand, p float64) bool {
	return rng.Float64() < p
}

func weightedRegion(rng *rand.Rand) string {
	u := rng.Float64()
	acc := 0.0
	for i, w := range RegionWeights {
		acc += w
		if u < acc {
			return Regions[i]
		}
	}
	// Guards against the weights summing to slightly under 1.
	return Regions[len(Regions)-1]
}
