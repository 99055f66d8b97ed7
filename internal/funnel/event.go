// Package funnel implements the synthetic campaign dataset generator and the
// funnel aggregation logic that backs the dashboard API.
package funnel

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidArgument is returned when a caller supplies an unknown enum value
// or an out-of-range parameter. All other arithmetic degeneracies (empty
// inputs, zero denominators) are defined results, not errors.
var ErrInvalidArgument = errors.New("invalid argument")

// Event is one simulated touchpoint between an HCP and a campaign.
// The four stage flags are monotone: Click implies Open implies Reach
// implies Target.
type Event struct {
	HCPID     string    `json:"hcp_id"`
	Brand     string    `json:"brand"`
	Campaign  string    `json:"campaign"`
	EventDate time.Time `json:"event_date"`
	Target    bool      `json:"target"`
	Reach     bool      `json:"reach"`
	Open      bool      `json:"open"`
	Click     bool      `json:"click"`
	Specialty string    `json:"specialty"`
	Region    string    `json:"region"`
}

// Categorical universes. These match the simulated 2024 campaign portfolio:
// two brands with two campaigns each, six specialties, four sales regions.
var (
	Brands = []string{"Brand A", "Brand B"}

	CampaignsByBrand = map[string][]string{
		"Brand A": {"Awareness", "Engagement"},
		"Brand B": {"Retention", "New Launch"},
	}

	Specialties = []string{
		"Cardiologist", "Oncologist", "Pediatrician",
		"Dermatologist", "Endocrinologist", "Neurologist",
	}

	Regions = []string{"N", "S", "E", "W"}

	// RegionWeights are the draw probabilities for Regions, index-aligned.
	RegionWeights = []float64{0.30, 0.25, 0.25, 0.20}
)

// Campaigns returns all campaigns across brands, brand order preserved.
func Campaigns() []string {
	out := make([]string, 0, 4)
	for _, b := range Brands {
		out = append(out, CampaignsByBrand[b]...)
	}
	return out
}

// HCPPoolSize is the number of distinct HCP identifiers events are drawn from.
const HCPPoolSize = 500

// hcpID formats the i-th pool member, i in [0, HCPPoolSize).
func hcpID(i int) string {
	return fmt.Sprintf("HCP%05d", 1000+i)
}

// HCPPool returns the full identifier pool in order.
func HCPPool() []string {
	pool := make([]string, HCPPoolSize)
	for i := range pool {
		pool[i] = hcpID(i)
	}
	return pool
}

// Stage is one of the four funnel stages in dependency order.
type Stage string

const (
	StageTarget Stage = "Target"
	StageReach  Stage = "Reach"
	StageOpen   Stage = "Open"
	StageClick  Stage = "Click"
)

// Stages lists the funnel stages in dependency order.
var Stages = []Stage{StageTarget, StageReach, StageOpen, StageClick}

// flag returns the stage flag of e for s.
func (e Event) flag(s Stage) bool {
	switch s {
	case StageTarget:
		return e.Target
	case StageReach:
		return e.Reach
	case StageOpen:
		return e.Open
	default:
		return e.Click
	}
}
