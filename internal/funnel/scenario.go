package funnel

import (
	"fmt"
	"os"
	"slices"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Scenario holds the probability knobs of the generator. The zero value is
// not usable; start from DefaultScenario or LoadScenario.
//
// Lift probabilities are independent boosts applied on top of the base
// conditional probability of their stage (see Generate).
type Scenario struct {
	TargetRate float64 `yaml:"target_rate" validate:"gte=0,lte=1"`
	ReachRate  float64 `yaml:"reach_rate" validate:"gte=0,lte=1"`
	OpenRate   float64 `yaml:"open_rate" validate:"gte=0,lte=1"`
	ClickRate  float64 `yaml:"click_rate" validate:"gte=0,lte=1"`

	OpenCampaignLift   float64 `yaml:"open_campaign_lift" validate:"gte=0,lte=1"`
	OpenBrandLift      float64 `yaml:"open_brand_lift" validate:"gte=0,lte=1"`
	ClickSpecialtyLift float64 `yaml:"click_specialty_lift" validate:"gte=0,lte=1"`

	// Membership sets the lifts apply to.
	LiftCampaigns   []string `yaml:"lift_campaigns"`
	LiftBrand       string   `yaml:"lift_brand"`
	LiftSpecialties []string `yaml:"lift_specialties"`
}

// DefaultScenario returns the 2024 portfolio simulation parameters.
func DefaultScenario() Scenario {
	return Scenario{
		TargetRate:         0.85,
		ReachRate:          0.68,
		OpenRate:           0.42,
		ClickRate:          0.20,
		OpenCampaignLift:   0.35,
		OpenBrandLift:      0.22,
		ClickSpecialtyLift: 0.18,
		LiftCampaigns:      []string{"Engagement", "New Launch"},
		LiftBrand:          "Brand A",
		LiftSpecialties:    []string{"Pediatrician", "Dermatologist"},
	}
}

var scenarioValidator = validator.New()

// Validate checks probability ranges and that every lift member belongs to
// the corresponding universe.
func (s Scenario) Validate() error {
	if err := scenarioValidator.Struct(s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidArgument, err)
	}

	campaigns := Campaigns()
	for _, c := range s.LiftCampaigns {
		if !slices.Contains(campaigns, c) {
			return fmt.Errorf("%w: unknown lift campaign %q", ErrInvalidArgument, c)
		}
	}
	if s.LiftBrand != "" && !slices.Contains(Brands, s.LiftBrand) {
		return fmt.Errorf("%w: unknown lift brand %q", ErrInvalidArgument, s.LiftBrand)
	}
	for _, sp := range s.LiftSpecialties {
		if !slices.Contains(Specialties, sp) {
			return fmt.Errorf("%w: unknown lift specialty %q", ErrInvalidArgument, sp)
		}
	}
	return nil
}

// LoadScenario reads a YAML scenario file. Fields omitted in the file keep
// their default values, so a file can override a single knob.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("read scenario: %w", err)
	}

	sc := DefaultScenario()
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return Scenario{}, fmt.Errorf("parse scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}
