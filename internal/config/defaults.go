package config

import (
	_ "embed"
)

//go:embed defaults/aquarium.yaml
var defaultAquariumYAML []byte

// DefaultConfig returns the default aquarium configuration.
func DefaultConfig() Config {
	return Config{
		TickRate: 10,
		Gradient: GradientConfig{
			Light: "#87cefa",
			Dark:  "#191970",
		},
		Population: map[string]int{
			"fish":           5,
			"sea_urchin":     5,
			"bottom_dweller": 2,
			"cephalopod":     2,
			"coral":          5,
			"shell":          5,
			"rock":           5,
			"seaweed":        10,
			"human":          2,
			"garden_eel":     5,
		},
		Behavior: DefaultBehavior(),
		Census: CensusConfig{
			Every: 100,
		},
	}
}

// DefaultBehavior returns the default movement tunables.
func DefaultBehavior() BehaviorConfig {
	return BehaviorConfig{
		FishTurnChance:     0.05,
		FishBubbleChance:   0.1,
		FishBubbleCooldown: 5,

		DwellerStepChance: 0.3,
		DwellerTurnChance: 0.05,

		BubbleDriftChance: 0.1,

		InkFade:            0.01,
		InkSpreadThreshold: 0.3,
		InkSpreadFalloff:   0.3,
		InkSpreadChance:    1,

		CephalopodSenseRadius: 5,
		CephalopodInkChance:   0.1,
		CephalopodHuntChance:  0.1,

		SeaweedGrowthChance: 0.01,

		EelShiftChance:  0.1,
		EelColonySpread: 8,

		HumanTurnChance:    0.05,
		HumanLookChance:    0.05,
		HumanSenseRadius:   5,
		HumanVerticalDelay: 10,
		HumanBubblePeriod:  21,
		HumanBubbleBurst:   7,
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultAquariumYAML
}
