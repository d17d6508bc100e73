// Package config provides YAML-based aquarium configuration loading
// for the tank and its host.
package config

// Config contains all configuration for an aquarium run.
type Config struct {
	TickRate   int            `yaml:"tick_rate"`
	Gradient   GradientConfig `yaml:"gradient"`
	Population map[string]int `yaml:"population"` // species name -> seeded count
	Behavior   BehaviorConfig `yaml:"behavior"`
	Census     CensusConfig   `yaml:"census"`
}

// GradientConfig defines the water background, blended top to bottom.
type GradientConfig struct {
	Light string `yaml:"light"` // Hex color of the surface row
	Dark  string `yaml:"dark"`  // Hex color approached at the floor
}

// BehaviorConfig holds the tunables of the per-species movement rules.
// Chances are per-tick probabilities in [0, 1].
type BehaviorConfig struct {
	FishTurnChance     float64 `yaml:"fish_turn_chance"`
	FishBubbleChance   float64 `yaml:"fish_bubble_chance"`
	FishBubbleCooldown int     `yaml:"fish_bubble_cooldown"` // Ticks between fish bubbles

	DwellerStepChance float64 `yaml:"dweller_step_chance"`
	DwellerTurnChance float64 `yaml:"dweller_turn_chance"`

	BubbleDriftChance float64 `yaml:"bubble_drift_chance"`

	InkFade            float64 `yaml:"ink_fade"`             // Opacity lost per tick
	InkSpreadThreshold float64 `yaml:"ink_spread_threshold"` // Ink spreads only above this opacity
	InkSpreadFalloff   float64 `yaml:"ink_spread_falloff"`   // Opacity lost by each spread copy
	InkSpreadChance    float64 `yaml:"ink_spread_chance"`    // Per free neighbor, per tick

	CephalopodSenseRadius float64 `yaml:"cephalopod_sense_radius"`
	CephalopodInkChance   float64 `yaml:"cephalopod_ink_chance"`
	CephalopodHuntChance  float64 `yaml:"cephalopod_hunt_chance"`

	SeaweedGrowthChance float64 `yaml:"seaweed_growth_chance"`

	EelShiftChance  float64 `yaml:"eel_shift_chance"`
	EelColonySpread int     `yaml:"eel_colony_spread"` // Max column distance from the colony center

	HumanTurnChance    float64 `yaml:"human_turn_chance"`
	HumanLookChance    float64 `yaml:"human_look_chance"`
	HumanSenseRadius   float64 `yaml:"human_sense_radius"`
	HumanVerticalDelay int     `yaml:"human_vertical_delay"` // Ticks between vertical steps
	HumanBubblePeriod  int     `yaml:"human_bubble_period"`  // Ticks in one breathing cycle
	HumanBubbleBurst   int     `yaml:"human_bubble_burst"`   // Bubbling ticks at the end of a cycle
}

// CensusConfig controls population sampling by the host.
type CensusConfig struct {
	Every int `yaml:"every"` // Ticks between samples; 0 disables
}
