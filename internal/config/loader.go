package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-aquarium/internal/core"
)

// Load loads the aquarium configuration. Values in the file override the defaults;
// omitted keys keep them.
// Search order: customPath -> ~/.aquarium/configs/aquarium.yaml -> ./configs/aquarium.yaml -> embedded default
func Load(customPath string) (Config, error) {
	cfg := DefaultConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("aquarium.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, nil
			}
			cfg = DefaultConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/aquarium.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, nil
		}
		cfg = DefaultConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAquariumYAML, &cfg); err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".aquarium", "configs", filename)
}

// Validate checks the configuration against the species the tank knows how to seed.
func (c Config) Validate(species []string) error {
	var errs []error

	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if _, err := core.ParseHex(c.Gradient.Light); err != nil {
		errs = append(errs, fmt.Errorf("gradient.light: %w", err))
	}
	if _, err := core.ParseHex(c.Gradient.Dark); err != nil {
		errs = append(errs, fmt.Errorf("gradient.dark: %w", err))
	}

	for name, count := range c.Population {
		if !slices.Contains(species, name) {
			errs = append(errs, fmt.Errorf("population: unknown species %q", name))
		}
		if count < 0 {
			errs = append(errs, fmt.Errorf("population.%s: negative count %d", name, count))
		}
	}

	b := c.Behavior
	chances := []struct {
		key string
		val float64
	}{
		{"fish_turn_chance", b.FishTurnChance},
		{"fish_bubble_chance", b.FishBubbleChance},
		{"dweller_step_chance", b.DwellerStepChance},
		{"dweller_turn_chance", b.DwellerTurnChance},
		{"bubble_drift_chance", b.BubbleDriftChance},
		{"ink_spread_chance", b.InkSpreadChance},
		{"cephalopod_ink_chance", b.CephalopodInkChance},
		{"cephalopod_hunt_chance", b.CephalopodHuntChance},
		{"seaweed_growth_chance", b.SeaweedGrowthChance},
		{"eel_shift_chance", b.EelShiftChance},
		{"human_turn_chance", b.HumanTurnChance},
		{"human_look_chance", b.HumanLookChance},
	}
	for _, ch := range chances {
		if ch.val < 0 || ch.val > 1 {
			errs = append(errs, fmt.Errorf("behavior.%s: %g is not a probability", ch.key, ch.val))
		}
	}

	// Timers, spreads and radii feed countdowns and random ranges
	counts := []struct {
		key string
		val float64
	}{
		{"fish_bubble_cooldown", float64(b.FishBubbleCooldown)},
		{"eel_colony_spread", float64(b.EelColonySpread)},
		{"human_vertical_delay", float64(b.HumanVerticalDelay)},
		{"human_bubble_period", float64(b.HumanBubblePeriod)},
		{"human_bubble_burst", float64(b.HumanBubbleBurst)},
		{"cephalopod_sense_radius", b.CephalopodSenseRadius},
		{"human_sense_radius", b.HumanSenseRadius},
		{"ink_spread_threshold", b.InkSpreadThreshold},
	}
	for _, n := range counts {
		if n.val < 0 {
			errs = append(errs, fmt.Errorf("behavior.%s must not be negative, got %g", n.key, n.val))
		}
	}
	if b.InkFade <= 0 {
		errs = append(errs, fmt.Errorf("behavior.ink_fade must be positive, got %g", b.InkFade))
	}
	if b.InkSpreadFalloff <= 0 {
		errs = append(errs, fmt.Errorf("behavior.ink_spread_falloff must be positive, got %g", b.InkSpreadFalloff))
	}
	if b.HumanBubblePeriod < b.HumanBubbleBurst {
		errs = append(errs, fmt.Errorf("behavior.human_bubble_burst (%d) exceeds human_bubble_period (%d)",
			b.HumanBubbleBurst, b.HumanBubblePeriod))
	}
	if c.Census.Every < 0 {
		errs = append(errs, fmt.Errorf("census.every must not be negative, got %d", c.Census.Every))
	}

	return errors.Join(errs...)
}
