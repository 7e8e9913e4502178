package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrUnknownProfile is returned when a profile name is neither built in nor a readable file.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile holds the gameplay tuning of one game variant.
type Profile struct {
	Name string `yaml:"name"`

	// Regular spawning.
	SpawnInterval  time.Duration `yaml:"spawnInterval"`
	Quota          int           `yaml:"quota"`
	WaveSize       int           `yaml:"waveSize"` // 0 or >= Quota disables wave pauses
	WaveDelay      time.Duration `yaml:"waveDelay"`
	LaunchSpeedMin float64       `yaml:"launchSpeedMin"`
	LaunchSpeedMax float64       `yaml:"launchSpeedMax"`

	// Boss.
	BossHP         int           `yaml:"bossHP"`
	BossSpeed      float64       `yaml:"bossSpeed"`
	BossIntroDelay time.Duration `yaml:"bossIntroDelay"`
	MiniCount      int           `yaml:"miniCount"`
	MiniSpeedMin   float64       `yaml:"miniSpeedMin"`
	MiniSpeedMax   float64       `yaml:"miniSpeedMax"`

	// Power-ups.
	PowerUps      bool          `yaml:"powerUps"`
	PowerUpChance float64       `yaml:"powerUpChance"`
	BuffDuration  time.Duration `yaml:"buffDuration"`

	// Scoring.
	ComboScoring bool          `yaml:"comboScoring"`
	ComboWindow  time.Duration `yaml:"comboWindow"`
	ComboDecay   time.Duration `yaml:"comboDecay"` // subtracted from the combo window every tick
	HitPoints    int           `yaml:"hitPoints"`  // base points per hit, multiplied by the combo

	// TimeLimit > 0 enables the countdown to GAME_OVER.
	TimeLimit time.Duration `yaml:"timeLimit"`

	Stars int `yaml:"stars"`
}

// Waved reports whether spawning pauses between waves.
func (p Profile) Waved() bool {
	return p.WaveSize > 0 && p.WaveSize < p.Quota
}

// Timed reports whether the level runs against a countdown.
func (p Profile) Timed() bool {
	return p.TimeLimit > 0
}

// Arcade is the full variant: waves, power-ups and combo scoring.
func Arcade() Profile {
	return Profile{
		Name:           "arcade",
		SpawnInterval:  2 * time.Second,
		Quota:          15,
		WaveSize:       5,
		WaveDelay:      3 * time.Second,
		LaunchSpeedMin: 12,
		LaunchSpeedMax: 18,
		BossHP:         20,
		BossSpeed:      5,
		BossIntroDelay: 2500 * time.Millisecond,
		MiniCount:      15,
		MiniSpeedMin:   3,
		MiniSpeedMax:   6,
		PowerUps:       true,
		PowerUpChance:  0.1,
		BuffDuration:   5 * time.Second,
		ComboScoring:   true,
		ComboWindow:    2 * time.Second,
		ComboDecay:     16 * time.Millisecond,
		HitPoints:      100,
		Stars:          50,
	}
}

// Classic is the simpler variant: continuous spawning, no power-ups, flat hit points.
func Classic() Profile {
	p := Arcade()
	p.Name = "classic"
	p.WaveSize = p.Quota
	p.WaveDelay = 0
	p.BossHP = 15
	p.PowerUps = false
	p.PowerUpChance = 0
	p.ComboScoring = false
	return p
}

// Timed is the arcade variant racing a countdown.
func Timed() Profile {
	p := Arcade()
	p.Name = "timed"
	p.TimeLimit = 90 * time.Second
	return p
}

var builtins = map[string]func() Profile{
	"arcade":  Arcade,
	"classic": Classic,
	"timed":   Timed,
}

// ProfileNames lists the built-in profiles in name order.
func ProfileNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuiltinProfile returns the named built-in profile.
func BuiltinProfile(name string) (Profile, error) {
	fn, ok := builtins[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (built-in: %s)", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
	}
	return fn(), nil
}

// ResolveProfile accepts a built-in name or a path to a YAML file.
// An empty string selects arcade.
func ResolveProfile(nameOrPath string) (Profile, error) {
	if nameOrPath == "" {
		return Arcade(), nil
	}
	if p, err := BuiltinProfile(nameOrPath); err == nil {
		return p, nil
	}
	if _, err := os.Stat(nameOrPath); err != nil {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownProfile, nameOrPath)
	}
	return LoadProfile(nameOrPath)
}

// LoadProfile reads a YAML profile. A "base" key selects the built-in the
// file overrides (default arcade); every other key overrides one field.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read profile file: %w", err)
	}
	return ParseProfile(data)
}

// ParseProfile is LoadProfile for in-memory YAML.
func ParseProfile(data []byte) (Profile, error) {
	var head struct {
		Base string `yaml:"base"`
	}
	if err := yaml.Unmarshal(data, &head); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile YAML: %w", err)
	}

	p := Arcade()
	if head.Base != "" {
		base, err := BuiltinProfile(head.Base)
		if err != nil {
			return Profile{}, err
		}
		p = base
	}

	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("failed to parse profile YAML: %w", err)
	}
	if p.Name == "" {
		p.Name = "custom"
	}

	if err := p.Validate(); err != nil {
		return Profile{}, fmt.Errorf("invalid profile %q: %w", p.Name, err)
	}
	return p, nil
}

// Validate checks that the profile can drive a game.
func (p Profile) Validate() error {
	switch {
	case p.SpawnInterval <= 0:
		return fmt.Errorf("spawnInterval must be > 0, got %s", p.SpawnInterval)
	case p.Quota < 1:
		return fmt.Errorf("quota must be >= 1, got %d", p.Quota)
	case p.WaveSize < 0:
		return fmt.Errorf("waveSize must be >= 0, got %d", p.WaveSize)
	case p.Waved() && p.WaveDelay <= 0:
		return fmt.Errorf("waveDelay must be > 0 when waves are enabled, got %s", p.WaveDelay)
	case p.LaunchSpeedMin <= 0 || p.LaunchSpeedMax < p.LaunchSpeedMin:
		return fmt.Errorf("launch speed range [%g, %g] is invalid", p.LaunchSpeedMin, p.LaunchSpeedMax)
	case p.BossHP < 1:
		return fmt.Errorf("bossHP must be >= 1, got %d", p.BossHP)
	case p.BossSpeed <= 0:
		return fmt.Errorf("bossSpeed must be > 0, got %g", p.BossSpeed)
	case p.BossIntroDelay < 0:
		return fmt.Errorf("bossIntroDelay must be >= 0, got %s", p.BossIntroDelay)
	case p.MiniCount < 0:
		return fmt.Errorf("miniCount must be >= 0, got %d", p.MiniCount)
	case p.MiniSpeedMax < p.MiniSpeedMin:
		return fmt.Errorf("mini speed range [%g, %g] is invalid", p.MiniSpeedMin, p.MiniSpeedMax)
	case p.PowerUpChance < 0 || p.PowerUpChance > 1:
		return fmt.Errorf("powerUpChance must be within [0, 1], got %g", p.PowerUpChance)
	case p.PowerUps && p.BuffDuration <= 0:
		return fmt.Errorf("buffDuration must be > 0 when power-ups are enabled, got %s", p.BuffDuration)
	case p.ComboWindow <= 0 || p.ComboDecay <= 0:
		return fmt.Errorf("comboWindow and comboDecay must be > 0")
	case p.HitPoints < 0:
		return fmt.Errorf("hitPoints must be >= 0, got %d", p.HitPoints)
	case p.TimeLimit < 0:
		return fmt.Errorf("timeLimit must be >= 0, got %s", p.TimeLimit)
	case p.Stars < 0:
		return fmt.Errorf("stars must be >= 0, got %d", p.Stars)
	}
	return nil
}
