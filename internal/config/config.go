package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/Garsondee/Zone-Royale/internal/game"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g.
// ZONEROYALE_ZONE_SHRINKRATE=0.2.
const EnvPrefix = "ZONEROYALE"

// ArenaConfig holds arena dimensions.
type ArenaConfig struct {
	Width  float64 `json:"width" mapstructure:"width"`
	Height float64 `json:"height" mapstructure:"height"`
}

// PlayerConfig holds body and movement settings shared by combatants.
type PlayerConfig struct {
	Radius    float64 `json:"radius" mapstructure:"radius"`
	Speed     float64 `json:"speed" mapstructure:"speed"`
	MaxHealth int     `json:"maxHealth" mapstructure:"maxHealth"`
}

// OpponentConfig holds AI roster settings.
type OpponentConfig struct {
	Count      int     `json:"count" mapstructure:"count"`
	Speed      float64 `json:"speed" mapstructure:"speed"`
	FireChance float64 `json:"fireChance" mapstructure:"fireChance"`
}

// PickupConfig holds pickup settings.
type PickupConfig struct {
	Count        int     `json:"count" mapstructure:"count"`
	Radius       float64 `json:"radius" mapstructure:"radius"`
	HealthAmount int     `json:"healthAmount" mapstructure:"healthAmount"`
}

// ProjectileConfig holds projectile settings.
type ProjectileConfig struct {
	Speed        float64 `json:"speed" mapstructure:"speed"`
	Radius       float64 `json:"radius" mapstructure:"radius"`
	Damage       int     `json:"damage" mapstructure:"damage"`
	MuzzleOffset float64 `json:"muzzleOffset" mapstructure:"muzzleOffset"`
}

// ZoneConfig holds safe zone settings.
type ZoneConfig struct {
	Radius     float64 `json:"radius" mapstructure:"radius"`
	MinRadius  float64 `json:"minRadius" mapstructure:"minRadius"`
	ShrinkRate float64 `json:"shrinkRate" mapstructure:"shrinkRate"`
	Damage     int     `json:"damage" mapstructure:"damage"`
}

// Settings is the full configuration for the game and the batch runner.
type Settings struct {
	LogLevel   string           `json:"logLevel" mapstructure:"logLevel"`
	Seed       int64            `json:"seed" mapstructure:"seed"`
	Arena      ArenaConfig      `json:"arena" mapstructure:"arena"`
	Player     PlayerConfig     `json:"player" mapstructure:"player"`
	Opponents  OpponentConfig   `json:"opponents" mapstructure:"opponents"`
	Pickups    PickupConfig     `json:"pickups" mapstructure:"pickups"`
	Projectile ProjectileConfig `json:"projectile" mapstructure:"projectile"`
	Zone       ZoneConfig       `json:"zone" mapstructure:"zone"`
}

// setDefaults registers every key so env overrides and Unmarshal see it.
func setDefaults(v *viper.Viper) {
	t := game.DefaultTuning()

	v.SetDefault("logLevel", "info")
	v.SetDefault("seed", 0)

	v.SetDefault("arena.width", t.Width)
	v.SetDefault("arena.height", t.Height)

	v.SetDefault("player.radius", t.EntityRadius)
	v.SetDefault("player.speed", t.PlayerSpeed)
	v.SetDefault("player.maxHealth", t.MaxHealth)

	v.SetDefault("opponents.count", t.OpponentCount)
	v.SetDefault("opponents.speed", t.OpponentSpeed)
	v.SetDefault("opponents.fireChance", t.OpponentFireChance)

	v.SetDefault("pickups.count", t.PickupCount)
	v.SetDefault("pickups.radius", t.PickupRadius)
	v.SetDefault("pickups.healthAmount", t.HealthPickupAmount)

	v.SetDefault("projectile.speed", t.ProjectileSpeed)
	v.SetDefault("projectile.radius", t.ProjectileRadius)
	v.SetDefault("projectile.damage", t.ProjectileDamage)
	v.SetDefault("projectile.muzzleOffset", t.MuzzleOffset)

	v.SetDefault("zone.radius", t.ZoneRadius)
	v.SetDefault("zone.minRadius", t.ZoneMinRadius)
	v.SetDefault("zone.shrinkRate", t.ZoneShrinkRate)
	v.SetDefault("zone.damage", t.ZoneDamage)
}

// Load reads settings from defaults, an optional JSON file at path and
// ZONEROYALE_* environment variables, in increasing priority. An empty path
// or a missing file falls back to defaults; an unreadable file is an error.
func Load(path string) (Settings, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			v.SetConfigFile(path)
			v.SetConfigType("json")
			if err := v.ReadInConfig(); err != nil {
				return Settings{}, fmt.Errorf("error reading config file: %w", err)
			}
		} else if !errors.Is(err, fs.ErrNotExist) {
			return Settings{}, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("error decoding config: %w", err)
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate rejects settings the simulation cannot run with.
func (s Settings) Validate() error {
	switch {
	case s.Arena.Width <= 0 || s.Arena.Height <= 0:
		return fmt.Errorf("invalid arena size %gx%g", s.Arena.Width, s.Arena.Height)
	case s.Player.MaxHealth <= 0:
		return fmt.Errorf("invalid player.maxHealth %d", s.Player.MaxHealth)
	case s.Player.Radius < 0 || s.Projectile.Radius < 0 || s.Pickups.Radius < 0:
		return errors.New("radii must not be negative")
	case s.Opponents.Count < 0 || s.Pickups.Count < 0:
		return errors.New("entity counts must not be negative")
	case s.Opponents.FireChance < 0 || s.Opponents.FireChance > 1:
		return fmt.Errorf("invalid opponents.fireChance %g", s.Opponents.FireChance)
	case s.Zone.MinRadius < 0 || s.Zone.Radius < s.Zone.MinRadius:
		return fmt.Errorf("invalid zone radius %g (min %g)", s.Zone.Radius, s.Zone.MinRadius)
	case s.Zone.ShrinkRate < 0:
		return fmt.Errorf("invalid zone.shrinkRate %g", s.Zone.ShrinkRate)
	}
	return nil
}

// Tuning converts the gameplay sections into simulation constants.
func (s Settings) Tuning() game.Tuning {
	return game.Tuning{
		Width:              s.Arena.Width,
		Height:             s.Arena.Height,
		EntityRadius:       s.Player.Radius,
		PlayerSpeed:        s.Player.Speed,
		OpponentSpeed:      s.Opponents.Speed,
		MaxHealth:          s.Player.MaxHealth,
		OpponentCount:      s.Opponents.Count,
		PickupCount:        s.Pickups.Count,
		PickupRadius:       s.Pickups.Radius,
		HealthPickupAmount: s.Pickups.HealthAmount,
		ProjectileSpeed:    s.Projectile.Speed,
		ProjectileRadius:   s.Projectile.Radius,
		ProjectileDamage:   s.Projectile.Damage,
		OpponentFireChance: s.Opponents.FireChance,
		MuzzleOffset:       s.Projectile.MuzzleOffset,
		ZoneRadius:         s.Zone.Radius,
		ZoneMinRadius:      s.Zone.MinRadius,
		ZoneShrinkRate:     s.Zone.ShrinkRate,
		ZoneDamage:         s.Zone.Damage,
	}
}
