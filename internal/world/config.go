package world

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

const (
	DefaultSeed     = "teewar"
	DefaultTickRate = 50
	DefaultWidth    = 3200.0
	DefaultHeight   = 1600.0
	// DefaultClipMargin keeps projectiles alive 200 tiles past the map edge.
	DefaultClipMargin = 200 * 32.0
)

var (
	ErrInvalidTickRate  = errors.New("tick rate must be positive")
	ErrInvalidWeapon    = errors.New("invalid weapon reference")
	ErrInvalidThreshold = errors.New("invalid tower threshold")
	ErrInvalidChance    = errors.New("probability must be within [0, 1]")
)

// Config carries every tunable used by the tower and projectile simulation.
type Config struct {
	Seed       string                  `json:"seed" jsonschema:"description=Root seed for per-entity random streams"`
	TickRate   int                     `json:"tickRate" jsonschema:"minimum=1"`
	Width      float64                 `json:"width"`
	Height     float64                 `json:"height"`
	ClipMargin float64                 `json:"clipMargin" jsonschema:"description=Distance past the map edge before projectiles are discarded"`
	Network    NetworkConfig           `json:"network"`
	Projectile ProjectileConfig        `json:"projectile"`
	Weapons    map[string]WeaponConfig `json:"weapons"`
	Tower      TowerConfig             `json:"tower"`
	Character  CharacterConfig         `json:"character"`
	Explosion  ExplosionConfig         `json:"explosion"`
}

// CharacterConfig sizes the reference player bodies.
type CharacterConfig struct {
	PhysSize  float64 `json:"physSize"`
	MaxHealth int     `json:"maxHealth" jsonschema:"minimum=1"`
	MaxArmor  int     `json:"maxArmor"`
}

// ExplosionConfig shapes the splash damage falloff. Full damage is dealt
// inside InnerRadius and fades to zero at Radius.
type ExplosionConfig struct {
	Radius      float64 `json:"radius"`
	InnerRadius float64 `json:"innerRadius"`
	MaxDamage   float64 `json:"maxDamage"`
}

// NetworkConfig sizes the box around a viewer inside which entities are
// replicated.
type NetworkConfig struct {
	ClipHalfWidth  float64 `json:"clipHalfWidth"`
	ClipHalfHeight float64 `json:"clipHalfHeight"`
}

// ProjectileConfig holds projectile rules shared by every weapon.
type ProjectileConfig struct {
	HitRadius     float64 `json:"hitRadius"`
	BounceDamping float64 `json:"bounceDamping" jsonschema:"minimum=0,maximum=1"`
	MinForce      float64 `json:"minForce"`
}

// WeaponConfig describes the ballistic profile of a projectile weapon.
type WeaponConfig struct {
	Curvature float64 `json:"curvature"`
	Speed     float64 `json:"speed"`
	Lifetime  float64 `json:"lifetime" jsonschema:"description=Flight time in seconds"`
	Damage    int     `json:"damage"`
	Force     float64 `json:"force"`
	Explosive bool    `json:"explosive"`
	// ImpactSound is a state.SoundID; -1 disables the cue.
	ImpactSound int `json:"impactSound"`
}

// TowerConfig holds the tower economy and destruction tunables.
type TowerConfig struct {
	MaxHealth         int     `json:"maxHealth" jsonschema:"minimum=1"`
	PhysSize          float64 `json:"physSize"`
	ArmorSlots        int     `json:"armorSlots"`
	InteractMargin    float64 `json:"interactMargin"`
	FeedThreshold     int     `json:"feedThreshold" jsonschema:"minimum=1"`
	FeedReward        int     `json:"feedReward"`
	AttackThreshold   int     `json:"attackThreshold" jsonschema:"maximum=-1"`
	AttackDamage      int     `json:"attackDamage"`
	LaserDecay        float64 `json:"laserDecay" jsonschema:"description=Seconds between natural laser charge losses"`
	FixInterval       float64 `json:"fixInterval" jsonschema:"description=Seconds between transfers by the same player"`
	HammerFixHealth   int     `json:"hammerFixHealth"`
	LowHealthRatio    float64 `json:"lowHealthRatio" jsonschema:"minimum=0,maximum=1"`
	WarningsPerSecond int     `json:"warningsPerSecond"`
	ExplosionChance   float64 `json:"explosionChance" jsonschema:"minimum=0,maximum=1"`
	SpawnMarkerChance float64 `json:"spawnMarkerChance" jsonschema:"minimum=0,maximum=1"`
	DebrisInset       float64 `json:"debrisInset"`
	RepairWeapon      string  `json:"repairWeapon" jsonschema:"enum=hammer,enum=gun,enum=shotgun,enum=grenade,enum=rifle,enum=ninja"`
	FeedWeapon        string  `json:"feedWeapon" jsonschema:"enum=hammer,enum=gun,enum=shotgun,enum=grenade,enum=rifle,enum=ninja"`
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		Seed:       DefaultSeed,
		TickRate:   DefaultTickRate,
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		ClipMargin: DefaultClipMargin,
		Network: NetworkConfig{
			ClipHalfWidth:  1000,
			ClipHalfHeight: 800,
		},
		Projectile: ProjectileConfig{
			HitRadius:     6,
			BounceDamping: 0.5,
			MinForce:      0.001,
		},
		Weapons: map[string]WeaponConfig{
			state.WeaponGun.String(): {
				Curvature:   1.25,
				Speed:       2200,
				Lifetime:    2,
				Damage:      1,
				ImpactSound: int(state.SoundNone),
			},
			state.WeaponShotgun.String(): {
				Curvature:   1.25,
				Speed:       2750,
				Lifetime:    0.2,
				Damage:      1,
				ImpactSound: int(state.SoundNone),
			},
			state.WeaponGrenade.String(): {
				Curvature:   7,
				Speed:       1000,
				Lifetime:    2,
				Damage:      1,
				Explosive:   true,
				ImpactSound: int(state.SoundGrenadeExplode),
			},
		},
		Tower: TowerConfig{
			MaxHealth:         1000,
			PhysSize:          128,
			ArmorSlots:        24,
			InteractMargin:    28,
			FeedThreshold:     10,
			FeedReward:        2,
			AttackThreshold:   -5,
			AttackDamage:      2,
			LaserDecay:        20,
			FixInterval:       0.5,
			HammerFixHealth:   10,
			LowHealthRatio:    0.05,
			WarningsPerSecond: 2,
			ExplosionChance:   0.4,
			SpawnMarkerChance: 0.1,
			DebrisInset:       4,
			RepairWeapon:      state.WeaponHammer.String(),
			FeedWeapon:        state.WeaponHammer.String(),
		},
		Character: CharacterConfig{
			PhysSize:  28,
			MaxHealth: 10,
			MaxArmor:  10,
		},
		Explosion: ExplosionConfig{
			Radius:      135,
			InnerRadius: 48,
			MaxDamage:   6,
		},
	}
}

// Normalized fills zero values from DefaultConfig.
func (cfg Config) Normalized() Config {
	defaults := DefaultConfig()
	normalized := cfg
	normalized.Seed = strings.TrimSpace(normalized.Seed)
	if normalized.Seed == "" {
		normalized.Seed = defaults.Seed
	}
	if normalized.TickRate <= 0 {
		normalized.TickRate = defaults.TickRate
	}
	if normalized.Width <= 0 {
		normalized.Width = defaults.Width
	}
	if normalized.Height <= 0 {
		normalized.Height = defaults.Height
	}
	if normalized.ClipMargin <= 0 {
		normalized.ClipMargin = defaults.ClipMargin
	}
	if normalized.Network.ClipHalfWidth <= 0 {
		normalized.Network.ClipHalfWidth = defaults.Network.ClipHalfWidth
	}
	if normalized.Network.ClipHalfHeight <= 0 {
		normalized.Network.ClipHalfHeight = defaults.Network.ClipHalfHeight
	}
	if normalized.Projectile.HitRadius <= 0 {
		normalized.Projectile.HitRadius = defaults.Projectile.HitRadius
	}
	if normalized.Projectile.BounceDamping <= 0 {
		normalized.Projectile.BounceDamping = defaults.Projectile.BounceDamping
	}
	if normalized.Projectile.MinForce <= 0 {
		normalized.Projectile.MinForce = defaults.Projectile.MinForce
	}

	weapons := make(map[string]WeaponConfig, len(defaults.Weapons))
	for name, weapon := range defaults.Weapons {
		weapons[name] = weapon
	}
	for name, weapon := range cfg.Weapons {
		weapons[strings.ToLower(strings.TrimSpace(name))] = weapon
	}
	normalized.Weapons = weapons

	normalized.Tower = cfg.Tower.normalized(defaults.Tower)
	if normalized.Character.PhysSize <= 0 {
		normalized.Character.PhysSize = defaults.Character.PhysSize
	}
	if normalized.Character.MaxHealth <= 0 {
		normalized.Character.MaxHealth = defaults.Character.MaxHealth
	}
	if normalized.Character.MaxArmor < 0 {
		normalized.Character.MaxArmor = defaults.Character.MaxArmor
	}
	if normalized.Explosion.Radius <= 0 {
		normalized.Explosion = defaults.Explosion
	}
	return normalized
}

func (t TowerConfig) normalized(defaults TowerConfig) TowerConfig {
	n := t
	if n.MaxHealth <= 0 {
		n.MaxHealth = defaults.MaxHealth
	}
	if n.PhysSize <= 0 {
		n.PhysSize = defaults.PhysSize
	}
	if n.ArmorSlots <= 0 {
		n.ArmorSlots = defaults.ArmorSlots
	}
	if n.InteractMargin <= 0 {
		n.InteractMargin = defaults.InteractMargin
	}
	if n.FeedThreshold == 0 {
		n.FeedThreshold = defaults.FeedThreshold
	}
	if n.FeedReward == 0 {
		n.FeedReward = defaults.FeedReward
	}
	if n.AttackThreshold == 0 {
		n.AttackThreshold = defaults.AttackThreshold
	}
	if n.AttackDamage == 0 {
		n.AttackDamage = defaults.AttackDamage
	}
	if n.LaserDecay <= 0 {
		n.LaserDecay = defaults.LaserDecay
	}
	if n.FixInterval <= 0 {
		n.FixInterval = defaults.FixInterval
	}
	if n.HammerFixHealth == 0 {
		n.HammerFixHealth = defaults.HammerFixHealth
	}
	if n.LowHealthRatio <= 0 {
		n.LowHealthRatio = defaults.LowHealthRatio
	}
	if n.WarningsPerSecond <= 0 {
		n.WarningsPerSecond = defaults.WarningsPerSecond
	}
	if n.DebrisInset <= 0 {
		n.DebrisInset = defaults.DebrisInset
	}
	if strings.TrimSpace(n.RepairWeapon) == "" {
		n.RepairWeapon = defaults.RepairWeapon
	}
	if strings.TrimSpace(n.FeedWeapon) == "" {
		n.FeedWeapon = defaults.FeedWeapon
	}
	return n
}

// Validate reports configuration values the simulation cannot run with.
func (cfg Config) Validate() error {
	if cfg.TickRate <= 0 {
		return ErrInvalidTickRate
	}
	for name := range cfg.Weapons {
		if _, err := state.ParseWeapon(name); err != nil {
			return fmt.Errorf("%w: weapons.%s", ErrInvalidWeapon, name)
		}
	}
	if _, err := state.ParseWeapon(cfg.Tower.RepairWeapon); err != nil {
		return fmt.Errorf("%w: tower.repairWeapon: %v", ErrInvalidWeapon, err)
	}
	if _, err := state.ParseWeapon(cfg.Tower.FeedWeapon); err != nil {
		return fmt.Errorf("%w: tower.feedWeapon: %v", ErrInvalidWeapon, err)
	}
	if cfg.Tower.FeedThreshold <= 0 {
		return fmt.Errorf("%w: feedThreshold %d", ErrInvalidThreshold, cfg.Tower.FeedThreshold)
	}
	if cfg.Tower.AttackThreshold >= 0 {
		return fmt.Errorf("%w: attackThreshold %d", ErrInvalidThreshold, cfg.Tower.AttackThreshold)
	}
	for name, chance := range map[string]float64{
		"explosionChance":   cfg.Tower.ExplosionChance,
		"spawnMarkerChance": cfg.Tower.SpawnMarkerChance,
	} {
		if chance < 0 || chance > 1 || math.IsNaN(chance) {
			return fmt.Errorf("%w: tower.%s=%v", ErrInvalidChance, name, chance)
		}
	}
	return nil
}

// LoadConfig reads a JSON tuning file and returns it normalized and validated.
func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open tuning file: %w", err)
	}
	defer file.Close()

	cfg := DefaultConfig()
	decoder := json.NewDecoder(file)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode tuning file %s: %w", path, err)
	}
	cfg = cfg.Normalized()
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate tuning file %s: %w", path, err)
	}
	return cfg, nil
}

// Weapon returns the tuning for w. Unknown weapons get a zero profile.
func (cfg Config) Weapon(w state.Weapon) WeaponConfig {
	return cfg.Weapons[w.String()]
}

// SecondsToTicks converts seconds into whole ticks at rate.
func SecondsToTicks(seconds float64, rate int) int64 {
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return int64(seconds * float64(rate))
}

// RepairWeaponKind resolves the weapon that repairs friendly towers.
func (t TowerConfig) RepairWeaponKind() state.Weapon {
	weapon, err := state.ParseWeapon(t.RepairWeapon)
	if err != nil {
		return state.WeaponHammer
	}
	return weapon
}

// FeedWeaponKind resolves the weapon that feeds or drains laser armor.
func (t TowerConfig) FeedWeaponKind() state.Weapon {
	weapon, err := state.ParseWeapon(t.FeedWeapon)
	if err != nil {
		return state.WeaponHammer
	}
	return weapon
}
