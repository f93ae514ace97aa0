package state

import (
	"fmt"
	"strings"
)

// ActorID identifies a player slot. Negative values are reserved for system
// sources that are not backed by a player.
type ActorID int

const (
	// NoActor marks effects attributed to nobody, such as tower debris.
	NoActor ActorID = -1
	// RedSentinel owns projectiles that were reflected onto the red side.
	RedSentinel ActorID = -4
	// BlueSentinel owns projectiles that were reflected onto the blue side.
	BlueSentinel ActorID = -3
)

// IsPlayer reports whether id refers to a player slot.
func (id ActorID) IsPlayer() bool {
	return id >= 0
}

// SentinelTeam resolves the team a sentinel id speaks for.
func (id ActorID) SentinelTeam() (Team, bool) {
	switch id {
	case RedSentinel:
		return TeamRed, true
	case BlueSentinel:
		return TeamBlue, true
	default:
		return TeamRed, false
	}
}

// Team is one of the two opposing sides.
type Team int

const (
	TeamRed Team = iota
	TeamBlue
)

// Opponent returns the other side.
func (t Team) Opponent() Team {
	if t == TeamRed {
		return TeamBlue
	}
	return TeamRed
}

// Sentinel returns the system actor id owning reflected projectiles of t.
func (t Team) Sentinel() ActorID {
	if t == TeamBlue {
		return BlueSentinel
	}
	return RedSentinel
}

func (t Team) String() string {
	switch t {
	case TeamRed:
		return "red"
	case TeamBlue:
		return "blue"
	default:
		return fmt.Sprintf("team(%d)", int(t))
	}
}

// Role is the class a player picked for the round.
type Role int

const (
	RoleNull Role = iota
	RoleSniper
	RoleSoldier
	RoleEngineer
)

func (r Role) String() string {
	switch r {
	case RoleNull:
		return "none"
	case RoleSniper:
		return "sniper"
	case RoleSoldier:
		return "soldier"
	case RoleEngineer:
		return "engineer"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// Weapon enumerates the weapon slots. The numeric values are replicated in
// projectile snapshots.
type Weapon int

const (
	WeaponHammer Weapon = iota
	WeaponGun
	WeaponShotgun
	WeaponGrenade
	WeaponRifle
	WeaponNinja
)

var weaponNames = [...]string{
	WeaponHammer:  "hammer",
	WeaponGun:     "gun",
	WeaponShotgun: "shotgun",
	WeaponGrenade: "grenade",
	WeaponRifle:   "rifle",
	WeaponNinja:   "ninja",
}

func (w Weapon) String() string {
	if w >= 0 && int(w) < len(weaponNames) {
		return weaponNames[w]
	}
	return fmt.Sprintf("weapon(%d)", int(w))
}

// ParseWeapon resolves a weapon by name.
func ParseWeapon(name string) (Weapon, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range weaponNames {
		if candidate == trimmed {
			return Weapon(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weapon %q", name)
}

// TowerState is the replicated tower flag set. ARMOR is always present.
type TowerState int

const (
	TowerStateArmor TowerState = 1 << iota
	TowerStateLaser
)

// Has reports whether every bit of flag is set.
func (s TowerState) Has(flag TowerState) bool {
	return s&flag == flag
}

// ParseRole resolves a role by name.
func ParseRole(name string) (Role, error) {
	trimmed := strings.ToLower(strings.TrimSpace(name))
	for r := RoleNull; r <= RoleEngineer; r++ {
		if r.String() == trimmed {
			return r, nil
		}
	}
	return RoleNull, fmt.Errorf("unknown role %q", name)
}

// ParseTeam resolves "red" or "blue".
func ParseTeam(name string) (Team, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "red":
		return TeamRed, nil
	case "blue":
		return TeamBlue, nil
	default:
		return TeamRed, fmt.Errorf("unknown team %q", name)
	}
}
