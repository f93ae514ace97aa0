package world

import "github.com/Bamcane/teeworlds-teewar/internal/world/state"

// ItemKind tags a replicated snapshot item.
type ItemKind int

const (
	ItemProjectile ItemKind = iota + 1
	ItemLaser
	ItemPickup
	ItemFlag
	// ItemCharacter is written by world containers for their own bodies.
	ItemCharacter
)

func (k ItemKind) String() string {
	switch k {
	case ItemProjectile:
		return "projectile"
	case ItemLaser:
		return "laser"
	case ItemPickup:
		return "pickup"
	case ItemFlag:
		return "flag"
	case ItemCharacter:
		return "character"
	default:
		return "unknown"
	}
}

// SnapshotWriter accepts replicated items for one viewer. Write returns false
// when the snapshot has no room left; callers skip the item without error.
type SnapshotWriter interface {
	Write(kind ItemKind, id int, payload any) bool
}

// PowerupArmor is the pickup type rendered for unshielded armor slots.
const PowerupArmor = 1

type ProjectileItem struct {
	X         int          `json:"x"`
	Y         int          `json:"y"`
	VelX      int          `json:"velX"`
	VelY      int          `json:"velY"`
	StartTick int64        `json:"startTick"`
	Type      state.Weapon `json:"type"`
}

type LaserItem struct {
	X         int   `json:"x"`
	Y         int   `json:"y"`
	FromX     int   `json:"fromX"`
	FromY     int   `json:"fromY"`
	StartTick int64 `json:"startTick"`
}

type PickupItem struct {
	X       int `json:"x"`
	Y       int `json:"y"`
	Type    int `json:"type"`
	Subtype int `json:"subtype"`
}

type FlagItem struct {
	X    int        `json:"x"`
	Y    int        `json:"y"`
	Team state.Team `json:"team"`
}

// Viewer is the client a snapshot is built for.
type Viewer struct {
	ID state.ActorID
	// Spectator viewers see the whole map.
	Spectator bool
	Center    Vec2
}
