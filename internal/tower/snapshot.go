package tower

import (
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// Snap writes the tower flag and, while the tower stands, its ring of armor
// slots. Shielded towers draw each slot as a laser from the previous slot,
// unshielded ones as armor pickups.
func (t *Tower) Snap(env *world.Env, viewer world.Viewer, w world.SnapshotWriter) {
	if w == nil || env.NetworkClipped(viewer, t.pos) || t.Settled() {
		return
	}
	if !w.Write(world.ItemFlag, int(t.team), world.FlagItem{
		X:    int(t.pos.X()),
		Y:    int(t.pos.Y()),
		Team: t.team,
	}) {
		return
	}
	if t.health <= 0 || len(t.armorIDs) == 0 {
		return
	}

	step := 360.0 / float64(len(t.armorIDs))
	shielded := t.Shielded()
	tick := env.Tick()
	for i, id := range t.armorIDs {
		degrees := -float64(i) * step
		at := t.slotPoint(degrees)
		var written bool
		if shielded {
			from := t.slotPoint(degrees - step)
			written = w.Write(world.ItemLaser, id, world.LaserItem{
				X:         int(at.X()),
				Y:         int(at.Y()),
				FromX:     int(from.X()),
				FromY:     int(from.Y()),
				StartTick: tick,
			})
		} else {
			written = w.Write(world.ItemPickup, id, world.PickupItem{
				X:    int(at.X()),
				Y:    int(at.Y()),
				Type: world.PowerupArmor,
			})
		}
		if !written {
			return
		}
	}
}

func (t *Tower) slotPoint(degrees float64) state.Vec2 {
	return t.pos.Add(state.Direction(degrees * math.Pi / 180).Mul(t.radius))
}
