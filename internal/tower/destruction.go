package tower

import (
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// onDestroy plays one tick of the destruction sequence: debris explosions and
// spawn markers scattered over the shrinking footprint.
func (t *Tower) onDestroy(env *world.Env) {
	if t.health > 0 || t.destroyTick <= 0 {
		return
	}
	cfg := env.Config.Tower
	effects := env.Sink()

	t.destroyTick--
	if world.RandomProb(t.rng, cfg.ExplosionChance) {
		at := world.RandomPointInDisc(t.rng, t.pos, t.radius-cfg.DebrisInset)
		effects.Explosion(world.ExplosionRequest{
			Pos:      at,
			Attacker: state.NoActor,
			Weapon:   state.WeaponGrenade,
			NoDamage: true,
		})
		effects.Sound(at, state.SoundGrenadeExplode)
	}
	if world.RandomProb(t.rng, cfg.SpawnMarkerChance) {
		effects.SpawnMarker(world.RandomPointInDisc(t.rng, t.pos, t.radius-cfg.DebrisInset))
	}
	t.radius -= cfg.PhysSize / float64(env.TickRate())
}
