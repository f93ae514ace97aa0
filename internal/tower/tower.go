package tower

import (
	"context"
	"math"
	"math/rand"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	structurelog "github.com/Bamcane/teeworlds-teewar/logging/structures"
)

// Tower is a team's destructible objective. Health, the give-armor feed
// counter and laser charges are the only stored resources; the replicated
// state flag is derived from them on demand.
type Tower struct {
	env  *world.Env
	team state.Team
	pos  state.Vec2

	health      int
	laserArmor  int
	giveArmor   int
	destroyTick int
	radius      float64

	armorIDs    []int
	lastWarning int64
	rng         *rand.Rand
}

var _ world.Structure = (*Tower)(nil)

// New places a tower for team at pos and reserves its armor-slot ids.
func New(env *world.Env, team state.Team, pos state.Vec2) *Tower {
	cfg := env.Config.Tower
	t := &Tower{
		env:      env,
		team:     team,
		pos:      pos,
		armorIDs: make([]int, cfg.ArmorSlots),
		rng:      world.NewDeterministicRNG(env.Config.Seed, "tower-"+team.String()),
	}
	for i := range t.armorIDs {
		if env.IDs != nil {
			t.armorIDs[i] = env.IDs.NewID()
		} else {
			t.armorIDs[i] = i
		}
	}
	t.restore()
	return t
}

// Close releases the armor-slot ids. The tower must not be snapped afterwards.
func (t *Tower) Close() {
	if t.env.IDs == nil {
		return
	}
	for _, id := range t.armorIDs {
		t.env.IDs.FreeID(id)
	}
	t.armorIDs = nil
}

func (t *Tower) restore() {
	t.health = t.env.Config.Tower.MaxHealth
	t.laserArmor = 0
	t.giveArmor = 0
	t.radius = t.env.Config.Tower.PhysSize
	t.destroyTick = -1
	t.lastWarning = math.MinInt64 / 2
}

// Reset restores a tower for a new round.
func (t *Tower) Reset(ctx context.Context, env *world.Env) {
	t.restore()
	structurelog.TowerReset(ctx, env.Publisher, uint64(env.Tick()), t.ref())
}

func (t *Tower) Team() state.Team     { return t.team }
func (t *Tower) Position() state.Vec2 { return t.pos }
func (t *Tower) Radius() float64      { return t.radius }
func (t *Tower) Health() int          { return t.health }
func (t *Tower) MaxHealth() int       { return t.env.Config.Tower.MaxHealth }
func (t *Tower) LaserArmor() int      { return t.laserArmor }
func (t *Tower) GiveArmor() int       { return t.giveArmor }
func (t *Tower) DestroyTick() int     { return t.destroyTick }
func (t *Tower) ArmorIDs() []int      { return append([]int(nil), t.armorIDs...) }

// Towers stay in the world until teardown.
func (t *Tower) Destroyed() bool { return false }

// State is ARMOR, plus LASER while any laser charge is left.
func (t *Tower) State() state.TowerState {
	s := state.TowerStateArmor
	if t.laserArmor > 0 {
		s |= state.TowerStateLaser
	}
	return s
}

// Shielded reports whether projectiles bounce off the tower.
func (t *Tower) Shielded() bool {
	return t.State().Has(state.TowerStateLaser)
}

func (t *Tower) Alive() bool { return t.health > 0 }

// Destroying reports whether the destruction sequence is still playing.
func (t *Tower) Destroying() bool { return t.health <= 0 && t.destroyTick > 0 }

// Settled reports a fully destroyed tower. It is inert until Reset.
func (t *Tower) Settled() bool { return t.health <= 0 && t.destroyTick == 0 }

// AbsorbHit spends one laser charge on a reflected projectile.
func (t *Tower) AbsorbHit() {
	if t.laserArmor <= 0 {
		return
	}
	t.laserArmor--
	t.logLaserArmor(context.Background(), logging.EntityRef{}, "absorb")
}

// TakeDamage applies damage from an actor or team sentinel. Hits from the
// tower's own team and from its own sentinel are ignored, as is anything
// landing on an already destroyed tower.
func (t *Tower) TakeDamage(damage int, from state.ActorID) {
	if t.health <= 0 {
		return
	}
	if team, ok := t.env.AttackerTeam(from); ok && team == t.team {
		return
	}
	attacker := t.env.Actor(from)

	env := t.env
	ctx := context.Background()
	tick := env.Tick()
	maxHealth := env.Config.Tower.MaxHealth
	t.health = min(max(t.health-damage, 0), maxHealth)

	effects := env.Sink()
	effects.DamageSound(from)
	structurelog.TowerDamaged(ctx, env.Publisher, uint64(tick), logging.PlayerRef(int(from)), t.ref(), structurelog.HealthPayload{
		Amount:    damage,
		Health:    t.health,
		MaxHealth: maxHealth,
	})

	if t.health <= 0 {
		rate := env.TickRate()
		t.destroyTick = rate
		effects.Emoticon(from, state.EmoticonEyes)
		if attacker != nil {
			attacker.SetEmote(state.EmoteHappy, tick+int64(rate))
		}
		effects.GlobalSound(state.SoundCTFGrabPL)
		structurelog.TowerDestroyed(ctx, env.Publisher, uint64(tick), logging.PlayerRef(int(from)), t.ref())
		return
	}

	t.warnLowHealth(ctx, tick)
}

func (t *Tower) warnLowHealth(ctx context.Context, tick int64) {
	cfg := t.env.Config.Tower
	if float64(t.health) >= cfg.LowHealthRatio*float64(cfg.MaxHealth) {
		return
	}
	interval := int64(t.env.TickRate() / max(cfg.WarningsPerSecond, 1))
	if tick-t.lastWarning < interval {
		return
	}
	t.lastWarning = tick
	t.env.Sink().Broadcast(state.NoActor, lowHealthMessage(t.team))
	structurelog.TowerLowHealth(ctx, t.env.Publisher, uint64(tick), t.ref(), structurelog.HealthPayload{
		Health:    t.health,
		MaxHealth: cfg.MaxHealth,
	})
}

// TakeFix restores health up to the maximum and stamps the repairing actor's
// cooldown. Callers decide who may repair; a destroyed tower only comes back
// through Reset.
func (t *Tower) TakeFix(amount int, from state.ActorID) {
	if t.health <= 0 {
		return
	}
	env := t.env
	tick := env.Tick()
	maxHealth := env.Config.Tower.MaxHealth
	t.health = min(max(t.health+amount, 0), maxHealth)
	env.Sink().Sound(t.pos, state.SoundHookLoop)
	if actor := env.Actor(from); actor != nil {
		actor.SetLastFixTick(tick)
	}
	structurelog.TowerRepaired(context.Background(), env.Publisher, uint64(tick), logging.PlayerRef(int(from)), t.ref(), structurelog.HealthPayload{
		Amount:    amount,
		Health:    t.health,
		MaxHealth: maxHealth,
	})
}

// Tick runs the destruction sequence of a dead tower, or the laser decay and
// actor interactions of a living one.
func (t *Tower) Tick(ctx context.Context, env *world.Env) {
	t.onDestroy(env)
	t.onNormal(ctx, env)
}

// TickPaused does nothing; towers keep no elapsed-time anchor.
func (t *Tower) TickPaused(*world.Env) {}

func (t *Tower) onNormal(ctx context.Context, env *world.Env) {
	if t.health <= 0 {
		return
	}
	tick := env.Tick()
	decay := env.Ticks(env.Config.Tower.LaserDecay)
	if t.laserArmor > 0 && decay > 0 && tick%decay == 0 {
		t.laserArmor--
		t.logLaserArmor(ctx, logging.EntityRef{}, "decay")
	}
	t.serviceActors(ctx, env)
}

func (t *Tower) logLaserArmor(ctx context.Context, actor logging.EntityRef, reason string) {
	structurelog.LaserArmorChanged(ctx, t.env.Publisher, uint64(t.env.Tick()), actor, t.ref(), structurelog.LaserArmorPayload{
		Reason:     reason,
		LaserArmor: t.laserArmor,
		GiveArmor:  t.giveArmor,
	})
}

func (t *Tower) ref() logging.EntityRef {
	return logging.TowerRef(t.team.String())
}
