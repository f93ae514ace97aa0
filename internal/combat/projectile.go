package combat

import (
	"context"
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	combatlog "github.com/Bamcane/teeworlds-teewar/logging/combat"
)

// ProjectileConfig carries the launch parameters of a projectile. Everything
// except the anchor, velocity, team and owner stays fixed for its lifetime.
type ProjectileConfig struct {
	ID          int
	Type        state.Weapon
	Owner       state.ActorID
	Pos         state.Vec2
	Direction   state.Vec2
	LifeSpan    int
	Damage      int
	Explosive   bool
	Force       float64
	SoundImpact state.SoundID
	Weapon      state.Weapon
	// Team is used when Owner does not resolve to a live actor.
	Team state.Team
}

// Projectile is a ballistic shot. Its position is never stored between ticks:
// every query re-evaluates CalcPos from the anchor (pos, direction,
// startTick), so a bounce only has to move the anchor.
type Projectile struct {
	id          int
	typ         state.Weapon
	pos         state.Vec2
	direction   state.Vec2
	startTick   int64
	startLife   int
	lifeSpan    int
	owner       state.ActorID
	team        state.Team
	damage      int
	force       float64
	soundImpact state.SoundID
	explosive   bool
	weapon      state.Weapon
	destroyed   bool
}

// NewProjectile launches a projectile at the current tick. The team is taken
// from the owner when it is a live actor, from the sentinel id when the owner
// is a team sentinel, and from cfg.Team otherwise.
func NewProjectile(env *world.Env, cfg ProjectileConfig) *Projectile {
	team := cfg.Team
	if owner := env.Actor(cfg.Owner); owner != nil {
		team = owner.Team()
	} else if sentinelTeam, ok := cfg.Owner.SentinelTeam(); ok {
		team = sentinelTeam
	}
	return &Projectile{
		id:          cfg.ID,
		typ:         cfg.Type,
		pos:         cfg.Pos,
		direction:   cfg.Direction,
		startTick:   env.Tick(),
		startLife:   cfg.LifeSpan,
		lifeSpan:    cfg.LifeSpan,
		owner:       cfg.Owner,
		team:        team,
		damage:      cfg.Damage,
		force:       cfg.Force,
		soundImpact: cfg.SoundImpact,
		explosive:   cfg.Explosive,
		weapon:      cfg.Weapon,
	}
}

func (p *Projectile) ID() int                    { return p.id }
func (p *Projectile) Type() state.Weapon         { return p.typ }
func (p *Projectile) Owner() state.ActorID       { return p.owner }
func (p *Projectile) Team() state.Team           { return p.team }
func (p *Projectile) Direction() state.Vec2      { return p.direction }
func (p *Projectile) Anchor() state.Vec2         { return p.pos }
func (p *Projectile) StartTick() int64           { return p.startTick }
func (p *Projectile) LifeSpan() int              { return p.lifeSpan }
func (p *Projectile) StartLifeSpan() int         { return p.startLife }
func (p *Projectile) Destroyed() bool            { return p.destroyed }
func (p *Projectile) Damage() int                { return p.damage }
func (p *Projectile) Explosive() bool            { return p.explosive }
func (p *Projectile) SoundImpact() state.SoundID { return p.soundImpact }

// PosAt evaluates the trajectory t seconds after the anchor tick.
func (p *Projectile) PosAt(env *world.Env, t float64) state.Vec2 {
	profile := env.Config.Weapon(p.typ)
	return CalcPos(p.pos, p.direction, profile.Curvature, profile.Speed, t)
}

// Position returns the position at the current tick.
func (p *Projectile) Position(env *world.Env) state.Vec2 {
	return p.PosAt(env, p.elapsed(env, env.Tick()))
}

func (p *Projectile) elapsed(env *world.Env, tick int64) float64 {
	return float64(tick-p.startTick) / float64(env.TickRate())
}

// samples returns the positions one tick ago and now.
func (p *Projectile) samples(env *world.Env, tick int64) (state.Vec2, state.Vec2) {
	rate := float64(env.TickRate())
	pt := float64(tick-p.startTick-1) / rate
	ct := float64(tick-p.startTick) / rate
	return p.PosAt(env, pt), p.PosAt(env, ct)
}

// Tick advances the projectile by one simulation step: it sweeps the segment
// covered since the previous tick against geometry, actors and enemy towers,
// then either keeps flying, bounces off a shielded tower, or resolves its
// impact and marks itself destroyed.
func (p *Projectile) Tick(ctx context.Context, env *world.Env) {
	if p.destroyed {
		return
	}
	tick := env.Tick()
	prevPos, curPos := p.samples(env, tick)

	collide := false
	if env.Collision != nil {
		if hit, at := env.Collision.IntersectSegment(prevPos, curPos); hit {
			collide = true
			curPos = at
		}
	}

	owner := env.Actor(p.owner)
	radius := env.Config.Projectile.HitRadius
	var targetChr world.Actor
	var targetTower world.Structure
	if env.Index != nil {
		if actor, at := env.Index.IntersectActor(prevPos, curPos, radius, owner); actor != nil {
			targetChr = actor
			curPos = at
		}
		if tower, at := env.Index.IntersectStructure(prevPos, curPos, radius, p.team); tower != nil {
			targetTower = tower
			curPos = at
		}
	}

	p.lifeSpan--

	clipped := env.GameLayerClipped(curPos)
	if targetChr == nil && targetTower == nil && !collide && p.lifeSpan >= 0 && !clipped {
		return
	}

	if targetTower != nil && targetTower.Shielded() {
		p.bounce(env, tick)
		targetTower.AbsorbHit()
		combatlog.ProjectileBounce(ctx, env.Publisher, uint64(tick), logging.PlayerRef(int(p.owner)), logging.TowerRef(targetTower.Team().String()), combatlog.ProjectileBouncePayload{
			Weapon:    p.weapon.String(),
			VelocityX: p.direction.X(),
			VelocityY: p.direction.Y(),
			LifeSpan:  p.lifeSpan,
			Team:      p.team.String(),
		})
		return
	}

	p.impact(ctx, env, tick, curPos, collide, clipped, targetChr, targetTower)
}

func (p *Projectile) impact(ctx context.Context, env *world.Env, tick int64, at state.Vec2, collide, clipped bool, targetChr world.Actor, targetTower world.Structure) {
	effects := env.Sink()
	expired := p.lifeSpan < 0
	if (!expired || p.explosive || p.weapon == state.WeaponGrenade) && p.soundImpact != state.SoundNone {
		effects.Sound(at, p.soundImpact)
	}

	var targets []logging.EntityRef
	switch {
	case p.explosive:
		effects.Explosion(world.ExplosionRequest{Pos: at, Attacker: p.owner, Weapon: p.weapon})
	case targetChr != nil:
		force := math.Max(env.Config.Projectile.MinForce, p.force)
		targetChr.TakeDamage(p.direction.Mul(force), p.damage, p.owner, p.weapon)
		targets = append(targets, logging.PlayerRef(int(targetChr.ID())))
	case targetTower != nil:
		targetTower.TakeDamage(p.damage, p.owner)
		targets = append(targets, logging.TowerRef(targetTower.Team().String()))
	}
	p.destroyed = true

	actor := logging.PlayerRef(int(p.owner))
	if targetChr == nil && targetTower == nil && !collide {
		combatlog.ProjectileExpired(ctx, env.Publisher, uint64(tick), actor, combatlog.ProjectileExpiredPayload{
			Weapon:    p.weapon.String(),
			X:         at.X(),
			Y:         at.Y(),
			Clipped:   clipped,
			Explosive: p.explosive,
		})
		return
	}
	combatlog.ProjectileImpact(ctx, env.Publisher, uint64(tick), actor, targets, combatlog.ProjectileImpactPayload{
		Weapon:    p.weapon.String(),
		X:         at.X(),
		Y:         at.Y(),
		Damage:    p.damage,
		Explosive: p.explosive,
		Geometry:  collide,
	})
}

// bounce reflects the current ballistic velocity off whichever axis the
// segment since the last tick ran into, re-anchors the arc at the previous
// sample and hands the projectile to the opposing team.
func (p *Projectile) bounce(env *world.Env, tick int64) {
	prevPos, curPos := p.samples(env, tick)

	collideX, collideY := false, false
	if env.Collision != nil {
		collideY, _ = env.Collision.IntersectSegment(prevPos, state.Vec2{prevPos.X(), curPos.Y()})
		collideX, _ = env.Collision.IntersectSegment(prevPos, state.Vec2{curPos.X(), prevPos.Y()})
	}

	profile := env.Config.Weapon(p.typ)
	vel := VelocityAt(p.direction, profile.Curvature, profile.Speed, p.elapsed(env, tick))

	switch {
	case collideX && !collideY:
		p.direction = state.Vec2{-vel.X(), vel.Y()}
	case !collideX && collideY:
		p.direction = state.Vec2{vel.X(), -vel.Y()}
	default:
		p.direction = state.Vec2{-vel.X(), -vel.Y()}
	}

	p.pos = prevPos
	p.lifeSpan = p.startLife / 2
	p.startLife /= 2
	p.direction = p.direction.Mul(env.Config.Projectile.BounceDamping)
	p.startTick = tick

	p.team = p.team.Opponent()
	p.owner = p.team.Sentinel()
}

// Disown credits the projectile to its team's sentinel after the owner left.
func (p *Projectile) Disown() {
	p.owner = p.team.Sentinel()
}

// TickPaused shifts the anchor so that resuming does not jump the arc forward.
func (p *Projectile) TickPaused(*world.Env) {
	p.startTick++
}

// Reset removes the projectile at the next sweep.
func (p *Projectile) Reset(context.Context, *world.Env) {
	p.destroyed = true
}

// Snap writes the replicated projectile for viewer unless it is outside the
// viewer's network range. A full snapshot silently drops the item.
func (p *Projectile) Snap(env *world.Env, viewer world.Viewer, w world.SnapshotWriter) {
	if p.destroyed || w == nil {
		return
	}
	if env.NetworkClipped(viewer, p.Position(env)) {
		return
	}
	w.Write(world.ItemProjectile, p.id, world.ProjectileItem{
		X:         int(p.pos.X()),
		Y:         int(p.pos.Y()),
		VelX:      int(p.direction.X() * 100),
		VelY:      int(p.direction.Y() * 100),
		StartTick: p.startTick,
		Type:      p.typ,
	})
}
