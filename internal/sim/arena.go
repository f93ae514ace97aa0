package sim

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/combat"
	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/tower"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	"github.com/Bamcane/teeworlds-teewar/logging/lifecycle"
	"github.com/Bamcane/teeworlds-teewar/logging/simulation"
)

const (
	entitiesMetricKey           = "sim_entities"
	projectilesSpawnedMetricKey = "sim_projectiles_spawned_total"
)

var (
	ErrUnknownActor        = errors.New("unknown or dead actor")
	ErrNotProjectileWeapon = errors.New("weapon does not fire projectiles")
)

// Shotgun pellets fan out by these angles; the outer ones fly slower.
var (
	shotgunSpread    = []float64{-0.185, -0.070, 0, 0.070, 0.185}
	shotgunSpeedDiff = 0.8
)

// entity is the per-step contract shared by towers and projectiles.
type entity interface {
	Tick(ctx context.Context, env *world.Env)
	TickPaused(env *world.Env)
	Reset(ctx context.Context, env *world.Env)
	Snap(env *world.Env, viewer world.Viewer, w world.SnapshotWriter)
	Destroyed() bool
}

// ArenaConfig wires an arena. A nil grid is replaced by a walled box the
// size of the configured world.
type ArenaConfig struct {
	World            world.Config
	Grid             *TileGrid
	Publisher        logging.Publisher
	Metrics          telemetry.Metrics
	SnapshotCapacity int
}

// Arena is the in-memory world container: it owns every tower, projectile and
// player and steps them at a fixed rate. All methods must be called from the
// goroutine that steps the arena.
type Arena struct {
	env      *world.Env
	grid     *TileGrid
	players  *Registry
	index    *spatialIndex
	effects  *effectRecorder
	ids      *idPool
	metrics  telemetry.Metrics
	capacity int

	tick     int64
	paused   bool
	round    int
	stepping bool

	towers   []*tower.Tower
	entities []entity
	pending  []entity
	frame    []Effect
}

var _ world.Clock = (*Arena)(nil)

func NewArena(cfg ArenaConfig) *Arena {
	worldCfg := cfg.World.Normalized()
	grid := cfg.Grid
	if grid == nil {
		grid = GridForWorld(worldCfg)
	}
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	a := &Arena{
		grid:     grid,
		players:  NewRegistry(worldCfg.Character),
		ids:      &idPool{},
		metrics:  cfg.Metrics,
		capacity: cfg.SnapshotCapacity,
	}
	a.index = &spatialIndex{
		players:  a.players,
		towers:   a.Towers,
		physSize: worldCfg.Character.PhysSize,
	}
	a.env = &world.Env{
		Clock:     a,
		Config:    worldCfg,
		Collision: grid,
		Index:     a.index,
		Actors:    a.players,
		IDs:       a.ids,
		Publisher: publisher,
	}
	a.effects = &effectRecorder{env: a.env, index: a.index, metrics: cfg.Metrics}
	a.env.Effects = a.effects
	return a
}

func (a *Arena) Tick() int64        { return a.tick }
func (a *Arena) TickRate() int      { return a.env.Config.TickRate }
func (a *Arena) Env() *world.Env    { return a.env }
func (a *Arena) Grid() *TileGrid    { return a.grid }
func (a *Arena) Players() *Registry { return a.players }
func (a *Arena) Paused() bool       { return a.paused }
func (a *Arena) Round() int         { return a.round }

// Towers returns the arena's towers in placement order.
func (a *Arena) Towers() []*tower.Tower {
	return a.towers
}

// Tower returns the first tower of team.
func (a *Arena) Tower(team state.Team) (*tower.Tower, bool) {
	for _, t := range a.towers {
		if t.Team() == team {
			return t, true
		}
	}
	return nil, false
}

// Projectiles lists projectiles that are still in flight, pending ones
// included.
func (a *Arena) Projectiles() []*combat.Projectile {
	var out []*combat.Projectile
	for _, list := range [][]entity{a.entities, a.pending} {
		for _, e := range list {
			if p, ok := e.(*combat.Projectile); ok && !p.Destroyed() {
				out = append(out, p)
			}
		}
	}
	return out
}

// AddTower places a tower for team. Towers added mid-step join after it.
func (a *Arena) AddTower(team state.Team, pos state.Vec2) *tower.Tower {
	t := tower.New(a.env, team, pos)
	a.towers = append(a.towers, t)
	if a.stepping {
		a.pending = append(a.pending, t)
	} else {
		a.entities = append(a.entities, t)
	}
	return t
}

// Join adds a player to the arena.
func (a *Arena) Join(spec PlayerSpec) *Player {
	return a.players.Join(spec)
}

// Leave removes a player. Its projectiles keep flying on behalf of its team,
// so a later joiner reusing the slot is never credited with them.
func (a *Arena) Leave(id state.ActorID) bool {
	if !a.players.Leave(id) {
		return false
	}
	for _, p := range a.Projectiles() {
		if p.Owner() == id {
			p.Disown()
		}
	}
	return true
}

// FireWeapon launches the projectiles of weapon from the owner's body along
// dir. Shotguns fire a fan of pellets; other weapons fire one shot. New
// projectiles are anchored at the current tick and tick for the first time
// on the following step.
func (a *Arena) FireWeapon(ctx context.Context, owner state.ActorID, weapon state.Weapon, dir state.Vec2) ([]*combat.Projectile, error) {
	actor, ok := a.players.Player(owner)
	if !ok || !actor.Alive() {
		return nil, fmt.Errorf("fire %s for actor %d: %w", weapon, owner, ErrUnknownActor)
	}
	profile := a.env.Config.Weapon(weapon)
	lifeSpan := int(a.env.Ticks(profile.Lifetime))
	if profile.Speed <= 0 || lifeSpan <= 0 {
		return nil, fmt.Errorf("fire %s: %w", weapon, ErrNotProjectileWeapon)
	}
	if dir.Len() == 0 {
		dir = actor.Aim()
	}
	dir = dir.Normalize()
	start := actor.Position().Add(dir.Mul(a.env.Config.Character.PhysSize * 0.75))

	directions := []state.Vec2{dir}
	if weapon == state.WeaponShotgun {
		directions = shotgunDirections(dir)
	}

	fired := make([]*combat.Projectile, 0, len(directions))
	for _, d := range directions {
		p := combat.NewProjectile(a.env, combat.ProjectileConfig{
			ID:          a.ids.NewID(),
			Type:        weapon,
			Owner:       owner,
			Pos:         start,
			Direction:   d,
			LifeSpan:    lifeSpan,
			Damage:      profile.Damage,
			Explosive:   profile.Explosive,
			Force:       profile.Force,
			SoundImpact: state.SoundID(profile.ImpactSound),
			Weapon:      weapon,
		})
		a.pending = append(a.pending, p)
		fired = append(fired, p)
	}
	a.effects.Sound(start, fireSound(weapon))
	if a.metrics != nil {
		a.metrics.Add(projectilesSpawnedMetricKey, uint64(len(fired)))
	}
	return fired, nil
}

func shotgunDirections(dir state.Vec2) []state.Vec2 {
	base := math.Atan2(dir.Y(), dir.X())
	half := len(shotgunSpread) / 2
	out := make([]state.Vec2, 0, len(shotgunSpread))
	for i, spread := range shotgunSpread {
		v := 1 - math.Abs(float64(i-half))/float64(half)
		speed := shotgunSpeedDiff + (1-shotgunSpeedDiff)*v
		out = append(out, state.Direction(base+spread).Mul(speed))
	}
	return out
}

func fireSound(weapon state.Weapon) state.SoundID {
	switch weapon {
	case state.WeaponGun:
		return state.SoundGunFire
	case state.WeaponShotgun:
		return state.SoundShotgunFire
	case state.WeaponGrenade:
		return state.SoundGrenadeFire
	default:
		return state.SoundNone
	}
}

// Step advances the arena by one tick and applies cmds at the new tick before
// any entity runs. Entities spawned while stepping join after the step and
// destroyed ones are swept at its end.
func (a *Arena) Step(ctx context.Context, cmds []Command) {
	a.tick++
	a.stepping = true
	for _, cmd := range cmds {
		a.apply(ctx, cmd)
	}
	for _, e := range a.entities {
		if a.paused {
			e.TickPaused(a.env)
			continue
		}
		e.Tick(ctx, a.env)
	}
	if !a.paused {
		for _, p := range a.players.Players() {
			p.tickEmote(a.tick)
		}
	}
	a.stepping = false
	a.sweep()
	a.frame = a.effects.drain()
	if a.metrics != nil {
		a.metrics.Store(entitiesMetricKey, uint64(len(a.entities)))
	}
}

func (a *Arena) sweep() {
	live := a.entities[:0]
	for _, e := range a.entities {
		if !e.Destroyed() {
			live = append(live, e)
			continue
		}
		if p, ok := e.(*combat.Projectile); ok {
			a.ids.FreeID(p.ID())
		}
	}
	for i := len(live); i < len(a.entities); i++ {
		a.entities[i] = nil
	}
	a.entities = append(live, a.pending...)
	a.pending = nil
}

// SetPaused freezes or resumes the arena. Paused steps still advance the tick
// so that projectiles shift their anchors instead of jumping on resume.
func (a *Arena) SetPaused(ctx context.Context, paused bool) {
	if a.paused == paused {
		return
	}
	a.paused = paused
	simulation.PauseChanged(ctx, a.env.Publisher, uint64(a.tick), simulation.PausePayload{Paused: paused})
}

// StartRound resets every tower, clears projectiles in flight and revives
// all players.
func (a *Arena) StartRound(ctx context.Context) {
	a.round++
	for _, e := range a.entities {
		e.Reset(ctx, a.env)
	}
	for _, e := range a.pending {
		e.Reset(ctx, a.env)
	}
	a.players.RespawnAll()
	if !a.stepping {
		a.sweep()
	}
	lifecycle.RoundStarted(ctx, a.env.Publisher, uint64(a.tick), lifecycle.RoundPayload{
		Round:  a.round,
		Towers: len(a.towers),
	})
}

// Snapshot builds the frame of the last completed step for viewer. Towers
// and projectiles are written in step order, characters last.
func (a *Arena) Snapshot(viewer world.Viewer) Frame {
	w := newFrameWriter(a.capacity)
	for _, e := range a.entities {
		e.Snap(a.env, viewer, w)
	}
	for _, p := range a.players.Players() {
		if !viewer.Spectator && a.env.NetworkClipped(viewer, p.pos) {
			continue
		}
		if !w.writePlayer(p) {
			break
		}
	}
	return Frame{
		Tick:      a.tick,
		Paused:    a.paused,
		Items:     w.items,
		Effects:   append([]Effect(nil), a.frame...),
		Truncated: w.truncated,
	}
}

// Close releases the ids reserved by towers.
func (a *Arena) Close() {
	for _, t := range a.towers {
		t.Close()
	}
}
