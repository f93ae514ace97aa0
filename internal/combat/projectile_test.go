package combat_test

import (
	"context"
	"math"
	"testing"

	"github.com/Bamcane/teeworlds-teewar/internal/combat"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/mocks"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	combatlog "github.com/Bamcane/teeworlds-teewar/logging/combat"
	"github.com/Bamcane/teeworlds-teewar/logging/sinks"
	"go.uber.org/mock/gomock"
)

type testClock struct {
	tick int64
	rate int
}

func (c *testClock) Tick() int64   { return c.tick }
func (c *testClock) TickRate() int { return c.rate }

func newTestEnv(clock *testClock) *world.Env {
	return &world.Env{Clock: clock, Config: world.DefaultConfig()}
}

func gunConfig(env *world.Env, owner state.ActorID, lifeSpan int) combat.ProjectileConfig {
	profile := env.Config.Weapon(state.WeaponGun)
	return combat.ProjectileConfig{
		ID:          7,
		Type:        state.WeaponGun,
		Owner:       owner,
		Pos:         state.V(100, 100),
		Direction:   state.V(1, 0),
		LifeSpan:    lifeSpan,
		Damage:      profile.Damage,
		SoundImpact: state.SoundID(profile.ImpactSound),
		Weapon:      state.WeaponGun,
		Team:        state.TeamRed,
	}
}

func grenadeConfig(env *world.Env, owner state.ActorID, lifeSpan int) combat.ProjectileConfig {
	profile := env.Config.Weapon(state.WeaponGrenade)
	return combat.ProjectileConfig{
		ID:          9,
		Type:        state.WeaponGrenade,
		Owner:       owner,
		Pos:         state.V(0, 0),
		Direction:   state.V(0.6, -0.8),
		LifeSpan:    lifeSpan,
		Damage:      profile.Damage,
		Explosive:   profile.Explosive,
		SoundImpact: state.SoundID(profile.ImpactSound),
		Weapon:      state.WeaponGrenade,
		Team:        state.TeamBlue,
	}
}

// advance ticks the projectile until it is destroyed or limit steps passed,
// returning the tick it ended on.
func advance(ctx context.Context, p *combat.Projectile, env *world.Env, clock *testClock, limit int) int64 {
	for i := 0; i < limit && !p.Destroyed(); i++ {
		clock.tick++
		p.Tick(ctx, env)
	}
	return clock.tick
}

func TestProjectileExpiresOneTickAfterLifeSpan(t *testing.T) {
	clock := &testClock{tick: 200, rate: 50}
	env := newTestEnv(clock)
	p := combat.NewProjectile(env, gunConfig(env, 3, 4))

	if p.StartTick() != 200 {
		t.Fatalf("expected start tick 200, got %d", p.StartTick())
	}

	ended := advance(context.Background(), p, env, clock, 100)
	if !p.Destroyed() {
		t.Fatalf("expected projectile to expire")
	}
	if ended != 205 {
		t.Fatalf("expected expiry at start+L+1=205, got %d", ended)
	}
	if p.LifeSpan() != -1 {
		t.Fatalf("expected lifespan -1 after expiry, got %d", p.LifeSpan())
	}
}

func TestProjectileTeamFollowsOwner(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	owner := mocks.NewMockActor(ctrl)
	owner.EXPECT().Team().Return(state.TeamBlue).AnyTimes()
	lookup := mocks.NewMockActorLookup(ctrl)
	lookup.EXPECT().Actor(state.ActorID(2)).Return(owner, true).AnyTimes()
	env.Actors = lookup

	p := combat.NewProjectile(env, gunConfig(env, 2, 10))
	if p.Team() != state.TeamBlue {
		t.Fatalf("expected owner team blue, got %v", p.Team())
	}

	sentinel := combat.NewProjectile(env, gunConfig(env, state.BlueSentinel, 10))
	if sentinel.Team() != state.TeamBlue {
		t.Fatalf("expected sentinel team blue, got %v", sentinel.Team())
	}
}

func TestGunIntoWallStopsWithOneImpactSound(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	const wallX = 200.0
	collision := mocks.NewMockCollisionSurface(ctrl)
	collision.EXPECT().IntersectSegment(gomock.Any(), gomock.Any()).DoAndReturn(func(p0, p1 state.Vec2) (bool, state.Vec2) {
		if p1.X() >= wallX {
			return true, state.V(wallX, p1.Y())
		}
		return false, p1
	}).AnyTimes()
	env.Collision = collision

	// only the impact cue is allowed: no explosion, no damage
	effects := mocks.NewMockEffectSink(ctrl)
	effects.EXPECT().Sound(gomock.Any(), state.SoundHit).Times(1)
	env.Effects = effects

	memory := sinks.NewMemorySink()
	router, err := logging.NewRouter(logging.SystemClock{}, logging.Config{MinimumSeverity: logging.SeverityDebug}, nil, nil, []logging.NamedSink{{Name: "memory", Sink: memory}})
	if err != nil {
		t.Fatalf("new router: %v", err)
	}
	env.Publisher = router

	cfg := gunConfig(env, 1, 20)
	cfg.Damage = 5
	cfg.SoundImpact = state.SoundHit
	p := combat.NewProjectile(env, cfg)
	ended := advance(context.Background(), p, env, clock, 100)
	if !p.Destroyed() {
		t.Fatalf("expected projectile to stop at the wall")
	}
	// 44px per tick from x=100 crosses x=200 on the third tick
	if ended != 3 {
		t.Fatalf("expected wall hit on tick 3, got %d", ended)
	}
	if err := router.Close(context.Background()); err != nil {
		t.Fatalf("close router: %v", err)
	}
	impacts := memory.EventsOfType(combatlog.EventProjectileImpact)
	if len(impacts) != 1 {
		t.Fatalf("expected one impact event, got %d", len(impacts))
	}
	payload, ok := impacts[0].Payload.(combatlog.ProjectileImpactPayload)
	if !ok || !payload.Geometry || payload.X != wallX || payload.Damage != 5 {
		t.Fatalf("unexpected impact payload %#v", impacts[0].Payload)
	}
}

func TestGrenadeExplodesWhereItExpires(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{tick: 10, rate: 50}
	env := newTestEnv(clock)

	const lifeSpan = 6
	profile := env.Config.Weapon(state.WeaponGrenade)
	cfg := grenadeConfig(env, 4, lifeSpan)
	want := combat.CalcPos(cfg.Pos, cfg.Direction, profile.Curvature, profile.Speed, float64(lifeSpan+1)/50)

	effects := mocks.NewMockEffectSink(ctrl)
	gomock.InOrder(
		effects.EXPECT().Sound(gomock.Any(), state.SoundGrenadeExplode).Do(func(pos state.Vec2, _ state.SoundID) {
			if pos.Sub(want).Len() > 1e-9 {
				t.Fatalf("expected impact sound at %v, got %v", want, pos)
			}
		}),
		effects.EXPECT().Explosion(gomock.Any()).Do(func(req world.ExplosionRequest) {
			if req.Pos.Sub(want).Len() > 1e-9 {
				t.Fatalf("expected explosion at %v, got %v", want, req.Pos)
			}
			if req.Attacker != 4 || req.Weapon != state.WeaponGrenade || req.NoDamage {
				t.Fatalf("unexpected explosion request %#v", req)
			}
		}),
	)
	env.Effects = effects

	p := combat.NewProjectile(env, cfg)
	ended := advance(context.Background(), p, env, clock, 100)
	if !p.Destroyed() || ended != 10+lifeSpan+1 {
		t.Fatalf("expected grenade to expire at tick %d, got destroyed=%v tick=%d", 10+lifeSpan+1, p.Destroyed(), ended)
	}
}

func TestProjectileDamagesActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	victim := mocks.NewMockActor(ctrl)
	victim.EXPECT().ID().Return(state.ActorID(5)).AnyTimes()
	victim.EXPECT().TakeDamage(gomock.Any(), 1, state.ActorID(1), state.WeaponGun).DoAndReturn(
		func(force state.Vec2, _ int, _ state.ActorID, _ state.Weapon) bool {
			if math.Abs(force.X()-0.001) > 1e-12 || force.Y() != 0 {
				t.Fatalf("expected minimum force along the direction, got %v", force)
			}
			return true
		})

	index := mocks.NewMockSpatialIndex(ctrl)
	index.EXPECT().IntersectActor(gomock.Any(), gomock.Any(), 6.0, gomock.Nil()).Return(victim, state.V(130, 100))
	index.EXPECT().IntersectStructure(gomock.Any(), gomock.Any(), 6.0, state.TeamRed).Return(nil, state.Vec2{})
	env.Index = index
	env.Effects = mocks.NewMockEffectSink(ctrl)

	p := combat.NewProjectile(env, gunConfig(env, 1, 100))
	clock.tick++
	p.Tick(context.Background(), env)
	if !p.Destroyed() {
		t.Fatalf("expected projectile to be consumed by the hit")
	}
}

func TestUnshieldedTowerTakesDamage(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	tower := mocks.NewMockStructure(ctrl)
	tower.EXPECT().Team().Return(state.TeamBlue).AnyTimes()
	tower.EXPECT().Shielded().Return(false)
	tower.EXPECT().TakeDamage(1, state.ActorID(1))

	index := mocks.NewMockSpatialIndex(ctrl)
	index.EXPECT().IntersectActor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, state.Vec2{})
	index.EXPECT().IntersectStructure(gomock.Any(), gomock.Any(), gomock.Any(), state.TeamRed).Return(tower, state.V(120, 100))
	env.Index = index

	p := combat.NewProjectile(env, gunConfig(env, 1, 100))
	clock.tick++
	p.Tick(context.Background(), env)
	if !p.Destroyed() {
		t.Fatalf("expected projectile to be destroyed on an unshielded tower")
	}
}

func TestShieldedTowerReflectsProjectile(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	tower := mocks.NewMockStructure(ctrl)
	tower.EXPECT().Team().Return(state.TeamBlue).AnyTimes()
	tower.EXPECT().Shielded().Return(true).Times(2)
	tower.EXPECT().AbsorbHit().Times(2)

	index := mocks.NewMockSpatialIndex(ctrl)
	index.EXPECT().IntersectActor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, state.Vec2{}).AnyTimes()
	index.EXPECT().IntersectStructure(gomock.Any(), gomock.Any(), gomock.Any(), state.TeamRed).Return(tower, state.V(140, 100))
	index.EXPECT().IntersectStructure(gomock.Any(), gomock.Any(), gomock.Any(), state.TeamBlue).Return(tower, state.V(140, 100))
	env.Index = index
	env.Effects = mocks.NewMockEffectSink(ctrl)

	p := combat.NewProjectile(env, gunConfig(env, 1, 40))
	ctx := context.Background()

	clock.tick = 1
	p.Tick(ctx, env)
	if p.Destroyed() {
		t.Fatalf("expected shielded tower to reflect instead of destroy")
	}
	if p.LifeSpan() != 20 || p.StartLifeSpan() != 20 {
		t.Fatalf("expected lifespan halved to 20, got %d/%d", p.LifeSpan(), p.StartLifeSpan())
	}
	if p.Team() != state.TeamBlue || p.Owner() != state.BlueSentinel {
		t.Fatalf("expected projectile to change sides, got team=%v owner=%d", p.Team(), p.Owner())
	}
	if p.StartTick() != 1 {
		t.Fatalf("expected anchor reset to tick 1, got %d", p.StartTick())
	}
	// no geometry on either axis: both components invert and damp by half
	if got := p.Direction(); math.Abs(got.X()+0.5) > 1e-9 {
		t.Fatalf("expected reflected x velocity -0.5, got %v", got)
	}
	if p.Anchor() != state.V(100, 100) {
		t.Fatalf("expected anchor at previous sample, got %v", p.Anchor())
	}

	clock.tick = 2
	p.Tick(ctx, env)
	if p.LifeSpan() != 10 || p.StartLifeSpan() != 10 {
		t.Fatalf("expected second bounce to halve lifespan to 10, got %d/%d", p.LifeSpan(), p.StartLifeSpan())
	}
	if p.Team() != state.TeamRed || p.Owner() != state.RedSentinel {
		t.Fatalf("expected projectile back on red, got team=%v owner=%d", p.Team(), p.Owner())
	}
}

func TestBounceReflectsAgainstCollidingAxis(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{rate: 50}
	env := newTestEnv(clock)

	// a floor below y=100: only the vertical probe collides
	collision := mocks.NewMockCollisionSurface(ctrl)
	collision.EXPECT().IntersectSegment(gomock.Any(), gomock.Any()).DoAndReturn(func(p0, p1 state.Vec2) (bool, state.Vec2) {
		return p1.Y() > 100, p1
	}).AnyTimes()
	env.Collision = collision

	tower := mocks.NewMockStructure(ctrl)
	tower.EXPECT().Team().Return(state.TeamBlue).AnyTimes()
	tower.EXPECT().Shielded().Return(true)
	tower.EXPECT().AbsorbHit()

	index := mocks.NewMockSpatialIndex(ctrl)
	index.EXPECT().IntersectActor(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, state.Vec2{})
	index.EXPECT().IntersectStructure(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(tower, state.V(144, 100))
	env.Index = index

	cfg := gunConfig(env, 1, 40)
	cfg.Direction = state.V(0.8, 0.6)
	p := combat.NewProjectile(env, cfg)
	clock.tick = 1
	p.Tick(context.Background(), env)

	profile := env.Config.Weapon(state.WeaponGun)
	vel := combat.VelocityAt(cfg.Direction, profile.Curvature, profile.Speed, 1.0/50)
	got := p.Direction()
	if math.Abs(got.X()-vel.X()*0.5) > 1e-9 || math.Abs(got.Y()+vel.Y()*0.5) > 1e-9 {
		t.Fatalf("expected y-only reflection of %v, got %v", vel, got)
	}
}

func TestTickPausedShiftsAnchor(t *testing.T) {
	clock := &testClock{tick: 30, rate: 50}
	env := newTestEnv(clock)
	p := combat.NewProjectile(env, gunConfig(env, 1, 10))

	before := p.Position(env)
	clock.tick++
	p.TickPaused(env)
	if p.StartTick() != 31 {
		t.Fatalf("expected start tick 31, got %d", p.StartTick())
	}
	if p.Position(env) != before {
		t.Fatalf("expected paused projectile to hold position")
	}

	p.Reset(context.Background(), env)
	if !p.Destroyed() {
		t.Fatalf("expected reset to destroy the projectile")
	}
}

func TestProjectileSnapRespectsNetworkClip(t *testing.T) {
	ctrl := gomock.NewController(t)
	clock := &testClock{tick: 5, rate: 50}
	env := newTestEnv(clock)

	cfg := gunConfig(env, 1, 100)
	cfg.Direction = state.V(0.6, -0.8)
	p := combat.NewProjectile(env, cfg)
	clock.tick = 6

	far := mocks.NewMockSnapshotWriter(ctrl)
	p.Snap(env, world.Viewer{ID: 2, Center: state.V(5000, 5000)}, far)

	near := mocks.NewMockSnapshotWriter(ctrl)
	near.EXPECT().Write(world.ItemProjectile, 7, world.ProjectileItem{
		X:         100,
		Y:         100,
		VelX:      60,
		VelY:      -80,
		StartTick: 5,
		Type:      state.WeaponGun,
	}).Return(false)
	p.Snap(env, world.Viewer{ID: 2, Center: state.V(150, 100)}, near)

	spectator := mocks.NewMockSnapshotWriter(ctrl)
	spectator.EXPECT().Write(world.ItemProjectile, 7, gomock.Any()).Return(true)
	p.Snap(env, world.Viewer{ID: 3, Spectator: true, Center: state.V(9000, 9000)}, spectator)
}
