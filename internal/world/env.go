package world

import (
	"math"

	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
)

// Env bundles the collaborators an entity consults while it ticks or snaps.
// The world container builds one per simulation and passes it to every call.
// Entities may hold on to the *Env itself but never to its members, which the
// container is free to swap between steps.
type Env struct {
	Clock     Clock
	Config    Config
	Collision CollisionSurface
	Index     SpatialIndex
	Actors    ActorLookup
	Effects   EffectSink
	IDs       IDAllocator
	Publisher logging.Publisher
}

// Tick returns the current simulation tick.
func (e *Env) Tick() int64 {
	if e == nil || e.Clock == nil {
		return 0
	}
	return e.Clock.Tick()
}

// TickRate returns ticks per second, falling back to the configured rate.
func (e *Env) TickRate() int {
	if e != nil && e.Clock != nil {
		if rate := e.Clock.TickRate(); rate > 0 {
			return rate
		}
	}
	if e != nil && e.Config.TickRate > 0 {
		return e.Config.TickRate
	}
	return DefaultTickRate
}

// Ticks converts seconds into ticks at the rate the clock runs at.
func (e *Env) Ticks(seconds float64) int64 {
	return SecondsToTicks(seconds, e.TickRate())
}

// AttackerTeam resolves the team damage from id is credited to. Sentinels
// carry their team in the id; player slots resolve through the lookup even
// while the character is dead.
func (e *Env) AttackerTeam(id state.ActorID) (state.Team, bool) {
	if team, ok := id.SentinelTeam(); ok {
		return team, true
	}
	if e == nil || e.Actors == nil || !id.IsPlayer() {
		return state.TeamRed, false
	}
	return e.Actors.TeamOf(id)
}

// Actor resolves id through the injected lookup. Missing actors, sentinel
// ids and a missing lookup all yield nil.
func (e *Env) Actor(id state.ActorID) Actor {
	if e == nil || e.Actors == nil || !id.IsPlayer() {
		return nil
	}
	actor, ok := e.Actors.Actor(id)
	if !ok {
		return nil
	}
	return actor
}

// GameLayerClipped reports whether pos left the playable region.
func (e *Env) GameLayerClipped(pos Vec2) bool {
	margin := e.Config.ClipMargin
	return pos.X() < -margin || pos.X() >= e.Config.Width+margin ||
		pos.Y() < -margin || pos.Y() >= e.Config.Height+margin
}

// NetworkClipped reports whether pos is outside the region replicated to
// viewer.
func (e *Env) NetworkClipped(viewer Viewer, pos Vec2) bool {
	if viewer.Spectator {
		return false
	}
	dx := viewer.Center.X() - pos.X()
	dy := viewer.Center.Y() - pos.Y()
	return math.Abs(dx) > e.Config.Network.ClipHalfWidth || math.Abs(dy) > e.Config.Network.ClipHalfHeight
}

// Sink returns the configured effect sink, or one that drops everything.
func (e *Env) Sink() EffectSink {
	if e == nil || e.Effects == nil {
		return nopEffects{}
	}
	return e.Effects
}

type nopEffects struct{}

func (nopEffects) Sound(Vec2, state.SoundID)              {}
func (nopEffects) GlobalSound(state.SoundID)              {}
func (nopEffects) DamageSound(state.ActorID)              {}
func (nopEffects) Explosion(ExplosionRequest)             {}
func (nopEffects) Emoticon(state.ActorID, state.Emoticon) {}
func (nopEffects) Chat(state.ActorID, Message)            {}
func (nopEffects) Broadcast(state.ActorID, Message)       {}
func (nopEffects) SpawnMarker(Vec2)                       {}
