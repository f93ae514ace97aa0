package world

import "github.com/Bamcane/teeworlds-teewar/internal/world/state"

//go:generate go tool mockgen -destination=./mocks/world_mock.go -package=mocks . Actor,ActorLookup,Clock,CollisionSurface,EffectSink,IDAllocator,SnapshotWriter,SpatialIndex,Structure

// Clock exposes the simulation tick counter.
type Clock interface {
	Tick() int64
	TickRate() int
}

// CollisionSurface answers segment queries against solid world geometry.
type CollisionSurface interface {
	// IntersectSegment reports whether p0-p1 crosses solid geometry and, if
	// so, the first point along the segment inside it.
	IntersectSegment(p0, p1 Vec2) (bool, Vec2)
}

// SpatialIndex answers proximity and swept queries against live entities.
type SpatialIndex interface {
	FindActors(center Vec2, radius float64) []Actor
	// IntersectActor returns the actor closest to p0 whose body intersects the
	// swept segment, skipping exclude. The point is the closest point on the
	// segment to that actor.
	IntersectActor(p0, p1 Vec2, radius float64, exclude Actor) (Actor, Vec2)
	// IntersectStructure is IntersectActor for towers, skipping towers of
	// excludeTeam.
	IntersectStructure(p0, p1 Vec2, radius float64, excludeTeam state.Team) (Structure, Vec2)
}

// InputState is the latest decoded input of a player.
type InputState struct {
	Fire bool
	// FireCount increments on each new press.
	FireCount int
}

// Actor is the slice of a player character the tower and projectile read or
// write.
type Actor interface {
	ID() state.ActorID
	Team() state.Team
	Role() state.Role
	Weapon() state.Weapon
	Position() Vec2
	Input() InputState

	Armor() int
	SetArmor(armor int)
	LastFixTick() int64
	SetLastFixTick(tick int64)

	TakeDamage(force Vec2, damage int, from state.ActorID, weapon state.Weapon) bool
	SetEmote(emote state.Emote, untilTick int64)
}

// ActorLookup resolves player slots to their live characters.
type ActorLookup interface {
	Actor(id state.ActorID) (Actor, bool)
	Actors() []Actor
	// TeamOf reports the team of an occupied slot, dead or alive.
	TeamOf(id state.ActorID) (state.Team, bool)
}

// Structure is the tower surface visible to projectiles.
type Structure interface {
	Team() state.Team
	Position() Vec2
	Radius() float64
	Shielded() bool
	AbsorbHit()
	TakeDamage(damage int, from state.ActorID)
}

// Message is a localizable chat or broadcast template with named arguments.
type Message struct {
	Template string
	Args     map[string]any
}

// ExplosionRequest describes an explosion the game context should create.
type ExplosionRequest struct {
	Pos      Vec2
	Attacker state.ActorID
	Weapon   state.Weapon
	// NoDamage marks cosmetic explosions.
	NoDamage bool
}

// EffectSink receives fire-and-forget side effects. Chat and Broadcast
// address every player when target is state.NoActor.
type EffectSink interface {
	Sound(pos Vec2, sound state.SoundID)
	GlobalSound(sound state.SoundID)
	DamageSound(to state.ActorID)
	Explosion(req ExplosionRequest)
	Emoticon(actor state.ActorID, emoticon state.Emoticon)
	Chat(target state.ActorID, msg Message)
	Broadcast(target state.ActorID, msg Message)
	SpawnMarker(pos Vec2)
}

// IDAllocator hands out replication ids for snapshot items that are not
// entities on their own.
type IDAllocator interface {
	NewID() int
	FreeID(id int)
}
