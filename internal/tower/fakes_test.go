package tower_test

import (
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

type stubClock struct {
	tick int64
	rate int
}

func (c *stubClock) Tick() int64   { return c.tick }
func (c *stubClock) TickRate() int { return c.rate }

type stubActor struct {
	id          state.ActorID
	team        state.Team
	role        state.Role
	weapon      state.Weapon
	pos         state.Vec2
	fire        bool
	armor       int
	lastFixTick int64
	emote       state.Emote
	emoteUntil  int64
}

func (a *stubActor) ID() state.ActorID         { return a.id }
func (a *stubActor) Team() state.Team          { return a.team }
func (a *stubActor) Role() state.Role          { return a.role }
func (a *stubActor) Weapon() state.Weapon      { return a.weapon }
func (a *stubActor) Position() state.Vec2      { return a.pos }
func (a *stubActor) Input() world.InputState   { return world.InputState{Fire: a.fire} }
func (a *stubActor) Armor() int                { return a.armor }
func (a *stubActor) SetArmor(armor int)        { a.armor = armor }
func (a *stubActor) LastFixTick() int64        { return a.lastFixTick }
func (a *stubActor) SetLastFixTick(tick int64) { a.lastFixTick = tick }

func (a *stubActor) TakeDamage(state.Vec2, int, state.ActorID, state.Weapon) bool {
	return false
}

func (a *stubActor) SetEmote(emote state.Emote, untilTick int64) {
	a.emote = emote
	a.emoteUntil = untilTick
}

// stubPlayers serves as both the actor lookup and the spatial index; every
// registered actor is considered in reach of every tower.
type stubPlayers struct {
	actors []*stubActor
}

func (p *stubPlayers) Actor(id state.ActorID) (world.Actor, bool) {
	for _, actor := range p.actors {
		if actor.id == id {
			return actor, true
		}
	}
	return nil, false
}

func (p *stubPlayers) TeamOf(id state.ActorID) (state.Team, bool) {
	for _, actor := range p.actors {
		if actor.id == id {
			return actor.team, true
		}
	}
	return state.TeamRed, false
}

func (p *stubPlayers) Actors() []world.Actor {
	out := make([]world.Actor, 0, len(p.actors))
	for _, actor := range p.actors {
		out = append(out, actor)
	}
	return out
}

func (p *stubPlayers) FindActors(state.Vec2, float64) []world.Actor {
	return p.Actors()
}

func (p *stubPlayers) IntersectActor(state.Vec2, state.Vec2, float64, world.Actor) (world.Actor, state.Vec2) {
	return nil, state.Vec2{}
}

func (p *stubPlayers) IntersectStructure(state.Vec2, state.Vec2, float64, state.Team) (world.Structure, state.Vec2) {
	return nil, state.Vec2{}
}

type recordedMessage struct {
	target state.ActorID
	msg    world.Message
}

type recordingEffects struct {
	sounds       []state.SoundID
	globals      []state.SoundID
	damageSounds []state.ActorID
	explosions   []world.ExplosionRequest
	emoticons    []state.Emoticon
	chats        []recordedMessage
	broadcasts   []recordedMessage
	markers      []state.Vec2
}

func (e *recordingEffects) Sound(_ state.Vec2, sound state.SoundID) { e.sounds = append(e.sounds, sound) }
func (e *recordingEffects) GlobalSound(sound state.SoundID)         { e.globals = append(e.globals, sound) }
func (e *recordingEffects) DamageSound(to state.ActorID)            { e.damageSounds = append(e.damageSounds, to) }
func (e *recordingEffects) Explosion(req world.ExplosionRequest)    { e.explosions = append(e.explosions, req) }
func (e *recordingEffects) SpawnMarker(pos state.Vec2)              { e.markers = append(e.markers, pos) }

func (e *recordingEffects) Emoticon(_ state.ActorID, emoticon state.Emoticon) {
	e.emoticons = append(e.emoticons, emoticon)
}

func (e *recordingEffects) Chat(target state.ActorID, msg world.Message) {
	e.chats = append(e.chats, recordedMessage{target: target, msg: msg})
}

func (e *recordingEffects) Broadcast(target state.ActorID, msg world.Message) {
	e.broadcasts = append(e.broadcasts, recordedMessage{target: target, msg: msg})
}

func (e *recordingEffects) count(sound state.SoundID) int {
	n := 0
	for _, s := range e.sounds {
		if s == sound {
			n++
		}
	}
	return n
}

type snapItem struct {
	kind    world.ItemKind
	id      int
	payload any
}

type limitedWriter struct {
	capacity int
	items    []snapItem
}

func (w *limitedWriter) Write(kind world.ItemKind, id int, payload any) bool {
	if w.capacity >= 0 && len(w.items) >= w.capacity {
		return false
	}
	w.items = append(w.items, snapItem{kind: kind, id: id, payload: payload})
	return true
}

func (w *limitedWriter) kinds(kind world.ItemKind) int {
	n := 0
	for _, item := range w.items {
		if item.kind == kind {
			n++
		}
	}
	return n
}

type harness struct {
	clock   *stubClock
	players *stubPlayers
	effects *recordingEffects
	env     *world.Env
}

func newHarness() *harness {
	clock := &stubClock{tick: 1, rate: 50}
	players := &stubPlayers{}
	effects := &recordingEffects{}
	return &harness{
		clock:   clock,
		players: players,
		effects: effects,
		env: &world.Env{
			Clock:   clock,
			Config:  world.DefaultConfig(),
			Index:   players,
			Actors:  players,
			Effects: effects,
		},
	}
}

func (h *harness) add(actor *stubActor) *stubActor {
	h.players.actors = append(h.players.actors, actor)
	return actor
}
