package sim

import (
	"sort"
	"sync"

	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// Player is the arena's character body. It carries just enough state for
// towers and projectiles to interact with it; movement is teleport-only.
type Player struct {
	id     state.ActorID
	team   state.Team
	role   state.Role
	weapon state.Weapon
	pos    state.Vec2
	vel    state.Vec2
	aim    state.Vec2
	input  world.InputState

	health      int
	armor       int
	maxArmor    int
	alive       bool
	lastFixTick int64
	emote       state.Emote
	emoteUntil  int64

	registry *Registry
}

var _ world.Actor = (*Player)(nil)

func (p *Player) ID() state.ActorID         { return p.id }
func (p *Player) Team() state.Team          { return p.team }
func (p *Player) Role() state.Role          { return p.role }
func (p *Player) Weapon() state.Weapon      { return p.weapon }
func (p *Player) Position() state.Vec2      { return p.pos }
func (p *Player) Velocity() state.Vec2      { return p.vel }
func (p *Player) Aim() state.Vec2           { return p.aim }
func (p *Player) Input() world.InputState   { return p.input }
func (p *Player) Health() int               { return p.health }
func (p *Player) Alive() bool               { return p.alive }
func (p *Player) Armor() int                { return p.armor }
func (p *Player) LastFixTick() int64        { return p.lastFixTick }
func (p *Player) SetLastFixTick(tick int64) { p.lastFixTick = tick }
func (p *Player) Emote() state.Emote        { return p.emote }

// SetArmor clamps armor to the character's capacity.
func (p *Player) SetArmor(armor int) {
	p.armor = min(max(armor, 0), p.maxArmor)
}

func (p *Player) SetEmote(emote state.Emote, untilTick int64) {
	p.emote = emote
	p.emoteUntil = untilTick
}

// TakeDamage pushes the character by force and applies damage, armor first.
// Hits from teammates other than the player itself only push. It reports
// whether any damage was taken.
func (p *Player) TakeDamage(force state.Vec2, damage int, from state.ActorID, _ state.Weapon) bool {
	if !p.alive {
		return false
	}
	p.vel = p.vel.Add(force)
	if from != p.id && p.friendly(from) {
		return false
	}
	if from == p.id {
		damage = max(1, damage/2)
	}
	if damage <= 0 {
		return false
	}
	if p.armor > 0 {
		if damage > 1 {
			p.health--
			damage--
		}
		if damage > p.armor {
			damage -= p.armor
			p.armor = 0
		} else {
			p.armor -= damage
			damage = 0
		}
	}
	p.health -= damage
	if p.health <= 0 {
		p.health = 0
		p.alive = false
		return true
	}
	p.emote = state.EmotePain
	return true
}

func (p *Player) friendly(from state.ActorID) bool {
	if team, ok := from.SentinelTeam(); ok {
		return team == p.team
	}
	if p.registry == nil {
		return false
	}
	team, ok := p.registry.TeamOf(from)
	return ok && team == p.team
}

// PlayerSpec describes a joining player.
type PlayerSpec struct {
	Team   state.Team
	Role   state.Role
	Weapon state.Weapon
	Pos    state.Vec2
}

// Registry owns the player slots and implements world.ActorLookup. Slot ids
// are reused lowest first.
type Registry struct {
	mu      sync.RWMutex
	cfg     world.CharacterConfig
	players map[state.ActorID]*Player
	order   []state.ActorID
}

var _ world.ActorLookup = (*Registry)(nil)

func NewRegistry(cfg world.CharacterConfig) *Registry {
	return &Registry{cfg: cfg, players: make(map[state.ActorID]*Player)}
}

// Join places a new player in the lowest free slot.
func (r *Registry) Join(spec PlayerSpec) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := state.ActorID(0)
	for {
		if _, taken := r.players[id]; !taken {
			break
		}
		id++
	}
	player := &Player{
		id:          id,
		team:        spec.Team,
		role:        spec.Role,
		weapon:      spec.Weapon,
		pos:         spec.Pos,
		aim:         state.Vec2{1, 0},
		maxArmor:    r.cfg.MaxArmor,
		lastFixTick: -1 << 31,
		registry:    r,
	}
	player.respawn(r.cfg, spec.Pos)
	r.players[id] = player
	r.order = append(r.order, id)
	sort.Slice(r.order, func(i, j int) bool { return r.order[i] < r.order[j] })
	return player
}

// Leave frees the slot of id.
func (r *Registry) Leave(id state.ActorID) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.players[id]; !ok {
		return false
	}
	delete(r.players, id)
	for i, candidate := range r.order {
		if candidate == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return true
}

// Player returns the concrete player in slot id.
func (r *Registry) Player(id state.ActorID) (*Player, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	player, ok := r.players[id]
	return player, ok
}

// Actor returns live players only.
func (r *Registry) Actor(id state.ActorID) (world.Actor, bool) {
	player, ok := r.Player(id)
	if !ok || !player.alive {
		return nil, false
	}
	return player, true
}

// TeamOf reports the team of slot id whether or not its character is alive.
func (r *Registry) TeamOf(id state.ActorID) (state.Team, bool) {
	player, ok := r.Player(id)
	if !ok {
		return state.TeamRed, false
	}
	return player.team, true
}

// Actors lists live players in slot order.
func (r *Registry) Actors() []world.Actor {
	players := r.Players()
	actors := make([]world.Actor, 0, len(players))
	for _, player := range players {
		if player.alive {
			actors = append(actors, player)
		}
	}
	return actors
}

// Players lists every player, dead or alive, in slot order.
func (r *Registry) Players() []*Player {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*Player, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.players[id])
	}
	return out
}

// RespawnAll revives every player at its current position.
func (r *Registry) RespawnAll() {
	for _, player := range r.Players() {
		player.respawn(r.cfg, player.pos)
	}
}

func (p *Player) respawn(cfg world.CharacterConfig, pos state.Vec2) {
	p.pos = pos
	p.vel = state.Vec2{}
	p.health = cfg.MaxHealth
	p.armor = 0
	p.alive = true
	p.emote = state.EmoteNormal
	p.emoteUntil = 0
}

// tickEmote returns the character to its normal face once a timed emote ran
// out.
func (p *Player) tickEmote(tick int64) {
	if p.emote != state.EmoteNormal && p.emoteUntil > 0 && tick >= p.emoteUntil {
		p.emote = state.EmoteNormal
		p.emoteUntil = 0
	}
}
