package sim

import (
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// DefaultSnapshotCapacity bounds the items of one frame.
const DefaultSnapshotCapacity = 1024

// Item is one replicated snapshot entry.
type Item struct {
	Kind    string `json:"kind"`
	ID      int    `json:"id"`
	Payload any    `json:"payload"`
}

// PlayerItem replicates a character.
type PlayerItem struct {
	ID     state.ActorID `json:"id"`
	Team   state.Team    `json:"team"`
	Role   string        `json:"role"`
	Weapon state.Weapon  `json:"weapon"`
	X      int           `json:"x"`
	Y      int           `json:"y"`
	Health int           `json:"health"`
	Armor  int           `json:"armor"`
	Emote  state.Emote   `json:"emote"`
	Alive  bool          `json:"alive"`
}

// Frame is the snapshot of one step as seen by one viewer.
type Frame struct {
	Tick    int64    `json:"tick"`
	Paused  bool     `json:"paused"`
	Items   []Item   `json:"items"`
	Effects []Effect `json:"effects,omitempty"`
	// Truncated is set when the capacity was reached and items were skipped.
	Truncated bool `json:"truncated,omitempty"`
}

// frameWriter collects items up to a fixed capacity.
type frameWriter struct {
	capacity  int
	items     []Item
	truncated bool
}

var _ world.SnapshotWriter = (*frameWriter)(nil)

func newFrameWriter(capacity int) *frameWriter {
	if capacity <= 0 {
		capacity = DefaultSnapshotCapacity
	}
	return &frameWriter{capacity: capacity, items: make([]Item, 0, min(capacity, 64))}
}

func (w *frameWriter) Write(kind world.ItemKind, id int, payload any) bool {
	if len(w.items) >= w.capacity {
		w.truncated = true
		return false
	}
	w.items = append(w.items, Item{Kind: kind.String(), ID: id, Payload: payload})
	return true
}

func (w *frameWriter) writePlayer(p *Player) bool {
	return w.Write(world.ItemCharacter, int(p.id), PlayerItem{
		ID:     p.id,
		Team:   p.team,
		Role:   p.role.String(),
		Weapon: p.weapon,
		X:      world.RoundToInt(p.pos.X()),
		Y:      world.RoundToInt(p.pos.Y()),
		Health: p.health,
		Armor:  p.armor,
		Emote:  p.emote,
		Alive:  p.alive,
	})
}

// idPool hands out the lowest free replication id.
type idPool struct {
	next int
	free []int
}

var _ world.IDAllocator = (*idPool)(nil)

func (p *idPool) NewID() int {
	if n := len(p.free); n > 0 {
		lowest := 0
		for i := 1; i < n; i++ {
			if p.free[i] < p.free[lowest] {
				lowest = i
			}
		}
		id := p.free[lowest]
		p.free[lowest] = p.free[n-1]
		p.free = p.free[:n-1]
		return id
	}
	id := p.next
	p.next++
	return id
}

func (p *idPool) FreeID(id int) {
	if id < 0 || id >= p.next {
		return
	}
	for _, candidate := range p.free {
		if candidate == id {
			return
		}
	}
	p.free = append(p.free, id)
}
