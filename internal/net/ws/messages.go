package ws

import (
	"fmt"

	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

// ProtocolVersion is stamped on every server message.
const ProtocolVersion = 1

type clientMessage struct {
	Ver    int      `json:"ver,omitempty"`
	Type   string   `json:"type"`
	Fire   bool     `json:"fire"`
	AimX   float64  `json:"aimX"`
	AimY   float64  `json:"aimY"`
	Weapon string   `json:"weapon,omitempty"`
	X      *float64 `json:"x,omitempty"`
	Y      *float64 `json:"y,omitempty"`
	Paused bool     `json:"paused"`
}

type welcomeMessage struct {
	Ver       int           `json:"ver"`
	Type      string        `json:"type"`
	Session   string        `json:"session"`
	Actor     state.ActorID `json:"actor"`
	Spectator bool          `json:"spectator"`
	TickRate  int           `json:"tickRate"`
}

type frameMessage struct {
	Ver  int    `json:"ver"`
	Type string `json:"type"`
	sim.Frame
}

type rejectMessage struct {
	Ver    int    `json:"ver"`
	Type   string `json:"type"`
	Reason string `json:"reason"`
}

// command translates a client message into an arena command for actor.
func (m clientMessage) command(actor state.ActorID) (sim.Command, error) {
	switch m.Type {
	case "input":
		in := &sim.InputCommand{Fire: m.Fire, AimX: m.AimX, AimY: m.AimY}
		if m.Weapon != "" {
			weapon, err := state.ParseWeapon(m.Weapon)
			if err != nil {
				return sim.Command{}, err
			}
			in.Weapon = &weapon
		}
		if m.X != nil && m.Y != nil {
			pos := state.V(*m.X, *m.Y)
			in.Pos = &pos
		}
		return sim.Command{Type: sim.CommandInput, ActorID: actor, Input: in}, nil
	case "pause":
		return sim.Command{Type: sim.CommandPause, ActorID: actor, Pause: &sim.PauseCommand{Paused: m.Paused}}, nil
	case "round":
		return sim.Command{Type: sim.CommandStartRound, ActorID: actor}, nil
	default:
		return sim.Command{}, fmt.Errorf("unknown message type %q", m.Type)
	}
}
