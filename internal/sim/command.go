package sim

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

const (
	inboxOccupancyMetricKey = "sim_inbox_occupancy"
	inboxOverflowMetricKey  = "sim_inbox_overflow_total"
	commandErrorsMetricKey  = "sim_command_errors_total"
)

// CommandType enumerates what a viewer can ask of the arena.
type CommandType string

const (
	CommandJoin       CommandType = "Join"
	CommandLeave      CommandType = "Leave"
	CommandInput      CommandType = "Input"
	CommandPause      CommandType = "Pause"
	CommandStartRound CommandType = "StartRound"
)

// JoinCommand requests a player slot. The assigned id is sent on Reply when
// it is non-nil; the send never blocks. Once Abandon is closed the join is
// skipped and Reply is closed instead.
type JoinCommand struct {
	Spec    PlayerSpec
	Reply   chan<- state.ActorID
	Abandon <-chan struct{}
}

func (j *JoinCommand) abandoned() bool {
	select {
	case <-j.Abandon:
		return true
	default:
		return false
	}
}

// InputCommand carries the latest input of a player. Nil fields keep their
// previous value.
type InputCommand struct {
	Fire   bool
	AimX   float64
	AimY   float64
	Weapon *state.Weapon
	Pos    *state.Vec2
}

// PauseCommand freezes or resumes the arena.
type PauseCommand struct {
	Paused bool
}

// Command is an intent staged for the next step.
type Command struct {
	ActorID  state.ActorID
	Type     CommandType
	IssuedAt time.Time
	Join     *JoinCommand
	Input    *InputCommand
	Pause    *PauseCommand
}

var errMalformedCommand = errors.New("malformed command")

func (a *Arena) apply(ctx context.Context, cmd Command) {
	if err := a.applyCommand(ctx, cmd); err != nil && a.metrics != nil {
		a.metrics.Add(commandErrorsMetricKey, 1)
	}
}

func (a *Arena) applyCommand(ctx context.Context, cmd Command) error {
	switch cmd.Type {
	case CommandJoin:
		if cmd.Join == nil {
			return fmt.Errorf("%s: %w", cmd.Type, errMalformedCommand)
		}
		if cmd.Join.Abandon != nil && cmd.Join.abandoned() {
			if cmd.Join.Reply != nil {
				close(cmd.Join.Reply)
			}
			return nil
		}
		player := a.Join(cmd.Join.Spec)
		if cmd.Join.Reply != nil {
			select {
			case cmd.Join.Reply <- player.ID():
			default:
			}
		}
	case CommandLeave:
		if !a.Leave(cmd.ActorID) {
			return fmt.Errorf("leave %d: %w", cmd.ActorID, ErrUnknownActor)
		}
	case CommandInput:
		if cmd.Input == nil {
			return fmt.Errorf("%s: %w", cmd.Type, errMalformedCommand)
		}
		return a.applyInput(ctx, cmd.ActorID, *cmd.Input)
	case CommandPause:
		if cmd.Pause == nil {
			return fmt.Errorf("%s: %w", cmd.Type, errMalformedCommand)
		}
		a.SetPaused(ctx, cmd.Pause.Paused)
	case CommandStartRound:
		a.StartRound(ctx)
	default:
		return fmt.Errorf("command %q: %w", cmd.Type, errMalformedCommand)
	}
	return nil
}

// applyInput stores the input and fires the held weapon on a new press.
// Weapons without a projectile profile only count the press; towers read the
// held fire button on their own.
func (a *Arena) applyInput(ctx context.Context, id state.ActorID, in InputCommand) error {
	player, ok := a.players.Player(id)
	if !ok {
		return fmt.Errorf("input for %d: %w", id, ErrUnknownActor)
	}
	if aim := (state.Vec2{in.AimX, in.AimY}); aim.Len() > 0 {
		player.aim = aim.Normalize()
	}
	if in.Weapon != nil {
		player.weapon = *in.Weapon
	}
	if in.Pos != nil {
		player.pos = *in.Pos
	}
	pressed := in.Fire && !player.input.Fire
	player.input.Fire = in.Fire
	if !pressed || !player.alive {
		return nil
	}
	player.input.FireCount++
	if _, err := a.FireWeapon(ctx, id, player.weapon, player.aim); err != nil && !errors.Is(err, ErrNotProjectileWeapon) {
		return err
	}
	return nil
}

// Inbox stores staged commands in a fixed-size ring. It is safe for
// concurrent producers and a single consumer.
type Inbox struct {
	mu      sync.Mutex
	data    []Command
	head    int
	count   int
	metrics telemetry.Metrics
}

func NewInbox(capacity int, metrics telemetry.Metrics) *Inbox {
	if capacity < 1 {
		capacity = 1
	}
	return &Inbox{data: make([]Command, capacity), metrics: metrics}
}

// Push stages a command, returning false if the inbox is full.
func (b *Inbox) Push(cmd Command) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == len(b.data) {
		if b.metrics != nil {
			b.metrics.Add(inboxOverflowMetricKey, 1)
		}
		return false
	}
	b.data[(b.head+b.count)%len(b.data)] = cmd
	b.count++
	b.storeOccupancyLocked()
	return true
}

// Drain returns the staged commands in FIFO order and empties the inbox.
func (b *Inbox) Drain() []Command {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.count == 0 {
		return nil
	}
	commands := make([]Command, b.count)
	for i := range commands {
		commands[i] = b.data[(b.head+i)%len(b.data)]
		b.data[(b.head+i)%len(b.data)] = Command{}
	}
	b.head = (b.head + b.count) % len(b.data)
	b.count = 0
	b.storeOccupancyLocked()
	return commands
}

func (b *Inbox) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.count
}

func (b *Inbox) storeOccupancyLocked() {
	if b.metrics == nil {
		return
	}
	b.metrics.Store(inboxOccupancyMetricKey, uint64(b.count))
}
