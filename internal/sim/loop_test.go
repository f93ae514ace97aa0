package sim

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging/simulation"
)

func TestLoopThrottlesPerActor(t *testing.T) {
	arena, _ := newTestArena(t)
	var lines []string
	logger := telemetry.LoggerFunc(func(format string, args ...any) {
		lines = append(lines, fmt.Sprintf(format, args...))
	})
	var dropped []string
	loop := NewLoop(arena, LoopConfig{InboxCapacity: 8, PerActorLimit: 2}, LoopDeps{Logger: logger}, LoopHooks{
		OnCommandDrop: func(reason string, _ Command) { dropped = append(dropped, reason) },
	})

	for i := 0; i < 2; i++ {
		if ok, reason := loop.Enqueue(release(0)); !ok {
			t.Fatalf("expected command %d to be staged, rejected with %s", i, reason)
		}
	}
	ok, reason := loop.Enqueue(release(0))
	if ok || reason != CommandRejectQueueLimit {
		t.Fatalf("expected the third command to be throttled, got %v %q", ok, reason)
	}
	if ok, _ := loop.Enqueue(release(1)); !ok {
		t.Fatalf("expected another actor to be unaffected")
	}
	if ok, _ := loop.Enqueue(Command{Type: CommandJoin, Join: &JoinCommand{}}); !ok {
		t.Fatalf("expected joins to bypass the per-actor limit")
	}
	if len(dropped) != 1 || len(lines) != 1 || !strings.Contains(lines[0], "[backpressure]") {
		t.Fatalf("expected one reported drop, got drops %v lines %v", dropped, lines)
	}

	loop.Advance(context.Background())
	if ok, _ := loop.Enqueue(release(0)); !ok {
		t.Fatalf("expected the limit to reset after a step")
	}
}

func TestLoopRejectsWhenInboxFull(t *testing.T) {
	arena, _ := newTestArena(t)
	var warnings []int
	loop := NewLoop(arena, LoopConfig{InboxCapacity: 2, WarningStep: 2}, LoopDeps{}, LoopHooks{
		OnQueueWarning: func(length int) { warnings = append(warnings, length) },
	})
	loop.Enqueue(Command{Type: CommandStartRound})
	loop.Enqueue(Command{Type: CommandStartRound})
	ok, reason := loop.Enqueue(Command{Type: CommandStartRound})
	if ok || reason != CommandRejectQueueFull {
		t.Fatalf("expected a full inbox to reject, got %v %q", ok, reason)
	}
	if len(warnings) != 1 || warnings[0] != 2 {
		t.Fatalf("expected one warning at length 2, got %v", warnings)
	}
	if loop.Pending() != 2 {
		t.Fatalf("expected two staged commands, got %d", loop.Pending())
	}
}

func TestLoopAdvanceAppliesJoin(t *testing.T) {
	arena, _ := newTestArena(t)
	loop := NewLoop(arena, DefaultLoopConfig(), LoopDeps{}, LoopHooks{})
	reply := make(chan state.ActorID, 1)
	loop.Enqueue(Command{Type: CommandJoin, Join: &JoinCommand{
		Spec:  PlayerSpec{Team: state.TeamBlue, Role: state.RoleEngineer, Pos: state.V(300, 300)},
		Reply: reply,
	}})

	result := loop.Advance(context.Background())
	if result.Tick != 1 || result.Commands != 1 {
		t.Fatalf("unexpected step result %+v", result)
	}
	select {
	case id := <-reply:
		player, ok := arena.Players().Player(id)
		if !ok || player.Role() != state.RoleEngineer || player.Team() != state.TeamBlue {
			t.Fatalf("expected the joined engineer in slot %d", id)
		}
	default:
		t.Fatalf("expected the slot id on the reply channel")
	}
}

func TestLoopReportsBudgetOverruns(t *testing.T) {
	arena, events := newTestArena(t)
	loop := NewLoop(arena, DefaultLoopConfig(), LoopDeps{}, LoopHooks{})
	budget := 20 * time.Millisecond

	for _, d := range []time.Duration{40 * time.Millisecond, 30 * time.Millisecond, 5 * time.Millisecond, 25 * time.Millisecond} {
		loop.observe(context.Background(), LoopStepResult{Tick: 7, Duration: d, Budget: budget})
	}

	overruns := events.ofType(simulation.EventTickBudgetOverrun)
	if len(overruns) != 3 {
		t.Fatalf("expected three overrun events, got %d", len(overruns))
	}
	var streaks []uint64
	for _, event := range overruns {
		streaks = append(streaks, event.Payload.(simulation.TickBudgetOverrunPayload).Streak)
	}
	if streaks[0] != 1 || streaks[1] != 2 || streaks[2] != 1 {
		t.Fatalf("expected the streak to reset after an on-time step, got %v", streaks)
	}
	first := overruns[0].Payload.(simulation.TickBudgetOverrunPayload)
	if first.Ratio != 2 || first.BudgetMillis != 20 {
		t.Fatalf("unexpected overrun payload %+v", first)
	}
}

func TestLoopRunStopsWhenCancelled(t *testing.T) {
	cfg := world.DefaultConfig()
	cfg.TickRate = 200
	arena := NewArena(ArenaConfig{World: cfg})
	defer arena.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	stepsSeen := 0
	loop := NewLoop(arena, DefaultLoopConfig(), LoopDeps{}, LoopHooks{
		AfterStep: func(result LoopStepResult) {
			stepsSeen++
			if result.Budget != 5*time.Millisecond {
				t.Errorf("unexpected budget %v", result.Budget)
			}
			if stepsSeen == 3 {
				cancel()
			}
		},
	})

	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx) }()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("expected a clean stop, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatalf("loop did not stop")
	}
	if arena.Tick() < 3 {
		t.Fatalf("expected at least three steps, got tick %d", arena.Tick())
	}
}
