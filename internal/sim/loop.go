package sim

import (
	"context"
	"sync"
	"time"

	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	"github.com/Bamcane/teeworlds-teewar/logging/simulation"
)

const (
	// CommandRejectQueueLimit indicates a command was dropped due to per-actor
	// throttling.
	CommandRejectQueueLimit = "queue_limit"
	// CommandRejectQueueFull indicates the inbox is saturated.
	CommandRejectQueueFull = "queue_full"

	stepDurationMetricKey  = "sim_step_duration_micros"
	budgetOverrunMetricKey = "sim_tick_budget_overrun_total"
)

// LoopConfig tunes the inbox and the tick loop.
type LoopConfig struct {
	InboxCapacity int
	PerActorLimit int
	WarningStep   int
}

// DefaultLoopConfig returns the stock inbox limits.
func DefaultLoopConfig() LoopConfig {
	return LoopConfig{
		InboxCapacity: 1024,
		PerActorLimit: 16,
		WarningStep:   256,
	}
}

// LoopHooks observe the loop. AfterStep runs on the loop goroutine, so it may
// read the arena.
type LoopHooks struct {
	AfterStep      func(LoopStepResult)
	OnCommandDrop  func(reason string, cmd Command)
	OnQueueWarning func(length int)
}

// LoopDeps carries shared infrastructure for the loop.
type LoopDeps struct {
	Logger  telemetry.Logger
	Metrics telemetry.Metrics
	Clock   logging.Clock
}

// LoopStepResult describes one completed step.
type LoopStepResult struct {
	Tick     int64
	Now      time.Time
	Commands int
	Duration time.Duration
	Budget   time.Duration
}

// Loop stages commands from any goroutine and steps the arena at the
// configured tick rate on a single goroutine.
type Loop struct {
	arena   *Arena
	inbox   *Inbox
	hooks   LoopHooks
	config  LoopConfig
	logger  telemetry.Logger
	metrics telemetry.Metrics
	clock   logging.Clock

	queueMu       sync.Mutex
	perActorCount map[state.ActorID]int
	dropCounts    map[state.ActorID]uint64

	overrunStreak uint64
}

func NewLoop(arena *Arena, cfg LoopConfig, deps LoopDeps, hooks LoopHooks) *Loop {
	clock := deps.Clock
	if clock == nil {
		clock = logging.SystemClock{}
	}
	return &Loop{
		arena:         arena,
		inbox:         NewInbox(cfg.InboxCapacity, deps.Metrics),
		hooks:         hooks,
		config:        cfg,
		logger:        deps.Logger,
		metrics:       deps.Metrics,
		clock:         clock,
		perActorCount: make(map[state.ActorID]int),
		dropCounts:    make(map[state.ActorID]uint64),
	}
}

// Arena returns the stepped arena. Only AfterStep hooks may touch it while
// the loop runs.
func (l *Loop) Arena() *Arena {
	return l.arena
}

// Pending reports the number of staged commands.
func (l *Loop) Pending() int {
	return l.inbox.Len()
}

// Enqueue stages a command, enforcing per-actor throttling and capacity
// limits. Commands without a player (joins, pauses, rounds) are only bound by
// capacity.
func (l *Loop) Enqueue(cmd Command) (bool, string) {
	reason := ""
	var dropCount uint64
	l.queueMu.Lock()
	limited := l.config.PerActorLimit > 0 && cmd.ActorID.IsPlayer() && cmd.Type != CommandJoin
	if limited {
		count := l.perActorCount[cmd.ActorID]
		if count >= l.config.PerActorLimit {
			reason = CommandRejectQueueLimit
			dropCount = l.incrementDropLocked(cmd.ActorID)
		} else {
			l.perActorCount[cmd.ActorID] = count + 1
		}
	}
	if reason == "" && !l.inbox.Push(cmd) {
		reason = CommandRejectQueueFull
		dropCount = l.incrementDropLocked(cmd.ActorID)
	}
	length := l.inbox.Len()
	l.queueMu.Unlock()

	if reason != "" {
		l.reportDrop(reason, cmd, dropCount)
		return false, reason
	}
	if step := l.config.WarningStep; step > 0 && length >= step && length%step == 0 && l.hooks.OnQueueWarning != nil {
		l.hooks.OnQueueWarning(length)
	}
	return true, ""
}

// Advance drains the inbox and runs a single step.
func (l *Loop) Advance(ctx context.Context) LoopStepResult {
	commands := l.drainCommands()
	l.arena.Step(ctx, commands)
	return LoopStepResult{Tick: l.arena.Tick(), Commands: len(commands)}
}

// Run steps the arena until ctx is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	tickRate := l.arena.TickRate()
	budget := time.Second / time.Duration(tickRate)
	ticker := time.NewTicker(budget)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			start := l.clock.Now()
			result := l.Advance(ctx)
			result.Now = start
			result.Duration = l.clock.Now().Sub(start)
			result.Budget = budget
			l.observe(ctx, result)
			if l.hooks.AfterStep != nil {
				l.hooks.AfterStep(result)
			}
		}
	}
}

func (l *Loop) observe(ctx context.Context, result LoopStepResult) {
	if l.metrics != nil {
		l.metrics.Store(stepDurationMetricKey, uint64(result.Duration.Microseconds()))
	}
	if result.Budget <= 0 || result.Duration <= result.Budget {
		l.overrunStreak = 0
		return
	}
	l.overrunStreak++
	if l.metrics != nil {
		l.metrics.Add(budgetOverrunMetricKey, 1)
	}
	simulation.TickBudgetOverrun(ctx, l.arena.Env().Publisher, uint64(result.Tick), simulation.TickBudgetOverrunPayload{
		DurationMillis: result.Duration.Milliseconds(),
		BudgetMillis:   result.Budget.Milliseconds(),
		Ratio:          float64(result.Duration) / float64(result.Budget),
		Streak:         l.overrunStreak,
	})
}

func (l *Loop) drainCommands() []Command {
	l.queueMu.Lock()
	defer l.queueMu.Unlock()
	commands := l.inbox.Drain()
	if len(l.perActorCount) > 0 {
		l.perActorCount = make(map[state.ActorID]int)
	}
	return commands
}

func (l *Loop) incrementDropLocked(id state.ActorID) uint64 {
	count := l.dropCounts[id] + 1
	l.dropCounts[id] = count
	return count
}

// reportDrop logs on the first drop of an actor and then on every power of
// two.
func (l *Loop) reportDrop(reason string, cmd Command, count uint64) {
	if l.hooks.OnCommandDrop != nil {
		l.hooks.OnCommandDrop(reason, cmd)
	}
	if count == 0 || count&(count-1) != 0 || l.logger == nil {
		return
	}
	l.logger.Printf(
		"[backpressure] dropping command actor=%d type=%s reason=%s count=%d limit=%d",
		cmd.ActorID,
		cmd.Type,
		reason,
		count,
		l.config.PerActorLimit,
	)
}
