package simulation

import (
	"context"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

const (
	// EventTickBudgetOverrun is emitted when a step takes longer than one tick.
	EventTickBudgetOverrun logging.EventType = "simulation.tick_budget_overrun"
	// EventPauseChanged is emitted when the loop is paused or resumed.
	EventPauseChanged logging.EventType = "simulation.pause_changed"
)

// TickBudgetOverrunPayload captures timing details for a tick budget breach.
type TickBudgetOverrunPayload struct {
	DurationMillis int64   `json:"durationMillis"`
	BudgetMillis   int64   `json:"budgetMillis"`
	Ratio          float64 `json:"ratio"`
	Streak         uint64  `json:"streak"`
}

// PausePayload reports the new pause state.
type PausePayload struct {
	Paused bool `json:"paused"`
}

// TickBudgetOverrun publishes a warning when a step exceeds its budget.
func TickBudgetOverrun(ctx context.Context, pub logging.Publisher, tick uint64, payload TickBudgetOverrunPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventTickBudgetOverrun,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityWarn,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}

// PauseChanged publishes a pause toggle.
func PauseChanged(ctx context.Context, pub logging.Publisher, tick uint64, payload PausePayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventPauseChanged,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategorySystem,
		Payload:  payload,
	})
}
