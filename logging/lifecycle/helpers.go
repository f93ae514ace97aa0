package lifecycle

import (
	"context"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

const (
	// EventViewerJoined is emitted when a snapshot subscriber connects.
	EventViewerJoined logging.EventType = "lifecycle.viewer_joined"
	// EventViewerLeft is emitted when a snapshot subscriber disconnects.
	EventViewerLeft logging.EventType = "lifecycle.viewer_left"
	// EventRoundStarted is emitted when the arena resets its towers.
	EventRoundStarted logging.EventType = "lifecycle.round_started"
)

// ViewerPayload identifies a subscriber session.
type ViewerPayload struct {
	Session   string `json:"session"`
	Spectator bool   `json:"spectator"`
}

// ViewerLeftPayload captures the reason a subscriber left.
type ViewerLeftPayload struct {
	Session string `json:"session"`
	Reason  string `json:"reason"`
}

// RoundPayload describes a new round.
type RoundPayload struct {
	Round  int `json:"round"`
	Towers int `json:"towers"`
}

// ViewerJoined publishes a viewer join event.
func ViewerJoined(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ViewerPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventViewerJoined,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}

// ViewerLeft publishes a viewer disconnect event.
func ViewerLeft(ctx context.Context, pub logging.Publisher, tick uint64, actor logging.EntityRef, payload ViewerLeftPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventViewerLeft,
		Tick:     tick,
		Actor:    actor,
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}

// RoundStarted publishes a round start event.
func RoundStarted(ctx context.Context, pub logging.Publisher, tick uint64, payload RoundPayload) {
	if pub == nil {
		return
	}
	pub.Publish(ctx, logging.Event{
		Type:     EventRoundStarted,
		Tick:     tick,
		Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
		Severity: logging.SeverityInfo,
		Category: logging.CategoryLifecycle,
		Payload:  payload,
	})
}
