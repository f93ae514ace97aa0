package logging

import (
	"context"
	"strconv"
	"time"
)

type EventType string

type Severity int

const (
	SeverityDebug Severity = iota
	SeverityInfo
	SeverityWarn
	SeverityError
)

type EntityKind string

const (
	EntityKindUnknown    EntityKind = "unknown"
	EntityKindPlayer     EntityKind = "player"
	EntityKindTeam       EntityKind = "team"
	EntityKindTower      EntityKind = "tower"
	EntityKindProjectile EntityKind = "projectile"
	EntityKindWorld      EntityKind = "world"
)

type Event struct {
	Type      EventType      `json:"type"`
	Tick      uint64         `json:"tick"`
	Time      time.Time      `json:"time"`
	Actor     EntityRef      `json:"actor"`
	Targets   []EntityRef    `json:"targets,omitempty"`
	Severity  Severity       `json:"severity"`
	Category  string         `json:"category,omitempty"`
	Payload   any            `json:"payload,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
	TraceID   string         `json:"traceId,omitempty"`
	CommandID string         `json:"commandId,omitempty"`
}

type EntityRef struct {
	ID   string     `json:"id"`
	Kind EntityKind `json:"kind"`
}

// PlayerRef references a player slot. Negative slots are team sentinels or
// the world itself.
func PlayerRef(slot int) EntityRef {
	switch {
	case slot >= 0:
		return EntityRef{ID: strconv.Itoa(slot), Kind: EntityKindPlayer}
	case slot == -1:
		return EntityRef{Kind: EntityKindWorld}
	default:
		return EntityRef{ID: strconv.Itoa(slot), Kind: EntityKindTeam}
	}
}

// TowerRef references the tower defending team.
func TowerRef(team string) EntityRef {
	return EntityRef{ID: team, Kind: EntityKindTower}
}

const (
	CategoryGameplay   = "gameplay"
	CategoryCombat     = "combat"
	CategoryStructures = "structures"
	CategoryLifecycle  = "lifecycle"
	CategorySystem     = "system"
)

type Publisher interface {
	Publish(ctx context.Context, event Event)
}

type PublisherFunc func(ctx context.Context, event Event)

func (f PublisherFunc) Publish(ctx context.Context, event Event) {
	if f == nil {
		return
	}
	f(ctx, event)
}

type nopPublisher struct{}

func (nopPublisher) Publish(context.Context, Event) {}

func NopPublisher() Publisher {
	return nopPublisher{}
}

// Clone copies the event deeply enough that sinks may keep it after the
// publisher reuses its slices and maps.
func (e Event) Clone() Event {
	cloned := e
	if len(e.Targets) > 0 {
		cloned.Targets = append([]EntityRef(nil), e.Targets...)
	}
	if e.Extra != nil {
		cloned.Extra = make(map[string]any, len(e.Extra))
		for k, v := range e.Extra {
			cloned.Extra[k] = v
		}
	}
	return cloned
}

// mergeFields adds fields to the event's Extra without overriding keys the
// event already carries.
func mergeFields(event Event, fields map[string]any) Event {
	if len(fields) == 0 {
		return event
	}
	event = event.Clone()
	if event.Extra == nil {
		event.Extra = make(map[string]any, len(fields))
	}
	for k, v := range fields {
		if _, exists := event.Extra[k]; !exists {
			event.Extra[k] = v
		}
	}
	return event
}

// WithFields decorates p so every event carries fields, e.g. the match id.
func WithFields(p Publisher, fields map[string]any) Publisher {
	if p == nil {
		return NopPublisher()
	}
	if len(fields) == 0 {
		return p
	}
	copied := make(map[string]any, len(fields))
	for k, v := range fields {
		copied[k] = v
	}
	return PublisherFunc(func(ctx context.Context, event Event) {
		p.Publish(ctx, mergeFields(event, copied))
	})
}
