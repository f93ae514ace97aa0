package logging_test

import (
	"context"
	"testing"
	"time"

	"github.com/Bamcane/teeworlds-teewar/logging"
	"github.com/Bamcane/teeworlds-teewar/logging/sinks"
)

func closeRouter(t *testing.T, router *logging.Router) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := router.Close(ctx); err != nil {
		t.Fatalf("failed to close router: %v", err)
	}
}

func TestRouterDeliversToEnabledSinks(t *testing.T) {
	memory := sinks.NewMemorySink()
	skipped := sinks.NewMemorySink()
	cfg := logging.DefaultConfig()
	cfg.EnabledSinks = []string{"memory"}
	cfg.MinimumSeverity = logging.SeverityInfo
	cfg.Fields = map[string]any{"match": "m-1"}
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	metrics := &logging.Metrics{}

	router, err := logging.NewRouter(logging.ClockFunc(func() time.Time { return fixed }), cfg, nil, metrics, []logging.NamedSink{
		{Name: "memory", Sink: memory},
		{Name: "console", Sink: skipped},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	ctx := context.Background()
	router.Publish(ctx, logging.Event{Type: "structures.tower_damaged", Tick: 9, Severity: logging.SeverityInfo})
	router.Publish(ctx, logging.Event{Type: "debug.noise", Severity: logging.SeverityDebug})
	router.Publish(ctx, logging.Event{})
	closeRouter(t, router)

	events := memory.Events()
	if len(events) != 1 {
		t.Fatalf("expected one delivered event, got %d", len(events))
	}
	event := events[0]
	if event.Tick != 9 || !event.Time.Equal(fixed) || event.Extra["match"] != "m-1" {
		t.Fatalf("unexpected event %+v", event)
	}
	if len(skipped.Events()) != 0 {
		t.Fatalf("expected disabled sinks to stay empty")
	}
	if router.Stats().EventsTotal != 1 {
		t.Fatalf("unexpected stats %+v", router.Stats())
	}
	if metrics.Snapshot()["logging.events.structures.tower_damaged"] != 1 {
		t.Fatalf("expected a per-type counter, got %v", metrics.Snapshot())
	}
	if router.Sink("memory") != memory {
		t.Fatalf("expected the memory sink to be registered")
	}
}

func TestWithFieldsKeepsEventFields(t *testing.T) {
	var got []logging.Event
	base := logging.PublisherFunc(func(_ context.Context, event logging.Event) {
		got = append(got, event)
	})
	pub := logging.WithFields(base, map[string]any{"match": "m-2", "round": 1})
	pub.Publish(context.Background(), logging.Event{Type: "lifecycle.round_started", Extra: map[string]any{"round": 4}})

	if len(got) != 1 || got[0].Extra["match"] != "m-2" || got[0].Extra["round"] != 4 {
		t.Fatalf("unexpected events %+v", got)
	}
	if logging.WithFields(nil, nil) == nil {
		t.Fatalf("expected a nop publisher for a nil base")
	}
}

func TestPlayerRefKinds(t *testing.T) {
	tests := []struct {
		slot int
		want logging.EntityRef
	}{
		{3, logging.EntityRef{ID: "3", Kind: logging.EntityKindPlayer}},
		{-1, logging.EntityRef{Kind: logging.EntityKindWorld}},
		{-2, logging.EntityRef{ID: "-2", Kind: logging.EntityKindTeam}},
	}
	for _, tc := range tests {
		if got := logging.PlayerRef(tc.slot); got != tc.want {
			t.Fatalf("PlayerRef(%d) = %+v, want %+v", tc.slot, got, tc.want)
		}
	}
}

func TestParseSeverity(t *testing.T) {
	if sev, err := logging.ParseSeverity(" WARN "); err != nil || sev != logging.SeverityWarn {
		t.Fatalf("unexpected severity %v (err %v)", sev, err)
	}
	if _, err := logging.ParseSeverity("loud"); err == nil {
		t.Fatalf("expected an unknown severity to fail")
	}
}
