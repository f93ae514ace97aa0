package sinks

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

func sampleEvent() logging.Event {
	return logging.Event{
		Type:     "combat.projectile_hit",
		Tick:     42,
		Actor:    logging.PlayerRef(2),
		Targets:  []logging.EntityRef{logging.TowerRef("blue")},
		Severity: logging.SeverityWarn,
		Category: logging.CategoryCombat,
		Payload:  map[string]int{"damage": 3},
		Extra:    map[string]any{"match": "m-1"},
	}
}

func TestConsoleSinkFormatsLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewConsoleSink(&buf, logging.ConsoleConfig{})
	if err := sink.Write(sampleEvent()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	line := buf.String()
	for _, want := range []string{"[combat.projectile_hit]", "tick=42", "actor=player:2", "severity=warn", "category=combat", "targets=tower:blue", `payload={"damage":3}`, "match=m-1"} {
		if !strings.Contains(line, want) {
			t.Fatalf("expected %q in %q", want, line)
		}
	}
}

func TestJSONSinkWritesOneObjectPerLine(t *testing.T) {
	var buf bytes.Buffer
	sink := NewJSON(&buf, 0)
	sink.Write(sampleEvent())
	sink.Write(logging.Event{Type: "lifecycle.round_started", Tick: 43})
	if err := sink.Close(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected two lines, got %q", buf.String())
	}
	var decoded struct {
		Type     string              `json:"type"`
		Tick     uint64              `json:"tick"`
		Severity string              `json:"severity"`
		Targets  []logging.EntityRef `json:"targets"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &decoded); err != nil {
		t.Fatalf("failed to decode line: %v", err)
	}
	if decoded.Type != "combat.projectile_hit" || decoded.Tick != 42 || decoded.Severity != "warn" || len(decoded.Targets) != 1 || decoded.Targets[0].ID != "blue" {
		t.Fatalf("unexpected decoded event %+v", decoded)
	}
}

func TestMemorySinkFiltersByType(t *testing.T) {
	sink := NewMemorySink()
	sink.Write(sampleEvent())
	sink.Write(logging.Event{Type: "lifecycle.round_started", Tick: 50})
	if got := sink.Since(43); len(got) != 1 || got[0].Tick != 50 {
		t.Fatalf("expected only the later event, got %+v", got)
	}
	if got := sink.EventsOfType("lifecycle.round_started"); len(got) != 1 {
		t.Fatalf("expected one round event, got %d", len(got))
	}
	sink.Reset()
	if len(sink.Events()) != 0 {
		t.Fatalf("expected reset to clear events")
	}
}
