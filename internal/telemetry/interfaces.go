package telemetry

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Bamcane/teeworlds-teewar/logging"
)

// EventSystemLog carries Printf-style lines routed through the event router.
const EventSystemLog logging.EventType = "system.log"

// Logger is the printf surface the arena, loop and websocket layer log
// through.
type Logger interface {
	Printf(format string, args ...any)
}

// LoggerFunc adapts functions into the Logger interface.
type LoggerFunc func(format string, args ...any)

// Printf implements Logger for LoggerFunc.
func (f LoggerFunc) Printf(format string, args ...any) {
	if f == nil {
		return
	}
	f(format, args...)
}

// Discard returns a logger that drops every line.
func Discard() Logger {
	return LoggerFunc(nil)
}

// WrapLogger adapts a standard library logger. A nil logger discards.
func WrapLogger(logger *log.Logger) Logger {
	if logger == nil {
		return Discard()
	}
	return LoggerFunc(logger.Printf)
}

// SystemLogPayload is the payload of EventSystemLog.
type SystemLogPayload struct {
	Message string `json:"message"`
}

// PublishLogger forwards each line as a system event to pub, so lines reach
// the same sinks as gameplay events. Lines tagged with a "[warn]" or
// "[backpressure]" prefix are published at warn severity.
func PublishLogger(pub logging.Publisher) Logger {
	if pub == nil {
		return Discard()
	}
	return LoggerFunc(func(format string, args ...any) {
		message := fmt.Sprintf(format, args...)
		severity := logging.SeverityInfo
		if strings.HasPrefix(message, "[warn]") || strings.HasPrefix(message, "[backpressure]") {
			severity = logging.SeverityWarn
		}
		pub.Publish(context.Background(), logging.Event{
			Type:     EventSystemLog,
			Actor:    logging.EntityRef{Kind: logging.EntityKindWorld},
			Severity: severity,
			Category: logging.CategorySystem,
			Payload:  SystemLogPayload{Message: message},
		})
	})
}

// Metrics is the counter surface shared by the arena, loop and hub.
type Metrics interface {
	Add(key string, delta uint64)
	Store(key string, value uint64)
}

// WrapMetrics adapts the router's counter bag.
func WrapMetrics(metrics *logging.Metrics) Metrics {
	return counterBag{metrics: metrics}
}

type counterBag struct {
	metrics *logging.Metrics
}

func (c counterBag) Add(key string, delta uint64)   { c.metrics.TelemetryAdd(key, delta) }
func (c counterBag) Store(key string, value uint64) { c.metrics.TelemetryStore(key, value) }

// Prefixed namespaces every key written through m, e.g. "arena." + key.
func Prefixed(m Metrics, prefix string) Metrics {
	if m == nil || prefix == "" {
		return m
	}
	return prefixed{next: m, prefix: prefix}
}

type prefixed struct {
	next   Metrics
	prefix string
}

func (p prefixed) Add(key string, delta uint64)   { p.next.Add(p.prefix+key, delta) }
func (p prefixed) Store(key string, value uint64) { p.next.Store(p.prefix+key, value) }
