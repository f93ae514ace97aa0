package logging

import (
	"context"
	"log"
	"os"
	"sync"
	"sync/atomic"
	"time"
)

type Clock interface {
	Now() time.Time
}

type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

type Sink interface {
	Write(Event) error
	Close(context.Context) error
}

type NamedSink struct {
	Name string
	Sink Sink
}

var _ Publisher = (*Router)(nil)

const (
	defaultQueueSize = 512
	maxLaneBackoff   = 32 * time.Second
)

// Router stamps published events and hands them to one lane per sink. Each
// lane writes on its own goroutine, so Publish never waits on I/O.
type Router struct {
	queue    chan Event
	lanes    []*sinkLane
	clock    Clock
	metrics  *Metrics
	fallback *log.Logger
	minimum  Severity
	fields   map[string]any
	drops    dropLimiter

	stop    chan struct{}
	stopped sync.WaitGroup
	closed  atomic.Bool

	published atomic.Uint64
	dropped   atomic.Uint64
}

// LaneStats reports delivery counts for one sink.
type LaneStats struct {
	Name      string
	Delivered uint64
	Failed    uint64
	Dropped   uint64
}

type RouterStats struct {
	EventsTotal  uint64
	DroppedTotal uint64
	Lanes        []LaneStats
}

// NewRouter starts delivering to the sinks enabled in cfg. A nil clock reads
// the wall clock, a nil fallback reports router faults on stderr and a nil
// metrics bag skips the per-type counters.
func NewRouter(clock Clock, cfg Config, fallback *log.Logger, metrics *Metrics, namedSinks []NamedSink) (*Router, error) {
	if clock == nil {
		clock = SystemClock{}
	}
	if fallback == nil {
		fallback = log.New(os.Stderr, "[logging] ", log.LstdFlags)
	}
	size := cfg.BufferSize
	if size <= 0 {
		size = defaultQueueSize
	}
	r := &Router{
		queue:    make(chan Event, size),
		clock:    clock,
		metrics:  metrics,
		fallback: fallback,
		minimum:  cfg.MinimumSeverity,
		fields:   cfg.CloneFields(),
		drops:    dropLimiter{interval: cfg.DropWarnInterval},
		stop:     make(chan struct{}),
	}
	laneSize := min(max(size, 32), 1024)
	for _, named := range namedSinks {
		if named.Sink == nil || (len(cfg.EnabledSinks) > 0 && !cfg.HasSink(named.Name)) {
			continue
		}
		r.lanes = append(r.lanes, &sinkLane{
			name:     named.Name,
			sink:     named.Sink,
			events:   make(chan Event, laneSize),
			fallback: fallback,
		})
	}

	for _, lane := range r.lanes {
		r.stopped.Add(1)
		go func(l *sinkLane) {
			defer r.stopped.Done()
			l.run()
		}(lane)
	}
	r.stopped.Add(1)
	go r.dispatch()
	return r, nil
}

func (r *Router) dispatch() {
	defer r.stopped.Done()
	defer func() {
		for _, lane := range r.lanes {
			close(lane.events)
		}
	}()
	for {
		select {
		case event := <-r.queue:
			r.route(event)
		case <-r.stop:
			for {
				select {
				case event := <-r.queue:
					r.route(event)
				default:
					return
				}
			}
		}
	}
}

func (r *Router) route(event Event) {
	if event.Severity < r.minimum {
		return
	}
	if event.Time.IsZero() {
		event.Time = r.clock.Now()
	}
	event = mergeFields(event, r.fields)
	r.published.Add(1)
	r.metrics.TelemetryAdd("logging.events."+string(event.Type), 1)
	for _, lane := range r.lanes {
		lane.offer(event)
	}
}

// Publish queues event without blocking. Untyped events are ignored; events
// that find the queue full are counted and reported at most once per
// DropWarnInterval.
func (r *Router) Publish(ctx context.Context, event Event) {
	if r == nil || event.Type == "" || r.closed.Load() {
		return
	}
	select {
	case r.queue <- event:
	default:
		r.dropped.Add(1)
		r.metrics.TelemetryAdd("logging.dropped", 1)
		if r.drops.allow(time.Now()) {
			r.fallback.Printf("dropping event type=%s tick=%d", event.Type, event.Tick)
		}
	}
}

// Close flushes queued events, waits for the lanes to drain and closes every
// sink. A second Close waits for ctx.
func (r *Router) Close(ctx context.Context) error {
	if !r.closed.CompareAndSwap(false, true) {
		<-ctx.Done()
		return ctx.Err()
	}
	close(r.stop)
	drained := make(chan struct{})
	go func() {
		r.stopped.Wait()
		close(drained)
	}()
	select {
	case <-drained:
	case <-ctx.Done():
		return ctx.Err()
	}
	var firstErr error
	for _, lane := range r.lanes {
		if err := lane.sink.Close(ctx); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (r *Router) Stats() RouterStats {
	stats := RouterStats{
		EventsTotal:  r.published.Load(),
		DroppedTotal: r.dropped.Load(),
		Lanes:        make([]LaneStats, 0, len(r.lanes)),
	}
	for _, lane := range r.lanes {
		stats.Lanes = append(stats.Lanes, LaneStats{
			Name:      lane.name,
			Delivered: lane.delivered.Load(),
			Failed:    lane.failed.Load(),
			Dropped:   lane.dropped.Load(),
		})
	}
	return stats
}

// Sink returns the enabled sink registered under name.
func (r *Router) Sink(name string) Sink {
	for _, lane := range r.lanes {
		if lane.name == name {
			return lane.sink
		}
	}
	return nil
}

// dropLimiter lets one warning through per interval.
type dropLimiter struct {
	interval time.Duration
	next     atomic.Int64
}

func (d *dropLimiter) allow(now time.Time) bool {
	interval := d.interval
	if interval <= 0 {
		interval = 5 * time.Second
	}
	next := d.next.Load()
	if next != 0 && now.UnixNano() < next {
		return false
	}
	return d.next.CompareAndSwap(next, now.Add(interval).UnixNano())
}

type sinkLane struct {
	name     string
	sink     Sink
	events   chan Event
	fallback *log.Logger

	backoff   time.Duration
	retryAt   time.Time
	delivered atomic.Uint64
	failed    atomic.Uint64
	dropped   atomic.Uint64
}

func (l *sinkLane) offer(event Event) {
	select {
	case l.events <- event.Clone():
	default:
		l.dropped.Add(1)
		l.fallback.Printf("sink %s backlog full dropping event type=%s", l.name, event.Type)
	}
}

// run writes events in order. After a failed write the lane sleeps with
// doubling backoff, capped at maxLaneBackoff, before the next attempt.
func (l *sinkLane) run() {
	for event := range l.events {
		if wait := time.Until(l.retryAt); wait > 0 {
			time.Sleep(wait)
		}
		if err := l.sink.Write(event); err != nil {
			l.failed.Add(1)
			l.backoff = min(max(2*l.backoff, 2*time.Second), maxLaneBackoff)
			l.retryAt = time.Now().Add(l.backoff)
			l.fallback.Printf("sink %s failed: %v (retry in %s)", l.name, err, l.backoff)
			continue
		}
		l.delivered.Add(1)
		l.backoff = 0
		l.retryAt = time.Time{}
	}
}
