package ws

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	"github.com/Bamcane/teeworlds-teewar/logging/lifecycle"
)

const (
	writeWait       = 10 * time.Second
	sendBuffer      = 32
	framesMetricKey = "ws_frames_sent_total"
	dropsMetricKey  = "ws_frames_dropped_total"
	bytesMetricKey  = "ws_bytes_sent_total"
	viewersKey      = "ws_viewers"
)

// HubConfig wires a hub.
type HubConfig struct {
	Logger    telemetry.Logger
	Metrics   telemetry.Metrics
	Publisher logging.Publisher
}

// Hub tracks viewer sessions and fans frames out to them. Frames are built on
// the loop goroutine through Broadcast; each session drains its own queue on
// a writer goroutine.
type Hub struct {
	loop      *sim.Loop
	logger    telemetry.Logger
	metrics   telemetry.Metrics
	publisher logging.Publisher

	mu       sync.RWMutex
	sessions map[string]*session
	lastTick atomic.Int64
}

func NewHub(loop *sim.Loop, cfg HubConfig) *Hub {
	publisher := cfg.Publisher
	if publisher == nil {
		publisher = logging.NopPublisher()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.Discard()
	}
	return &Hub{
		loop:      loop,
		logger:    logger,
		metrics:   cfg.Metrics,
		publisher: publisher,
		sessions:  make(map[string]*session),
	}
}

type session struct {
	id        string
	actor     state.ActorID
	spectator bool
	conn      *websocket.Conn
	send      chan []byte
	done      chan struct{}
	closeOnce sync.Once
}

func (s *session) viewer(arena *sim.Arena) world.Viewer {
	if s.spectator {
		return world.Viewer{ID: state.NoActor, Spectator: true}
	}
	viewer := world.Viewer{ID: s.actor}
	if player, ok := arena.Players().Player(s.actor); ok {
		viewer.Center = player.Position()
	}
	return viewer
}

func (s *session) close() {
	s.closeOnce.Do(func() { close(s.done) })
}

// writePump is the only writer of the connection once the session is
// subscribed.
func (s *session) writePump(logger telemetry.Logger) {
	for {
		select {
		case <-s.done:
			return
		case data := <-s.send:
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				logger.Printf("write to session %s failed: %v", s.id, err)
				s.close()
				s.conn.Close()
				return
			}
		}
	}
}

// enqueue hands data to the writer without blocking. A full queue drops the
// frame; the next one supersedes it anyway.
func (s *session) enqueue(data []byte) bool {
	select {
	case <-s.done:
		return false
	case s.send <- data:
		return true
	default:
		return false
	}
}

func (h *Hub) subscribe(ctx context.Context, s *session) {
	h.mu.Lock()
	h.sessions[s.id] = s
	count := len(h.sessions)
	h.mu.Unlock()
	h.storeViewers(count)
	lifecycle.ViewerJoined(ctx, h.publisher, uint64(h.lastTick.Load()), logging.PlayerRef(int(s.actor)), lifecycle.ViewerPayload{
		Session:   s.id,
		Spectator: s.spectator,
	})
}

func (h *Hub) unsubscribe(ctx context.Context, s *session, reason string) {
	h.mu.Lock()
	_, ok := h.sessions[s.id]
	delete(h.sessions, s.id)
	count := len(h.sessions)
	h.mu.Unlock()
	s.close()
	if !ok {
		return
	}
	h.storeViewers(count)
	if !s.spectator {
		h.loop.Enqueue(sim.Command{Type: sim.CommandLeave, ActorID: s.actor})
	}
	lifecycle.ViewerLeft(ctx, h.publisher, uint64(h.lastTick.Load()), logging.PlayerRef(int(s.actor)), lifecycle.ViewerLeftPayload{
		Session: s.id,
		Reason:  reason,
	})
}

// Sessions lists the ids of connected sessions in sorted order.
func (h *Hub) Sessions() []string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	ids := make([]string, 0, len(h.sessions))
	for id := range h.sessions {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Broadcast snapshots the arena for every session. It must run on the loop
// goroutine, typically as the AfterStep hook.
func (h *Hub) Broadcast(arena *sim.Arena) {
	h.lastTick.Store(arena.Tick())
	h.mu.RLock()
	sessions := make([]*session, 0, len(h.sessions))
	for _, s := range h.sessions {
		sessions = append(sessions, s)
	}
	h.mu.RUnlock()

	for _, s := range sessions {
		frame := arena.Snapshot(s.viewer(arena))
		data, err := json.Marshal(frameMessage{Ver: ProtocolVersion, Type: "frame", Frame: frame})
		if err != nil {
			h.logger.Printf("failed to marshal frame for %s: %v", s.id, err)
			continue
		}
		if !s.enqueue(data) {
			h.add(dropsMetricKey, 1)
			continue
		}
		h.add(framesMetricKey, 1)
		h.add(bytesMetricKey, uint64(len(data)))
	}
}

func (h *Hub) add(key string, delta uint64) {
	if h.metrics != nil {
		h.metrics.Add(key, delta)
	}
}

func (h *Hub) storeViewers(count int) {
	if h.metrics != nil {
		h.metrics.Store(viewersKey, uint64(count))
	}
}
