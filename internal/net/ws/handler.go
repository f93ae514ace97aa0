package ws

import (
	"encoding/json"
	"errors"
	nethttp "net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

const defaultJoinTimeout = 2 * time.Second

var errJoinTimeout = errors.New("timed out waiting for a player slot")

// HandlerConfig tunes the websocket endpoint.
type HandlerConfig struct {
	Logger   telemetry.Logger
	TickRate int
	// Spawns maps each team to the position its players join at.
	Spawns map[state.Team]state.Vec2
	// JoinTimeout bounds the wait for the loop to assign a slot.
	JoinTimeout time.Duration
}

// Handler upgrades viewer connections and bridges them to the hub.
type Handler struct {
	hub         *Hub
	logger      telemetry.Logger
	tickRate    int
	spawns      map[state.Team]state.Vec2
	joinTimeout time.Duration
	upgrader    websocket.Upgrader
}

func NewHandler(hub *Hub, cfg HandlerConfig) *Handler {
	logger := cfg.Logger
	if logger == nil {
		logger = telemetry.Discard()
	}
	joinTimeout := cfg.JoinTimeout
	if joinTimeout <= 0 {
		joinTimeout = defaultJoinTimeout
	}
	return &Handler{
		hub:         hub,
		logger:      logger,
		tickRate:    cfg.TickRate,
		spawns:      cfg.Spawns,
		joinTimeout: joinTimeout,
		upgrader:    websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *nethttp.Request) bool {
				return true
			},
		},
	}
}

// Handle serves /ws. Query parameters: team (red|blue) and role join as a
// player; spectate=1 joins as a spectator.
func (h *Handler) Handle(w nethttp.ResponseWriter, r *nethttp.Request) {
	query := r.URL.Query()
	spectator := query.Get("spectate") == "1"
	var spec sim.PlayerSpec
	if !spectator {
		team, err := state.ParseTeam(query.Get("team"))
		if err != nil {
			nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
			return
		}
		role := state.RoleSoldier
		if raw := query.Get("role"); raw != "" {
			if role, err = state.ParseRole(raw); err != nil {
				nethttp.Error(w, err.Error(), nethttp.StatusBadRequest)
				return
			}
		}
		spec = sim.PlayerSpec{Team: team, Role: role, Weapon: state.WeaponHammer, Pos: h.spawns[team]}
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("upgrade failed: %v", err)
		return
	}

	s := &session{
		id:        uuid.NewString(),
		actor:     state.NoActor,
		spectator: spectator,
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		done:      make(chan struct{}),
	}
	if !spectator {
		actor, err := h.join(r, spec)
		if err != nil {
			h.reject(conn, err.Error())
			return
		}
		s.actor = actor
	}

	welcome, err := json.Marshal(welcomeMessage{
		Ver:       ProtocolVersion,
		Type:      "welcome",
		Session:   s.id,
		Actor:     s.actor,
		Spectator: spectator,
		TickRate:  h.tickRate,
	})
	if err == nil {
		err = conn.WriteMessage(websocket.TextMessage, welcome)
	}
	ctx := r.Context()
	h.hub.subscribe(ctx, s)
	if err != nil {
		h.logger.Printf("failed to greet session %s: %v", s.id, err)
		h.hub.unsubscribe(ctx, s, "greeting failed")
		conn.Close()
		return
	}
	go s.writePump(h.logger)

	reason := h.readLoop(s)
	h.hub.unsubscribe(ctx, s, reason)
	conn.Close()
}

func (h *Handler) join(r *nethttp.Request, spec sim.PlayerSpec) (state.ActorID, error) {
	reply := make(chan state.ActorID, 1)
	abandon := make(chan struct{})
	if ok, reason := h.hub.loop.Enqueue(sim.Command{
		Type:     sim.CommandJoin,
		ActorID:  state.NoActor,
		IssuedAt: time.Now(),
		Join:     &sim.JoinCommand{Spec: spec, Reply: reply, Abandon: abandon},
	}); !ok {
		return state.NoActor, errors.New(reason)
	}
	timer := time.NewTimer(h.joinTimeout)
	defer timer.Stop()
	var err error
	select {
	case actor := <-reply:
		return actor, nil
	case <-timer.C:
		err = errJoinTimeout
	case <-r.Context().Done():
		err = r.Context().Err()
	}
	close(abandon)
	go h.releaseLateJoin(reply)
	return state.NoActor, err
}

// releaseLateJoin frees the slot of a join that was applied after its
// requester gave up.
func (h *Handler) releaseLateJoin(reply <-chan state.ActorID) {
	actor, ok := <-reply
	if !ok {
		return
	}
	h.logger.Printf("releasing slot %d of an abandoned join", actor)
	h.hub.loop.Enqueue(sim.Command{Type: sim.CommandLeave, ActorID: actor, IssuedAt: time.Now()})
}

func (h *Handler) reject(conn *websocket.Conn, reason string) {
	if data, err := json.Marshal(rejectMessage{Ver: ProtocolVersion, Type: "reject", Reason: reason}); err == nil {
		conn.WriteMessage(websocket.TextMessage, data)
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseTryAgainLater, reason))
	conn.Close()
}

// readLoop forwards client messages until the connection fails and returns
// the reason it stopped.
func (h *Handler) readLoop(s *session) string {
	for {
		_, payload, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				return "closed"
			}
			return "read error"
		}
		var msg clientMessage
		if err := json.Unmarshal(payload, &msg); err != nil {
			h.logger.Printf("discarding malformed message from %s: %v", s.id, err)
			continue
		}
		if s.spectator {
			h.logger.Printf("ignoring %q from spectator %s", msg.Type, s.id)
			continue
		}
		cmd, err := msg.command(s.actor)
		if err != nil {
			h.logger.Printf("discarding message from %s: %v", s.id, err)
			continue
		}
		cmd.IssuedAt = time.Now()
		h.hub.loop.Enqueue(cmd)
	}
}
