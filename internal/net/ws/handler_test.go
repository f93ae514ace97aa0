package ws

import (
	"context"
	"encoding/json"
	"fmt"
	nethttp "net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"

	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
)

type serverMessage struct {
	Type      string        `json:"type"`
	Actor     state.ActorID `json:"actor"`
	Spectator bool          `json:"spectator"`
	TickRate  int           `json:"tickRate"`
	Tick      int64         `json:"tick"`
	Items     []sim.Item    `json:"items"`
	Reason    string        `json:"reason"`
}

type testServer struct {
	url  string
	hub  *Hub
	loop *sim.Loop
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	arena := sim.NewArena(sim.ArenaConfig{World: world.DefaultConfig()})
	t.Cleanup(arena.Close)

	var hub *Hub
	loop := sim.NewLoop(arena, sim.DefaultLoopConfig(), sim.LoopDeps{}, sim.LoopHooks{
		AfterStep: func(sim.LoopStepResult) { hub.Broadcast(arena) },
	})
	hub = NewHub(loop, HubConfig{})
	handler := NewHandler(hub, HandlerConfig{
		TickRate: arena.TickRate(),
		Spawns:   map[state.Team]state.Vec2{
			state.TeamRed:  state.V(400, 400),
			state.TeamBlue: state.V(2800, 400),
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		loop.Run(ctx)
	}()
	server := httptest.NewServer(nethttp.HandlerFunc(handler.Handle))
	t.Cleanup(func() {
		server.Close()
		cancel()
		<-done
	})
	return &testServer{url: "ws" + strings.TrimPrefix(server.URL, "http"), hub: hub, loop: loop}
}

// newIdleServer serves the handler over a loop that only steps when the
// test advances it. Handler log lines are forwarded on the returned channel.
func newIdleServer(t *testing.T, joinTimeout time.Duration) (*testServer, *Handler, <-chan string) {
	t.Helper()
	arena := sim.NewArena(sim.ArenaConfig{World: world.DefaultConfig()})
	t.Cleanup(arena.Close)
	loop := sim.NewLoop(arena, sim.DefaultLoopConfig(), sim.LoopDeps{}, sim.LoopHooks{})
	hub := NewHub(loop, HubConfig{})

	lines := make(chan string, 16)
	handler := NewHandler(hub, HandlerConfig{
		TickRate:    arena.TickRate(),
		JoinTimeout: joinTimeout,
		Logger:      telemetry.LoggerFunc(func(format string, args ...any) {
			select {
			case lines <- fmt.Sprintf(format, args...):
			default:
			}
		}),
	})
	server := httptest.NewServer(nethttp.HandlerFunc(handler.Handle))
	t.Cleanup(server.Close)
	return &testServer{url: "ws" + strings.TrimPrefix(server.URL, "http"), hub: hub, loop: loop}, handler, lines
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("failed to dial %s: %v", url, err)
	}
	t.Cleanup(func() {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	return conn
}

func readMessage(t *testing.T, conn *websocket.Conn) serverMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := conn.ReadMessage()
	if err != nil {
		t.Fatalf("failed to read message: %v", err)
	}
	var msg serverMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("failed to decode %s: %v", data, err)
	}
	return msg
}

func countKind(items []sim.Item, kind string) int {
	count := 0
	for _, item := range items {
		if item.Kind == kind {
			count++
		}
	}
	return count
}

func TestHandlerJoinsAndStreamsFrames(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv.url+"?team=red&role=soldier")

	welcome := readMessage(t, conn)
	if welcome.Type != "welcome" || welcome.Spectator || welcome.TickRate != world.DefaultTickRate {
		t.Fatalf("unexpected welcome %+v", welcome)
	}
	if welcome.Actor != 0 {
		t.Fatalf("expected the first player slot, got %d", welcome.Actor)
	}

	frame := readMessage(t, conn)
	if frame.Type != "frame" || countKind(frame.Items, world.ItemCharacter.String()) != 1 {
		t.Fatalf("expected a frame with our character, got %+v", frame)
	}

	if err := conn.WriteMessage(websocket.TextMessage, []byte("{not json")); err != nil {
		t.Fatalf("failed to send malformed message: %v", err)
	}
	input := clientMessage{Type: "input", Fire: true, AimX: 1, Weapon: "gun"}
	if err := conn.WriteJSON(input); err != nil {
		t.Fatalf("failed to send input: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		msg := readMessage(t, conn)
		if countKind(msg.Items, world.ItemProjectile.String()) > 0 {
			return
		}
	}
	t.Fatalf("expected a projectile in the stream after firing")
}

func TestHandlerRejectsUnknownTeam(t *testing.T) {
	srv := newTestServer(t)
	_, resp, err := websocket.DefaultDialer.Dial(srv.url+"?team=green", nil)
	if err == nil {
		t.Fatalf("expected the handshake to fail")
	}
	if resp == nil || resp.StatusCode != nethttp.StatusBadRequest {
		t.Fatalf("expected 400, got %+v", resp)
	}
}

func TestHandlerSpectatorSeesFrames(t *testing.T) {
	srv := newTestServer(t)
	conn := dial(t, srv.url+"?spectate=1")

	welcome := readMessage(t, conn)
	if !welcome.Spectator || welcome.Actor != state.NoActor {
		t.Fatalf("unexpected welcome %+v", welcome)
	}
	if err := conn.WriteJSON(clientMessage{Type: "input", Fire: true, AimX: 1}); err != nil {
		t.Fatalf("failed to send input: %v", err)
	}
	frame := readMessage(t, conn)
	if frame.Type != "frame" || len(frame.Items) != 0 {
		t.Fatalf("expected an empty frame, got %+v", frame)
	}
	if len(srv.hub.Sessions()) != 1 {
		t.Fatalf("expected one session, got %v", srv.hub.Sessions())
	}
}

func TestHandlerLeavesOnDisconnect(t *testing.T) {
	srv := newTestServer(t)
	conn, _, err := websocket.DefaultDialer.Dial(srv.url+"?team=blue&role=engineer", nil)
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	readMessage(t, conn)

	players := srv.loop.Arena().Players()
	if len(players.Players()) != 1 {
		t.Fatalf("expected one joined player")
	}
	conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	conn.Close()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if len(players.Players()) == 0 && len(srv.hub.Sessions()) == 0 {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("expected the player to leave, still have %d", len(players.Players()))
}

func TestHandlerAbandonedJoinLeavesNoPlayer(t *testing.T) {
	srv, _, _ := newIdleServer(t, 50*time.Millisecond)
	conn := dial(t, srv.url+"?team=red")

	reject := readMessage(t, conn)
	if reject.Type != "reject" || reject.Reason != errJoinTimeout.Error() {
		t.Fatalf("expected a join timeout, got %+v", reject)
	}
	if srv.loop.Pending() != 1 {
		t.Fatalf("expected the join to stay queued, pending %d", srv.loop.Pending())
	}

	srv.loop.Advance(context.Background())
	srv.loop.Advance(context.Background())
	if players := srv.loop.Arena().Players().Players(); len(players) != 0 {
		t.Fatalf("expected no ghost player, got %d", len(players))
	}
}

func TestHandlerReleasesLateJoin(t *testing.T) {
	srv, handler, _ := newIdleServer(t, time.Second)
	arena := srv.loop.Arena()
	player := arena.Join(sim.PlayerSpec{Team: state.TeamBlue})

	reply := make(chan state.ActorID, 1)
	reply <- player.ID()
	handler.releaseLateJoin(reply)
	if srv.loop.Pending() != 1 {
		t.Fatalf("expected a queued leave, pending %d", srv.loop.Pending())
	}
	srv.loop.Advance(context.Background())
	if len(arena.Players().Players()) != 0 {
		t.Fatalf("expected the late slot to be freed")
	}

	closed := make(chan state.ActorID)
	close(closed)
	handler.releaseLateJoin(closed)
	if srv.loop.Pending() != 0 {
		t.Fatalf("expected nothing queued for a skipped join, pending %d", srv.loop.Pending())
	}
}

func TestHandlerSpectatorCannotCommand(t *testing.T) {
	srv, _, lines := newIdleServer(t, time.Second)
	conn := dial(t, srv.url+"?spectate=1")
	readMessage(t, conn)

	for _, msg := range []clientMessage{
		{Type: "input", Fire: true, AimX: 1},
		{Type: "pause", Paused: true},
		{Type: "round"},
	} {
		if err := conn.WriteJSON(msg); err != nil {
			t.Fatalf("failed to send %s: %v", msg.Type, err)
		}
	}
	for i := 0; i < 3; i++ {
		select {
		case line := <-lines:
			if !strings.Contains(line, "spectator") {
				t.Fatalf("unexpected log line %q", line)
			}
		case <-time.After(2 * time.Second):
			t.Fatalf("expected every spectator message to be ignored, got %d", i)
		}
	}
	if srv.loop.Pending() != 0 {
		t.Fatalf("expected no commands from a spectator, pending %d", srv.loop.Pending())
	}
}

func TestClientMessageCommands(t *testing.T) {
	x, y := 10.0, 20.0
	tests := []struct {
		name    string
		msg     clientMessage
		want    sim.CommandType
		wantErr bool
	}{
		{"input", clientMessage{Type: "input", Weapon: "grenade", X: &x, Y: &y}, sim.CommandInput, false},
		{"bad weapon", clientMessage{Type: "input", Weapon: "bazooka"}, "", true},
		{"pause", clientMessage{Type: "pause", Paused: true}, sim.CommandPause, false},
		{"round", clientMessage{Type: "round"}, sim.CommandStartRound, false},
		{"unknown", clientMessage{Type: "chat"}, "", true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, err := tc.msg.command(3)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("expected an error, got %+v", cmd)
				}
				return
			}
			if err != nil || cmd.Type != tc.want || cmd.ActorID != 3 {
				t.Fatalf("unexpected command %+v (err %v)", cmd, err)
			}
		})
	}

	cmd, _ := clientMessage{Type: "input", Weapon: "grenade", X: &x, Y: &y}.command(1)
	if cmd.Input.Weapon == nil || *cmd.Input.Weapon != state.WeaponGrenade || cmd.Input.Pos == nil || cmd.Input.Pos.X() != 10 {
		t.Fatalf("unexpected input %+v", cmd.Input)
	}
}
