package net

import (
	"encoding/json"
	nethttp "net/http"
	"time"

	"github.com/Bamcane/teeworlds-teewar/internal/net/ws"
	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/logging"
)

type HTTPHandlerConfig struct {
	TickRate int
	// Metrics is reported under /diagnostics; nil omits the counters.
	Metrics *logging.Metrics
	// Enqueue stages admin commands such as a round restart.
	Enqueue func(sim.Command) (bool, string)
}

func NewHTTPHandler(hub *ws.Hub, handler *ws.Handler, cfg HTTPHandlerConfig) nethttp.Handler {
	mux := nethttp.NewServeMux()

	mux.HandleFunc("/health", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("ok"))
	})

	mux.HandleFunc("/diagnostics", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		payload := struct {
			Status     string            `json:"status"`
			ServerTime int64             `json:"serverTime"`
			TickRate   int               `json:"tickRate"`
			Sessions   []string          `json:"sessions"`
			Telemetry  map[string]uint64 `json:"telemetry,omitempty"`
		}{
			Status:     "ok",
			ServerTime: time.Now().UnixMilli(),
			TickRate:   cfg.TickRate,
			Sessions:   hub.Sessions(),
			Telemetry:  cfg.Metrics.Snapshot(),
		}
		data, err := json.Marshal(payload)
		if err != nil {
			httpError(w, "failed to encode", nethttp.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write(data)
	})

	mux.HandleFunc("/round", func(w nethttp.ResponseWriter, r *nethttp.Request) {
		if r.Method != nethttp.MethodPost {
			httpError(w, "method not allowed", nethttp.StatusMethodNotAllowed)
			return
		}
		if cfg.Enqueue == nil {
			httpError(w, "rounds are not supported", nethttp.StatusNotImplemented)
			return
		}
		if ok, reason := cfg.Enqueue(sim.Command{Type: sim.CommandStartRound, IssuedAt: time.Now()}); !ok {
			httpError(w, reason, nethttp.StatusServiceUnavailable)
			return
		}
		w.WriteHeader(nethttp.StatusAccepted)
	})

	mux.HandleFunc("/ws", handler.Handle)

	return mux
}

func httpError(w nethttp.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
