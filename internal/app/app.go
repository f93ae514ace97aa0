package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	servernet "github.com/Bamcane/teeworlds-teewar/internal/net"
	"github.com/Bamcane/teeworlds-teewar/internal/net/ws"
	"github.com/Bamcane/teeworlds-teewar/internal/sim"
	"github.com/Bamcane/teeworlds-teewar/internal/telemetry"
	"github.com/Bamcane/teeworlds-teewar/internal/world"
	"github.com/Bamcane/teeworlds-teewar/internal/world/state"
	"github.com/Bamcane/teeworlds-teewar/logging"
	loggingSinks "github.com/Bamcane/teeworlds-teewar/logging/sinks"
)

const (
	DefaultAddr     = ":8080"
	shutdownTimeout = 5 * time.Second
)

type Config struct {
	Logger telemetry.Logger
	// Getenv overrides os.Getenv, mostly for tests.
	Getenv func(string) string
}

// Settings is the resolved process configuration.
type Settings struct {
	Addr     string
	World    world.Config
	JSONLog  bool
	LogLevel logging.Severity
}

// LoadSettings resolves the tuning file and env overrides. Malformed
// overrides are logged and ignored; an unreadable tuning file is an error.
func LoadSettings(getenv func(string) string, logger telemetry.Logger) (Settings, error) {
	if getenv == nil {
		getenv = os.Getenv
	}
	if logger == nil {
		logger = telemetry.Discard()
	}
	settings := Settings{Addr: DefaultAddr, World: world.DefaultConfig(), LogLevel: logging.SeverityInfo}

	if path := getenv("TEEWAR_TUNING"); path != "" {
		cfg, err := world.LoadConfig(path)
		if err != nil {
			return Settings{}, err
		}
		settings.World = cfg
	}
	if raw := getenv("TEEWAR_ADDR"); raw != "" {
		settings.Addr = raw
	}
	if raw := getenv("TEEWAR_TICK_RATE"); raw != "" {
		if value, err := strconv.Atoi(raw); err == nil && value > 0 {
			settings.World.TickRate = value
		} else {
			logger.Printf("invalid TEEWAR_TICK_RATE=%q: %v", raw, errOrNonPositive(err))
		}
	}
	if raw := getenv("TEEWAR_SEED"); raw != "" {
		settings.World.Seed = raw
	}
	if raw := getenv("TEEWAR_LOG_JSON"); raw != "" {
		if value, err := strconv.ParseBool(raw); err == nil {
			settings.JSONLog = value
		} else {
			logger.Printf("invalid TEEWAR_LOG_JSON=%q: %v", raw, err)
		}
	}
	if raw := getenv("TEEWAR_LOG_LEVEL"); raw != "" {
		if level, err := logging.ParseSeverity(raw); err == nil {
			settings.LogLevel = level
		} else {
			logger.Printf("invalid TEEWAR_LOG_LEVEL=%q: %v", raw, err)
		}
	}
	settings.World = settings.World.Normalized()
	if err := settings.World.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

func errOrNonPositive(err error) error {
	if err != nil {
		return err
	}
	return world.ErrInvalidTickRate
}

// TowerSites places one tower per team an eighth of the way in from each side
// of the map, and spawns players 200 units in front of their tower.
func TowerSites(cfg world.Config) (towers, spawns map[state.Team]state.Vec2) {
	y := cfg.Height / 2
	towers = map[state.Team]state.Vec2{
		state.TeamRed:  state.V(cfg.Width/8, y),
		state.TeamBlue: state.V(cfg.Width*7/8, y),
	}
	spawns = map[state.Team]state.Vec2{
		state.TeamRed:  state.V(cfg.Width/8+200, y),
		state.TeamBlue: state.V(cfg.Width*7/8-200, y),
	}
	return towers, spawns
}

func Run(ctx context.Context, cfg Config) error {
	telemetryLogger := cfg.Logger
	if telemetryLogger == nil {
		telemetryLogger = telemetry.WrapLogger(log.Default())
	}

	settings, err := LoadSettings(cfg.Getenv, telemetryLogger)
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	logConfig := logging.DefaultConfig()
	logConfig.Fields = map[string]any{"match": uuid.NewString()}
	logConfig.MinimumSeverity = settings.LogLevel
	if settings.JSONLog {
		logConfig.EnabledSinks = []string{"json"}
	}
	var namedSinks []logging.NamedSink
	if logConfig.HasSink("console") {
		namedSinks = append(namedSinks, logging.NamedSink{Name: "console", Sink: loggingSinks.NewConsoleSink(os.Stdout, logConfig.Console)})
	}
	if logConfig.HasSink("json") {
		namedSinks = append(namedSinks, logging.NamedSink{Name: "json", Sink: loggingSinks.NewJSON(os.Stdout, logConfig.JSON.FlushInterval)})
	}
	metrics := &logging.Metrics{}
	router, err := logging.NewRouter(logging.SystemClock{}, logConfig, log.Default(), metrics, namedSinks)
	if err != nil {
		return fmt.Errorf("failed to construct logging router: %w", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if cerr := router.Close(closeCtx); cerr != nil {
			telemetryLogger.Printf("failed to close logging router: %v", cerr)
		}
	}()

	counters := telemetry.WrapMetrics(metrics)
	eventLogger := telemetry.PublishLogger(router)

	arena := sim.NewArena(sim.ArenaConfig{
		World:     settings.World,
		Publisher: router,
		Metrics:   counters,
	})
	defer arena.Close()
	towers, spawns := TowerSites(arena.Env().Config)
	for _, team := range []state.Team{state.TeamRed, state.TeamBlue} {
		arena.AddTower(team, towers[team])
	}

	var hub *ws.Hub
	loop := sim.NewLoop(arena, sim.DefaultLoopConfig(), sim.LoopDeps{
		Logger:  eventLogger,
		Metrics: counters,
	}, sim.LoopHooks{
		AfterStep:      func(sim.LoopStepResult) { hub.Broadcast(arena) },
		OnQueueWarning: func(length int) {
			eventLogger.Printf("[warn] command inbox holds %d commands", length)
		},
	})
	hub = ws.NewHub(loop, ws.HubConfig{
		Logger:    eventLogger,
		Metrics:   telemetry.Prefixed(counters, "net."),
		Publisher: logging.WithFields(router, map[string]any{"component": "ws"}),
	})
	handler := ws.NewHandler(hub, ws.HandlerConfig{
		Logger:   eventLogger,
		TickRate: arena.TickRate(),
		Spawns:   spawns,
	})

	mux := servernet.NewHTTPHandler(hub, handler, servernet.HTTPHandlerConfig{
		TickRate: arena.TickRate(),
		Metrics:  metrics,
		Enqueue:  loop.Enqueue,
	})
	srv := &http.Server{Addr: settings.Addr, Handler: mux}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		telemetryLogger.Printf("server listening on %s (tick rate %d)", srv.Addr, arena.TickRate())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
