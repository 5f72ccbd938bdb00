// Command qgecs is the demo host. It assembles a World from config, seeds
// the startup scene from a yaml spawn table, registers a few echo systems
// (plus any lua systems from the scripts directory), and drives the
// scheduler for a fixed number of ticks. Everything here is user code on
// top of the documented engine surface.
package main

import (
	"fmt"
	"os"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/qgxx/qgecs/internal/config"
	"github.com/qgxx/qgecs/internal/core/ecs"
	"github.com/qgxx/qgecs/internal/core/event"
	"github.com/qgxx/qgecs/internal/data"
	"github.com/qgxx/qgecs/internal/scripting"
)

// Demo component and resource types.

type Name struct {
	Value string
}

type ID struct {
	Value int
}

type Timer struct {
	Time int
}

// Spawned is the demo event: the startup scene reports how many entities it
// staged, readable by systems one tick later.
type Spawned struct {
	Count int
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := "config/engine.toml"
	if p := os.Getenv("QGECS_CONFIG"); p != "" {
		cfgPath = p
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	scene, err := data.LoadScene(cfg.Engine.ScenePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}
	log.Info("scene loaded", zap.String("path", cfg.Engine.ScenePath), zap.Int("entities", scene.Count()))

	world := ecs.NewWorld(
		ecs.WithLogger(log),
		ecs.WithPageSize(cfg.Storage.PageSize),
	)

	if scene.Resources.Timer != nil {
		ecs.SetResources(world, Timer{Time: *scene.Resources.Timer})
	}

	world.AddStartupSystem(spawnScene(scene)).
		AddSystem(echoNames(log)).
		AddSystem(echoNamedIDs(log)).
		AddSystem(echoTimer(log)).
		AddSystem(echoSpawned(log))

	if cfg.Engine.ScriptsDir != "" {
		engine, err := scripting.NewEngine(cfg.Engine.ScriptsDir, log)
		if err != nil {
			return fmt.Errorf("init scripting: %w", err)
		}
		defer engine.Close()
		bindDemoComponents(engine)
		world.AddSystem(engine.System("update"))
	}

	world.Startup()
	for i := 0; i < cfg.Engine.Ticks; i++ {
		world.Update()
	}
	world.Shutdown()
	return nil
}

// spawnScene stages every scene entry and reports the spawn count as an
// event for the first tick's readers.
func spawnScene(scene *data.Scene) ecs.StartupSystem {
	return func(cmd *ecs.Commands) {
		for _, entry := range scene.Entities {
			var comps []ecs.Component
			if entry.Name != nil {
				comps = append(comps, ecs.With(Name{Value: *entry.Name}))
			}
			if entry.ID != nil {
				comps = append(comps, ecs.With(ID{Value: *entry.ID}))
			}
			if len(comps) > 0 {
				cmd.Spawn(comps...)
			}
		}
	}
}

func echoNames(log *zap.Logger) ecs.UpdateSystem {
	return func(_ *ecs.Commands, q ecs.Queryer, _ ecs.Resources, ev *event.Channel) {
		entities := q.Query(ecs.Key[Name]())
		for _, e := range entities {
			log.Info("name", zap.Uint32("entity", uint32(e)), zap.String("value", ecs.Get[Name](q, e).Value))
		}
		event.WriterFor[Spawned](ev).Write(Spawned{Count: len(entities)})
	}
}

func echoNamedIDs(log *zap.Logger) ecs.UpdateSystem {
	return func(_ *ecs.Commands, q ecs.Queryer, _ ecs.Resources, _ *event.Channel) {
		for _, e := range q.Query(ecs.Key[Name](), ecs.Key[ID]()) {
			log.Info("named id",
				zap.Uint32("entity", uint32(e)),
				zap.String("name", ecs.Get[Name](q, e).Value),
				zap.Int("id", ecs.Get[ID](q, e).Value))
		}
	}
}

func echoTimer(log *zap.Logger) ecs.UpdateSystem {
	return func(_ *ecs.Commands, _ ecs.Queryer, r ecs.Resources, _ *event.Channel) {
		if ecs.HasResource[Timer](r) {
			log.Info("timer", zap.Int("time", ecs.GetResource[Timer](r).Time))
		}
	}
}

func echoSpawned(log *zap.Logger) ecs.UpdateSystem {
	return func(_ *ecs.Commands, _ ecs.Queryer, _ ecs.Resources, ev *event.Channel) {
		reader := event.ReaderFor[Spawned](ev)
		if reader.Has() {
			log.Info("spawned last tick", zap.Int("count", reader.Read().Count))
		}
	}
}

func bindDemoComponents(engine *scripting.Engine) {
	engine.Bind("name", scripting.ComponentBinding{
		Key: ecs.Key[Name](),
		FromLua: func(t *lua.LTable) ecs.Component {
			return ecs.With(Name{Value: lua.LVAsString(t.RawGetString("value"))})
		},
		ToLua: func(L *lua.LState, q ecs.Queryer, e ecs.Entity) lua.LValue {
			out := L.NewTable()
			out.RawSetString("value", lua.LString(ecs.Get[Name](q, e).Value))
			return out
		},
	})
	engine.Bind("id", scripting.ComponentBinding{
		Key: ecs.Key[ID](),
		FromLua: func(t *lua.LTable) ecs.Component {
			return ecs.With(ID{Value: int(lua.LVAsNumber(t.RawGetString("value")))})
		},
		ToLua: func(L *lua.LState, q ecs.Queryer, e ecs.Entity) lua.LValue {
			out := L.NewTable()
			out.RawSetString("value", lua.LNumber(ecs.Get[ID](q, e).Value))
			return out
		},
	})
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
