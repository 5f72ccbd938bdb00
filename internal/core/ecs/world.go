package ecs

import (
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/qgxx/qgecs/internal/core/event"
)

// StartupSystem runs exactly once, before the first tick. It only stages
// commands; it has no read view because no storage exists yet.
type StartupSystem func(*Commands)

// UpdateSystem runs once per tick in registration order against the tick's
// shared read snapshot.
type UpdateSystem func(*Commands, Queryer, Resources, *event.Channel)

type worldState uint8

const (
	stateUnstarted worldState = iota
	stateStarted
	stateShutDown
)

// World owns all entity, component, resource and event storage plus the
// registered systems, and is the single place buffered commands are
// committed. Single-goroutine use only: systems run strictly sequentially
// and commits never overlap a system's read pass.
type World struct {
	log   *zap.Logger
	id    string
	types *typeRegistry
	store *store

	entities entityGen
	events   *event.Channel

	startupSystems []StartupSystem
	updateSystems  []UpdateSystem

	state    worldState
	tick     uint64
	pageSize uint32
}

// Option configures a World at construction.
type Option func(*World)

// WithLogger installs a structured logger; the default is a nop logger.
func WithLogger(log *zap.Logger) Option {
	return func(w *World) {
		if log != nil {
			w.log = log
		}
	}
}

// WithPageSize overrides the sparse set lookup page width.
func WithPageSize(size uint32) Option {
	return func(w *World) {
		if size > 0 {
			w.pageSize = size
		}
	}
}

func NewWorld(opts ...Option) *World {
	w := &World{
		log:      zap.NewNop(),
		id:       uuid.NewString(),
		pageSize: DefaultPageSize,
		events:   event.NewChannel(),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.log = w.log.With(zap.String("world", w.id))
	w.types = newTypeRegistry()
	w.store = newStore(w.pageSize)
	return w
}

// AddStartupSystem registers a system to run once during Startup.
func (w *World) AddStartupSystem(fn StartupSystem) *World {
	w.startupSystems = append(w.startupSystems, fn)
	return w
}

// AddSystem registers a system to run every Update, in registration order.
func (w *World) AddSystem(fn UpdateSystem) *World {
	w.updateSystems = append(w.updateSystems, fn)
	return w
}

// SetResources seeds a resource before the scheduler starts. It applies
// immediately, so the very first system to run already sees it.
func SetResources[T any](w *World, v T) *World {
	SetResource(newCommands(w), v)
	return w
}

// Startup runs every startup system once, each with its own fresh command
// buffer, then commits all buffers. Spawned entities can reference each
// other's ids across startup systems because no buffer commits until every
// startup system has run.
func (w *World) Startup() {
	buffers := make([]*Commands, 0, len(w.startupSystems))
	for _, fn := range w.startupSystems {
		cmd := newCommands(w)
		fn(cmd)
		buffers = append(buffers, cmd)
	}
	staged := 0
	for _, cmd := range buffers {
		staged += cmd.pending()
		cmd.execute()
	}
	w.state = stateStarted
	w.log.Debug("world started",
		zap.Int("startup_systems", len(w.startupSystems)),
		zap.Int("commands", staged))
}

// Update runs one tick: every update system in registration order with a
// fresh command buffer and the tick's shared read views, then the event
// channel ages and publishes, and finally every buffer commits in the order
// its system ran.
func (w *World) Update() {
	w.tick++
	queryer := Queryer{world: w}
	resources := Resources{world: w}
	buffers := make([]*Commands, 0, len(w.updateSystems))
	for _, fn := range w.updateSystems {
		cmd := newCommands(w)
		fn(cmd, queryer, resources, w.events)
		buffers = append(buffers, cmd)
	}
	w.events.Age()
	staged := 0
	for _, cmd := range buffers {
		staged += cmd.pending()
		cmd.execute()
	}
	w.log.Debug("tick committed",
		zap.Uint64("tick", w.tick),
		zap.Int("systems", len(w.updateSystems)),
		zap.Int("commands", staged))
}

// Shutdown drops all component storage, resources, events and type
// registrations. Calling Startup or Update afterwards is undefined and not
// guarded.
func (w *World) Shutdown() {
	w.store.clear()
	w.events.Clear()
	w.types = newTypeRegistry()
	w.startupSystems = nil
	w.updateSystems = nil
	w.state = stateShutDown
	w.log.Debug("world shut down", zap.Uint64("ticks", w.tick))
}

// Events exposes the event channel, mainly for host wiring and tests;
// systems receive it as their fourth argument.
func (w *World) Events() *event.Channel {
	return w.events
}

// Tick returns the number of completed update ticks.
func (w *World) Tick() uint64 {
	return w.tick
}
