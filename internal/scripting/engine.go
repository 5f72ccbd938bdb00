// Package scripting bridges lua-defined systems onto the ECS surface. The
// host binds its component types by name, loads a script directory, and
// registers lua functions as ordinary update systems.
package scripting

import (
	"fmt"
	"os"
	"path/filepath"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"

	"github.com/qgxx/qgecs/internal/core/ecs"
	"github.com/qgxx/qgecs/internal/core/event"
)

// ComponentBinding teaches the engine how to move one component type across
// the lua boundary.
type ComponentBinding struct {
	Key     ecs.TypeKey
	FromLua func(*lua.LTable) ecs.Component
	ToLua   func(L *lua.LState, q ecs.Queryer, e ecs.Entity) lua.LValue
}

// Engine wraps a single lua VM. Single-goroutine access only, same as the
// scheduler that drives its systems.
type Engine struct {
	vm       *lua.LState
	log      *zap.Logger
	bindings map[string]ComponentBinding
}

// NewEngine creates a lua engine and loads every .lua file in scriptsDir.
func NewEngine(scriptsDir string, log *zap.Logger) (*Engine, error) {
	vm := lua.NewState(lua.Options{SkipOpenLibs: false})
	vm.SetGlobal("API_VERSION", lua.LNumber(1))

	e := &Engine{
		vm:       vm,
		log:      log,
		bindings: make(map[string]ComponentBinding, 8),
	}
	if err := e.loadDir(scriptsDir); err != nil {
		vm.Close()
		return nil, err
	}
	return e, nil
}

// Bind registers a named component binding for use by lua systems.
func (e *Engine) Bind(name string, b ComponentBinding) {
	e.bindings[name] = b
}

// Close releases the lua VM.
func (e *Engine) Close() {
	e.vm.Close()
}

// loadDir loads all .lua files in a directory. Missing directories are
// skipped so scripting stays optional.
func (e *Engine) loadDir(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := e.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		e.log.Debug("loaded lua script", zap.String("file", path))
	}
	return nil
}

// System wraps the lua global function fnName as an update system. Each
// tick the function receives an api table scoped to that tick's command
// buffer and read views.
func (e *Engine) System(fnName string) ecs.UpdateSystem {
	return func(cmd *ecs.Commands, q ecs.Queryer, _ ecs.Resources, _ *event.Channel) {
		fn := e.vm.GetGlobal(fnName)
		if fn == lua.LNil {
			e.log.Error("lua system not defined", zap.String("fn", fnName))
			return
		}
		api := e.apiTable(cmd, q)
		if err := e.vm.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, api); err != nil {
			e.log.Error("lua system failed", zap.String("fn", fnName), zap.Error(err))
		}
	}
}

// apiTable builds the per-tick lua API: spawn, destroy, query, has, get.
func (e *Engine) apiTable(cmd *ecs.Commands, q ecs.Queryer) *lua.LTable {
	L := e.vm
	api := L.NewTable()

	api.RawSetString("spawn", L.NewFunction(func(L *lua.LState) int {
		tbl := L.CheckTable(1)
		var comps []ecs.Component
		tbl.ForEach(func(k, v lua.LValue) {
			name := lua.LVAsString(k)
			b, ok := e.bindings[name]
			if !ok {
				L.RaiseError("unknown component %q", name)
				return
			}
			ct, ok := v.(*lua.LTable)
			if !ok {
				L.RaiseError("component %q must be a table", name)
				return
			}
			comps = append(comps, b.FromLua(ct))
		})
		entity := cmd.Spawn(comps...)
		L.Push(lua.LNumber(entity))
		return 1
	}))

	api.RawSetString("destroy", L.NewFunction(func(L *lua.LState) int {
		cmd.Destroy(ecs.Entity(L.CheckInt(1)))
		return 0
	}))

	api.RawSetString("query", L.NewFunction(func(L *lua.LState) int {
		keys := make([]ecs.TypeKey, 0, L.GetTop())
		for i := 1; i <= L.GetTop(); i++ {
			name := L.CheckString(i)
			b, ok := e.bindings[name]
			if !ok {
				L.RaiseError("unknown component %q", name)
			}
			keys = append(keys, b.Key)
		}
		out := L.NewTable()
		for _, entity := range q.Query(keys...) {
			out.Append(lua.LNumber(entity))
		}
		L.Push(out)
		return 1
	}))

	api.RawSetString("has", L.NewFunction(func(L *lua.LState) int {
		entity := ecs.Entity(L.CheckInt(1))
		name := L.CheckString(2)
		b, ok := e.bindings[name]
		if !ok {
			L.RaiseError("unknown component %q", name)
		}
		L.Push(lua.LBool(q.HasKey(entity, b.Key)))
		return 1
	}))

	api.RawSetString("get", L.NewFunction(func(L *lua.LState) int {
		entity := ecs.Entity(L.CheckInt(1))
		name := L.CheckString(2)
		b, ok := e.bindings[name]
		if !ok {
			L.RaiseError("unknown component %q", name)
		}
		L.Push(b.ToLua(L, q, entity))
		return 1
	}))

	api.RawSetString("log", L.NewFunction(func(L *lua.LState) int {
		e.log.Info(L.CheckString(1))
		return 0
	}))

	return api
}
