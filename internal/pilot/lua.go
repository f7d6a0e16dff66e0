package pilot

import (
	"fmt"
	"path/filepath"
	"strings"

	lua "github.com/yuin/gopher-lua"

	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/registry"
)

// PollFunc is the global a pilot script must define.
const PollFunc = "pilot"

// Lua is a pilot backed by a gopher-lua VM.
// The script defines pilot(state) and returns a table of flags:
// left, right, up, down, fire, quit. Single-goroutine access only.
type Lua struct {
	vm   *lua.LState
	name string
}

// APIVersion is exposed to scripts as the API_VERSION global.
const APIVersion = 1

// LoadLua runs the script at path and checks that it defines pilot().
func LoadLua(path string) (*Lua, error) {
	vm := newState()
	if err := vm.DoFile(path); err != nil {
		vm.Close()
		return nil, fmt.Errorf("pilot: load %s: %w", path, err)
	}
	return newLua(vm, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// LoadLuaString is LoadLua for an in-memory script.
func LoadLuaString(name, src string) (*Lua, error) {
	vm := newState()
	if err := vm.DoString(src); err != nil {
		vm.Close()
		return nil, fmt.Errorf("pilot: load %s: %w", name, err)
	}
	return newLua(vm, name)
}

func newState() *lua.LState {
	vm := lua.NewState()
	vm.SetGlobal("API_VERSION", lua.LNumber(APIVersion))
	return vm
}

func newLua(vm *lua.LState, name string) (*Lua, error) {
	if _, ok := vm.GetGlobal(PollFunc).(*lua.LFunction); !ok {
		vm.Close()
		return nil, fmt.Errorf("pilot: %s does not define function %s(state)", name, PollFunc)
	}
	return &Lua{vm: vm, name: name}, nil
}

func (p *Lua) ID() string { return "lua:" + p.name }

// Poll calls pilot(state) with the snapshot packed into a table.
func (p *Lua) Poll(s debris.Snapshot) (core.InputFrame, error) {
	in := core.NewInputFrame()

	if err := p.vm.CallByParam(lua.P{
		Fn:      p.vm.GetGlobal(PollFunc),
		NRet:    1,
		Protect: true,
	}, p.stateTable(s)); err != nil {
		return in, fmt.Errorf("pilot: %s: %w", p.name, err)
	}

	result := p.vm.Get(-1)
	p.vm.Pop(1)

	rt, ok := result.(*lua.LTable)
	if !ok {
		if result == lua.LNil {
			return in, nil
		}
		return in, fmt.Errorf("pilot: %s: %s() returned %s, expected a table", p.name, PollFunc, result.Type())
	}

	flags := []struct {
		key    string
		action core.Action
	}{
		{"left", core.ActionLeft},
		{"right", core.ActionRight},
		{"up", core.ActionUp},
		{"down", core.ActionDown},
	}
	for _, f := range flags {
		if lua.LVAsBool(rt.RawGetString(f.key)) {
			in.Hold(f.action)
		}
	}
	if lua.LVAsBool(rt.RawGetString("fire")) {
		in.Press(core.ActionFire, false)
	}
	in.Quit = lua.LVAsBool(rt.RawGetString("quit"))
	return in, nil
}

// Close releases the VM.
func (p *Lua) Close() error {
	p.vm.Close()
	return nil
}

func (p *Lua) stateTable(s debris.Snapshot) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("tick", lua.LNumber(s.Tick))
	t.RawSetString("score", lua.LNumber(s.Score))
	t.RawSetString("game_over", lua.LBool(s.Status == debris.StatusGameOver))
	t.RawSetString("ship", p.rectTable(s.Ship))

	bullets := p.vm.NewTable()
	for _, b := range s.ActiveBullets() {
		bullets.Append(p.rectTable(b))
	}
	t.RawSetString("bullets", bullets)

	rocks := p.vm.NewTable()
	for _, d := range s.Debris {
		rocks.Append(p.rectTable(d))
	}
	t.RawSetString("debris", rocks)
	return t
}

func (p *Lua) rectTable(r core.Rect) *lua.LTable {
	t := p.vm.NewTable()
	t.RawSetString("x", lua.LNumber(r.X))
	t.RawSetString("y", lua.LNumber(r.Y))
	t.RawSetString("w", lua.LNumber(r.W))
	t.RawSetString("h", lua.LNumber(r.H))
	return t
}

var _ registry.Pilot = (*Lua)(nil)
