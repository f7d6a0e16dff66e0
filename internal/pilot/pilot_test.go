package pilot

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
	"github.com/vovakirdan/debris-shooter/internal/games/debris"
	"github.com/vovakirdan/debris-shooter/internal/registry"
)

func TestBuiltinsRegistered(t *testing.T) {
	for _, id := range []string{"idle", "gunner", "sweeper"} {
		p, err := registry.Create(id)
		if err != nil {
			t.Errorf("Create(%q) error: %v", id, err)
			continue
		}
		if p.ID() != id {
			t.Errorf("ID() = %q, expected %q", p.ID(), id)
		}
	}
}

func TestGunnerCadence(t *testing.T) {
	p := &Gunner{}
	fired := 0
	for i := 0; i < 30; i++ {
		in, err := p.Poll(debris.Snapshot{})
		if err != nil {
			t.Fatal(err)
		}
		fired += in.FreshPresses(core.ActionFire)
	}
	if fired != 3 {
		t.Errorf("gunner fired %d times in 30 polls, expected 3", fired)
	}
}

func TestSweeperTurnsAtWall(t *testing.T) {
	p := &Sweeper{dir: core.ActionRight}

	in, _ := p.Poll(debris.Snapshot{Ship: core.NewRect(640, 690, 60, 60)})
	if !in.Holding(core.ActionRight) {
		t.Fatal("sweeper should start moving right")
	}
	// Ship did not move: it is against the wall
	in, _ = p.Poll(debris.Snapshot{Ship: core.NewRect(640, 690, 60, 60)})
	if !in.Holding(core.ActionLeft) || in.Holding(core.ActionRight) {
		t.Errorf("sweeper should turn left at the wall, held %v", in.Held)
	}
}

func TestSweeperFiresOverhead(t *testing.T) {
	p := &Sweeper{dir: core.ActionRight}
	s := debris.Snapshot{
		Ship:   core.NewRect(300, 690, 60, 60),
		Debris: []core.Rect{core.NewRect(320, 100, 30, 30)},
	}

	in, _ := p.Poll(s)
	if in.FreshPresses(core.ActionFire) != 1 {
		t.Error("sweeper should fire at debris overhead")
	}
	in, _ = p.Poll(s)
	if in.FreshPresses(core.ActionFire) != 0 {
		t.Error("sweeper should wait for its cooldown")
	}

	p = &Sweeper{dir: core.ActionRight}
	s.Debris = []core.Rect{core.NewRect(320, -100, 30, 30)}
	if in, _ := p.Poll(s); in.FreshPresses(core.ActionFire) != 0 {
		t.Error("sweeper should ignore debris above the playfield")
	}
}

func TestLuaPilot(t *testing.T) {
	p, err := LoadLuaString("test", `
function pilot(state)
  if state.tick == 0 then
    return { left = true, fire = true }
  end
  if #state.debris ~= 15 or state.ship.x ~= 315 then
    return { quit = true }
  end
  return { right = true, up = true }
end
`)
	if err != nil {
		t.Fatalf("LoadLuaString() error: %v", err)
	}
	defer p.Close()

	g := debris.New(config.DefaultConfig(), 3)

	in, err := p.Poll(g.Snapshot())
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if !in.Holding(core.ActionLeft) || in.FreshPresses(core.ActionFire) != 1 || in.Quit {
		t.Fatalf("first frame = %+v", in)
	}
	g.Step(in)

	in, err = p.Poll(g.Snapshot())
	if err != nil {
		t.Fatalf("Poll() error: %v", err)
	}
	if in.Quit {
		t.Fatal("script saw unexpected state")
	}
	if !in.Holding(core.ActionRight) || !in.Holding(core.ActionUp) || in.Holding(core.ActionLeft) {
		t.Errorf("second frame held %v", in.Held)
	}
}

func TestLuaPilotSeesBullets(t *testing.T) {
	p, err := LoadLuaString("bullets", `
function pilot(state)
  return { quit = #state.bullets == 1 and state.bullets[1].w == 20 and API_VERSION == 1 }
end
`)
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()

	s := debris.Snapshot{Bullets: []core.Rect{
		core.NewRect(-20, -20, 20, 20),
		core.NewRect(340, 400, 20, 20),
	}}
	in, err := p.Poll(s)
	if err != nil {
		t.Fatal(err)
	}
	if !in.Quit {
		t.Error("script should see exactly one active bullet")
	}
}

func TestLuaPilotErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		load bool // Error expected at load time
		want string
	}{
		{"syntax", "function pilot(", true, "load"},
		{"missing function", "x = 1", true, "does not define"},
		{"runtime error", "function pilot(s) error('boom') end", false, "boom"},
		{"bad return", "function pilot(s) return 42 end", false, "expected a table"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p, err := LoadLuaString(tc.name, tc.src)
			if tc.load {
				if err == nil || !strings.Contains(err.Error(), tc.want) {
					t.Errorf("load error = %v, expected %q", err, tc.want)
				}
				return
			}
			if err != nil {
				t.Fatalf("load error: %v", err)
			}
			defer p.Close()
			if _, err := p.Poll(debris.Snapshot{}); err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Errorf("poll error = %v, expected %q", err, tc.want)
			}
		})
	}
}

func TestLuaPilotNilReturn(t *testing.T) {
	p, err := LoadLuaString("nil", "function pilot(s) end")
	if err != nil {
		t.Fatal(err)
	}
	defer p.Close()
	in, err := p.Poll(debris.Snapshot{})
	if err != nil || len(in.Held) != 0 || len(in.Presses) != 0 {
		t.Errorf("nil return should be an empty frame, got %+v, %v", in, err)
	}
}

func TestOpen(t *testing.T) {
	p, err := Open("gunner")
	if err != nil || p.ID() != "gunner" {
		t.Fatalf("Open(gunner) = %v, %v", p, err)
	}

	path := filepath.Join(t.TempDir(), "script.lua")
	if err := os.WriteFile(path, []byte("function pilot(s) return {} end"), 0o600); err != nil {
		t.Fatal(err)
	}
	p, err = Open(path)
	if err != nil {
		t.Fatalf("Open(%s) error: %v", path, err)
	}
	if p.ID() != "lua:script" {
		t.Errorf("ID() = %q, expected lua:script", p.ID())
	}
	p.(*Lua).Close()

	if _, err := Open(filepath.Join(t.TempDir(), "missing.lua")); err == nil {
		t.Error("missing script should fail")
	}
	if _, err := Open("nobody"); err == nil {
		t.Error("unknown pilot should fail")
	}
}

func TestBundledDodgerLoads(t *testing.T) {
	p, err := LoadLua(filepath.Join("..", "..", "configs", "pilots", "dodger.lua"))
	if err != nil {
		t.Fatalf("LoadLua() error: %v", err)
	}
	defer p.Close()

	g := debris.New(config.DefaultConfig(), 11)
	for i := 0; i < 500 && !g.GameOver(); i++ {
		in, err := p.Poll(g.Snapshot())
		if err != nil {
			t.Fatalf("tick %d: %v", i, err)
		}
		g.Step(in)
	}
}
