package window

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// KeyBinding is a key with an optional modifier that must be held with it.
type KeyBinding struct {
	Key    ebiten.Key
	Mod    ebiten.Key
	HasMod bool
}

// keyAliases maps configured names Ebitengine does not know to ones it does.
var keyAliases = map[string]string{
	"esc":  "escape",
	"ctrl": "control",
	"del":  "delete",
}

// ParseKey converts a configured key name such as "left", "a", "space" or
// "ctrl+c" to an Ebitengine key binding.
func ParseKey(name string) (KeyBinding, error) {
	var b KeyBinding
	parts := strings.Split(strings.ToLower(strings.TrimSpace(name)), "+")
	if len(parts) > 2 || parts[len(parts)-1] == "" {
		return b, fmt.Errorf("window: unsupported key %q", name)
	}

	if len(parts) == 2 {
		mod, err := lookupKey(parts[0])
		if err != nil {
			return b, err
		}
		b.Mod, b.HasMod = mod, true
	}

	k, err := lookupKey(parts[len(parts)-1])
	if err != nil {
		return b, err
	}
	b.Key = k
	return b, nil
}

func lookupKey(name string) (ebiten.Key, error) {
	if alias, ok := keyAliases[name]; ok {
		name = alias
	}
	var k ebiten.Key
	if err := k.UnmarshalText([]byte(name)); err != nil {
		return k, fmt.Errorf("window: unknown key %q", name)
	}
	return k, nil
}

// keyState is the slice of Ebitengine input the bindings read.
type keyState interface {
	Pressed(k ebiten.Key) bool
	JustPressed(k ebiten.Key) bool
}

// ebitenKeys reads the live keyboard state; valid only inside Update.
type ebitenKeys struct{}

func (ebitenKeys) Pressed(k ebiten.Key) bool     { return ebiten.IsKeyPressed(k) }
func (ebitenKeys) JustPressed(k ebiten.Key) bool { return inpututil.IsKeyJustPressed(k) }

// Bindings maps actions to the keys that trigger them.
type Bindings map[core.Action][]KeyBinding

// NewBindings parses the configured controls. Names the window cannot
// represent are skipped and returned so the caller can log them.
func NewBindings(c config.ControlsConfig) (Bindings, []error) {
	b := make(Bindings)
	var skipped []error

	for action, names := range map[core.Action][]string{
		core.ActionLeft:  c.Left,
		core.ActionRight: c.Right,
		core.ActionUp:    c.Up,
		core.ActionDown:  c.Down,
		core.ActionFire:  c.Fire,
		core.ActionQuit:  c.Quit,
	} {
		for _, n := range names {
			kb, err := ParseKey(n)
			if err != nil {
				skipped = append(skipped, err)
				continue
			}
			b[action] = append(b[action], kb)
		}
	}
	return b, skipped
}

// pressed reports whether the binding is held, modifier included.
func (kb KeyBinding) pressed(ks keyState) bool {
	if kb.HasMod && !ks.Pressed(kb.Mod) {
		return false
	}
	return ks.Pressed(kb.Key)
}

// justPressed reports whether the binding went down this tick.
func (kb KeyBinding) justPressed(ks keyState) bool {
	if kb.HasMod && !ks.Pressed(kb.Mod) {
		return false
	}
	return ks.JustPressed(kb.Key)
}

// Poll builds an input frame from the keyboard. Every key that went down this
// tick is a fresh press; Ebitengine reports no auto-repeats.
func (b Bindings) Poll(ks keyState) core.InputFrame {
	frame := core.NewInputFrame()
	for action, keys := range b {
		for _, kb := range keys {
			if kb.pressed(ks) {
				frame.Hold(action)
			}
			if kb.justPressed(ks) {
				if action == core.ActionQuit {
					frame.Quit = true
					continue
				}
				frame.Press(action, false)
			}
		}
	}
	return frame
}
