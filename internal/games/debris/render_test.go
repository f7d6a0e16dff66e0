package debris

import (
	"fmt"
	"testing"

	"github.com/vovakirdan/debris-shooter/internal/core"
)

// recordingCanvas logs draw calls as strings.
type recordingCanvas struct {
	calls []string
}

func (c *recordingCanvas) DrawBackground() {
	c.calls = append(c.calls, "background")
}

func (c *recordingCanvas) DrawSprite(kind core.Sprite, r core.Rect) {
	c.calls = append(c.calls, fmt.Sprintf("sprite %s %v", kind, r))
}

func (c *recordingCanvas) FillRect(r core.Rect, col core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("fill %v %d", r, col))
}

func (c *recordingCanvas) DrawText(text string, r core.Rect, col core.Color) {
	c.calls = append(c.calls, fmt.Sprintf("text %q %v %d", text, r, col))
}

func TestDrawOrder(t *testing.T) {
	g := newTestGame(t)
	g.bullets.Spawn(340, 400)

	c := &recordingCanvas{}
	g.Draw(c)

	// background + ship + 1 bullet + 15 debris + score
	if len(c.calls) != 19 {
		t.Fatalf("got %d draw calls, expected 19:\n%v", len(c.calls), c.calls)
	}
	if c.calls[0] != "background" {
		t.Errorf("first call = %q, expected background", c.calls[0])
	}
	if want := fmt.Sprintf("sprite ship %v", core.NewRect(320, 670, 60, 60)); c.calls[1] != want {
		t.Errorf("second call = %q, expected %q", c.calls[1], want)
	}
	if want := fmt.Sprintf("sprite bullet %v", core.NewRect(340, 400, 20, 20)); c.calls[2] != want {
		t.Errorf("third call = %q, expected %q", c.calls[2], want)
	}
	want := fmt.Sprintf("text %q %v %d", "SCORE: 0", core.NewRect(580, 20, 100, 30), core.ColorWhite)
	if c.calls[18] != want {
		t.Errorf("last call = %q, expected %q", c.calls[18], want)
	}
}

func TestDrawGameOverBanner(t *testing.T) {
	g := newTestGame(t)
	g.score = 7
	g.gameOver = true

	c := &recordingCanvas{}
	g.Draw(c)

	n := len(c.calls)
	if n < 3 {
		t.Fatalf("too few draw calls: %v", c.calls)
	}
	tests := []struct {
		got, want string
	}{
		{c.calls[n-3], fmt.Sprintf("text %q %v %d", "SCORE: 7", core.NewRect(580, 20, 100, 30), core.ColorWhite)},
		{c.calls[n-2], fmt.Sprintf("fill %v %d", core.NewRect(0, 325, 700, 60), core.ColorWhite)},
		{c.calls[n-1], fmt.Sprintf("text %q %v %d", GameOverText, core.NewRect(250, 320, 200, 60), core.ColorRed)},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("got %q, expected %q", tc.got, tc.want)
		}
	}
}
