package window

import (
	"errors"
	"fmt"
	_ "image/png" // PNG decoder for sprite files
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/vovakirdan/debris-shooter/internal/config"
	"github.com/vovakirdan/debris-shooter/internal/core"
)

// ErrAssetMissing marks a texture or font that could not be loaded.
// Missing assets are drawn as placeholders, so it is never fatal.
var ErrAssetMissing = errors.New("asset missing")

// Assets holds the loaded textures and font. Nil fields are missing.
type Assets struct {
	Background *ebiten.Image
	Sprites    map[core.Sprite]*ebiten.Image
	Font       *text.GoTextFaceSource
	FontSize   float64
}

// LoadAssets loads every asset named in cfg. Each one is attempted on its
// own; failures are logged at warn level and returned.
func LoadAssets(cfg config.AssetsConfig, logger *log.Logger) (*Assets, []error) {
	a := &Assets{
		Sprites:  make(map[core.Sprite]*ebiten.Image),
		FontSize: cfg.FontSize,
	}
	var missing []error

	fail := func(name, path string, err error) {
		err = fmt.Errorf("window: %s %s: %w: %w", name, path, ErrAssetMissing, err)
		logger.Warn("asset missing, drawing placeholder", "asset", name, "path", path, "error", err)
		missing = append(missing, err)
	}

	path := resolve(cfg.Dir, cfg.Background)
	if img, err := loadImage(path); err != nil {
		fail("background", path, err)
	} else {
		a.Background = img
	}

	for kind, name := range map[core.Sprite]string{
		core.SpriteShip:   cfg.Ship,
		core.SpriteDebris: cfg.Debris,
		core.SpriteBullet: cfg.Bullet,
	} {
		path := resolve(cfg.Dir, name)
		img, err := loadImage(path)
		if err != nil {
			fail(kind.String(), path, err)
			continue
		}
		a.Sprites[kind] = img
	}

	path = resolve(cfg.Dir, cfg.Font)
	if src, err := loadFont(path); err != nil {
		fail("font", path, err)
	} else {
		a.Font = src
	}

	return a, missing
}

// resolve joins relative asset names to the asset directory.
func resolve(dir, name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(dir, name)
}

func loadImage(path string) (*ebiten.Image, error) {
	if path == "" {
		return nil, errors.New("no file configured")
	}
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func loadFont(path string) (*text.GoTextFaceSource, error) {
	if path == "" {
		return nil, errors.New("no file configured")
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return text.NewGoTextFaceSource(f)
}
