package assets

import (
	"embed"
	"fmt"
	"image"
	"log"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/lafriks/go-tiled"

	"github.com/jobbie007/bossfight/config"
)

//go:embed levels/arena.tmx
var levelFS embed.FS

// Registry owns every sprite sheet used by the fight. It is constructed once
// at startup and passed down explicitly; there is no package-level cache.
type Registry struct {
	root       string
	sheets     map[string]*ebiten.Image
	frameCache map[string]*ebiten.Image
	missing    map[string]bool
}

// NewRegistry creates a registry that loads sprite sheets from
// root/<dir>/<state>.png at first use.
func NewRegistry(root string) *Registry {
	return &Registry{
		root:       root,
		sheets:     make(map[string]*ebiten.Image),
		frameCache: make(map[string]*ebiten.Image),
		missing:    make(map[string]bool),
	}
}

// Sheet returns the sprite sheet for a character directory and state.
// A missing or unreadable file is logged once and reported as nil; the
// renderer falls back to colored rectangles in that case.
func (r *Registry) Sheet(dir string, state config.StateID) *ebiten.Image {
	key := dir + "/" + state.String()
	if img, ok := r.sheets[key]; ok {
		return img
	}
	if r.missing[key] {
		return nil
	}

	path := filepath.Join(r.root, dir, state.String()+".png")
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("Warning: could not load sprite sheet %s: %v", path, err)
		r.missing[key] = true
		return nil
	}

	r.sheets[key] = img
	return img
}

// Frame returns a cached sub-image for a specific animation frame.
// This prevents creating duplicate *ebiten.Image structs for the same frame.
func (r *Registry) Frame(dir string, state config.StateID, frameIndex int, srcRect image.Rectangle) *ebiten.Image {
	key := fmt.Sprintf("%s/%s/%d", dir, state.String(), frameIndex)
	if img, ok := r.frameCache[key]; ok {
		return img
	}

	sheet := r.Sheet(dir, state)
	if sheet == nil {
		return nil
	}

	frame := sheet.SubImage(srcRect).(*ebiten.Image)
	r.frameCache[key] = frame
	return frame
}

// Arena describes the flat fight area: one ground plane, a left wall for the
// player and a movement corridor for the boss.
type Arena struct {
	GroundY      float64
	LeftBoundary float64
	BossMinX     float64
	BossMaxX     float64
	PlayerSpawnX float64
	BossSpawnX   float64
	Width        int
	Height       int
}

// DefaultArena returns the arena built from config fallbacks.
func DefaultArena() Arena {
	return Arena{
		GroundY:      config.Arena.GroundY,
		LeftBoundary: config.Arena.LeftBoundary,
		BossMinX:     config.Arena.BossMinX,
		BossMaxX:     config.Arena.BossMaxX,
		PlayerSpawnX: config.Arena.PlayerSpawnX,
		BossSpawnX:   config.Arena.BossSpawnX,
		Width:        config.C.Width,
		Height:       config.C.Height,
	}
}

// LoadArena parses the embedded Tiled map. Any parse problem is logged and
// the config fallback is used instead, so the fight always starts.
func LoadArena() Arena {
	arena := DefaultArena()

	levelMap, err := tiled.LoadFile("levels/arena.tmx", tiled.WithFileSystem(levelFS))
	if err != nil {
		log.Printf("Warning: could not load arena map: %v", err)
		return arena
	}

	arena.Width = levelMap.Width * levelMap.TileWidth
	arena.Height = levelMap.Height * levelMap.TileHeight

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case "Spawns":
			for _, o := range og.Objects {
				switch o.Name {
				case "player":
					arena.PlayerSpawnX = o.X
				case "boss":
					arena.BossSpawnX = o.X
				}
			}
		case "Bounds":
			for _, o := range og.Objects {
				switch o.Name {
				case "arena":
					arena.LeftBoundary = o.X
				case "boss":
					arena.BossMinX = o.X
					arena.BossMaxX = o.X + o.Width
				}
			}
		case "Ground":
			for _, o := range og.Objects {
				arena.GroundY = o.Y
				break
			}
		}
	}

	return arena
}
