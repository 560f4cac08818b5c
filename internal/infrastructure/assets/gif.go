package assets

import (
	"fmt"
	"image"
	"image/draw"
	"image/gif"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"

	"github.com/younwookim/beatemup/internal/domain/entity"
	"github.com/younwookim/beatemup/internal/infrastructure/config"
)

// DecodeGIF decodes every frame of an animated GIF.
// Frames are composited onto the logical screen so each one is a full picture.
func DecodeGIF(r io.Reader) ([]image.Image, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("gif has no frames")
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = g.Image[0].Bounds()
	}
	current := image.NewRGBA(screen)

	frames := make([]image.Image, 0, len(g.Image))
	for i, frame := range g.Image {
		var previous *image.RGBA
		disposal := byte(0)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(current)
		}

		draw.Draw(current, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)
		frames = append(frames, cloneRGBA(current))

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(current, frame.Bounds(), image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			current = previous
		}
	}
	return frames, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}

// Load reads the GIF files named in cfg from fsys
func Load(fsys fs.FS, cfg config.AssetsConfig, logger *log.Logger) (*Library, error) {
	lib := NewLibrary()

	files := []struct {
		name   string
		set    string
		facing entity.Facing
	}{
		{cfg.Background, entity.SetBackground, entity.FacingRight},
		{cfg.Title, entity.SetTitle, entity.FacingRight},
		{cfg.Player, entity.SetPlayer, entity.FacingRight},
		{cfg.PlayerLeft, entity.SetPlayer, entity.FacingLeft},
		{cfg.Enemy, entity.SetEnemy, entity.FacingRight},
		{cfg.EnemyLeft, entity.SetEnemy, entity.FacingLeft},
	}

	for _, f := range files {
		frames, err := loadFile(fsys, f.name+".gif")
		if err != nil {
			return nil, err
		}
		if f.set == entity.SetPlayer || f.set == entity.SetEnemy {
			if len(frames) < entity.FramesPerSet {
				return nil, fmt.Errorf("asset %s: %d frames, want %d", f.name, len(frames), entity.FramesPerSet)
			}
		}
		lib.Add(f.set, f.facing, frames)
		logger.Debug("asset loaded", "file", f.name, "frames", len(frames))
	}

	logger.Info("assets loaded", "background frames", lib.Count(entity.SetBackground, entity.FacingRight))
	return lib, nil
}

func loadFile(fsys fs.FS, name string) ([]image.Image, error) {
	file, err := fsys.Open(path.Clean(name))
	if err != nil {
		return nil, fmt.Errorf("failed to open asset: %w", err)
	}
	defer func() { _ = file.Close() }()

	frames, err := DecodeGIF(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode asset %s: %w", name, err)
	}
	return frames, nil
}
