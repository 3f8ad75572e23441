package main

import (
	"fmt"
	"image"
	"image/color/palette"
	"image/gif"
	"io"
	"os"
	"time"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
	"github.com/gogpu/ggtrail/surface/raster"
	_ "github.com/gogpu/ggtrail/surface/record"
	_ "github.com/gogpu/ggtrail/surface/svg"
)

// autoSurface selects the highest-priority registered backend.
const autoSurface = "auto"

// config describes one offline render.
type config struct {
	width, height int
	frames        int
	fps           int
	fill          gg.RGBA
	background    gg.RGBA
	seed          uint64
	gifScale      float64
	hud           bool

	// surface names the registered backend that receives the trail next
	// to the raster preview; "auto" picks the best available one.
	surface string

	// pngPattern, if set, is a fmt pattern taking the frame number.
	pngPattern string
	gif        io.Writer

	// snapshot receives the secondary backend's final frame.
	snapshot io.Writer
}

// result summarizes a render.
type result struct {
	frames int
	stats  trail.SpawnStats
}

// render drives an engine along the scripted path on a simulated clock, so
// the output is the same on every run with the same seed.
func render(cfg config) (result, error) {
	if cfg.frames <= 0 || cfg.fps <= 0 {
		return result{}, fmt.Errorf("traildemo: frames and fps must be positive")
	}

	sc := surface.Config{Width: cfg.width, Height: cfg.height, Background: cfg.background}
	rs, err := raster.New(sc)
	if err != nil {
		return result{}, err
	}
	secondary, err := newSecondary(cfg.surface, sc)
	if err != nil {
		rs.Close()
		return result{}, err
	}
	out := surface.NewTee(rs, secondary)
	defer out.Close()

	clock := trail.NewManualClock(time.Unix(0, 0))
	engine := trail.New(out, cfg.fill,
		trail.WithClock(clock),
		trail.WithRand(trail.NewRand(cfg.seed)),
	)

	var label *hud
	if cfg.hud {
		if label, err = newHUD(14, gg.White); err != nil {
			return result{}, fmt.Errorf("traildemo: load font: %w", err)
		}
	}

	path := newLissajous(cfg.width, cfg.height)
	step := time.Second / time.Duration(cfg.fps)

	var anim gif.GIF
	for i := 0; i < cfg.frames; i++ {
		clock.Advance(step)
		t := float64(i+1) * step.Seconds()
		engine.AddSample(path.at(t))
		engine.Tick()

		if label != nil {
			label.draw(rs.Context(), label.label(i+1, engine.Len(), engine.Stats()))
		}
		if cfg.pngPattern != "" {
			if err := rs.SavePNG(fmt.Sprintf(cfg.pngPattern, i)); err != nil {
				return result{}, fmt.Errorf("traildemo: save frame %d: %w", i, err)
			}
		}
		if cfg.gif != nil {
			anim.Image = append(anim.Image, paletted(rs.Image(), cfg.gifScale))
			anim.Delay = append(anim.Delay, 100/cfg.fps)
		}
	}

	if cfg.gif != nil {
		if err := gif.EncodeAll(cfg.gif, &anim); err != nil {
			return result{}, fmt.Errorf("traildemo: encode gif: %w", err)
		}
	}
	if cfg.snapshot != nil {
		if err := writeSnapshot(cfg.snapshot, secondary); err != nil {
			return result{}, err
		}
	}

	return result{frames: cfg.frames, stats: engine.Stats()}, nil
}

// newSecondary creates the named backend through the surface registry.
func newSecondary(name string, sc surface.Config) (surface.Backend, error) {
	var (
		b   surface.Backend
		err error
	)
	if name == "" || name == autoSurface {
		b, err = surface.NewBest(sc)
	} else {
		b, err = surface.New(name, sc)
	}
	if err != nil {
		return nil, fmt.Errorf("traildemo: surface %q: %w", name, err)
	}
	trail.Logger().Debug("secondary surface", "requested", name, "type", fmt.Sprintf("%T", b))
	return b, nil
}

// writeSnapshot writes the backend's current frame: documents through
// io.WriterTo, rasters as PNG.
func writeSnapshot(w io.Writer, b surface.Backend) error {
	switch s := b.(type) {
	case io.WriterTo:
		if _, err := s.WriteTo(w); err != nil {
			return fmt.Errorf("traildemo: write snapshot: %w", err)
		}
		return nil
	case interface{ EncodePNG(io.Writer) error }:
		if err := s.EncodePNG(w); err != nil {
			return fmt.Errorf("traildemo: write snapshot: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("traildemo: surface %T cannot write snapshots", b)
	}
}

// paletted scales img and dithers it onto the web-safe palette.
func paletted(img image.Image, scale float64) *image.Paletted {
	if scale <= 0 {
		scale = 1
	}
	b := img.Bounds()
	w := max(1, int(float64(b.Dx())*scale))
	h := max(1, int(float64(b.Dy())*scale))

	scaled := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(scaled, scaled.Bounds(), img, b, xdraw.Src, nil)

	dst := image.NewPaletted(scaled.Bounds(), palette.WebSafe)
	xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), scaled, image.Point{})
	return dst
}

func createFile(path string) (*os.File, error) {
	if path == "" {
		return nil, nil
	}
	return os.Create(path)
}
