// Command traildemo renders a scripted pointer trail to PNG frames, an
// animated GIF and a snapshot from any registered surface backend.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/surface"
)

func main() {
	var (
		width    = flag.Int("width", 640, "image width")
		height   = flag.Int("height", 480, "image height")
		frames   = flag.Int("frames", 180, "number of frames")
		fps      = flag.Int("fps", trail.DefaultFrameRate, "frames per second of simulated time")
		color    = flag.String("color", "#ff3366", "trail color")
		bg       = flag.String("bg", "#111111", "background color")
		seed     = flag.Uint64("seed", 1, "random seed")
		out      = flag.String("out", "", "PNG frame pattern, e.g. frame-%03d.png")
		gifPath  = flag.String("gif", "trail.gif", "animated GIF output (empty to skip)")
		gifScale = flag.Float64("gif-scale", 0.5, "GIF scale factor")
		surf     = flag.String("surface", "svg", "secondary backend: "+strings.Join(surface.Names(), ", ")+" or auto")
		snapPath = flag.String("snapshot", "", "write the secondary backend's last frame to this file")
		noHUD    = flag.Bool("no-hud", false, "omit the status label")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		trail.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		trail.Logger().Debug("registered surfaces", "names", surface.Names())
	}

	cfg := config{
		width:      *width,
		height:     *height,
		frames:     *frames,
		fps:        *fps,
		fill:       gg.Hex(*color),
		background: gg.Hex(*bg),
		seed:       *seed,
		gifScale:   *gifScale,
		hud:        !*noHUD,
		surface:    *surf,
		pngPattern: *out,
	}

	gifFile, err := createFile(*gifPath)
	if err != nil {
		log.Fatalf("Failed to create GIF: %v", err)
	}
	if gifFile != nil {
		defer gifFile.Close()
		cfg.gif = gifFile
	}

	snapFile, err := createFile(*snapPath)
	if err != nil {
		log.Fatalf("Failed to create snapshot: %v", err)
	}
	if snapFile != nil {
		defer snapFile.Close()
		cfg.snapshot = snapFile
	}

	res, err := render(cfg)
	if err != nil {
		log.Fatalf("Render failed: %v", err)
	}

	p := message.NewPrinter(language.English)
	log.Print(p.Sprintf("Rendered %d frames (%dx%d), %d decorations: %d circles, %d squares, %d triangles",
		res.frames, *width, *height, res.stats.Total(),
		res.stats.Circles, res.stats.Squares, res.stats.Triangles))
}
