// Command trailterm draws a pointer trail that follows the mouse in a
// terminal.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
)

func main() {
	var (
		color   = flag.String("color", "#ff3366", "trail color")
		scale   = flag.Int("scale", 4, "canvas pixels per half cell")
		fps     = flag.Int("fps", trail.DefaultFrameRate, "frames per second")
		mute    = flag.Bool("mute", false, "disable the spawn chime")
		logFile = flag.String("log", "", "write debug logs to this file")
	)
	flag.Parse()

	if *scale < 1 || *fps < 1 {
		log.Fatalf("scale and fps must be positive")
	}

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatalf("Failed to open log: %v", err)
		}
		defer f.Close()
		trail.SetLogger(slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	opts := []trail.Option{}
	if !*mute {
		c, err := newChime()
		if err != nil {
			trail.Logger().Warn("audio unavailable", "err", err)
		}
		opts = append(opts, trail.WithSpawnHook(c.play))
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("Failed to create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("Failed to init screen: %v", err)
	}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	t, err := newTerm(screen, gg.Hex(*color), *scale, *fps, opts...)
	if err != nil {
		screen.Fini()
		log.Fatalf("Failed to create canvas: %v", err)
	}

	t.run()
	t.close()
	screen.Fini()
}
