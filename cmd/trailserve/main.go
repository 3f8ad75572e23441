// Command trailserve serves the pointer trail to browsers over websocket.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gogpu/gg"
	trail "github.com/gogpu/ggtrail"
	"github.com/gogpu/ggtrail/internal/server"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		color   = flag.String("color", "#ff3366", "trail color")
		fps     = flag.Int("fps", trail.DefaultFrameRate, "frames per second per client")
		delay   = flag.Duration("delay", trail.DefaultRemoveDelay, "sample lifetime")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		trail.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	cfg := server.DefaultConfig()
	cfg.Fill = gg.Hex(*color)
	cfg.FrameRate = *fps
	cfg.Options = []trail.Option{trail.WithRemoveDelay(*delay)}

	srv := server.New(cfg)
	httpSrv := &http.Server{
		Addr:              *addr,
		Handler:           srv,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Close()
		httpSrv.Shutdown(shutdownCtx)
	}()

	log.Printf("trailserve listening on %s", *addr)
	if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("server error: %v", err)
	}
}
