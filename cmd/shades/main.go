package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/coreman2200/funtimes-shades/internal/app"
	"github.com/coreman2200/funtimes-shades/internal/config"
	diag "github.com/coreman2200/funtimes-shades/internal/diagnostics"
	"github.com/coreman2200/funtimes-shades/internal/led"
	"github.com/coreman2200/funtimes-shades/internal/pixel"
	"github.com/coreman2200/funtimes-shades/internal/ws"
)

func main() {
	// ---- Flags (config.yaml overrides where it sets a value) ----
	var (
		driver     = flag.String("driver", "sim", "driver: spi | console | sim")
		effectName = flag.String("effect", "", "start effect (e.g. plasma)")
		brightness = flag.Int("brightness", 255, "global brightness 0..255")
		fps        = flag.Int("fps", 30, "preview stream frames per second")
		colorOrder = flag.String("color", "GRB", "LED color order (GRB, RGB, BRG)")
		spiPort    = flag.String("spi-port", "", "SPI port, empty for the first")
		addr       = flag.String("addr", ":8080", "HTTP listen address")
		configPath = flag.String("config", "config.yaml", "path to config.yaml")
		simOnly    = flag.Bool("sim-only", false, "force simulation (no hardware output)")
		logLevel   = flag.String("log-level", "info", "debug | info | warn | error")
	)
	flag.Parse()

	// ---- Logging ----
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.Kitchen})
	if lvl, err := zerolog.ParseLevel(*logLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	// ---- Load config.yaml (optional) ----
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Warn().Err(err).Str("path", *configPath).Msg("config load failed; proceeding with flags")
		cfg = &config.Config{}
	}
	if cfg.Driver == "" {
		cfg.Driver = *driver
	}
	if *simOnly {
		cfg.Driver = "sim"
	}
	if cfg.Effect == "" {
		cfg.Effect = *effectName
	}
	if cfg.Brightness == nil {
		cfg.Brightness = brightness
	}
	if cfg.FPS == 0 {
		cfg.FPS = *fps
	}
	if cfg.ColorOrder == "" {
		cfg.ColorOrder = *colorOrder
	}
	if cfg.SPI.Port == "" {
		cfg.SPI.Port = *spiPort
	}

	// ---- Core, then driver sized to the layout ----
	core, err := app.Build(cfg, nil)
	if err != nil {
		log.Fatal().Err(err).Msg("bad configuration")
	}
	drv, got := led.Open(led.Options{
		Kind:    cfg.Driver,
		Port:    cfg.SPI.Port,
		SpeedHz: cfg.SPI.SpeedHz,
		Order:   pixel.Order(cfg.ColorOrder),
		Count:   core.Mapper.Visible(),
	})
	core.Eng.Drv = drv

	state := ws.NewState(core.Eng, core.Mapper, cfg.FPS)
	cfg.FPS = state.FPS
	state.Player = core.Seq
	state.Cfg = cfg
	state.ConfigPath = *configPath
	state.CurrentDriver = got
	core.Eng.OnFrame = state.Frame
	if got != cfg.Driver {
		state.PushDiag(diag.Fallback(cfg.Driver, got))
	}

	// ---- HTTP routes ----
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", state.HandleFramesWS)
	mux.HandleFunc("/diag", state.HandleDiagWS)
	mux.HandleFunc("/control", state.HandleControlWS)
	mux.HandleFunc("/health", state.HandleHealth)
	mux.HandleFunc("/effects", state.HandleEffects)

	srv := &http.Server{
		Addr:         *addr,
		Handler:      withCORS(mux),
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ---- Run engine, preview stream & server ----
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() { done <- core.Run(ctx) }()
	go state.RunBroadcast(ctx)
	go func() {
		log.Info().Str("addr", *addr).Str("driver", got).Msg("HTTP server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http server crashed")
		}
	}()

	// ---- Graceful shutdown ----
	<-ctx.Done()
	log.Info().Msg("shutting down")
	if err := <-done; err != nil {
		log.Error().Err(err).Msg("engine stopped")
	}
	_ = srv.Close()
	// blank the glasses before releasing the port
	_ = drv.Write(make([]pixel.RGB, core.Mapper.Visible()))
	_ = drv.Close()
}

func withCORS(h http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(200)
			return
		}
		h.ServeHTTP(w, r)
	})
}
