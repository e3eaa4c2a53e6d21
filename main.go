// Command numguess runs the terminal number-guessing game.
//
// It supports three commands:
//  1. "play" (default): the interactive menu: single-player, multiplayer,
//     leaderboard, reset and statistics
//  2. "serve": a read-only HTTP scoreboard with REST API, WebSocket feed and
//     an /mcp endpoint, optionally exposed through ngrok
//  3. "mcp": an MCP stdio server over the same scoreboard
//
// Settings come from the environment or a .env file (see game/config) and can
// be overridden by flags.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
	"golang.ngrok.com/ngrok"
	ngrokConfig "golang.ngrok.com/ngrok/config"

	"github.com/wricardo/numguess/api"
	"github.com/wricardo/numguess/game/config"
	"github.com/wricardo/numguess/game/console"
	"github.com/wricardo/numguess/game/engine"
	"github.com/wricardo/numguess/game/menu"
	"github.com/wricardo/numguess/game/scores"
	"github.com/wricardo/numguess/game/scores/sqlite"
	"github.com/wricardo/numguess/game/service"
	"github.com/wricardo/numguess/transport/mcp"
	"github.com/wricardo/numguess/transport/websocket"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "numguess"
)

// shutdownTimeout bounds graceful HTTP shutdown
const shutdownTimeout = 10 * time.Second

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load settings: %v\n", err)
		os.Exit(1)
	}

	cmd := newCommand(settings, os.Stdin, os.Stdout, os.Stderr)
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", AppName, err)
		os.Exit(1)
	}
}

// app carries what every command needs
type app struct {
	base   config.Settings
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// newCommand builds the command tree. Flag defaults come from base.
func newCommand(base config.Settings, stdin io.Reader, stdout, stderr io.Writer) *cli.Command {
	a := &app{base: base, stdin: stdin, stdout: stdout, stderr: stderr}

	return &cli.Command{
		Name:      AppName,
		Usage:     "guess the secret number",
		Version:   Version,
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "data-dir",
				Value: base.DataDir,
				Usage: "directory holding best scores and the leaderboard",
			},
			&cli.StringFlag{
				Name:  "store",
				Value: base.Store,
				Usage: "score storage backend: file or sqlite",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Value: base.Debug,
				Usage: "enable debug logging on stderr",
			},
		},
		Action: a.play,
		Commands: []*cli.Command{
			{
				Name:   "play",
				Usage:  "play the interactive game (default)",
				Action: a.play,
			},
			{
				Name:  "serve",
				Usage: "serve a read-only scoreboard over HTTP, WebSocket and MCP",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Value: base.HTTPAddr,
						Usage: "HTTP listen address",
					},
					&cli.DurationFlag{
						Name:  "poll-interval",
						Value: base.PollInterval,
						Usage: "how often the scoreboard feed checks for changes",
					},
					&cli.BoolFlag{
						Name:  "ngrok",
						Value: base.NgrokEnabled,
						Usage: "expose the server through an ngrok tunnel",
					},
					&cli.StringFlag{
						Name:  "ngrok-domain",
						Value: base.NgrokDomain,
						Usage: "reserved ngrok domain (optional)",
					},
				},
				Action: a.serve,
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server over the scoreboard",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "api-url",
						Usage: "read scores from a running serve command instead of the local store",
					},
				},
				Action: a.runMCP,
			},
		},
	}
}

// settings merges flags over the base settings
func (a *app) settings(cmd *cli.Command) (config.Settings, error) {
	s := a.base
	s.DataDir = cmd.String("data-dir")
	s.Store = strings.ToLower(strings.TrimSpace(cmd.String("store")))
	s.Debug = cmd.Bool("debug")

	if cmd.IsSet("addr") {
		s.HTTPAddr = cmd.String("addr")
	}
	if cmd.IsSet("poll-interval") {
		s.PollInterval = cmd.Duration("poll-interval")
	}
	if cmd.IsSet("ngrok") {
		s.NgrokEnabled = cmd.Bool("ngrok")
	}
	if cmd.IsSet("ngrok-domain") {
		s.NgrokDomain = cmd.String("ngrok-domain")
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// newLogger writes human-readable logs to w; warn level unless debug is set
func newLogger(w io.Writer, debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(level).
		With().Timestamp().Str("app", AppName).
		Logger()
}

// openPersistence returns the configured backend, falling back to memory when
// the data directory is unusable. The returned close function is never nil.
func openPersistence(s config.Settings, log zerolog.Logger) (scores.Persistence, func() error) {
	noop := func() error { return nil }

	switch s.Store {
	case config.StoreSQLite:
		if err := os.MkdirAll(s.DataDir, 0755); err == nil {
			store, err := sqlite.Open(filepath.Join(s.DataDir, sqlite.DefaultFile))
			if err == nil {
				return store, store.Close
			}
			log.Warn().Err(err).Msg("sqlite store unavailable, scores will not be saved")
		} else {
			log.Warn().Err(err).Str("data_dir", s.DataDir).Msg("data directory unavailable, scores will not be saved")
		}

	default:
		fp, err := scores.NewFilePersistence(s.DataDir)
		if err == nil {
			return fp, noop
		}
		log.Warn().Err(err).Str("data_dir", s.DataDir).Msg("data directory unavailable, scores will not be saved")
	}

	return scores.NewMemoryPersistence(), noop
}

// play runs the interactive menu until the player exits
func (a *app) play(ctx context.Context, cmd *cli.Command) error {
	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	log := newLogger(a.stderr, s.Debug)
	persistence, closeStore := openPersistence(s, log)
	defer closeStore()

	store := scores.NewStore(persistence, log)
	prompter := console.NewPrompter(a.stdin, a.stdout)
	rng := engine.NewRandom(engine.SeedFromClock(time.Now()))
	svc := service.NewGameService(prompter, store, rng, time.Now, log)

	log.Debug().Str("store", s.Store).Str("data_dir", s.DataDir).Msg("starting game")
	return menu.NewController(prompter, svc, log).Run(ctx)
}

// newHTTPHandler wires the hub, its watcher, the MCP endpoint and the REST API.
// Background goroutines stop when ctx is done.
func newHTTPHandler(ctx context.Context, store *scores.Store, pollInterval time.Duration, log zerolog.Logger) http.Handler {
	hub := websocket.NewHub(log)
	go hub.Run(ctx)
	go hub.Watch(ctx, store, scores.LeaderboardDisplayLimit, pollInterval)

	mcpServer := mcp.NewServer(store)
	return api.NewServer(store, hub, mcpServer.HTTPHandler())
}

// serve runs the read-only scoreboard server until SIGINT or SIGTERM
func (a *app) serve(ctx context.Context, cmd *cli.Command) error {
	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	log := newLogger(a.stderr, s.Debug)
	persistence, closeStore := openPersistence(s, log)
	defer closeStore()
	store := scores.NewStore(persistence, log)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ln, err := net.Listen("tcp", s.HTTPAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.HTTPAddr, err)
	}

	addr := ln.Addr().String()
	fmt.Fprintf(a.stderr, "Scoreboard: http://%s/api/scores\n", addr)
	fmt.Fprintf(a.stderr, "WebSocket: ws://%s/ws\n", addr)
	fmt.Fprintf(a.stderr, "MCP endpoint: http://%s/mcp\n", addr)

	return runServer(ctx, ln, newHTTPHandler(ctx, store, s.PollInterval, log), s, log)
}

// runServer serves handler on ln, plus an ngrok tunnel when enabled, and shuts
// both down when ctx is done.
func runServer(ctx context.Context, ln net.Listener, handler http.Handler, s config.Settings, log zerolog.Logger) error {
	httpServer := &http.Server{
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	log.Info().Str("addr", ln.Addr().String()).Msg("HTTP server listening")

	var wg sync.WaitGroup
	serveErr := make(chan error, 1)

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	if s.NgrokEnabled {
		wg.Add(1)
		go func() {
			defer wg.Done()
			runTunnel(ctx, handler, s, log)
		}()
	}

	var runErr error
	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down")
	case err := <-serveErr:
		runErr = fmt.Errorf("HTTP server failed: %w", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("HTTP server shutdown error")
	}

	wg.Wait()
	log.Info().Msg("server stopped")
	return runErr
}

// runTunnel serves handler through ngrok until ctx is done
func runTunnel(ctx context.Context, handler http.Handler, s config.Settings, log zerolog.Logger) {
	var tunnel ngrokConfig.Tunnel
	if s.NgrokDomain != "" {
		tunnel = ngrokConfig.HTTPEndpoint(ngrokConfig.WithDomain(s.NgrokDomain))
		log.Info().Str("domain", s.NgrokDomain).Msg("using custom ngrok domain")
	} else {
		tunnel = ngrokConfig.HTTPEndpoint()
	}

	tun, err := ngrok.Listen(ctx, tunnel, ngrok.WithAuthtoken(s.NgrokAuthtoken))
	if err != nil {
		log.Warn().Err(err).Msg("failed to start ngrok tunnel")
		return
	}

	go func() {
		<-ctx.Done()
		if err := tun.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close ngrok tunnel")
		}
	}()

	log.Info().Str("url", tun.URL()).Msg("ngrok tunnel established")
	if err := http.Serve(tun, handler); err != nil && !errors.Is(err, http.ErrServerClosed) && ctx.Err() == nil {
		log.Warn().Err(err).Msg("ngrok server error")
	}
	log.Info().Msg("ngrok tunnel closed")
}

// runMCP serves MCP over stdio, reading the local store or a remote serve command
func (a *app) runMCP(ctx context.Context, cmd *cli.Command) error {
	s, err := a.settings(cmd)
	if err != nil {
		return err
	}

	log := newLogger(a.stderr, s.Debug)

	var board mcp.Scoreboard
	if apiURL := cmd.String("api-url"); apiURL != "" {
		log.Debug().Str("api_url", apiURL).Msg("proxying scoreboard")
		board = mcp.NewRemoteScoreboard(apiURL)
	} else {
		persistence, closeStore := openPersistence(s, log)
		defer closeStore()
		board = scores.NewStore(persistence, log)
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return mcp.NewServer(board).ServeStdio(ctx, a.stdin, a.stdout)
}
