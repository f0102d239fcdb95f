// voider-server serves VOIDER DOS over SSH: one independent console per
// connection. Build:
//
//	go build -o voider-server ./cmd/server
//
// Usage:
//
//	./voider-server [-port 2222] [-key server_host_key] [-metrics-addr :9102]
//
// Connect, optionally replaying a world by seed:
//
//	ssh -t -p 2222 localhost
//	ssh -t -p 2222 localhost 424242
package main

import (
	"context"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"
	"unicode"
	"unicode/utf8"

	"voider-dos/internal/game"
	"voider-dos/internal/generate"
	"voider-dos/internal/logging"
	"voider-dos/internal/metrics"
	"voider-dos/internal/remote"

	gossh "github.com/gliderlabs/ssh"
	"github.com/google/uuid"
	"go.uber.org/zap"
	xssh "golang.org/x/crypto/ssh"
)

var version = "dev"

// maxNameBytes bounds the player name taken from the SSH user.
const maxNameBytes = 16

// defaultTerm replaces a TERM value outside allowedTerms.
const defaultTerm = "xterm-256color"

// allowedTerms is the set of TERM values handed to terminfo. Anything else
// falls back to defaultTerm.
var allowedTerms = map[string]bool{
	"xterm":                 true,
	"xterm-256color":        true,
	"xterm-color":           true,
	"screen":                true,
	"screen-256color":       true,
	"tmux":                  true,
	"tmux-256color":         true,
	"linux":                 true,
	"vt100":                 true,
	"vt220":                 true,
	"rxvt-unicode":          true,
	"rxvt-unicode-256color": true,
	"alacritty":             true,
}

func main() {
	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		os.Exit(2)
	}

	logger, err := logging.New(logging.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := run(cfg, logger); err != nil {
		logger.Fatal("server stopped", zap.Error(err))
	}
}

func run(cfg config, logger *zap.Logger) error {
	signer, err := loadOrCreateHostKey(cfg.HostKey, logger)
	if err != nil {
		return err
	}

	s := newServer(cfg, logger)
	srv := &gossh.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: s.handleSession,
		// Accept PTY requests from any client.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: the SSH user only names the player.
		HostSigners: []gossh.Signer{signer},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var metricsSrv *http.Server
	if cfg.MetricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", metrics.Handler())
		metricsSrv = &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           logging.Middleware(logger, mux),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logger.Info("metrics listening", zap.String("addr", cfg.MetricsAddr))
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("ssh listening",
			zap.Int("port", cfg.Port),
			zap.Int("max_sessions", cfg.MaxSessions),
			zap.String("version", version))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, gossh.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("ssh server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if metricsSrv != nil {
		_ = metricsSrv.Shutdown(shutdownCtx)
	}
	if err := srv.Shutdown(shutdownCtx); err != nil && !errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("ssh shutdown: %w", err)
	}
	return nil
}

// server runs one game per SSH session, up to a fixed number at once.
type server struct {
	cfg   config
	log   *zap.Logger
	slots chan struct{}
	world generate.Config
}

func newServer(cfg config, logger *zap.Logger) *server {
	return &server{
		cfg:   cfg,
		log:   logger,
		slots: make(chan struct{}, cfg.MaxSessions),
		world: generate.DefaultConfig(),
	}
}

// handleSession is the gliderlabs SSH handler for one connection. It blocks
// for the duration of the game so the SSH session stays open.
func (srv *server) handleSession(s gossh.Session) {
	select {
	case srv.slots <- struct{}{}:
		defer func() { <-srv.slots }()
	default:
		metrics.SessionRejected()
		fmt.Fprintln(s, "The void is full. Try again in a few minutes.")
		_ = s.Exit(1)
		return
	}

	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintf(s, "VOIDER DOS needs a terminal. Connect with: ssh -t -p %d <host> [seed]\n", srv.cfg.Port)
		_ = s.Exit(1)
		return
	}

	world, err := srv.worldFor(s.Command())
	if err != nil {
		fmt.Fprintf(s, "%v\n", err)
		_ = s.Exit(1)
		return
	}

	sessionID := uuid.NewString()
	player := sanitizeName(s.User())
	log := srv.log.With(
		zap.String("session", sessionID),
		zap.String("player", player),
		zap.String("remote", s.RemoteAddr().String()))

	term := termFor(s.Environ(), pty.Term)
	screen, err := remote.NewScreen(remote.NewTTY(s, pty, winCh), term)
	if err != nil {
		log.Warn("screen setup failed", zap.String("term", term), zap.Error(err))
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		_ = s.Exit(1)
		return
	}

	// A dropped connection unblocks PollEvent.
	go func() {
		<-s.Context().Done()
		screen.Fini()
	}()

	g := game.New(screen, world, game.Options{
		Logger:     log,
		Listener:   metrics.Listener{},
		SessionID:  sessionID,
		Player:     player,
		Version:    version,
		SaveRunLog: srv.cfg.RunLog,
	})

	metrics.SessionStarted()
	start := time.Now()
	g.Run()
	metrics.SessionFinished(time.Since(start), g.Score().Total)
	_ = s.Exit(0)
}

// worldFor builds the world named by the SSH command: a seed, or nothing for
// a random one.
func (srv *server) worldFor(command []string) (*generate.World, error) {
	start := time.Now()
	var (
		world *generate.World
		err   error
	)
	switch len(command) {
	case 0:
		world, err = generate.GenerateRandom(srv.world)
	case 1:
		seed, perr := parseSeed(command[0])
		if perr != nil {
			return nil, perr
		}
		world, err = generate.Generate(srv.world, seed)
	default:
		return nil, fmt.Errorf("usage: ssh -t -p %d <host> [seed]", srv.cfg.Port)
	}
	if err != nil {
		srv.log.Error("world generation failed", zap.Error(err))
		return nil, errors.New("world generation failed")
	}
	metrics.RecordWorld(*world.Stats, time.Since(start))
	srv.log.Debug("world generated",
		zap.Int64("seed", world.Seed),
		zap.Int("dirs", world.Stats.TotalDirs),
		zap.Duration("took", time.Since(start)))
	return world, nil
}

func parseSeed(s string) (int64, error) {
	seed, err := strconv.ParseInt(s, 10, 64)
	if err != nil || seed < 1 {
		return 0, fmt.Errorf("invalid seed %q: want a positive integer", s)
	}
	return seed, nil
}

// termFor picks the terminal type from the session environment, then the
// PTY request, falling back to defaultTerm for anything unknown.
func termFor(environ []string, ptyTerm string) string {
	term := ptyTerm
	for _, env := range environ {
		if v, ok := strings.CutPrefix(env, "TERM="); ok {
			term = v
			break
		}
	}
	if !allowedTerms[term] {
		return defaultTerm
	}
	return term
}

// sanitizeName drops control characters from an SSH user name and truncates
// it to maxNameBytes without splitting a rune.
func sanitizeName(name string) string {
	var b strings.Builder
	for _, r := range name {
		if unicode.IsControl(r) || r == utf8.RuneError {
			continue
		}
		if b.Len()+utf8.RuneLen(r) > maxNameBytes {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// loadOrCreateHostKey loads a PEM private key from path, or generates and
// persists a new ed25519 key if the file is absent or unreadable.
func loadOrCreateHostKey(path string, logger *zap.Logger) (gossh.Signer, error) {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			logger.Info("loaded host key", zap.String("path", path))
			return signer, nil
		}
	}

	logger.Info("generating ed25519 host key", zap.String("path", path))
	_, key, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, fmt.Errorf("generate host key: %w", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		return nil, fmt.Errorf("create signer: %w", err)
	}
	// Persisting is best effort; the next start generates a fresh key.
	pemBlock, err := xssh.MarshalPrivateKey(key, "voider-dos server")
	if err == nil {
		err = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0o600)
	}
	if err != nil {
		logger.Warn("host key not saved", zap.String("path", path), zap.Error(err))
	}
	return signer, nil
}
