// voider-dos is a DOS-style console over a procedurally generated, partly
// encrypted directory tree. Run it locally:
//
//	go run . [-seed 4242]
//
// or dump a world to disk for browsing with ordinary tools:
//
//	go run . -seed 4242 -export ./void -reveal
package main

import (
	"flag"
	"fmt"
	"os"

	"voider-dos/internal/export"
	"voider-dos/internal/game"
	"voider-dos/internal/generate"
	"voider-dos/internal/logging"

	"github.com/gdamore/tcell/v2"
	"go.uber.org/zap"
)

var version = "dev"

func main() {
	seed := flag.Int64("seed", 0, "World seed (0 picks one at random)")
	logLevel := flag.String("log-level", envOr("VOIDER_LOG_LEVEL", "info"), "debug, info, warn or error")
	exportDir := flag.String("export", "", "Write the world to this directory and exit")
	reveal := flag.Bool("reveal", false, "With -export, use plaintext names for encrypted directories")
	hidden := flag.Bool("hidden", false, "With -export, include hidden entries")
	flag.Parse()

	if err := run(*seed, *logLevel, *exportDir, export.Options{Reveal: *reveal, Hidden: *hidden}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(seed int64, logLevel, exportDir string, exportOpts export.Options) error {
	logger := zap.NewNop()
	if path, err := logging.DefaultPath(); err == nil {
		if l, err := logging.New(logging.Config{Level: logLevel, Format: "json", OutputPath: path}); err == nil {
			logger = l
		}
	}
	defer logger.Sync()

	world, err := newWorld(seed)
	if err != nil {
		return err
	}
	logger.Info("world generated",
		zap.Int64("seed", world.Seed),
		zap.Int("dirs", world.Stats.TotalDirs),
		zap.Int("files", world.Stats.TotalFiles))

	if exportDir != "" {
		sum, err := export.Write(export.Dir(exportDir), world.Root, exportOpts)
		if err != nil {
			return fmt.Errorf("export: %w", err)
		}
		fmt.Printf("Seed %d: wrote %d directories, %d files (%d bytes) to %s\n",
			world.Seed, sum.Dirs, sum.Files, sum.Bytes, exportDir)
		return nil
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	game.New(screen, world, game.Options{
		Logger:     logger,
		Player:     os.Getenv("USER"),
		Version:    version,
		SaveRunLog: true,
	}).Run()
	return nil
}

func newWorld(seed int64) (*generate.World, error) {
	cfg := generate.DefaultConfig()
	if seed == 0 {
		return generate.GenerateRandom(cfg)
	}
	if seed < 0 {
		return nil, fmt.Errorf("invalid seed %d: want a positive integer", seed)
	}
	return generate.Generate(cfg, seed)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
