package game

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// appName names the per-user data directory.
const appName = "voider-dos"

// RunLog records one finished session.
type RunLog struct {
	SessionID       string
	Player          string
	Seed            int64
	Started         time.Time
	DurationSeconds int
	Commands        int
	Score           int
	Decrypted       int
	FilesOpened     int
	EasterEggs      int
	FinalPath       string
}

// RunLog snapshots the session so far.
func (g *Game) RunLog() RunLog {
	return RunLog{
		SessionID:       g.sessionID,
		Player:          g.player,
		Seed:            g.world.Seed,
		Started:         g.started.UTC(),
		DurationSeconds: int(g.elapsed().Seconds()),
		Commands:        g.commands,
		Score:           g.score.Total,
		Decrypted:       g.score.Decrypted,
		FilesOpened:     g.score.Opened,
		EasterEggs:      g.score.EasterEggs,
		FinalPath:       g.nav.CurrentPath(),
	}
}

// saveRunLog appends the session as a single JSON line to runs.jsonl. The
// caller only logs a failure; a disk problem never ends a session.
func saveRunLog(log RunLog) error {
	dir, err := runLogDir()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create run log dir: %w", err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "runs.jsonl"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open run log: %w", err)
	}
	defer f.Close()

	data, err := json.Marshal(log)
	if err != nil {
		return err
	}
	_, err = f.Write(append(data, '\n'))
	return err
}

// runLogDir follows the XDG Base Directory spec: $XDG_DATA_HOME/voider-dos,
// defaulting to ~/.local/share/voider-dos.
func runLogDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, appName), nil
}
