// Package game is the interactive console: a DOS-style prompt drawn with
// tcell over one generated world.
package game

import (
	"time"

	"voider-dos/internal/generate"
	"voider-dos/internal/nav"

	"github.com/gdamore/tcell/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxInput is the longest line the prompt accepts, in runes.
const maxInput = 256

// Options configures a session. The zero value is usable.
type Options struct {
	Logger    *zap.Logger
	Listener  nav.Listener // notified alongside the score, e.g. metrics
	SessionID string       // generated when empty
	Player    string       // shown in the greeting and the run log
	Version   string

	// SaveRunLog appends a RunLog line when the session ends.
	SaveRunLog bool

	// Now is the clock used for session duration.
	Now func() time.Time
}

// Game is one console session.
type Game struct {
	screen    tcell.Screen
	world     *generate.World
	nav       *nav.Navigator
	score     *Score
	log       *zap.Logger
	sessionID string
	player    string
	version   string
	saveLog   bool
	now       func() time.Time
	started   time.Time

	lines    []line
	scroll   int // rows scrolled back from the bottom
	input    []rune
	history  []string
	histPos  int
	commands int
	quit     bool
}

// New binds a console to an initialised screen and a world. The caller owns
// the world; the session owns the screen and finalises it when Run returns.
func New(screen tcell.Screen, world *generate.World, opts Options) *Game {
	g := &Game{
		screen:    screen,
		world:     world,
		score:     &Score{},
		log:       opts.Logger,
		sessionID: opts.SessionID,
		player:    opts.Player,
		version:   opts.Version,
		saveLog:   opts.SaveRunLog,
		now:       opts.Now,
	}
	if g.log == nil {
		g.log = zap.NewNop()
	}
	if g.sessionID == "" {
		g.sessionID = uuid.NewString()
	}
	if g.version == "" {
		g.version = "dev"
	}
	if g.now == nil {
		g.now = time.Now
	}
	g.nav = nav.New(world, nav.Multi(g.score, opts.Listener))
	g.started = g.now()
	g.welcome()
	return g
}

// Score returns the session tally.
func (g *Game) Score() *Score { return g.score }

// Navigator exposes the cursor into the world.
func (g *Game) Navigator() *nav.Navigator { return g.nav }

// SessionID identifies the session in logs and the run log.
func (g *Game) SessionID() string { return g.sessionID }

func (g *Game) welcome() {
	g.banner("THE DARK VOID OF DOS AWAITS...", styleInfo)
	g.blank()
	if g.player != "" {
		g.print(styleOK, "Welcome, %s.", g.player)
	}
	g.print(styleOK, "New game session started!")
	g.print(styleValue, "System seed: %d", g.world.Seed)
	g.print(styleInfo, "Type 'help' for the command list, 'exit' to leave.")
	g.blank()
}

// Run is the input loop. It returns when the player exits or the screen
// stops delivering events.
func (g *Game) Run() {
	defer g.screen.Fini()
	g.log.Info("session started",
		zap.String("session", g.sessionID),
		zap.Int64("seed", g.world.Seed))

	for !g.quit {
		g.draw()
		ev := g.screen.PollEvent()
		switch ev := ev.(type) {
		case nil:
			g.finish()
			return
		case *tcell.EventResize:
			g.screen.Sync()
		case *tcell.EventKey:
			g.handleKey(ev)
		}
	}

	g.finish()
	g.print(styleDim, "Press any key to leave.")
	g.draw()
	for {
		switch g.screen.PollEvent().(type) {
		case nil, *tcell.EventKey:
			return
		}
	}
}

func (g *Game) elapsed() time.Duration { return g.now().Sub(g.started) }

// finish prints the session summary, logs it and writes the run log.
func (g *Game) finish() {
	rl := g.RunLog()
	stats := g.nav.Stats()

	g.blank()
	g.rule("=", bannerWidth, styleInfo)
	g.print(styleInfo, "SESSION SUMMARY")
	g.rule("=", bannerWidth, styleInfo)
	g.print(styleText, "Duration:          %s", clock(g.elapsed()))
	g.print(styleText, "Commands executed: %d", g.commands)
	g.print(styleOK, "Points earned:     %d", g.score.Total)
	g.blank()
	g.print(styleText, "Explored:")
	g.print(styleText, "  Directories decrypted: %d/%d", g.score.Decrypted, g.score.Decrypted+stats.EncryptedDirs)
	g.print(styleText, "  Files opened:          %d", g.score.Opened)
	g.print(styleEgg, "  Easter eggs found:     %d/%d", g.score.EasterEggs, stats.EasterEggs)
	g.rule("=", bannerWidth, styleInfo)

	g.log.Info("session finished",
		zap.String("session", g.sessionID),
		zap.Int64("seed", rl.Seed),
		zap.Int("score", rl.Score),
		zap.Int("commands", rl.Commands),
		zap.Duration("duration", g.elapsed()))

	if g.saveLog {
		if err := saveRunLog(rl); err != nil {
			g.log.Warn("run log not saved", zap.Error(err))
		}
	}
}
