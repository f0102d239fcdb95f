package game

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"voider-dos/internal/cipher"
	"voider-dos/internal/nav"
	"voider-dos/internal/vfs"

	"github.com/mattn/go-runewidth"
	qrcode "github.com/skip2/go-qrcode"
	"go.uber.org/zap"
)

// Console limits.
const (
	MaxHistory       = 50 // commands remembered
	historyShown     = 10 // entries printed by the history command
	maxSearchResults = 30
	maxCandidates    = 10 // brute-force lines printed
	practiceText     = "VOID"
)

// helpTopic documents one command. Aliases share the topic.
type helpTopic struct {
	names []string
	usage string
	text  string
}

var helpTopics = []helpTopic{
	{[]string{"help", "?"}, "help", "Show this list"},
	{[]string{"dir", "ls"}, "dir [/a]", "List the current directory (/a shows hidden items)"},
	{[]string{"cd", "chdir"}, "cd <dir>|..|\\", "Change directory"},
	{[]string{"pwd"}, "pwd", "Print the current path"},
	{[]string{"type", "open", "cat"}, "type <file>", "Show a file (typing a file name works too)"},
	{[]string{"decode"}, "decode <cipher text> <name>", "Decrypt a directory in the current directory"},
	{[]string{"ciphers"}, "ciphers", "Describe the cipher kinds"},
	{[]string{"encrypt"}, "encrypt <kind> <text>", "Encode text with a cipher"},
	{[]string{"decrypt"}, "decrypt <kind> <text> [shift]", "Decode text with a cipher"},
	{[]string{"bruteforce"}, "bruteforce <text>", "Try every Caesar shift"},
	{[]string{"practice"}, "practice [text]", "Encode a text with every cipher"},
	{[]string{"find", "search"}, "find <term> [/d|/f]", "Search the whole tree by name"},
	{[]string{"stats"}, "stats", "Session and file system statistics"},
	{[]string{"score"}, "score", "Score breakdown"},
	{[]string{"seed"}, "seed", "Show the world seed"},
	{[]string{"history"}, "history", "Recent commands"},
	{[]string{"cls", "clear"}, "cls", "Clear the screen"},
	{[]string{"version"}, "version", "Show the version"},
	{[]string{"exit", "quit"}, "exit", "Leave the session"},
}

// commandNames lists every name and alias, sorted, for completion.
func commandNames() []string {
	var out []string
	for _, t := range helpTopics {
		out = append(out, t.names...)
	}
	sort.Strings(out)
	return out
}

// Execute runs one input line and reports whether the session should end.
// Blank lines are ignored and not recorded.
func (g *Game) Execute(input string) (quit bool) {
	input = strings.TrimSpace(input)
	if input == "" {
		return false
	}
	g.remember(input)
	g.commands++

	word, rest, _ := strings.Cut(input, " ")
	rest = strings.TrimSpace(rest)
	word = strings.ToLower(word)
	args := strings.Fields(rest)

	// DOS habit: "cd.." and "cd\".
	if strings.HasPrefix(word, "cd") && len(word) > 2 && (word[2] == '.' || word[2] == '\\') {
		rest, word = word[2:], "cd"
	}

	g.log.Debug("command", zap.String("command", word), zap.Int("args", len(args)))

	switch word {
	case "help", "?":
		g.cmdHelp()
	case "dir", "ls":
		g.cmdDir(args)
	case "cd", "chdir":
		g.cmdCd(rest)
	case "pwd":
		g.say(styleValue, g.nav.CurrentPath())
	case "type", "open", "cat":
		g.cmdType(rest)
	case "decode":
		g.cmdDecode(args)
	case "ciphers":
		g.cmdCiphers()
	case "encrypt":
		g.cmdEncrypt(args)
	case "decrypt":
		g.cmdDecrypt(args)
	case "bruteforce":
		g.cmdBruteForce(rest)
	case "practice":
		g.cmdPractice(rest)
	case "find", "search":
		g.cmdFind(args)
	case "stats":
		g.cmdStats()
	case "score":
		g.cmdScore()
	case "seed":
		g.cmdSeed()
	case "history":
		g.cmdHistory()
	case "cls", "clear":
		g.lines = g.lines[:0]
	case "version":
		g.print(styleInfo, "VOIDER DOS %s", g.version)
	case "exit", "quit":
		return true
	default:
		// A bare file name opens the file.
		if f, ok := g.nav.FindChild(input, vfs.Files).(*vfs.File); ok {
			g.cmdType(f.FullName())
			break
		}
		g.fail("Unknown command: %s. Type 'help' for the command list.", word)
	}
	g.printAwards()
	return false
}

// remember appends input to the history, dropping the oldest entries.
func (g *Game) remember(input string) {
	g.history = append(g.history, input)
	if over := len(g.history) - MaxHistory; over > 0 {
		g.history = append(g.history[:0], g.history[over:]...)
	}
	g.histPos = len(g.history)
}

func (g *Game) printAwards() {
	for _, a := range g.score.Drain() {
		g.print(styleOK, "+%d points %s", a.Points, a.Reason)
	}
}

func (g *Game) cmdHelp() {
	g.print(styleInfo, "Commands:")
	g.rule("-", 40, styleDim)
	for _, t := range helpTopics {
		usage := runewidth.FillRight(t.usage, 32)
		g.print(styleValue, "  %s %s", usage, t.text)
	}
}

func (g *Game) cmdDir(args []string) {
	showHidden := false
	for _, a := range args {
		if strings.EqualFold(a, "/a") {
			showHidden = true
		}
	}
	entries := g.nav.List(showHidden)
	g.print(styleInfo, "Contents of %s:", g.nav.CurrentPath())
	g.rule("-", 60, styleDim)

	dirs, files := 0, 0
	for _, e := range entries {
		switch {
		case e.Up:
			g.print(styleDir, "  <DIR>    ..")
		case e.Dir != nil:
			dirs++
			d := e.Dir
			switch {
			case d.Encrypted:
				g.print(styleLocked, "  [E]      %s", d.Name)
			case d.Special:
				g.print(styleSpecial, "  [S]      %s", d.Name)
			default:
				g.print(styleDir, "  <DIR>    %s", d.Name)
			}
		case e.File != nil:
			files++
			f := e.File
			prefix, style := "     ", styleText
			switch {
			case f.EasterEgg:
				prefix, style = "[E]  ", styleEgg
			case f.Special:
				prefix, style = "[S]  ", styleSpecial
			}
			name := runewidth.FillRight(f.FullName(), 25)
			g.print(style, "  %s%s %6d bytes  %s", prefix, name, f.Size, f.Modified.Format(time.DateOnly))
		}
	}
	if dirs+files == 0 {
		g.warn("Directory is empty")
		return
	}
	g.rule("-", 60, styleDim)
	g.print(styleInfo, "Directories: %d, Files: %d", dirs, files)
}

func (g *Game) cmdCd(target string) {
	res := g.nav.ChangeDirectory(target)
	if !res.OK {
		g.fail("%s", res.Message)
		return
	}
	g.say(styleInfo, res.Message)
}

func (g *Game) cmdType(name string) {
	if name == "" {
		g.warn("Usage: type <file>")
		return
	}
	f, res := g.nav.OpenFile(name)
	if !res.OK {
		g.fail("%s", res.Message)
		return
	}
	if f.EasterEgg {
		g.banner("EASTER EGG FOUND!", styleEgg)
		g.blank()
	}
	g.print(styleInfo, "File: %s", f.FullName())
	g.rule("=", 60, styleText)
	g.say(styleText, f.Content)
	g.rule("=", 60, styleText)
	g.log.Debug("file opened", zap.String("path", f.Path()), zap.Bool("easter_egg", f.EasterEgg))
}

// cmdDecode treats the last argument as the attempt and the rest as the
// cipher text, which may itself contain spaces.
func (g *Game) cmdDecode(args []string) {
	if len(args) < 2 {
		g.warn("Usage: decode <cipher text> <decrypted name>")
		return
	}
	cipherText := strings.Join(args[:len(args)-1], " ")
	attempt := args[len(args)-1]
	res := g.nav.AttemptDecrypt(cipherText, attempt)
	if !res.OK {
		g.fail("%s", res.Message)
		return
	}
	g.banner("DIRECTORY DECRYPTED!", styleOK)
	g.blank()
	g.print(styleInfo, "Access granted to directory: %s", res.Dir.Name)
	g.log.Info("directory decrypted",
		zap.String("session", g.sessionID),
		zap.String("cipher", res.Dir.Cipher.String()),
		zap.String("path", res.Dir.Path),
		zap.Bool("first", res.First))
}

func (g *Game) cmdCiphers() {
	g.print(styleInfo, "Cipher kinds:")
	for _, info := range cipher.All() {
		g.rule("-", 40, styleDim)
		g.print(styleValue, "%s (%s)", info.Name, info.Kind)
		g.print(styleText, "  %s", info.Description)
		g.print(styleText, "  Example: %s", info.Example)
		g.print(styleDim, "  Hint: %s", info.Hint)
	}
}

func (g *Game) cmdEncrypt(args []string) {
	if len(args) < 2 {
		g.warn("Usage: encrypt <kind> <text>")
		return
	}
	kind, err := cipher.ParseKind(args[0])
	if err != nil {
		g.fail("%v. Kinds: %s", err, kindList())
		return
	}
	out, key, err := g.world.Cipher.Encode(strings.Join(args[1:], " "), kind)
	if err != nil {
		g.fail("Cannot encode: %v", err)
		return
	}
	g.say(styleValue, out)
	if key.HasShift {
		g.print(styleDim, "Shift: %d", key.Shift)
	}
}

// cmdDecrypt takes an optional trailing shift for Caesar text.
func (g *Game) cmdDecrypt(args []string) {
	if len(args) < 2 {
		g.warn("Usage: decrypt <kind> <text> [shift]")
		return
	}
	kind, err := cipher.ParseKind(args[0])
	if err != nil {
		g.fail("%v. Kinds: %s", err, kindList())
		return
	}
	text := args[1:]
	key := cipher.NoKey
	if kind == cipher.Caesar && len(text) > 1 {
		if n, err := strconv.Atoi(text[len(text)-1]); err == nil {
			key = cipher.ShiftKey(n)
			text = text[:len(text)-1]
		}
	}
	out, err := cipher.Decode(strings.Join(text, " "), kind, key)
	switch {
	case errors.Is(err, cipher.ErrShiftRequired):
		g.warn("Caesar needs a shift: decrypt caesar <text> <shift>, or try bruteforce <text>")
	case err != nil:
		g.fail("Cannot decode: %v", err)
	default:
		g.say(styleValue, out)
	}
}

func (g *Game) cmdBruteForce(text string) {
	if text == "" {
		g.warn("Usage: bruteforce <text>")
		return
	}
	cands := cipher.BruteForceCaesar(text)
	if len(cands) == 0 {
		g.warn("No readable candidates")
		return
	}
	g.print(styleInfo, "Shift  Confidence  Text")
	for _, c := range cands[:min(len(cands), maxCandidates)] {
		g.print(styleText, "%5d  %9.0f%%  %s", c.Shift, c.Confidence*100, c.Text)
	}
}

func (g *Game) cmdPractice(text string) {
	if text == "" {
		text = practiceText
	}
	g.print(styleInfo, "Practice text: %s", text)
	for _, s := range g.world.Cipher.Practice(text) {
		label := runewidth.FillRight(cipher.Describe(s.Kind).Name, 8)
		switch {
		case s.Err != nil:
			g.print(styleDim, "  %s (cannot encode: %v)", label, s.Err)
		case s.Key.HasShift:
			g.print(styleValue, "  %s %s  (shift %d)", label, s.Text, s.Key.Shift)
		default:
			g.print(styleValue, "  %s %s", label, s.Text)
		}
	}
}

func (g *Game) cmdFind(args []string) {
	kind := vfs.Any
	var terms []string
	for _, a := range args {
		switch strings.ToLower(a) {
		case "/d":
			kind = vfs.Dirs
		case "/f":
			kind = vfs.Files
		default:
			terms = append(terms, a)
		}
	}
	if len(terms) == 0 {
		g.warn("Usage: find <term> [/d|/f]")
		return
	}
	term := strings.Join(terms, " ")
	matches := g.nav.Search(term, kind)
	if len(matches) == 0 {
		g.warn("Nothing matches '%s'", term)
		return
	}
	g.print(styleInfo, "Found %d:", len(matches))
	for _, m := range matches[:min(len(matches), maxSearchResults)] {
		g.printMatch(m)
	}
	if extra := len(matches) - maxSearchResults; extra > 0 {
		g.print(styleDim, "... and %d more", extra)
	}
}

// printMatch never shows the plaintext name of a directory that is still
// encrypted.
func (g *Game) printMatch(m nav.Match) {
	switch {
	case m.Dir && m.Encrypted:
		g.print(styleLocked, "  [E]    %s", m.Path)
	case m.Dir:
		g.print(styleDir, "  <DIR>  %s", m.Path)
	default:
		g.print(styleText, "         %s (%d bytes)", m.Path, m.Size)
	}
}

func (g *Game) cmdStats() {
	s := g.nav.Stats()
	g.print(styleInfo, "Session statistics:")
	g.rule("-", 40, styleDim)
	g.print(styleText, "System seed:       %d", s.Seed)
	g.print(styleText, "Duration:          %s", clock(g.elapsed()))
	g.print(styleText, "Commands executed: %d", g.commands)
	g.print(styleText, "Current path:      %s", s.CurrentPath)
	g.print(styleText, "Items here:        %d", s.Items)
	g.blank()
	g.print(styleText, "File system:")
	g.print(styleText, "  Directories:           %d", s.TotalDirs)
	g.print(styleText, "  Files:                 %d", s.TotalFiles)
	g.print(styleText, "  Encrypted directories: %d", s.EncryptedDirs)
	g.print(styleText, "  Special items:         %d", s.SpecialItems)
	g.print(styleEgg, "  Easter eggs:           %d", s.EasterEggs)
}

func (g *Game) cmdScore() {
	s := g.score
	g.print(styleInfo, "Score: %d", s.Total)
	g.rule("-", 40, styleDim)
	g.print(styleText, "Directories decrypted: %d", s.Decrypted)
	g.print(styleText, "Files opened:          %d", s.Opened)
	g.print(styleText, "Special files:         %d", s.Specials)
	g.print(styleEgg, "Easter eggs found:     %d", s.EasterEggs)
}

func (g *Game) cmdSeed() {
	seed := strconv.FormatInt(g.world.Seed, 10)
	g.print(styleInfo, "Current seed: %s", seed)
	q, err := qrcode.New(seed, qrcode.Medium)
	if err != nil {
		g.log.Warn("seed qr", zap.Error(err))
		return
	}
	g.say(styleText, strings.TrimRight(q.ToString(false), "\n"))
}

func (g *Game) cmdHistory() {
	g.print(styleInfo, "Command history (%d):", len(g.history))
	g.rule("-", 40, styleDim)
	start := max(len(g.history)-historyShown, 0)
	for i, h := range g.history[start:] {
		g.print(styleDim, "%3d. %s", start+i+1, h)
	}
	if start > 0 {
		g.print(styleDim, "... and %d more", start)
	}
}

func kindList() string {
	names := make([]string, len(cipher.Kinds))
	for i, k := range cipher.Kinds {
		names[i] = k.String()
	}
	return strings.Join(names, ", ")
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	secs := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", secs/60, secs%60)
}
