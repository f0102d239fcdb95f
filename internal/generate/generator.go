// Package generate builds a complete fake file system from a seed. Every draw
// comes from one *rand.Rand created at the start of Generate, in a fixed
// depth-first order, so a seed and a Config fully determine the tree.
package generate

import (
	"fmt"
	"math/rand"
	"strconv"
	"time"

	"voider-dos/internal/cipher"
	"voider-dos/internal/vfs"
)

// MaxRandomSeed bounds the seeds picked by GenerateRandom.
const MaxRandomSeed = 999999

// World is one generated tree plus the state a session keeps using.
type World struct {
	Root     *vfs.Directory
	Seed     int64
	MaxDepth int // depth limit drawn for this tree
	Stats    *vfs.Stats

	// Rand continues the generation stream. Cipher draws from it too.
	Rand   *rand.Rand
	Cipher *cipher.Engine
}

// Generate builds the whole tree for seed.
func Generate(cfg Config, seed int64) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	rng := rand.New(rand.NewSource(seed))
	eng, err := cipher.NewEngine(rng, cfg.Cipher)
	if err != nil {
		return nil, fmt.Errorf("generate: %w", err)
	}
	g := &generator{
		cfg:    &cfg,
		rng:    rng,
		eng:    eng,
		stats:  &vfs.Stats{},
		binary: make(map[string]bool, len(cfg.BinaryExtensions)),
	}
	for _, ext := range cfg.BinaryExtensions {
		g.binary[ext] = true
	}

	root := vfs.NewRoot(cfg.Epoch)
	system := g.systemDirs(root)
	g.maxDepth = g.between(cfg.MinDepth, cfg.MaxDepth)
	for _, d := range system {
		if err := g.expand(d, 1); err != nil {
			return nil, fmt.Errorf("generate: %w", err)
		}
	}

	return &World{
		Root:     root,
		Seed:     seed,
		MaxDepth: g.maxDepth,
		Stats:    g.stats,
		Rand:     rng,
		Cipher:   eng,
	}, nil
}

// GenerateRandom picks a seed in 1..MaxRandomSeed from the clock and builds
// the tree for it. The seed is returned in World.Seed so it can be replayed.
func GenerateRandom(cfg Config) (*World, error) {
	seed := rand.New(rand.NewSource(time.Now().UnixNano())).Int63n(MaxRandomSeed) + 1
	return Generate(cfg, seed)
}

type generator struct {
	cfg      *Config
	rng      *rand.Rand
	eng      *cipher.Engine
	stats    *vfs.Stats
	maxDepth int
	binary   map[string]bool
}

// between returns an int in [lo, hi].
func (g *generator) between(lo, hi int) int {
	return lo + g.rng.Intn(hi-lo+1)
}

func (g *generator) chance(p float64) bool {
	return g.rng.Float64() < p
}

func (g *generator) pick(pool []string) string {
	return pool[g.rng.Intn(len(pool))]
}

func (g *generator) timestamp() time.Time {
	return g.cfg.Epoch.AddDate(0, 0, -g.between(1, g.cfg.MaxAgeDays))
}

// systemDirs creates the fixed top-level directories. They are populated but
// never encrypted.
func (g *generator) systemDirs(root *vfs.Directory) []*vfs.Directory {
	out := make([]*vfs.Directory, 0, len(g.cfg.SystemDirs))
	for _, sd := range g.cfg.SystemDirs {
		created := g.timestamp()
		modified := g.timestamp()
		d := vfs.NewDirectory(sd.Name, created, modified)
		d.Special = sd.Special
		d.Hidden = sd.Hidden
		d.System = true
		root.AddChild(d)
		g.addFiles(d, true)
		g.stats.AddDir(d)
		out = append(out, d)
	}
	return out
}

// expand fills parent, which sits at depth, with subdirectories. Each attempt
// creates a directory with CreateDirChance; a created directory is populated
// and, while there is room below it, expanded with RecurseChance.
func (g *generator) expand(parent *vfs.Directory, depth int) error {
	if depth >= g.maxDepth {
		return nil
	}
	attempts := g.between(g.cfg.MinDirs, g.cfg.MaxDirs)
	for range attempts {
		if !g.chance(g.cfg.CreateDirChance) {
			continue
		}
		d, err := g.newDir(parent)
		if err != nil {
			return err
		}
		g.addFiles(d, false)
		if depth < g.maxDepth-1 && g.chance(g.cfg.RecurseChance) {
			if err := g.expand(d, depth+1); err != nil {
				return err
			}
		}
	}
	return nil
}

// newDir creates, optionally encrypts, and attaches one directory. Its
// plaintext and cipher text are unique among the parent's directories,
// ignoring case. Encryption happens before AddChild so the path is built from
// the cipher text.
func (g *generator) newDir(parent *vfs.Directory) (*vfs.Directory, error) {
	name := g.uniqueName(parent, g.dirName())
	created := g.timestamp()
	modified := g.timestamp()
	d := vfs.NewDirectory(name, created, modified)
	d.Special = g.chance(g.cfg.SpecialDirChance)

	if g.chance(g.cfg.EncryptChance) {
		for attempt := 1; ; attempt++ {
			kind := g.eng.Choose()
			text, key, err := g.eng.Encode(d.Name, kind)
			if err != nil {
				return nil, fmt.Errorf("encrypt %q: %w", d.Name, err)
			}
			if !parent.DirNameTaken(text) {
				d.Encrypt(kind, text, key)
				break
			}
			// A fixed cipher maps the same name to the same text, so after a
			// few redraws the name itself changes.
			if attempt%maxCipherDraws == 0 {
				d.Name = g.uniqueName(parent, d.Name+g.nameSuffix())
			}
		}
	}

	parent.AddChild(d)
	g.stats.AddDir(d)
	return d, nil
}

// maxCipherDraws bounds the cipher redraws for one name when the cipher text
// collides with a sibling.
const maxCipherDraws = 4

// uniqueName returns name, extended with drawn suffixes until no directory
// in parent answers to it.
func (g *generator) uniqueName(parent *vfs.Directory, name string) string {
	for parent.DirNameTaken(name) {
		name += g.nameSuffix()
	}
	return name
}

func (g *generator) nameSuffix() string {
	return strconv.Itoa(g.between(1, 99))
}

// dirName draws either a pool name (System, Logs7) or a technical one
// (DATA, MOD_412, SEC_V3, DIR_BETA). All technical suffix numbers are drawn
// before the suffix is picked.
func (g *generator) dirName() string {
	if g.chance(g.cfg.PoolNameChance) {
		name := g.pick(g.cfg.DirNames)
		if g.chance(g.cfg.PoolNumberChance) {
			name += strconv.Itoa(g.between(1, 99))
		}
		return name
	}
	num := "_" + strconv.Itoa(g.between(1, 999))
	version := "_V" + strconv.Itoa(g.between(1, 9))
	word := "_" + g.pick(g.cfg.TechWords)
	suffixes := []string{"", num, version, word}
	prefix := g.pick(g.cfg.TechPrefixes)
	return prefix + suffixes[g.rng.Intn(len(suffixes))]
}

func (g *generator) addFiles(d *vfs.Directory, system bool) {
	n := g.between(g.cfg.MinFiles, g.cfg.MaxFiles)
	for range n {
		f := g.newFile(system)
		d.AddChild(f)
		g.stats.AddFile(f)
	}
}

func (g *generator) newFile(system bool) *vfs.File {
	var name string
	if system {
		name = g.pick(g.cfg.SystemFileNames)
	} else {
		name = g.pick(g.cfg.FileNames)
		if g.chance(g.cfg.FileDigitChance) {
			name += strconv.Itoa(g.between(1, 9))
		}
	}
	ext := g.pick(g.cfg.Extensions)
	content := g.content(name, ext)
	size := len(content) + g.between(0, g.cfg.MaxPadding)

	easter := g.chance(g.cfg.EasterEggChance)
	special := g.chance(g.cfg.SpecialFileChance)
	hidden := g.chance(g.cfg.HiddenFileChance)
	created := g.timestamp()
	modified := g.timestamp()

	return &vfs.File{
		Name:       name,
		Extension:  ext,
		Content:    content,
		Size:       size,
		Created:    created,
		Modified:   modified,
		EasterEgg:  easter,
		Special:    special,
		Hidden:     hidden,
		Binary:     g.binary[ext],
		ScoreValue: vfs.FileScore(easter, special),
	}
}
