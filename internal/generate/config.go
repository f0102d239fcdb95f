package generate

import (
	"fmt"
	"time"

	"voider-dos/assets"
	"voider-dos/internal/cipher"
)

// Words are the placeholder pools used when filling content templates.
type Words struct {
	Features     []string
	Values       []string
	SettingNames []string
	LogLevels    []string
	LogMessages  []string
}

// Config drives generation of one tree. Ranges are inclusive and every
// probability is in [0, 1].
type Config struct {
	MinDepth, MaxDepth int
	MinDirs, MaxDirs   int // creation attempts per level
	MinFiles, MaxFiles int

	CreateDirChance    float64
	RecurseChance      float64
	EncryptChance      float64
	SpecialDirChance   float64
	PoolNameChance     float64 // readable pool name instead of a technical one
	PoolNumberChance   float64 // append 1-99 to a pool name
	FileDigitChance    float64 // append 1-9 to a file stem
	EasterEggChance    float64
	SpecialFileChance  float64
	HiddenFileChance   float64
	ExtraContentChance float64

	MaxPadding int // extra bytes added to a file's size, 0..MaxPadding
	MaxAgeDays int // timestamps fall 1..MaxAgeDays days before Epoch
	Epoch      time.Time

	DirNames         []string
	TechPrefixes     []string
	TechWords        []string
	FileNames        []string
	SystemFileNames  []string
	Extensions       []string
	BinaryExtensions []string
	SystemDirs       []assets.SystemDir
	FileTypes        map[string]assets.FileType
	Words            Words

	Cipher cipher.Config
}

// DefaultEpoch anchors generated timestamps so a seed always yields the same
// dates.
var DefaultEpoch = time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

// DefaultConfig returns the classic generation parameters with word pools
// copied from assets.
func DefaultConfig() Config {
	return Config{
		MinDepth: 3, MaxDepth: 12,
		MinDirs: 2, MaxDirs: 6,
		MinFiles: 1, MaxFiles: 5,

		CreateDirChance:    0.7,
		RecurseChance:      0.6,
		EncryptChance:      0.4,
		SpecialDirChance:   0.1,
		PoolNameChance:     0.3,
		PoolNumberChance:   0.4,
		FileDigitChance:    0.3,
		EasterEggChance:    0.05,
		SpecialFileChance:  0.1,
		HiddenFileChance:   0.15,
		ExtraContentChance: 0.5,

		MaxPadding: 1024,
		MaxAgeDays: 3 * 365,
		Epoch:      DefaultEpoch,

		DirNames:         clone(assets.DirectoryNames),
		TechPrefixes:     clone(assets.TechPrefixes),
		TechWords:        clone(assets.TechWords),
		FileNames:        clone(assets.FileNames),
		SystemFileNames:  clone(assets.SystemFileNames),
		Extensions:       clone(assets.Extensions),
		BinaryExtensions: clone(assets.BinaryExtensions),
		SystemDirs:       clone(assets.SystemDirs),
		FileTypes:        cloneFileTypes(assets.FileTypes),
		Words: Words{
			Features:     clone(assets.Features),
			Values:       clone(assets.Values),
			SettingNames: clone(assets.SettingNames),
			LogLevels:    clone(assets.LogLevels),
			LogMessages:  clone(assets.LogMessages),
		},

		Cipher: cipher.DefaultConfig(),
	}
}

func clone[T any](s []T) []T {
	return append([]T(nil), s...)
}

func cloneFileTypes(m map[string]assets.FileType) map[string]assets.FileType {
	out := make(map[string]assets.FileType, len(m))
	for ext, ft := range m {
		out[ext] = assets.FileType{Templates: clone(ft.Templates), Variants: clone(ft.Variants)}
	}
	return out
}

// Validate reports the first problem that would make generation panic or
// misbehave.
func (c *Config) Validate() error {
	ranges := []struct {
		name   string
		lo, hi int
		floor  int
	}{
		{"depth", c.MinDepth, c.MaxDepth, 1},
		{"dirs per level", c.MinDirs, c.MaxDirs, 0},
		{"files per dir", c.MinFiles, c.MaxFiles, 0},
	}
	for _, r := range ranges {
		if r.lo < r.floor {
			return fmt.Errorf("%s: minimum %d is below %d", r.name, r.lo, r.floor)
		}
		if r.lo > r.hi {
			return fmt.Errorf("%s: range %d..%d is inverted", r.name, r.lo, r.hi)
		}
	}

	probs := []struct {
		name string
		p    float64
	}{
		{"create dir chance", c.CreateDirChance},
		{"recurse chance", c.RecurseChance},
		{"encrypt chance", c.EncryptChance},
		{"special dir chance", c.SpecialDirChance},
		{"pool name chance", c.PoolNameChance},
		{"pool number chance", c.PoolNumberChance},
		{"file digit chance", c.FileDigitChance},
		{"easter egg chance", c.EasterEggChance},
		{"special file chance", c.SpecialFileChance},
		{"hidden file chance", c.HiddenFileChance},
		{"extra content chance", c.ExtraContentChance},
	}
	for _, p := range probs {
		if p.p < 0 || p.p > 1 {
			return fmt.Errorf("%s: %v is outside [0, 1]", p.name, p.p)
		}
	}

	if c.MaxPadding < 0 {
		return fmt.Errorf("max padding: %d is negative", c.MaxPadding)
	}
	if c.MaxAgeDays < 1 {
		return fmt.Errorf("max age: %d days is below 1", c.MaxAgeDays)
	}

	pools := []struct {
		name string
		n    int
	}{
		{"directory names", len(c.DirNames)},
		{"technical prefixes", len(c.TechPrefixes)},
		{"technical words", len(c.TechWords)},
		{"file names", len(c.FileNames)},
		{"system file names", len(c.SystemFileNames)},
		{"extensions", len(c.Extensions)},
		{"features", len(c.Words.Features)},
		{"values", len(c.Words.Values)},
		{"setting names", len(c.Words.SettingNames)},
		{"log levels", len(c.Words.LogLevels)},
		{"log messages", len(c.Words.LogMessages)},
	}
	for _, p := range pools {
		if p.n == 0 {
			return fmt.Errorf("%s: pool is empty", p.name)
		}
	}

	if _, ok := c.FileTypes[assets.FallbackExtension]; !ok {
		return fmt.Errorf("file types: no %s fallback", assets.FallbackExtension)
	}
	for ext, ft := range c.FileTypes {
		if len(ft.Templates) == 0 || len(ft.Variants) == 0 {
			return fmt.Errorf("file type %s: needs at least one template and one variant", ext)
		}
	}

	if err := c.Cipher.Validate(); err != nil {
		return fmt.Errorf("cipher: %w", err)
	}
	return nil
}
