package generate

import (
	"fmt"
	"strconv"
	"strings"

	"voider-dos/assets"
	"voider-dos/internal/vfs"
)

// content fills a template for ext. Every placeholder value is drawn whether
// or not the chosen template uses it, which keeps the draw count per file
// independent of the template.
func (g *generator) content(stem, ext string) string {
	ft, ok := g.cfg.FileTypes[ext]
	if !ok {
		ft = g.cfg.FileTypes[assets.FallbackExtension]
	}
	tmpl := g.pick(ft.Templates)

	date := g.timestamp().Format(vfs.TimeLayout)
	major := g.between(1, 9)
	minor := g.between(0, 9)
	code := g.between(1000, 9999)
	var bits strings.Builder
	for range 16 {
		bits.WriteByte("01"[g.rng.Intn(2)])
	}
	id := g.between(10000, 99999)
	w := g.cfg.Words
	feature := g.pick(w.Features)
	value := g.pick(w.Values)
	setting := g.pick(w.SettingNames)
	level := g.pick(w.LogLevels)
	message := g.pick(w.LogMessages)
	inline := g.pick(ft.Variants)

	r := strings.NewReplacer(
		"{filename}", stem+ext,
		"{date}", date,
		"{version}", fmt.Sprintf("%d.%d", major, minor),
		"{code}", strconv.Itoa(code),
		"{time}", strconv.FormatInt(g.cfg.Epoch.Unix(), 10),
		"{binary}", bits.String(),
		"{id}", strconv.Itoa(id),
		"{feature}", feature,
		"{value}", value,
		"{name}", setting,
		"{timestamp}", g.cfg.Epoch.Format(vfs.TimeLayout),
		"{level}", level,
		"{message}", message,
		"{content}", inline,
	)
	body := r.Replace(tmpl)

	if g.chance(g.cfg.ExtraContentChance) {
		body += "\n" + g.pick(ft.Variants)
	}
	return body
}
