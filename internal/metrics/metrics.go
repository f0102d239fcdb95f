// Package metrics provides Prometheus metrics for the VOIDER DOS server.
package metrics

import (
	"net/http"
	"time"

	"voider-dos/internal/vfs"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Session metrics
	sessionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voider_sessions_total",
			Help: "Total number of sessions by outcome",
		},
		[]string{"result"},
	)

	sessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "voider_sessions_active",
			Help: "Number of sessions currently playing",
		},
	)

	sessionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voider_session_duration_seconds",
			Help:    "Session length in seconds",
			Buckets: []float64{10, 30, 60, 300, 600, 1800, 3600},
		},
	)

	sessionScore = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voider_session_score",
			Help:    "Points earned per finished session",
			Buckets: prometheus.ExponentialBuckets(10, 2, 10),
		},
	)

	// World generation metrics
	worldsGenerated = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "voider_worlds_generated_total",
			Help: "Total number of generated file systems",
		},
	)

	worldGenerationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "voider_world_generation_duration_seconds",
			Help:    "Time to generate one file system",
			Buckets: prometheus.DefBuckets,
		},
	)

	worldNodes = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "voider_world_nodes",
			Help:    "Nodes per generated file system",
			Buckets: prometheus.ExponentialBuckets(8, 2, 10),
		},
		[]string{"kind"},
	)

	// Gameplay metrics
	decryptionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voider_decryptions_total",
			Help: "Successful directory decryptions by cipher",
		},
		[]string{"cipher"},
	)

	filesOpenedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "voider_files_opened_total",
			Help: "Files opened by rarity",
		},
		[]string{"rarity"},
	)
)

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}

// SessionStarted records a new session. Pair it with SessionFinished.
func SessionStarted() {
	sessionsActive.Inc()
}

// SessionFinished records a session that ran for d and earned score points.
func SessionFinished(d time.Duration, score int) {
	sessionsActive.Dec()
	sessionsTotal.WithLabelValues("finished").Inc()
	sessionDuration.Observe(d.Seconds())
	sessionScore.Observe(float64(score))
}

// SessionRejected records a connection turned away before play began.
func SessionRejected() {
	sessionsTotal.WithLabelValues("rejected").Inc()
}

// RecordWorld records one generated file system.
func RecordWorld(stats vfs.Stats, duration time.Duration) {
	worldsGenerated.Inc()
	worldGenerationDuration.Observe(duration.Seconds())
	worldNodes.WithLabelValues("dir").Observe(float64(stats.TotalDirs))
	worldNodes.WithLabelValues("file").Observe(float64(stats.TotalFiles))
	worldNodes.WithLabelValues("encrypted").Observe(float64(stats.EncryptedDirs))
}

// Listener counts navigation events. It satisfies nav.Listener.
type Listener struct{}

// DirectoryDecrypted counts a decryption under the directory's cipher.
func (Listener) DirectoryDecrypted(d *vfs.Directory, _ bool) {
	decryptionsTotal.WithLabelValues(d.Cipher.String()).Inc()
}

// FileOpened counts an open under the file's rarity.
func (Listener) FileOpened(f *vfs.File) {
	filesOpenedTotal.WithLabelValues(rarity(f)).Inc()
}

func rarity(f *vfs.File) string {
	switch {
	case f.EasterEgg:
		return "easter_egg"
	case f.Special:
		return "special"
	}
	return "plain"
}
