package main

import (
	"flag"
	"os"
	"strconv"
)

// config holds server settings. Flags win over VOIDER_* environment
// variables, which win over defaults.
type config struct {
	Port        int
	HostKey     string
	MetricsAddr string // empty disables the metrics listener
	LogLevel    string
	LogFormat   string
	MaxSessions int
	RunLog      bool
}

func loadConfig(fs *flag.FlagSet, args []string) (config, error) {
	var c config
	fs.IntVar(&c.Port, "port", envInt("VOIDER_PORT", 2222), "SSH server port")
	fs.StringVar(&c.HostKey, "key", envOr("VOIDER_HOST_KEY", "server_host_key"), "Path to the PEM-encoded host key (auto-generated if absent)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", envOr("VOIDER_METRICS_ADDR", ":9102"), "Prometheus listen address, empty to disable")
	fs.StringVar(&c.LogLevel, "log-level", envOr("VOIDER_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&c.LogFormat, "log-format", envOr("VOIDER_LOG_FORMAT", "json"), "json or console")
	fs.IntVar(&c.MaxSessions, "max-sessions", envInt("VOIDER_MAX_SESSIONS", 32), "Concurrent sessions allowed")
	fs.BoolVar(&c.RunLog, "runlog", envBool("VOIDER_RUN_LOG", false), "Append finished sessions to the run log")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}
	if c.MaxSessions < 1 {
		c.MaxSessions = 1
	}
	return c, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}
