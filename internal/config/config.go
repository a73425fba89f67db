// Package config loads service configuration from the environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// KafkaConfig holds event publishing configuration.
type KafkaConfig struct {
	Enabled        bool
	Brokers        []string
	TopicUtterance string
	TopicSummary   string
	Principal      string
}

// Config holds all service configuration.
type Config struct {
	Port        string
	MetricsAddr string

	ScorerProvider string // vader, remote, mock
	LexiconURL     string // base URL for the remote provider

	RosterPath   string
	NoisePattern string // empty selects the built-in default

	FetchTimeout time.Duration
	OutputDir    string

	Kafka KafkaConfig
}

// Load reads configuration from environment variables, applying defaults for
// anything unset.
func Load() *Config {
	return &Config{
		Port:        envOrDefault("HTTP_PORT", "8080"),
		MetricsAddr: envOrDefault("METRICS_ADDR", ":9090"),

		ScorerProvider: envOrDefault("SCORER_PROVIDER", "vader"),
		LexiconURL:     envOrDefault("LEXICON_URL", ""),

		RosterPath:   envOrDefault("ROSTER_PATH", "roster.yaml"),
		NoisePattern: envOrDefault("NOISE_PATTERN", ""),

		FetchTimeout: envDuration("FETCH_TIMEOUT", 30*time.Second),
		OutputDir:    envOrDefault("OUTPUT_DIR", "outputs"),

		Kafka: KafkaConfig{
			Enabled:        envBool("KAFKA_ENABLED", false),
			Brokers:        envList("KAFKA_BROKERS"),
			TopicUtterance: envOrDefault("KAFKA_TOPIC_UTTERANCE", "debate.utterance.scored"),
			TopicSummary:   envOrDefault("KAFKA_TOPIC_SUMMARY", "debate.speaker.summary"),
			Principal:      envOrDefault("KAFKA_PRINCIPAL", "svc-transcript-sentiment"),
		},
	}
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func envDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func envList(key string) []string {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
