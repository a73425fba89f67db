package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"regexp"
	"syscall"
	"time"

	"transcript-sentiment-service/internal/app"
	"transcript-sentiment-service/internal/config"
	"transcript-sentiment-service/internal/events"
	"transcript-sentiment-service/internal/fetch"
	httpapi "transcript-sentiment-service/internal/http"
	"transcript-sentiment-service/internal/observability"
	"transcript-sentiment-service/internal/service/pipeline"
	"transcript-sentiment-service/internal/transcript"
)

func main() {
	cfg := config.Load()
	application := app.New(cfg)

	roster, err := transcript.LoadRoster(cfg.RosterPath)
	if err != nil {
		log.Fatalf("loading roster: %v", err)
	}

	noise := transcript.DefaultNoisePattern
	if cfg.NoisePattern != "" {
		noise, err = regexp.Compile(cfg.NoisePattern)
		if err != nil {
			log.Fatalf("compiling noise pattern: %v", err)
		}
	}

	sc, err := pipeline.ForProvider(cfg)
	if err != nil {
		log.Fatalf("selecting scorer: %v", err)
	}

	publisher := events.New(&events.Config{
		Enabled:        cfg.Kafka.Enabled,
		Brokers:        cfg.Kafka.Brokers,
		TopicUtterance: cfg.Kafka.TopicUtterance,
		TopicSummary:   cfg.Kafka.TopicSummary,
		Principal:      cfg.Kafka.Principal,
	})
	defer publisher.Close()

	p := pipeline.New(transcript.NewAttributor(roster, noise), sc, publisher)
	fetcher := fetch.New(cfg.FetchTimeout)

	obs := observability.NewServer(cfg.MetricsAddr)
	obs.Start()

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      httpapi.NewRouter(application, p, fetcher),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	if err := application.Start(); err != nil {
		log.Fatalf("application start: %v", err)
	}

	go func() {
		log.Printf("Transcript sentiment service started on :%s (provider=%s)", cfg.Port, sc.Name())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("http serve failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Println("shutting down HTTP server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("http shutdown: %v", err)
	}
	if err := obs.Shutdown(ctx); err != nil {
		log.Printf("observability shutdown: %v", err)
	}
	application.Shutdown()
}
