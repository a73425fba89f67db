// Command debate-score runs the scoring pipeline once over a local file or a
// URL and writes the report bundle to disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"regexp"
	"time"

	"transcript-sentiment-service/internal/config"
	"transcript-sentiment-service/internal/events"
	"transcript-sentiment-service/internal/fetch"
	"transcript-sentiment-service/internal/report"
	"transcript-sentiment-service/internal/service/pipeline"
	"transcript-sentiment-service/internal/transcript"
)

func main() {
	var (
		file     = flag.String("file", "", "path to a local transcript text file")
		url      = flag.String("url", "", "URL of a transcript document (HTML or plain text)")
		rosterP  = flag.String("roster", "roster.yaml", "path to the speaker roster YAML")
		provider = flag.String("provider", "vader", "scorer provider: vader, remote, mock")
		lexicon  = flag.String("lexicon-url", "", "base URL of the remote lexicon service")
		noiseP   = flag.String("noise", "", "noise line pattern (default: blank lines and page markers)")
		out      = flag.String("out", "outputs", "output directory for the report bundle")
	)
	flag.Parse()

	if (*file == "") == (*url == "") {
		log.Fatal("usage: debate-score (-file path | -url address) [-roster roster.yaml] [-out dir]")
	}

	roster, err := transcript.LoadRoster(*rosterP)
	if err != nil {
		log.Fatalf("loading roster: %v", err)
	}

	noise := transcript.DefaultNoisePattern
	if *noiseP != "" {
		noise, err = regexp.Compile(*noiseP)
		if err != nil {
			log.Fatalf("compiling noise pattern: %v", err)
		}
	}

	sc, err := pipeline.ForProvider(&config.Config{ScorerProvider: *provider, LexiconURL: *lexicon})
	if err != nil {
		log.Fatalf("selecting scorer: %v", err)
	}

	ctx := context.Background()

	source := *file
	var blob string
	if *file != "" {
		blob, err = fetch.ReadFile(*file)
	} else {
		source = *url
		blob, err = fetch.New(30 * time.Second).Text(ctx, *url)
	}
	if err != nil {
		log.Fatalf("loading transcript: %v", err)
	}

	p := pipeline.New(
		transcript.NewAttributor(roster, noise),
		sc,
		events.New(&events.Config{Enabled: false}),
	)

	res, err := p.Run(ctx, blob)
	if err != nil {
		log.Fatalf("run failed: %v", err)
	}

	dir, err := report.Write(*out, &report.Bundle{
		RunID:       res.RunID,
		Source:      source,
		Provider:    res.Provider,
		GeneratedAt: time.Now().UTC(),
		Utterances:  res.Utterances,
		Summaries:   res.Summaries,
		Series:      res.Series,
	})
	if err != nil {
		log.Fatalf("writing report: %v", err)
	}

	fmt.Printf("scored %d utterances from %s (run %s)\n\n", len(res.Utterances), source, res.RunID)
	fmt.Printf("%-24s %5s %8s %8s %8s %8s\n", "speaker", "utts", "min", "max", "mean", "median")
	for _, s := range res.Summaries {
		fmt.Printf("%-24s %5d %8.3f %8.3f %8.3f %8.3f\n",
			s.Speaker, s.Utterances, s.Min, s.Max, s.Mean, s.Median)
	}
	fmt.Printf("\nreport written to %s\n", dir)
}
