// Package http exposes the scoring pipeline over HTTP.
package http

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"

	"transcript-sentiment-service/internal/app"
	"transcript-sentiment-service/internal/fetch"
	"transcript-sentiment-service/internal/service/pipeline"
)

const maxBodyBytes = 8 << 20 // transcripts are documents, not uploads

// scoreRequest is the JSON request shape. Exactly one of URL and Text must be
// set; a non-JSON body is treated as raw transcript text.
type scoreRequest struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewRouter constructs the HTTP router for the service.
func NewRouter(application *app.Application, p *pipeline.Pipeline, fetcher *fetch.Fetcher) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/v1/liveness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/v1/readiness", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ready"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Post("/transcripts/score", scoreHandler(p, fetcher))
	})

	return r
}

func scoreHandler(p *pipeline.Pipeline, fetcher *fetch.Fetcher) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		blob, err := transcriptBlob(r, fetcher)
		if err != nil {
			status := http.StatusBadRequest
			if errors.Is(err, errFetch) {
				status = http.StatusBadGateway
			}
			writeError(w, status, err)
			return
		}

		result, err := p.Run(r.Context(), blob)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err)
			return
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if err := json.NewEncoder(w).Encode(result); err != nil {
			log.Error().Err(err).Msg("Failed to encode score response")
		}
	}
}

var (
	errEmptyBody = errors.New("empty request body")
	errBadJSON   = errors.New("invalid JSON body")
	errNoInput   = errors.New("either url or text must be set")
	errFetch     = errors.New("transcript fetch failed")
)

// transcriptBlob resolves the request body to raw transcript text.
func transcriptBlob(r *http.Request, fetcher *fetch.Fetcher) (string, error) {
	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return "", err
	}
	if len(strings.TrimSpace(string(body))) == 0 {
		return "", errEmptyBody
	}

	if !strings.Contains(r.Header.Get("Content-Type"), "application/json") {
		return string(body), nil
	}

	var req scoreRequest
	if err := json.Unmarshal(body, &req); err != nil {
		return "", errBadJSON
	}
	switch {
	case req.URL != "":
		blob, err := fetcher.Text(r.Context(), req.URL)
		if err != nil {
			log.Warn().Err(err).Str("url", req.URL).Msg("Transcript fetch failed")
			return "", errFetch
		}
		return blob, nil
	case req.Text != "":
		return req.Text, nil
	default:
		return "", errNoInput
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: err.Error()})
}
