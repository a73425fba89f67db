package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestText_HTML(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(`<html><head><style>p{color:red}</style></head><body>
			<script>var tracking = true;</script>
			<h1>Leaders' Debate</h1>
			<p>DAVID DIMBLEBY:</p>
			<p>Good evening and welcome.</p>
			<p>   </p>
		</body></html>`))
	}))
	defer srv.Close()

	got, err := New(5*time.Second).Text(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}

	lines := strings.Split(got, "\n")
	want := []string{"Leaders' Debate", "DAVID DIMBLEBY:", "Good evening and welcome."}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines %q, want %d", len(lines), lines, len(want))
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
	if strings.Contains(got, "tracking") {
		t.Error("script content leaked into text")
	}
}

func TestText_HTMLWithoutBlocks(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<html><body>just bare text</body></html>`))
	}))
	defer srv.Close()

	got, err := New(5*time.Second).Text(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "just bare text" {
		t.Errorf("got %q", got)
	}
}

func TestText_Plain(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("line one\nline two"))
	}))
	defer srv.Close()

	got, err := New(5*time.Second).Text(context.Background(), srv.URL)
	if err != nil {
		t.Fatalf("Text: %v", err)
	}
	if got != "line one\nline two" {
		t.Errorf("got %q", got)
	}
}

func TestText_HTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := New(5*time.Second).Text(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestText_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	if _, err := New(5*time.Second).Text(ctx, srv.URL); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "transcript.txt")
	if err := os.WriteFile(path, []byte("DD:\nhello"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if got != "DD:\nhello" {
		t.Errorf("got %q", got)
	}

	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}
