package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdoebler/rename-invoice-pdfs/internal/extract"
)

// fakeText returns canned page text instead of parsing a real PDF.
type fakeText struct {
	text string
	err  error
}

func (f fakeText) Extract(context.Context, string) (extract.TextExtractionResult, error) {
	return extract.TextExtractionResult{Text: f.text, Pages: 1}, f.err
}

func TestIsRunning(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/version", r.URL.Path)
		assert.Equal(t, http.MethodGet, r.Method)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3"}, fakeText{}, nil)
	assert.True(t, c.IsRunning(context.Background()))
}

func TestIsRunningNon200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3"}, fakeText{}, nil)
	assert.False(t, c.IsRunning(context.Background()))
}

func TestIsRunningUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close() // probe against a dead server

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3", ProbeTimeout: 200 * time.Millisecond}, fakeText{}, nil)
	assert.False(t, c.IsRunning(context.Background()))
}

func TestExtractDate(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/generate", r.URL.Path)
		require.Equal(t, http.MethodPost, r.Method)

		var req struct {
			Model  string `json:"model"`
			Prompt string `json:"prompt"`
			Stream bool   `json:"stream"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "llama3", req.Model)
		assert.False(t, req.Stream)
		assert.Contains(t, req.Prompt, "format YYMMDD")
		assert.Contains(t, req.Prompt, "Total due 2025-03-15")

		_ = json.NewEncoder(w).Encode(map[string]string{"response": " 250315\n"})
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3"}, fakeText{text: "Total due 2025-03-15"}, nil)
	date, err := c.ExtractDate(context.Background(), "/tmp/invoice.pdf")
	require.NoError(t, err)
	assert.Equal(t, "250315", date, "response is trimmed but otherwise verbatim")
}

func TestExtractDateServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient(Config{BaseURL: srv.URL, Model: "llama3"}, fakeText{text: "x"}, nil)
	_, err := c.ExtractDate(context.Background(), "/tmp/invoice.pdf")
	assert.Error(t, err)
}

func TestExtractDateTextExtractionError(t *testing.T) {
	c := NewClient(Config{BaseURL: "http://localhost:0", Model: "llama3"}, fakeText{err: assert.AnError}, nil)
	_, err := c.ExtractDate(context.Background(), "/tmp/invoice.pdf")
	assert.ErrorIs(t, err, assert.AnError)
}
