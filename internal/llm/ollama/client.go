// Package ollama implements the local-model date extraction backend. It
// feeds the PDF's embedded page text to a generate endpoint and returns
// whatever the model answered.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/cdoebler/rename-invoice-pdfs/internal/extract"
	"github.com/cdoebler/rename-invoice-pdfs/internal/llm"
)

// Config holds the local backend settings.
type Config struct {
	// BaseURL is the API base, e.g. http://localhost:11434/api.
	BaseURL string
	// Model is the identifier passed to the generate endpoint.
	Model string
	// ProbeTimeout bounds the liveness probe only; generate calls block
	// without a timeout.
	ProbeTimeout time.Duration
}

// Client talks to an Ollama-compatible local API.
type Client struct {
	cfg    Config
	client *http.Client
	text   extract.TextExtractor
	log    *slog.Logger
}

func NewClient(cfg Config, text extract.TextExtractor, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.ProbeTimeout <= 0 {
		cfg.ProbeTimeout = 2 * time.Second
	}
	return &Client{cfg: cfg, client: &http.Client{}, text: text, log: logger}
}

// IsRunning probes GET {base}/version with a short timeout. Any failure —
// connection refused, timeout, non-200 — means "not running", never an
// error; the caller falls back to the cloud backend silently.
func (c *Client) IsRunning(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, c.cfg.ProbeTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint("/version"), nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug("ollama.probe.unreachable", "url", c.cfg.BaseURL, "error", err)
		return false
	}
	defer func() {
		_ = resp.Body.Close()
	}()
	return resp.StatusCode == http.StatusOK
}

// ExtractDate pulls the embedded page text and asks the model for the
// invoice date. The trimmed response is returned verbatim.
func (c *Client) ExtractDate(ctx context.Context, path string) (string, error) {
	res, err := c.text.Extract(ctx, path)
	if err != nil {
		return "", fmt.Errorf("extract pdf text: %w", err)
	}

	body := generateRequest{
		Model:  c.cfg.Model,
		Prompt: llm.BuildDatePrompt(res.Text),
		Stream: false,
	}
	raw, _, err := llm.SendJSON(ctx, c.client, c.endpoint("/generate"), body, nil, c.log)
	if err != nil {
		return "", fmt.Errorf("ollama generate: %w", err)
	}

	var gr generateResponse
	if err := json.Unmarshal(raw, &gr); err != nil {
		return "", fmt.Errorf("decode ollama response: %w", err)
	}
	return strings.TrimSpace(gr.Response), nil
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type generateResponse struct {
	Response string `json:"response"`
}
