// Package anthropic implements the cloud date extraction backend. The raw
// PDF bytes travel base64-encoded in a single messages call; no local text
// extraction is involved, so image-only PDFs work too.
package anthropic

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cdoebler/rename-invoice-pdfs/internal/llm"
)

const (
	apiVersion = "2023-06-01"
	pdfBeta    = "pdfs-2024-09-25"
)

// Config holds the cloud backend settings.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// MaxTokens caps the answer; a date needs very few.
	MaxTokens int
	// Timeout bounds the whole request; zero means no timeout.
	Timeout time.Duration
}

// Client talks to the Anthropic messages API.
type Client struct {
	cfg    Config
	client *http.Client
	log    *slog.Logger
}

func NewClient(cfg Config, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = "https://api.anthropic.com"
	}
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	return &Client{cfg: cfg, client: &http.Client{Timeout: cfg.Timeout}, log: logger}
}

// ExtractDate sends the base64-encoded document plus the date instruction
// and returns the first text block of the answer verbatim.
func (c *Client) ExtractDate(ctx context.Context, path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read pdf: %w", err)
	}

	body := messagesRequest{
		Model:     c.cfg.Model,
		MaxTokens: c.cfg.MaxTokens,
		Messages: []message{{
			Role: "user",
			Content: []contentBlock{
				{
					Type: "document",
					Source: &documentSource{
						Type:      "base64",
						MediaType: "application/pdf",
						Data:      base64.StdEncoding.EncodeToString(b),
					},
				},
				{Type: "text", Text: llm.DateInstruction},
			},
		}},
	}

	headers := map[string]string{
		"x-api-key":         c.cfg.APIKey,
		"anthropic-version": apiVersion,
		"anthropic-beta":    pdfBeta,
	}
	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/v1/messages"
	raw, _, err := llm.SendJSON(ctx, c.client, url, body, headers, c.log)
	if err != nil {
		return "", fmt.Errorf("anthropic messages: %w", err)
	}

	var mr messagesResponse
	if err := json.Unmarshal(raw, &mr); err != nil {
		return "", fmt.Errorf("decode anthropic response: %w", err)
	}
	if len(mr.Content) == 0 {
		return "", fmt.Errorf("anthropic response has no content blocks")
	}
	return mr.Content[0].Text, nil
}

type messagesRequest struct {
	Model     string    `json:"model"`
	MaxTokens int       `json:"max_tokens"`
	Messages  []message `json:"messages"`
}

type message struct {
	Role    string         `json:"role"`
	Content []contentBlock `json:"content"`
}

type contentBlock struct {
	Type   string          `json:"type"`
	Source *documentSource `json:"source,omitempty"`
	Text   string          `json:"text,omitempty"`
}

type documentSource struct {
	Type      string `json:"type"`
	MediaType string `json:"media_type"`
	Data      string `json:"data"`
}

type messagesResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
}
