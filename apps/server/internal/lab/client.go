// Package lab backs the sandbox panels of the SPA: freeform chat, image
// generation and editing, video generation and the live voice console.
// Nothing in here touches quests or progression; a lab failure costs the
// player nothing.
package lab

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"promptmaster-lite/apps/server/internal/config"
)

const defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"

var ErrDisabled = errors.New("lab is disabled: no API key configured")

// Client wraps the Gemini SDK plus a plain HTTP client for the REST-only
// surfaces (Imagen predict, Veo long-running operations) the SDK does not
// cover.
type Client struct {
	genai   *genai.Client
	httpc   *http.Client
	cfg     config.Gemini
	baseURL string
}

func NewClient(ctx context.Context, cfg config.Gemini) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrDisabled
	}
	gc, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, err
	}
	return &Client{
		genai:   gc,
		httpc:   &http.Client{Timeout: 120 * time.Second},
		cfg:     cfg,
		baseURL: defaultBaseURL,
	}, nil
}

func (c *Client) Close() error {
	if c == nil || c.genai == nil {
		return nil
	}
	return c.genai.Close()
}
