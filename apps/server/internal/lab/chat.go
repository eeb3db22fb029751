package lab

import (
	"context"
	"errors"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/iterator"
)

var ErrEmptyResponse = errors.New("model returned no content")

type ChatRequest struct {
	Prompt      string   `json:"prompt"`
	System      string   `json:"system,omitempty"`
	Temperature *float32 `json:"temperature,omitempty"`
	Fast        bool     `json:"fast,omitempty"`
}

func (c *Client) chatModel(req ChatRequest) *genai.GenerativeModel {
	name := c.cfg.ChatModel
	if req.Fast {
		name = c.cfg.FastModel
	}
	model := c.genai.GenerativeModel(name)
	if req.System != "" {
		model.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.System)}}
	}
	if req.Temperature != nil {
		model.SetTemperature(*req.Temperature)
	}
	return model
}

// Generate runs a single-turn completion and returns the concatenated text.
func (c *Client) Generate(ctx context.Context, req ChatRequest) (string, error) {
	resp, err := c.chatModel(req).GenerateContent(ctx, genai.Text(req.Prompt))
	if err != nil {
		return "", err
	}
	text := responseText(resp)
	if text == "" {
		return "", ErrEmptyResponse
	}
	return text, nil
}

// GenerateStream runs a streaming completion, calling emit for each text
// chunk. A non-nil error from emit aborts the stream.
func (c *Client) GenerateStream(ctx context.Context, req ChatRequest, emit func(chunk string) error) error {
	iter := c.chatModel(req).GenerateContentStream(ctx, genai.Text(req.Prompt))
	for {
		resp, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return nil
		}
		if err != nil {
			return err
		}
		if chunk := responseText(resp); chunk != "" {
			if err := emit(chunk); err != nil {
				return err
			}
		}
	}
}

func responseText(resp *genai.GenerateContentResponse) string {
	var sb strings.Builder
	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				sb.WriteString(string(text))
			}
		}
	}
	return sb.String()
}
