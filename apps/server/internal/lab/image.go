package lab

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/google/generative-ai-go/genai"
)

type ImageRequest struct {
	Prompt      string `json:"prompt"`
	AspectRatio string `json:"aspectRatio,omitempty"`
	Count       int    `json:"count,omitempty"`
}

type GeneratedImage struct {
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"` // JSON-encodes as base64
}

// GenerateImages calls the Imagen predict endpoint. The SDK has no binding
// for it, so this goes over REST directly.
func (c *Client) GenerateImages(ctx context.Context, req ImageRequest) ([]GeneratedImage, error) {
	count := req.Count
	if count <= 0 {
		count = 1
	}

	type instance struct {
		Prompt string `json:"prompt"`
	}
	type parameters struct {
		SampleCount int    `json:"sampleCount"`
		AspectRatio string `json:"aspectRatio,omitempty"`
	}
	body, err := json.Marshal(struct {
		Instances  []instance `json:"instances"`
		Parameters parameters `json:"parameters"`
	}{
		Instances:  []instance{{Prompt: req.Prompt}},
		Parameters: parameters{SampleCount: count, AspectRatio: req.AspectRatio},
	})
	if err != nil {
		return nil, err
	}

	data, err := c.postJSON(ctx, c.baseURL+"/models/"+c.cfg.ImageModel+":predict", body)
	if err != nil {
		return nil, err
	}

	var out struct {
		Predictions []struct {
			MIMEType           string `json:"mimeType"`
			BytesBase64Encoded string `json:"bytesBase64Encoded"`
		} `json:"predictions"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("parse predict response: %w", err)
	}
	if len(out.Predictions) == 0 {
		return nil, ErrEmptyResponse
	}

	images := make([]GeneratedImage, 0, len(out.Predictions))
	for _, p := range out.Predictions {
		raw, err := base64.StdEncoding.DecodeString(p.BytesBase64Encoded)
		if err != nil {
			return nil, fmt.Errorf("decode image bytes: %w", err)
		}
		images = append(images, GeneratedImage{MIMEType: p.MIMEType, Data: raw})
	}
	return images, nil
}

type ImageEditRequest struct {
	Prompt   string `json:"prompt"`
	MIMEType string `json:"mimeType"`
	Data     []byte `json:"data"`
}

// EditImage sends the source image plus an instruction through the image
// edit model and returns the first image part of the response.
func (c *Client) EditImage(ctx context.Context, req ImageEditRequest) (GeneratedImage, error) {
	model := c.genai.GenerativeModel(c.cfg.ImageEditModel)
	resp, err := model.GenerateContent(ctx,
		genai.Blob{MIMEType: req.MIMEType, Data: req.Data},
		genai.Text(req.Prompt),
	)
	if err != nil {
		return GeneratedImage{}, err
	}

	for _, cand := range resp.Candidates {
		if cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if blob, ok := part.(genai.Blob); ok {
				return GeneratedImage{MIMEType: blob.MIMEType, Data: blob.Data}, nil
			}
		}
	}
	return GeneratedImage{}, ErrEmptyResponse
}

func (c *Client) postJSON(ctx context.Context, url string, body []byte) ([]byte, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api status %d: %s", resp.StatusCode, truncate(data, 256))
	}
	return data, nil
}

func truncate(b []byte, n int) string {
	if len(b) <= n {
		return string(b)
	}
	return string(b[:n]) + "..."
}
