package lab

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

type VideoRequest struct {
	Prompt         string `json:"prompt"`
	NegativePrompt string `json:"negativePrompt,omitempty"`
	AspectRatio    string `json:"aspectRatio,omitempty"`
}

// VideoOperation tracks a long-running Veo job. URI is set once Done.
type VideoOperation struct {
	Name string `json:"name"`
	Done bool   `json:"done"`
	URI  string `json:"uri,omitempty"`
}

// StartVideo kicks off a Veo generation job and returns the operation
// handle. Video generation runs for tens of seconds; callers poll.
func (c *Client) StartVideo(ctx context.Context, req VideoRequest) (VideoOperation, error) {
	type instance struct {
		Prompt string `json:"prompt"`
	}
	type parameters struct {
		NegativePrompt string `json:"negativePrompt,omitempty"`
		AspectRatio    string `json:"aspectRatio,omitempty"`
	}
	body, err := json.Marshal(struct {
		Instances  []instance `json:"instances"`
		Parameters parameters `json:"parameters"`
	}{
		Instances:  []instance{{Prompt: req.Prompt}},
		Parameters: parameters{NegativePrompt: req.NegativePrompt, AspectRatio: req.AspectRatio},
	})
	if err != nil {
		return VideoOperation{}, err
	}

	data, err := c.postJSON(ctx, c.baseURL+"/models/"+c.cfg.VideoModel+":predictLongRunning", body)
	if err != nil {
		return VideoOperation{}, err
	}

	var out struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return VideoOperation{}, fmt.Errorf("parse operation: %w", err)
	}
	if out.Name == "" {
		return VideoOperation{}, errors.New("operation name missing in response")
	}
	return VideoOperation{Name: out.Name}, nil
}

// PollVideo fetches the current state of a Veo operation.
func (c *Client) PollVideo(ctx context.Context, name string) (VideoOperation, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+name, nil)
	if err != nil {
		return VideoOperation{}, err
	}
	httpReq.Header.Set("x-goog-api-key", c.cfg.APIKey)

	resp, err := c.httpc.Do(httpReq)
	if err != nil {
		return VideoOperation{}, err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return VideoOperation{}, err
	}
	if resp.StatusCode != http.StatusOK {
		return VideoOperation{}, fmt.Errorf("api status %d: %s", resp.StatusCode, truncate(data, 256))
	}

	var out struct {
		Done     bool `json:"done"`
		Response struct {
			GenerateVideoResponse struct {
				GeneratedSamples []struct {
					Video struct {
						URI string `json:"uri"`
					} `json:"video"`
				} `json:"generatedSamples"`
			} `json:"generateVideoResponse"`
		} `json:"response"`
		Error *struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.Unmarshal(data, &out); err != nil {
		return VideoOperation{}, fmt.Errorf("parse operation: %w", err)
	}
	if out.Error != nil {
		return VideoOperation{}, fmt.Errorf("video generation failed: %s", out.Error.Message)
	}

	op := VideoOperation{Name: name, Done: out.Done}
	if samples := out.Response.GenerateVideoResponse.GeneratedSamples; len(samples) > 0 {
		op.URI = samples[0].Video.URI
	}
	if op.Done && op.URI == "" {
		return VideoOperation{}, ErrEmptyResponse
	}
	return op, nil
}
