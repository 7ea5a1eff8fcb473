package prompt

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"promptclient/backend"
	"promptclient/config"
)

// GeneratePath is the generation endpoint relative to the server root.
const GeneratePath = "/api/generate"

// Client sends prompts to a generation server. It holds no per-call state
// and is safe for concurrent use.
type Client struct {
	backend      *backend.Client
	defaultModel string
}

// NewClient creates a Client from cfg.
func NewClient(cfg *config.Config) *Client {
	model := cfg.DefaultModel
	if model == "" {
		model = config.DefaultModel
	}
	return &Client{
		backend:      backend.NewBackendClient(cfg.APIRoot, cfg.Timeout),
		defaultModel: model,
	}
}

// Generate sends prompt to model and returns the generated text or the
// failure. An empty model selects the configured default. Exactly one
// request is made; failures are returned, never retried.
func (c *Client) Generate(ctx context.Context, prompt, model string) (result Result) {
	if model == "" {
		model = c.defaultModel
	}
	entry := log.WithFields(logrus.Fields{
		"request_id": uuid.NewString(),
		"model":      model,
	})

	defer func() {
		if r := recover(); r != nil {
			result = failure(fmt.Errorf("panic during request: %v", r))
		}
		if result.Err != nil {
			entry.Errorf("Generation failed: %s", result.Err)
		}
	}()

	entry.Infof("Sending to %s...", model)

	resp, err := c.backend.PostJSON(ctx, GeneratePath, NewGenerationRequest(model, prompt))
	if err != nil {
		return failure(err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return failure(fmt.Errorf("read response: %w", err))
	}

	out, err := decodeResponse(data)
	if err != nil {
		return failure(fmt.Errorf("decode response: %w", err))
	}

	entry.Debugf("Received %d bytes of generated text", len(out.Text()))
	return success(out.Text())
}

// decodeResponse parses data as exactly one JSON object. Trailing data and a
// bare null are rejected.
func decodeResponse(data []byte) (*GenerationResponse, error) {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		return nil, errors.New("expected a JSON object, got null")
	}
	var out GenerationResponse
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

var (
	defaultClient     *Client
	defaultClientOnce sync.Once
)

// Generate sends prompt to model on the local server with the built-in
// configuration and returns the text, or ErrorPrefix followed by the cause.
func Generate(prompt, model string) string {
	defaultClientOnce.Do(func() {
		defaultClient = NewClient(config.Default())
	})
	return defaultClient.Generate(context.Background(), prompt, model).String()
}
