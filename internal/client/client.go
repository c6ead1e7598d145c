// Package client talks to the /api/generate proxy endpoint.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/yoockh/htmlchat/internal/models"
)

const fallbackMessage = "Something went wrong"

type Client struct {
	baseURL string
	http    *http.Client
}

func New(baseURL string, hc *http.Client) *Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Generate posts prompt and returns the endpoint's HTML text. A non-2xx
// answer becomes an error carrying the endpoint's message.
func (c *Client) Generate(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(models.PromptRequest{Prompt: &prompt})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/generate", bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var ep models.ErrorPayload
		if json.NewDecoder(resp.Body).Decode(&ep) == nil && ep.Error != "" {
			return "", errors.New(ep.Error)
		}
		return "", errors.New(fallbackMessage)
	}

	var out models.GenerationResult
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return out.Text, nil
}
