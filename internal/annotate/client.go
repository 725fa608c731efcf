package annotate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client talks to the annotation sidecar over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client and verifies the sidecar is reachable.
// An unreachable sidecar is a construction-time failure: the caller is
// expected to treat it as fatal.
func NewClient(ctx context.Context, baseURL string) (*Client, error) {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: defaultTimeout},
	}

	if err := c.ping(ctx); err != nil {
		return nil, fmt.Errorf("annotator unavailable at %s: %w", baseURL, err)
	}

	return c, nil
}

func (c *Client) ping(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/health", nil)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health check returned %s", resp.Status)
	}
	return nil
}

type annotateRequest struct {
	Text string `json:"text"`
}

type annotateResponse struct {
	Tokens []Token `json:"tokens"`
}

// Annotate sends text to the sidecar and returns the annotated tokens.
func (c *Client) Annotate(ctx context.Context, text string) ([]Token, error) {
	body, err := json.Marshal(annotateRequest{Text: text})
	if err != nil {
		return nil, fmt.Errorf("marshal annotate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/annotate", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("annotate request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("annotator returned %s: %s", resp.Status, snippet)
	}

	var decoded annotateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode annotate response: %w", err)
	}

	return decoded.Tokens, nil
}
