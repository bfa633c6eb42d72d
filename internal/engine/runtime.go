package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

// runtimeClient talks to the local inference runtime over HTTP. The runtime
// owns tokenization and graph execution; this client only opens a session
// against resolved artifacts and issues blocking completion calls.
type runtimeClient struct {
	baseURL    string
	httpClient *http.Client
}

func newRuntimeClient(baseURL string, connectTimeout time.Duration) *runtimeClient {
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   connectTimeout,
			KeepAlive: 30 * time.Second,
		}).DialContext,
		MaxIdleConns:    100,
		IdleConnTimeout: 90 * time.Second,
	}
	// Timeout stays 0: generation calls carry deadlines via request context.
	return &runtimeClient{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Transport: tr, Timeout: 0},
	}
}

// sessionSpec is the payload for opening a runtime session.
type sessionSpec struct {
	ModelDir        string            `json:"model_dir"`
	Graphs          map[string]string `json:"graphs"`
	Tokenizer       string            `json:"tokenizer"`
	Metadata        string            `json:"metadata"`
	Processor       string            `json:"processor,omitempty"`
	Variant         string            `json:"variant,omitempty"`
	PerformanceMode string            `json:"performance_mode,omitempty"`
}

type sessionOpened struct {
	ID string `json:"id"`
}

// completionRequest is the payload for a blocking completion call.
type completionRequest struct {
	Prompt      string   `json:"prompt"`
	MaxTokens   int      `json:"max_tokens,omitempty"`
	Temperature float32  `json:"temperature,omitempty"`
	TopK        int      `json:"top_k,omitempty"`
	Stop        []string `json:"stop,omitempty"`
}

type completionResponse struct {
	Content string `json:"content"`
}

func (c *runtimeClient) openSession(ctx context.Context, spec sessionSpec) (string, error) {
	var out sessionOpened
	if err := c.post(ctx, "/v1/sessions", spec, &out); err != nil {
		return "", err
	}
	if out.ID == "" {
		return "", errors.New("runtime returned empty session id")
	}
	return out.ID, nil
}

func (c *runtimeClient) complete(ctx context.Context, sessionID string, req completionRequest) (string, error) {
	var out completionResponse
	if err := c.post(ctx, "/v1/sessions/"+sessionID+"/completion", req, &out); err != nil {
		return "", err
	}
	return out.Content, nil
}

func (c *runtimeClient) closeSession(sessionID string) error {
	req, err := http.NewRequest(http.MethodDelete, c.baseURL+"/v1/sessions/"+sessionID, nil)
	if err != nil {
		return err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.New("runtime http error: " + resp.Status)
	}
	return nil
}

func (c *runtimeClient) post(ctx context.Context, path string, in, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return errors.New("runtime http error: " + resp.Status + ": " + string(b))
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
