// Package remote implements core.Store against the HTTP document API.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/aretw0/haste/pkg/core"
)

const (
	contentType  = "application/json; charset=utf-8"
	maxErrorBody = 64 << 10
)

// Config holds the configuration for the remote store.
type Config struct {
	BaseURL string       // e.g. "https://hastebin.example"; defaults to core.DefaultBaseURL
	Client  *http.Client // defaults to http.DefaultClient
	Logger  *slog.Logger
}

// Store talks to {BaseURL}/documents. Every call is a single request:
// no retries, and no timeout beyond what the context and client impose.
type Store struct {
	baseURL string
	client  *http.Client
	config  Config

	mu         sync.Mutex
	requests   int
	failures   int
	lastStatus int
}

// NewStore creates a remote store.
func NewStore(config Config) *Store {
	base := strings.TrimRight(config.BaseURL, "/")
	if base == "" {
		base = core.DefaultBaseURL
	}
	client := config.Client
	if client == nil {
		client = http.DefaultClient
	}
	return &Store{
		baseURL: base,
		client:  client,
		config:  config,
	}
}

// BaseURL returns the normalized store root.
func (s *Store) BaseURL() string {
	return s.baseURL
}

// Get fetches GET {base}/documents/{key} and returns its data field.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", core.ErrEmptyKey
	}
	endpoint := s.baseURL + "/documents/" + url.PathEscape(key)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", key, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", core.ErrNotFound
	}
	if !isSuccess(resp.StatusCode) {
		return "", decodeError(resp)
	}

	var body struct {
		Data *string `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("failed to decode document %s: %w", key, err)
	}
	if body.Data == nil {
		return "", fmt.Errorf("document %s: response has no data", key)
	}
	return *body.Data, nil
}

// Put sends POST {base}/documents with content as the raw body and returns the new key.
// Every failure is a *core.StoreError.
func (s *Store) Put(ctx context.Context, content string) (string, error) {
	endpoint := s.baseURL + "/documents"

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(content))
	if err != nil {
		return "", core.NewGenericStoreError(0, err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := s.do(req)
	if err != nil {
		return "", core.NewGenericStoreError(0, err)
	}
	defer resp.Body.Close()

	if !isSuccess(resp.StatusCode) {
		return "", decodeError(resp)
	}

	var body struct {
		Key string `json:"key"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", core.NewGenericStoreError(resp.StatusCode, fmt.Errorf("failed to decode response: %w", err))
	}
	if body.Key == "" {
		return "", core.NewGenericStoreError(resp.StatusCode, errors.New("response has no key"))
	}
	return body.Key, nil
}

func (s *Store) do(req *http.Request) (*http.Response, error) {
	if s.config.Logger != nil {
		s.config.Logger.Debug("store request", "method", req.Method, "url", req.URL.String())
	}

	resp, err := s.client.Do(req)

	s.mu.Lock()
	s.requests++
	if err != nil {
		s.failures++
		s.lastStatus = 0
	} else {
		s.lastStatus = resp.StatusCode
		if !isSuccess(resp.StatusCode) {
			s.failures++
		}
	}
	s.mu.Unlock()

	if err != nil && s.config.Logger != nil {
		s.config.Logger.Debug("store request failed", "method", req.Method, "error", err)
	}
	return resp, err
}

// decodeError surfaces the store's JSON error body as-is, or the generic
// payload carrying the decode error when the body is not a JSON object.
func decodeError(resp *http.Response) *core.StoreError {
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil {
		return core.NewGenericStoreError(resp.StatusCode, fmt.Errorf("failed to read error body: %w", err))
	}

	var payload map[string]any
	if err := json.Unmarshal(data, &payload); err != nil {
		return core.NewGenericStoreError(resp.StatusCode, fmt.Errorf("failed to parse error body: %w", err))
	}
	if payload == nil {
		return core.NewGenericStoreError(resp.StatusCode, errors.New("empty error body"))
	}
	return &core.StoreError{Status: resp.StatusCode, Payload: payload}
}

func isSuccess(status int) bool {
	return status >= 200 && status < 300
}
