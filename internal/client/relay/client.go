// Package relay implements the remote sync client: stateless
// request/response wrappers for the five relay operations. It owns the
// wire format and nothing else; ordering safety is the orchestrator's job.
package relay

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/SiloCityLabs/filameter.com-sub000/internal/models"
	"github.com/SiloCityLabs/filameter.com-sub000/pkg/api"
)

//go:generate moq -out client_mock.go . Client

// PullResult is the decoded payload of a successful pull.
type PullResult struct {
	Envelope models.ExportEnvelope
	// Token is the key to store from now on; the relay may have rotated
	// or alias-resolved the key that was submitted.
	Token       string
	Email       string
	AccountType string
}

// Client defines the five relay operations.
type Client interface {
	// Create registers intent to sync under an email. The relay sends
	// the key out-of-band; the returned string is a human-readable
	// message, never the key itself.
	Create(ctx context.Context, email string) (string, error)

	// Pull fetches the remote snapshot for a key.
	Pull(ctx context.Context, key string) (*PullResult, error)

	// Push overwrites the remote snapshot unconditionally.
	Push(ctx context.Context, key string, envelope *models.ExportEnvelope) error

	// Timestamp returns the remote's last-write time without
	// transferring the snapshot.
	Timestamp(ctx context.Context, key string) (time.Time, error)

	// Forgot asks the relay to email existing keys for an address.
	Forgot(ctx context.Context, email string) (string, error)
}

// HTTPClient is the HTTP implementation of Client. All five operations
// are POSTs to a single endpoint with a function discriminator.
type HTTPClient struct {
	httpClient *http.Client
	endpoint   string
}

var _ Client = (*HTTPClient)(nil)

// NewClient creates a relay client for the given endpoint URL.
func NewClient(endpoint string) *HTTPClient {
	return &HTTPClient{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// Create registers intent to sync under an email
func (c *HTTPClient) Create(ctx context.Context, email string) (string, error) {
	resp, err := c.call(ctx, api.SyncRequest{
		Function: api.FunctionCreate,
		Email:    email,
	})
	if err != nil {
		return "", err
	}
	return resp.Msg, nil
}

// Pull fetches the remote snapshot
func (c *HTTPClient) Pull(ctx context.Context, key string) (*PullResult, error) {
	resp, err := c.call(ctx, api.SyncRequest{
		Function: api.FunctionPull,
		Key:      key,
	})
	if err != nil {
		return nil, err
	}
	if resp.Data == nil {
		return nil, fmt.Errorf("pull response missing data payload")
	}
	return &PullResult{
		Envelope:    resp.Data.Data,
		Token:       resp.Data.Token,
		Email:       resp.Data.UserData,
		AccountType: resp.Data.KeyType,
	}, nil
}

// Push overwrites the remote snapshot with the envelope
func (c *HTTPClient) Push(ctx context.Context, key string, envelope *models.ExportEnvelope) error {
	_, err := c.call(ctx, api.SyncRequest{
		Function: api.FunctionPush,
		Key:      key,
		Data:     envelope,
	})
	return err
}

// Timestamp returns the remote's last-write time
func (c *HTTPClient) Timestamp(ctx context.Context, key string) (time.Time, error) {
	resp, err := c.call(ctx, api.SyncRequest{
		Function: api.FunctionTimestamp,
		Key:      key,
	})
	if err != nil {
		return time.Time{}, err
	}
	t, err := time.Parse(time.RFC3339, resp.Timestamp)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse relay timestamp %q: %w", resp.Timestamp, err)
	}
	return t, nil
}

// Forgot requests a key recovery email
func (c *HTTPClient) Forgot(ctx context.Context, email string) (string, error) {
	resp, err := c.call(ctx, api.SyncRequest{
		Function: api.FunctionForgot,
		Email:    email,
	})
	if err != nil {
		return "", err
	}
	return resp.Msg, nil
}

// call performs the POST exchange with the relay. Non-2xx responses are
// a hard transport failure regardless of body content; within a 2xx
// response a status of "error" becomes a RelayError.
func (c *HTTPClient) call(ctx context.Context, req api.SyncRequest) (*api.SyncResponse, error) {
	req.App = api.AppName

	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request body: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer func() {
		_ = httpResp.Body.Close()
	}()

	respBody, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		// Do not assume a parsed body exists here
		return nil, &TransportError{StatusCode: httpResp.StatusCode}
	}

	var resp api.SyncResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		return nil, fmt.Errorf("failed to decode relay response: %w", err)
	}

	if resp.Status == api.StatusError {
		return nil, &RelayError{Message: resp.Error}
	}

	return &resp, nil
}
