// internal/common/http/rest.go
package http

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"recruit-backoffice/internal/common/errors"
)

// TokenSource supplies a bearer token for upstream requests. Implementations
// are expected to cache tokens until expiry.
type TokenSource interface {
	Token(ctx context.Context) (string, error)
}

// RESTClient is the shared base for the thin CRUD wrappers over the upstream
// ATS backend. It carries no retry, no caching and no request de-duplication;
// callers re-fetch after mutation.
type RESTClient struct {
	baseURL    string
	tokens     TokenSource
	httpClient *http.Client
}

// NewRESTClient creates a client rooted at baseURL. tokens may be nil for
// unauthenticated upstreams (local development).
func NewRESTClient(baseURL string, timeout time.Duration, tokens TokenSource) *RESTClient {
	return &RESTClient{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		tokens:  tokens,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Get issues a GET and decodes the JSON response into out.
func (c *RESTClient) Get(ctx context.Context, path string, query url.Values, out interface{}) error {
	return c.doJSON(ctx, http.MethodGet, path, query, nil, out)
}

// Post issues a POST with a JSON body and decodes the response into out.
func (c *RESTClient) Post(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPost, path, nil, body, out)
}

// Put issues a PUT with a JSON body and decodes the response into out.
func (c *RESTClient) Put(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPut, path, nil, body, out)
}

// Patch issues a PATCH with a JSON body and decodes the response into out.
func (c *RESTClient) Patch(ctx context.Context, path string, body, out interface{}) error {
	return c.doJSON(ctx, http.MethodPatch, path, nil, body, out)
}

// Delete issues a DELETE. Most upstream resources answer 204 with no body.
func (c *RESTClient) Delete(ctx context.Context, path string) error {
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, nil)
}

// Download fetches a binary payload (e.g. a rendered invoice PDF) and
// returns the bytes together with the content type.
func (c *RESTClient) Download(ctx context.Context, path string) ([]byte, string, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, "", err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, "", wrapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, "", errors.NewUpstreamBadResponseError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, "", statusError(resp.StatusCode, body)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

func (c *RESTClient) doJSON(ctx context.Context, method, path string, query url.Values, body, out interface{}) error {
	var payload io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		payload = bytes.NewBuffer(jsonData)
	}

	req, err := c.newRequest(ctx, method, path, query, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return wrapTransportError(ctx, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewUpstreamBadResponseError(err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return statusError(resp.StatusCode, respBody)
	}

	if out == nil || len(respBody) == 0 {
		return nil
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return errors.NewUpstreamBadResponseError(err)
	}
	return nil
}

func (c *RESTClient) newRequest(ctx context.Context, method, path string, query url.Values, body io.Reader) (*http.Request, error) {
	u := c.baseURL + path
	if len(query) > 0 {
		u = u + "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, u, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.tokens != nil {
		token, err := c.tokens.Token(ctx)
		if err != nil {
			return nil, errors.NewAuthTokenFailedError(err)
		}
		req.Header.Set("Authorization", "Bearer "+token)
	}

	return req, nil
}

// statusError builds the wrapper error contract: the details carry the
// stringified JSON error body when the upstream sent one, otherwise an
// HTTP-status-derived message.
func statusError(status int, body []byte) error {
	detail := strings.TrimSpace(string(body))
	if detail == "" || !json.Valid(body) {
		detail = fmt.Sprintf("HTTP %d: %s", status, http.StatusText(status))
	}
	if status == http.StatusNotFound {
		return errors.NewResourceNotFoundError("upstream resource", detail)
	}
	return errors.NewUpstreamRequestFailedError(status, detail)
}

func wrapTransportError(ctx context.Context, err error) error {
	if ctx.Err() == context.DeadlineExceeded {
		return errors.NewUpstreamTimeoutError("upstream request")
	}
	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.NewUpstreamTimeoutError("upstream request")
	}
	return errors.NewUpstreamUnavailableError(err)
}
