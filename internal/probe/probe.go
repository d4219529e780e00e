// Package probe fetches a page served by the front-end and reads the
// configured endpoint back out of the rendered view.
package probe

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/jschnasse/read-env-example/internal/logging"
	"github.com/jschnasse/read-env-example/internal/view"
)

var (
	// ErrUnexpectedStatus is returned when the page does not answer 200 OK.
	ErrUnexpectedStatus = errors.New("probe: unexpected status")

	// ErrResponseTooLarge is returned when the body exceeds maxBody.
	ErrResponseTooLarge = errors.New("probe: response too large")

	// ErrUnrecognizedText is returned when the endpoint element does not
	// start with the view prefix.
	ErrUnrecognizedText = errors.New("probe: endpoint element lacks view prefix")
)

// maxBody caps how much of a response is read.
const maxBody = 1 << 20

// Result is what a probe observed. APIEndpoint is Text without the view
// prefix.
type Result struct {
	URL         string    `json:"url"`
	StatusCode  int       `json:"statusCode"`
	Text        string    `json:"text"`
	APIEndpoint string    `json:"apiEndpoint"`
	FetchedAt   time.Time `json:"fetchedAt"`
}

// Client is a net/http backed probe.
type Client struct {
	client *http.Client
	logger logging.Logger
}

// NewClient creates a Client. A nil httpClient gets a 30s timeout default.
func NewClient(logger logging.Logger, httpClient *http.Client) *Client {
	if logger == nil {
		logger = logging.NewNop()
	}
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		client: httpClient,
		logger: logger.With(logging.F("component", "probe")),
	}
}

// Fetch GETs url and extracts the view text from the response.
func (c *Client) Fetch(ctx context.Context, url string) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	c.logger.Debug("sending http request", logging.F("url", url))

	resp, err := c.client.Do(req)
	if err != nil {
		c.logger.Warn("http request failed", logging.F("url", url), logging.F("error", err))
		return nil, fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %d from %s", ErrUnexpectedStatus, resp.StatusCode, url)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBody+1))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	if len(body) > maxBody {
		return nil, fmt.Errorf("%w: more than %d bytes from %s", ErrResponseTooLarge, maxBody, url)
	}

	text, err := view.Extract(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("extracting view from %s: %w", url, err)
	}
	endpoint, ok := view.Endpoint(text)
	if !ok {
		return nil, fmt.Errorf("%w: %q from %s", ErrUnrecognizedText, text, url)
	}

	c.logger.Info("probed", logging.F("url", url), logging.F("api_endpoint", endpoint))

	return &Result{
		URL:         url,
		StatusCode:  resp.StatusCode,
		Text:        text,
		APIEndpoint: endpoint,
		FetchedAt:   time.Now(),
	}, nil
}
