package streetview

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("github.com/louisbranch/streetview-mcp/internal/streetview")

const (
	defaultBaseURL = "https://maps.googleapis.com"
	imagePath      = "/maps/api/streetview"
	metadataPath   = "/maps/api/streetview/metadata"

	// defaultTimeout bounds each outbound request when the caller supplies
	// no HTTP client of its own.
	defaultTimeout = 30 * time.Second

	// maxErrorBody caps how much of an upstream error body is echoed back.
	maxErrorBody = 4096
)

// Config configures the capture API client.
type Config struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client
}

// Client calls the Street View Static API image and metadata endpoints.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient builds a capture API client, defaulting the base URL and HTTP
// client when unset.
func NewClient(cfg Config) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: defaultTimeout}
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = defaultBaseURL
	}
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:     cfg.APIKey,
		httpClient: cfg.HTTPClient,
	}
}

// Metadata is the upstream metadata payload, returned verbatim.
type Metadata struct {
	Status    string  `json:"status"`
	Copyright string  `json:"copyright,omitempty"`
	Date      string  `json:"date,omitempty"`
	PanoID    string  `json:"pano_id,omitempty"`
	Location  *LatLng `json:"location,omitempty"`
}

// LatLng is a coordinate pair as reported by the metadata endpoint.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// FetchImage requests raw image bytes for a validated request. The request
// is validated again here so the client stays safe to use directly.
func (c *Client) FetchImage(ctx context.Context, req ImageRequest) ([]byte, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := c.requireKey(); err != nil {
		return nil, err
	}

	body, err := c.get(ctx, imagePath, req.query(c.apiKey).Encode())
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, &UpstreamError{Detail: "image endpoint returned an empty body"}
	}
	return body, nil
}

// FetchMetadata requests capture metadata for a validated request.
func (c *Client) FetchMetadata(ctx context.Context, req MetadataRequest) (Metadata, error) {
	req.ApplyDefaults()
	if err := req.Validate(); err != nil {
		return Metadata{}, err
	}
	if err := c.requireKey(); err != nil {
		return Metadata{}, err
	}

	body, err := c.get(ctx, metadataPath, req.query(c.apiKey).Encode())
	if err != nil {
		return Metadata{}, err
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return Metadata{}, &UpstreamError{Detail: fmt.Sprintf("decode metadata response: %v", err)}
	}
	if meta.Status == "" {
		return Metadata{}, &UpstreamError{Detail: "metadata response is missing a status"}
	}
	return meta, nil
}

// get performs one GET against the capture API and classifies failures.
// Each call is traced as a client span; the query string stays out of the
// span attributes because it carries the API key.
func (c *Client) get(ctx context.Context, path, rawQuery string) (body []byte, err error) {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, span := tracer.Start(ctx, "capture.get",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("http.request.method", http.MethodGet),
			attribute.String("url.path", path),
		),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		span.End()
	}()

	url := c.baseURL + path + "?" + rawQuery
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build capture request: %w", err)
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	defer res.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", res.StatusCode))

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		detail, readErr := io.ReadAll(io.LimitReader(res.Body, maxErrorBody))
		if readErr != nil {
			return nil, &UpstreamError{StatusCode: res.StatusCode, Detail: "error body unreadable"}
		}
		return nil, &UpstreamError{StatusCode: res.StatusCode, Detail: strings.TrimSpace(string(detail))}
	}

	body, err = io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Err: err}
	}
	return body, nil
}

// requireKey rejects calls before any network access when the API key is
// unset. A missing key is a startup warning, not a hard failure, so every
// networked operation has to enforce it here.
func (c *Client) requireKey() error {
	if strings.TrimSpace(c.apiKey) == "" {
		return NewValidationError("capture API key is not configured (set STREETVIEW_API_KEY)")
	}
	return nil
}
