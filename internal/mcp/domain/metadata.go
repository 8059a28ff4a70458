package domain

import (
	"context"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/id"
	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

// invocationIDKey labels the correlation identifier in tool result metadata.
const invocationIDKey = "invocation_id"

// callTimeout bounds a single tool invocation, including the outbound
// capture request and any filesystem work.
const callTimeout = 60 * time.Second

// ToolCallMetadata carries correlation identifiers for MCP tool calls.
type ToolCallMetadata struct {
	InvocationID string
}

// NewInvocationID generates an invocation identifier for a tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// CallToolResultWithMetadata builds a tool result with correlation metadata.
func CallToolResultWithMetadata(meta ToolCallMetadata) *mcp.CallToolResult {
	result := &mcp.CallToolResult{}
	if meta.InvocationID != "" {
		result.Meta = map[string]any{invocationIDKey: meta.InvocationID}
	}
	return result
}

// ImageFetcher fetches raw image bytes from the capture API.
type ImageFetcher interface {
	FetchImage(ctx context.Context, req streetview.ImageRequest) ([]byte, error)
}

// MetadataFetcher fetches capture metadata from the capture API.
type MetadataFetcher interface {
	FetchMetadata(ctx context.Context, req streetview.MetadataRequest) (streetview.Metadata, error)
}

// newCallContext generates an invocation id and bounds the call duration.
func newCallContext(ctx context.Context) (context.Context, context.CancelFunc, ToolCallMetadata, error) {
	invocationID, err := NewInvocationID()
	if err != nil {
		return nil, nil, ToolCallMetadata{}, err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	runCtx, cancel := context.WithTimeout(ctx, callTimeout)
	return runCtx, cancel, ToolCallMetadata{InvocationID: invocationID}, nil
}

// formatTimestamp returns an RFC3339 timestamp or empty string.
func formatTimestamp(ts time.Time) string {
	if ts.IsZero() {
		return ""
	}
	return ts.Format(time.RFC3339)
}
