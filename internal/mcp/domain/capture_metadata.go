package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

// FetchMetadataTool defines the MCP tool schema for metadata lookups.
func FetchMetadataTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "get_street_view_metadata",
		Description: "Looks up capture metadata (status, copyright, date, pano_id, coordinates) without fetching an image",
	}
}

// FetchMetadataHandler executes a metadata lookup. It touches no filesystem
// state and returns the upstream fields verbatim.
func FetchMetadataHandler(fetcher MetadataFetcher) mcp.ToolHandlerFor[FetchMetadataInput, FetchMetadataResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FetchMetadataInput) (*mcp.CallToolResult, FetchMetadataResult, error) {
		runCtx, cancel, callMeta, err := newCallContext(ctx)
		if err != nil {
			return nil, FetchMetadataResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		defer cancel()

		request := streetview.MetadataRequest{
			Location: streetview.Location{
				Address: input.Address,
				LatLng:  input.LatLng,
				PanoID:  input.PanoID,
			},
			Radius: input.Radius,
			Source: input.Source,
		}
		request.ApplyDefaults()
		if err := request.Validate(); err != nil {
			return nil, FetchMetadataResult{}, err
		}

		meta, err := fetcher.FetchMetadata(runCtx, request)
		if err != nil {
			return nil, FetchMetadataResult{}, err
		}

		result := FetchMetadataResult{
			Status:    meta.Status,
			Copyright: meta.Copyright,
			Date:      meta.Date,
			PanoID:    meta.PanoID,
		}
		if meta.Location != nil {
			lat, lng := meta.Location.Lat, meta.Location.Lng
			result.Lat = &lat
			result.Lng = &lng
		}
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}
