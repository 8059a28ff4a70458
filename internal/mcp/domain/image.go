package domain

import (
	"bytes"
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/store"
	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

// FetchImageTool defines the MCP tool schema for fetching an image.
func FetchImageTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "fetch_street_view",
		Description: "Fetches a Street View image for an address, lat_lng pair, or pano_id and saves it as a JPEG",
	}
}

// FetchImageHandler executes an image fetch-and-save request. Validation
// runs before any I/O, and the existence check precedes the network call so
// a conflicting filename never costs an upstream request.
func FetchImageHandler(fetcher ImageFetcher, images *store.ImageStore) mcp.ToolHandlerFor[FetchImageInput, FetchImageResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input FetchImageInput) (*mcp.CallToolResult, FetchImageResult, error) {
		runCtx, cancel, callMeta, err := newCallContext(ctx)
		if err != nil {
			return nil, FetchImageResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		defer cancel()

		filename := strings.TrimSpace(input.Filename)
		if err := validateFilename(filename); err != nil {
			return nil, FetchImageResult{}, err
		}

		request := streetview.ImageRequest{
			Location: streetview.Location{
				Address: input.Address,
				LatLng:  input.LatLng,
				PanoID:  input.PanoID,
			},
			Size:    input.Size,
			Heading: input.Heading,
			Pitch:   input.Pitch,
			FOV:     input.FOV,
			Radius:  input.Radius,
			Source:  input.Source,
		}
		request.ApplyDefaults()
		if err := request.Validate(); err != nil {
			return nil, FetchImageResult{}, err
		}

		if images.Exists(filename) {
			return nil, FetchImageResult{}, &streetview.ConflictError{Path: images.Path(filename)}
		}

		data, err := fetcher.FetchImage(runCtx, request)
		if err != nil {
			return nil, FetchImageResult{}, err
		}

		img, err := imaging.Decode(bytes.NewReader(data))
		if err != nil {
			return nil, FetchImageResult{}, &streetview.UpstreamError{Detail: fmt.Sprintf("decode image response: %v", err)}
		}

		saved, err := images.SaveJPEG(img, filename)
		if err != nil {
			return nil, FetchImageResult{}, err
		}

		result := FetchImageResult{
			Filename: saved.Filename,
			Path:     saved.Path,
			Metadata: SavedImageMetadata{
				Width:     saved.Width,
				Height:    saved.Height,
				Format:    saved.Format,
				SizeBytes: saved.SizeBytes,
			},
			Parameters: effectiveParameters(request),
		}
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}

// effectiveParameters echoes the parameters sent upstream. Radius is left
// out for pano_id lookups even though a default exists internally.
func effectiveParameters(request streetview.ImageRequest) EffectiveParameters {
	params := EffectiveParameters{
		Address: strings.TrimSpace(request.Location.Address),
		LatLng:  strings.TrimSpace(request.Location.LatLng),
		PanoID:  strings.TrimSpace(request.Location.PanoID),
		Size:    request.Size,
		Heading: request.Heading,
		Pitch:   request.Pitch,
		FOV:     request.FOV,
		Source:  request.Source,
	}
	if request.Location.UsesRadius() {
		params.Radius = request.Radius
	}
	return params
}

// validateFilename rejects empty names and names that would escape the
// output directory.
func validateFilename(filename string) error {
	if filename == "" {
		return streetview.NewValidationError("filename is required")
	}
	if filepath.Base(filename) != filename {
		return streetview.NewValidationError("filename %q must not contain path separators", filename)
	}
	return nil
}
