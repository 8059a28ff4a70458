package domain

import (
	"context"
	"fmt"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/gallery"
	"github.com/louisbranch/streetview-mcp/internal/store"
	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

// defaultGalleryTitle is used when the caller provides no title.
const defaultGalleryTitle = "Street View Gallery"

// CreateGalleryTool defines the MCP tool schema for rendering a gallery page.
func CreateGalleryTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "create_gallery",
		Description: "Renders saved imagery and HTML fragments into a standalone gallery page",
	}
}

// CreateGalleryHandler executes a gallery render request. Pages are
// write-once; rendering the same filename twice conflicts.
func CreateGalleryHandler(galleries *store.GalleryStore) mcp.ToolHandlerFor[CreateGalleryInput, CreateGalleryResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input CreateGalleryInput) (*mcp.CallToolResult, CreateGalleryResult, error) {
		_, cancel, callMeta, err := newCallContext(ctx)
		if err != nil {
			return nil, CreateGalleryResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		defer cancel()

		filename := strings.TrimSpace(input.Filename)
		if err := validateFilename(filename); err != nil {
			return nil, CreateGalleryResult{}, err
		}
		if len(input.Fragments) == 0 {
			return nil, CreateGalleryResult{}, streetview.NewValidationError("at least one HTML fragment is required")
		}

		title := strings.TrimSpace(input.Title)
		if title == "" {
			title = defaultGalleryTitle
		}

		filename = gallery.Filename(filename)
		if galleries.Exists(filename) {
			return nil, CreateGalleryResult{}, &streetview.ConflictError{Path: galleries.Path(filename)}
		}

		html, err := gallery.Render(title, input.Fragments)
		if err != nil {
			return nil, CreateGalleryResult{}, err
		}

		path, err := galleries.WritePage(filename, html)
		if err != nil {
			return nil, CreateGalleryResult{}, err
		}

		result := CreateGalleryResult{
			Filename:      filename,
			Path:          path,
			Title:         title,
			FragmentCount: len(input.Fragments),
		}
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}
