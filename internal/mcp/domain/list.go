package domain

import (
	"context"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/store"
)

// ListImagesTool defines the MCP tool schema for listing saved images.
func ListImagesTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "list_saved_images",
		Description: "Lists saved Street View images with their file and pixel metadata, most recent first",
	}
}

// ListImagesHandler enumerates the saved-imagery directory.
func ListImagesHandler(images *store.ImageStore) mcp.ToolHandlerFor[ListImagesInput, ListImagesResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, _ ListImagesInput) (*mcp.CallToolResult, ListImagesResult, error) {
		_, cancel, callMeta, err := newCallContext(ctx)
		if err != nil {
			return nil, ListImagesResult{}, fmt.Errorf("generate invocation id: %w", err)
		}
		defer cancel()

		saved, err := images.List()
		if err != nil {
			return nil, ListImagesResult{}, err
		}

		// Images is always a JSON array, never null, even when the
		// directory is empty.
		result := ListImagesResult{
			Count:  len(saved),
			Images: make([]SavedImageEntry, 0, len(saved)),
		}
		for _, img := range saved {
			result.Images = append(result.Images, SavedImageEntry{
				Filename:   img.Filename,
				Path:       img.Path,
				SizeBytes:  img.SizeBytes,
				Width:      img.Width,
				Height:     img.Height,
				Format:     img.Format,
				CreatedAt:  formatTimestamp(img.CreatedAt),
				ModifiedAt: formatTimestamp(img.ModifiedAt),
			})
		}
		return CallToolResultWithMetadata(callMeta), result, nil
	}
}
