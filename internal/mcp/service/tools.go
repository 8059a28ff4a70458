package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/mcp/domain"
	"github.com/louisbranch/streetview-mcp/internal/store"
)

// captureClient is the upstream surface the tool modules need.
type captureClient interface {
	domain.ImageFetcher
	domain.MetadataFetcher
}

type registrationTarget interface {
	AddTool(*mcp.Tool, any) error
}

type registrationModule struct {
	name     string
	register func(registrationTarget) error
}

const (
	imageryToolsModuleName = "imagery-tools"
	galleryToolsModuleName = "gallery-tools"
	listingToolsModuleName = "listing-tools"
)

func newRegistrationModules(client captureClient, images *store.ImageStore, galleries *store.GalleryStore) []registrationModule {
	return []registrationModule{
		{
			name: imageryToolsModuleName,
			register: func(registrar registrationTarget) error {
				return registerImageryTools(registrar, client, images)
			},
		},
		{
			name: galleryToolsModuleName,
			register: func(registrar registrationTarget) error {
				return registerGalleryTools(registrar, galleries)
			},
		},
		{
			name: listingToolsModuleName,
			register: func(registrar registrationTarget) error {
				return registerListingTools(registrar, images)
			},
		},
	}
}

func registerImageryTools(registrar registrationTarget, client captureClient, images *store.ImageStore) error {
	if err := registerTool(registrar, domain.FetchImageTool(), domain.FetchImageHandler(client, images)); err != nil {
		return err
	}
	return registerTool(registrar, domain.FetchMetadataTool(), domain.FetchMetadataHandler(client))
}

func registerGalleryTools(registrar registrationTarget, galleries *store.GalleryStore) error {
	return registerTool(registrar, domain.CreateGalleryTool(), domain.CreateGalleryHandler(galleries))
}

func registerListingTools(registrar registrationTarget, images *store.ImageStore) error {
	return registerTool(registrar, domain.ListImagesTool(), domain.ListImagesHandler(images))
}

func registerTool(registrar registrationTarget, tool *mcp.Tool, handler any) error {
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	return registrar.AddTool(tool, handler)
}

type serverRegistrationAdapter struct {
	server *mcp.Server
}

func (r serverRegistrationAdapter) AddTool(tool *mcp.Tool, handler any) error {
	return addTool(r.server, tool, handler)
}

type toolRegistrar struct {
	matches func(any) bool
	add     func(*mcp.Server, *mcp.Tool, any)
}

func newToolRegistrar[I any, O any]() toolRegistrar {
	return toolRegistrar{
		matches: func(handler any) bool {
			_, ok := handler.(mcp.ToolHandlerFor[I, O])
			return ok
		},
		add: func(server *mcp.Server, tool *mcp.Tool, handler any) {
			mcp.AddTool(server, tool, handler.(mcp.ToolHandlerFor[I, O]))
		},
	}
}

var toolRegistrars = []toolRegistrar{
	newToolRegistrar[domain.FetchImageInput, domain.FetchImageResult](),
	newToolRegistrar[domain.FetchMetadataInput, domain.FetchMetadataResult](),
	newToolRegistrar[domain.CreateGalleryInput, domain.CreateGalleryResult](),
	newToolRegistrar[domain.ListImagesInput, domain.ListImagesResult](),
}

func addTool(server *mcp.Server, tool *mcp.Tool, handler any) error {
	for _, registrar := range toolRegistrars {
		if registrar.matches(handler) {
			registrar.add(server, tool, handler)
			return nil
		}
	}
	toolName := "<nil>"
	if tool != nil {
		toolName = tool.Name
	}
	return fmt.Errorf("registration adapter does not support handler type %T for tool %q", handler, toolName)
}
