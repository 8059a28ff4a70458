package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisbranch/streetview-mcp/internal/store"
	"github.com/louisbranch/streetview-mcp/internal/streetview"
)

const (
	// serverName identifies this MCP server to clients.
	serverName = "Street View MCP"
	// serverVersion identifies the MCP server version.
	serverVersion = "0.1.0"
)

// Default output directories, created on first use.
const (
	DefaultImageDir   = "streetview_images"
	DefaultGalleryDir = "streetview_galleries"
)

// TransportKind identifies the MCP transport implementation.
type TransportKind string

const (
	// TransportStdio uses standard input/output for MCP.
	TransportStdio TransportKind = "stdio"
	// TransportHTTP runs MCP over streamable HTTP for remote clients.
	TransportHTTP TransportKind = "http"
)

// Config configures the MCP server.
type Config struct {
	// APIKey authenticates against the capture API. Its absence is a
	// startup warning, not a hard failure; networked operations reject
	// calls individually while it stays unset.
	APIKey string
	// BaseURL overrides the capture API origin, used by tests.
	BaseURL     string
	ImageDir    string
	GalleryDir  string
	HTTPTimeout time.Duration
	Transport   TransportKind
	// HTTPAddr is the HTTP listen address (e.g. "localhost:8081") for the
	// HTTP transport.
	HTTPAddr string
}

// Server hosts the MCP server.
type Server struct {
	mcpServer *mcp.Server
}

// New creates a configured MCP server with every tool registered against a
// capture API client and the two output directories.
func New(cfg Config) (*Server, error) {
	if strings.TrimSpace(cfg.ImageDir) == "" {
		cfg.ImageDir = DefaultImageDir
	}
	if strings.TrimSpace(cfg.GalleryDir) == "" {
		cfg.GalleryDir = DefaultGalleryDir
	}
	if strings.TrimSpace(cfg.APIKey) == "" {
		log.Printf("warning: capture API key is not set; fetch tools will fail until STREETVIEW_API_KEY is provided")
	}

	var httpClient *http.Client
	if cfg.HTTPTimeout > 0 {
		httpClient = &http.Client{Timeout: cfg.HTTPTimeout}
	}
	client := streetview.NewClient(streetview.Config{
		BaseURL:    cfg.BaseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: httpClient,
	})
	images := store.NewImageStore(cfg.ImageDir)
	galleries := store.NewGalleryStore(cfg.GalleryDir)

	mcpServer := mcp.NewServer(&mcp.Implementation{Name: serverName, Version: serverVersion}, nil)

	for _, module := range newRegistrationModules(client, images, galleries) {
		if err := module.register(serverRegistrationAdapter{server: mcpServer}); err != nil {
			return nil, fmt.Errorf("register MCP module %q: %w", module.name, err)
		}
	}

	return &Server{mcpServer: mcpServer}, nil
}

// Run is the service entrypoint and blocks until context cancellation. It
// is transport-agnostic so startup can choose stdio for local tools and
// HTTP for remote integrations.
func Run(ctx context.Context, cfg Config) error {
	if cfg.Transport == "" {
		cfg.Transport = TransportStdio
	}

	server, err := New(cfg)
	if err != nil {
		return err
	}

	switch cfg.Transport {
	case TransportStdio:
		return server.serveWithTransport(ctx, &mcp.StdioTransport{})
	case TransportHTTP:
		return server.serveHTTP(ctx, cfg.HTTPAddr)
	default:
		return fmt.Errorf("transport %q is not supported", cfg.Transport)
	}
}

// Serve starts the MCP server on stdio and blocks until it stops or the
// context ends.
func (s *Server) Serve(ctx context.Context) error {
	return s.serveWithTransport(ctx, &mcp.StdioTransport{})
}

// serveWithTransport starts the MCP server using the provided transport.
// Context cancellation is the normal shutdown path and is not an error.
func (s *Server) serveWithTransport(ctx context.Context, transport mcp.Transport) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if ctx == nil {
		ctx = context.Background()
	}
	err := s.mcpServer.Run(ctx, transport)
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		err = nil
	}
	if err != nil {
		return fmt.Errorf("serve MCP: %w", err)
	}
	return nil
}

// serveHTTP serves the MCP server over the SDK's streamable HTTP handler.
// Binding defaults to localhost so the server is not exposed beyond the
// local trust boundary without an explicit address.
func (s *Server) serveHTTP(ctx context.Context, addr string) error {
	if s == nil || s.mcpServer == nil {
		return fmt.Errorf("MCP server is not configured")
	}
	if strings.TrimSpace(addr) == "" {
		addr = "localhost:8081"
	}

	handler := mcp.NewStreamableHTTPHandler(func(*http.Request) *mcp.Server {
		return s.mcpServer
	}, nil)

	httpServer := &http.Server{Addr: addr, Handler: handler}

	shutdownDone := make(chan struct{})
	go func() {
		defer close(shutdownDone)
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			log.Printf("http shutdown: %v", err)
		}
	}()

	log.Printf("serving MCP over HTTP on %s", addr)
	err := httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		<-shutdownDone
		return nil
	}
	return err
}
