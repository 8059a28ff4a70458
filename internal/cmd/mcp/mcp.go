// Package mcp parses MCP command flags and selects stdio or HTTP transport.
package mcp

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/louisbranch/streetview-mcp/internal/mcp/service"
	"github.com/louisbranch/streetview-mcp/internal/platform/config"
	"github.com/louisbranch/streetview-mcp/internal/platform/otel"
)

// Config holds MCP command configuration.
type Config struct {
	APIKey      string        `env:"STREETVIEW_API_KEY"`
	BaseURL     string        `env:"STREETVIEW_MCP_BASE_URL"`
	ImageDir    string        `env:"STREETVIEW_MCP_IMAGE_DIR"    envDefault:"streetview_images"`
	GalleryDir  string        `env:"STREETVIEW_MCP_GALLERY_DIR"  envDefault:"streetview_galleries"`
	HTTPTimeout time.Duration `env:"STREETVIEW_MCP_HTTP_TIMEOUT" envDefault:"30s"`
	HTTPAddr    string        `env:"STREETVIEW_MCP_HTTP_ADDR"    envDefault:"localhost:8081"`
	Transport   string        `env:"STREETVIEW_MCP_TRANSPORT"    envDefault:"stdio"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.ImageDir, "image-dir", cfg.ImageDir, "directory for fetched Street View images")
	fs.StringVar(&cfg.GalleryDir, "gallery-dir", cfg.GalleryDir, "directory for rendered gallery pages")
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP server address (for HTTP transport)")
	fs.StringVar(&cfg.Transport, "transport", cfg.Transport, "Transport type: stdio or http")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the MCP protocol adapter.
func Run(ctx context.Context, cfg Config) error {
	shutdown, err := otel.Setup(ctx, "mcp")
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown: %v", err)
		}
	}()

	return service.Run(ctx, service.Config{
		APIKey:      cfg.APIKey,
		BaseURL:     cfg.BaseURL,
		ImageDir:    cfg.ImageDir,
		GalleryDir:  cfg.GalleryDir,
		HTTPTimeout: cfg.HTTPTimeout,
		Transport:   service.TransportKind(cfg.Transport),
		HTTPAddr:    cfg.HTTPAddr,
	})
}
