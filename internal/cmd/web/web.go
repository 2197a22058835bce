// Package web parses web service flags and launches the HTTP server.
package web

import (
	"context"
	"flag"
	"fmt"
	"time"

	entrypoint "github.com/louisbranch/renderdemo/internal/platform/cmd"
	"github.com/louisbranch/renderdemo/internal/services/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr     string        `env:"RENDERDEMO_WEB_HTTP_ADDR" envDefault:"localhost:8080"`
	InstanceTTL  time.Duration `env:"RENDERDEMO_WEB_INSTANCE_TTL" envDefault:"30m"`
	MaxInstances int           `env:"RENDERDEMO_WEB_MAX_INSTANCES" envDefault:"1024"`
	HTMXURL      string        `env:"RENDERDEMO_WEB_HTMX_URL" envDefault:"https://unpkg.com/htmx.org@2.0.4"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.DurationVar(&cfg.InstanceTTL, "instance-ttl", cfg.InstanceTTL, "Idle lifetime of an echo view instance")
	fs.IntVar(&cfg.MaxInstances, "max-instances", cfg.MaxInstances, "Maximum live echo view instances")
	fs.StringVar(&cfg.HTMXURL, "htmx-url", cfg.HTMXURL, "htmx script URL loaded by pages")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(ctx, web.Config{
			HTTPAddr:     cfg.HTTPAddr,
			HTMXURL:      cfg.HTMXURL,
			InstanceTTL:  cfg.InstanceTTL,
			MaxInstances: cfg.MaxInstances,
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
