// Package web wires configuration and startup for the web shell process.
package web

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/pietrodev07/RoadPlan/internal/platform/config"
	platformotel "github.com/pietrodev07/RoadPlan/internal/platform/otel"
	"github.com/pietrodev07/RoadPlan/internal/web"
)

// Config holds the web command configuration.
type Config struct {
	HTTPAddr          string `env:"ROADPLAN_HTTP_ADDR" envDefault:"localhost:8080"`
	AppName           string `env:"ROADPLAN_APP_NAME"`
	LoadingBarEnabled bool   `env:"ROADPLAN_LOADING_BAR_ENABLED" envDefault:"true"`
}

// ParseConfig loads configuration from the environment and lets flags
// override it.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := config.ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.AppName, "app-name", cfg.AppName, "Product name rendered in shell chrome")
	fs.BoolVar(&cfg.LoadingBarEnabled, "loading-bar", cfg.LoadingBarEnabled, "Render the shell loading indicator")
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Run starts the web shell server and blocks until the context ends.
func Run(ctx context.Context, cfg Config) error {
	shutdownTracing, err := platformotel.Setup(ctx, "roadplan-web")
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		if err := shutdownTracing(context.Background()); err != nil {
			log.Printf("shutdown tracing: %v", err)
		}
	}()

	server, err := web.NewServer(web.Config{
		HTTPAddr:          cfg.HTTPAddr,
		AppName:           cfg.AppName,
		LoadingBarEnabled: cfg.LoadingBarEnabled,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}

	if err := server.ListenAndServe(ctx); err != nil {
		return fmt.Errorf("serve web: %w", err)
	}
	return nil
}
