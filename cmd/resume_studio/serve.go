package main

import (
	"fmt"

	"github.com/jonathan/resume-studio/internal/config"
	"github.com/jonathan/resume-studio/internal/server"
	"github.com/spf13/cobra"
)

func newServeCmd(g *globalFlags) *cobra.Command {
	var flags config.Config

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the REST API server",
		Long: `Start an HTTP server exposing job scorecards, highlighting, LaTeX export and the
resume-editing routes. Editing routes require a bearer token signed with JWT_SECRET.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := resolveConfig(cmd, g, flags)
			if err != nil {
				return err
			}
			if cfg.DatabaseURL == "" {
				return fmt.Errorf("DATABASE_URL environment variable is required")
			}

			jwtConfig, err := config.NewJWTConfig()
			if err != nil {
				return fmt.Errorf("failed to create JWT config: %w", err)
			}

			srv, err := server.New(server.Config{
				Port:        cfg.Port,
				DatabaseURL: cfg.DatabaseURL,
				RedisURL:    cfg.RedisURL,
				JWT:         jwtConfig,
			})
			if err != nil {
				return fmt.Errorf("failed to create server: %w", err)
			}
			return srv.Start()
		},
	}

	cmd.Flags().IntVar(&flags.Port, "port", config.DefaultPort, "Port to listen on")
	return cmd
}
