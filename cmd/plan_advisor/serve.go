package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/plan4you/plan-advisor/internal/config"
	"github.com/plan4you/plan-advisor/internal/db"
	"github.com/plan4you/plan-advisor/internal/llm"
	"github.com/plan4you/plan-advisor/internal/recommend"
	"github.com/plan4you/plan-advisor/internal/server"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  "Start an HTTP server that exposes the recommendation pipeline and catalog passthrough endpoints.",
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	if servePort != 0 {
		cfg.Server.Port = servePort
	}
	if err := cfg.ValidateForServe(); err != nil {
		return err
	}

	logger, err := config.NewLogger(cfg.Logging)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	ctx := context.Background()

	database, err := db.Connect(ctx, cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer database.Close()

	client, err := llm.NewGeminiClient(ctx, llm.DefaultConfig(), cfg.Gemini.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create generator client: %w", err)
	}
	defer func() { _ = client.Close() }()

	orchestrator := recommend.NewOrchestrator(client, logger, cfg.Gemini.CallTimeout)

	srv := server.New(cfg, database, orchestrator, logger)
	return srv.Start()
}
