// Package main runs the fitdash MCP server over stdio for local MCP clients.
// The backend serves the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"os"

	"github.com/2beens/fitdash/internal/app"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/mcp"
	"github.com/2beens/fitdash/internal/telemetry/metrics"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx := context.Background()
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:     cfg.PostgresHost,
		DBPort:     cfg.PostgresPort,
		DBName:     cfg.PostgresDBName,
		DBPassword: os.Getenv("FITDASH_POSTGRES_PASS"),
	})
	if err != nil {
		log.Fatalf("db pool: %v", err)
	}
	defer dbPool.Close()

	components := app.New(dbPool, metrics.NewManager("fitdash", "mcp", prometheus.NewRegistry()))
	server := mcp.NewServer(
		mcp.NewContextService(
			cfg.AthleteID,
			mcp.NewPoolSchemaRepo(dbPool),
			components.Recovery,
			components.Workflow,
			components.Training,
		),
		cfg.Location(),
	)

	if err := server.Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}
