package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"os/signal"
	"syscall"

	"github.com/2beens/fitdash/internal"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/logging"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
)

func main() {
	fmt.Println("starting ...")

	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path for the TOML config file")
	flag.Parse()

	log.Warnf("---->> running in [%s] environment", *env)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		panic(err)
	}

	flushSentry := logging.Setup(logging.LoggerSetupParams{
		LogFileName:      cfg.LogsPath,
		LogToStdout:      cfg.LogToStdout,
		LogLevel:         cfg.LogLevel,
		LogFormatJSON:    cfg.LogFormatJSON,
		Environment:      *env,
		SentryEnabled:    cfg.SentryEnabled,
		SentryDSN:        os.Getenv("SENTRY_DSN"),
		SentryServerName: "fitdash-service",
	})
	defer flushSentry()

	log.Debugf("using port: %d", cfg.Port)
	log.Debugf("using server logs path: [%s]", cfg.LogsPath)

	versionInfo, err := tryGetLastCommitHash()
	if err != nil {
		log.Tracef("failed to get last commit hash / version info: %s", err)
	} else {
		log.Tracef("running version: %s", versionInfo)
	}

	adminUsername := os.Getenv("FITDASH_ADMIN_USERNAME")
	adminPasswordHash := os.Getenv("FITDASH_ADMIN_PASSWORD_HASH")
	if adminUsername == "" || adminPasswordHash == "" {
		log.Fatalln("admin username and password not set. use FITDASH_ADMIN_USERNAME and FITDASH_ADMIN_PASSWORD_HASH")
	}

	spotifyClientID := os.Getenv("FITDASH_SPOTIFY_CLIENT_ID")
	if spotifyClientID == "" {
		log.Errorf("spotify client id not set. use FITDASH_SPOTIFY_CLIENT_ID")
	}
	spotifyClientSecret := os.Getenv("FITDASH_SPOTIFY_CLIENT_SECRET")
	if spotifyClientSecret == "" {
		log.Errorf("spotify client secret not set. use FITDASH_SPOTIFY_CLIENT_SECRET")
	}

	mcpSecret := os.Getenv("FITDASH_MCP_SECRET")
	if mcpSecret == "" {
		log.Warnln("mcp secret not set, /mcp will reject every request. use FITDASH_MCP_SECRET")
	}

	redisPassword := os.Getenv("FITDASH_REDIS_PASS")
	if redisPassword == "" {
		log.Errorf("redis password not set. use FITDASH_REDIS_PASS")
	}

	honeycombEnabled := cfg.OTelTracingEnabled || os.Getenv("HONEYCOMB_ENABLED") == "true"
	if honeycombEnabled {
		if honeycombApiKey := os.Getenv("HONEYCOMB_API_KEY"); honeycombApiKey == "" {
			log.Warnln("HONEYCOMB_API_KEY env var not set")
		}
	} else {
		log.Debugln("honeycomb tracing disabled")
	}

	chOsInterrupt := make(chan os.Signal, 1)
	signal.Notify(chOsInterrupt, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())

	server, err := internal.NewServer(
		ctx,
		internal.NewServerParams{
			Config:                     cfg,
			VersionInfo:                versionInfo,
			AdminUsername:              adminUsername,
			AdminPasswordHash:          adminPasswordHash,
			RedisPassword:              redisPassword,
			PostgresPassword:           os.Getenv("FITDASH_POSTGRES_PASS"),
			MCPSecret:                  mcpSecret,
			HoneycombTracingEnabled:    honeycombEnabled,
			SpotifyClientID:            spotifyClientID,
			SpotifyClientSecret:        spotifyClientSecret,
			GoogleDriveCredentialsFile: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
	)
	if err != nil {
		log.Fatalf("new server: %s", err)
	}

	server.Serve(ctx)

	receivedSig := <-chOsInterrupt
	log.Warnf("signal [%s] received, killing everything ...", receivedSig)
	cancel()

	server.GracefulShutdown()
}

// tryGetLastCommitHash will try to get the last commit hash
// assumes that the built main executable is in project root
func tryGetLastCommitHash() (string, error) {
	cmd := exec.Command("/usr/bin/git", "rev-parse", "HEAD")
	stdout, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return pkg.BytesToString(stdout), nil
}
