// Package app builds the repositories and services shared by the backend,
// the MCP stdio server and fitctl.
package app

import (
	"context"
	"fmt"

	"github.com/2beens/fitdash/internal/activities"
	"github.com/2beens/fitdash/internal/athlete"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/fitbod"
	"github.com/2beens/fitdash/internal/oura"
	"github.com/2beens/fitdash/internal/recovery"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/training"
	"github.com/2beens/fitdash/internal/workflow"
	"github.com/2beens/fitdash/pkg"

	"github.com/coocood/freecache"
	"github.com/jackc/pgx/v5/pgxpool"
	log "github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

const profileCacheSize = 1024 * 1024

type Components struct {
	Profiles   *athlete.CachedRepo
	Oura       *oura.Repo
	Activities *activities.Repo
	Fitbod     *fitbod.Repo

	Recovery *recovery.Service
	Training *training.Service
	Workflow *workflow.Runner
}

func New(pool *pgxpool.Pool, metricsManager *metrics.Manager) *Components {
	c := &Components{
		Profiles:   athlete.NewCachedRepo(athlete.NewRepo(pool), freecache.NewCache(profileCacheSize)),
		Oura:       oura.NewRepo(pool),
		Activities: activities.NewRepo(pool),
		Fitbod:     fitbod.NewRepo(pool),
	}

	c.Recovery = recovery.NewService(c.Oura)
	c.Training = training.NewService(c.Activities, c.Profiles, c.Oura, c.Fitbod, metricsManager)
	c.Workflow = workflow.NewRunner(
		workflow.NewRepo(pool),
		workflow.NewFlagRepo(pool),
		c.Recovery,
		c.Profiles,
		c.Activities,
		metricsManager,
	)
	if metricsManager != nil {
		c.Workflow.AddListener(workflow.NewGaugeListener(metricsManager.GaugeWorkflowStep))
	}

	return c
}

// FitbodImporter returns nil when no export location is configured. An
// explicit localPath wins over the configured locations.
func (c *Components) FitbodImporter(
	ctx context.Context,
	cfg *config.Config,
	localPath string,
	driveCredentialsFile string,
	metricsManager *metrics.Manager,
) (*fitbod.Importer, error) {
	var source fitbod.Source
	switch {
	case localPath != "":
		exists, err := pkg.PathExists(localPath, false)
		if err != nil {
			return nil, fmt.Errorf("fitbod export %s: %w", localPath, err)
		}
		if !exists {
			return nil, fmt.Errorf("fitbod export %s does not exist", localPath)
		}
		source = fitbod.FileSource{Path: localPath}
	case cfg.FitbodDriveFolderID != "":
		var opts []option.ClientOption
		if driveCredentialsFile != "" {
			opts = append(opts, option.WithCredentialsFile(driveCredentialsFile))
		}
		driveSource, err := fitbod.NewDriveSource(ctx, cfg.FitbodDriveFolderID, cfg.FitbodFileName, opts...)
		if err != nil {
			return nil, fmt.Errorf("drive source: %w", err)
		}
		source = driveSource
	case cfg.FitbodLocalPath != "":
		source = fitbod.FileSource{Path: cfg.FitbodLocalPath}
	default:
		log.Infoln("no fitbod export configured, strength import disabled")
		return nil, nil
	}
	return fitbod.NewImporter(source, c.Fitbod, cfg.AthleteID, cfg.Location(), metricsManager), nil
}
