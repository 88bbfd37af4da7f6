package fitbod

//go:generate mockgen -source=$GOFILE -destination=importer_mocks_test.go -package=fitbod_test

import (
	"context"
	"fmt"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

type setStore interface {
	UpsertSets(ctx context.Context, sets []Set) (int64, error)
}

type Importer struct {
	source    Source
	store     setStore
	athleteID int
	loc       *time.Location
	metrics   *metrics.Manager
}

func NewImporter(source Source, store setStore, athleteID int, loc *time.Location, metricsManager *metrics.Manager) *Importer {
	return &Importer{
		source:    source,
		store:     store,
		athleteID: athleteID,
		loc:       loc,
		metrics:   metricsManager,
	}
}

// Import downloads and parses the export and upserts every working set.
// It returns the number of rows written.
func (i *Importer) Import(ctx context.Context) (_ int64, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.fitbod.import")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	body, err := i.source.Open(ctx)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := body.Close(); closeErr != nil {
			log.Errorf("fitbod: close export: %s", closeErr)
		}
	}()

	sets, err := Parse(body, i.athleteID, i.loc)
	if err != nil {
		return 0, fmt.Errorf("parse export: %w", err)
	}
	span.SetAttributes(attribute.Int("sets", len(sets)))
	if len(sets) == 0 {
		return 0, nil
	}

	written, err := i.store.UpsertSets(ctx, sets)
	if err != nil {
		return 0, fmt.Errorf("upsert sets: %w", err)
	}
	i.metrics.CounterFitbodSetsImported.Add(float64(written))
	log.Debugf("fitbod: %d sets parsed, %d written", len(sets), written)
	return written, nil
}
