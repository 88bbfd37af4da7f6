package spotify

//go:generate mockgen -source=$GOFILE -destination=tracker_mocks_test.go -package=spotify_test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"
)

var ErrNoClient = errors.New("spotify client not authenticated")

const saveTimeout = 10 * time.Second

type tracksRepo interface {
	Add(ctx context.Context, track TrackRecord) error
}

// PlayerClient is the part of the Web API client the tracker polls.
type PlayerClient interface {
	PlayerCurrentlyPlaying(ctx context.Context, opts ...spotify.RequestOption) (*spotify.CurrentlyPlaying, error)
}

// Tracker polls the player and hands finished plays to a single worker
// through a bounded queue. Full queues drop sessions.
type Tracker struct {
	repo      tracksRepo
	interval  time.Duration
	queueSize int
	metrics   *metrics.Manager

	mu     sync.Mutex
	client PlayerClient
	run    *trackerRun
}

// trackerRun is one Start..Stop cycle. Each run owns its WaitGroup so a
// Stop still draining never shares it with the next Start.
type trackerRun struct {
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewTracker(repo tracksRepo, client PlayerClient, interval time.Duration, queueSize int, metricsManager *metrics.Manager) *Tracker {
	if queueSize < 1 {
		queueSize = 1
	}
	return &Tracker{
		repo:      repo,
		client:    client,
		interval:  interval,
		queueSize: queueSize,
		metrics:   metricsManager,
	}
}

func (t *Tracker) SetClient(client PlayerClient) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.client = client
}

// Start is a no-op when already running.
func (t *Tracker) Start() error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.run != nil {
		return nil
	}
	if t.client == nil {
		return ErrNoClient
	}

	ctx, cancel := context.WithCancel(context.Background())
	queue := make(chan PlaybackSession, t.queueSize)
	run := &trackerRun{cancel: cancel}
	t.run = run

	run.wg.Add(2)
	go t.poll(ctx, &run.wg, t.client, queue)
	go t.work(&run.wg, queue)

	log.Infof("spotify tracker started, polling every %s", t.interval)
	return nil
}

// Stop ends polling, records the play in progress and waits for the worker
// to drain the queue.
func (t *Tracker) Stop() {
	t.mu.Lock()
	run := t.run
	t.run = nil
	t.mu.Unlock()

	if run == nil {
		return
	}
	run.cancel()
	run.wg.Wait()
	log.Infoln("spotify tracker stopped")
}

func (t *Tracker) IsRunning() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.run != nil
}

func (t *Tracker) Status() string {
	if t.IsRunning() {
		return "running"
	}
	return "stopped"
}

func (t *Tracker) poll(ctx context.Context, wg *sync.WaitGroup, client PlayerClient, queue chan<- PlaybackSession) {
	defer wg.Done()
	defer close(queue)

	var state PlaybackState
	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			if s := state.Flush(); s != nil {
				t.enqueue(queue, *s)
			}
			return
		case <-ticker.C:
			cp, err := client.PlayerCurrentlyPlaying(ctx)
			if err != nil {
				if !errors.Is(err, context.Canceled) {
					log.Errorf("spotify: currently playing: %s", err)
				}
				continue
			}
			if s := state.Observe(cp, time.Now()); s != nil {
				t.enqueue(queue, *s)
			}
		}
	}
}

func (t *Tracker) enqueue(queue chan<- PlaybackSession, s PlaybackSession) {
	select {
	case queue <- s:
		t.metrics.GaugeSpotifyBacklog.Set(float64(len(queue)))
	default:
		log.Warnf("spotify: queue full, dropping play of %s", s.TrackName)
	}
}

func (t *Tracker) work(wg *sync.WaitGroup, queue <-chan PlaybackSession) {
	defer wg.Done()

	for s := range queue {
		t.metrics.GaugeSpotifyBacklog.Set(float64(len(queue)))
		if err := t.save(s); err != nil {
			log.Errorf("spotify: save play of %s: %s", s.TrackName, err)
		}
	}
}

func (t *Tracker) save(s PlaybackSession) (err error) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	ctx, span := tracing.GlobalTracer.Start(ctx, "spotify.tracker.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	record := s.Record()
	if err := t.repo.Add(ctx, record); err != nil {
		return err
	}
	t.metrics.CounterTracksRecorded.WithLabelValues(strconv.FormatBool(record.Skipped)).Inc()
	log.Debugf("spotify: %s played %.0f%%", record.TrackName, record.PercentPlayed)
	return nil
}
