package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Manager struct {
	// counters
	CounterRequests            *prometheus.CounterVec
	CounterHandleRequestPanic  prometheus.Counter
	CounterRateLimitedRequests prometheus.Counter
	CounterWorkflowRuns        *prometheus.CounterVec
	CounterActivitiesScored    prometheus.Counter
	CounterRefreshJobs         *prometheus.CounterVec
	CounterFitbodSetsImported  prometheus.Counter
	CounterTracksRecorded      *prometheus.CounterVec

	// gauges
	GaugeRequests       prometheus.Gauge
	GaugeLifeSignal     prometheus.Gauge
	GaugeWorkflowStep   prometheus.Gauge
	GaugeSpotifyBacklog prometheus.Gauge

	// histograms
	HistogramRequestDuration *prometheus.HistogramVec
	HistogramRefreshDuration prometheus.Histogram
}

func NewTestManager() *Manager {
	return NewManager("fitdash", "test_server", prometheus.NewRegistry())
}

func NewTestManagerAndRegistry() (*Manager, *prometheus.Registry) {
	reg := prometheus.NewRegistry()
	return NewManager("fitdash", "test_server", reg), reg
}

func NewManager(namespace, subsystem string, reg prometheus.Registerer) *Manager {
	factory := promauto.With(reg)

	counterRequests := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request",
		Help:      "The total number of incoming requests",
	}, []string{"method", "status"})
	counterHandleRequestPanic := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "handle_request_panic",
		Help:      "The total number of serve request panics",
	})
	counterRateLimitedRequests := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "rate_limited_requests",
		Help:      "The total number of rate limited requests",
	})
	counterWorkflowRuns := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workflow_runs",
		Help:      "Daily workflow runs by outcome",
	}, []string{"outcome"})
	counterActivitiesScored := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "activities_scored",
		Help:      "The total number of activities given stress scores",
	})
	counterRefreshJobs := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "refresh_jobs",
		Help:      "Refresh job executions by result",
	}, []string{"result"})
	counterFitbodSetsImported := factory.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "fitbod_sets_imported",
		Help:      "Strength sets stored from the fitbod export",
	})
	counterTracksRecorded := factory.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "spotify_tracks_recorded",
		Help:      "Finished playback sessions stored, by skipped flag",
	}, []string{"skipped"})

	gaugeRequests := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "current_requests",
		Help:      "Current number of requests served",
	})
	gaugeLifeSignal := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "life_signal",
		Help:      "Shows whether the service is alive",
	})
	gaugeWorkflowStep := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "workflow_step",
		Help:      "Step code of the latest daily recommendation",
	})
	gaugeSpotifyBacklog := factory.NewGauge(prometheus.GaugeOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "spotify_session_backlog",
		Help:      "Finished playback sessions waiting for the worker",
	})

	histogramRequestDuration := factory.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "request_duration_seconds",
		Help:      "Histogram of response time for requests in seconds",
		Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
	}, []string{"route", "method", "status_code"})
	histogramRefreshDuration := factory.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: subsystem,
		Name:      "refresh_duration_seconds",
		Help:      "Duration of a single refresh job in seconds",
		Buckets:   []float64{0.1, 0.5, 1, 5, 10, 30, 60, 120, 300},
	})

	return &Manager{
		CounterRequests:            counterRequests,
		CounterHandleRequestPanic:  counterHandleRequestPanic,
		CounterRateLimitedRequests: counterRateLimitedRequests,
		CounterWorkflowRuns:        counterWorkflowRuns,
		CounterActivitiesScored:    counterActivitiesScored,
		CounterRefreshJobs:         counterRefreshJobs,
		CounterFitbodSetsImported:  counterFitbodSetsImported,
		CounterTracksRecorded:      counterTracksRecorded,
		GaugeRequests:              gaugeRequests,
		GaugeLifeSignal:            gaugeLifeSignal,
		GaugeWorkflowStep:          gaugeWorkflowStep,
		GaugeSpotifyBacklog:        gaugeSpotifyBacklog,
		HistogramRequestDuration:   histogramRequestDuration,
		HistogramRefreshDuration:   histogramRefreshDuration,
	}
}
