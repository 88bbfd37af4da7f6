package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/coocood/freecache"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/2beens/fitdash/internal/app"
	"github.com/2beens/fitdash/internal/auth"
	"github.com/2beens/fitdash/internal/config"
	"github.com/2beens/fitdash/internal/db"
	"github.com/2beens/fitdash/internal/jobs"
	"github.com/2beens/fitdash/internal/mcp"
	"github.com/2beens/fitdash/internal/middleware"
	"github.com/2beens/fitdash/internal/recovery"
	"github.com/2beens/fitdash/internal/spotify"
	"github.com/2beens/fitdash/internal/telemetry/metrics"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/internal/training"
	"github.com/2beens/fitdash/internal/workflow"
	"github.com/2beens/fitdash/pkg"
)

const (
	sessionCleanupInterval = 8 * time.Hour
	maxRequestBodyBytes    = 1 << 20
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string
	mcpSecret         string

	config      *config.Config
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	loginChecker *auth.LoginChecker
	authService  *auth.Service

	recoveryService *recovery.Service
	trainingService *training.Service
	workflowRunner  *workflow.Runner
	spotifyTracker  *spotify.Tracker
	spotifyRepo     *spotify.Repo
	scheduler       *jobs.Scheduler
	readinessCache  *freecache.Cache

	spotifyClientID     string
	spotifyClientSecret string

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
	cancelBg       context.CancelFunc
}

type NewServerParams struct {
	Config                   *config.Config
	VersionInfo              string
	AdminUsername            string
	AdminPasswordHash        string
	RedisPassword            string
	PostgresPassword         string
	MCPSecret                string
	HoneycombTracingEnabled  bool
	SpotifyClientID          string
	SpotifyClientSecret      string
	GoogleDriveCredentialsFile string
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	cfg := params.Config

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         cfg.PostgresHost,
		DBPort:         cfg.PostgresPort,
		DBName:         cfg.PostgresDBName,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if err := db.Migrate(ctx, dbPool); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": cfg.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("fitdash", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(cfg.RedisHost, cfg.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	otelShutdown := func() {}
	if params.HoneycombTracingEnabled {
		// use honeycomb distro to setup OpenTelemetry SDK
		otelShutdown, err = tracing.HoneycombSetup()
		if err != nil {
			return nil, err
		}
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)

	loc := cfg.Location()
	components := app.New(dbPool, metricsManager)

	spotifyRepo := spotify.NewRepo(dbPool)
	spotifyTracker := spotify.NewTracker(
		spotifyRepo,
		nil, // set after oauth
		cfg.SpotifyPollInterval.Duration,
		cfg.SpotifyQueueSize,
		metricsManager,
	)

	importer, err := components.FitbodImporter(ctx, cfg, "", params.GoogleDriveCredentialsFile, metricsManager)
	if err != nil {
		return nil, fmt.Errorf("fitbod importer: %w", err)
	}
	var scheduler *jobs.Scheduler
	// a nil *Importer must not end up in the interface
	if importer != nil {
		scheduler = jobs.NewScheduler(importer, components.Training, components.Workflow, cfg.AthleteID, loc, cfg.RefreshInterval.Duration, metricsManager)
	} else {
		scheduler = jobs.NewScheduler(nil, components.Training, components.Workflow, cfg.AthleteID, loc, cfg.RefreshInterval.Duration, metricsManager)
	}

	return &Server{
		config:      cfg,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,
		mcpSecret:   params.MCPSecret,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		recoveryService: components.Recovery,
		trainingService: components.Training,
		workflowRunner:  components.Workflow,
		spotifyTracker:  spotifyTracker,
		spotifyRepo:     spotifyRepo,
		scheduler:       scheduler,
		readinessCache:  freecache.NewCache(cfg.ReadinessCacheSizeMB * 1024 * 1024),

		spotifyClientID:     params.SpotifyClientID,
		spotifyClientSecret: params.SpotifyClientSecret,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

type routerHandlers struct {
	recovery  *recovery.Handler
	training  *training.Handler
	workflow  *workflow.Handler
	jobs      *jobs.Handler
	auth      *auth.Handler
	spotify   *spotify.Handler
	mcp       http.Handler
	misc      *miscHandler
	limiter   middleware.RequestRateLimiter
	checker   *auth.LoginChecker
	mcpSecret string
}

func (s *Server) routerSetup() *mux.Router {
	loc := s.config.Location()
	mcpServer := mcp.NewServer(
		mcp.NewContextService(
			s.config.AthleteID,
			mcp.NewPoolSchemaRepo(s.dbPool),
			s.recoveryService,
			s.workflowRunner,
			s.trainingService,
		),
		loc,
	)

	return newRouter(routerHandlers{
		recovery: recovery.NewHandler(s.recoveryService, s.config.AthleteID, loc, s.readinessCache),
		training: training.NewHandler(s.trainingService, s.config.AthleteID, loc),
		workflow: workflow.NewHandler(s.workflowRunner, s.config.AthleteID, loc),
		jobs:     jobs.NewHandler(s.scheduler),
		auth:     auth.NewHandler(s.authService),
		spotify: spotify.NewHandler(
			s.config.SpotifyRedirectURI,
			s.spotifyClientID,
			s.spotifyClientSecret,
			spotify.GenerateStateString,
			s.spotifyTracker,
			s.spotifyRepo,
			s.config.SpotifyTrackerOn,
		),
		mcp: mcpsdk.NewStreamableHTTPHandler(func(*http.Request) *mcpsdk.Server {
			return mcpServer
		}, nil),
		misc:      newMiscHandler(s.versionInfo),
		limiter:   redis_rate.NewLimiter(s.redisClient),
		checker:   s.loginChecker,
		mcpSecret: s.mcpSecret,
	}, s.config, s.metricsManager)
}

func newRouter(h routerHandlers, cfg *config.Config, metricsManager *metrics.Manager) *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	r.HandleFunc("/", h.misc.handleRoot).Methods("GET").Name("root")
	r.HandleFunc("/version", h.misc.handleVersion).Methods("GET").Name("version")

	loginRouter := r.PathPrefix("/a").Subrouter()
	loginRouter.HandleFunc("/login", h.auth.HandleLogin).Methods("POST", "OPTIONS").Name("login")
	loginRouter.HandleFunc("/logout", h.auth.HandleLogout).Methods("GET", "OPTIONS").Name("logout")
	loginRouter.Use(middleware.RateLimit(
		h.limiter, "login", redis_rate.PerMinute(cfg.LoginRateLimitPerMinute), metricsManager,
	))

	r.HandleFunc("/recovery/baseline", h.recovery.HandleBaseline).Methods("GET", "OPTIONS").Name("recovery-baseline")
	r.HandleFunc("/recovery/readiness/{date}", h.recovery.HandleReadiness).Methods("GET", "OPTIONS").Name("recovery-readiness")

	r.HandleFunc("/workflow/steps/page/{page}/size/{size}", h.workflow.HandleGetSteps).Methods("GET", "OPTIONS").Name("workflow-steps")
	r.HandleFunc("/workflow/run", h.workflow.HandleRun).Methods("POST", "OPTIONS").Name("workflow-run")
	r.HandleFunc("/workflow/steps", h.workflow.HandleReset).Methods("DELETE", "OPTIONS").Name("workflow-reset")

	r.HandleFunc("/training/fitness", h.training.HandleFitness).Methods("GET", "OPTIONS").Name("training-fitness")
	r.HandleFunc("/training/activities/{id}/score", h.training.HandleScoreActivity).Methods("POST", "OPTIONS").Name("training-score")
	r.HandleFunc("/training/activities/{id}", h.training.HandleGetActivity).Methods("GET", "OPTIONS").Name("training-activity")

	jobsRouter := r.PathPrefix("/jobs").Subrouter()
	jobsRouter.HandleFunc("/refresh", h.jobs.HandleRefresh).Methods("POST", "OPTIONS").Name("jobs-refresh")
	jobsRouter.Use(middleware.RateLimit(
		h.limiter, "refresh", redis_rate.PerHour(cfg.RefreshRateLimitPerHour), metricsManager,
	))

	r.HandleFunc("/spotify/auth", h.spotify.Authenticate).Methods("GET").Name("spotify-auth")
	r.HandleFunc("/spotify/auth/redirect", h.spotify.AuthRedirect).Methods("GET").Name("spotify-redirect")
	r.HandleFunc("/spotify/tracker/status", h.spotify.GetTrackerStatus).Methods("GET", "OPTIONS").Name("spotify-status")
	r.HandleFunc("/spotify/tracker/start", h.spotify.StartTracker).Methods("GET", "OPTIONS").Name("spotify-start")
	r.HandleFunc("/spotify/tracker/stop", h.spotify.StopTracker).Methods("GET", "OPTIONS").Name("spotify-stop")
	r.HandleFunc("/spotify/tracks/page/{page}/size/{size}", h.spotify.GetTracksPage).Methods("GET", "OPTIONS").Name("spotify-tracks")

	r.PathPrefix("/mcp").Handler(h.mcp).Name("mcp")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(h.mcpSecret, h.checker)

	r.Use(middleware.PanicRecovery(metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(metricsManager))
	r.Use(middleware.Cors(cfg.AllowedOrigins))
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.LimitAndDrainBody(maxRequestBodyBytes))

	return r
}

func (s *Server) Serve(ctx context.Context) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(s.config.Host, strconv.Itoa(s.config.Port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "fitdash"),
		Addr:         ipAndPort,
		WriteTimeout: 6 * time.Minute, // manual refresh can take a while
		ReadTimeout:  time.Minute,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(s.promRegistry, promhttp.HandlerOpts{}))
	metricsAddr := net.JoinHostPort(s.config.PrometheusHost, s.config.PrometheusPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	if s.config.PrometheusMetrics {
		go func() {
			log.Debugf(" > metrics listening on: [%s]", metricsAddr)
			err := s.metricsHttpServer.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Fatalf("metrics service, listen and serve: %s", err)
			}
		}()
	}

	bgCtx, cancel := context.WithCancel(ctx)
	s.cancelBg = cancel
	go func() {
		ticker := time.NewTicker(sessionCleanupInterval)
		defer ticker.Stop()
		for {
			select {
			case <-bgCtx.Done():
				return
			case <-ticker.C:
				s.authService.ScanAndClean(bgCtx)
			}
		}
	}()
	s.scheduler.Start(bgCtx)

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")
	s.metricsManager.GaugeLifeSignal.Set(0)

	if s.cancelBg != nil {
		s.cancelBg()
	}
	s.scheduler.Stop()
	s.spotifyTracker.Stop()
	log.Trace("background jobs stopped ...")

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown http server")
		}
		log.Warnln("server shut down")
	}
	if s.metricsHttpServer != nil {
		if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
			log.Error(" >>> failed to gracefully shutdown metrics http server")
		}
		log.Warnln("metrics server shut down")
	}

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}
}

type miscHandler struct {
	versionInfo string
}

func newMiscHandler(versionInfo string) *miscHandler {
	return &miscHandler{versionInfo: versionInfo}
}

func (h *miscHandler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "fitdash")
}

func (h *miscHandler) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, h.versionInfo)
}
