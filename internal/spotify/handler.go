package spotify

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=spotify_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"sync"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
)

type trackerControl interface {
	SetClient(client PlayerClient)
	Start() error
	Stop()
	Status() string
}

type tracksPager interface {
	GetPage(ctx context.Context, page, size int) ([]TrackRecord, error)
}

type Handler struct {
	auth               *spotifyauth.Authenticator
	tracker            trackerControl
	repo               tracksPager
	startOnAuth        bool
	randStateGenerator func() string

	mu    sync.Mutex
	state string
}

// https://developer.spotify.com/documentation/web-api/reference/get-the-users-currently-playing-track

func NewHandler(
	redirectURI string,
	spotifyClientID string,
	spotifyClientSecret string,
	randStateGenerator func() string,
	tracker trackerControl,
	repo tracksPager,
	startOnAuth bool,
) *Handler {
	return &Handler{
		auth: spotifyauth.New(
			spotifyauth.WithRedirectURL(redirectURI),
			spotifyauth.WithScopes(
				spotifyauth.ScopeUserReadCurrentlyPlaying,
				spotifyauth.ScopeUserReadPlaybackState,
			),
			spotifyauth.WithClientID(spotifyClientID),
			spotifyauth.WithClientSecret(spotifyClientSecret),
		),
		randStateGenerator: randStateGenerator,
		tracker:            tracker,
		repo:               repo,
		startOnAuth:        startOnAuth,
	}
}

func GenerateStateString() string {
	state, err := pkg.GenerateRandomString(24)
	if err != nil {
		log.Errorf("generate spotify state: %s", err)
		return "fitdash-spotify-state"
	}
	return state
}

func (h *Handler) Authenticate(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "spotify.handler.authenticate")
	defer span.End()

	h.mu.Lock()
	h.state = h.randStateGenerator()
	state := h.state
	h.mu.Unlock()

	http.Redirect(w, r, h.auth.AuthURL(state), http.StatusFound)
}

func (h *Handler) AuthRedirect(w http.ResponseWriter, r *http.Request) {
	var err error
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "spotify.handler.authRedirect")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	h.mu.Lock()
	state := h.state
	h.mu.Unlock()

	if state == "" || r.FormValue("state") != state {
		err = errors.New("state mismatch")
		http.Error(w, "state mismatch", http.StatusForbidden)
		return
	}

	tok, err := h.auth.Token(ctx, state, r)
	if err != nil {
		http.Error(w, "failed to get token", http.StatusForbidden)
		log.Errorf("failed to get token: %v", err)
		return
	}

	// the client outlives the request
	client := spotify.New(h.auth.Client(context.WithoutCancel(ctx), tok))
	h.tracker.SetClient(client)
	if h.startOnAuth {
		if err = h.tracker.Start(); err != nil {
			log.Errorf("start spotify tracker: %s", err)
		}
	}

	http.Redirect(w, r, "/spotify/tracker/status", http.StatusFound)
}

type TrackerStatusResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (h *Handler) GetTrackerStatus(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "spotify.handler.getTrackerStatus")
	defer span.End()

	pkg.WriteJSON(w, TrackerStatusResponse{Status: h.tracker.Status()}, http.StatusOK)
}

func (h *Handler) StartTracker(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "spotify.handler.startTracker")
	defer span.End()

	if err := h.tracker.Start(); err != nil {
		respMsg := TrackerStatusResponse{Status: h.tracker.Status(), Message: err.Error()}
		pkg.WriteJSON(w, respMsg, http.StatusBadRequest)
		return
	}
	pkg.WriteJSON(w, TrackerStatusResponse{Status: "running"}, http.StatusOK)
}

func (h *Handler) StopTracker(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "spotify.handler.stopTracker")
	defer span.End()

	h.tracker.Stop()
	pkg.WriteJSON(w, TrackerStatusResponse{Status: "stopped"}, http.StatusOK)
}

func (h *Handler) GetTracksPage(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil || page < 1 {
		http.Error(w, "invalid page", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil || size < 1 {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	tracks, err := h.repo.GetPage(r.Context(), page, size)
	if err != nil {
		log.Errorf("get tracks page: %s", err)
		http.Error(w, "failed to get tracks", http.StatusInternalServerError)
		return
	}
	if tracks == nil {
		tracks = []TrackRecord{}
	}
	pkg.WriteJSON(w, tracks, http.StatusOK)
}
