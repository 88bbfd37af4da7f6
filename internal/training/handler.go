package training

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitdash/internal/activities"
	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const defaultFitnessDays = 90

type service interface {
	ScoreActivity(ctx context.Context, activityID int64) (*activities.Scores, error)
	ActivityDetail(ctx context.Context, activityID int64) (*ActivityDetail, error)
	Fitness(ctx context.Context, athleteID int, from, to time.Time) ([]FitnessDay, error)
}

type Handler struct {
	service   service
	athleteID int
	loc       *time.Location
}

func NewHandler(service service, athleteID int, loc *time.Location) *Handler {
	return &Handler{
		service:   service,
		athleteID: athleteID,
		loc:       loc,
	}
}

// HandleFitness serves CTL/ATL/TSB, ?from=YYYY-MM-DD&to=YYYY-MM-DD.
func (h *Handler) HandleFitness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.fitness")
	defer span.End()

	to := pkg.Day(time.Now().In(h.loc))
	from := to.AddDate(0, 0, -defaultFitnessDays)
	var err error
	if p := r.URL.Query().Get("from"); p != "" {
		if from, err = pkg.ParseDay(p, h.loc); err != nil {
			http.Error(w, "invalid from param", http.StatusBadRequest)
			return
		}
	}
	if p := r.URL.Query().Get("to"); p != "" {
		if to, err = pkg.ParseDay(p, h.loc); err != nil {
			http.Error(w, "invalid to param", http.StatusBadRequest)
			return
		}
	}
	if to.Before(from) {
		http.Error(w, "to before from", http.StatusBadRequest)
		return
	}

	days, err := h.service.Fitness(ctx, h.athleteID, from, to)
	if err != nil {
		log.Errorf("get fitness: %s", err)
		http.Error(w, "failed to get fitness", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, days, http.StatusOK)
}

func (h *Handler) HandleScoreActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.scoreactivity")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	scores, err := h.service.ScoreActivity(ctx, id)
	if err != nil {
		if errors.Is(err, activities.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("score activity %d: %s", id, err)
		http.Error(w, "failed to score activity", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, scores, http.StatusOK)
}

func (h *Handler) HandleGetActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.getactivity")
	defer span.End()

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		http.Error(w, "invalid activity id", http.StatusBadRequest)
		return
	}

	detail, err := h.service.ActivityDetail(ctx, id)
	if err != nil {
		if errors.Is(err, activities.ErrNotFound) {
			http.Error(w, "activity not found", http.StatusNotFound)
			return
		}
		log.Errorf("get activity %d: %s", id, err)
		http.Error(w, "failed to get activity", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, detail, http.StatusOK)
}
