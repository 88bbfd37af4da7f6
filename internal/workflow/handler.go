package workflow

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=workflow_test

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const maxPageSize = 500

type runner interface {
	Run(ctx context.Context, athleteID int, today time.Time) (*StepLogEntry, error)
	Reset(ctx context.Context, athleteID int) (int64, error)
	Steps(ctx context.Context, athleteID, page, size int) (*StepsPage, error)
}

type Handler struct {
	runner    runner
	athleteID int
	loc       *time.Location
	now       func() time.Time
}

func NewHandler(runner runner, athleteID int, loc *time.Location) *Handler {
	return &Handler{
		runner:    runner,
		athleteID: athleteID,
		loc:       loc,
		now:       time.Now,
	}
}

type runResponse struct {
	Skipped bool          `json:"skipped"`
	Reason  string        `json:"reason,omitempty"`
	Entry   *StepLogEntry `json:"entry,omitempty"`
}

func (h *Handler) HandleGetSteps(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	page, err := strconv.Atoi(vars["page"])
	if err != nil {
		log.Errorf("handle get steps page, from <page> param: %s", err)
		http.Error(w, "parse form error, parameter <page>", http.StatusBadRequest)
		return
	}
	size, err := strconv.Atoi(vars["size"])
	if err != nil {
		log.Errorf("handle get steps page, from <size> param: %s", err)
		http.Error(w, "parse form error, parameter <size>", http.StatusBadRequest)
		return
	}
	if page < 1 {
		http.Error(w, "invalid page (has to be non-zero value)", http.StatusBadRequest)
		return
	}
	if size < 1 || size > maxPageSize {
		http.Error(w, "invalid size", http.StatusBadRequest)
		return
	}

	steps, err := h.runner.Steps(r.Context(), h.athleteID, page, size)
	if err != nil {
		log.Errorf("get steps: %s", err)
		http.Error(w, "failed to get steps", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, steps, http.StatusOK)
}

func (h *Handler) HandleRun(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workflow.run")
	defer span.End()

	entry, err := h.runner.Run(ctx, h.athleteID, h.now().In(h.loc))
	switch {
	case err == nil:
		pkg.WriteJSON(w, runResponse{Entry: entry}, http.StatusCreated)
	case IsSkip(err):
		pkg.WriteJSON(w, runResponse{Skipped: true, Reason: err.Error()}, http.StatusOK)
	case errors.Is(err, ErrNoRecentData):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		log.Errorf("workflow run: %s", err)
		http.Error(w, "workflow run failed", http.StatusInternalServerError)
	}
}

func (h *Handler) HandleReset(w http.ResponseWriter, r *http.Request) {
	deleted, err := h.runner.Reset(r.Context(), h.athleteID)
	if err != nil {
		log.Errorf("workflow reset: %s", err)
		http.Error(w, "workflow reset failed", http.StatusInternalServerError)
		return
	}
	pkg.WriteJSON(w, map[string]int64{"deleted": deleted}, http.StatusOK)
}
