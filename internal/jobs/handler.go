package jobs

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=jobs_test

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	log "github.com/sirupsen/logrus"
	"go.uber.org/multierr"
)

const refreshTimeout = 5 * time.Minute

type refresher interface {
	Refresh(ctx context.Context) (*Report, error)
}

type Handler struct {
	refresher refresher
}

func NewHandler(refresher refresher) *Handler {
	return &Handler{
		refresher: refresher,
	}
}

type refreshResponse struct {
	*Report
	Errors []string `json:"errors,omitempty"`
}

// HandleRefresh runs the refresh pipeline synchronously. Partial failures
// still answer 200 with the errors listed.
func (h *Handler) HandleRefresh(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.jobs.refresh")
	defer span.End()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), refreshTimeout)
	defer cancel()

	report, err := h.refresher.Refresh(ctx)
	if err != nil {
		if errors.Is(err, ErrRefreshRunning) {
			http.Error(w, "refresh already running", http.StatusConflict)
			return
		}
		log.Errorf("manual refresh: %s", err)
		http.Error(w, "refresh failed", http.StatusInternalServerError)
		return
	}

	resp := refreshResponse{Report: report}
	for _, e := range multierr.Errors(report.Err) {
		resp.Errors = append(resp.Errors, e.Error())
	}
	pkg.WriteJSON(w, resp, http.StatusOK)
}
