package recovery

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=recovery_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/fitdash/internal/telemetry/tracing"
	"github.com/2beens/fitdash/pkg"

	"github.com/coocood/freecache"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

const (
	defaultBaselineDays = 90
	readinessCacheTTL   = 10 * 60 // seconds
)

type service interface {
	Baseline(ctx context.Context, athleteID int) ([]Day, error)
	Readiness(ctx context.Context, athleteID int, date time.Time) (*Day, error)
	DataVersion(ctx context.Context, athleteID int) (string, error)
}

type Handler struct {
	service   service
	athleteID int
	loc       *time.Location
	cache     *freecache.Cache
}

func NewHandler(service service, athleteID int, loc *time.Location, cache *freecache.Cache) *Handler {
	return &Handler{
		service:   service,
		athleteID: athleteID,
		loc:       loc,
		cache:     cache,
	}
}

// HandleBaseline serves the last N computed days, ?days=N.
func (h *Handler) HandleBaseline(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.baseline")
	defer span.End()

	daysCount := defaultBaselineDays
	if daysParam := r.URL.Query().Get("days"); daysParam != "" {
		n, err := strconv.Atoi(daysParam)
		if err != nil || n <= 0 {
			http.Error(w, "invalid days param", http.StatusBadRequest)
			return
		}
		daysCount = n
	}

	days, err := h.service.Baseline(ctx, h.athleteID)
	if err != nil {
		log.Errorf("get baseline: %s", err)
		http.Error(w, "failed to compute baseline", http.StatusInternalServerError)
		return
	}
	if len(days) > daysCount {
		days = days[len(days)-daysCount:]
	}

	pkg.WriteJSON(w, days, http.StatusOK)
}

// HandleReadiness serves one day, {date} as YYYY-MM-DD or "today".
func (h *Handler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.recovery.readiness")
	defer span.End()

	date, err := h.parseDate(mux.Vars(r)["date"])
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	// keyed on the data version so a write from any process misses the cache
	var cacheKey []byte
	if version, err := h.service.DataVersion(ctx, h.athleteID); err != nil {
		log.Warnf("readiness data version: %s", err)
	} else {
		cacheKey = []byte(fmt.Sprintf("readiness:%d:%s:%s", h.athleteID, date.Format(pkg.DayLayout), version))
		if cached, err := h.cache.Get(cacheKey); err == nil {
			pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, cached)
			return
		}
	}

	day, err := h.service.Readiness(ctx, h.athleteID, date)
	if err != nil {
		if errors.Is(err, ErrNoData) {
			http.Error(w, "no data for date", http.StatusNotFound)
			return
		}
		log.Errorf("get readiness for %s: %s", date.Format(pkg.DayLayout), err)
		http.Error(w, "failed to compute readiness", http.StatusInternalServerError)
		return
	}

	dayJSON, err := day.MarshalJSON()
	if err != nil {
		log.Errorf("marshal readiness: %s", err)
		http.Error(w, "failed to compute readiness", http.StatusInternalServerError)
		return
	}
	if cacheKey != nil {
		if err := h.cache.Set(cacheKey, dayJSON, readinessCacheTTL); err != nil {
			log.Warnf("cache readiness: %s", err)
		}
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, dayJSON)
}

func (h *Handler) parseDate(s string) (time.Time, error) {
	if s == "" || s == "today" {
		return pkg.CalendarDate(time.Now().In(h.loc)), nil
	}
	return pkg.ParseDay(s, time.UTC)
}
