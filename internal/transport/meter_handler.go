// Package transport exposes the meter data store and its companions over HTTP.
package transport

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"

	"github.com/m3terscan/m3terscan-backend/internal/meter"
	"github.com/m3terscan/m3terscan-backend/internal/model"
	"github.com/m3terscan/m3terscan-backend/internal/store"
)

var (
	errBadRequest    = errors.New("bad request")
	errNotConfigured = errors.New("not configured")
)

const weeksPerMonth = 5

// MeterHandler serves the REST surface of the meter data store.
type MeterHandler struct {
	store     MeterStore
	analytics Analytics
	rollup    Rollup
	logger    *zap.Logger
}

// NewMeterHandler returns a MeterHandler. analytics and rollup may be nil; their
// routes then answer 503.
func NewMeterHandler(s MeterStore, analytics Analytics, rollup Rollup, logger *zap.Logger) *MeterHandler {
	return &MeterHandler{
		store:     s,
		analytics: analytics,
		rollup:    rollup,
		logger:    logger.Named("meterHandler"),
	}
}

type route struct {
	method  string
	pattern string
	handler gwruntime.HandlerFunc
}

// Register adds every route to mux.
func (h *MeterHandler) Register(mux *gwruntime.ServeMux) error {
	routes := []route{
		{http.MethodGet, "/v1/state", h.state},
		{http.MethodPost, "/v1/blocks/refresh", h.refreshBlocks},
		{http.MethodPost, "/v1/energy-usage/refresh", h.refreshEnergyUsage},
		{http.MethodPost, "/v1/stablecoins/refresh", h.refreshStablecoins},
		{http.MethodPost, "/v1/heatmap/refresh", h.refreshHeatmap},
		{http.MethodPost, "/v1/heatmap/generate", h.generateHeatmap},
		{http.MethodPut, "/v1/heatmap/year/{year}", h.setHeatmapYear},
		{http.MethodPut, "/v1/heatmap/month", h.setHeatmapMonth},
		{http.MethodPut, "/v1/heatmap/view/{mode}", h.setHeatmapViewMode},
		{http.MethodGet, "/v1/heatmap/weeks", h.heatmapWeeks},
		{http.MethodPut, "/v1/meters/{meterId}/select", h.selectMeter},
		{http.MethodDelete, "/v1/meters/selection", h.clearSelection},
		{http.MethodGet, "/v1/search", h.search},
		{http.MethodDelete, "/v1/search", h.clearSearch},
		{http.MethodPut, "/v1/mock-mode/{enabled}", h.setMockMode},
		{http.MethodDelete, "/v1/error", h.clearError},
		{http.MethodGet, "/v1/chain-length", h.chainLength},
		{http.MethodGet, "/api/transactions", h.transactions},
	}
	for _, rt := range routes {
		if err := mux.HandlePath(rt.method, rt.pattern, rt.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", rt.method, rt.pattern, err)
		}
	}
	return nil
}

func (h *MeterHandler) state(w http.ResponseWriter, _ *http.Request, _ map[string]string) {
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *MeterHandler) refreshBlocks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.FetchBlockData(r.Context()))
}

func (h *MeterHandler) refreshEnergyUsage(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.FetchEnergyUsageData(r.Context(), r.URL.Query().Get("meterId")))
}

func (h *MeterHandler) refreshStablecoins(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.FetchStablecoinData(r.Context(), r.URL.Query().Get("meterId")))
}

func (h *MeterHandler) refreshHeatmap(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.FetchHeatmapData(r.Context(), r.URL.Query().Get("meterId")))
}

func (h *MeterHandler) generateHeatmap(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	year, err := parseInt("year", q.Get("year"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respond(w, r, h.store.GenerateHeatmapData(r.Context(), year, q.Get("meterId")))
}

func (h *MeterHandler) setHeatmapYear(w http.ResponseWriter, r *http.Request, params map[string]string) {
	year, err := parseInt("year", params["year"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.respond(w, r, h.store.SetHeatmapYear(r.Context(), year))
}

func (h *MeterHandler) setHeatmapMonth(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var month *int
	if raw := r.URL.Query().Get("month"); raw != "" {
		m, err := parseInt("month", raw)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		month = &m
	}
	h.respond(w, r, h.store.SetHeatmapMonth(r.Context(), month))
}

func (h *MeterHandler) setHeatmapViewMode(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.respond(w, r, h.store.SetHeatmapViewMode(r.Context(), model.HeatmapViewMode(params["mode"])))
}

// WeekSummary is the calendar of one month with the average score of each week.
type WeekSummary struct {
	Month    int                `json:"month"`
	Days     []model.HeatmapDay `json:"days"`
	Averages []float64          `json:"weekAverages"`
}

func (h *MeterHandler) heatmapWeeks(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	st := h.store.Snapshot()

	var month int
	switch raw := r.URL.Query().Get("month"); {
	case raw != "":
		m, err := parseInt("month", raw)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		month = m
	case st.HeatmapMonth != nil:
		month = *st.HeatmapMonth
	default:
		h.writeError(w, r, fmt.Errorf("%w: month is required", errBadRequest))
		return
	}
	if month < 0 || month > 11 {
		h.writeError(w, r, fmt.Errorf("%w: %w", errBadRequest, store.ErrInvalidMonth))
		return
	}

	summary := WeekSummary{
		Month:    month,
		Days:     meter.MonthDays(st.Heatmap, month),
		Averages: make([]float64, 0, weeksPerMonth),
	}
	for week := 1; week <= weeksPerMonth; week++ {
		summary.Averages = append(summary.Averages, meter.WeekAverage(st.Heatmap, month, week))
	}
	h.writeJSON(w, http.StatusOK, summary)
}

func (h *MeterHandler) selectMeter(w http.ResponseWriter, r *http.Request, params map[string]string) {
	h.respond(w, r, h.store.SelectMeterID(r.Context(), params["meterId"]))
}

func (h *MeterHandler) clearSelection(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.ClearSelectedMeterID(r.Context()))
}

func (h *MeterHandler) search(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	q := r.URL.Query()
	var search func(context.Context, string) error
	switch by := q.Get("by"); by {
	case "", "all":
		search = h.store.SearchBlocks
	case "proposer":
		search = h.store.SearchProposer
	case "number":
		search = h.store.SearchBlockNumber
	default:
		h.writeError(w, r, fmt.Errorf("%w: unknown search field %q", errBadRequest, by))
		return
	}
	if err := search(r.Context(), q.Get("q")); err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.Snapshot().FilteredBlocks)
}

func (h *MeterHandler) clearSearch(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.ClearSearch(r.Context()))
}

func (h *MeterHandler) setMockMode(w http.ResponseWriter, r *http.Request, params map[string]string) {
	enabled, err := strconv.ParseBool(params["enabled"])
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: enabled must be a boolean", errBadRequest))
		return
	}
	h.respond(w, r, h.store.SetMockMode(r.Context(), enabled))
}

func (h *MeterHandler) clearError(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	h.respond(w, r, h.store.ClearError(r.Context()))
}

func (h *MeterHandler) chainLength(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if h.rollup == nil {
		h.writeError(w, r, fmt.Errorf("rollup client %w", errNotConfigured))
		return
	}
	length, err := h.rollup.ChainLength(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]string{"chainLength": length.String()})
}

func (h *MeterHandler) transactions(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	if h.analytics == nil {
		h.writeError(w, r, fmt.Errorf("analytics client %w", errNotConfigured))
		return
	}
	res, err := h.analytics.QueryResults(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, res)
}

// respond writes the store snapshot, or the error that prevented the change.
func (h *MeterHandler) respond(w http.ResponseWriter, r *http.Request, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.Snapshot())
}

func (h *MeterHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", status),
			zap.Error(err),
		)
	}
	h.writeJSON(w, status, map[string]string{"error": err.Error()})
}

func (h *MeterHandler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Warn("write response", zap.Error(err))
	}
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, errBadRequest),
		errors.Is(err, store.ErrEmptyMeterID),
		errors.Is(err, store.ErrInvalidMonth),
		errors.Is(err, store.ErrInvalidViewMode),
		errors.Is(err, store.ErrInvalidYear),
		errors.Is(err, store.ErrNoLiveSource):
		return http.StatusBadRequest
	case errors.Is(err, store.ErrClosed), errors.Is(err, errNotConfigured):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}

func parseInt(name, raw string) (int, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}
	return v, nil
}
