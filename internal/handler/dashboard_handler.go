package handler

import (
	"net/http"
	"strconv"
	"time"

	"seacoff/internal/model"
	"seacoff/internal/service"

	"github.com/rs/zerolog"
)

// DashboardHandler handles the admin sales reporting endpoints.
type DashboardHandler struct {
	service service.DashboardService
	logger  zerolog.Logger
}

// NewDashboardHandler creates a new dashboard handler.
func NewDashboardHandler(service service.DashboardService, logger zerolog.Logger) *DashboardHandler {
	return &DashboardHandler{
		service: service,
		logger:  logger.With().Str("handler", "dashboard").Logger(),
	}
}

// parseDateRange reads optional start_date/end_date query parameters
// (YYYY-MM-DD). The end bound is inclusive of the whole day.
func parseDateRange(r *http.Request) (model.DateRange, error) {
	var rng model.DateRange

	if raw := r.URL.Query().Get("start_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, err
		}
		rng.Start = &t
	}

	if raw := r.URL.Query().Get("end_date"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return rng, err
		}
		end := t.Add(24*time.Hour - time.Nanosecond)
		rng.End = &end
	}

	return rng, nil
}

// SalesPerDay handles GET /api/dashboard/sales-per-day requests.
func (h *DashboardHandler) SalesPerDay(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", h.logger)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.SalesPerDay(r.Context(), rng, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if result == nil {
		result = []model.DailySales{}
	}

	writeJSON(w, http.StatusOK, result)
}

// BestSellers handles GET /api/dashboard/best-sellers requests.
func (h *DashboardHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", h.logger)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.BestSellers(r.Context(), rng, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if result == nil {
		result = []model.BestSeller{}
	}

	writeJSON(w, http.StatusOK, result)
}

// Overview handles GET /api/dashboard/overview requests.
func (h *DashboardHandler) Overview(w http.ResponseWriter, r *http.Request) {
	period, _ := strconv.Atoi(r.URL.Query().Get("period"))

	overview, err := h.service.Overview(r.Context(), period)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, overview)
}

// RevenueTrend handles GET /api/dashboard/revenue-trend requests.
func (h *DashboardHandler) RevenueTrend(w http.ResponseWriter, r *http.Request) {
	period := r.URL.Query().Get("period")
	if period == "" {
		period = "week"
	}

	result, err := h.service.RevenueTrend(r.Context(), period)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if result == nil {
		result = []model.RevenuePoint{}
	}

	writeJSON(w, http.StatusOK, result)
}

// TopCustomers handles GET /api/dashboard/top-customers requests.
func (h *DashboardHandler) TopCustomers(w http.ResponseWriter, r *http.Request) {
	rng, err := parseDateRange(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD", h.logger)
		return
	}

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.service.TopCustomers(r.Context(), rng, limit)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	if result == nil {
		result = []model.TopCustomer{}
	}

	writeJSON(w, http.StatusOK, result)
}
