package handler

import "net/http"

func (h *Handlers) TotalsByCategory(w http.ResponseWriter, r *http.Request) {
	totals, err := h.Analytics.TotalsByCategory(r.Context())
	if err != nil {
		h.log.InternalError("analytics.by_category: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, totals)
}

func (h *Handlers) GrandTotal(w http.ResponseWriter, r *http.Request) {
	total, err := h.Analytics.GrandTotal(r.Context())
	if err != nil {
		h.log.InternalError("analytics.total: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *Handlers) TotalForPeriod(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, err := parseDateRequired(query.Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "startDate is required")
		return
	}
	end, err := parseDateRequired(query.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "endDate is required")
		return
	}

	total, err := h.Analytics.TotalForPeriod(r.Context(), start, end)
	if err != nil {
		h.log.InternalError("analytics.period: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, total)
}

func (h *Handlers) AveragePerDay(w http.ResponseWriter, r *http.Request) {
	average, err := h.Analytics.AveragePerDay(r.Context())
	if err != nil {
		h.log.InternalError("analytics.average: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, average)
}

func (h *Handlers) ListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.Analytics.Categories(r.Context())
	if err != nil {
		h.log.InternalError("analytics.categories: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	if categories == nil {
		categories = []string{}
	}
	writeJSON(w, http.StatusOK, categories)
}
