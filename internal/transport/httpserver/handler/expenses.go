package handler

import (
	"errors"
	"net/http"
	"time"

	expensesdomain "expense-tracker-go/internal/domain/expenses"
	"github.com/go-chi/chi/v5"
)

type createExpenseRequest struct {
	Title    string  `json:"title"`
	Amount   float64 `json:"amount"`
	Date     *string `json:"date"`
	Category *string `json:"category"`
	Comment  *string `json:"comment"`
}

func (h *Handlers) ListExpenses(w http.ResponseWriter, r *http.Request) {
	items, err := h.Expenses.ListAll(r.Context())
	if err != nil {
		h.log.InternalError("expenses.list: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) CreateExpense(w http.ResponseWriter, r *http.Request) {
	var req createExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid request body")
		return
	}

	var date *time.Time
	if req.Date != nil {
		parsed, err := time.Parse("2006-01-02", *req.Date)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
			return
		}
		date = &parsed
	}

	expense, err := h.Expenses.Create(r.Context(), expensesdomain.CreateExpenseInput{
		Title:    req.Title,
		Amount:   req.Amount,
		Date:     date,
		Category: req.Category,
		Comment:  req.Comment,
	})
	if err != nil {
		h.log.InternalError("expenses.create: insert failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

func (h *Handlers) GetExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	expense, err := h.Expenses.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, expensesdomain.ErrExpenseNotFound) {
			writeError(w, http.StatusNotFound, "not_found", "expense not found")
			return
		}
		h.log.InternalError("expenses.get: query failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, expense)
}

func (h *Handlers) DeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := parseIDParam(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid id")
		return
	}

	if err := h.Expenses.Delete(r.Context(), id); err != nil {
		h.log.InternalError("expenses.delete: delete failed", err, "id", id)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Handlers) ListByCategory(w http.ResponseWriter, r *http.Request) {
	category := chi.URLParam(r, "category")
	items, err := h.Expenses.ByCategory(r.Context(), category)
	if err != nil {
		h.log.InternalError("expenses.by_category: query failed", err, "category", category)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) ListByDate(w http.ResponseWriter, r *http.Request) {
	date, err := parseDateRequired(chi.URLParam(r, "date"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date must be YYYY-MM-DD")
		return
	}

	items, err := h.Expenses.ByDate(r.Context(), date)
	if err != nil {
		h.log.InternalError("expenses.by_date: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) ListByPeriod(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.Expenses.ByPeriod(r.Context(), start, end)
	if err != nil {
		h.log.InternalError("expenses.by_period: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) FilterExpenses(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	start, err := parseDateParam(query.Get("startDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "startDate must be YYYY-MM-DD")
		return
	}
	end, err := parseDateParam(query.Get("endDate"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "endDate must be YYYY-MM-DD")
		return
	}

	items, err := h.Expenses.Filter(r.Context(), expensesdomain.Filter{
		Category: parseStringParam(query.Get("category")),
		Start:    start,
		End:      end,
	})
	if err != nil {
		h.log.InternalError("expenses.filter: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handlers) ListRecent(w http.ResponseWriter, r *http.Request) {
	items, err := h.Expenses.Recent(r.Context())
	if err != nil {
		h.log.InternalError("expenses.recent: query failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}
	writeJSON(w, http.StatusOK, items)
}
