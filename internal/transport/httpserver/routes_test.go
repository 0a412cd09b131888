package httpserver

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"expense-tracker-go/internal/config"
	analyticsdomain "expense-tracker-go/internal/domain/analytics"
	expensesdomain "expense-tracker-go/internal/domain/expenses"
	userdomain "expense-tracker-go/internal/domain/user"
	"expense-tracker-go/internal/repository/inmemory"
	"expense-tracker-go/internal/transport/httpserver/handler"
	"expense-tracker-go/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) (http.Handler, *inmemory.InMemoryExpenses) {
	t.Helper()

	log := logger.New(io.Discard, slog.LevelError, "text")
	expenseStore := inmemory.NewInMemoryExpenses()
	userStore := inmemory.NewInMemoryUsers()

	handlers := handler.New(
		expensesdomain.NewService(expenseStore),
		analyticsdomain.NewService(expenseStore),
		userdomain.NewService(userStore),
		userdomain.NewSession(),
		log,
	)

	cfg := config.Config{CORSAllowedOrigins: []string{"http://localhost:5173"}}
	return NewRouter(cfg, handlers), expenseStore
}

func seedExpense(t *testing.T, store *inmemory.InMemoryExpenses, title string, amount float64, category *string, date time.Time) expensesdomain.Expense {
	t.Helper()

	expense := expensesdomain.Expense{
		Title:    title,
		Amount:   amount,
		Date:     expensesdomain.Midnight(date),
		Category: category,
	}
	require.NoError(t, store.Create(context.Background(), &expense))
	return expense
}

func doRequest(t *testing.T, router http.Handler, method, target string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeExpenses(t *testing.T, rec *httptest.ResponseRecorder) []expensesdomain.Expense {
	t.Helper()

	var items []expensesdomain.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &items))
	return items
}

func strPtr(value string) *string {
	return &value
}

func TestHealth(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestCreateExpenseDefaultsDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/expenses", map[string]any{
		"title":  "lunch",
		"amount": 12.5,
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created expensesdomain.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "lunch", created.Title)
	assert.True(t, created.Date.Equal(expensesdomain.Midnight(time.Now())), "date should default to today, got %v", created.Date)
}

func TestCreateExpenseWithExplicitDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/expenses", map[string]any{
		"title":    "groceries",
		"amount":   -5.0,
		"date":     "2025-11-02",
		"category": "Food",
		"comment":  "weekly shop",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	var created expensesdomain.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, -5.0, created.Amount, "negative amounts are accepted")
	require.NotNil(t, created.Category)
	assert.Equal(t, "Food", *created.Category)
	assert.True(t, created.Date.Equal(time.Date(2025, 11, 2, 0, 0, 0, 0, time.UTC)))
}

func TestCreateExpenseRejectsBadDate(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/expenses", map[string]any{
		"title": "lunch",
		"date":  "02.11.2025",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListAndFilterExpenses(t *testing.T) {
	router, store := newTestRouter(t)

	food1 := seedExpense(t, store, "lunch", 100, strPtr("Food"), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	food2 := seedExpense(t, store, "dinner", 200, strPtr("Food"), time.Date(2025, 12, 20, 0, 0, 0, 0, time.UTC))
	seedExpense(t, store, "bus", 50, strPtr("Transport"), time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC))
	seedExpense(t, store, "misc", 25, nil, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC))

	rec := doRequest(t, router, http.MethodGet, "/expenses", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeExpenses(t, rec), 4)

	rec = doRequest(t, router, http.MethodGet, "/expenses/filter?category=Food", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeExpenses(t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, food1.ID, items[0].ID)
	assert.Equal(t, food2.ID, items[1].ID)

	rec = doRequest(t, router, http.MethodGet, "/expenses/filter?startDate=2025-12-01&endDate=2025-12-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeExpenses(t, rec), 3)

	rec = doRequest(t, router, http.MethodGet, "/expenses/filter?category=Food&startDate=2025-12-01&endDate=2025-12-10", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items = decodeExpenses(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, food1.ID, items[0].ID)

	// A half-open range ignores the date constraint entirely.
	rec = doRequest(t, router, http.MethodGet, "/expenses/filter?category=Food&startDate=2025-12-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeExpenses(t, rec), 4)

	rec = doRequest(t, router, http.MethodGet, "/expenses/filter", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeExpenses(t, rec), 4)
}

func TestSingleAxisQueries(t *testing.T) {
	router, store := newTestRouter(t)

	seedExpense(t, store, "lunch", 100, strPtr("Food"), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	seedExpense(t, store, "bus", 50, strPtr("Transport"), time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC))

	rec := doRequest(t, router, http.MethodGet, "/expenses/category/Transport", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items := decodeExpenses(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "bus", items[0].Title)

	rec = doRequest(t, router, http.MethodGet, "/expenses/date/2025-12-01", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	items = decodeExpenses(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, "lunch", items[0].Title)

	rec = doRequest(t, router, http.MethodGet, "/expenses/period?startDate=2025-12-01&endDate=2025-12-31", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeExpenses(t, rec), 2)

	rec = doRequest(t, router, http.MethodGet, "/expenses/period?startDate=2025-12-01", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetExpense(t *testing.T) {
	router, store := newTestRouter(t)

	seeded := seedExpense(t, store, "lunch", 100, strPtr("Food"), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))

	rec := doRequest(t, router, http.MethodGet, "/expenses/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var got expensesdomain.Expense
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, seeded.ID, got.ID)
	assert.Equal(t, "lunch", got.Title)

	rec = doRequest(t, router, http.MethodGet, "/expenses/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteExpense(t *testing.T) {
	router, store := newTestRouter(t)

	kept := seedExpense(t, store, "lunch", 100, strPtr("Food"), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	doomed := seedExpense(t, store, "dinner", 200, strPtr("Food"), time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC))

	rec := doRequest(t, router, http.MethodDelete, "/expenses/2", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	// Deleting an unknown id is a no-op, not an error.
	rec = doRequest(t, router, http.MethodDelete, "/expenses/999", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/expenses", nil)
	items := decodeExpenses(t, rec)
	require.Len(t, items, 1)
	assert.Equal(t, kept.ID, items[0].ID)
	assert.NotEqual(t, doomed.ID, items[0].ID)

	rec = doRequest(t, router, http.MethodDelete, "/expenses/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAnalyticsEndpoints(t *testing.T) {
	router, store := newTestRouter(t)

	seedExpense(t, store, "lunch", 100, strPtr("Food"), time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC))
	seedExpense(t, store, "dinner", 200, strPtr("Food"), time.Date(2025, 12, 6, 0, 0, 0, 0, time.UTC))
	seedExpense(t, store, "misc", 50, nil, time.Date(2025, 12, 3, 0, 0, 0, 0, time.UTC))

	rec := doRequest(t, router, http.MethodGet, "/expenses/analytics/category", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var totals map[string]float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &totals))
	assert.Len(t, totals, 2)
	assert.Equal(t, 300.0, totals["Food"])
	assert.Equal(t, 50.0, totals["uncategorized"])

	rec = doRequest(t, router, http.MethodGet, "/expenses/analytics/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var total float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	assert.Equal(t, 350.0, total)

	rec = doRequest(t, router, http.MethodGet, "/expenses/analytics/period?startDate=2025-12-01&endDate=2025-12-03", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &total))
	assert.Equal(t, 150.0, total)

	// Span is 6 days inclusive: 2025-12-01 through 2025-12-06.
	rec = doRequest(t, router, http.MethodGet, "/expenses/analytics/average", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var average float64
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &average))
	assert.InDelta(t, 350.0/6.0, average, 1e-9)

	rec = doRequest(t, router, http.MethodGet, "/expenses/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var categories []string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.ElementsMatch(t, []string{"Food"}, categories)
}

func TestAnalyticsEndpointsOnEmptyStore(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/expenses/analytics/total", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0\n", rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/expenses/analytics/average", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "0\n", rec.Body.String())

	rec = doRequest(t, router, http.MethodGet, "/expenses/categories", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestRecentExpenses(t *testing.T) {
	router, store := newTestRouter(t)

	now := time.Now()
	old := seedExpense(t, store, "old", 10, nil, now.AddDate(0, 0, -40))
	mid := seedExpense(t, store, "mid", 20, nil, now.AddDate(0, 0, -5))
	fresh := seedExpense(t, store, "fresh", 30, nil, now.AddDate(0, 0, -1))

	rec := doRequest(t, router, http.MethodGet, "/expenses/recent", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	items := decodeExpenses(t, rec)
	require.Len(t, items, 2)
	assert.Equal(t, fresh.ID, items[0].ID, "newest first")
	assert.Equal(t, mid.ID, items[1].ID)
	for _, item := range items {
		assert.NotEqual(t, old.ID, item.ID)
	}
}

func TestAuthFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodGet, "/api/auth/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "alice",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var registered struct {
		Success bool `json:"success"`
		User    struct {
			ID       uint   `json:"id"`
			Username string `json:"username"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &registered))
	assert.True(t, registered.Success)
	assert.Equal(t, "alice", registered.User.Username)

	rec = doRequest(t, router, http.MethodGet, "/api/auth/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"authenticated":true`)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/logout", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodGet, "/api/auth/check", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"authenticated":false}`, rec.Body.String())

	rec = doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":true`)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/login", map[string]string{
		"username": "alice",
		"password": "wrong",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), `"success":false`)
}

func TestRegisterRejections(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "",
		"password": "secret",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username cannot be empty")

	rec = doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob",
		"password": "",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "password cannot be empty")

	rec = doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob",
		"password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, router, http.MethodPost, "/api/auth/register", map[string]string{
		"username": "bob",
		"password": "other",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "username already exists")
}

func TestCORSHeaders(t *testing.T) {
	router, _ := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:5173", rec.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/expenses", nil)
	req.Header.Set("Origin", "http://evil.example")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
}
