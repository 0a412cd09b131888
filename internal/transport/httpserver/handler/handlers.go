package handler

import (
	"net/http"

	analyticsdomain "expense-tracker-go/internal/domain/analytics"
	expensesdomain "expense-tracker-go/internal/domain/expenses"
	userdomain "expense-tracker-go/internal/domain/user"
	"expense-tracker-go/pkg/logger"
)

type Handlers struct {
	Expenses  *expensesdomain.Service
	Analytics *analyticsdomain.Service
	Users     *userdomain.Service
	session   *userdomain.Session
	log       logger.Logger
}

func New(expenses *expensesdomain.Service, analytics *analyticsdomain.Service, users *userdomain.Service, session *userdomain.Session, log logger.Logger) *Handlers {
	return &Handlers{
		Expenses:  expenses,
		Analytics: analytics,
		Users:     users,
		session:   session,
		log:       log,
	}
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
