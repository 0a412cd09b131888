package app

import (
	"net/http"

	"expense-tracker-go/internal/config"
	"expense-tracker-go/internal/db"
	analyticsdomain "expense-tracker-go/internal/domain/analytics"
	expensesdomain "expense-tracker-go/internal/domain/expenses"
	userdomain "expense-tracker-go/internal/domain/user"
	expensesrepo "expense-tracker-go/internal/repository/postgres/expenses"
	userrepo "expense-tracker-go/internal/repository/postgres/user"
	"expense-tracker-go/internal/transport/httpserver"
	"expense-tracker-go/internal/transport/httpserver/handler"
	"expense-tracker-go/pkg/logger"
	"gorm.io/gorm"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	db         *gorm.DB
}

func New(log logger.Logger) (*App, error) {
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	dbConn, err := db.NewPostgres(cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err := db.Migrate(dbConn); err != nil {
		return nil, err
	}

	expenseStore := expensesrepo.NewPostgres(dbConn)
	userStore := userrepo.NewPostgres(dbConn)

	expensesService := expensesdomain.NewService(expenseStore)
	// The analytics engine reads through the same store as the expense
	// service; it only sees the read-only subset of the contract.
	analyticsService := analyticsdomain.NewService(expenseStore)
	userService := userdomain.NewService(userStore)
	session := userdomain.NewSession()

	handlers := handler.New(expensesService, analyticsService, userService, session, log)
	router := httpserver.NewRouter(cfg, handlers)
	srv := httpserver.New(cfg, router)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		db:         dbConn,
	}, nil
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
