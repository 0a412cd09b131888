package analytics

import (
	"context"
	"time"

	"expense-tracker-go/internal/domain/expenses"
)

// Repository is the read-only slice of the expense store the analytics
// engine consumes.
type Repository interface {
	FindAll(ctx context.Context) ([]expenses.Expense, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]expenses.Expense, error)
	DistinctCategories(ctx context.Context) ([]string, error)
}
