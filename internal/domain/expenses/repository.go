package expenses

import (
	"context"
	"time"
)

// Repository is the expense record store. Date range queries are inclusive
// on both ends; FindSince returns records ordered by date descending.
type Repository interface {
	FindAll(ctx context.Context) ([]Expense, error)
	FindByID(ctx context.Context, id uint) (*Expense, error)
	FindByCategory(ctx context.Context, category string) ([]Expense, error)
	FindByDate(ctx context.Context, date time.Time) ([]Expense, error)
	FindByDateRange(ctx context.Context, start, end time.Time) ([]Expense, error)
	FindByCategoryAndDateRange(ctx context.Context, category string, start, end time.Time) ([]Expense, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	FindSince(ctx context.Context, date time.Time) ([]Expense, error)
	Create(ctx context.Context, expense *Expense) error
	DeleteByID(ctx context.Context, id uint) error
}
