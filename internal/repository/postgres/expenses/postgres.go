package expenses

import (
	"context"
	"errors"
	"time"

	expensesdomain "expense-tracker-go/internal/domain/expenses"
	"gorm.io/gorm"
)

type PostgresRepository struct {
	db *gorm.DB
}

func NewPostgres(db *gorm.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindAll(ctx context.Context) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) FindByID(ctx context.Context, id uint) (*expensesdomain.Expense, error) {
	var expense expensesdomain.Expense
	if err := r.db.WithContext(ctx).First(&expense, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, expensesdomain.ErrExpenseNotFound
		}
		return nil, err
	}
	return &expense, nil
}

func (r *PostgresRepository) FindByCategory(ctx context.Context, category string) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) FindByDate(ctx context.Context, date time.Time) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("date = ?", date).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) FindByDateRange(ctx context.Context, start, end time.Time) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("date >= ? AND date <= ?", start, end).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) FindByCategoryAndDateRange(ctx context.Context, category string, start, end time.Time) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("category = ? AND date >= ? AND date <= ?", category, start, end).
		Order("id asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	var categories []string
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Where("category IS NOT NULL").
		Distinct().
		Pluck("category", &categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *PostgresRepository) FindSince(ctx context.Context, date time.Time) ([]expensesdomain.Expense, error) {
	var items []expensesdomain.Expense
	if err := r.db.WithContext(ctx).
		Where("date >= ?", date).
		Order("date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *PostgresRepository) Create(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *PostgresRepository) DeleteByID(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&expensesdomain.Expense{}, id).Error
}
