package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	expensesdomain "expense-tracker-go/internal/domain/expenses"
)

// InMemoryExpenses implements the expense store contract over a map.
// Listings come back in id order; FindSince in date-descending order,
// matching what the postgres repository guarantees.
type InMemoryExpenses struct {
	mu     sync.RWMutex
	items  map[uint]expensesdomain.Expense
	nextID uint
}

func NewInMemoryExpenses() *InMemoryExpenses {
	return &InMemoryExpenses{
		items:  make(map[uint]expensesdomain.Expense),
		nextID: 1,
	}
}

func (r *InMemoryExpenses) FindAll(ctx context.Context) ([]expensesdomain.Expense, error) {
	return r.collect(func(expensesdomain.Expense) bool { return true }), nil
}

func (r *InMemoryExpenses) FindByID(ctx context.Context, id uint) (*expensesdomain.Expense, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	expense, ok := r.items[id]
	if !ok {
		return nil, expensesdomain.ErrExpenseNotFound
	}
	return &expense, nil
}

func (r *InMemoryExpenses) FindByCategory(ctx context.Context, category string) ([]expensesdomain.Expense, error) {
	return r.collect(func(e expensesdomain.Expense) bool {
		return e.Category != nil && *e.Category == category
	}), nil
}

func (r *InMemoryExpenses) FindByDate(ctx context.Context, date time.Time) ([]expensesdomain.Expense, error) {
	return r.collect(func(e expensesdomain.Expense) bool {
		return e.Date.Equal(date)
	}), nil
}

func (r *InMemoryExpenses) FindByDateRange(ctx context.Context, start, end time.Time) ([]expensesdomain.Expense, error) {
	return r.collect(func(e expensesdomain.Expense) bool {
		return !e.Date.Before(start) && !e.Date.After(end)
	}), nil
}

func (r *InMemoryExpenses) FindByCategoryAndDateRange(ctx context.Context, category string, start, end time.Time) ([]expensesdomain.Expense, error) {
	return r.collect(func(e expensesdomain.Expense) bool {
		if e.Category == nil || *e.Category != category {
			return false
		}
		return !e.Date.Before(start) && !e.Date.After(end)
	}), nil
}

func (r *InMemoryExpenses) DistinctCategories(ctx context.Context) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, expense := range r.items {
		if expense.Category == nil {
			continue
		}
		if _, ok := seen[*expense.Category]; ok {
			continue
		}
		seen[*expense.Category] = struct{}{}
		categories = append(categories, *expense.Category)
	}

	sort.Strings(categories)
	return categories, nil
}

func (r *InMemoryExpenses) FindSince(ctx context.Context, date time.Time) ([]expensesdomain.Expense, error) {
	items := r.collect(func(e expensesdomain.Expense) bool {
		return !e.Date.Before(date)
	})
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items, nil
}

func (r *InMemoryExpenses) Create(ctx context.Context, expense *expensesdomain.Expense) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	expense.ID = r.nextID
	r.nextID++
	r.items[expense.ID] = *expense
	return nil
}

func (r *InMemoryExpenses) DeleteByID(ctx context.Context, id uint) error {
	r.mu.Lock()
	delete(r.items, id)
	r.mu.Unlock()
	return nil
}

func (r *InMemoryExpenses) collect(match func(expensesdomain.Expense) bool) []expensesdomain.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]expensesdomain.Expense, 0)
	for _, expense := range r.items {
		if match(expense) {
			items = append(items, expense)
		}
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].ID < items[j].ID
	})
	return items
}
