package expenses

import (
	"context"
	"time"
)

// recentWindowDays is the trailing window of the recent view.
const recentWindowDays = 30

type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) ListAll(ctx context.Context) ([]Expense, error) {
	return s.repo.FindAll(ctx)
}

func (s *Service) Get(ctx context.Context, id uint) (*Expense, error) {
	return s.repo.FindByID(ctx, id)
}

// Create persists a new expense. A missing date defaults to the current
// calendar day; no other field is validated.
func (s *Service) Create(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	date := Midnight(s.now())
	if input.Date != nil {
		date = Midnight(*input.Date)
	}

	expense := Expense{
		Title:    input.Title,
		Amount:   input.Amount,
		Date:     date,
		Category: input.Category,
		Comment:  input.Comment,
	}

	if err := s.repo.Create(ctx, &expense); err != nil {
		return nil, err
	}

	return &expense, nil
}

// Delete removes an expense by id. Deleting an id that does not exist is
// a no-op.
func (s *Service) Delete(ctx context.Context, id uint) error {
	return s.repo.DeleteByID(ctx, id)
}

func (s *Service) ByCategory(ctx context.Context, category string) ([]Expense, error) {
	return s.repo.FindByCategory(ctx, category)
}

func (s *Service) ByDate(ctx context.Context, date time.Time) ([]Expense, error) {
	return s.repo.FindByDate(ctx, Midnight(date))
}

func (s *Service) ByPeriod(ctx context.Context, start, end time.Time) ([]Expense, error) {
	return s.repo.FindByDateRange(ctx, Midnight(start), Midnight(end))
}

func (s *Service) ByCategoryAndPeriod(ctx context.Context, category string, start, end time.Time) ([]Expense, error) {
	return s.repo.FindByCategoryAndDateRange(ctx, category, Midnight(start), Midnight(end))
}

// Filter resolves a combined query into a single store lookup. Only the
// three fully-specified combinations narrow the result; everything else,
// including a category with a half-open date range, returns the entire
// record set.
func (s *Service) Filter(ctx context.Context, filter Filter) ([]Expense, error) {
	switch {
	case filter.Category != nil && filter.Start != nil && filter.End != nil:
		return s.ByCategoryAndPeriod(ctx, *filter.Category, *filter.Start, *filter.End)
	case filter.Category != nil && filter.Start == nil && filter.End == nil:
		return s.ByCategory(ctx, *filter.Category)
	case filter.Category == nil && filter.Start != nil && filter.End != nil:
		return s.ByPeriod(ctx, *filter.Start, *filter.End)
	default:
		return s.ListAll(ctx)
	}
}

// Recent returns expenses dated within the trailing 30 days, newest first.
func (s *Service) Recent(ctx context.Context) ([]Expense, error) {
	since := Midnight(s.now()).AddDate(0, 0, -recentWindowDays)
	return s.repo.FindSince(ctx, since)
}

// Midnight truncates a timestamp to its calendar day in UTC.
func Midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
