package analytics

import (
	"context"
	"time"
)

// UncategorizedLabel is the synthetic bucket for expenses without a
// category. It only ever appears in aggregation output, never in storage.
const UncategorizedLabel = "uncategorized"

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// TotalsByCategory sums amounts per category label over all records.
// Labels with no matching records do not appear in the result.
func (s *Service) TotalsByCategory(ctx context.Context) (map[string]float64, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	totals := make(map[string]float64)
	for _, expense := range all {
		label := UncategorizedLabel
		if expense.Category != nil && *expense.Category != "" {
			label = *expense.Category
		}
		totals[label] += expense.Amount
	}

	return totals, nil
}

func (s *Service) GrandTotal(ctx context.Context) (float64, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, expense := range all {
		total += expense.Amount
	}

	return total, nil
}

// TotalForPeriod sums amounts over records dated within [start, end].
func (s *Service) TotalForPeriod(ctx context.Context, start, end time.Time) (float64, error) {
	items, err := s.repo.FindByDateRange(ctx, start, end)
	if err != nil {
		return 0, err
	}

	var total float64
	for _, expense := range items {
		total += expense.Amount
	}

	return total, nil
}

// AveragePerDay divides the grand total by the inclusive day span between
// the earliest and latest recorded dates. A single day of records yields a
// span of one. The metric always covers the full observed range, so one
// old record stretches the span.
func (s *Service) AveragePerDay(ctx context.Context) (float64, error) {
	all, err := s.repo.FindAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(all) == 0 {
		return 0, nil
	}

	minDate := all[0].Date
	maxDate := all[0].Date
	var total float64
	for _, expense := range all {
		if expense.Date.Before(minDate) {
			minDate = expense.Date
		}
		if expense.Date.After(maxDate) {
			maxDate = expense.Date
		}
		total += expense.Amount
	}

	span := daysBetweenInclusive(minDate, maxDate)
	return total / float64(span), nil
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.repo.DistinctCategories(ctx)
}

func daysBetweenInclusive(from, to time.Time) int {
	from = time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	to = time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	if to.Before(from) {
		return 1
	}
	return int(to.Sub(from).Hours()/24) + 1
}
