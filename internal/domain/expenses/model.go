package expenses

import "time"

type Expense struct {
	ID       uint      `json:"id" gorm:"primaryKey"`
	Title    string    `json:"title"`
	Amount   float64   `json:"amount" gorm:"type:numeric(12,2);not null"`
	Date     time.Time `json:"date" gorm:"type:date;not null"`
	Category *string   `json:"category"`
	Comment  *string   `json:"comment"`
}

type CreateExpenseInput struct {
	Title    string
	Amount   float64
	Date     *time.Time
	Category *string
	Comment  *string
}

// Filter carries the optional inputs of the combined filter query. A nil
// field means the axis was not supplied by the caller.
type Filter struct {
	Category *string
	Start    *time.Time
	End      *time.Time
}
