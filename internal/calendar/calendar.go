// Package calendar buckets planned meals into a Monday-first month
// grid. A meal lands in a cell when its stored YYYY-MM-DD string equals
// the cell date's canonical rendering; no timestamp conversion is ever
// involved, so the grid looks the same in every timezone.
package calendar

import (
	"time"

	"github.com/mahi55555/pantry/internal/date"
	"github.com/mahi55555/pantry/internal/meal"
)

// DayCell is one grid entry: padding (Date nil) or a concrete day with
// its meals.
type DayCell struct {
	Date  *date.Date  `json:"date"`
	Meals []meal.Meal `json:"meals"`
}

// MonthGrid lays out the month as full Monday-to-Sunday weeks. Leading
// cells pad up to the weekday of the 1st, trailing cells complete the
// final partial week, and the total is always a multiple of 7.
func MonthGrid(year int, month time.Month, meals []meal.Meal) []DayCell {
	byDate := make(map[string][]meal.Meal, len(meals))
	for _, m := range meals {
		byDate[m.Date] = append(byDate[m.Date], m)
	}

	first := date.New(year, month, 1)
	// time.Weekday counts Sunday as 0; shift so Monday is 0.
	offset := (int(first.Weekday()) + 6) % 7

	cells := make([]DayCell, 0, offset+31)
	for i := 0; i < offset; i++ {
		cells = append(cells, DayCell{})
	}

	for day := 1; day <= date.DaysInMonth(year, month); day++ {
		d := date.New(year, month, day)
		cells = append(cells, DayCell{
			Date:  &d,
			Meals: byDate[d.String()],
		})
	}

	if rem := len(cells) % 7; rem != 0 {
		for i := rem; i < 7; i++ {
			cells = append(cells, DayCell{})
		}
	}

	return cells
}
