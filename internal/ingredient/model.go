package ingredient

import "github.com/mahi55555/pantry/internal/date"

// Category is a closed enumeration; enforcing it is the caller's job.
type Category string

const (
	CategoryDairy      Category = "dairy"
	CategoryMeat       Category = "meat"
	CategoryVegetables Category = "vegetables"
	CategoryFruits     Category = "fruits"
	CategoryGrains     Category = "grains"
	CategorySpices     Category = "spices"
	CategoryOther      Category = "other"
)

// Ingredient is the domain entity. Quantity and MinQuantity are always
// compared in the ingredient's own unit; no conversion happens anywhere.
type Ingredient struct {
	ID          string     `json:"id"`
	UserID      string     `json:"-"`
	Name        string     `json:"name"`
	Unit        string     `json:"unit"`
	Category    Category   `json:"category"`
	Quantity    float64    `json:"quantity"`
	MinQuantity float64    `json:"minQuantity"`
	ExpiryDate  *date.Date `json:"expiryDate,omitempty"`
}

// StockLabel is the derived stock status shown to the user.
type StockLabel string

const (
	OutOfStock StockLabel = "Out of Stock"
	LowStock   StockLabel = "Low Stock"
	InStock    StockLabel = "In Stock"
)

// Rank orders labels from most to least urgent, used by status sorting.
func (l StockLabel) Rank() int {
	switch l {
	case OutOfStock:
		return 0
	case LowStock:
		return 1
	default:
		return 2
	}
}

// Status is derived, never persisted. The stock label and the expiry
// flag are independent: an ingredient can be both low and expired.
type Status struct {
	Stock   StockLabel `json:"stockLabel"`
	Expired bool       `json:"isExpired"`
}

// StatusOn computes the stock and expiry status as of the given day.
// Taking today as an argument keeps the evaluation pure and testable.
func (i Ingredient) StatusOn(today date.Date) Status {
	label := InStock
	if i.Quantity <= 0 {
		label = OutOfStock
	} else if i.Quantity < i.MinQuantity {
		label = LowStock
	}

	expired := i.ExpiryDate != nil && i.ExpiryDate.Before(today)

	return Status{Stock: label, Expired: expired}
}
