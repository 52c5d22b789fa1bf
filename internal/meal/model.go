package meal

// Slot is the meal's time of day; a closed enumeration.
type Slot string

const (
	Breakfast Slot = "breakfast"
	Lunch     Slot = "lunch"
	Dinner    Slot = "dinner"
	Snack     Slot = "snack"
)

// Rank orders slots through the day. Unknown values sort last so a bad
// row can never shuffle the rest of the plan.
func (s Slot) Rank() int {
	switch s {
	case Breakfast:
		return 1
	case Lunch:
		return 2
	case Dinner:
		return 3
	case Snack:
		return 4
	default:
		return 5
	}
}

// Meal is a recipe scheduled on a calendar day. Date is the plain
// YYYY-MM-DD string the API speaks; it never carries a time or zone.
// Several meals may share the same date and slot.
type Meal struct {
	ID       string `json:"id"`
	UserID   string `json:"-"`
	Date     string `json:"date"`
	Time     Slot   `json:"time"`
	RecipeID string `json:"recipeId"`
	Done     bool   `json:"done"`
}
