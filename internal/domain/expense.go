package domain

// Category buckets an expense for reporting.
type Category string

const (
	CategoryTransport Category = "transport"
	CategoryFood      Category = "food"
	CategoryStay      Category = "stay"
	CategoryShopping  Category = "shopping"
	CategoryMedical   Category = "medical"
	CategoryOther     Category = "other"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryTransport, CategoryFood, CategoryStay, CategoryShopping, CategoryMedical, CategoryOther:
		return true
	}
	return false
}

// Expense is a monetary outlay, owned by an Activity or by the Trip itself.
// Name is optional; displays fall back to the translated category.
type Expense struct {
	ID       string   `json:"id"`
	Amount   float64  `json:"amount"`
	Category Category `json:"category"`
	Date     string   `json:"date"`
	Currency Currency `json:"currency"`
	Name     string   `json:"name,omitempty"`
}

// ApplyDefaults gives the expense its owning trip's currency when it has none.
func (e *Expense) ApplyDefaults(tripCurrency Currency) {
	if e.Currency == "" {
		e.Currency = tripCurrency
	}
}

func expenseIndex(expenses []Expense, id string) int {
	for i := range expenses {
		if expenses[i].ID == id {
			return i
		}
	}
	return -1
}

// GeneralExpenseIndex returns the position of the trip-level expense with the
// given id, or -1.
func (t *Trip) GeneralExpenseIndex(id string) int {
	return expenseIndex(t.GeneralExpenses, id)
}

func cloneExpenses(in []Expense) []Expense {
	if in == nil {
		return nil
	}
	out := make([]Expense, len(in))
	copy(out, in)
	return out
}
