package domain

// TransportType is how the traveller reaches an activity.
type TransportType string

const (
	TransportWalk   TransportType = "walk"
	TransportCar    TransportType = "car"
	TransportPublic TransportType = "public"
	TransportOther  TransportType = "other"
)

// Valid reports whether t is a known transport type.
func (t TransportType) Valid() bool {
	switch t {
	case TransportWalk, TransportCar, TransportPublic, TransportOther:
		return true
	}
	return false
}

// Activity is a planned stop or event within a day.
type Activity struct {
	ID            string        `json:"id"`
	Name          string        `json:"name"`
	Address       string        `json:"address"`
	Lat           float64       `json:"lat"`
	Lng           float64       `json:"lng"`
	EstimatedCost float64       `json:"estimatedCost"`
	Expenses      []Expense     `json:"expenses"`
	TransportType TransportType `json:"transportType"`
	Notes         string        `json:"notes"`
	Completed     bool          `json:"completed"`
}

// ApplyDefaults guarantees Expenses is present and every expense has a currency.
func (a *Activity) ApplyDefaults(tripCurrency Currency) {
	if a.Expenses == nil {
		a.Expenses = []Expense{}
	}
	for i := range a.Expenses {
		a.Expenses[i].ApplyDefaults(tripCurrency)
	}
}

// ExpenseIndex returns the position of the expense with the given id, or -1.
func (a *Activity) ExpenseIndex(id string) int {
	return expenseIndex(a.Expenses, id)
}

// Clone returns a deep copy of a.
func (a Activity) Clone() Activity {
	out := a
	out.Expenses = cloneExpenses(a.Expenses)
	return out
}
