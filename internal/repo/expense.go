package repo

import "github.com/pkordes/trip-planner/internal/domain"

// activityLocked resolves a (tripID, dayIndex, activityID) path.
func (r *TripRepo) activityLocked(tripID string, dayIndex int, activityID string) (*domain.Trip, *domain.Activity) {
	t, d := r.dayLocked(tripID, dayIndex)
	if d == nil {
		return nil, nil
	}
	i := d.ActivityIndex(activityID)
	if i < 0 {
		return nil, nil
	}
	return t, &d.Activities[i]
}

// AddExpense appends expense to the activity's expenses. An expense without a
// currency takes the trip's. Empty ids and duplicate ids within the activity
// are rejected.
func (r *TripRepo) AddExpense(tripID string, dayIndex int, activityID string, expense domain.Expense) bool {
	return r.mutate("add_expense", func() bool {
		t, a := r.activityLocked(tripID, dayIndex, activityID)
		if expense.ID == "" || a == nil || a.ExpenseIndex(expense.ID) >= 0 {
			return false
		}
		expense.ApplyDefaults(t.Currency)
		a.Expenses = append(a.Expenses, expense)
		return true
	})
}

// UpdateExpense replaces the activity's expense with the same id.
func (r *TripRepo) UpdateExpense(tripID string, dayIndex int, activityID string, expense domain.Expense) bool {
	return r.mutate("update_expense", func() bool {
		t, a := r.activityLocked(tripID, dayIndex, activityID)
		if a == nil {
			return false
		}
		i := a.ExpenseIndex(expense.ID)
		if i < 0 {
			return false
		}
		expense.ApplyDefaults(t.Currency)
		a.Expenses[i] = expense
		return true
	})
}

// RemoveExpense deletes the activity's expense with the given id.
func (r *TripRepo) RemoveExpense(tripID string, dayIndex int, activityID, expenseID string) bool {
	return r.mutate("remove_expense", func() bool {
		_, a := r.activityLocked(tripID, dayIndex, activityID)
		if a == nil {
			return false
		}
		i := a.ExpenseIndex(expenseID)
		if i < 0 {
			return false
		}
		a.Expenses = append(a.Expenses[:i], a.Expenses[i+1:]...)
		return true
	})
}

// AddGeneralExpense appends a trip-level expense not tied to any activity.
// Empty and duplicate ids are rejected.
func (r *TripRepo) AddGeneralExpense(tripID string, expense domain.Expense) bool {
	return r.mutate("add_general_expense", func() bool {
		t := r.findLocked(tripID)
		if expense.ID == "" || t == nil || t.GeneralExpenseIndex(expense.ID) >= 0 {
			return false
		}
		expense.ApplyDefaults(t.Currency)
		t.GeneralExpenses = append(t.GeneralExpenses, expense)
		return true
	})
}

// UpdateGeneralExpense replaces the trip-level expense with the same id.
func (r *TripRepo) UpdateGeneralExpense(tripID string, expense domain.Expense) bool {
	return r.mutate("update_general_expense", func() bool {
		t := r.findLocked(tripID)
		if t == nil {
			return false
		}
		i := t.GeneralExpenseIndex(expense.ID)
		if i < 0 {
			return false
		}
		expense.ApplyDefaults(t.Currency)
		t.GeneralExpenses[i] = expense
		return true
	})
}

// RemoveGeneralExpense deletes the trip-level expense with the given id.
func (r *TripRepo) RemoveGeneralExpense(tripID, expenseID string) bool {
	return r.mutate("remove_general_expense", func() bool {
		t := r.findLocked(tripID)
		if t == nil {
			return false
		}
		i := t.GeneralExpenseIndex(expenseID)
		if i < 0 {
			return false
		}
		t.GeneralExpenses = append(t.GeneralExpenses[:i], t.GeneralExpenses[i+1:]...)
		return true
	})
}
