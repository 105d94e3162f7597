package repo

import "github.com/pkordes/trip-planner/internal/domain"

// AddActivity appends activity to the end of the day's activities.
// An activity with an empty id, or one already used on that day, is rejected.
func (r *TripRepo) AddActivity(tripID string, dayIndex int, activity domain.Activity) bool {
	return r.mutate("add_activity", func() bool {
		t, d := r.dayLocked(tripID, dayIndex)
		if activity.ID == "" || d == nil || d.ActivityIndex(activity.ID) >= 0 {
			return false
		}
		a := activity.Clone()
		a.ApplyDefaults(t.Currency)
		d.Activities = append(d.Activities, a)
		return true
	})
}

// UpdateActivity replaces the activity with the same id, keeping its position.
func (r *TripRepo) UpdateActivity(tripID string, dayIndex int, activity domain.Activity) bool {
	return r.mutate("update_activity", func() bool {
		t, d := r.dayLocked(tripID, dayIndex)
		if d == nil {
			return false
		}
		i := d.ActivityIndex(activity.ID)
		if i < 0 {
			return false
		}
		a := activity.Clone()
		a.ApplyDefaults(t.Currency)
		d.Activities[i] = a
		return true
	})
}

// RemoveActivity deletes the activity at activityIndex within the day.
// Removal is positional, unlike every other nested delete, so callers must
// resolve the index themselves.
func (r *TripRepo) RemoveActivity(tripID string, dayIndex, activityIndex int) bool {
	return r.mutate("remove_activity", func() bool {
		_, d := r.dayLocked(tripID, dayIndex)
		if d == nil || activityIndex < 0 || activityIndex >= len(d.Activities) {
			return false
		}
		d.Activities = append(d.Activities[:activityIndex], d.Activities[activityIndex+1:]...)
		return true
	})
}

// SetActivityCompleted sets the completed flag of the activity with the given id.
func (r *TripRepo) SetActivityCompleted(tripID string, dayIndex int, activityID string, completed bool) bool {
	return r.mutate("set_activity_completed", func() bool {
		_, d := r.dayLocked(tripID, dayIndex)
		if d == nil {
			return false
		}
		i := d.ActivityIndex(activityID)
		if i < 0 {
			return false
		}
		d.Activities[i].Completed = completed
		return true
	})
}
