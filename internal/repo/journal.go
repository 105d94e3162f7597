package repo

import "github.com/pkordes/trip-planner/internal/domain"

// AddJournalEntry appends entry to the day and re-sorts the day's journals by
// timestamp. Entries with equal timestamps keep insertion order. An entry
// without an id is rejected.
func (r *TripRepo) AddJournalEntry(tripID string, dayIndex int, entry domain.JournalEntry) bool {
	return r.mutate("add_journal_entry", func() bool {
		_, d := r.dayLocked(tripID, dayIndex)
		if entry.ID == "" || d == nil || d.JournalIndex(entry.ID) >= 0 {
			return false
		}
		e := entry.Clone()
		e.ApplyDefaults()
		d.Journals = append(d.Journals, e)
		domain.SortJournals(d.Journals)
		return true
	})
}

// UpdateJournalEntry replaces the entry with the same id and re-sorts.
func (r *TripRepo) UpdateJournalEntry(tripID string, dayIndex int, entry domain.JournalEntry) bool {
	return r.mutate("update_journal_entry", func() bool {
		_, d := r.dayLocked(tripID, dayIndex)
		if d == nil {
			return false
		}
		i := d.JournalIndex(entry.ID)
		if i < 0 {
			return false
		}
		e := entry.Clone()
		e.ApplyDefaults()
		d.Journals[i] = e
		domain.SortJournals(d.Journals)
		return true
	})
}

// RemoveJournalEntry deletes the entry with the given id.
func (r *TripRepo) RemoveJournalEntry(tripID string, dayIndex int, entryID string) bool {
	return r.mutate("remove_journal_entry", func() bool {
		_, d := r.dayLocked(tripID, dayIndex)
		if d == nil {
			return false
		}
		i := d.JournalIndex(entryID)
		if i < 0 {
			return false
		}
		d.Journals = append(d.Journals[:i], d.Journals[i+1:]...)
		return true
	})
}
