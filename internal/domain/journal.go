package domain

import "sort"

// Weather tags a journal entry. The zero value means no weather was recorded.
type Weather string

const (
	WeatherNone   Weather = ""
	WeatherSunny  Weather = "sunny"
	WeatherCloudy Weather = "cloudy"
	WeatherRainy  Weather = "rainy"
	WeatherSnowy  Weather = "snowy"
	WeatherWindy  Weather = "windy"
)

// Valid reports whether w is a known weather tag or none.
func (w Weather) Valid() bool {
	switch w {
	case WeatherNone, WeatherSunny, WeatherCloudy, WeatherRainy, WeatherSnowy, WeatherWindy:
		return true
	}
	return false
}

// DefaultJournalTimestamp is given to entries converted from the legacy
// single-journal-per-day shape, which had no time of day.
const DefaultJournalTimestamp = "12:00"

// JournalEntry is a diary record for a day. Timestamp is "HH:MM" (24h).
// Photos holds base64-encoded images.
type JournalEntry struct {
	ID        string   `json:"id"`
	Timestamp string   `json:"timestamp"`
	Content   string   `json:"content"`
	Weather   Weather  `json:"weather,omitempty"`
	Location  string   `json:"location,omitempty"`
	Photos    []string `json:"photos"`
}

// ApplyDefaults guarantees Photos is present.
func (j *JournalEntry) ApplyDefaults() {
	if j.Photos == nil {
		j.Photos = []string{}
	}
}

// Clone returns a deep copy of j.
func (j JournalEntry) Clone() JournalEntry {
	out := j
	if j.Photos != nil {
		out.Photos = make([]string, len(j.Photos))
		copy(out.Photos, j.Photos)
	}
	return out
}

// SortJournals orders entries by Timestamp ascending. The sort is stable, so
// entries sharing a timestamp keep their insertion order.
func SortJournals(entries []JournalEntry) {
	sort.SliceStable(entries, func(i, k int) bool {
		return entries[i].Timestamp < entries[k].Timestamp
	})
}

// ActivityIndex returns the position of the activity with the given id, or -1.
func (d *DaySchedule) ActivityIndex(id string) int {
	for i := range d.Activities {
		if d.Activities[i].ID == id {
			return i
		}
	}
	return -1
}

// JournalIndex returns the position of the entry with the given id, or -1.
func (d *DaySchedule) JournalIndex(id string) int {
	for i := range d.Journals {
		if d.Journals[i].ID == id {
			return i
		}
	}
	return -1
}
