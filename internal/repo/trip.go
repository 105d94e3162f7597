// Package repo owns the canonical in-memory trip collection.
//
// TripRepo is loaded once from durable storage (through the schema migrator),
// then mutated in place by the trip and nested-entity operations in this
// package. Every mutation that resolves its path runs the registered
// observers synchronously with a snapshot of the whole collection; the
// persister observer writes that snapshot back to storage. Operations whose
// path does not resolve (unknown trip id, day index out of range, unknown
// nested id) change nothing, notify nobody, and report false.
package repo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/metrics"
	"github.com/pkordes/trip-planner/internal/migrate"
	"github.com/pkordes/trip-planner/internal/storage"
)

// Observer is called after every applied mutation with a snapshot of the full
// collection. Observers run synchronously, in registration order, while the
// repository lock is held, so they must not call back into the repository.
// The snapshot is shared between observers and must be treated as read-only.
type Observer func(trips []domain.Trip)

// Option configures a TripRepo.
type Option func(*TripRepo)

// WithMetrics records mutation outcomes and the trip count on m.
func WithMetrics(m *metrics.Metrics) Option {
	return func(r *TripRepo) { r.metrics = m }
}

// WithMigrateOptions passes options to the schema migrator used by Load.
func WithMigrateOptions(opts ...migrate.Option) Option {
	return func(r *TripRepo) { r.migrateOpts = opts }
}

// TripRepo is the single owner of the trip collection.
// The mutex serializes callers from concurrent HTTP requests; each operation
// still runs to completion, observers included, before the next one starts.
type TripRepo struct {
	mu          sync.Mutex
	trips       []domain.Trip
	observers   []Observer
	log         *slog.Logger
	metrics     *metrics.Metrics
	migrateOpts []migrate.Option
}

// NewTripRepo returns an empty repository. A nil log uses slog.Default().
func NewTripRepo(log *slog.Logger, opts ...Option) *TripRepo {
	if log == nil {
		log = slog.Default()
	}
	r := &TripRepo{trips: []domain.Trip{}, log: log}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load replaces the collection with the migrated contents of storage.TripsKey.
// A missing key is an empty collection. Data that cannot be decoded is logged
// and discarded, leaving an empty collection; that payload is lost once the
// next write happens. Only storage I/O failures are returned.
// Load does not notify observers; call Flush to write the migrated shape back.
func (r *TripRepo) Load(ctx context.Context, src storage.Store) error {
	data, err := src.Get(ctx, storage.TripsKey)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("repo.TripRepo.Load: %w", err)
	}

	trips, err := migrate.Decode(data, r.migrateOpts...)
	if err != nil {
		r.log.ErrorContext(ctx, "discarding unreadable trip data",
			"error", err,
			"bytes", len(data),
		)
		trips = []domain.Trip{}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.trips = trips
	r.setTripGauge()
	r.log.InfoContext(ctx, "trips loaded", "count", len(trips))
	return nil
}

// Subscribe registers an observer for every subsequent applied mutation.
func (r *TripRepo) Subscribe(obs Observer) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.observers = append(r.observers, obs)
}

// Flush runs every observer against the current collection.
func (r *TripRepo) Flush() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notifyLocked()
}

// Trips returns a deep copy of the collection in insertion order.
func (r *TripRepo) Trips() []domain.Trip {
	r.mu.Lock()
	defer r.mu.Unlock()
	return cloneAll(r.trips)
}

// GetTrip returns a deep copy of the trip with the given id.
func (r *TripRepo) GetTrip(id string) (domain.Trip, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t := r.findLocked(id)
	if t == nil {
		return domain.Trip{}, false
	}
	return t.Clone(), true
}

// AddTrip appends trip after default-initializing every day's journals and
// the other always-present collections. A trip whose id is empty or already
// taken is rejected so trip ids stay unique.
func (r *TripRepo) AddTrip(trip domain.Trip) bool {
	return r.mutate("add_trip", func() bool {
		if trip.ID == "" || r.findLocked(trip.ID) != nil {
			return false
		}
		r.trips = append(r.trips, normalize(trip.Clone()))
		return true
	})
}

// UpdateTrip replaces the trip with the same id.
func (r *TripRepo) UpdateTrip(trip domain.Trip) bool {
	return r.mutate("update_trip", func() bool {
		i := r.indexLocked(trip.ID)
		if i < 0 {
			return false
		}
		r.trips[i] = normalize(trip.Clone())
		return true
	})
}

// RemoveTrip deletes the trip with the given id.
func (r *TripRepo) RemoveTrip(id string) bool {
	return r.mutate("remove_trip", func() bool {
		i := r.indexLocked(id)
		if i < 0 {
			return false
		}
		r.trips = append(r.trips[:i], r.trips[i+1:]...)
		return true
	})
}

// mutate runs fn under the lock and notifies observers when fn reports that
// it changed the collection.
func (r *TripRepo) mutate(op string, fn func() bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	applied := fn()
	r.metrics.ObserveMutation(op, applied)
	if !applied {
		r.log.Debug("mutation path not found", "op", op)
		return false
	}
	r.notifyLocked()
	return true
}

func (r *TripRepo) notifyLocked() {
	r.setTripGauge()
	if len(r.observers) == 0 {
		return
	}
	snapshot := cloneAll(r.trips)
	for _, obs := range r.observers {
		obs(snapshot)
	}
}

func (r *TripRepo) setTripGauge() {
	if r.metrics != nil {
		r.metrics.Trips.Set(float64(len(r.trips)))
	}
}

func (r *TripRepo) indexLocked(id string) int {
	for i := range r.trips {
		if r.trips[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *TripRepo) findLocked(id string) *domain.Trip {
	if i := r.indexLocked(id); i >= 0 {
		return &r.trips[i]
	}
	return nil
}

// dayLocked resolves a (tripID, dayIndex) path.
func (r *TripRepo) dayLocked(tripID string, dayIndex int) (*domain.Trip, *domain.DaySchedule) {
	t := r.findLocked(tripID)
	if t == nil {
		return nil, nil
	}
	d := t.Day(dayIndex)
	if d == nil {
		return nil, nil
	}
	return t, d
}

// normalize establishes the collection invariants on a trip supplied by a
// caller: every slice present, expense currencies set, journals sorted.
func normalize(t domain.Trip) domain.Trip {
	t.ApplyDefaults()
	for i := range t.Days {
		domain.SortJournals(t.Days[i].Journals)
	}
	return t
}

func cloneAll(trips []domain.Trip) []domain.Trip {
	out := make([]domain.Trip, len(trips))
	for i, t := range trips {
		out[i] = t.Clone()
	}
	return out
}
