package repo

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/pkordes/trip-planner/internal/domain"
	"github.com/pkordes/trip-planner/internal/metrics"
	"github.com/pkordes/trip-planner/internal/storage"
)

// persistTimeout bounds one full-collection write.
const persistTimeout = 5 * time.Second

// NewPersister returns an Observer that writes the whole collection, JSON
// encoded, to store under key. Failures are logged and counted; the in-memory
// state stays authoritative and the next mutation writes again.
// m may be nil.
func NewPersister(store storage.Store, key string, log *slog.Logger, m *metrics.Metrics) Observer {
	return func(trips []domain.Trip) {
		start := time.Now()

		data, err := json.Marshal(trips)
		if err == nil {
			ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
			err = store.Put(ctx, key, data)
			cancel()
		}

		if m != nil {
			m.FlushDuration.Observe(time.Since(start).Seconds())
		}
		if err != nil {
			if m != nil {
				m.Flushes.WithLabelValues("error").Inc()
			}
			log.Error("failed to persist trips", "error", err, "key", key)
			return
		}
		if m != nil {
			m.Flushes.WithLabelValues("ok").Inc()
			m.FlushBytes.Set(float64(len(data)))
		}
		log.Debug("trips persisted", "key", key, "bytes", len(data), "count", len(trips))
	}
}
