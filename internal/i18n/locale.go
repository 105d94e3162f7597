package i18n

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pkordes/trip-planner/internal/storage"
)

// LocaleStore is the persisted UI language. It is read once at startup and
// written back on every change under storage.LocaleKey as the bare code.
type LocaleStore struct {
	mu    sync.Mutex
	store storage.Store
	lang  string
	log   *slog.Logger
}

// NewLocaleStore returns a store whose language is fallback (normalized) until
// Load finds a persisted value.
func NewLocaleStore(store storage.Store, fallback string, log *slog.Logger) *LocaleStore {
	if log == nil {
		log = slog.Default()
	}
	return &LocaleStore{store: store, lang: Normalize(fallback), log: log}
}

// Load reads the persisted language. A missing key or a value other than
// "en" or "zh" leaves the current language in place.
func (s *LocaleStore) Load(ctx context.Context) error {
	data, err := s.store.Get(ctx, storage.LocaleKey)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("i18n.LocaleStore.Load: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	switch v := string(data); v {
	case English, Chinese:
		s.lang = v
	default:
		s.log.WarnContext(ctx, "ignoring unknown persisted locale", "value", v)
	}
	return nil
}

// Lang returns the current language code.
func (s *LocaleStore) Lang() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lang
}

// Localizer returns a Localizer for the current language.
func (s *LocaleStore) Localizer() Localizer {
	return For(s.Lang())
}

// Set normalizes lang, persists it and makes it current. On a write failure
// the current language is unchanged.
func (s *LocaleStore) Set(ctx context.Context, lang string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.setLocked(ctx, Normalize(lang))
}

// Toggle switches between English and Chinese and persists the result.
func (s *LocaleStore) Toggle(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := Chinese
	if s.lang == Chinese {
		next = English
	}
	return s.setLocked(ctx, next)
}

func (s *LocaleStore) setLocked(ctx context.Context, lang string) (string, error) {
	if err := s.store.Put(ctx, storage.LocaleKey, []byte(lang)); err != nil {
		return s.lang, fmt.Errorf("i18n.LocaleStore.Set: %w", err)
	}
	s.lang = lang
	return lang, nil
}
