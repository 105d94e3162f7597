package i18n_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/trip-planner/internal/i18n"
	"github.com/pkordes/trip-planner/internal/storage"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"en", "en"},
		{"en-US", "en"},
		{"zh", "zh"},
		{"zh-TW", "zh"},
		{"zh-Hant", "zh"},
		{" zh-Hant-TW ", "zh"},
		{"fr", "en"},
		{"", "en"},
		{"not a tag!", "en"},
	}
	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			assert.Equal(t, tc.want, i18n.Normalize(tc.in))
		})
	}
}

func TestLocalizer_T(t *testing.T) {
	en := i18n.For("en")
	zh := i18n.For("zh-TW")

	assert.Equal(t, "en", en.Lang())
	assert.Equal(t, "zh", zh.Lang())
	assert.Equal(t, "Accommodation", en.T("cat.stay"))
	assert.Equal(t, "住宿", zh.T("cat.stay"))
	assert.Equal(t, "Total Actual Spent", en.T("finance.totalActual"))
	assert.Equal(t, `No trips found. Go to "My Trip" to create one.`, en.T("finance.noTrips"))
}

func TestLocalizer_T_UnknownKeyReturnsKey(t *testing.T) {
	assert.Equal(t, "no.such.key", i18n.For("en").T("no.such.key"))
	assert.Equal(t, "cat.", i18n.For("zh").T("cat."))
}

func TestLocalizer_Day(t *testing.T) {
	assert.Equal(t, "Day 3", i18n.For("en").Day(3))
	assert.Equal(t, "第 3 天", i18n.For("zh").Day(3))
}

func TestLocalizer_LongDate(t *testing.T) {
	assert.Equal(t, "Sunday, June 1, 2025", i18n.For("en").LongDate("2025-06-01"))
	assert.Equal(t, "2025年6月1日 星期日", i18n.For("zh").LongDate("2025-06-01"))
}

func TestLocalizer_LongDate_UnparseableReturnsRaw(t *testing.T) {
	assert.Equal(t, "someday", i18n.For("en").LongDate("someday"))
	assert.Equal(t, "", i18n.For("zh").LongDate(""))
}

// Every English key must have a Chinese translation and vice versa.
func TestTables_SameKeys(t *testing.T) {
	en, zh := i18n.For("en"), i18n.For("zh")
	for _, key := range []string{
		"trip.emptyActivities", "finance.totalActual", "finance.view.all",
		"finance.finances", "modal.noExpenses",
		"cat.transport", "cat.food", "cat.stay", "cat.shopping", "cat.medical", "cat.other",
	} {
		assert.NotEqual(t, key, en.T(key), "en missing %s", key)
		assert.NotEqual(t, key, zh.T(key), "zh missing %s", key)
	}
}

// ---- LocaleStore -----------------------------------------------------------

type failingStore struct{ storage.Store }

func (failingStore) Put(context.Context, string, []byte) error { return errors.New("read-only") }

func TestLocaleStore_DefaultsWhenNothingPersisted(t *testing.T) {
	s := i18n.NewLocaleStore(storage.NewMemory(), "zh-TW", nil)

	require.NoError(t, s.Load(context.Background()))

	assert.Equal(t, "zh", s.Lang())
}

func TestLocaleStore_LoadsPersistedValue(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(ctx, storage.LocaleKey, []byte("zh")))
	s := i18n.NewLocaleStore(mem, "en", nil)

	require.NoError(t, s.Load(ctx))

	assert.Equal(t, "zh", s.Lang())
	assert.Equal(t, "zh", s.Localizer().Lang())
}

func TestLocaleStore_IgnoresUnknownPersistedValue(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	require.NoError(t, mem.Put(ctx, storage.LocaleKey, []byte("klingon")))
	s := i18n.NewLocaleStore(mem, "en", nil)

	require.NoError(t, s.Load(ctx))

	assert.Equal(t, "en", s.Lang())
}

func TestLocaleStore_TogglePersists(t *testing.T) {
	ctx := context.Background()
	mem := storage.NewMemory()
	s := i18n.NewLocaleStore(mem, "en", nil)

	lang, err := s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "zh", lang)

	stored, err := mem.Get(ctx, storage.LocaleKey)
	require.NoError(t, err)
	assert.Equal(t, "zh", string(stored))

	lang, err = s.Toggle(ctx)
	require.NoError(t, err)
	assert.Equal(t, "en", lang)
}

func TestLocaleStore_SetNormalizes(t *testing.T) {
	s := i18n.NewLocaleStore(storage.NewMemory(), "en", nil)

	lang, err := s.Set(context.Background(), "zh-Hant")

	require.NoError(t, err)
	assert.Equal(t, "zh", lang)
	assert.Equal(t, "zh", s.Lang())
}

func TestLocaleStore_WriteFailureKeepsLanguage(t *testing.T) {
	s := i18n.NewLocaleStore(failingStore{storage.NewMemory()}, "en", nil)

	_, err := s.Toggle(context.Background())

	require.Error(t, err)
	assert.Equal(t, "en", s.Lang())
}
