// Package i18n holds the English and Traditional Chinese string tables, the
// locale-aware day and date formatting used by the HTML export, and the
// persisted UI locale.
package i18n

import (
	"embed"
	"fmt"
	"strings"
	"sync"
	"time"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/pkordes/trip-planner/internal/domain"
)

// Supported locale codes.
const (
	English = "en"
	Chinese = "zh"
)

// Localizer translates keys and formats day labels and dates for one locale.
type Localizer interface {
	// Lang is the locale code, "en" or "zh".
	Lang() string
	// T returns the translation for key, or key itself when none exists.
	T(key string) string
	// Day returns the label for the nth day of a trip (1-based).
	Day(n int) string
	// LongDate formats an ISO date with weekday, day, month and year.
	// Input that is not an ISO date is returned unchanged.
	LongDate(iso string) string
}

//go:embed locales/*.yaml
var localeFS embed.FS

var loadTables = sync.OnceValues(func() (map[string]map[string]string, error) {
	tables := make(map[string]map[string]string, 2)
	for _, lang := range []string{English, Chinese} {
		data, err := localeFS.ReadFile("locales/" + lang + ".yaml")
		if err != nil {
			return nil, fmt.Errorf("i18n.loadTables: %w", err)
		}
		table := map[string]string{}
		if err := yaml.Unmarshal(data, &table); err != nil {
			return nil, fmt.Errorf("i18n.loadTables: %s: %w", lang, err)
		}
		tables[lang] = table
	}
	return tables, nil
})

// Normalize maps a BCP 47 tag to a supported locale code. Any Chinese tag
// (zh, zh-TW, zh-Hant, ...) becomes "zh"; everything else, including tags
// that do not parse, becomes "en".
func Normalize(code string) string {
	tag, err := language.Parse(strings.TrimSpace(code))
	if err != nil {
		return English
	}
	if base, _ := tag.Base(); base.String() == Chinese {
		return Chinese
	}
	return English
}

// For returns the Localizer for code after normalizing it.
func For(code string) Localizer {
	lang := Normalize(code)
	tables, err := loadTables()
	if err != nil {
		// The tables are embedded; a parse failure is a build defect.
		panic(err)
	}
	return translator{lang: lang, table: tables[lang]}
}

type translator struct {
	lang  string
	table map[string]string
}

func (t translator) Lang() string { return t.lang }

func (t translator) T(key string) string {
	if s, ok := t.table[key]; ok && s != "" {
		return s
	}
	return key
}

func (t translator) Day(n int) string {
	if t.lang == Chinese {
		return fmt.Sprintf("第 %d 天", n)
	}
	return fmt.Sprintf("Day %d", n)
}

var zhWeekdays = [...]string{"星期日", "星期一", "星期二", "星期三", "星期四", "星期五", "星期六"}

func (t translator) LongDate(iso string) string {
	d, err := time.Parse(domain.DateLayout, iso)
	if err != nil {
		return iso
	}
	if t.lang == Chinese {
		return fmt.Sprintf("%d年%d月%d日 %s", d.Year(), int(d.Month()), d.Day(), zhWeekdays[d.Weekday()])
	}
	return d.Format("Monday, January 2, 2006")
}
