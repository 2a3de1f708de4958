package dates_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/dates"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHumanize_Boundaries(t *testing.T) {
	today := date(2026, time.June, 15)

	cases := []struct {
		name string
		in   time.Time
		want string
	}{
		{"today", today, "сегодня"},
		{"tomorrow", today.AddDate(0, 0, 1), "завтра"},
		{"day after tomorrow", today.AddDate(0, 0, 2), "послезавтра"},
		{"future same year", today.AddDate(0, 0, 10), "25 июня"},
		{"future next year", date(2027, time.June, 25), "25 июня 2027 года"},
		{"yesterday", today.AddDate(0, 0, -1), "вчера"},
		{"day before yesterday", today.AddDate(0, 0, -2), "позавчера"},
		{"past same year keeps year", today.AddDate(0, 0, -10), "5 июня 2026 года"},
		{"past other year", date(2025, time.December, 31), "31 декабря 2025 года"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, dates.Humanize(tc.in, today))
		})
	}
}

func TestHumanize_NoLeadingZero(t *testing.T) {
	today := date(2026, time.June, 15)
	// 1st of September must render as "1", never "01".
	assert.Equal(t, "1 сентября", dates.Humanize(date(2026, time.September, 1), today))
}

func TestHumanize_YearBoundary(t *testing.T) {
	// "Tomorrow" across New Year stays a relative word even though the year
	// changes.
	today := date(2026, time.December, 31)
	assert.Equal(t, "завтра", dates.Humanize(date(2027, time.January, 1), today))

	// Three days out in January is a different year, so it is fully dated.
	assert.Equal(t, "3 января 2027 года", dates.Humanize(date(2027, time.January, 3), today))
}
