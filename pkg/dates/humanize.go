package dates

import (
	"fmt"
	"time"
)

// Month names in the genitive case, as they read inside a date phrase.
var monthsGenitive = [...]string{
	"января", "февраля", "марта", "апреля", "мая", "июня",
	"июля", "августа", "сентября", "октября", "ноября", "декабря",
}

// Humanize renders date as a short relative phrase with today as the
// reference point.
//
// Near dates get relative words; a distant future date within the current
// year omits the year, while any distant past date is always fully dated.
// The asymmetry is deliberate: near-term future phrasing stays terse, past
// references never leave the year ambiguous.
func Humanize(date, today time.Time) string {
	days := daysBetween(today, date)
	switch days {
	case 0:
		return "сегодня"
	case 1:
		return "завтра"
	case 2:
		return "послезавтра"
	case -1:
		return "вчера"
	case -2:
		return "позавчера"
	}

	if days > 0 && date.Year() == today.Year() {
		return fmt.Sprintf("%d %s", date.Day(), monthsGenitive[date.Month()-1])
	}
	return fmt.Sprintf("%d %s %d года", date.Day(), monthsGenitive[date.Month()-1], date.Year())
}

// daysBetween counts calendar days from a to b, ignoring the time of day.
func daysBetween(a, b time.Time) int {
	a = time.Date(a.Year(), a.Month(), a.Day(), 0, 0, 0, 0, time.UTC)
	b = time.Date(b.Year(), b.Month(), b.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}
