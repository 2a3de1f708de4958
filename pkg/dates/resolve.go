package dates

import (
	"fmt"
	"time"

	"github.com/mitchellh/mapstructure"
)

// datetimeValue mirrors the payload of a YANDEX.DATETIME slot. Pointer fields
// distinguish "component absent" from zero.
type datetimeValue struct {
	Year           *int `mapstructure:"year"`
	Month          *int `mapstructure:"month"`
	Day            *int `mapstructure:"day"`
	DayIsRelative  bool `mapstructure:"day_is_relative"`
	YearIsRelative bool `mapstructure:"year_is_relative"`
}

// Resolve turns a datetime slot payload into a concrete calendar date.
//
// A relative day component is added to today. Otherwise the date is composed
// from the payload's year/month/day, defaulting any missing component to
// today's. Returns an error only for structurally malformed payloads.
func Resolve(payload any, today time.Time) (time.Time, error) {
	var v datetimeValue
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &v,
		WeaklyTypedInput: true, // JSON numbers arrive as float64
	})
	if err != nil {
		return time.Time{}, err
	}
	if err := dec.Decode(payload); err != nil {
		return time.Time{}, fmt.Errorf("malformed datetime payload: %w", err)
	}

	if v.DayIsRelative && v.Day != nil {
		return today.AddDate(0, 0, *v.Day), nil
	}

	year, month, day := today.Year(), int(today.Month()), today.Day()
	if v.Year != nil {
		year = *v.Year
	}
	if v.Month != nil {
		month = *v.Month
	}
	if v.Day != nil {
		day = *v.Day
	}
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, today.Location()), nil
}
