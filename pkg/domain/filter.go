package domain

// TaskFilter selects which slice of the task list a scene works with.
// The string value is passed to the backend verbatim as its filter query.
type TaskFilter string

const (
	FilterToday    TaskFilter = "today"
	FilterTomorrow TaskFilter = "tomorrow"
)

// ParseTaskFilter maps a raw slot/session value to a TaskFilter.
// Anything but the two known values yields ErrUnknownFilter.
func ParseTaskFilter(raw string) (TaskFilter, error) {
	switch raw {
	case string(FilterToday):
		return FilterToday, nil
	case string(FilterTomorrow):
		return FilterTomorrow, nil
	default:
		return "", ErrUnknownFilter
	}
}
