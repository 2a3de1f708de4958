package dialog

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/dates"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// extractFilter derives the task filter from the intent's time slot, falling
// back to the session echo of a previous selection. Session acts as memory
// for the filter across turns within the same scene.
func extractFilter(turn *domain.Turn, intent string) (domain.TaskFilter, error) {
	if slot, ok := turn.Slot(intent, domain.SlotTime); ok {
		if s, ok := slot.Value.(string); ok && s != "" {
			return domain.ParseTaskFilter(s)
		}
	}
	if v, ok := turn.SessionValue(domain.StateKeyTime); ok {
		if s, ok := v.(string); ok {
			return domain.ParseTaskFilter(s)
		}
	}
	return "", domain.ErrUnknownFilter
}

// extractPosition reads the list position persisted by a previous turn.
// Position is a pure function of prior state, never of the current
// utterance, so repeated "next" commands walk forward without the platform
// re-sending a position. Absent or non-numeric values default to 0.
func extractPosition(turn *domain.Turn) int {
	v, ok := turn.SessionValue(domain.StateKeyPosition)
	if !ok {
		return 0
	}
	switch n := v.(type) {
	case float64:
		if n >= 0 && n == math.Trunc(n) {
			return int(n)
		}
	case int:
		if n >= 0 {
			return n
		}
	case string:
		if i, err := strconv.Atoi(n); err == nil && i >= 0 {
			return i
		}
	}
	return 0
}

// extractDate resolves a datetime slot into a calendar date. Slots of any
// other declared type are treated as not present.
func extractDate(turn *domain.Turn, intent, slot string, today time.Time) (*time.Time, error) {
	s, ok := turn.Slot(intent, slot)
	if !ok || s.Type != domain.SlotTypeDateTime {
		return nil, nil
	}
	d, err := dates.Resolve(s.Value, today)
	if err != nil {
		return nil, fmt.Errorf("slot %s.%s: %w", intent, slot, err)
	}
	return &d, nil
}
