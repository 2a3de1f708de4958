package domain

// Intent identifiers as configured in the Alice dialog console.
const (
	IntentListTasks  = "get_nearest_tasks"
	IntentNextTask   = "get_next_task"
	IntentCreateTask = "create_task"
)

// Slot names within the intents above.
const (
	SlotTime     = "time"
	SlotPosition = "position"
	SlotWhat     = "what"
	SlotWhen     = "when"
)

// Session state keys round-tripped by the platform between turns.
const (
	StateKeyScene    = "scene"
	StateKeyPosition = "position"
	StateKeyTime     = "time"
)

// StateResponseKey is the top-level field of the webhook response that carries
// the persisted session state. Fixed by the Alice protocol.
const StateResponseKey = "session_state"

// SlotTypeDateTime marks a slot whose value is a date/time expression.
const SlotTypeDateTime = "YANDEX.DATETIME"
