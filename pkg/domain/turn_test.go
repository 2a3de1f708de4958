package domain_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

func TestWebhookRequest_Turn(t *testing.T) {
	payload := `{
		"meta": {"locale": "ru-RU"},
		"session": {"session_id": "sess-1", "new": false},
		"request": {
			"original_utterance": "что у меня на сегодня",
			"nlu": {"intents": {"get_nearest_tasks": {"slots": {"time": {"type": "YANDEX.STRING", "value": "today"}}}}}
		},
		"state": {"session": {"scene": "TasksList", "position": {"value": 1}}},
		"version": "1.0"
	}`

	var req domain.WebhookRequest
	require.NoError(t, json.Unmarshal([]byte(payload), &req))

	turn := req.Turn()
	assert.Equal(t, "sess-1", turn.SessionID)
	assert.Equal(t, "TasksList", turn.SceneID())
	assert.True(t, turn.HasIntent(domain.IntentListTasks))

	slot, ok := turn.Slot(domain.IntentListTasks, domain.SlotTime)
	require.True(t, ok)
	assert.Equal(t, "today", slot.Value)

	pos, ok := turn.SessionValue(domain.StateKeyPosition)
	require.True(t, ok)
	assert.Equal(t, float64(1), pos)
}

func TestWebhookRequest_Turn_EmptyPayload(t *testing.T) {
	var req domain.WebhookRequest
	turn := req.Turn()

	// Nil maps are normalized so callers never branch on them.
	assert.NotNil(t, turn.Intents)
	assert.NotNil(t, turn.Session)
	assert.Empty(t, turn.SceneID())
}

func TestResponse_Webhook(t *testing.T) {
	resp := &domain.Response{
		Text: "Задача 1: купить молоко.",
		TTS:  "Задача 1: купить молоко.",
		State: map[string]any{
			domain.StateKeyScene:    "TasksList",
			domain.StateKeyPosition: map[string]any{"value": 0},
		},
	}

	out := resp.Webhook()
	assert.Equal(t, "1.0", out.Version)
	assert.Equal(t, resp.Text, out.Response.Text)
	assert.Equal(t, "TasksList", out.SessionState[domain.StateKeyScene])

	// The wire field name for the state block is fixed by the platform.
	data, err := json.Marshal(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"session_state"`)
}

func TestParseTaskFilter(t *testing.T) {
	f, err := domain.ParseTaskFilter("today")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterToday, f)

	f, err = domain.ParseTaskFilter("tomorrow")
	require.NoError(t, err)
	assert.Equal(t, domain.FilterTomorrow, f)

	_, err = domain.ParseTaskFilter("next week")
	assert.ErrorIs(t, err, domain.ErrUnknownFilter)

	_, err = domain.ParseTaskFilter("")
	assert.ErrorIs(t, err, domain.ErrUnknownFilter)
}
