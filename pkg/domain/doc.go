/*
Package domain contains the core domain models of the dialog webhook.

It defines the entities one conversational turn is made of: the parsed Turn
(intents, slots, session state), the Response a scene renders, the TaskFilter
and Task values the scenes operate on, and the Alice wire envelopes. This
package is kept pure and free of external dependencies like I/O or
persistence, following Hexagonal Architecture principles.

# Key Entities

  - Turn: one incoming utterance with recognized intents and prior session state.
  - Response: the rendered reply plus the state block persisted for the next turn.
  - TaskFilter: the "today"/"tomorrow" listing filter.
  - Task: a task as reported by the external backend.
*/
package domain
