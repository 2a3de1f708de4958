package dialog

import (
	"context"
	"log/slog"

	"github.com/RasimKhusaenov/alice-todoist-integration/internal/logging"
	"github.com/RasimKhusaenov/alice-todoist-integration/internal/observability"
	"github.com/RasimKhusaenov/alice-todoist-integration/pkg/domain"
)

// Engine drives one turn through the scene state machine. It is stateless
// and reentrant: everything a turn needs is in the Turn, everything it
// produces is in the Response.
type Engine struct {
	registry *Registry
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// EngineOption configures the engine.
type EngineOption func(*Engine)

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) EngineOption {
	return func(e *Engine) { e.logger = logger }
}

// WithMetrics enables turn/transition counters.
func WithMetrics(m *observability.Metrics) EngineOption {
	return func(e *Engine) { e.metrics = m }
}

// NewEngine creates the turn driver over a scene registry.
func NewEngine(registry *Registry, opts ...EngineOption) *Engine {
	e := &Engine{
		registry: registry,
		logger:   logging.NewNop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Step resolves the current scene, attempts a transition, and renders the
// reply. A turn with no prior state gets the default scene's reply directly;
// an unknown persisted identity falls back to the default scene rather than
// failing the turn.
func (e *Engine) Step(ctx context.Context, turn *domain.Turn) *domain.Response {
	sceneID := turn.SceneID()
	if sceneID == "" {
		scene := e.registry.Default()
		e.logger.Info("new conversation", "scene", scene.ID())
		resp := scene.Reply(ctx, turn)
		e.countTurn(resp.Scene())
		return resp
	}

	current, ok := e.registry.Get(sceneID)
	if !ok {
		e.logger.Warn("unknown scene in session state", "scene", sceneID)
		current = e.registry.Default()
	}

	next := move(current, turn)
	if next == nil {
		e.logger.Info("no transition matched", "scene", current.ID(), "utterance", turn.Utterance)
		if e.metrics != nil {
			e.metrics.Fallbacks.WithLabelValues(current.ID()).Inc()
		}
		resp := current.Fallback(turn)
		e.countTurn(resp.Scene())
		return resp
	}

	e.logger.Info("moving between scenes", "from", current.ID(), "to", next.ID())
	if e.metrics != nil {
		e.metrics.Transitions.WithLabelValues(current.ID(), next.ID()).Inc()
	}
	resp := next.Reply(ctx, turn)
	e.countTurn(resp.Scene())
	return resp
}

func (e *Engine) countTurn(scene string) {
	if e.metrics != nil {
		e.metrics.Turns.WithLabelValues(scene).Inc()
	}
}
