package dialog

// Registry is the fixed mapping from scene identity to scene implementation.
// The scene set is declared statically so it stays auditable; nothing is
// discovered at runtime.
type Registry struct {
	deps     Deps
	scenes   map[string]func(Deps) Scene
	defaults func(Deps) Scene
}

// NewRegistry builds the registry over the known scenes, with Welcome as the
// designated initial scene.
func NewRegistry(deps Deps) *Registry {
	return &Registry{
		deps: deps.withDefaults(),
		scenes: map[string]func(Deps) Scene{
			SceneWelcome:    func(d Deps) Scene { return NewWelcome(d) },
			SceneTasksList:  func(d Deps) Scene { return NewTasksList(d) },
			SceneCreateTask: func(d Deps) Scene { return NewCreateTask(d) },
		},
		defaults: func(d Deps) Scene { return NewWelcome(d) },
	}
}

// Get resolves a persisted scene identity.
func (r *Registry) Get(id string) (Scene, bool) {
	factory, ok := r.scenes[id]
	if !ok {
		return nil, false
	}
	return factory(r.deps), true
}

// Default returns the initial scene.
func (r *Registry) Default() Scene {
	return r.defaults(r.deps)
}
