/*
Package ports defines the driven ports (interfaces) for the dialog core.

These interfaces decouple the scenes from external implementations, allowing
the engine to work with a real task backend in production and fakes in tests.

# Key Interfaces

  - TaskService: the external task-management backend (listing, creation).
  - TaskCache: short-lived per-session storage for a fetched task list.
*/
package ports
