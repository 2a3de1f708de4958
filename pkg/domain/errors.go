package domain

import "errors"

// ErrUnknownFilter is returned when a time slot carries neither "today" nor
// "tomorrow". Scenes surface it as a clarifying reprompt, never as a crash.
var ErrUnknownFilter = errors.New("unrecognized task filter")

// ErrBackendUnavailable wraps failures on the task backend boundary so scenes
// can distinguish them from a missed transition and render a degraded reply.
var ErrBackendUnavailable = errors.New("task backend unavailable")

// ErrCacheMiss is returned when a task cache has no entry for a session.
var ErrCacheMiss = errors.New("task cache miss")
