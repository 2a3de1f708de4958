// Package dates converts between absolute calendar dates and the short
// relative phrases the assistant speaks, and resolves NLU datetime payloads
// into concrete dates.
package dates
