// Package services contains the client-side state-synchronization layer:
// the durable session, the user directory with its derived statistics, the
// profile and photo views, and the account operations that mutate remote
// state. Each service owns its state behind a mutex; network calls never hold
// a lock while in flight, and completions that no longer match the view's
// identity context are discarded instead of applied.
package services

import "errors"

// ViewState is the lifecycle of a managed view.
type ViewState int

const (
	StateUninitialized ViewState = iota
	StateLoading
	StateReady
	StateErrored
	StateNotFound
)

func (s ViewState) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	case StateErrored:
		return "errored"
	case StateNotFound:
		return "notfound"
	default:
		return "unknown"
	}
}

// ErrStale marks a completed fetch whose result no longer matches the view's
// current identity context. The result has been dropped; callers should treat
// this as a no-op, not a failure.
var ErrStale = errors.New("stale response discarded")
