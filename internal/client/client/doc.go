// Package client contains client-side building blocks for Photoshare.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the whole backend surface: account operations, the user directory, and
//     photos with their nested comments.
//  2. A concrete HTTP implementation (see HTTPClient) that manages a cookie
//     jar for session credentials, attaches a correlation id to every request,
//     and maps HTTP status codes to sentinel errors.
//  3. Local persistence bootstrap utilities (InitDatabase, RunMigrations) for
//     the CLI, wiring an SQLite database and applying embedded goose migrations.
//
// # Error Handling
//
// Common conditions are exposed as sentinel errors that callers can match with
// errors.Is: ErrUnavailable, ErrUnauthorized, ErrNotFound. Rejections that
// carry server-provided error text are returned as *RequestError.
//
// Concurrency & Contexts
//
// Implementations should be safe for concurrent use unless stated otherwise.
// All operations accept context.Context and must honor cancellation/timeouts.
package client
