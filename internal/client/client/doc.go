// Package client talks to the paragraph backend over HTTP.
//
// # Overview
//
// HTTPClient is configured with a fixed base URL; endpoint paths are resolved
// relative to it. Every request passes through authTransport, which:
//
//  1. attaches "Authorization: Bearer <token>" when the session store holds
//     a credential, plus a fresh X-Request-ID;
//  2. on a 401 answer, clears the credential and invokes the OnUnauthorized
//     hook (the CLI navigates to the login screen) before the error reaches
//     the caller.
//
// # Error Handling
//
// Non-2xx answers become *APIError, carrying the status, the raw body and a
// summary message. A 401 unwraps to ErrUnauthorized. Network failures are
// reported as ErrUnavailable. Use MessageOr to pick a specific field of the
// body for display, with a fallback.
package client
