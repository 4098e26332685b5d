// Package api implements the HTTP client for the Beatly REST service.
//
// [Client] wraps two [http.Client] instances: one sized for ordinary JSON
// exchanges and one with a much longer timeout for multipart video uploads,
// so a large binary payload is never cut off by a timeout meant for small
// JSON bodies.
//
// Every authenticated call reads the bearer token from the injected
// [TokenSource]; an absent token leaves the header off and lets the server
// reject the request. Non-2xx responses decode into [*APIError] whose message
// follows the server's fallback chain (details, error, message) before
// falling back to a fixed string.
package api
