// Package auth holds the client-side session and authorization machinery.
//
// Three pieces:
//
//  1. [Session] / [Role] : the client-held proof of authentication (identity +
//     bearer token) and its access-control category.
//  2. [Store] : persistence for exactly one session. The SQLite implementation
//     ([SQLiteStore]) writes identity and token in a single transaction so a
//     reader never observes one without the other. A corrupt or partial row
//     reads back as "no session", never as an error.
//  3. [Authorize] : the synchronous authorization check run before every
//     screen change. Route metadata is declared once in [Routes] and evaluated
//     uniformly; the nav menu draws from the same [Feature] allow-list so the
//     two cannot drift.
//
// The store is injected wherever it is needed. There is no package-level
// session singleton.
package auth
