// Package client contains the building blocks the Linkfo CLI uses to talk
// to the server and to keep state between runs.
//
// # Overview
//
//  1. Client is the API contract: auth, profile, links, persona, chat and
//     the public profile endpoints.
//  2. HTTPClient implements it over JSON/HTTP. It attaches the bearer
//     token from a TokenSource and clears that token when the server
//     answers 401.
//  3. InitDatabase and RunMigrations open the local SQLite store and apply
//     the embedded goose migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable. Non-2xx responses are returned as
// *APIError, which matches common.ErrorValidation, common.ErrorUnauthorized,
// common.ErrorNotFound, common.ErrorUnavailable or common.ErrorInternal under
// errors.Is, depending on the status code.
package client
