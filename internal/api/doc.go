// Package api is the HTTP adapter for the remote blogging backend.
//
// The backend's contract is fixed: JSON envelopes ({"user": ...},
// {"article": ...}, {"articles": ..., "articlesCount": ...}), bearer auth
// via "Authorization: Token <token>", and field-scoped validation failures
// reported as {"errors": {...}} with status 422.
//
// Failures are a tagged union consumed with errors.As:
//
//   - *TransportError: network failure, undecodable body, or any status
//     outside 2xx/422.
//   - *ValidationError: a decodable body carrying a non-empty "errors" map.
//
// The adapter itself never retries, caches, or times out.
package api
