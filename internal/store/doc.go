// Package store keeps local application state in sync with the remote
// blogging API.
//
// Two stores exist per application: UserStore (identity and bearer token)
// and ArticleStore (the paginated list plus the focused article). Each owns
// an operation tracker that derives a loading/resolved/rejected status and
// the last error uniformly for every asynchronous operation, so new
// operations pick up status tracking without extra wiring.
//
// Stores never panic or throw past their boundary: every operation returns
// either nil or a typed error (api.TransportError / api.ValidationError),
// and the same outcome is readable afterwards through Status()/Err().
//
// Operations are not mutually excluded. Two overlapping fetches resolve in
// whatever order the network decides and the stores reflect whichever
// completion lands last; the mutex only makes individual state mutations
// atomic.
package store
