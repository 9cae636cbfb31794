// Package persist carries the authentication slice of the application state
// across process restarts. Only the signed-in user and their token are
// persisted; article state always starts empty.
package persist

import (
	"context"

	"conduit-cli/internal/models"
)

// SchemaVersion is bumped whenever the persisted shape changes. A stored
// state with a different version is discarded on load, which simply means
// the user signs in again.
const SchemaVersion = 1

// State is the persisted slice of application state.
type State struct {
	Version int          `json:"version"`
	User    *models.User `json:"user,omitempty"`
	Token   string       `json:"token,omitempty"`
}

// Persister loads and saves the persisted state.
//
// Load returns (nil, nil) when nothing usable is stored. Save replaces the
// stored state wholesale.
type Persister interface {
	Load(ctx context.Context) (*State, error)
	Save(ctx context.Context, state *State) error
	Close() error
}

// Noop discards saves and loads nothing. Used by tests and ephemeral runs.
type Noop struct{}

func (Noop) Load(ctx context.Context) (*State, error)     { return nil, nil }
func (Noop) Save(ctx context.Context, state *State) error { return nil }
func (Noop) Close() error                                 { return nil }
