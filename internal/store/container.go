package store

import (
	"context"

	"conduit-cli/internal/api"
	"conduit-cli/internal/logging"
	"conduit-cli/internal/persist"
)

// Store is the explicitly constructed application-state container. There are
// no package-level singletons: whoever needs state receives this by
// reference.
type Store struct {
	Users    *UserStore
	Articles *ArticleStore
}

// New builds both stores and rehydrates the user slice from the persister
// before returning, so callers always see post-restore state. A load failure
// is logged and treated as an anonymous start rather than a boot error.
func New(ctx context.Context, client api.Client, persister persist.Persister, log logging.Logger) *Store {
	users := NewUserStore(client, persister, log)

	state, err := persister.Load(ctx)
	if err != nil {
		log.Warn(ctx, "failed to load persisted state", "error", err)
	} else {
		users.rehydrate(state)
	}

	return &Store{
		Users:    users,
		Articles: NewArticleStore(client, users, log),
	}
}
