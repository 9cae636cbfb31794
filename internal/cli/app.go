package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"

	"conduit-cli/internal/api"
	"conduit-cli/internal/config"
	"conduit-cli/internal/logging"
	"conduit-cli/internal/persist"
	"conduit-cli/internal/store"
)

// App wires the configuration, the API client, the persistence bridge and
// the state container together for one CLI invocation. The auth slice is
// rehydrated from disk in NewApp and written back by the stores on every
// mutation, which is what makes one-shot commands feel like a session.
type App struct {
	config    *config.Config
	store     *store.Store
	persister persist.Persister
	log       logging.Logger
	reader    *bufio.Reader
	out       io.Writer
}

func NewApp(cfg *config.Config, log logging.Logger) (*App, error) {
	persister, err := persist.NewBadgerPersister(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("error opening local state: %w", err)
	}

	client := api.NewHTTPClient(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})
	st := store.New(context.Background(), client, persister, log)

	return &App{
		config:    cfg,
		store:     st,
		persister: persister,
		log:       log,
		reader:    bufio.NewReader(os.Stdin),
		out:       os.Stdout,
	}, nil
}

func (a *App) Close() error {
	return a.persister.Close()
}

// requireAuth is the navigation guard for author-only commands.
func (a *App) requireAuth() error {
	if !a.store.Users.IsAuthenticated() {
		return fmt.Errorf("not signed in; run 'conduit login' first")
	}
	return nil
}

// reportError renders an operation failure for the terminal: validation
// failures list the offending fields, everything else prints as-is.
func (a *App) reportError(err error) {
	var verr *api.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintln(a.out, "The server rejected the request:")
		for field, messages := range verr.Fields {
			for _, msg := range messages {
				fmt.Fprintf(a.out, "  %s %s\n", field, msg)
			}
		}
		return
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
}
