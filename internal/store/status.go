package store

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"conduit-cli/internal/logging"
)

// Status is the lifecycle of the most recent operation in a store.
type Status string

const (
	StatusIdle     Status = "idle"
	StatusLoading  Status = "loading"
	StatusResolved Status = "resolved"
	StatusRejected Status = "rejected"
)

// tracker applies the shared status rule to every operation of one store
// namespace: starting an operation sets loading and clears the previous
// error; completion sets resolved or rejected. The error is cleared strictly
// on the next operation start, never on resolve, so a rejected operation's
// error stays visible until something new begins.
type tracker struct {
	mu     sync.Mutex
	log    logging.Logger
	status Status
	err    error
}

func newTracker(namespace string, log logging.Logger) *tracker {
	return &tracker{log: log.With("ns", namespace), status: StatusIdle}
}

// run wraps one asynchronous operation. All store operations go through
// here; none set status or error themselves.
func (t *tracker) run(ctx context.Context, op string, fn func(context.Context) error) error {
	opID := uuid.NewString()

	t.mu.Lock()
	t.status = StatusLoading
	t.err = nil
	t.mu.Unlock()
	t.log.Debug(ctx, "operation started", "op", op, "op_id", opID)

	if err := fn(ctx); err != nil {
		t.mu.Lock()
		t.status = StatusRejected
		t.err = err
		t.mu.Unlock()
		t.log.Warn(ctx, "operation rejected", "op", op, "op_id", opID, "error", err)
		return err
	}

	t.mu.Lock()
	t.status = StatusResolved
	t.mu.Unlock()
	t.log.Debug(ctx, "operation resolved", "op", op, "op_id", opID)
	return nil
}

func (t *tracker) snapshot() (Status, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.status, t.err
}
