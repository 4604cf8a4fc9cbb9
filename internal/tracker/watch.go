package tracker

import (
	"context"
	"time"

	"github.com/vportela/forja/internal/models"
	"github.com/vportela/forja/internal/querycache"
)

// WatchActiveSession re-observes the active session on its policy's poll
// interval until the context ends or observe returns an error. Each tick
// is an ordinary observation: the cache decides whether the backend is
// actually hit.
func (t *Tracker) WatchActiveSession(ctx context.Context, observe func(*models.Session) error) error {
	interval := querycache.PolicyFor(querycache.Sessions.Active()).PollEvery
	if interval <= 0 {
		interval = 15 * time.Second
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		s, err := t.ActiveSession(ctx)
		if err != nil {
			return err
		}
		if err := observe(s); err != nil {
			return err
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}
	}
}
