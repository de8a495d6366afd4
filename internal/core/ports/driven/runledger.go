package driven

import (
	"context"

	"github.com/aruiz-labs/nominas-cli/internal/core/domain"
)

// RunLedger keeps a local, append-only trace of what happened to each
// file in a run. Files left "stored but not recorded" by a destination
// database failure stay visible here for manual reconciliation.
type RunLedger interface {
	Record(ctx context.Context, e domain.RunEntry) error
	Close() error
}
