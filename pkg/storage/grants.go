package storage

import "context"

// GrantStore defines the privileged claim used to apply a completed payment exactly once.
// It should only be exposed to the component responsible for granting.
type GrantStore interface {
	// ClaimGrant atomically sets granted=true on a completed, ungranted transaction.
	// It returns true only for the single caller whose update won.
	ClaimGrant(ctx context.Context, reference string) (bool, error)

	// ReleaseGrant reverts a claim so the grant can be retried after a downstream failure.
	ReleaseGrant(ctx context.Context, reference string) error
}
