package service

import "context"

// FaultReporter receives errors outside documented failure modes
// (persistence/crypto faults). Implementations forward them to an external
// fault channel with full detail; callers only ever see an opaque
// unexpected-error signal. Injected rather than global so tests can
// substitute a capturing implementation.
type FaultReporter interface {
	Report(ctx context.Context, err error)
}
