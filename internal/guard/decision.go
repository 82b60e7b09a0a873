// Package guard decides whether a proposed mutation is consistent with the
// data already stored. Checks only read; writes happen after an Allowed decision.
package guard

import (
	"context"
	"sync"

	"go.uber.org/multierr"

	pkgerrors "github.com/angelmondragon/storefront-api/pkg/errors"
)

type Verdict int

const (
	Allowed Verdict = iota
	Conflict
	MissingReference
	Blocked
)

func (v Verdict) String() string {
	switch v {
	case Allowed:
		return "allowed"
	case Conflict:
		return "conflict"
	case MissingReference:
		return "missing_reference"
	case Blocked:
		return "blocked"
	}
	return "unknown"
}

// Decision is the outcome of one or more checks. Reason is caller-facing.
// Which and ID are set for MissingReference.
type Decision struct {
	Verdict Verdict
	Reason  string
	Which   string
	ID      int64
}

func Allow() Decision { return Decision{Verdict: Allowed} }

func Conflicting(reason string) Decision {
	return Decision{Verdict: Conflict, Reason: reason}
}

func Missing(which string, id int64, reason string) Decision {
	return Decision{Verdict: MissingReference, Reason: reason, Which: which, ID: id}
}

func Block(reason string) Decision {
	return Decision{Verdict: Blocked, Reason: reason}
}

func (d Decision) Allowed() bool { return d.Verdict == Allowed }

// Err converts a refusal into its typed error, or nil when allowed.
func (d Decision) Err() error {
	switch d.Verdict {
	case Conflict:
		return pkgerrors.New(pkgerrors.CodeConflict, d.Reason)
	case MissingReference:
		return pkgerrors.New(pkgerrors.CodeReference, d.Reason)
	case Blocked:
		return pkgerrors.New(pkgerrors.CodeBlocked, d.Reason)
	}
	return nil
}

// Check is a single read-only invariant probe.
type Check func(ctx context.Context) (Decision, error)

// All runs checks concurrently and waits for every one of them. Storage
// errors win over refusals and are combined. Otherwise the first refusal in
// argument order is returned so the outcome does not depend on scheduling.
func All(ctx context.Context, checks ...Check) (Decision, error) {
	if len(checks) == 1 {
		return checks[0](ctx)
	}

	decisions := make([]Decision, len(checks))
	errs := make([]error, len(checks))

	var wg sync.WaitGroup
	for i, check := range checks {
		wg.Add(1)
		go func(i int, check Check) {
			defer wg.Done()
			decisions[i], errs[i] = check(ctx)
		}(i, check)
	}
	wg.Wait()

	if err := multierr.Combine(errs...); err != nil {
		return Decision{}, err
	}
	for _, d := range decisions {
		if !d.Allowed() {
			return d, nil
		}
	}
	return Allow(), nil
}

// Enforce runs All and folds the decision into a single error: nil means the
// mutation may proceed.
func Enforce(ctx context.Context, checks ...Check) error {
	d, err := All(ctx, checks...)
	if err != nil {
		return err
	}
	return d.Err()
}

// Exists builds a MissingReference check from an existence probe.
func Exists(which string, id int64, reason string, probe func(context.Context, int64) (bool, error)) Check {
	return func(ctx context.Context) (Decision, error) {
		ok, err := probe(ctx, id)
		if err != nil {
			return Decision{}, err
		}
		if !ok {
			return Missing(which, id, reason), nil
		}
		return Allow(), nil
	}
}

// Absent builds a Conflict check that refuses when probe finds a match.
func Absent(reason string, probe func(context.Context) (bool, error)) Check {
	return func(ctx context.Context) (Decision, error) {
		found, err := probe(ctx)
		if err != nil {
			return Decision{}, err
		}
		if found {
			return Conflicting(reason), nil
		}
		return Allow(), nil
	}
}
