package querycache

import (
	"math"
	"time"
)

// Immutable marks data that never changes once written (finished sessions,
// history). Entries under it only refresh through invalidation.
const Immutable = time.Duration(math.MaxInt64)

// Policy is the freshness contract for one (domain, variant) pair.
type Policy struct {
	// StaleAfter is how long a cached value counts as fresh.
	StaleAfter time.Duration
	// PollEvery, when non-zero, is the re-observation interval for data
	// expected to change underneath us (the active session).
	PollEvery time.Duration
	// RetryTransient allows the fetch layer to retry transient failures.
	// Never applies to mutations; those are not fetched through here.
	RetryTransient bool
	// MaxRetries bounds the retries when RetryTransient is set.
	MaxRetries uint64
	// RetryInterval is the initial backoff interval between retries.
	RetryInterval time.Duration
}

// Policies keyed by "domain:variant"; a bare domain entry covers the
// list key, which is the domain collection key itself. Chosen by
// volatility: plans and catalogues change rarely, an in-progress session
// changes constantly, finished data never does.
var policies = map[string]Policy{
	"workouts":          {StaleAfter: 5 * time.Minute, RetryTransient: true, MaxRetries: 3},
	"workouts:detail":   {StaleAfter: 5 * time.Minute, RetryTransient: true, MaxRetries: 3},
	"workouts:history":  {StaleAfter: Immutable, RetryTransient: true, MaxRetries: 3},
	"sessions:active":   {StaleAfter: 10 * time.Second, PollEvery: 15 * time.Second, RetryTransient: true, MaxRetries: 2},
	"sessions:detail":   {StaleAfter: 30 * time.Second, RetryTransient: true, MaxRetries: 2},
	"exercises":         {StaleAfter: 10 * time.Minute, RetryTransient: true, MaxRetries: 3},
	"exercises:history": {StaleAfter: Immutable, RetryTransient: true, MaxRetries: 3},
	"cycles":            {StaleAfter: 5 * time.Minute, RetryTransient: true, MaxRetries: 3},
	"cycles:detail":     {StaleAfter: 5 * time.Minute, RetryTransient: true, MaxRetries: 3},
}

var defaultPolicy = Policy{StaleAfter: time.Minute, RetryTransient: true, MaxRetries: 2}

// PolicyFor looks a policy up by the key's (domain, variant) pair,
// falling back to the domain's own entry for list keys. Pure lookup,
// no mutation.
func PolicyFor(key Key) Policy {
	if len(key) >= 2 {
		if p, ok := policies[key[0]+":"+key[1]]; ok {
			return p
		}
	}
	if len(key) >= 1 {
		if p, ok := policies[key[0]]; ok {
			return p
		}
	}
	return defaultPolicy
}
