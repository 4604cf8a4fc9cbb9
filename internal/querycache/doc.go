// Package querycache is the client-side query layer: hierarchical cache
// keys, per-query freshness policies, mutation-driven invalidation, and
// optimistic updates, on top of a pluggable byte store.
//
// Staleness is enforced with per-key-path generation counters. A cached
// entry records the generation observed when its fetch started; a key's
// current generation is the sum along its prefix chain, so bumping any
// prefix invalidates the whole subtree ("workouts" covers every
// "workouts:detail:<id>"). A superseded fetch that lands late carries a
// stale observed generation and its install is skipped.
//
// Invalidation marks entries stale without deleting them: reads still
// surface the old value as a stale hint, and the next Fetch reconciles
// against the backend.
package querycache
