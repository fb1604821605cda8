// Package poscache provides a position-addressed, lazily populated cache.
//
// Cache fronts an arbitrary Resolver — a function from an integer position
// to a value — and memoizes every outcome, including "absent" ones, so an
// out-of-range position probed repeatedly never re-invokes the resolver.
// There is no eviction beyond Clear: one configuration of the backing data
// is long-lived and the populated set is bounded by what a viewport actually
// touches, so unbounded growth within a configuration is acceptable.
//
// The contract is single-writer: one owner performs all Clear and Bind
// calls, and resolution is synchronous, so a Get never observes a value
// whose resolution is in progress. Cache is not safe for concurrent use.
package poscache
