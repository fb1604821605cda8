package poscache

// Resolver produces the value stored at a position. ok=false marks the
// position as absent; absent outcomes are memoized like present ones.
type Resolver[V any] func(position int) (V, bool)

type slot[V any] struct {
	value   V
	present bool
}

// Cache memoizes Resolver outcomes per position. The zero Cache is not
// usable; construct with New.
type Cache[V any] struct {
	resolve Resolver[V]
	slots   map[int]slot[V]
}

// New returns an empty cache fronting the given resolver.
func New[V any](resolve Resolver[V]) *Cache[V] {
	return &Cache[V]{
		resolve: resolve,
		slots:   make(map[int]slot[V]),
	}
}

// Get returns the value at position, invoking the resolver on first access
// and the memo afterwards. ok=false reports an absent position (also
// memoized, so the resolver is asked about each position at most once).
// Complexity: O(1) amortized after the first access.
func (c *Cache[V]) Get(position int) (V, bool) {
	if s, hit := c.slots[position]; hit {
		return s.value, s.present
	}
	value, ok := c.resolve(position)
	c.slots[position] = slot[V]{value: value, present: ok}
	return value, ok
}

// Clear evicts every memoized entry. The owner must call this before any
// mutation of the backing configuration takes effect, so stale entries from
// a previous configuration are never observable.
func (c *Cache[V]) Clear() {
	c.slots = make(map[int]slot[V])
}

// Bind swaps the resolver and clears the cache in one step, for use when
// the backing configuration is replaced wholesale.
func (c *Cache[V]) Bind(resolve Resolver[V]) {
	c.resolve = resolve
	c.Clear()
}

// Len returns the number of memoized positions, absent markers included.
func (c *Cache[V]) Len() int {
	return len(c.slots)
}
