package hashmap

import "golang.org/x/exp/constraints"

const (
	// minCapacity is the smallest bucket array ever allocated.
	minCapacity = 8
	// maxLoadPercent bounds non-empty slots — live entries AND tombstones,
	// since both lengthen probe chains — before the table rehashes.
	maxLoadPercent = 60
)

// slotState is the open-addressing state machine: a probe walks through
// occupied and deleted slots and stops at the first empty one.
type slotState uint8

const (
	slotEmpty slotState = iota
	slotOccupied
	slotDeleted
)

// bucket is one slot of the table.
type bucket[K constraints.Integer, V any] struct {
	state slotState
	key   K
	value V
}

// Map is an open-addressed hash table from integer keys to arbitrary
// values. Use New to construct one; the zero value allocates its buckets
// lazily on first Put.
type Map[K constraints.Integer, V any] struct {
	buckets []bucket[K, V]
	count   int // live entries only
	used    int // live entries + tombstones; the probe-termination budget
}

// New returns a map with at least initialCapacity bucket slots (minimum 8,
// rounded up to a power of two so the probe wrap stays a mask).
func New[K constraints.Integer, V any](initialCapacity int) *Map[K, V] {
	capacity := minCapacity
	for capacity < initialCapacity {
		capacity *= 2
	}

	return &Map[K, V]{buckets: make([]bucket[K, V], capacity)}
}

// Len reports the number of live entries. Complexity: O(1).
func (m *Map[K, V]) Len() int {
	return m.count
}

// indexFor hashes key into the current bucket range. Fibonacci hashing
// (multiply by 2^64/φ, take high bits) spreads sequential keys, which
// linear probing is otherwise sensitive to.
func (m *Map[K, V]) indexFor(key K) int {
	const fibonacci64 = 0x9E3779B97F4A7C15

	h := uint64(key) * fibonacci64

	return int(h & uint64(len(m.buckets)-1))
}

// Put stores value under key, replacing any existing value.
// Complexity: O(1) average.
func (m *Map[K, V]) Put(key K, value V) {
	// Rehash before inserting so the probe below always finds a free slot.
	m.ensureCapacity()
	m.insert(key, value)
}

// insert probes from the home slot, remembering the first tombstone so a
// new key can reuse it instead of lengthening the chain.
func (m *Map[K, V]) insert(key K, value V) {
	index := m.indexFor(key)
	firstDeleted := -1
	for {
		b := &m.buckets[index]
		switch b.state {
		case slotOccupied:
			if b.key == key {
				b.value = value

				return
			}
		case slotDeleted:
			if firstDeleted < 0 {
				firstDeleted = index
			}
		case slotEmpty:
			if firstDeleted >= 0 {
				// Reusing a tombstone: the slot is already in used.
				index = firstDeleted
			} else {
				m.used++
			}
			m.buckets[index] = bucket[K, V]{state: slotOccupied, key: key, value: value}
			m.count++

			return
		}
		index = (index + 1) & (len(m.buckets) - 1)
	}
}

// Get returns the value stored under key and whether it exists.
// Complexity: O(1) average.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if b := m.findBucket(key); b != nil {
		return b.value, true
	}
	var zero V

	return zero, false
}

// Contains reports whether key is stored. Complexity: O(1) average.
func (m *Map[K, V]) Contains(key K) bool {
	return m.findBucket(key) != nil
}

// Delete removes key, returning whether it was present. The slot becomes a
// tombstone so probes for other keys keep walking through it.
// Complexity: O(1) average.
func (m *Map[K, V]) Delete(key K) bool {
	if len(m.buckets) == 0 {
		return false
	}
	index := m.indexFor(key)
	start := index
	for {
		b := &m.buckets[index]
		if b.state == slotEmpty {
			// A never-used slot ends the chain: the key does not exist.
			return false
		}
		if b.state == slotOccupied && b.key == key {
			// Clearing key and value drops any references the slot held.
			// The slot stays in used until a rehash purges it.
			*b = bucket[K, V]{state: slotDeleted}
			m.count--

			return true
		}
		index = (index + 1) & (len(m.buckets) - 1)
		if index == start {
			return false
		}
	}
}

// findBucket returns the occupied bucket holding key, or nil.
func (m *Map[K, V]) findBucket(key K) *bucket[K, V] {
	if len(m.buckets) == 0 {
		return nil
	}
	index := m.indexFor(key)
	start := index
	for {
		b := &m.buckets[index]
		if b.state == slotEmpty {
			return nil
		}
		if b.state == slotOccupied && b.key == key {
			return b
		}
		index = (index + 1) & (len(m.buckets) - 1)
		if index == start {
			return nil
		}
	}
}

// ensureCapacity rehashes when one more slot consumption would push the
// load factor — live entries plus tombstones — to maxLoadPercent. Counting
// tombstones is what guarantees insert's probe always finds an empty slot:
// a put/delete cycle consumes slots without raising Len, and only a rehash
// reclaims them. The table doubles only when live entries alone warrant
// it; otherwise it rehashes at the same size, purging tombstones.
func (m *Map[K, V]) ensureCapacity() {
	if len(m.buckets) == 0 {
		m.buckets = make([]bucket[K, V], minCapacity)

		return
	}
	if (m.used+1)*100 < len(m.buckets)*maxLoadPercent {
		return
	}
	capacity := len(m.buckets)
	if (m.count+1)*100 >= capacity*maxLoadPercent {
		capacity *= 2
	}
	old := m.buckets
	m.buckets = make([]bucket[K, V], capacity)
	m.count, m.used = 0, 0
	for i := range old {
		if old[i].state == slotOccupied {
			m.insert(old[i].key, old[i].value)
		}
	}
}
