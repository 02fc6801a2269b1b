package derive

import "github.com/puzpuzpuz/xsync/v3"

// SeenSet records the derivation strings already scheduled for expansion during one run.
// It is safe for concurrent use.
type SeenSet struct {
	strs *xsync.MapOf[string, struct{}]
}

// NewSeenSet returns an empty set.
func NewSeenSet() *SeenSet {
	return &SeenSet{strs: xsync.NewMapOf[string, struct{}]()}
}

// Add inserts str if absent and reports whether this call inserted it.
// Concurrent callers adding the same string get true exactly once.
func (set *SeenSet) Add(str string) bool {
	_, loaded := set.strs.LoadOrStore(str, struct{}{})
	return !loaded
}

// Contains reports whether str has been added.
func (set *SeenSet) Contains(str string) bool {
	_, ok := set.strs.Load(str)
	return ok
}

// Len returns the number of strings in the set.
func (set *SeenSet) Len() int {
	return set.strs.Size()
}
