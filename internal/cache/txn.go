package cache

// txn is a snapshot transaction over a slice-backed mirror: begin copies the
// collection, the caller applies its optimistic guess in place, and the
// network outcome either stands (commit is implicit, the guess or the
// authoritative record is already in place) or rollback restores the
// pre-mutation snapshot in full.
type txn[T any] struct {
	target   *[]T
	snapshot []T
}

func begin[T any](target *[]T) txn[T] {
	snapshot := make([]T, len(*target))
	copy(snapshot, *target)
	return txn[T]{target: target, snapshot: snapshot}
}

func (t txn[T]) rollback() {
	*t.target = t.snapshot
}
