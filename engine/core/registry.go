package core

// Registry is an insertion-ordered list of listeners. It is not safe for
// concurrent use; owners guard it with their own lock.
type Registry[T comparable] struct{ list []T }

func (r *Registry[T]) Add(l T) { r.list = append(r.list, l) }

// Remove drops the first occurrence of l and reports whether it was found.
func (r *Registry[T]) Remove(l T) bool {
	for i, x := range r.list {
		if x == l {
			r.list = append(r.list[:i:i], r.list[i+1:]...)
			return true
		}
	}
	return false
}

func (r *Registry[T]) Len() int { return len(r.list) }

// Snapshot returns a copy that stays valid while the registry changes.
func (r *Registry[T]) Snapshot() []T {
	if len(r.list) == 0 {
		return nil
	}
	out := make([]T, len(r.list))
	copy(out, r.list)
	return out
}

func (r *Registry[T]) ForEach(f func(T)) {
	for _, l := range r.list {
		f(l)
	}
}
