package repokit

// Binder builds a domain repo bound to a specific Queryer. Modules hold a
// Binder and bind at call time, so one repo definition serves the pool and
// any transaction it is handed
type Binder[T any] interface {
	Bind(Queryer) T
}

// BindFunc adapts a plain function to Binder
type BindFunc[T any] func(Queryer) T

func (f BindFunc[T]) Bind(q Queryer) T { return f(q) }
