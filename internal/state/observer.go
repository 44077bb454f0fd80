package state

// Observer receives a fresh snapshot after every committed change and every
// error-slot update. Implementations are registered with Store.Bind and must
// be comparable values (pointers in practice): registration identity is Go
// interface equality.
type Observer[S any] interface {
	OnStateChanged(snapshot S)
}

type observerFunc[S any] struct {
	fn func(S)
}

func (o *observerFunc[S]) OnStateChanged(snapshot S) {
	o.fn(snapshot)
}

// ObserverFunc adapts fn into an Observer. Each call returns a distinct
// identity; keep the returned value to unbind the same observer later.
func ObserverFunc[S any](fn func(S)) Observer[S] {
	return &observerFunc[S]{fn: fn}
}
