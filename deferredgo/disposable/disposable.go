package disposable

// Disposable releases a previously acquired registration or resource.
type Disposable interface {
	Dispose()
}

type DisposableImp struct {
	dispose func()
}

func NewDisposable(dispose func()) *DisposableImp {
	return &DisposableImp{dispose: dispose}
}

func (d *DisposableImp) Dispose() {
	d.dispose()
}
