package reel

import "context"

// Future Завершение анимации одного барабана
type Future struct {
	done chan struct{}
	err  error
}

func newFuture() *Future {
	return &Future{done: make(chan struct{})}
}

func (f *Future) resolve(err error) {
	f.err = err
	close(f.done)
}

// Done Закрывается, когда барабан остановился
func (f *Future) Done() <-chan struct{} {
	return f.done
}

// Err Результат анимации, читать после Done
func (f *Future) Err() error {
	return f.err
}

func (f *Future) Wait(ctx context.Context) error {
	select {
	case <-f.done:
		return f.err
	case <-ctx.Done():
		return ctx.Err()
	}
}
