package service

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// State mirrors the loading and error flags a page shows while its data is fetched.
type State struct {
	Loading bool `json:"loading"`
	Error   bool `json:"error"`
}

// Loader runs the independent fetches of one page concurrently.
type Loader struct {
	mu    sync.RWMutex
	state State
}

func NewLoader() *Loader {
	return &Loader{}
}

func (l *Loader) State() State {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return l.state
}

// Run starts every task and returns once all of them returned, with the first error.
// A failing task does not cancel the others.
func (l *Loader) Run(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	l.set(State{Loading: true})

	var g errgroup.Group

	for _, task := range tasks {
		g.Go(func() error {
			return task(ctx)
		})
	}

	err := g.Wait()

	l.set(State{Loading: false, Error: err != nil})

	if err != nil {
		return &LoadError{State: l.State(), Err: err}
	}

	return nil
}

// LoadError carries the state a loader settled in when one of its tasks failed.
type LoadError struct {
	State State
	Err   error
}

func (e *LoadError) Error() string {
	return e.Err.Error()
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (l *Loader) set(state State) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.state = state
}

// fetch adapts a collection call to a loader task that stores its result in dst.
func fetch[T any](dst *T, call func(ctx context.Context) (T, error)) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		v, err := call(ctx)
		if err != nil {
			return err
		}

		*dst = v

		return nil
	}
}
