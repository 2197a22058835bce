package view

import "context"

// Navigator requests a transition to another logical address.
type Navigator interface {
	Navigate(ctx context.Context, address string) error
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(ctx context.Context, address string) error

// Navigate calls f.
func (f NavigatorFunc) Navigate(ctx context.Context, address string) error {
	if f == nil {
		return nil
	}
	return f(ctx, address)
}

// Invalidator tells the host that a view's state changed and it must render again.
type Invalidator interface {
	Invalidate()
}

// InvalidatorFunc adapts a function to Invalidator.
type InvalidatorFunc func()

// Invalidate calls f.
func (f InvalidatorFunc) Invalidate() {
	if f != nil {
		f()
	}
}

// Logger receives diagnostic lines from views. *log.Logger satisfies it.
type Logger interface {
	Printf(format string, args ...any)
}

type discardLogger struct{}

func (discardLogger) Printf(string, ...any) {}
