package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds every context handed out by Context.
const DefaultTimeout = 10 * time.Second

// Context возвращает context с DefaultTimeout, отменяемый при завершении теста.
func Context(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), DefaultTimeout)
	t.Cleanup(cancel)
	return ctx
}

// CanceledContext returns a context that is already canceled.
func CanceledContext(t testing.TB) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	return ctx
}
