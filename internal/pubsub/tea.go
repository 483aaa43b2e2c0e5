package pubsub

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
)

// WaitCmd blocks until the next event arrives and delivers it as a tea.Msg.
// It yields nil once ctx is done or ch is closed.
func WaitCmd[T any](ctx context.Context, ch <-chan Event[T]) tea.Cmd {
	return func() tea.Msg {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-ch:
			if !ok {
				return nil
			}
			return ev
		}
	}
}

// Listener keeps one subscription alive across Bubble Tea update cycles.
// Re-issue Next after handling each event to keep receiving.
type Listener[T any] struct {
	ctx context.Context
	ch  <-chan Event[T]
}

// NewListener subscribes to broker for the lifetime of ctx.
func NewListener[T any](ctx context.Context, broker Subscriber[T]) *Listener[T] {
	return &Listener[T]{ctx: ctx, ch: broker.Subscribe(ctx)}
}

// Next waits for the following event.
func (l *Listener[T]) Next() tea.Cmd {
	return WaitCmd(l.ctx, l.ch)
}
