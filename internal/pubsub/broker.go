package pubsub

import (
	"context"
	"sync"
	"time"
)

const defaultQueueLen = 32

// Broker delivers events to every live subscription. A subscriber whose queue
// is full misses the event; the publisher never waits.
type Broker[T any] struct {
	mu       sync.RWMutex
	subs     map[chan Event[T]]struct{}
	closed   bool
	queueLen int
}

// NewBroker creates a broker with the default per-subscriber queue length.
func NewBroker[T any]() *Broker[T] {
	return NewBrokerWithQueue[T](defaultQueueLen)
}

// NewBrokerWithQueue creates a broker whose subscribers buffer up to n events.
func NewBrokerWithQueue[T any](n int) *Broker[T] {
	if n < 1 {
		n = 1
	}
	return &Broker[T]{
		subs:     make(map[chan Event[T]]struct{}),
		queueLen: n,
	}
}

// Subscribe registers a new subscription. The returned channel is closed when
// ctx is done or the broker is closed, whichever happens first.
func (b *Broker[T]) Subscribe(ctx context.Context) <-chan Event[T] {
	b.mu.Lock()
	defer b.mu.Unlock()

	ch := make(chan Event[T], b.queueLen)
	if b.closed {
		close(ch)
		return ch
	}
	b.subs[ch] = struct{}{}

	go func() {
		<-ctx.Done()
		b.unsubscribe(ch)
	}()
	return ch
}

func (b *Broker[T]) unsubscribe(ch chan Event[T]) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.subs[ch]; !ok {
		return
	}
	delete(b.subs, ch)
	close(ch)
}

// Publish offers the event to every subscriber and reports how many accepted it.
func (b *Broker[T]) Publish(topic Topic, payload T) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.closed {
		return 0
	}

	ev := Event[T]{Topic: topic, Payload: payload, At: time.Now()}
	delivered := 0
	for ch := range b.subs {
		select {
		case ch <- ev:
			delivered++
		default:
		}
	}
	return delivered
}

// Close ends every subscription. Calling it more than once is harmless.
func (b *Broker[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return
	}
	b.closed = true
	for ch := range b.subs {
		close(ch)
	}
	b.subs = map[chan Event[T]]struct{}{}
}

// Subscribers returns the number of live subscriptions.
func (b *Broker[T]) Subscribers() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}
