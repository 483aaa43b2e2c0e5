package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func receive[T any](t *testing.T, ch <-chan Event[T]) Event[T] {
	t.Helper()
	select {
	case ev, ok := <-ch:
		require.True(t, ok, "channel closed unexpectedly")
		return ev
	case <-time.After(200 * time.Millisecond):
		require.FailNow(t, "timeout waiting for event")
	}
	return Event[T]{}
}

func TestBroker_DeliversToSubscriber(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ch := b.Subscribe(context.Background())
	n := b.Publish(TopicDirChanged, "/tmp")

	require.Equal(t, 1, n)
	ev := receive(t, ch)
	require.Equal(t, TopicDirChanged, ev.Topic)
	require.Equal(t, "/tmp", ev.Payload)
	require.False(t, ev.At.IsZero())
}

func TestBroker_FansOut(t *testing.T) {
	b := NewBroker[int]()
	defer b.Close()

	chans := []<-chan Event[int]{
		b.Subscribe(context.Background()),
		b.Subscribe(context.Background()),
	}
	require.Equal(t, 2, b.Subscribers())
	require.Equal(t, 2, b.Publish(TopicLog, 7))

	for _, ch := range chans {
		require.Equal(t, 7, receive(t, ch).Payload)
	}
}

func TestBroker_UnsubscribesOnCancel(t *testing.T) {
	b := NewBroker[string]()
	defer b.Close()

	ctx, cancel := context.WithCancel(context.Background())
	ch := b.Subscribe(ctx)
	cancel()

	require.Eventually(t, func() bool { return b.Subscribers() == 0 }, time.Second, 5*time.Millisecond)
	_, ok := <-ch
	require.False(t, ok)
}

func TestBroker_FullQueueDropsInsteadOfBlocking(t *testing.T) {
	b := NewBrokerWithQueue[int](1)
	defer b.Close()

	ch := b.Subscribe(context.Background())
	require.Equal(t, 1, b.Publish(TopicLog, 1))
	require.Equal(t, 0, b.Publish(TopicLog, 2))

	require.Equal(t, 1, receive(t, ch).Payload)
}

func TestBroker_CloseIsIdempotent(t *testing.T) {
	b := NewBroker[string]()
	ch := b.Subscribe(context.Background())

	b.Close()
	b.Close()

	_, ok := <-ch
	require.False(t, ok)
	require.Zero(t, b.Publish(TopicLog, "late"))

	late := b.Subscribe(context.Background())
	_, ok = <-late
	require.False(t, ok, "subscribing after close yields a closed channel")
}
