// Package pubsub fans typed events out to any number of subscribers without
// ever blocking the publisher.
package pubsub

import (
	"context"
	"time"
)

// Topic names the kind of event carried by a broker.
type Topic string

const (
	// TopicLog carries formatted log lines.
	TopicLog Topic = "log"
	// TopicDirChanged carries the path of a watched directory whose entries changed.
	TopicDirChanged Topic = "dir-changed"
)

// Event is a published payload stamped with its topic and publish time.
type Event[T any] struct {
	Topic   Topic
	Payload T
	At      time.Time
}

// Subscriber hands out event channels that close when ctx is done.
type Subscriber[T any] interface {
	Subscribe(ctx context.Context) <-chan Event[T]
}

// Publisher accepts events for fan-out.
type Publisher[T any] interface {
	Publish(topic Topic, payload T) int
}
