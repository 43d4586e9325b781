package requestlog

import (
	"context"
	"sync"
)

// Notifier fans out values to any number of subscribers.
// Delivery is best effort: slow subscribers miss values instead of blocking Notify.
type Notifier[T any] struct {
	mu          sync.RWMutex
	subscribers map[<-chan T]chan T
	bufferSize  int
	queue       chan T
	done        chan struct{}
	closeOnce   sync.Once
	closed      bool
}

// NotifierOptions configures a Notifier.
type NotifierOptions struct {
	// SubscriberBufferSize is the buffer size of every subscriber channel.
	SubscriberBufferSize int
	// QueueSize is the buffer size of the internal dispatch queue.
	QueueSize int
}

// DefaultNotifierOptions returns the options used by NewNotifier.
func DefaultNotifierOptions() NotifierOptions {
	return NotifierOptions{
		SubscriberBufferSize: 64,
		QueueSize:            256,
	}
}

// NewNotifier creates a notifier with default options.
func NewNotifier[T any]() *Notifier[T] {
	return NewNotifierWithOptions[T](DefaultNotifierOptions())
}

// NewNotifierWithOptions creates a notifier and starts its dispatch goroutine.
// Call Close to stop it.
func NewNotifierWithOptions[T any](options NotifierOptions) *Notifier[T] {
	n := &Notifier[T]{
		subscribers: make(map[<-chan T]chan T),
		bufferSize:  options.SubscriberBufferSize,
		queue:       make(chan T, options.QueueSize),
		done:        make(chan struct{}),
	}

	go n.dispatch()

	return n
}

// Subscribe returns a channel receiving every value notified after the call.
// The subscription ends (and the channel is closed) when ctx is done.
func (n *Notifier[T]) Subscribe(ctx context.Context) <-chan T {
	n.mu.Lock()
	if n.closed {
		n.mu.Unlock()
		ch := make(chan T)
		close(ch)
		return ch
	}
	ch := make(chan T, n.bufferSize)
	n.subscribers[ch] = ch
	n.mu.Unlock()

	go func() {
		select {
		case <-ctx.Done():
			n.Unsubscribe(ch)
		case <-n.done:
		}
	}()

	return ch
}

// Unsubscribe ends a subscription and closes its channel.
func (n *Notifier[T]) Unsubscribe(ch <-chan T) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if sub, ok := n.subscribers[ch]; ok {
		delete(n.subscribers, ch)
		close(sub)
	}
}

// Notify queues a value for delivery. It never blocks; values are dropped
// when the queue is full or the notifier is closed.
func (n *Notifier[T]) Notify(value T) {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.closed {
		return
	}

	select {
	case n.queue <- value:
	default:
	}
}

// Close stops dispatching and closes all subscriber channels.
func (n *Notifier[T]) Close() {
	n.closeOnce.Do(func() {
		n.mu.Lock()
		n.closed = true
		close(n.queue)
		n.mu.Unlock()

		<-n.done
	})
}

func (n *Notifier[T]) dispatch() {
	defer func() {
		n.mu.Lock()
		for key, sub := range n.subscribers {
			delete(n.subscribers, key)
			close(sub)
		}
		n.mu.Unlock()
		close(n.done)
	}()

	for value := range n.queue {
		n.mu.RLock()
		for _, sub := range n.subscribers {
			select {
			case sub <- value:
			default:
			}
		}
		n.mu.RUnlock()
	}
}
