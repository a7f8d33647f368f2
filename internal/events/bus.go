// Package events provides a small, typed, in-process event bus used to
// orchestrate the edit-render loop: mutations request renders, the debouncer
// coalesces them, the daemon consumes the results. It is intentionally not
// durable; the durable mutation journal lives in internal/eventstore.
package events

import (
	"context"
	"reflect"
	"sync"
	"sync/atomic"

	sferrors "git.home.luguber.info/inful/siteforge/internal/errors"
)

// Bus delivers typed events to typed subscribers.
//
// Design goals:
//   - Typed subscriptions (via generics)
//   - Bounded buffering/backpressure (Publish blocks until delivered or ctx canceled)
//   - Clean shutdown (Close closes all subscription channels)
type Bus struct {
	mu        sync.RWMutex
	subs      map[reflect.Type]map[uint64]*subscriber
	nextID    atomic.Uint64
	isClosed  atomic.Bool
	closeOnce sync.Once
}

type subscriber struct {
	send  func(ctx context.Context, evt any) error
	close func()
}

func NewBus() *Bus {
	return &Bus{subs: make(map[reflect.Type]map[uint64]*subscriber)}
}

// Subscribe registers a subscription for events of type T. The returned
// function unsubscribes and closes the channel; it is safe to call twice.
func Subscribe[T any](b *Bus, buffer int) (<-chan T, func()) {
	eventType := reflect.TypeFor[T]()
	ch := make(chan T, buffer)

	if b.isClosed.Load() {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID.Add(1)

	var closeOnce sync.Once
	closeChannel := func() {
		closeOnce.Do(func() { close(ch) })
	}

	var unsubOnce sync.Once
	unsubscribe := func() {
		unsubOnce.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if typeSubs, ok := b.subs[eventType]; ok {
				delete(typeSubs, id)
				if len(typeSubs) == 0 {
					delete(b.subs, eventType)
				}
			}
			closeChannel()
		})
	}

	sub := &subscriber{
		send: func(ctx context.Context, evt any) error {
			v, ok := evt.(T)
			if !ok {
				return sferrors.New(sferrors.CategoryInternal, sferrors.SeverityError, "event type mismatch").
					WithContext("expected", eventType.String()).
					WithContext("actual", reflect.TypeOf(evt).String())
			}
			select {
			case ch <- v:
				return nil
			case <-ctx.Done():
				return sferrors.Wrap(ctx.Err(), sferrors.CategoryDaemon, sferrors.SeverityWarning, "event publish canceled").
					WithContext("event_type", eventType.String())
			}
		},
		close: closeChannel,
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.isClosed.Load() {
		closeChannel()
		return ch, func() {}
	}
	if b.subs[eventType] == nil {
		b.subs[eventType] = make(map[uint64]*subscriber)
	}
	b.subs[eventType][id] = sub
	return ch, unsubscribe
}

// Publish delivers an event to all matching subscribers. It blocks until
// each subscriber has accepted the event or the context is canceled.
func (b *Bus) Publish(ctx context.Context, evt any) error {
	if evt == nil {
		return sferrors.New(sferrors.CategoryInternal, sferrors.SeverityError, "event cannot be nil")
	}
	if b.isClosed.Load() {
		return sferrors.New(sferrors.CategoryDaemon, sferrors.SeverityWarning, "event bus is closed")
	}

	evtType := reflect.TypeOf(evt)

	b.mu.RLock()
	var targets []*subscriber
	for subType, typeSubs := range b.subs {
		match := subType == evtType
		if !match && subType.Kind() == reflect.Interface {
			match = evtType.Implements(subType)
		}
		if !match {
			continue
		}
		for _, s := range typeSubs {
			targets = append(targets, s)
		}
	}
	b.mu.RUnlock()

	for _, s := range targets {
		if err := s.send(ctx, evt); err != nil {
			return err
		}
	}
	return nil
}

// Close closes the bus and all subscription channels.
func (b *Bus) Close() {
	b.closeOnce.Do(func() {
		b.isClosed.Store(true)

		b.mu.Lock()
		var toClose []*subscriber
		for _, typeSubs := range b.subs {
			for _, s := range typeSubs {
				toClose = append(toClose, s)
			}
		}
		b.subs = make(map[reflect.Type]map[uint64]*subscriber)
		b.mu.Unlock()

		for _, s := range toClose {
			s.close()
		}
	})
}
