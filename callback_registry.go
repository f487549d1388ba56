package knp

import (
	"context"
	"sync"

	"github.com/ShiftyTR/KcpNatProxy/internal/utils"
)

// callbackRegistry fans deliveries out to registered subscribers.
//
// Registrations form an intrusive singly-linked list. The lock guards the
// head/tail pointers and the next links; it is never held while a subscriber
// runs. Delivery walks the list from the head it saw when it started and
// re-reads the next link under the lock after every subscriber, so nodes can
// be added and dropped while a delivery is in flight. A subscriber may drop
// its own registration from inside PacketReceived: the node is unlinked at
// once but keeps its next link, so the delivery in flight continues past it.
type callbackRegistry struct {
	mx     sync.Mutex
	head   *CallbackRegistration
	tail   *CallbackRegistration
	logger utils.Logger
}

// A CallbackRegistration is a handle for a registered ConnectionCallback.
// Closing it stops deliveries to the callback.
type CallbackRegistration struct {
	callback ConnectionCallback

	registry *callbackRegistry
	next     *CallbackRegistration
}

// Close unregisters the callback. It is safe to call from inside the
// callback's own delivery, and safe to call more than once.
func (r *CallbackRegistration) Close() {
	reg := r.registry
	if reg == nil {
		return
	}
	reg.mx.Lock()
	defer reg.mx.Unlock()

	var prev *CallbackRegistration
	for n := reg.head; n != nil; n = n.next {
		if n != r {
			prev = n
			continue
		}
		if prev == nil {
			reg.head = n.next
		} else {
			prev.next = n.next
		}
		if reg.tail == n {
			reg.tail = prev
		}
		// n.next stays intact so that an in-flight delivery holding n
		// can continue past it
		return
	}
}

func (r *callbackRegistry) register(cb ConnectionCallback) *CallbackRegistration {
	reg := &CallbackRegistration{callback: cb, registry: r}
	r.mx.Lock()
	defer r.mx.Unlock()
	if r.tail == nil {
		r.head = reg
		r.tail = reg
		return reg
	}
	r.tail.next = reg
	r.tail = reg
	return reg
}

// clear drops all registrations. In-flight deliveries finish the snapshot
// they are walking.
func (r *callbackRegistry) clear() {
	r.mx.Lock()
	r.head = nil
	r.tail = nil
	r.mx.Unlock()
}

// packetReceived delivers a payload to every subscriber in registration
// order. Subscriber errors and panics are swallowed so that the remaining
// subscribers still see the payload. Cancellation is checked between
// subscribers and fails the delivery.
func (r *callbackRegistry) packetReceived(ctx context.Context, payload []byte) error {
	r.mx.Lock()
	n := r.head
	r.mx.Unlock()
	for n != nil {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.deliver(ctx, n.callback, payload)
		r.mx.Lock()
		n = n.next
		r.mx.Unlock()
	}
	return nil
}

func (r *callbackRegistry) deliver(ctx context.Context, cb ConnectionCallback, payload []byte) {
	defer func() {
		if p := recover(); p != nil {
			r.logger.Errorf("connection callback panicked: %v", p)
		}
	}()
	if err := cb.PacketReceived(ctx, payload); err != nil {
		r.logger.Debugf("connection callback failed: %s", err)
	}
}

// notifyStateChanged tells every subscriber about a state transition.
// Fire and forget: panics are swallowed.
func (r *callbackRegistry) notifyStateChanged(conn *Connection) {
	r.mx.Lock()
	n := r.head
	r.mx.Unlock()
	for n != nil {
		func() {
			defer func() {
				if p := recover(); p != nil {
					r.logger.Errorf("state change callback panicked: %v", p)
				}
			}()
			n.callback.StateChanged(conn)
		}()
		r.mx.Lock()
		n = n.next
		r.mx.Unlock()
	}
}
