package knp

import (
	"context"
	"net"
	"sync/atomic"

	"github.com/ShiftyTR/KcpNatProxy/internal/utils"
)

// A sendConn routes outbound datagrams to the remote and surfaces transport
// errors. It adapts either a socket already bound to the remote, or a shared
// socket plus an explicit remote address, into one interface.
//
// Both queueing methods adopt the buffer: it is released before they return.
type sendConn interface {
	// Queue writes the datagram without blocking on anything but the
	// socket itself. It reports whether the datagram was handed to the
	// transport; errors go to the error handler.
	Queue(b *packetBuffer) bool
	// QueueAndSend writes the datagram and returns the transport error,
	// if any. It fast-fails on a cancelled context.
	QueueAndSend(ctx context.Context, b *packetBuffer) error
	// SetErrorHandler installs the handler transport errors are routed
	// to. The handler reports whether it handled the error.
	SetErrorHandler(h func(error) bool)
	RemoteAddr() net.Addr
	Close() error
}

type errorHandlerHolder struct {
	handler atomic.Pointer[func(error) bool]
	logger  utils.Logger
}

func (h *errorHandlerHolder) SetErrorHandler(handler func(error) bool) {
	if handler == nil {
		h.handler.Store(nil)
		return
	}
	h.handler.Store(&handler)
}

func (h *errorHandlerHolder) handleError(err error) {
	if handler := h.handler.Load(); handler != nil && (*handler)(err) {
		return
	}
	h.logger.Errorf("unhandled transport error: %s", err)
}

// endpointSendConn wraps a socket that is already bound to the remote.
type endpointSendConn struct {
	errorHandlerHolder
	sock EndpointSocket
}

var _ sendConn = &endpointSendConn{}

func newEndpointSendConn(sock EndpointSocket, logger utils.Logger) *endpointSendConn {
	c := &endpointSendConn{sock: sock}
	c.logger = logger
	return c
}

func (c *endpointSendConn) Queue(b *packetBuffer) bool {
	defer b.Release()
	if _, err := c.sock.Write(b.Data); err != nil {
		c.handleError(err)
		return false
	}
	return true
}

func (c *endpointSendConn) QueueAndSend(ctx context.Context, b *packetBuffer) error {
	defer b.Release()
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.sock.Write(b.Data)
	return err
}

func (c *endpointSendConn) RemoteAddr() net.Addr { return c.sock.RemoteAddr() }

func (c *endpointSendConn) Close() error { return c.sock.Close() }

// sharedSendConn writes on a socket shared between connections, addressing
// every datagram to the connection's remote. Closing it does not close the
// shared socket.
type sharedSendConn struct {
	errorHandlerHolder
	w      SharedWriter
	remote net.Addr
}

var _ sendConn = &sharedSendConn{}

func newSharedSendConn(w SharedWriter, remote net.Addr, logger utils.Logger) *sharedSendConn {
	c := &sharedSendConn{w: w, remote: remote}
	c.logger = logger
	return c
}

func (c *sharedSendConn) Queue(b *packetBuffer) bool {
	defer b.Release()
	if _, err := c.w.WriteTo(b.Data, c.remote); err != nil {
		c.handleError(err)
		return false
	}
	return true
}

func (c *sharedSendConn) QueueAndSend(ctx context.Context, b *packetBuffer) error {
	defer b.Release()
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := c.w.WriteTo(b.Data, c.remote)
	return err
}

func (c *sharedSendConn) RemoteAddr() net.Addr { return c.remote }

func (c *sharedSendConn) Close() error { return nil }
