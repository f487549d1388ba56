package knp

import (
	"context"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"github.com/ShiftyTR/KcpNatProxy/internal/monotime"
	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
	"github.com/ShiftyTR/KcpNatProxy/internal/utils"
	"github.com/ShiftyTR/KcpNatProxy/internal/wire"
)

// resetSendTimeout bounds the reset datagram sent by CloseWithReset.
const resetSendTimeout = 2 * time.Second

var connCounter atomic.Uint64

// A Connection is a logical network connection over an unreliable datagram
// transport.
//
// Lock order: state lock, then negotiation lock, then registry lock.
// No lock is held across a subscriber callback or a blocking send.
type Connection struct {
	conn          sendConn
	ownsTransport bool

	config *Config
	logger utils.Logger

	// stateMx guards the state, the notify-on-change decision, the
	// keep-alive handle and the application registration.
	stateMx   sync.Mutex
	state     ConnectionState
	keepAlive KeepAliveHandler
	appReg    ApplicationRegistration

	nextLocalSerial atomic.Uint32
	mtu             atomic.Uint32
	lastActive      atomic.Int64 // monotime.Time

	statsMx          sync.Mutex
	nextRemoteSerial uint32
	packetsReceived  uint32

	negotiationMx sync.Mutex
	negotiator    Negotiator
	cache         negotiationPacketCache

	transportClosed atomic.Bool
	resetReceived   atomic.Bool
	resetSent       atomic.Bool
	disposed        atomic.Bool

	errHandler atomic.Pointer[func(error) bool]

	callbacks callbackRegistry
}

func newConnection(conn sendConn, ownsTransport bool, reg ApplicationRegistration, config *Config) *Connection {
	c := &Connection{
		conn:          conn,
		ownsTransport: ownsTransport,
		config:        config,
		logger:        utils.DefaultLogger.WithPrefix(fmt.Sprintf("conn %d", connCounter.Add(1))),
		appReg:        reg,
	}
	c.mtu.Store(uint32(config.MTU))
	c.callbacks.logger = c.logger
	conn.SetErrorHandler(c.handleTransportError)
	return c
}

// NewConnection wraps a socket bound to a single remote into a Connection.
// The connection does not own the socket; the caller reads from it and feeds
// inbound datagrams to HandlePacket.
func NewConnection(sock EndpointSocket, config *Config) (*Connection, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	conf := populateConfig(config)
	return newConnection(newEndpointSendConn(sock, utils.DefaultLogger), false, nil, conf), nil
}

// NewSharedConnection builds a Connection on a socket shared between
// connections. reg, if non-nil, is the connection's listing inside the
// sharing demultiplexer; it is released when the connection reaches a
// terminal state. The demultiplexer feeds inbound datagrams to HandlePacket.
func NewSharedConnection(w SharedWriter, remote net.Addr, reg ApplicationRegistration, config *Config) (*Connection, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	conf := populateConfig(config)
	return newConnection(newSharedSendConn(w, remote, utils.DefaultLogger), false, reg, conf), nil
}

// State returns the connection's current state.
func (c *Connection) State() ConnectionState {
	c.stateMx.Lock()
	defer c.stateMx.Unlock()
	return c.state
}

// MTU is the maximum datagram size of the connection. Negotiation may
// replace the configured value.
func (c *Connection) MTU() uint16 { return uint16(c.mtu.Load()) }

// MSS is the maximum payload of a single data datagram.
func (c *Connection) MSS() uint16 { return c.MTU() - protocol.PreBufferSize }

// RemoteAddr returns the address of the peer.
func (c *Connection) RemoteAddr() net.Addr { return c.conn.RemoteAddr() }

// checkAndChange transitions expected -> next, failing if the connection is
// in any other state. Subscribers are notified after the state lock is
// released.
func (c *Connection) checkAndChange(expected, next ConnectionState) error {
	c.stateMx.Lock()
	if c.state != expected {
		cur := c.state
		c.stateMx.Unlock()
		return &StateError{Current: cur, Expected: expected}
	}
	c.state = next
	c.stateMx.Unlock()
	c.notifyStateChanged(next)
	return nil
}

// changeTo transitions to next unconditionally. Nothing happens if the
// connection already is in that state.
func (c *Connection) changeTo(next ConnectionState) {
	c.stateMx.Lock()
	if c.state == next {
		c.stateMx.Unlock()
		return
	}
	c.state = next
	c.stateMx.Unlock()
	c.notifyStateChanged(next)
}

func (c *Connection) notifyStateChanged(state ConnectionState) {
	c.logger.Debugf("state changed to %s", state)
	c.config.Tracer.traceStateChanged(state)
	c.callbacks.notifyStateChanged(c)
}

func (c *Connection) setLastActive(t monotime.Time) { c.lastActive.Store(int64(t)) }

func (c *Connection) loadNegotiator() Negotiator {
	c.negotiationMx.Lock()
	defer c.negotiationMx.Unlock()
	return c.negotiator
}

func (c *Connection) loadKeepAlive() KeepAliveHandler {
	c.stateMx.Lock()
	defer c.stateMx.Unlock()
	return c.keepAlive
}

// HandlePacket dispatches one inbound datagram. It is called from the
// transport's inbound goroutine; the datagram is only read for the duration
// of the call. It blocks only to deliver a data payload to subscribers, and
// returns an error only when the context is cancelled mid-delivery.
func (c *Connection) HandlePacket(ctx context.Context, data []byte) error {
	if len(data) == 0 {
		return nil
	}
	if wire.IsReset(data) {
		c.config.Tracer.tracePacketReceived(PacketTypeReset, len(data))
		c.handleReset()
		return nil
	}
	if c.disposed.Load() || c.transportClosed.Load() {
		c.config.Tracer.tracePacketDropped(PacketDropConnectionClosed, len(data))
		return nil
	}
	if len(data) < protocol.MinDatagramSize {
		c.config.Tracer.tracePacketDropped(PacketDropTooShort, len(data))
		return nil
	}

	var (
		serial     protocol.Serial
		haveSerial bool
		payload    []byte
	)
	switch c.State() {
	case StateNone:
		if !c.cache.store(data) {
			c.config.Tracer.tracePacketDropped(PacketDropCacheOccupied, len(data))
			return nil
		}
		c.config.Tracer.tracePacketReceived(PacketType(data[0]), len(data))
		return nil
	case StateConnecting:
		n := c.loadNegotiator()
		if n == nil {
			c.config.Tracer.tracePacketDropped(PacketDropUnexpectedState, len(data))
			return nil
		}
		var meaningful bool
		if PacketType(data[0]) == PacketTypeNegotiation {
			c.config.Tracer.tracePacketReceived(PacketTypeNegotiation, len(data))
			meaningful = n.InputPacket(data)
		} else {
			meaningful = n.NotifyRemoteProgressing()
		}
		if meaningful {
			c.setLastActive(monotime.Now())
		}
		return nil
	case StateConnected:
		switch PacketType(data[0]) {
		case PacketTypeKeepAlive:
			c.config.Tracer.tracePacketReceived(PacketTypeKeepAlive, len(data))
			if ka := c.loadKeepAlive(); ka != nil && ka.ProcessKeepAlivePacket(data) {
				c.setLastActive(monotime.Now())
			}
			return nil
		case PacketTypeData:
			s, p, err := wire.ParseDataHeader(data)
			if err != nil {
				c.config.Tracer.tracePacketDropped(PacketDropHeaderParseError, len(data))
				return nil
			}
			serial, payload, haveSerial = s, p, true
		default:
			c.config.Tracer.tracePacketDropped(PacketDropUnexpectedState, len(data))
			return nil
		}
	default:
		c.config.Tracer.tracePacketDropped(PacketDropUnexpectedState, len(data))
		return nil
	}

	if haveSerial {
		c.statsMx.Lock()
		if serial >= c.nextRemoteSerial {
			c.nextRemoteSerial = serial + 1
		}
		c.packetsReceived++
		c.statsMx.Unlock()
		c.config.Tracer.tracePacketReceived(PacketTypeData, len(data))
	}
	return c.callbacks.packetReceived(ctx, payload)
}

// Negotiate attaches the negotiator and runs the handshake. The connection
// must be in StateNone. A datagram that arrived before the call is handed to
// the negotiator. The negotiator reports its outcome both through the return
// value and by calling NotifyNegotiationResult.
func (c *Connection) Negotiate(ctx context.Context, n Negotiator) (bool, error) {
	if c.disposed.Load() {
		return false, ErrConnectionClosed
	}
	if err := c.checkAndChange(StateNone, StateConnecting); err != nil {
		return false, err
	}
	c.negotiationMx.Lock()
	c.negotiator = n
	c.negotiationMx.Unlock()

	cached := c.cache.take()
	var cachedData []byte
	if cached != nil {
		cachedData = cached.Data
		defer cached.Release()
	}
	return n.Negotiate(ctx, cachedData)
}

// SkipNegotiation moves the connection straight to StateConnected without a
// handshake. Any cached pre-negotiation datagram is discarded.
func (c *Connection) SkipNegotiation() error {
	if c.disposed.Load() {
		return ErrConnectionClosed
	}
	if err := c.checkAndChange(StateNone, StateConnecting); err != nil {
		return err
	}
	c.cache.close()
	c.setLastActive(monotime.Now())
	return c.checkAndChange(StateConnecting, StateConnected)
}

// NotifyNegotiationResult is the negotiator's completion upcall.
// negotiatedMTU replaces the connection's MTU when non-zero.
func (c *Connection) NotifyNegotiationResult(success bool, negotiatedMTU uint16) {
	c.negotiationMx.Lock()
	c.negotiator = nil
	c.negotiationMx.Unlock()
	c.cache.close()
	c.config.Tracer.traceNegotiationDone(success, negotiatedMTU)

	if c.State() != StateConnecting {
		return
	}
	if negotiatedMTU != 0 {
		c.mtu.Store(uint32(negotiatedMTU))
	}
	if success {
		c.setLastActive(monotime.Now())
		if err := c.checkAndChange(StateConnecting, StateConnected); err != nil {
			c.logger.Debugf("negotiation finished on a closed connection: %s", err)
		}
		return
	}
	c.logger.Infof("negotiation failed")
	if c.checkAndChange(StateConnecting, StateFailed) == nil {
		c.releaseAppRegistration()
	}
}

// SetupKeepAlive starts the built-in keep-alive loop. The connection must be
// in StateConnected, and a keep-alive handler may only be set up once.
// Zero durations select the configured (or default) values.
func (c *Connection) SetupKeepAlive(interval, expiry time.Duration) error {
	if c.disposed.Load() {
		return ErrConnectionClosed
	}
	if interval == 0 {
		interval = c.config.KeepAliveInterval
	}
	if expiry == 0 {
		expiry = c.config.KeepAliveExpiry
	}

	c.stateMx.Lock()
	if c.state != StateConnected {
		cur := c.state
		c.stateMx.Unlock()
		return &StateError{Current: cur, Expected: StateConnected}
	}
	if c.keepAlive != nil {
		c.stateMx.Unlock()
		return fmt.Errorf("%w: keep-alive already set up", ErrInvalidState)
	}
	ka := newKeepAliveRunner(c, interval, expiry)
	c.keepAlive = ka
	c.stateMx.Unlock()

	go ka.run()
	return nil
}

func (c *Connection) frame(payload []byte) (*packetBuffer, bool) {
	if protocol.DataHeaderSize+len(payload) > protocol.MaxReceiveDatagramSize {
		c.logger.Errorf("payload of %d bytes exceeds the maximum datagram size", len(payload))
		return nil, false
	}
	serial := c.nextLocalSerial.Add(1) - 1
	buf := getPacketBuffer()
	buf.Data = buf.Data[:protocol.DataHeaderSize+len(payload)]
	wire.EncodeDataHeader(buf.Data[:protocol.DataHeaderSize], len(payload), serial)
	copy(buf.Data[protocol.DataHeaderSize:], payload)
	return buf, true
}

// Send frames the payload into a data datagram and queues it. It reports
// whether the datagram was handed to the transport. The payload must stay
// within the MSS; no state is checked, a send after close fails only if the
// transport rejects it.
func (c *Connection) Send(payload []byte) bool {
	buf, ok := c.frame(payload)
	if !ok {
		return false
	}
	size := buf.Len()
	if !c.conn.Queue(buf) {
		return false
	}
	c.config.Tracer.tracePacketSent(PacketTypeData, size)
	return true
}

// SendContext frames the payload and sends it, returning the transport
// error, if any. It fast-fails on a cancelled context.
func (c *Connection) SendContext(ctx context.Context, payload []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	buf, ok := c.frame(payload)
	if !ok {
		return ErrPayloadTooLarge
	}
	size := buf.Len()
	if err := c.conn.QueueAndSend(ctx, buf); err != nil {
		return err
	}
	c.config.Tracer.tracePacketSent(PacketTypeData, size)
	return nil
}

// SendWithPreBuffer sends a datagram whose first 8 bytes are reserved for
// the data header; the payload starts at b[8]. The header is written in
// place, so no copy is made. It fails with ErrShortPreBuffer if b doesn't
// reserve the header space.
func (c *Connection) SendWithPreBuffer(ctx context.Context, b []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(b) < protocol.PreBufferSize {
		return ErrShortPreBuffer
	}
	serial := c.nextLocalSerial.Add(1) - 1
	wire.EncodeDataHeader(b[:protocol.DataHeaderSize], len(b)-protocol.DataHeaderSize, serial)
	if err := c.conn.QueueAndSend(ctx, wrapBuffer(b)); err != nil {
		return err
	}
	c.config.Tracer.tracePacketSent(PacketTypeData, len(b))
	return nil
}

// SendDatagram queues a raw control datagram, e.g. a negotiation or
// keep-alive body composed by a collaborator. The first byte is the packet
// type. It reports whether the datagram was handed to the transport.
func (c *Connection) SendDatagram(datagram []byte) bool {
	if len(datagram) == 0 || len(datagram) > protocol.MaxReceiveDatagramSize {
		return false
	}
	buf := getPacketBuffer()
	buf.Data = buf.Data[:len(datagram)]
	copy(buf.Data, datagram)
	packetType := PacketType(datagram[0])
	if !c.conn.Queue(buf) {
		return false
	}
	c.config.Tracer.tracePacketSent(packetType, len(datagram))
	return true
}

// Register subscribes cb to payload deliveries and state changes. Closing
// the returned registration unsubscribes it.
func (c *Connection) Register(cb ConnectionCallback) *CallbackRegistration {
	return c.callbacks.register(cb)
}

// SetErrorHandler installs the handler that transport errors are routed to.
// The handler reports whether it handled the error; unhandled errors are
// logged, and the connection observes the transport's death through the
// normal close paths.
func (c *Connection) SetErrorHandler(h func(error) bool) {
	if h == nil {
		c.errHandler.Store(nil)
		return
	}
	c.errHandler.Store(&h)
}

func (c *Connection) handleTransportError(err error) bool {
	if h := c.errHandler.Load(); h != nil && (*h)(err) {
		return true
	}
	c.logger.Errorf("transport error: %s", err)
	return false
}

// GatherPacketStatistics returns the next expected remote serial and the
// number of data datagrams received since the last gather. The counter
// resets on every call.
func (c *Connection) GatherPacketStatistics() (nextRemoteSerial uint32, packetsReceived uint32) {
	c.statsMx.Lock()
	defer c.statsMx.Unlock()
	nextRemoteSerial = c.nextRemoteSerial
	packetsReceived = c.packetsReceived
	c.packetsReceived = 0
	return nextRemoteSerial, packetsReceived
}

// TrySetToDead declares the connection dead if nothing refreshed its
// liveness since threshold. It returns true when the connection is dead
// (or otherwise past StateConnected) afterwards.
func (c *Connection) TrySetToDead(threshold time.Time) bool {
	return c.trySetToDead(monotime.FromTime(threshold))
}

func (c *Connection) trySetToDead(threshold monotime.Time) bool {
	switch c.State() {
	case StateFailed, StateDead:
		return true
	}
	lastActive := monotime.Time(c.lastActive.Load())
	if threshold.Sub(lastActive) <= 0 {
		return false
	}
	c.logger.Infof("no activity since %s, declaring the connection dead", lastActive.ToTime())
	c.changeTo(StateDead)
	c.releaseAppRegistration()
	return true
}

func (c *Connection) releaseAppRegistration() {
	c.stateMx.Lock()
	reg := c.appReg
	c.appReg = nil
	c.stateMx.Unlock()
	if reg != nil {
		reg.Release()
	}
}

func (c *Connection) handleReset() {
	c.resetReceived.Store(true)
	c.setTransportClosed()
}

// SetTransportClosed tears the connection down after its transport died.
// No reset is emitted. Idempotent.
func (c *Connection) SetTransportClosed() { c.setTransportClosed() }

func (c *Connection) setTransportClosed() {
	if !c.transportClosed.CompareAndSwap(false, true) {
		return
	}
	c.changeTo(StateDead)
	c.releaseAppRegistration()
	c.cache.close()

	c.negotiationMx.Lock()
	n := c.negotiator
	c.negotiator = nil
	c.negotiationMx.Unlock()
	if n != nil {
		n.NotifyDisposed()
	}

	c.stateMx.Lock()
	ka := c.keepAlive
	c.keepAlive = nil
	c.stateMx.Unlock()
	if ka != nil {
		ka.Close()
	}
}

// setTransportClosedWithReset is the graceful variant: unless the peer reset
// first, it emits a single reset datagram, bounded by an internal 2-second
// deadline, before tearing down.
func (c *Connection) setTransportClosedWithReset() {
	if c.transportClosed.Load() {
		return
	}
	if !c.resetReceived.Load() && c.resetSent.CompareAndSwap(false, true) {
		ctx, cancel := context.WithTimeout(context.Background(), resetSendTimeout)
		buf := getPacketBuffer()
		buf.Data = wire.AppendResetDatagram(buf.Data[:0])
		if err := c.conn.QueueAndSend(ctx, buf); err != nil {
			c.logger.Debugf("sending reset failed: %s", err)
		} else {
			c.config.Tracer.tracePacketSent(PacketTypeReset, 1)
		}
		cancel()
	}
	c.setTransportClosed()
}

// Close tears the connection down without notifying the peer, then releases
// everything it holds. Idempotent.
func (c *Connection) Close() error {
	return c.dispose(false)
}

// CloseWithReset notifies the peer with a reset datagram (bounded by an
// internal 2-second deadline, not by any caller context), then tears the
// connection down like Close. Idempotent.
func (c *Connection) CloseWithReset() error {
	return c.dispose(true)
}

func (c *Connection) dispose(sendReset bool) error {
	if !c.disposed.CompareAndSwap(false, true) {
		return nil
	}
	if sendReset {
		c.setTransportClosedWithReset()
	} else {
		c.setTransportClosed()
	}
	if c.ownsTransport {
		if err := c.conn.Close(); err != nil {
			c.logger.Debugf("closing transport: %s", err)
		}
	}
	c.releaseAppRegistration()
	c.errHandler.Store(nil)
	c.conn.SetErrorHandler(nil)
	c.callbacks.clear()
	return nil
}
