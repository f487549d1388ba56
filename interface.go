// Package knp implements a connection-oriented session layer on top of an
// unreliable datagram transport. A Connection wraps a raw endpoint into a
// logical network connection with a small control protocol: negotiation,
// keep-alive, data carriage with monotonically increasing serial numbers,
// liveness tracking and an explicit reset signal.
//
// Retransmission, ordering and flow control are left to a reliability layer
// running on top of the delivered payloads.
package knp

import (
	"context"
	"net"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
)

// PacketType is the first byte of every datagram on a connection.
type PacketType = protocol.PacketType

const (
	PacketTypeNegotiation = protocol.PacketTypeNegotiation
	PacketTypeKeepAlive   = protocol.PacketTypeKeepAlive
	PacketTypeData        = protocol.PacketTypeData
	PacketTypeReset       = protocol.PacketTypeReset
)

// ConnectionState is the lifecycle state of a Connection.
type ConnectionState uint8

const (
	// StateNone is the initial state. Negotiation has not started yet.
	StateNone ConnectionState = iota
	// StateConnecting means a negotiation is in progress.
	StateConnecting
	// StateConnected means the connection carries data.
	StateConnected
	// StateFailed means negotiation failed. Terminal.
	StateFailed
	// StateDead means the connection was torn down. Terminal.
	StateDead
)

func (s ConnectionState) String() string {
	switch s {
	case StateNone:
		return "None"
	case StateConnecting:
		return "Connecting"
	case StateConnected:
		return "Connected"
	case StateFailed:
		return "Failed"
	case StateDead:
		return "Dead"
	default:
		return "unknown"
	}
}

// A ConnectionCallback receives payloads and state changes from a Connection.
// PacketReceived is invoked on the goroutine that calls HandlePacket and may
// block. StateChanged is invoked on whichever goroutine performs the
// transition and must not block.
type ConnectionCallback interface {
	// PacketReceived is called with the payload of every accepted data
	// datagram. The payload is only valid for the duration of the call.
	PacketReceived(ctx context.Context, payload []byte) error
	// StateChanged is called after every state transition.
	StateChanged(conn *Connection)
}

// A Negotiator performs the handshake over negotiation datagrams.
// It reports the outcome by calling Connection.NotifyNegotiationResult.
type Negotiator interface {
	// InputPacket processes an inbound negotiation datagram. It reports
	// whether the datagram advanced the handshake.
	InputPacket(data []byte) bool
	// NotifyRemoteProgressing is called for non-negotiation datagrams that
	// arrive while the handshake runs. It reports whether the datagram
	// counts as proof of life.
	NotifyRemoteProgressing() bool
	// Negotiate runs the handshake. cachedPacket, if non-nil, is a
	// negotiation datagram that arrived before the negotiator was
	// attached; it is only valid for the duration of the call.
	Negotiate(ctx context.Context, cachedPacket []byte) (bool, error)
	// NotifyDisposed is called when the connection is torn down while the
	// negotiator is still attached.
	NotifyDisposed()
}

// A KeepAliveHandler consumes inbound keep-alive datagrams.
type KeepAliveHandler interface {
	// ProcessKeepAlivePacket reports whether the datagram counts as proof
	// of life.
	ProcessKeepAlivePacket(data []byte) bool
	// Close stops the handler.
	Close()
}

// An ApplicationRegistration is the connection's listing inside a shared
// transport demultiplexer. The connection releases it when it reaches a
// terminal state or is closed.
type ApplicationRegistration interface {
	Release()
}

// An EndpointSocket is a datagram socket bound to a single remote.
// A connected *net.UDPConn satisfies it.
type EndpointSocket interface {
	Write(b []byte) (int, error)
	RemoteAddr() net.Addr
	Close() error
}

// A ReadableEndpointSocket is an EndpointSocket the connection reads itself.
type ReadableEndpointSocket interface {
	EndpointSocket
	Read(b []byte) (int, error)
}

// A SharedWriter writes datagrams on a socket shared between connections.
// A net.PacketConn satisfies it.
type SharedWriter interface {
	WriteTo(b []byte, addr net.Addr) (int, error)
}
