package protocol

import (
	"fmt"
	"time"
)

// PacketType is the first byte of every datagram exchanged on a connection.
type PacketType byte

const (
	// PacketTypeNegotiation carries an opaque negotiator payload.
	PacketTypeNegotiation PacketType = 0x01
	// PacketTypeKeepAlive carries an opaque keep-alive payload.
	PacketTypeKeepAlive PacketType = 0x02
	// PacketTypeData carries an application payload behind the data header.
	PacketTypeData PacketType = 0x03
	// PacketTypeReset is a single-byte teardown signal.
	PacketTypeReset PacketType = 0xff
)

func (t PacketType) String() string {
	switch t {
	case PacketTypeNegotiation:
		return "Negotiation"
	case PacketTypeKeepAlive:
		return "KeepAlive"
	case PacketTypeData:
		return "Data"
	case PacketTypeReset:
		return "Reset"
	default:
		return fmt.Sprintf("unknown packet type: %#x", byte(t))
	}
}

// A Serial is a per-direction datagram counter. It wraps.
type Serial = uint32

const (
	// DefaultMTU is the maximum datagram size assumed until negotiation
	// replaces it.
	DefaultMTU uint16 = 1400
	// PreBufferSize is the space reserved in front of every data payload
	// for the data header.
	PreBufferSize = 8
	// DataHeaderSize is the size of the wire header of a data datagram.
	DataHeaderSize = 8
	// MinDatagramSize is the smallest datagram the dispatcher considers
	// once past the reset check.
	MinDatagramSize = 4
	// MaxReceiveDatagramSize bounds the buffers rented for inbound
	// datagrams. Larger datagrams are truncated by the socket layer and
	// dropped by header validation.
	MaxReceiveDatagramSize = 2048
)

const (
	// DefaultKeepAliveInterval is how often keep-alive datagrams are sent
	// when no interval is configured.
	DefaultKeepAliveInterval = 5 * time.Second
	// DefaultKeepAliveExpiry is the silence threshold after which a
	// connection is declared dead, when no expiry is configured.
	DefaultKeepAliveExpiry = 30 * time.Second
)

