package knp

// A PacketDropReason says why an inbound datagram was discarded.
type PacketDropReason uint8

const (
	// PacketDropConnectionClosed: the datagram arrived after close.
	PacketDropConnectionClosed PacketDropReason = iota
	// PacketDropTooShort: the datagram is below the minimum size.
	PacketDropTooShort
	// PacketDropHeaderParseError: the data header failed validation.
	PacketDropHeaderParseError
	// PacketDropUnexpectedState: no handler for this type in this state.
	PacketDropUnexpectedState
	// PacketDropCacheOccupied: a pre-negotiation datagram was already cached.
	PacketDropCacheOccupied
)

func (r PacketDropReason) String() string {
	switch r {
	case PacketDropConnectionClosed:
		return "connection_closed"
	case PacketDropTooShort:
		return "too_short"
	case PacketDropHeaderParseError:
		return "header_parse_error"
	case PacketDropUnexpectedState:
		return "unexpected_state"
	case PacketDropCacheOccupied:
		return "cache_occupied"
	default:
		return "unknown"
	}
}

// A Tracer observes connection events. All fields are optional.
// Callbacks must not block; they run on the connection's hot paths.
type Tracer struct {
	SentPacket      func(packetType PacketType, size int)
	ReceivedPacket  func(packetType PacketType, size int)
	DroppedPacket   func(reason PacketDropReason, size int)
	StateChanged    func(state ConnectionState)
	NegotiationDone func(success bool, negotiatedMTU uint16)
}

func (t *Tracer) tracePacketSent(packetType PacketType, size int) {
	if t != nil && t.SentPacket != nil {
		t.SentPacket(packetType, size)
	}
}

func (t *Tracer) tracePacketReceived(packetType PacketType, size int) {
	if t != nil && t.ReceivedPacket != nil {
		t.ReceivedPacket(packetType, size)
	}
}

func (t *Tracer) tracePacketDropped(reason PacketDropReason, size int) {
	if t != nil && t.DroppedPacket != nil {
		t.DroppedPacket(reason, size)
	}
}

func (t *Tracer) traceStateChanged(state ConnectionState) {
	if t != nil && t.StateChanged != nil {
		t.StateChanged(state)
	}
}

func (t *Tracer) traceNegotiationDone(success bool, negotiatedMTU uint16) {
	if t != nil && t.NegotiationDone != nil {
		t.NegotiationDone(success, negotiatedMTU)
	}
}
