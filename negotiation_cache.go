package knp

import (
	"sync"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
)

// negotiationPacketCache holds at most one datagram that arrived before a
// negotiator was attached. The cached buffer is handed to the negotiator on
// attach; once caching is disabled it never re-enables.
type negotiationPacketCache struct {
	mx       sync.Mutex
	packet   *packetBuffer
	disabled bool
}

// store copies data into the cache slot. It reports whether the datagram was
// cached; a second datagram is dropped, not replaced.
func (c *negotiationPacketCache) store(data []byte) bool {
	c.mx.Lock()
	defer c.mx.Unlock()
	if c.disabled || c.packet != nil {
		return false
	}
	if len(data) > protocol.MaxReceiveDatagramSize {
		return false
	}
	buf := getPacketBuffer()
	buf.Data = buf.Data[:len(data)]
	copy(buf.Data, data)
	c.packet = buf
	return true
}

// take disables caching and extracts the cached buffer, if any.
// The caller owns the returned buffer.
func (c *negotiationPacketCache) take() *packetBuffer {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.disabled = true
	buf := c.packet
	c.packet = nil
	return buf
}

// close disables caching and releases any residual buffer.
func (c *negotiationPacketCache) close() {
	c.mx.Lock()
	defer c.mx.Unlock()
	c.disabled = true
	if c.packet != nil {
		c.packet.Release()
		c.packet = nil
	}
}
