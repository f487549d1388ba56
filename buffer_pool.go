package knp

import (
	"sync"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
)

type packetBuffer struct {
	Data []byte

	// pooled is false for buffers wrapping caller-owned memory.
	pooled bool
	// refCount counts how many owners still hold the buffer.
	// It doesn't support concurrent use.
	refCount int
}

// Split increases the refCount.
// It must be called when the buffer is handed to a second owner, e.g. when a
// datagram is both cached and delivered.
func (b *packetBuffer) Split() {
	b.refCount++
}

// Release decreases the refCount.
// It should be called when processing the buffer is finished.
// When the refCount reaches 0, a pooled buffer is put back into the pool.
func (b *packetBuffer) Release() {
	b.refCount--
	if b.refCount < 0 {
		panic("negative packetBuffer refCount")
	}
	if b.refCount > 0 {
		return
	}
	if !b.pooled {
		return
	}
	if cap(b.Data) != protocol.MaxReceiveDatagramSize {
		panic("releasing a pooled packetBuffer of wrong size")
	}
	bufferPool.Put(b)
}

func (b *packetBuffer) Len() int { return len(b.Data) }

var bufferPool sync.Pool

// getPacketBuffer rents a buffer from the pool. The buffer is returned with
// its full capacity; callers reslice it to the datagram they build or read.
func getPacketBuffer() *packetBuffer {
	buf := bufferPool.Get().(*packetBuffer)
	buf.refCount = 1
	buf.Data = buf.Data[:protocol.MaxReceiveDatagramSize]
	return buf
}

// wrapBuffer adopts caller-owned memory into a packetBuffer. Releasing it
// never touches the pool.
func wrapBuffer(data []byte) *packetBuffer {
	return &packetBuffer{Data: data, refCount: 1}
}

func init() {
	bufferPool.New = func() interface{} {
		return &packetBuffer{
			Data:   make([]byte, 0, protocol.MaxReceiveDatagramSize),
			pooled: true,
		}
	}
}
