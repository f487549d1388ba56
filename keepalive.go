package knp

import (
	"sync"
	"time"

	"github.com/ShiftyTR/KcpNatProxy/internal/monotime"
	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
	"github.com/ShiftyTR/KcpNatProxy/internal/utils"
)

// keepAliveRunner is the built-in KeepAliveHandler. Its timer loop emits a
// one-byte keep-alive datagram every interval and runs dead detection with
// the configured expiry. It stops itself once the connection leaves
// StateConnected.
type keepAliveRunner struct {
	conn     *Connection
	interval time.Duration
	expiry   time.Duration

	timer *utils.Timer

	closeOnce sync.Once
	closed    chan struct{}
}

var _ KeepAliveHandler = &keepAliveRunner{}

func newKeepAliveRunner(conn *Connection, interval, expiry time.Duration) *keepAliveRunner {
	return &keepAliveRunner{
		conn:     conn,
		interval: interval,
		expiry:   expiry,
		timer:    utils.NewTimer(),
		closed:   make(chan struct{}),
	}
}

func (r *keepAliveRunner) run() {
	defer r.timer.Stop()
	for {
		r.timer.Reset(monotime.Now().Add(r.interval))
		select {
		case <-r.closed:
			return
		case <-r.timer.Chan():
			r.timer.SetRead()
		}
		if r.conn.trySetToDead(monotime.Now().Add(-r.expiry)) {
			return
		}
		r.conn.SendDatagram([]byte{byte(protocol.PacketTypeKeepAlive)})
	}
}

// ProcessKeepAlivePacket treats every keep-alive datagram as proof of life.
func (r *keepAliveRunner) ProcessKeepAlivePacket(data []byte) bool {
	return len(data) > 0
}

func (r *keepAliveRunner) Close() {
	r.closeOnce.Do(func() { close(r.closed) })
}
