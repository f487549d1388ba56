package knp

import (
	"context"
	"net"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
	"github.com/ShiftyTR/KcpNatProxy/internal/utils"
)

// Dial wraps a socket that is already connected to the remote into a
// Connection and starts reading from it. The connection owns the socket and
// closes it when the connection is closed. A read error on the socket tears
// the connection down.
func Dial(sock ReadableEndpointSocket, config *Config) (*Connection, error) {
	if err := validateConfig(config); err != nil {
		return nil, err
	}
	conf := populateConfig(config)
	c := newConnection(newEndpointSendConn(sock, utils.DefaultLogger), true, nil, conf)
	go c.readLoop(sock)
	return c, nil
}

// DialUDP connects a UDP socket to addr and wraps it like Dial.
func DialUDP(addr string, config *Config) (*Connection, error) {
	raddr, err := net.ResolveUDPAddr("udp", addr)
	if err != nil {
		return nil, err
	}
	sock, err := net.DialUDP("udp", nil, raddr)
	if err != nil {
		return nil, err
	}
	return Dial(sock, config)
}

func (c *Connection) readLoop(sock ReadableEndpointSocket) {
	for {
		buf := getPacketBuffer()
		n, err := sock.Read(buf.Data[:protocol.MaxReceiveDatagramSize])
		if err != nil {
			buf.Release()
			if !c.disposed.Load() {
				c.handleTransportError(err)
				c.setTransportClosed()
			}
			return
		}
		if err := c.HandlePacket(context.Background(), buf.Data[:n]); err != nil {
			c.logger.Debugf("payload delivery aborted: %s", err)
		}
		buf.Release()
	}
}
