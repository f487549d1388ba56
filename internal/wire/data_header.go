// Package wire implements the datagram framing of the session layer.
package wire

import (
	"encoding/binary"
	"errors"

	"github.com/ShiftyTR/KcpNatProxy/internal/protocol"
)

// Data header layout (big endian):
//
//	+------+-------+----------+------------------+
//	| 0x03 | 0x00  | length   | serial           |
//	| 1 B  | 1 B   | 2 B      | 4 B              |
//	+------+-------+----------+------------------+
//
// length counts the serial bytes plus the payload, i.e. payload size + 4.

var (
	ErrDatagramTooShort = errors.New("datagram too short for a data header")
	ErrInvalidLength    = errors.New("invalid data header length")
)

// EncodeDataHeader writes the data header for a payload of payloadLen bytes
// into hdr. hdr must be at least protocol.DataHeaderSize bytes long; the
// bytes after the header are left untouched.
func EncodeDataHeader(hdr []byte, payloadLen int, serial protocol.Serial) {
	_ = hdr[protocol.DataHeaderSize-1]
	hdr[0] = byte(protocol.PacketTypeData)
	hdr[1] = 0
	binary.BigEndian.PutUint16(hdr[2:4], uint16(payloadLen+4))
	binary.BigEndian.PutUint32(hdr[4:8], serial)
}

// ParseDataHeader validates a data datagram and returns its serial and the
// payload slice. The payload aliases data.
//
// A datagram is accepted iff it is at least 8 bytes long and its length field
// covers the serial and fits: 4 <= length <= len(data)-4.
func ParseDataHeader(data []byte) (protocol.Serial, []byte, error) {
	if len(data) < protocol.DataHeaderSize {
		return 0, nil, ErrDatagramTooShort
	}
	length := int(binary.BigEndian.Uint16(data[2:4]))
	if length < 4 || len(data)-4 < length {
		return 0, nil, ErrInvalidLength
	}
	serial := binary.BigEndian.Uint32(data[4:8])
	return serial, data[protocol.DataHeaderSize : 4+length], nil
}

// AppendResetDatagram appends the single-byte reset datagram to b.
func AppendResetDatagram(b []byte) []byte {
	return append(b, byte(protocol.PacketTypeReset))
}

// IsReset reports whether data is a reset datagram. Only the first byte is
// inspected; trailing bytes are ignored.
func IsReset(data []byte) bool {
	return len(data) > 0 && protocol.PacketType(data[0]) == protocol.PacketTypeReset
}
