package sntp

import (
	"net"
	"time"
)

const DefaultTimeout = 5 * time.Second

// Replies from servers doing authentication carry a key identifier and
// message digest after the 48-octet header; accept them, decode ignores the
// tail.
const maxPacketLength = PacketLength + 20

// Transport performs one datagram round trip. The destination timestamp (T4)
// is stamped here, the moment the reply lands, because it is not part of the
// wire packet.
type Transport struct {
	LocalAddr *net.UDPAddr
	Timeout   time.Duration
}

func (t *Transport) RoundTrip(addr *net.UDPAddr, request []byte) (response []byte, dst time.Time, err error) {
	conn, err := net.DialUDP("udp", t.LocalAddr, addr)
	if err != nil {
		return nil, time.Time{}, err
	}
	defer conn.Close()

	timeout := t.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}
	if err := conn.SetDeadline(time.Now().Add(timeout)); err != nil {
		return nil, time.Time{}, err
	}

	n, err := conn.Write(request)
	if err != nil {
		return nil, time.Time{}, err
	}
	debug("(Request) Bytes written:", n)

	buffer := make([]byte, maxPacketLength)
	n, err = conn.Read(buffer)
	if err != nil {
		return nil, time.Time{}, err
	}
	dst = time.Now()
	debug("(Reply) Bytes read:", n)

	return buffer[:n], dst, nil
}
