package sntp

import (
	"errors"
	"net"
	"time"
)

var ErrNoResponse = errors.New("server did not respond")

// QueryResult is the outcome of the best exchange of a query: the fully
// decoded reply header, the computed clock offset and round-trip delay in
// milliseconds, and the destination timestamp of the reply.
type QueryResult struct {
	Header *Header
	Offset float64
	Delay  float64
	Dst    time.Time
}

// Client runs SNTP exchanges against a single server. Each exchange is the
// strict sequence build -> round trip -> decode -> validate -> compute; a
// query repeats the whole sequence per message and keeps the minimum-delay
// sample. Progress receives one signal per completed attempt.
type Client struct {
	host    string
	port    string
	timeout time.Duration

	Progress chan any
}

func NewClient(host, port string, timeout time.Duration) *Client {
	return &Client{
		host:     host,
		port:     port,
		timeout:  timeout,
		Progress: make(chan any),
	}
}

// Query exchanges `messages` packets with the named server and returns the
// minimum-delay sample. Network failures on individual exchanges are retried
// by virtue of the remaining messages; protocol failures (a reply that
// decodes but does not validate, or fails the offset sanity checks) are
// terminal. If no exchange yields a reply at all, the result is
// ErrNoResponse.
func (c *Client) Query(address string, messages int) (*QueryResult, error) {
	localAddr, err := net.ResolveUDPAddr("udp", net.JoinHostPort(c.host, c.port))
	if err != nil {
		return nil, err
	}
	addr, err := resolveServer(address)
	if err != nil {
		return nil, err
	}
	transport := &Transport{LocalAddr: localAddr, Timeout: c.timeout}

	var best *QueryResult
	for i := 0; i < messages; i++ {
		result, err := c.exchange(transport, addr)
		c.signalProgress()
		if err != nil {
			var netErr net.Error
			if errors.As(err, &netErr) {
				info("(Query) exchange failed:", err)
				continue
			}
			return nil, err
		}
		if best == nil || result.Delay < best.Delay {
			best = result
		}
	}

	if best == nil {
		return nil, ErrNoResponse
	}
	return best, nil
}

func (c *Client) exchange(transport *Transport, addr *net.UDPAddr) (*QueryResult, error) {
	request := BuildRequest(time.Now())

	response, dst, err := transport.RoundTrip(addr, request)
	if err != nil {
		return nil, err
	}

	header, err := DecodeHeader(response, addr.IP)
	if err != nil {
		return nil, err
	}
	if err := Validate(header); err != nil {
		return nil, err
	}

	offset, err := SystemClockOffset(header.Org, header.Rec, header.Xmt, dst)
	if err != nil {
		return nil, err
	}
	delay := RoundTripDelay(header.Org, header.Rec, header.Xmt, dst)

	return &QueryResult{
		Header: header,
		Offset: offset,
		Delay:  delay,
		Dst:    dst,
	}, nil
}

func (c *Client) signalProgress() {
	select {
	case c.Progress <- 0:
	default:
	}
}

// resolveServer accepts a bare host (the NTP port is implied) or an explicit
// host:port.
func resolveServer(address string) (*net.UDPAddr, error) {
	if _, _, err := net.SplitHostPort(address); err == nil {
		return net.ResolveUDPAddr("udp", address)
	}
	return net.ResolveUDPAddr("udp", net.JoinHostPort(address, Port))
}
