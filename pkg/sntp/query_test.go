package sntp

import (
	"errors"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// startServer runs a loopback SNTP responder for the duration of the test.
// handler receives each request and returns the raw reply, or nil to stay
// silent.
func startServer(t *testing.T, handler func(request []byte) []byte) string {
	t.Helper()

	conn, err := net.ListenPacket("udp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	go func() {
		buffer := make([]byte, maxPacketLength)
		for {
			n, addr, err := conn.ReadFrom(buffer)
			if err != nil {
				return
			}
			reply := handler(buffer[:n])
			if reply == nil {
				continue
			}
			conn.WriteTo(reply, addr)
		}
	}()

	return conn.LocalAddr().String()
}

// serverReply builds a plausible stratum-2 reply, echoing the request's
// transmit timestamp into the originate field.
func serverReply(request []byte) []byte {
	now := time.Now()

	reply := make([]byte, PacketLength)
	reply[0] = 0b00_100_100 // LI=0, VN=4, Mode=4 (server)
	reply[offStratum] = 2
	reply[offPoll] = 6
	reply[offPrecision] = byte(0x100 - 20)
	copy(reply[offRootdelay:], []byte{0x00, 0x00, 0x04, 0x77})
	copy(reply[offRootdisp:], []byte{0x00, 0x00, 0x10, 0x00})
	copy(reply[offRefid:], []byte{127, 0, 0, 1})
	encodeTimestamp(reply[offReftime:], now.Add(-2*time.Second))
	copy(reply[offOrg:], request[offXmt:offXmt+8])
	encodeTimestamp(reply[offRec:], now)
	encodeTimestamp(reply[offXmt:], now)
	return reply
}

func TestQuery(t *testing.T) {
	stubLookup(t, nil, errors.New("no PTR record"))
	address := startServer(t, serverReply)

	client := NewClient("127.0.0.1", "0", time.Second)
	result, err := client.Query(address, 3)
	require.NoError(t, err)

	require.Equal(t, Stratum(2), result.Header.Stratum)
	require.Equal(t, "127.0.0.1", result.Header.Refid)
	require.InDelta(t, 0, result.Offset, 100)
	require.GreaterOrEqual(t, result.Delay, 0.0)
	require.Less(t, result.Delay, 1000.0)
	require.False(t, result.Dst.IsZero())
}

func TestQueryKissOfDeath(t *testing.T) {
	address := startServer(t, func(request []byte) []byte {
		reply := serverReply(request)
		reply[offStratum] = 0
		copy(reply[offRefid:], "RATE")
		return reply
	})

	client := NewClient("127.0.0.1", "0", time.Second)
	result, err := client.Query(address, 1)
	require.NoError(t, err)
	require.Equal(t, KISSOFDEATH, result.Header.Stratum.Kind())
	require.Equal(t, "RATE", result.Header.Refid)
}

func TestQueryNotSynchronized(t *testing.T) {
	stubLookup(t, nil, errors.New("no PTR record"))
	address := startServer(t, func(request []byte) []byte {
		reply := serverReply(request)
		reply[0] |= byte(NOSYNC) << 6
		return reply
	})

	client := NewClient("127.0.0.1", "0", time.Second)
	_, err := client.Query(address, 3)
	require.ErrorIs(t, err, ErrClockNotSynchronized)
}

func TestQueryNoResponse(t *testing.T) {
	address := startServer(t, func(request []byte) []byte {
		return nil
	})

	client := NewClient("127.0.0.1", "0", 100*time.Millisecond)
	_, err := client.Query(address, 2)
	require.ErrorIs(t, err, ErrNoResponse)
}

func TestResolveServer(t *testing.T) {
	addr, err := resolveServer("127.0.0.1")
	require.NoError(t, err)
	require.Equal(t, 123, addr.Port)

	addr, err = resolveServer("127.0.0.1:9999")
	require.NoError(t, err)
	require.Equal(t, 9999, addr.Port)
}
