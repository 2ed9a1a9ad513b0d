package sntp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func stubLookup(t *testing.T, names []string, err error) {
	t.Helper()
	orig := lookupAddr
	lookupAddr = func(ctx context.Context, addr string) ([]string, error) {
		return names, err
	}
	t.Cleanup(func() { lookupAddr = orig })
}

func TestBuildRequest(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 45, 123456789, time.UTC)
	request := BuildRequest(now)

	require.Len(t, request, PacketLength)
	require.Equal(t, byte(0b00_100_011), request[0])
	for i := 1; i < offXmt; i++ {
		require.Zero(t, request[i], "octet %d", i)
	}
	require.WithinDuration(t, now, decodeTimestamp(request[offXmt:]), 2*time.Microsecond)
}

func TestTimestampRoundTrip(t *testing.T) {
	instants := []time.Time{
		time.Date(1905, 6, 15, 3, 0, 0, 0, time.UTC),
		time.Date(1950, 1, 1, 0, 0, 0, 500000000, time.UTC),
		time.Date(1999, 12, 31, 23, 59, 59, 999999999, time.UTC),
		time.Date(2004, 5, 24, 23, 13, 44, 875000000, time.UTC),
		time.Date(2024, 2, 29, 12, 0, 0, 62500000, time.UTC),
		time.Date(2035, 12, 31, 0, 0, 0, 1000, time.UTC),
	}

	buffer := make([]byte, 8)
	for _, instant := range instants {
		encodeTimestamp(buffer, instant)
		decoded := decodeTimestamp(buffer)
		require.WithinDuration(t, instant, decoded, 2*time.Microsecond, "instant %v", instant)
	}
}

func TestEncodeTimestampBeforeEpoch(t *testing.T) {
	buffer := make([]byte, 8)
	encodeTimestamp(buffer, time.Date(1899, 1, 1, 0, 0, 0, 0, time.UTC))

	// Clamped to the epoch, not panicked; validation catches it upstream.
	require.True(t, decodeTimestamp(buffer).Equal(ntpEpoch))
}

func TestDecodeHeaderTooShort(t *testing.T) {
	_, err := DecodeHeader(make([]byte, PacketLength-1), nil)
	require.ErrorIs(t, err, ErrMalformedPacket)
}

func TestDecodeHeaderScenario(t *testing.T) {
	stubLookup(t, nil, errors.New("no PTR record"))

	reftime := time.Date(2004, 5, 24, 23, 10, 0, 0, time.UTC)
	xmt := time.Date(2004, 5, 24, 23, 13, 44, 875000000, time.UTC)

	raw := make([]byte, PacketLength)
	raw[0] = 0b00_100_100 // LI=0, VN=4, Mode=4 (server)
	raw[offStratum] = 2
	raw[offPoll] = 3
	raw[offPrecision] = byte(0x100 - 24) // -24 as two's complement
	copy(raw[offRootdelay:], []byte{0x00, 0x04, 0x5D, 0x00})
	copy(raw[offRootdisp:], []byte{0x00, 0x00, 0x10, 0x00})
	copy(raw[offRefid:], []byte{193, 79, 237, 14})
	encodeTimestamp(raw[offReftime:], reftime)
	encodeTimestamp(raw[offOrg:], xmt)
	encodeTimestamp(raw[offRec:], xmt)
	encodeTimestamp(raw[offXmt:], xmt)

	header, err := DecodeHeader(raw, nil)
	require.NoError(t, err)

	require.Equal(t, NOWARNING, header.Leap)
	require.Equal(t, byte(4), header.Version)
	require.Equal(t, SERVER, header.Mode)
	require.Equal(t, Stratum(2), header.Stratum)
	require.Equal(t, SECONDARY, header.Stratum.Kind())
	require.Equal(t, float64(8), header.Poll)
	require.InDelta(t, 59.6046, header.Precision, 0.0001) // 2^-24 s in ns
	require.InDelta(t, 4363.28125, header.Rootdelay, 0.0001)
	require.InDelta(t, 62.5, header.Rootdisp, 0.0001)
	require.Equal(t, "193.79.237.14", header.Refid)
	require.WithinDuration(t, reftime, header.Reftime, 2*time.Microsecond)
	require.WithinDuration(t, xmt, header.Xmt, 2*time.Microsecond)

	require.NoError(t, Validate(header))
}

func TestDecodeHeaderKissOfDeath(t *testing.T) {
	xmt := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	raw := make([]byte, PacketLength)
	raw[0] = 0b00_100_100
	raw[offStratum] = 0
	copy(raw[offRefid:], "RATE")
	encodeTimestamp(raw[offXmt:], xmt)

	header, err := DecodeHeader(raw, nil)
	require.NoError(t, err)
	require.Equal(t, KISSOFDEATH, header.Stratum.Kind())
	require.Equal(t, "RATE", header.Refid)

	// Kiss-of-death is surfaced as data, not rejected.
	require.NoError(t, Validate(header))
}

func TestDecodeHeaderToleratesDigestOctets(t *testing.T) {
	stubLookup(t, nil, errors.New("no PTR record"))

	raw := make([]byte, PacketLength+20) // key identifier + message digest
	raw[0] = 0b00_100_100
	raw[offStratum] = 3
	encodeTimestamp(raw[offXmt:], time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC))

	header, err := DecodeHeader(raw, nil)
	require.NoError(t, err)
	require.Equal(t, Stratum(3), header.Stratum)
}

func TestDecodeHeaderIdempotent(t *testing.T) {
	stubLookup(t, nil, errors.New("no PTR record"))

	raw := make([]byte, PacketLength)
	raw[0] = 0b01_100_100
	raw[offStratum] = 5
	raw[offPoll] = 10
	raw[offPrecision] = byte(0x100 - 18)
	copy(raw[offRefid:], []byte{10, 1, 2, 3})
	encodeTimestamp(raw[offXmt:], time.Date(2024, 3, 1, 12, 0, 0, 250000000, time.UTC))

	first, err := DecodeHeader(raw, nil)
	require.NoError(t, err)
	second, err := DecodeHeader(raw, nil)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestModeFromBits(t *testing.T) {
	require.Equal(t, RESERVED, modeFromBits(0))
	require.Equal(t, SYMMETRIC_ACTIVE, modeFromBits(1))
	require.Equal(t, SYMMETRIC_PASSIVE, modeFromBits(2))
	require.Equal(t, CLIENT, modeFromBits(3))
	require.Equal(t, SERVER, modeFromBits(4))
	require.Equal(t, BROADCAST, modeFromBits(5))
	require.Equal(t, RESERVED, modeFromBits(6))
	require.Equal(t, RESERVED, modeFromBits(7))
}

func TestStratumKind(t *testing.T) {
	require.Equal(t, KISSOFDEATH, Stratum(0).Kind())
	require.Equal(t, PRIMARY, Stratum(1).Kind())
	require.Equal(t, SECONDARY, Stratum(2).Kind())
	require.Equal(t, SECONDARY, Stratum(15).Kind())
	require.Equal(t, RESERVEDSTRATUM, Stratum(16).Kind())
	require.Equal(t, RESERVEDSTRATUM, Stratum(255).Kind())
}
