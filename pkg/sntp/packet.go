package sntp

import (
	"encoding/binary"
	"math"
	"net"
	"time"
)

// Field offsets within the 48-octet header.
const (
	offStratum   = 1
	offPoll      = 2
	offPrecision = 3
	offRootdelay = 4
	offRootdisp  = 8
	offRefid     = 12
	offReftime   = 16
	offOrg       = 24
	offRec       = 32
	offXmt       = 40
)

// Header is the decoded view of a received 48-octet packet. Fields are
// computed once from the raw octets at decode time; the raw buffer is not
// retained. Rootdelay and Rootdisp are milliseconds, Poll is seconds,
// Precision is nanoseconds.
type Header struct {
	size int // received octet count, rechecked by Validate

	Leap      LeapIndicator
	Version   byte
	Mode      Mode
	Stratum   Stratum
	Poll      float64
	Precision float64
	Rootdelay float64
	Rootdisp  float64
	Refid     string
	Reftime   time.Time
	Org       time.Time // T1, originate timestamp
	Rec       time.Time // T2, receive timestamp
	Xmt       time.Time // T3, transmit timestamp
}

// BuildRequest returns a fresh client request buffer: leap 0, version 4, mode
// client, every other header field zero except the transmit timestamp, which
// is stamped with now.
func BuildRequest(now time.Time) []byte {
	packet := make([]byte, PacketLength)
	packet[0] = byte(NOWARNING)<<6 | VERSION<<3 | byte(CLIENT)
	encodeTimestamp(packet[offXmt:], now)
	return packet
}

// DecodeHeader extracts every header field from a received buffer. src is the
// address the packet came from; it selects how a secondary-stratum reference
// identifier is rendered (nil is treated as IPv4). Octets past the first 48
// (key identifier, message digest) are tolerated and ignored. Decoding the
// same buffer twice yields the same fields, except that the best-effort
// reverse-DNS portion of Refid may come and go.
func DecodeHeader(raw []byte, src net.IP) (*Header, error) {
	if len(raw) < PacketLength {
		return nil, ErrMalformedPacket
	}

	header := &Header{
		size:      len(raw),
		Leap:      LeapIndicator(raw[0] >> 6),
		Version:   (raw[0] >> 3) & 0b111,
		Mode:      modeFromBits(raw[0]),
		Stratum:   Stratum(raw[offStratum]),
		Poll:      math.Ldexp(1, int(raw[offPoll])),
		Precision: Log2ToDouble(int8(raw[offPrecision])) * 1e9,
		Rootdelay: float64(binary.BigEndian.Uint32(raw[offRootdelay:])) / ShortLength * 1000,
		Rootdisp:  float64(binary.BigEndian.Uint32(raw[offRootdisp:])) / ShortLength * 1000,
		Reftime:   decodeTimestamp(raw[offReftime:]),
		Org:       decodeTimestamp(raw[offOrg:]),
		Rec:       decodeTimestamp(raw[offRec:]),
		Xmt:       decodeTimestamp(raw[offXmt:]),
	}

	var refid [4]byte
	copy(refid[:], raw[offRefid:offRefid+4])
	rendered, err := renderRefid(refid, header.Stratum, src)
	if err != nil {
		return nil, err
	}
	header.Refid = rendered

	return header, nil
}
