package sntp

import (
	"encoding/binary"
	"math"
	"time"
)

const (
	EraLength   float64 = 4_294_967_296 // 2^32
	ShortLength float64 = 65536         // 2^16
)

// ntpEpoch is the start of NTP era 0. A 64-bit timestamp wraps every 2^32
// seconds (~136 years); no era disambiguation is performed here, so instants
// more than ~68 years from the epoch in either direction are out of range.
var ntpEpoch = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)

// encodeTimestamp writes t into the 8-octet timestamp field at b[0:8].
// Integer seconds go out as a big-endian uint32. The four fraction octets are
// each computed as an independently scaled and truncated value (x2^8, x2^16,
// x2^24, x2^32, low octet kept), matching the reference encoder exactly,
// imprecision included. Instants before the epoch clamp to zero rather than
// panic; validation catches them upstream.
func encodeTimestamp(b []byte, t time.Time) {
	delta := t.Sub(ntpEpoch).Seconds()
	if delta < 0 {
		delta = 0
	}
	seconds := math.Floor(delta)
	fraction := delta - seconds

	binary.BigEndian.PutUint32(b, uint32(seconds))
	b[4] = byte(uint64(fraction * 256))
	b[5] = byte(uint64(fraction * 65536))
	b[6] = byte(uint64(fraction * 16777216))
	b[7] = byte(uint64(fraction * EraLength))
}

// decodeTimestamp reads the 8-octet timestamp field at b[0:8]. The fraction is
// a weighted byte sum accumulated in double precision; that costs ~5 ns of
// accuracy against exact fixed-point arithmetic but avoids 128-bit math on the
// hot path.
func decodeTimestamp(b []byte) time.Time {
	seconds := float64(binary.BigEndian.Uint32(b))
	fraction := float64(b[4])/256 +
		float64(b[5])/65536 +
		float64(b[6])/16777216 +
		float64(b[7])/EraLength
	delta := seconds + fraction
	return ntpEpoch.Add(time.Duration(math.Round(delta * float64(time.Second))))
}

func Log2ToDouble(a int8) float64 {
	if a < 0 {
		return 1.0 / float64(int64(1)<<-a)
	}
	return float64(int64(1) << a)
}
