package sntp

import (
	"context"
	"encoding/binary"
	"fmt"
	"net"
	"strings"
	"time"
)

// The reverse lookup is advisory, for display only. It runs under its own
// deadline, independent of the exchange timeout, so an unresponsive resolver
// cannot stall decoding of the numeric fields.
const refidLookupTimeout = 250 * time.Millisecond

var lookupAddr = func(ctx context.Context, addr string) ([]string, error) {
	return net.DefaultResolver.LookupAddr(ctx, addr)
}

// renderRefid interprets the 32-bit reference identifier. Kiss-of-death and
// primary strata carry a four-character ASCII code; a secondary stratum
// carries the IPv4 address of the upstream source, or the first 32 bits of a
// hash of its IPv6 address; reserved strata have no defined interpretation.
func renderRefid(refid [4]byte, stratum Stratum, src net.IP) (string, error) {
	switch stratum.Kind() {
	case KISSOFDEATH, PRIMARY:
		return strings.TrimRight(string(refid[:]), "\x00"), nil
	case SECONDARY:
		if src != nil && src.To4() == nil {
			return fmt.Sprintf("%08x", binary.BigEndian.Uint32(refid[:])), nil
		}
		quad := net.IPv4(refid[0], refid[1], refid[2], refid[3]).String()
		if host, ok := reverseLookup(quad); ok {
			return fmt.Sprintf("%s (%s)", host, quad), nil
		}
		return quad, nil
	case RESERVEDSTRATUM:
		return "N/A", nil
	}
	return "", ErrUnknownEnumValue
}

func reverseLookup(addr string) (string, bool) {
	ctx, cancel := context.WithTimeout(context.Background(), refidLookupTimeout)
	defer cancel()

	names, err := lookupAddr(ctx, addr)
	if err != nil || len(names) == 0 {
		return "", false
	}
	return strings.TrimSuffix(names[0], "."), true
}
