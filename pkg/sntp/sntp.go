// Package sntp implements a Simple Network Time Protocol client per RFC 4330:
// the 48-octet packet codec, the offset/delay arithmetic over the four exchange
// timestamps, and a small query layer on top of a UDP round trip.
package sntp

import "fmt"

const VERSION byte = 4 // NTP version number

const (
	Port = "123" // NTP port number

	PacketLength = 48
)

type LeapIndicator byte

const (
	NOWARNING    LeapIndicator = iota
	LASTMINUTE61               // last minute of the day has 61 seconds
	LASTMINUTE59               // last minute of the day has 59 seconds
	NOSYNC                     // alarm condition, clock not synchronized
)

func (l LeapIndicator) String() string {
	switch l {
	case NOWARNING:
		return "NoWarning"
	case LASTMINUTE61:
		return "LastMinute61"
	case LASTMINUTE59:
		return "LastMinute59"
	case NOSYNC:
		return "AlarmNoSync"
	}
	return fmt.Sprintf("LeapIndicator(%d)", byte(l))
}

type Mode byte

const (
	RESERVED Mode = iota
	SYMMETRIC_ACTIVE
	SYMMETRIC_PASSIVE
	CLIENT
	SERVER
	BROADCAST
)

// modeFromBits maps the 3-bit wire value to a Mode. The unused codes 0, 6 and
// 7 all collapse into RESERVED.
func modeFromBits(bits byte) Mode {
	mode := Mode(bits & 0b111)
	if mode > BROADCAST {
		return RESERVED
	}
	return mode
}

func (m Mode) String() string {
	switch m {
	case RESERVED:
		return "Reserved"
	case SYMMETRIC_ACTIVE:
		return "SymmetricActive"
	case SYMMETRIC_PASSIVE:
		return "SymmetricPassive"
	case CLIENT:
		return "Client"
	case SERVER:
		return "Server"
	case BROADCAST:
		return "Broadcast"
	}
	return fmt.Sprintf("Mode(%d)", byte(m))
}

type Stratum byte

type StratumKind byte

const (
	KISSOFDEATH StratumKind = iota // kiss-of-death message (stratum 0)
	PRIMARY                        // primary reference (stratum 1)
	SECONDARY                      // secondary reference, via NTP (2..15)
	RESERVEDSTRATUM                // reserved (16..255)
)

func (s Stratum) Kind() StratumKind {
	switch {
	case s == 0:
		return KISSOFDEATH
	case s == 1:
		return PRIMARY
	case s <= 15:
		return SECONDARY
	}
	return RESERVEDSTRATUM
}

func (k StratumKind) String() string {
	switch k {
	case KISSOFDEATH:
		return "KissOfDeath"
	case PRIMARY:
		return "Primary"
	case SECONDARY:
		return "Secondary"
	case RESERVEDSTRATUM:
		return "Reserved"
	}
	return fmt.Sprintf("StratumKind(%d)", byte(k))
}
