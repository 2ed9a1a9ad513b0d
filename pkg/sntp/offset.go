package sntp

import (
	"fmt"
	"time"
)

// maxDisparity bounds how far the server's clock may sit from ours before the
// exchange is considered garbage: 34 years, half the 68-year reach of an NTP
// era around the current one.
const maxDisparity = 34 * 365 * 24 * time.Hour

// Validate runs the reply sanity checks in order: packet size, leap indicator,
// version number, mode. A kiss-of-death reply (stratum 0) passes validation on
// purpose; its status code is data for the caller, not a protocol failure.
func Validate(header *Header) error {
	if header.size < PacketLength {
		return ErrMalformedPacket
	}
	if header.Leap == NOSYNC {
		return ErrClockNotSynchronized
	}
	if header.Version == 0 {
		return ErrInvalidVersion
	}
	if header.Mode != SERVER && header.Mode != BROADCAST {
		return fmt.Errorf("%w: %v", ErrUnexpectedMode, header.Mode)
	}
	return nil
}

// RoundTripDelay computes d = (T4 - T1) - (T3 - T2) in milliseconds. The
// result is returned as-is: it can come out negative or absurdly large when
// the timestamps are wrong, which is why SystemClockOffset must pass its
// sanity checks before the delay is trusted for display.
func RoundTripDelay(t1, t2, t3, t4 time.Time) float64 {
	return durationToMillis(t4.Sub(t1) - t3.Sub(t2))
}

// SystemClockOffset computes t = ((T2 - T1) + (T3 - T4)) / 2 in milliseconds,
// after checking both legs of the exchange against the 34-year disparity bound
// and rejecting a transmit timestamp still sitting at the epoch (an unset
// field on a broken server).
func SystemClockOffset(t1, t2, t3, t4 time.Time) (float64, error) {
	if d := t2.Sub(t1); d > maxDisparity || d < -maxDisparity {
		return 0, &ClockDisparityError{Leg: "receive", Server: t2, Local: t1}
	}
	// The zero check runs before the transmit-leg comparison: an unset T3
	// sits a whole era away from any sane T4 and would masquerade as
	// disparity otherwise.
	if d := t3.Sub(ntpEpoch); d < time.Second && d > -time.Second {
		return 0, ErrInvalidTransmitTimestamp
	}
	if d := t3.Sub(t4); d > maxDisparity || d < -maxDisparity {
		return 0, &ClockDisparityError{Leg: "transmit", Server: t3, Local: t4}
	}

	offset := (t2.Sub(t1) + t3.Sub(t4)) / 2
	return durationToMillis(offset), nil
}

// CorrectedClock returns the current instant adjusted by the computed offset.
// The offset converts to nanosecond ticks in one step; routing it through a
// millisecond-granular duration would round twice.
func CorrectedClock(offsetMs float64) time.Time {
	return time.Now().Add(time.Duration(offsetMs * float64(time.Millisecond)))
}

func durationToMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
