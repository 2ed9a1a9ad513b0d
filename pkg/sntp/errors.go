package sntp

import (
	"errors"
	"fmt"
	"time"
)

// Every error here is terminal for the current exchange. Nothing is retried
// inside this package and nothing is substituted silently; callers decide
// whether to repeat the whole sequence.
var (
	ErrMalformedPacket          = errors.New("packet is shorter than 48 octets")
	ErrClockNotSynchronized     = errors.New("server clock is not synchronized")
	ErrInvalidVersion           = errors.New("version number is 0")
	ErrUnexpectedMode           = errors.New("unexpected association mode")
	ErrClockDisparity           = errors.New("clock disparity exceeds 34 years")
	ErrInvalidTransmitTimestamp = errors.New("transmit timestamp is zero")
	ErrUnknownEnumValue         = errors.New("field value outside its defined range")
)

// ClockDisparityError reports which leg of the 34-year sanity check failed and
// the two instants that were compared. It matches ErrClockDisparity under
// errors.Is.
type ClockDisparityError struct {
	Leg    string // "receive" (T2 vs T1) or "transmit" (T3 vs T4)
	Server time.Time
	Local  time.Time
}

func (e *ClockDisparityError) Error() string {
	return fmt.Sprintf("%v on %s leg: server %v, local %v",
		ErrClockDisparity, e.Leg, e.Server, e.Local)
}

func (e *ClockDisparityError) Unwrap() error {
	return ErrClockDisparity
}
