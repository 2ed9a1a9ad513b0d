package main

import (
	"time"

	"github.com/AndrewLester/sntp/cmd/sntp/adjtime"
	"github.com/AndrewLester/sntp/cmd/sntp/settimeofday"
	"github.com/AndrewLester/sntp/pkg/sntp"
)

// Offsets below the step threshold are slewed with adjtime; anything larger
// steps the clock outright. 128 ms is the usual NTP step threshold.
const stepThreshold = 128 * time.Millisecond

func applyClock(offsetMs float64) error {
	offset := time.Duration(offsetMs * float64(time.Millisecond))

	if offset < stepThreshold && offset > -stepThreshold {
		sec := int64(offset / time.Second)
		usec := int32((offset % time.Second) / time.Microsecond)
		if usec < 0 {
			sec--
			usec += 1_000_000
		}
		return adjtime.Adjtime(sec, usec)
	}

	corrected := sntp.CorrectedClock(offsetMs)
	return settimeofday.Settimeofday(corrected.Unix(), int32(corrected.Nanosecond()/1000))
}
