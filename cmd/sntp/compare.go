package main

import (
	"fmt"
	"time"

	"github.com/beevik/ntp"
)

// compareWithReference re-queries the server through beevik/ntp and reports
// both offsets. Purely a sanity check for the curious; the two clients stamp
// at different instants, so small differences are expected.
func compareWithReference(address string, offsetMs float64) string {
	resp, err := ntp.Query(address)
	if err != nil {
		return fmt.Sprintf("Reference query failed: %v", err)
	}

	refMs := float64(resp.ClockOffset) / float64(time.Millisecond)
	return fmt.Sprintf("Offset cross-check: %+.2f ms here, %+.2f ms via reference query (diff %.2f ms)",
		offsetMs, refMs, offsetMs-refMs)
}
