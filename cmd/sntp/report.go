package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/AndrewLester/sntp/internal/ui"
	"github.com/AndrewLester/sntp/pkg/sntp"
)

// renderReport prints every decoded header field plus the computed results,
// the way the classic SNTP clients dumped their reply.
func renderReport(address string, res *sntp.QueryResult) string {
	header := res.Header

	var b strings.Builder
	row := func(label, value string) {
		b.WriteString(ui.Label(label) + ui.Value(value) + "\n")
	}

	b.WriteString(ui.Title("SNTP - "+address) + "\n\n")
	row("Leap Indicator", header.Leap.String())
	row("Version", strconv.Itoa(int(header.Version)))
	row("Mode", header.Mode.String())
	row("Stratum", fmt.Sprintf("%d (%v)", header.Stratum, header.Stratum.Kind()))
	row("Poll Interval", fmt.Sprintf("%gs", header.Poll))
	row("Precision", fmt.Sprintf("%gns", header.Precision))
	row("Root Delay", fmt.Sprintf("%.4fms", header.Rootdelay))
	row("Root Dispersion", fmt.Sprintf("%.4fms", header.Rootdisp))
	row("Reference ID", header.Refid)
	row("Reference Timestamp", formatInstant(header.Reftime))
	row("Originate Timestamp", formatInstant(header.Org))
	row("Receive Timestamp", formatInstant(header.Rec))
	row("Transmit Timestamp", formatInstant(header.Xmt))
	row("Destination Timestamp", formatInstant(res.Dst))
	b.WriteString("\n")

	offsetString := strconv.FormatFloat(res.Offset, 'f', 2, 64)
	if res.Offset > 0 {
		offsetString = "+" + offsetString
	}
	row("Clock Offset", offsetString+" ms")
	row("Round-trip Delay", fmt.Sprintf("%.2f ms", res.Delay))
	row("Corrected Time", formatInstant(sntp.CorrectedClock(res.Offset)))

	return b.String()
}

func formatInstant(t time.Time) string {
	return t.Local().Format("2006-01-02 15:04:05.000000")
}
