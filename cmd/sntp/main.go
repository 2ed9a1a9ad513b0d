package main

import (
	"flag"
	"log"
	"os"
	"time"

	"github.com/AndrewLester/sntp/pkg/sntp"
)

const defaultSocket = "/tmp/sntpd.socket"

func main() {
	var query string
	var messages int
	var timeout time.Duration
	var set bool
	var compare bool
	var daemonMode bool
	var interval time.Duration
	var statsAddr string
	var status bool
	var socket string
	flag.StringVar(&query, "query", "", "Address of the SNTP server to query.")
	flag.StringVar(&query, "q", query, "Address of the SNTP server to query.")
	flag.IntVar(&messages, "messages", 5, "Number of exchanges per query; the minimum-delay sample wins.")
	flag.DurationVar(&timeout, "timeout", sntp.DefaultTimeout, "Send/receive timeout per exchange.")
	flag.BoolVar(&set, "set", false, "Adjust the system clock by the computed offset.")
	flag.BoolVar(&compare, "compare", false, "Cross-check the offset with a beevik/ntp query.")
	flag.BoolVar(&daemonMode, "daemon", false, "Resynchronize periodically in the background.")
	flag.DurationVar(&interval, "interval", 64*time.Second, "Resynchronization interval in daemon mode.")
	flag.StringVar(&statsAddr, "stats", "", "Listen address for Prometheus stats in daemon mode.")
	flag.BoolVar(&status, "status", false, "Show the daemon's recent samples.")
	flag.StringVar(&socket, "socket", defaultSocket, "Path to the daemon's control socket.")
	flag.Parse()

	if query == "" && flag.NArg() > 0 {
		query = flag.Arg(0)
	}

	port := os.Getenv("NTP_PORT")
	if port == "" {
		port = "0" // System will choose random port
	}
	host := os.Getenv("NTP_HOST")
	if host == "" {
		host = "0.0.0.0"
	}

	client := sntp.NewClient(host, port, timeout)

	switch {
	case status:
		handleStatusCommand(socket)
	case daemonMode:
		if query == "" {
			log.Fatal("Daemon mode needs a server address.")
		}
		runDaemon(client, query, messages, interval, set, statsAddr, socket)
	case query != "":
		handleQueryCommand(client, query, messages, set, compare)
	default:
		flag.Usage()
		os.Exit(2)
	}
}
