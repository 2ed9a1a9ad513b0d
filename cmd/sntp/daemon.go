package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"syscall"
	"time"

	"github.com/AndrewLester/sntp/internal/rpc"
	"github.com/AndrewLester/sntp/pkg/sntp"
	"github.com/sevlyar/go-daemon"
)

const daemonName = "sntpd"

const sampleWindow = 32

var daemonCtx = &daemon.Context{
	PidFileName: fmt.Sprintf("/var/run/%s.pid", daemonName),
	PidFilePerm: 0644,
	LogFileName: fmt.Sprintf("/var/log/%s.log", daemonName),
	LogFilePerm: 0640,
	WorkDir:     "./",
	Umask:       027,
	Args:        append([]string{daemonName}, os.Args[1:]...),
}

func killDaemon() {
	daemon, err := daemonCtx.Search()
	if err != nil {
		log.Fatalf("Error finding daemon: %v", err)
	}

	err = syscall.Kill(daemon.Pid, syscall.SIGTERM)
	if err != nil {
		log.Fatal("Couldn't stop sntpd daemon.")
	}
}

// runDaemon resynchronizes against a single server on a fixed interval. Each
// round is a complete query; nothing carries over between rounds except the
// in-memory sample window.
func runDaemon(client *sntp.Client, address string, messages int, interval time.Duration, set bool, statsAddr, socket string) {
	d, err := daemonCtx.Reborn()
	if err != nil {
		if errors.Is(err, daemon.ErrWouldBlock) {
			killDaemon()
			fmt.Println("Successfully stopped sntpd daemon.")
			return
		}
		log.Fatal("Unable to run: ", err)
	}
	if d != nil {
		fmt.Printf("Daemon process (%s, %d) started successfully.\n", daemonName, d.Pid)
		return
	}
	defer daemonCtx.Release()

	log.Print("- - - - - - - - - - - - - - -")
	log.Print("daemon started", os.Args)

	tracker := sntp.NewTracker(sampleWindow)

	var stats *sntp.StatService
	if statsAddr != "" {
		stats = sntp.NewStatService(statsAddr)
	}

	rpcServer := &rpc.SNTPRPCServer{Socket: socket, Tracker: tracker}
	go rpcServer.Listen()

	for {
		result, err := client.Query(address, messages)
		if err != nil {
			log.Printf("sync with %s failed: %v", address, err)
			if stats != nil {
				stats.Miss()
			}
		} else {
			log.Printf("sync with %s: offset %+.2f ms, delay %.2f ms, stratum %d",
				address, result.Offset, result.Delay, result.Header.Stratum)
			tracker.Record(result)
			if stats != nil {
				stats.Update(result)
			}
			if set {
				if err := applyClock(result.Offset); err != nil {
					log.Printf("clock adjust failed: %v", err)
				}
			}
		}

		time.Sleep(interval)
	}
}
