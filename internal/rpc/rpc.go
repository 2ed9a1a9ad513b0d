package rpc

import (
	"errors"
	"log"
	"net"
	"net/rpc"
	"os"

	"github.com/AndrewLester/sntp/pkg/sntp"
)

// SNTPRPCServer exposes the daemon's recent samples over a unix socket so the
// status TUI can poll them.
type SNTPRPCServer struct {
	Socket  string
	Tracker *sntp.Tracker
}

func (s *SNTPRPCServer) Listen() {
	rpc.Register(s)

	err := os.Remove(s.Socket)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal("bind error:", err)
	}

	l, e := net.Listen("unix", s.Socket)
	if e != nil {
		log.Fatal("listen error:", e)
	}

	for {
		rpc.Accept(l)
	}
}

func (s *SNTPRPCServer) FetchSamples(args int, reply *[]sntp.Sample) error {
	*reply = s.Tracker.Samples()
	return nil
}
