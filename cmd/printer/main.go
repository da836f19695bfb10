// Command printer runs the stateless printer stub as a standalone
// gRPC service.
package main

import (
	"flag"
	"net"

	"google.golang.org/grpc"

	"distprint/internal/logging"
	"distprint/internal/printer"
	"distprint/rpc"
)

func main() {
	addr := flag.String("addr", ":9000", "listen address")
	delay := flag.Duration("delay", printer.DefaultDelay, "simulated print delay")
	logLevel := flag.String("log-level", "info", "log level (debug|info|warn|error)")
	flag.Parse()

	logger := logging.New("printer", *logLevel)

	lis, err := net.Listen("tcp", *addr)
	if err != nil {
		logger.Fatalf("listen on %s: %v", *addr, err)
	}

	svc := printer.New(*delay, logger)

	srv := grpc.NewServer()
	rpc.RegisterPrintingServiceServer(srv, svc)

	logger.Infof("printer listening on %s (delay=%s)", *addr, delay.String())
	if err := srv.Serve(lis); err != nil {
		logger.Fatalf("serve: %v", err)
	}
}
