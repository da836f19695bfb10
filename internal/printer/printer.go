// Package printer implements the stateless printer stub: it accepts a
// job, sleeps to simulate print time, and echoes the caller's
// timestamp unchanged. It performs no ordering of its own.
package printer

import (
	"context"
	"time"

	"distprint/internal/logging"
	"distprint/rpc"
)

// DefaultDelay matches original_source/server.py's default print delay.
const DefaultDelay = 2 * time.Second

// Service implements rpc.PrintingServiceServer.
type Service struct {
	Delay  time.Duration
	Logger *logging.Logger

	rpc.UnimplementedPrintingServiceServer
}

// New builds a Service with the given simulated print delay.
func New(delay time.Duration, logger *logging.Logger) *Service {
	return &Service{Delay: delay, Logger: logger}
}

// SendToPrinter implements rpc.PrintingServiceServer. It keeps no
// clock of its own: lamport_ts is echoed unchanged.
func (s *Service) SendToPrinter(ctx context.Context, job *rpc.PrintJob) (*rpc.PrintReply, error) {
	s.Logger.Infof("printing job from client %d at ts %d: %q", job.ClientId, job.LamportTs, job.Content)

	select {
	case <-time.After(s.Delay):
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	return &rpc.PrintReply{
		Success:      true,
		Confirmation: "Printed",
		LamportTs:    job.LamportTs,
	}, nil
}
